package app

import (
	"context"
	"io"
	"os"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/app"
	"github.com/go-faster/sdk/zctx"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/xenking/music-store/internal/console"
	"github.com/xenking/music-store/internal/display"
	"github.com/xenking/music-store/internal/domain/order"
	"github.com/xenking/music-store/internal/domain/product"
	"github.com/xenking/music-store/internal/menu"
	"github.com/xenking/music-store/internal/session"
	"github.com/xenking/music-store/internal/storage/memory"
)

// Run wires the store on the process terminal and runs one session until the
// customer checks out. It is the single wiring point for the application.
func Run(ctx context.Context, lg *zap.Logger, m *app.Telemetry, cfg *Config) error {
	return run(ctx, lg, m.MeterProvider(), m.TracerProvider(), cfg, os.Stdin, os.Stdout)
}

func run(
	ctx context.Context,
	lg *zap.Logger,
	mp metric.MeterProvider,
	tp trace.TracerProvider,
	cfg *Config,
	in io.Reader,
	out io.Writer,
) error {
	ctx = zctx.Base(ctx, lg)
	lg.Info("Initializing", zap.String("store", cfg.Name))

	metrics, err := menu.NewMetrics(mp)
	if err != nil {
		return errors.Wrap(err, "create metrics")
	}

	s := session.New(session.Params{
		Catalog: product.MusicStore(),
		Console: console.New(in, out),
		Renderer: display.New(display.Config{
			StoreName: cfg.Name,
			Currency:  cfg.Currency,
			Bold:      cfg.Bold,
		}),
		Metrics: metrics,
		Orders:  order.NewService(memory.NewOrderRepository()),
		Tracer:  tp,
	})

	if _, err := s.Run(ctx); err != nil {
		return errors.Wrap(err, "session")
	}
	return nil
}
