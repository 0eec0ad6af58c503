package menu

import (
	"context"

	"github.com/go-faster/errors"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "github.com/xenking/music-store/internal/menu"

// Metrics counts cart activity.
type Metrics struct {
	itemsAdded   metric.Int64Counter
	itemsRemoved metric.Int64Counter
	checkouts    metric.Int64Counter
}

// NewMetrics registers the cart counters on the given provider.
func NewMetrics(mp metric.MeterProvider) (*Metrics, error) {
	meter := mp.Meter(meterName)

	added, err := meter.Int64Counter("store.cart.items_added",
		metric.WithDescription("Items added to the cart"),
		metric.WithUnit("{item}"),
	)
	if err != nil {
		return nil, errors.Wrap(err, "items_added counter")
	}
	removed, err := meter.Int64Counter("store.cart.items_removed",
		metric.WithDescription("Items removed from the cart"),
		metric.WithUnit("{item}"),
	)
	if err != nil {
		return nil, errors.Wrap(err, "items_removed counter")
	}
	checkouts, err := meter.Int64Counter("store.checkouts",
		metric.WithDescription("Answers to the checkout confirmation"),
	)
	if err != nil {
		return nil, errors.Wrap(err, "checkouts counter")
	}

	return &Metrics{
		itemsAdded:   added,
		itemsRemoved: removed,
		checkouts:    checkouts,
	}, nil
}

func (m *Metrics) added(ctx context.Context, name string, n int) {
	m.itemsAdded.Add(ctx, int64(n), metric.WithAttributes(attribute.String("product", name)))
}

func (m *Metrics) removed(ctx context.Context, name string, n int) {
	m.itemsRemoved.Add(ctx, int64(n), metric.WithAttributes(attribute.String("product", name)))
}

func (m *Metrics) checkout(ctx context.Context, confirmed bool) {
	m.checkouts.Add(ctx, 1, metric.WithAttributes(attribute.Bool("confirmed", confirmed)))
}
