// Package session runs one shopping session from the first main menu to a
// confirmed checkout.
package session

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/zctx"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/xenking/music-store/internal/console"
	"github.com/xenking/music-store/internal/display"
	"github.com/xenking/music-store/internal/domain/cart"
	"github.com/xenking/music-store/internal/domain/order"
	"github.com/xenking/music-store/internal/domain/product"
	"github.com/xenking/music-store/internal/menu"
)

const tracerName = "github.com/xenking/music-store/internal/session"

// Params holds the dependencies of a Session.
type Params struct {
	Catalog  *product.Catalog
	Console  *console.Console
	Renderer *display.Renderer
	Metrics  *menu.Metrics
	Orders   *order.Service
	Tracer   trace.TracerProvider
}

// Session owns the cart of one customer and moves between screens.
type Session struct {
	id     string
	cart   *cart.Cart
	menus  *menu.Menus
	orders *order.Service
	tracer trace.Tracer
}

// New creates a Session with an empty cart over p.Catalog.
func New(p Params) *Session {
	c := cart.New(p.Catalog)
	return &Session{
		id:     uuid.NewString(),
		cart:   c,
		menus:  menu.New(p.Console, p.Renderer, c, p.Metrics),
		orders: p.Orders,
		tracer: p.Tracer.Tracer(tracerName),
	}
}

// Run shows the main menu and dispatches to the chosen screen until the
// customer confirms checkout. It returns the placed order.
func (s *Session) Run(ctx context.Context) (*order.Order, error) {
	ctx = zctx.With(ctx, zap.String("session_id", s.id))
	zctx.From(ctx).Info("Session started", zap.Int("products", s.cart.Catalog().Len()))

	for {
		var opt menu.MainOption
		if err := s.screen(ctx, "main", func(ctx context.Context) (err error) {
			opt, err = s.menus.Main(ctx)
			return err
		}); err != nil {
			return nil, err
		}

		switch opt {
		case menu.MainView:
			if err := s.view(ctx); err != nil {
				return nil, err
			}
		case menu.MainAdd:
			if err := s.screen(ctx, "add", s.menus.Add); err != nil {
				return nil, err
			}
		case menu.MainRemove:
			if err := s.screen(ctx, "remove", s.menus.Remove); err != nil {
				return nil, err
			}
		case menu.MainCheckout:
			var confirmed bool
			if err := s.screen(ctx, "checkout", func(ctx context.Context) (err error) {
				confirmed, err = s.menus.Checkout(ctx)
				return err
			}); err != nil {
				return nil, err
			}
			if confirmed {
				return s.placeOrder(ctx)
			}
		default:
			return nil, errors.Errorf("unexpected main menu option %s", opt)
		}
	}
}

// view shows the catalog and goes straight to adding when asked to.
func (s *Session) view(ctx context.Context) error {
	var opt menu.ViewOption
	if err := s.screen(ctx, "view", func(ctx context.Context) (err error) {
		opt, err = s.menus.ViewCatalog(ctx)
		return err
	}); err != nil {
		return err
	}

	switch opt {
	case menu.ViewAdd:
		return s.screen(ctx, "add", s.menus.Add)
	case menu.ViewReturn:
		return nil
	default:
		return errors.Errorf("unexpected catalog option %s", opt)
	}
}

func (s *Session) placeOrder(ctx context.Context) (*order.Order, error) {
	o, err := s.orders.PlaceOrder(ctx, s.id, s.cart)
	if err != nil {
		return nil, errors.Wrap(err, "place order")
	}

	zctx.From(ctx).Info("Checkout confirmed",
		zap.String("order_id", o.ID),
		zap.Int("items", o.ItemCount()),
		zap.Stringer("total", o.Total),
	)
	return o, nil
}

// screen runs fn inside a span named after the screen.
func (s *Session) screen(ctx context.Context, name string, fn func(context.Context) error) error {
	ctx, span := s.tracer.Start(ctx, "screen."+name)
	defer span.End()

	zctx.From(ctx).Debug("Screen", zap.String("screen", name))
	if err := fn(ctx); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return errors.Wrapf(err, "%s screen", name)
	}
	return nil
}
