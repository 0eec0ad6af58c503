package order

import (
	"context"
	"time"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/xenking/music-store/internal/domain/cart"
)

// ErrEmptyItems is returned when checking out a cart with nothing in it.
var ErrEmptyItems = errors.New("items required")

// Service turns confirmed carts into orders.
type Service struct {
	orders Repository
	now    func() time.Time
}

// NewService creates an order Service storing orders in the given Repository.
func NewService(orders Repository) *Service {
	return &Service{orders: orders, now: time.Now}
}

// PlaceOrder snapshots the cart lines into an order, totals it and stores it.
// The cart itself is left untouched.
func (s *Service) PlaceOrder(ctx context.Context, sessionID string, c *cart.Cart) (*Order, error) {
	lines := c.Lines()
	if len(lines) == 0 {
		return nil, ErrEmptyItems
	}

	items := make([]OrderItem, len(lines))
	total := decimal.Zero
	for i, l := range lines {
		items[i] = OrderItem{
			Name:      l.Product.Name,
			Quantity:  l.Quantity,
			UnitPrice: l.Product.Price,
		}
		total = total.Add(l.Cost())
	}

	o := &Order{
		ID:        uuid.New().String(),
		SessionID: sessionID,
		Items:     items,
		Total:     total.Round(2),
		CreatedAt: s.now(),
	}
	if err := s.orders.Create(ctx, o); err != nil {
		return nil, errors.Wrap(err, "create order")
	}

	return o, nil
}
