// Package memory provides process-local repositories. Nothing stored here
// outlives the process.
package memory

import (
	"context"
	"sync"

	"github.com/go-faster/errors"

	"github.com/xenking/music-store/internal/domain/order"
)

// ErrDuplicateOrder is returned when an order ID is stored twice.
var ErrDuplicateOrder = errors.New("order already exists")

var _ order.Repository = (*OrderRepository)(nil)

// OrderRepository implements order.Repository in memory.
type OrderRepository struct {
	mu     sync.Mutex
	orders []*order.Order
	byID   map[string]*order.Order
}

// NewOrderRepository returns an empty OrderRepository.
func NewOrderRepository() *OrderRepository {
	return &OrderRepository{byID: make(map[string]*order.Order)}
}

// Create stores a new order.
func (r *OrderRepository) Create(ctx context.Context, o *order.Order) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[o.ID]; ok {
		return errors.Wrapf(ErrDuplicateOrder, "creating order %q", o.ID)
	}
	r.byID[o.ID] = o
	r.orders = append(r.orders, o)
	return nil
}
