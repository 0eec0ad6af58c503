package order

import (
	"context"
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// Order is the receipt produced when a customer confirms checkout.
type Order struct {
	ID        string
	SessionID string
	Items     []OrderItem
	Total     decimal.Decimal
	CreatedAt time.Time
}

// OrderItem represents a single line item in an order.
type OrderItem struct {
	Name      string
	Quantity  int
	UnitPrice decimal.Decimal
}

// ItemCount returns the number of items across all lines, capped at
// math.MaxInt.
func (o *Order) ItemCount() int {
	n := 0
	for _, item := range o.Items {
		if item.Quantity > math.MaxInt-n {
			return math.MaxInt
		}
		n += item.Quantity
	}
	return n
}

// Repository defines persistence operations for orders.
type Repository interface {
	Create(ctx context.Context, order *Order) error
}
