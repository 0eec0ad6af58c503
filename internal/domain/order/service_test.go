package order

import (
	"context"
	"testing"
	"time"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xenking/music-store/internal/domain/cart"
	"github.com/xenking/music-store/internal/domain/product"
)

type mockOrderRepo struct {
	lastOrder *Order
	err       error
}

func (m *mockOrderRepo) Create(_ context.Context, o *Order) error {
	m.lastOrder = o
	return m.err
}

func newCart(t *testing.T, quantities map[string]int) *cart.Cart {
	t.Helper()
	c := cart.New(product.MusicStore())
	for name, n := range quantities {
		require.NoError(t, c.Add(name, n))
	}
	return c
}

func TestPlaceOrder_EmptyCart(t *testing.T) {
	repo := &mockOrderRepo{}
	svc := NewService(repo)

	_, err := svc.PlaceOrder(context.Background(), "s1", newCart(t, nil))

	require.ErrorIs(t, err, ErrEmptyItems)
	assert.Nil(t, repo.lastOrder)
}

func TestPlaceOrder(t *testing.T) {
	fixedNow := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	repo := &mockOrderRepo{}
	svc := NewService(repo)
	svc.now = func() time.Time { return fixedNow }
	c := newCart(t, map[string]int{"Drumsticks": 3, "Headphones": 1})

	o, err := svc.PlaceOrder(context.Background(), "s1", c)

	require.NoError(t, err)
	assert.Same(t, o, repo.lastOrder)
	_, err = uuid.Parse(o.ID)
	require.NoError(t, err)
	assert.Equal(t, "s1", o.SessionID)
	assert.Equal(t, fixedNow, o.CreatedAt)
	assert.True(t, decimal.RequireFromString("48.46").Equal(o.Total), "got %s", o.Total)
	require.Len(t, o.Items, 2)
	assert.Equal(t, "Drumsticks", o.Items[0].Name)
	assert.Equal(t, 3, o.Items[0].Quantity)
	assert.Equal(t, "Headphones", o.Items[1].Name)
	assert.Equal(t, 4, o.ItemCount())

	// Checkout does not consume the cart.
	assert.Equal(t, 3, c.Quantity("Drumsticks"))
}

func TestPlaceOrder_OrderCreateError(t *testing.T) {
	svc := NewService(&mockOrderRepo{err: errors.New("store full")})

	_, err := svc.PlaceOrder(context.Background(), "s1", newCart(t, map[string]int{"Metronome": 1}))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "create order")
}
