package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xenking/music-store/internal/domain/order"
)

func TestOrderRepository_Create(t *testing.T) {
	repo := NewOrderRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &order.Order{ID: "a"}))
	require.NoError(t, repo.Create(ctx, &order.Order{ID: "b"}))

	orders := repo.orders
	require.Len(t, orders, 2)
	assert.Equal(t, "a", orders[0].ID)
	assert.Equal(t, "b", orders[1].ID)
}

func TestOrderRepository_CreateDuplicate(t *testing.T) {
	repo := NewOrderRepository()
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, &order.Order{ID: "a"}))

	err := repo.Create(ctx, &order.Order{ID: "a"})

	require.ErrorIs(t, err, ErrDuplicateOrder)
	assert.Len(t, repo.orders, 1)
}

func TestOrderRepository_CreateCanceled(t *testing.T) {
	repo := NewOrderRepository()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := repo.Create(ctx, &order.Order{ID: "a"})

	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, repo.orders)
}
