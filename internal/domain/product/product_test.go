package product

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func TestNewCatalog(t *testing.T) {
	tests := []struct {
		name     string
		products []Product
		wantErr  error
	}{
		{
			name: "keeps order",
			products: []Product{
				{Name: "B", Price: d("2")},
				{Name: "A", Price: d("1")},
			},
		},
		{
			name:     "empty catalog",
			products: nil,
		},
		{
			name: "duplicate name",
			products: []Product{
				{Name: "A", Price: d("1")},
				{Name: "A", Price: d("2")},
			},
			wantErr: ErrDuplicate,
		},
		{
			name: "negative price",
			products: []Product{
				{Name: "A", Price: d("-0.01")},
			},
			wantErr: ErrNegativePrice,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewCatalog(tt.products...)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, c)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, len(tt.products), c.Len())
			for i, p := range tt.products {
				got, ok := c.At(i + 1)
				require.True(t, ok)
				assert.Equal(t, p.Name, got.Name)
			}
		})
	}
}

func TestCatalog_At(t *testing.T) {
	c := MustCatalog(
		Product{Name: "A", Price: d("1")},
		Product{Name: "B", Price: d("2")},
	)

	for _, idx := range []int{-1, 0, 3} {
		_, ok := c.At(idx)
		assert.False(t, ok, "index %d", idx)
	}

	p, ok := c.At(2)
	require.True(t, ok)
	assert.Equal(t, "B", p.Name)
}

func TestCatalog_Price(t *testing.T) {
	c := MusicStore()

	price, err := c.Price("Drumsticks")
	require.NoError(t, err)
	assert.True(t, d("4.49").Equal(price))

	_, err = c.Price("Triangle")
	require.ErrorIs(t, err, ErrNotFound)
	assert.False(t, c.Contains("Triangle"))
}

func TestCatalog_ProductsIsCopy(t *testing.T) {
	c := MusicStore()

	products := c.Products()
	products[0].Name = "changed"

	first, ok := c.At(1)
	require.True(t, ok)
	assert.Equal(t, "Drum brushes", first.Name)
}

func TestMusicStore(t *testing.T) {
	c := MusicStore()

	require.Equal(t, 13, c.Len())
	last, ok := c.At(13)
	require.True(t, ok)
	assert.Equal(t, "Sheet music clips (x4)", last.Name)
	assert.True(t, d("5.19").Equal(last.Price))
	for _, p := range c.Products() {
		assert.True(t, p.Price.IsPositive(), p.Name)
	}
}
