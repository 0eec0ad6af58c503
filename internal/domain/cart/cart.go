// Package cart holds the customer's chosen quantities for every catalog
// product.
package cart

import (
	"math"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"

	"github.com/xenking/music-store/internal/domain/product"
)

var (
	// ErrNegativeQuantity is returned when adding or removing fewer than zero items.
	ErrNegativeQuantity = errors.New("quantity must not be negative")
	// ErrQuantityTooLarge is returned when an add would push a line past the
	// largest quantity the cart can hold.
	ErrQuantityTooLarge = errors.New("quantity too large")
)

// Line pairs a product with the quantity held in the cart.
type Line struct {
	Product  product.Product
	Quantity int
}

// Cost returns the line total: unit price times quantity.
func (l Line) Cost() decimal.Decimal {
	return l.Product.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Cart tracks a quantity for each catalog product. A product that was never
// added has quantity 0; the cart is never sparse.
type Cart struct {
	catalog *product.Catalog
	qty     map[string]int
}

// New creates an empty cart over the given catalog.
func New(catalog *product.Catalog) *Cart {
	qty := make(map[string]int, catalog.Len())
	for _, p := range catalog.Products() {
		qty[p.Name] = 0
	}
	return &Cart{catalog: catalog, qty: qty}
}

// Catalog returns the catalog the cart was created from.
func (c *Cart) Catalog() *product.Catalog {
	return c.catalog
}

// Quantity returns how many of the named product are in the cart.
func (c *Cart) Quantity(name string) int {
	return c.qty[name]
}

// Add increases the quantity of the named product by n. Adding zero is a no-op.
func (c *Cart) Add(name string, n int) error {
	if n < 0 {
		return ErrNegativeQuantity
	}
	if !c.catalog.Contains(name) {
		return errors.Wrapf(product.ErrNotFound, "%q", name)
	}
	if n > c.Room(name) {
		return errors.Wrapf(ErrQuantityTooLarge, "%q", name)
	}
	c.qty[name] += n
	return nil
}

// Room returns how many more of the named product fit in the cart.
func (c *Cart) Room(name string) int {
	return math.MaxInt - c.qty[name]
}

// Remove decreases the quantity of the named product by n, stopping at zero.
// It returns how many items were actually taken out, which is less than n
// when the cart held fewer.
func (c *Cart) Remove(name string, n int) (int, error) {
	if n < 0 {
		return 0, ErrNegativeQuantity
	}
	if !c.catalog.Contains(name) {
		return 0, errors.Wrapf(product.ErrNotFound, "%q", name)
	}
	have := c.qty[name]
	removed := min(n, have)
	c.qty[name] = have - removed
	return removed, nil
}

// Total returns the sum of all line costs.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.Lines() {
		total = total.Add(l.Cost())
	}
	return total
}

// IsEmpty reports whether every quantity is zero.
func (c *Cart) IsEmpty() bool {
	for _, n := range c.qty {
		if n != 0 {
			return false
		}
	}
	return true
}

// Lines returns the products with a non-zero quantity in catalog order.
// The slice is built on every call, so numbering derived from it always
// reflects the current contents.
func (c *Cart) Lines() []Line {
	var lines []Line
	for _, p := range c.catalog.Products() {
		if n := c.qty[p.Name]; n > 0 {
			lines = append(lines, Line{Product: p, Quantity: n})
		}
	}
	return lines
}

// Line returns the line shown under the given 1-based number in Lines.
func (c *Cart) Line(index int) (Line, bool) {
	lines := c.Lines()
	if index < 1 || index > len(lines) {
		return Line{}, false
	}
	return lines[index-1], true
}
