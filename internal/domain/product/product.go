package product

import (
	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

var (
	// ErrNotFound is returned when a requested product does not exist.
	ErrNotFound = errors.New("product not found")
	// ErrDuplicate is returned when a catalog lists the same product name twice.
	ErrDuplicate = errors.New("duplicate product")
	// ErrNegativePrice is returned when a catalog entry has a price below zero.
	ErrNegativePrice = errors.New("negative price")
)

// Product represents a catalog item available for purchase. The name is the
// product's identity.
type Product struct {
	Name  string
	Price decimal.Decimal
}

// Catalog is an ordered, read-only list of products. The order is the one
// shown to customers and the basis of 1-based product numbering.
type Catalog struct {
	products []Product
	byName   map[string]int
}

// NewCatalog builds a Catalog keeping the given order.
func NewCatalog(products ...Product) (*Catalog, error) {
	c := &Catalog{
		products: make([]Product, 0, len(products)),
		byName:   make(map[string]int, len(products)),
	}
	for _, p := range products {
		if _, ok := c.byName[p.Name]; ok {
			return nil, errors.Wrapf(ErrDuplicate, "%q", p.Name)
		}
		if p.Price.IsNegative() {
			return nil, errors.Wrapf(ErrNegativePrice, "%q", p.Name)
		}
		c.byName[p.Name] = len(c.products)
		c.products = append(c.products, p)
	}
	return c, nil
}

// MustCatalog is like NewCatalog but panics on invalid input.
func MustCatalog(products ...Product) *Catalog {
	c, err := NewCatalog(products...)
	if err != nil {
		panic(err)
	}
	return c
}

// Len returns the number of products.
func (c *Catalog) Len() int {
	return len(c.products)
}

// Products returns a copy of the products in display order.
func (c *Catalog) Products() []Product {
	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}

// At returns the product shown under the given 1-based number.
func (c *Catalog) At(index int) (Product, bool) {
	if index < 1 || index > len(c.products) {
		return Product{}, false
	}
	return c.products[index-1], true
}

// Get looks a product up by name.
func (c *Catalog) Get(name string) (Product, error) {
	i, ok := c.byName[name]
	if !ok {
		return Product{}, errors.Wrapf(ErrNotFound, "%q", name)
	}
	return c.products[i], nil
}

// Price returns the unit price of the named product.
func (c *Catalog) Price(name string) (decimal.Decimal, error) {
	p, err := c.Get(name)
	if err != nil {
		return decimal.Zero, err
	}
	return p.Price, nil
}

// Contains reports whether the catalog lists the named product.
func (c *Catalog) Contains(name string) bool {
	_, ok := c.byName[name]
	return ok
}
