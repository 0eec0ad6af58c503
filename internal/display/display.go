// Package display renders store screens as text. Every function is a pure
// read of its arguments: rendering the same state twice yields the same text.
package display

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/xenking/music-store/internal/domain/cart"
	"github.com/xenking/music-store/internal/domain/product"
)

const (
	ruleWidth     = 100
	nameWidth     = 25
	quantityWidth = 10

	boldOn  = "\033[1m"
	boldOff = "\033[0m"
)

// Config controls the look of rendered screens.
type Config struct {
	// StoreName is printed in the heading.
	StoreName string
	// Currency is the symbol placed in front of every amount.
	Currency string
	// Bold enables ANSI emphasis for the heading and table header.
	Bold bool
}

// Renderer renders store screens.
type Renderer struct {
	cfg Config
}

// New creates a Renderer.
func New(cfg Config) *Renderer {
	return &Renderer{cfg: cfg}
}

// Money formats an amount with the currency symbol and two decimal places.
func (r *Renderer) Money(d decimal.Decimal) string {
	return r.cfg.Currency + d.StringFixed(2)
}

// Heading renders the store banner.
func (r *Renderer) Heading() string {
	return "\n" + strings.Repeat("_", ruleWidth) + "\n" + r.bold(r.cfg.StoreName+"\n") + "\n"
}

// Cart renders the cart summary: total, then one row per non-empty line with
// quantity and cost. An empty cart renders nothing.
func (r *Renderer) Cart(c *cart.Cart) string {
	lines := c.Lines()
	if len(lines) == 0 {
		return ""
	}

	dashes := strings.Repeat("- ", ruleWidth/2)

	var b strings.Builder
	fmt.Fprintf(&b, "%s\nYOUR CART (%s)\n\n", dashes, r.Money(c.Total()))
	b.WriteString(r.bold(fmt.Sprintf("%-*s%-*s%s", nameWidth, "Product", quantityWidth, "Quantity", "Cost")))
	b.WriteString("\n")
	for _, l := range lines {
		fmt.Fprintf(&b, "%-*s%-*d%s\n", nameWidth, l.Product.Name, quantityWidth, l.Quantity, r.Money(l.Cost()))
	}
	fmt.Fprintf(&b, "\n%s\n\n", dashes)
	return b.String()
}

// Catalog renders the numbered product list with unit prices.
func (r *Renderer) Catalog(c *product.Catalog) string {
	var b strings.Builder
	for i, p := range c.Products() {
		fmt.Fprintf(&b, "%s%-*s%s\n", number(i+1), nameWidth, p.Name, r.Money(p.Price))
	}
	return b.String()
}

// CartLines renders the numbered list of cart lines with their quantities.
func (r *Renderer) CartLines(lines []cart.Line) string {
	var b strings.Builder
	for i, l := range lines {
		fmt.Fprintf(&b, "%s%-*s[%d]\n", number(i+1), nameWidth, l.Product.Name, l.Quantity)
	}
	return b.String()
}

func (r *Renderer) bold(s string) string {
	if !r.cfg.Bold {
		return s
	}
	return boldOn + s + boldOff
}

// number renders a list position. Two-digit positions drop the space so the
// names stay roughly aligned.
func number(n int) string {
	if n < 10 {
		return fmt.Sprintf("%d. ", n)
	}
	return fmt.Sprintf("%d.", n)
}

// Items phrases an item count with its verb: "1 item was", "3 items were".
func Items(n int) string {
	if n == 1 {
		return "1 item was"
	}
	return fmt.Sprintf("%d items were", n)
}
