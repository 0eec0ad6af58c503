// Package menu implements the interactive store screens. Each screen renders
// the current state, then re-prompts until it gets an answer it can act on.
package menu

import (
	"context"
	"fmt"
	"math"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/zctx"
	"go.uber.org/zap"

	"github.com/xenking/music-store/internal/console"
	"github.com/xenking/music-store/internal/display"
	"github.com/xenking/music-store/internal/domain/cart"
)

const (
	mainOptions = "'v' - view available products\n" +
		"'a' - add products to your cart\n" +
		"'r' - remove products from your cart\n" +
		"'c' - checkout\n"
	viewOptions = "\n'a' - add products to your cart\n" +
		"'m' - return to main menu\n"
	checkoutOptions = "Are you happy with your cart?\n\n" +
		"'y' - yes, proceed to payment\n" +
		"'n' - no, return me to the main menu\n"

	promptLetter    = "To select an option, please type the corresponding letter: "
	promptConfirm   = "Please type 'y' or 'n' to proceed: "
	promptAdd       = "\nTo add a product to your cart, please type the corresponding number or type 'm' to return to the \nmain menu: "
	promptRemove    = "\nTo remove a product from your cart, please type the corresponding number or type 'm' to return to \nthe main menu: "
	promptAddQty    = "Please select the quantity for this product: "
	promptRemoveQty = "How many items of this product would you like to remove? "

	retryLetter    = "The letter you typed is not an option! Please try again: "
	retryEmptyCart = "Your cart is currently empty. Please choose another option: "
	retryIndex     = "The number/letter you typed is not an option! Please try again: "
	retryAddQty    = "The quantity must be a whole number! Please try again: "
	retryRemoveQty = "You must enter a whole number to remove! Please try again: "

	proceeding = "\nProceeding to payment...\n"
)

// Menus drives the store screens over one cart.
type Menus struct {
	con     *console.Console
	render  *display.Renderer
	cart    *cart.Cart
	metrics *Metrics
}

// New creates Menus operating on c.
func New(con *console.Console, render *display.Renderer, c *cart.Cart, metrics *Metrics) *Menus {
	return &Menus{
		con:     con,
		render:  render,
		cart:    c,
		metrics: metrics,
	}
}

// Main shows the main menu and returns the chosen option. Remove and checkout
// are refused while the cart is empty.
func (m *Menus) Main(ctx context.Context) (MainOption, error) {
	if err := m.show(ctx, m.render.Heading(), m.render.Cart(m.cart), mainOptions+"\n"); err != nil {
		return 0, err
	}

	empty := m.cart.IsEmpty()
	return choose(m.con, promptLetter, func(answer string) (MainOption, string, bool) {
		opt, ok := parseMainOption(answer)
		switch {
		case !ok:
			return 0, retryLetter, false
		case empty && opt.needsItems():
			return 0, retryEmptyCart, false
		}
		return opt, "", true
	})
}

// ViewCatalog shows the product list and returns whether the customer wants to
// add products or go back.
func (m *Menus) ViewCatalog(ctx context.Context) (ViewOption, error) {
	if err := m.show(ctx,
		m.render.Heading(),
		m.render.Cart(m.cart),
		m.render.Catalog(m.cart.Catalog()),
		viewOptions+"\n",
	); err != nil {
		return 0, err
	}

	return choose(m.con, promptLetter, func(answer string) (ViewOption, string, bool) {
		opt, ok := parseViewOption(answer)
		if !ok {
			return 0, retryLetter, false
		}
		return opt, "", true
	})
}

// Add lets the customer add products until they return to the main menu.
func (m *Menus) Add(ctx context.Context) error {
	catalog := m.cart.Catalog()
	for {
		if err := m.show(ctx,
			m.render.Heading(),
			m.render.Cart(m.cart),
			m.render.Catalog(catalog),
		); err != nil {
			return err
		}

		index, back, err := m.pick(promptAdd, catalog.Len())
		if err != nil {
			return err
		}
		if back {
			return nil
		}
		p, ok := catalog.At(index)
		if !ok {
			return errors.Errorf("no product at %d", index)
		}

		n, err := m.quantity(promptAddQty, retryAddQty, m.cart.Room(p.Name))
		if err != nil {
			return err
		}
		if n == 0 {
			if err := m.con.Println("\nNo items were added to your cart."); err != nil {
				return err
			}
			continue
		}

		if err := m.cart.Add(p.Name, n); err != nil {
			return errors.Wrapf(err, "add %q", p.Name)
		}
		m.metrics.added(ctx, p.Name, n)
		zctx.From(ctx).Debug("Items added",
			zap.String("product", p.Name),
			zap.Int("quantity", n),
			zap.Int("in_cart", m.cart.Quantity(p.Name)),
		)
		if err := m.con.Println(fmt.Sprintf("\n%s added to your cart.", display.Items(n))); err != nil {
			return err
		}
	}
}

// Remove lets the customer take products out of the cart until they return to
// the main menu or the cart is empty. The numbered list only shows lines that
// are in the cart and is rebuilt on every pass.
func (m *Menus) Remove(ctx context.Context) error {
	for !m.cart.IsEmpty() {
		lines := m.cart.Lines()
		if err := m.show(ctx,
			m.render.Heading(),
			m.render.Cart(m.cart),
			m.render.CartLines(lines),
		); err != nil {
			return err
		}

		index, back, err := m.pick(promptRemove, len(lines))
		if err != nil {
			return err
		}
		if back {
			return nil
		}
		line, ok := m.cart.Line(index)
		if !ok {
			return errors.Errorf("no cart line at %d", index)
		}
		name := line.Product.Name

		n, err := m.quantity(promptRemoveQty, retryRemoveQty, math.MaxInt)
		if err != nil {
			return err
		}
		if n == 0 {
			if err := m.con.Println("\nNo items were removed from your cart."); err != nil {
				return err
			}
			continue
		}

		removed, err := m.cart.Remove(name, n)
		if err != nil {
			return errors.Wrapf(err, "remove %q", name)
		}
		m.metrics.removed(ctx, name, removed)
		zctx.From(ctx).Debug("Items removed",
			zap.String("product", name),
			zap.Int("requested", n),
			zap.Int("removed", removed),
		)
		if err := m.con.Println(fmt.Sprintf("\n%s removed from your cart.", display.Items(removed))); err != nil {
			return err
		}
	}
	return nil
}

// Checkout asks the customer to confirm the cart. It reports true once they
// agree to proceed to payment.
func (m *Menus) Checkout(ctx context.Context) (bool, error) {
	if err := m.show(ctx, m.render.Heading(), m.render.Cart(m.cart), checkoutOptions+"\n"); err != nil {
		return false, err
	}

	confirmed, err := choose(m.con, promptConfirm, func(answer string) (bool, string, bool) {
		confirmed, ok := parseConfirm(answer)
		if !ok {
			return false, retryLetter, false
		}
		return confirmed, "", true
	})
	if err != nil {
		return false, err
	}
	m.metrics.checkout(ctx, confirmed)

	if confirmed {
		if err := m.con.Println(proceeding); err != nil {
			return false, err
		}
	}
	return confirmed, nil
}

// show checks for cancellation and writes the screen parts in order.
func (m *Menus) show(ctx context.Context, parts ...string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	for _, p := range parts {
		if err := m.con.Print(p); err != nil {
			return err
		}
	}
	return nil
}

// pick asks for a 1-based number up to count or "m".
func (m *Menus) pick(prompt string, count int) (index int, back bool, err error) {
	type choice struct {
		index int
		back  bool
	}
	c, err := choose(m.con, prompt, func(answer string) (choice, string, bool) {
		index, back, ok := parseIndex(answer, count)
		if !ok {
			return choice{}, retryIndex, false
		}
		return choice{index: index, back: back}, "", true
	})
	return c.index, c.back, err
}

// quantity asks for a whole number of items no greater than limit.
func (m *Menus) quantity(prompt, retry string, limit int) (int, error) {
	return choose(m.con, prompt, func(answer string) (int, string, bool) {
		n, ok := parseQuantity(answer)
		if !ok || n > limit {
			return 0, retry, false
		}
		return n, "", true
	})
}

// choose asks until parse accepts an answer and returns the parsed value.
func choose[T any](con *console.Console, prompt string, parse func(answer string) (T, string, bool)) (T, error) {
	var v T
	_, err := con.Until(prompt, func(answer string) (string, bool) {
		var (
			retry string
			ok    bool
		)
		v, retry, ok = parse(answer)
		return retry, ok
	})
	return v, err
}
