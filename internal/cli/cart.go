package cli

import (
	"context"
	"errors"
	"strconv"

	"github.com/brunohmachado/vitrine/internal/common"
	"github.com/brunohmachado/vitrine/internal/money"
	"github.com/brunohmachado/vitrine/internal/pages"
)

// cartPage renders the cart contents and summary on mount and binds the
// cart mutation commands.
type cartPage struct {
	app *App
}

func (p *cartPage) Name() string { return pages.Cart }

func (p *cartPage) Mount(ctx context.Context, fragment string) error {
	a := p.app
	a.renderCart(ctx)
	a.bindCommand("qty", a.cmdUpdateQuantity)
	a.bindCommand("rm", a.cmdRemoveFromCart)
	a.bindCommand("clearcart", a.cmdClearCart)
	a.bindCommand("checkout", a.cmdCheckout)
	return nil
}

func (p *cartPage) Unmount(ctx context.Context) {
	p.app.unbindCommands("qty", "rm", "clearcart", "checkout")
}

// renderCart prints every cart line and the summary block.
func (a *App) renderCart(ctx context.Context) {
	items, err := a.cart.Items(ctx)
	if err != nil {
		a.println("error:", err)
		return
	}

	if len(items) == 0 {
		a.println("Your cart is empty.")
		return
	}

	for _, it := range items {
		lineTotal := money.Parse(it.Price) * float64(it.Quantity)
		a.printf("[%s] %dx %s - %s (%s)\n", it.ID, it.Quantity, it.Name, it.Price, money.Format(lineTotal))
	}

	sum, err := a.cart.Summary(ctx)
	if err != nil {
		a.println("error:", err)
		return
	}
	a.printf("Items: %d  Subtotal: %s\n", sum.ItemCount, money.Format(sum.Subtotal))
}

// cmdUpdateQuantity: qty <id> <quantity>. Zero removes the line.
func (a *App) cmdUpdateQuantity(ctx context.Context, args []string) {
	if len(args) != 2 {
		a.println("Usage: qty <id> <quantity>")
		return
	}
	quantity, err := strconv.Atoi(args[1])
	if err != nil {
		a.println("Usage: qty <id> <quantity>")
		return
	}
	if err := a.cart.UpdateQuantity(ctx, args[0], quantity); err != nil {
		a.println("error:", err)
	}
}

// cmdRemoveFromCart: rm <id>.
func (a *App) cmdRemoveFromCart(ctx context.Context, args []string) {
	if len(args) != 1 {
		a.println("Usage: rm <id>")
		return
	}
	if err := a.cart.Remove(ctx, args[0]); err != nil {
		a.println("error:", err)
	}
}

func (a *App) cmdClearCart(ctx context.Context, args []string) {
	if err := a.cart.Clear(ctx); err != nil {
		a.println("error:", err)
		return
	}
	a.println("Cart cleared.")
}

// cmdCheckout snapshots the cart into an order and clears the cart.
func (a *App) cmdCheckout(ctx context.Context, args []string) {
	user := a.currentUser(ctx)

	items, err := a.cart.Items(ctx)
	if err != nil {
		a.println("error:", err)
		return
	}

	order, err := a.orders.Place(ctx, user, items)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrNotLoggedIn):
			a.println("Log in to place your order.")
		case errors.Is(err, common.ErrEmptyCart):
			a.println("Your cart is empty.")
		default:
			a.println("error:", err)
		}
		return
	}

	// The order engine snapshots; clearing the cart is on us.
	if err := a.cart.Clear(ctx); err != nil {
		a.println("error:", err)
		return
	}

	a.printf("Order %s placed.\n", order.ID)
	a.printf("Subtotal: %s  Discount: %s  Total: %s\n",
		money.Format(order.Subtotal), money.Format(order.Discount), money.Format(order.Total))
}
