package cli

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/storefront/internal/catalog"
	"github.com/dmitrijs2005/storefront/internal/models"
)

// Add puts a product in the cart: "add <id> [size] [qty]". Sized products
// need a size; the quantity is clamped to 1..10.
func (a *App) Add(ctx context.Context, args []string) error {
	const format = "add <id> [size] [qty]"
	if len(args) < 1 || len(args) > 3 {
		return usage(format)
	}
	if !a.requireLogin("You need to login to add items to your cart") {
		return nil
	}

	p, err := a.product(args[0])
	if err != nil {
		return err
	}
	rest := args[1:]

	var size string
	if len(p.Sizes) > 0 {
		if len(rest) == 0 {
			fmt.Fprintf(a.out, "Please select a size: %s\n", strings.Join(p.Sizes, ", "))
			return nil
		}
		size, rest = rest[0], rest[1:]
		if !p.HasSize(size) {
			return fmt.Errorf("size %q is not available for %s", size, p.Name)
		}
	}

	qty := 1
	switch len(rest) {
	case 0:
	case 1:
		n, err := strconv.Atoi(rest[0])
		if err != nil {
			return usage(format)
		}
		qty = catalog.ClampQuantity(n)
	default:
		return usage(format)
	}

	_, err = a.stores.Cart.AddItem(ctx, p.CartLine(qty, size))
	return err
}

// Remove drops a cart line: "remove <id> [size]".
func (a *App) Remove(ctx context.Context, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return usage("remove <id> [size]")
	}
	if !a.requireLogin("You need to login to manage your cart") {
		return nil
	}
	return a.stores.Cart.RemoveItem(ctx, args[0], optional(args, 1))
}

// Qty sets a line's quantity: "qty <id> <n> [size]".
func (a *App) Qty(ctx context.Context, args []string) error {
	const format = "qty <id> <n> [size]"
	if len(args) < 2 || len(args) > 3 {
		return usage(format)
	}
	n, err := strconv.Atoi(args[1])
	if err != nil {
		return usage(format)
	}
	if !a.requireLogin("You need to login to manage your cart") {
		return nil
	}
	return a.stores.Cart.UpdateQuantity(ctx, args[0], n, optional(args, 2))
}

// Cart prints the lines and totals.
func (a *App) Cart(ctx context.Context) error {
	if !a.requireLogin("You need to login to view your cart") {
		return nil
	}
	cart := a.stores.Cart
	lines := cart.Items()
	if len(lines) == 0 {
		fmt.Fprintln(a.out, "Your cart is empty")
		return nil
	}
	printLines(a, lines)
	fmt.Fprintf(a.out, "Total (%d items): %s\n", cart.TotalItems(), catalog.FormatPrice(cart.TotalPrice()))
	return nil
}

func (a *App) Clear(ctx context.Context) error {
	if !a.requireLogin("You need to login to manage your cart") {
		return nil
	}
	return a.stores.Cart.ClearCart(ctx)
}

// Checkout walks through the shipping and payment form, prefilled from
// the session, and places the order.
func (a *App) Checkout(ctx context.Context) error {
	if !a.requireLogin("You need to login before making a purchase") {
		return nil
	}
	if len(a.stores.Cart.Items()) == 0 {
		fmt.Fprintln(a.out, "Your cart is empty")
		return nil
	}

	form := a.stores.Checkout.PrefillForm()
	fields := []struct {
		label string
		value *string
	}{
		{"Full name", &form.FullName},
		{"Email", &form.Email},
		{"Phone", &form.Phone},
		{"Address", &form.Address},
		{"City", &form.City},
	}
	for _, f := range fields {
		v, err := a.ask(f.label, *f.value)
		if err != nil {
			return err
		}
		*f.value = v
	}

	method, err := a.ask("Payment method (gcash, bank, cod)", string(form.PaymentMethod))
	if err != nil {
		return err
	}
	form.PaymentMethod = models.PaymentMethod(method)

	switch form.PaymentMethod {
	case models.PaymentGCash:
		if form.GCashNumber, err = a.ask("GCash number", ""); err != nil {
			return err
		}
	case models.PaymentBank:
		if form.BankName, err = a.ask("Bank name", ""); err != nil {
			return err
		}
		if form.AccountNumber, err = a.ask("Account number", ""); err != nil {
			return err
		}
	}

	receipt, verrs, err := a.stores.Checkout.PlaceOrder(ctx, form)
	if err != nil {
		return err
	}
	if verrs != nil {
		for _, field := range slices.Sorted(maps.Keys(verrs)) {
			fmt.Fprintf(a.out, "  %s: %s\n", field, verrs[field])
		}
		return nil
	}

	fmt.Fprintf(a.out, "Order %s placed\n", receipt.OrderID)
	printLines(a, receipt.Lines)
	fmt.Fprintf(a.out, "Total (%d items): %s, paid by %s\n", receipt.TotalItems, catalog.FormatPrice(receipt.TotalPrice), receipt.PaymentMethod)
	return nil
}

func printLines(a *App, lines []models.CartLine) {
	for _, l := range lines {
		name := l.Name
		if l.Size != "" {
			name = fmt.Sprintf("%s (%s)", l.Name, l.Size)
		}
		fmt.Fprintf(a.out, "  %-32s x%-3d %s\n", name, l.Quantity, catalog.FormatPrice(l.Subtotal()))
	}
}

func optional(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}
