package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/storefront/internal/catalog"
)

// Wish toggles a product in the wishlist.
func (a *App) Wish(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usage("wish <id>")
	}
	if !a.requireLogin("You need to login to add items to your wishlist") {
		return nil
	}
	p, err := a.product(args[0])
	if err != nil {
		return err
	}
	_, err = a.stores.Wishlist.Toggle(ctx, p)
	return err
}

func (a *App) Wishlist(ctx context.Context) error {
	if !a.requireLogin("You need to login to view your wishlist") {
		return nil
	}
	items := a.stores.Wishlist.Items()
	if len(items) == 0 {
		fmt.Fprintln(a.out, "Your wishlist is empty")
		return nil
	}
	for _, it := range items {
		fmt.Fprintf(a.out, "  %-16s %-32s %s\n", it.ID, it.Name, catalog.FormatPrice(it.Price))
	}
	return nil
}
