package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/dmitrijs2005/storefront/internal/catalog"
	"github.com/dmitrijs2005/storefront/internal/models"
)

var errUsage = errors.New("invalid arguments")

func usage(format string) error {
	return fmt.Errorf("%w, usage: %s", errUsage, format)
}

// Products lists the catalog, optionally narrowed to one category.
func (a *App) Products(ctx context.Context, args []string) error {
	category := catalog.CategoryAll
	if len(args) > 0 {
		category = args[0]
	}
	products := a.catalog.ByCategory(category)
	if len(products) == 0 {
		fmt.Fprintf(a.out, "No products in %q. Categories: %s\n", category, strings.Join(a.catalog.Categories(), ", "))
		return nil
	}
	a.printProducts(products)
	return nil
}

// Deals lists the Christmas deals.
func (a *App) Deals(ctx context.Context) error {
	a.printProducts(a.catalog.ChristmasDeals())
	return nil
}

// Search parses "<text> [-c category] [-s sort]" and lists the matches.
func (a *App) Search(ctx context.Context, args []string) error {
	q, err := parseSearchArgs(args)
	if err != nil {
		return err
	}
	a.search(q)
	return nil
}

func (a *App) search(q catalog.Query) {
	results := a.catalog.Search(q)
	if len(results) == 0 {
		fmt.Fprintf(a.out, "No products found for %q\n", q.Text)
		return
	}
	fmt.Fprintf(a.out, "%d results for %q\n", len(results), q.Text)
	a.printProducts(results)
}

func parseSearchArgs(args []string) (catalog.Query, error) {
	const format = "search <text> [-c category] [-s relevance|price-low|price-high|rating]"

	q := catalog.Query{Sort: catalog.SortRelevance}
	var words []string
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "-c", "-s":
			if i+1 >= len(args) {
				return catalog.Query{}, usage(format)
			}
			if args[i] == "-c" {
				q.Category = args[i+1]
			} else {
				q.Sort = args[i+1]
			}
			i++
		default:
			words = append(words, args[i])
		}
	}

	if !validSort(q.Sort) {
		return catalog.Query{}, usage(format)
	}
	q.Text = strings.Join(words, " ")
	return q, nil
}

func validSort(s string) bool {
	switch s {
	case catalog.SortRelevance, catalog.SortPriceLow, catalog.SortPriceHigh, catalog.SortRating:
		return true
	}
	return false
}

// Show prints one product.
func (a *App) Show(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usage("show <id>")
	}
	p, err := a.product(args[0])
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "%s (%s)\n", p.Name, p.ID)
	fmt.Fprintf(a.out, "  Category: %s\n", p.Category)
	if p.OriginalPrice != nil {
		fmt.Fprintf(a.out, "  Price:    %s (was %s, %d%% off)\n", catalog.FormatPrice(p.Price), catalog.FormatPrice(*p.OriginalPrice), p.DiscountPercent())
	} else {
		fmt.Fprintf(a.out, "  Price:    %s\n", catalog.FormatPrice(p.Price))
	}
	fmt.Fprintf(a.out, "  Rating:   %.1f\n", p.Rating)
	if len(p.Sizes) > 0 {
		fmt.Fprintf(a.out, "  Sizes:    %s\n", strings.Join(p.Sizes, ", "))
	}
	fmt.Fprintf(a.out, "  %s\n", p.Description)
	if a.isLoggedIn() && a.stores.Wishlist.Contains(p.ID) {
		fmt.Fprintln(a.out, "  In your wishlist")
	}
	return nil
}

func (a *App) product(id string) (models.Product, error) {
	p, ok := a.catalog.ByID(id)
	if !ok {
		return models.Product{}, fmt.Errorf("product %q not found", id)
	}
	return p, nil
}

func (a *App) printProducts(products []models.Product) {
	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tPRICE\tRATING\t")
	for _, p := range products {
		price := catalog.FormatPrice(p.Price)
		if p.IsOnSale && p.OriginalPrice != nil {
			price = fmt.Sprintf("%s (-%d%%)", price, p.DiscountPercent())
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%.1f\t\n", p.ID, p.Name, price, p.Rating)
	}
	_ = tw.Flush()
}
