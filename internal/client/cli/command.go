package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrijs2005/storefront/internal/buildinfo"
	"github.com/dmitrijs2005/storefront/internal/catalog"
	"github.com/dmitrijs2005/storefront/internal/config"
)

// NewRootCommand builds the storefront command tree. Without a subcommand
// it opens storage and starts the interactive shell; the root leaves flag
// parsing to config.LoadConfig so the storage flags stay the same as
// storefrontd's. The catalog subcommands need no storage.
func NewRootCommand(ctx context.Context, out io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:   "storefront",
		Short: "Christmas storefront shell",
		Long: `Browse the catalog and manage a cart and wishlist from the terminal.

Run without a subcommand to start the interactive shell. Storage flags
(-driver, -d, -redis-prefix, -c <config file>) and the STOREFRONT_*
environment variables select the same backend storefrontd uses.`,
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(args)
			if err != nil {
				return err
			}
			app, err := NewApp(ctx, cfg)
			if err != nil {
				return err
			}
			return app.Run(ctx)
		},
	}

	root.SetOut(out)
	root.AddCommand(
		productsCmd(out),
		dealsCmd(out),
		searchCmd(out),
		versionCmd(out),
	)
	return root
}

// catalogApp is an App without storage, enough for read-only listings.
func catalogApp(out io.Writer) *App {
	return &App{catalog: catalog.Default(), out: out}
}

func productsCmd(out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "products [category]",
		Short: "List products, optionally in one category",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return catalogApp(out).Products(cmd.Context(), args)
		},
	}
}

func dealsCmd(out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "deals",
		Short: "List Christmas deals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return catalogApp(out).Deals(cmd.Context())
		},
	}
}

func searchCmd(out io.Writer) *cobra.Command {
	var category, sort string
	cmd := &cobra.Command{
		Use:   "search <text>",
		Short: "Search product names and descriptions",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !validSort(sort) {
				return fmt.Errorf("%w: unknown sort %q", errUsage, sort)
			}
			catalogApp(out).search(catalog.Query{
				Text:     strings.Join(args, " "),
				Category: category,
				Sort:     sort,
			})
			return nil
		},
	}
	cmd.Flags().StringVarP(&category, "category", "c", "", "limit results to a category")
	cmd.Flags().StringVarP(&sort, "sort", "s", catalog.SortRelevance, "relevance, price-low, price-high or rating")
	return cmd
}

func versionCmd(out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			buildinfo.PrintBuildData(out)
		},
	}
}
