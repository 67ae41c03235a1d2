package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/storefront/internal/catalog"
	"github.com/dmitrijs2005/storefront/internal/config"
	"github.com/dmitrijs2005/storefront/internal/kvstore"
	"github.com/dmitrijs2005/storefront/internal/logging"
	"github.com/dmitrijs2005/storefront/internal/services"
)

type App struct {
	store   kvstore.Store
	stores  *services.Stores
	catalog *catalog.Catalog
	logger  logging.Logger
	reader  *bufio.Reader
	out     io.Writer
}

// NewApp opens the storage selected by c and restores the last session.
// Logs go to stderr; prompts and notifications go to stdout.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger, err := logging.New(c.LogFormat, c.LogLevel, os.Stderr)
	if err != nil {
		return nil, err
	}

	store, err := kvstore.Open(ctx, kvstore.Options{
		Driver:      c.StorageDriver,
		DSN:         c.StorageDSN,
		RedisPrefix: c.RedisPrefix,
	})
	if err != nil {
		return nil, fmt.Errorf("error opening storage: %w", err)
	}

	app, err := newApp(ctx, store, os.Stdin, os.Stdout, logger,
		services.WithLatency(c.SimulatedLatency),
		services.WithPasswordScheme(c.PasswordScheme),
	)
	if err != nil {
		_ = store.Close()
		return nil, err
	}
	return app, nil
}

func newApp(ctx context.Context, store kvstore.Store, in io.Reader, out io.Writer, logger logging.Logger, opts ...services.Option) (*App, error) {
	opts = append(opts,
		services.WithLogger(logger),
		services.WithNotifier(toastPrinter{w: out}),
	)

	stores, err := services.NewStores(ctx, store, opts...)
	if stores == nil {
		return nil, err
	}
	if err != nil {
		logger.Warn(ctx, "restored session loaded with errors", "error", err)
	}

	return &App{
		store:   store,
		stores:  stores,
		catalog: catalog.Default(),
		logger:  logger,
		reader:  bufio.NewReader(in),
		out:     out,
	}, nil
}

// Run starts the REPL and closes storage when it returns.
func (a *App) Run(ctx context.Context) error {
	defer func() {
		if err := a.store.Close(); err != nil {
			a.logger.Error(ctx, "close storage", "error", err)
		}
	}()

	fmt.Fprintln(a.out, "Welcome to the Christmas storefront (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, a.reader)
	return nil
}

func (a *App) isLoggedIn() bool {
	return a.stores.Session.Current() != nil
}

func (a *App) getStatus() string {
	ident := a.stores.Session.Current()
	if ident == nil {
		return ""
	}
	return fmt.Sprintf("(%s, %d in cart)", ident.Name, a.stores.Cart.TotalItems())
}

// requireLogin prints the login prompt toast and reports false when nobody
// is logged in.
func (a *App) requireLogin(reason string) bool {
	if a.isLoggedIn() {
		return true
	}
	toastPrinter{w: a.out}.Notify("Please login", reason, true)
	return false
}
