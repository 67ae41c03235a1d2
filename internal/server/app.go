// Package server wires storefrontd together: it opens the configured
// key-value backend, restores the session, and serves the storefront over
// gRPC until the process is signalled.
package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrijs2005/storefront/internal/catalog"
	"github.com/dmitrijs2005/storefront/internal/config"
	"github.com/dmitrijs2005/storefront/internal/kvstore"
	"github.com/dmitrijs2005/storefront/internal/logging"
	"github.com/dmitrijs2005/storefront/internal/services"

	gs "github.com/dmitrijs2005/storefront/internal/server/grpc"
)

type App struct {
	config *config.Config
	logger logging.Logger
	store  kvstore.Store
	stores *services.Stores
	server *gs.GRPCServer
}

// NewApp opens storage and builds the stores and the gRPC server. Logs go
// to w. Failing to load the restored identity's cart or wishlist is logged
// and does not stop startup.
func NewApp(ctx context.Context, c *config.Config, w io.Writer) (*App, error) {
	logger, err := logging.New(c.LogFormat, c.LogLevel, w)
	if err != nil {
		return nil, fmt.Errorf("logger init error: %w", err)
	}

	store, err := kvstore.Open(ctx, kvstore.Options{
		Driver:      c.StorageDriver,
		DSN:         c.StorageDSN,
		RedisPrefix: c.RedisPrefix,
	})
	if err != nil {
		return nil, fmt.Errorf("storage init error: %w", err)
	}

	stores, err := services.NewStores(ctx, store,
		services.WithLogger(logger),
		services.WithLatency(c.SimulatedLatency),
		services.WithPasswordScheme(c.PasswordScheme),
	)
	if stores == nil {
		_ = store.Close()
		return nil, fmt.Errorf("stores init error: %w", err)
	}
	if err != nil {
		logger.Warn(ctx, "restored session loaded with errors", "error", err)
	}

	srv := gs.NewGRPCServer(gs.Options{
		Address:   c.ListenAddr,
		SecretKey: c.TokenSecret,
		TokenTTL:  c.TokenTTL,
		AuthRate:  c.AuthRateLimit,
		AuthBurst: c.AuthRateBurst,
	}, logger, stores, catalog.Default())

	return &App{config: c, logger: logger, store: store, stores: stores, server: srv}, nil
}

// Run serves until ctx is cancelled or SIGINT, SIGTERM or SIGQUIT arrives,
// then closes storage.
func (app *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	app.logger.Info(ctx, "Starting app...", "driver", app.config.StorageDriver)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return app.server.Run(gctx)
	})

	err := g.Wait()
	if cerr := app.store.Close(); cerr != nil {
		err = errors.Join(err, fmt.Errorf("close storage: %w", cerr))
	}
	if z, ok := app.logger.(*logging.ZapLogger); ok {
		_ = z.Sync()
	}

	if err != nil {
		app.logger.Error(context.Background(), "app stopped with error", "error", err)
		return err
	}
	app.logger.Info(context.Background(), "App stopped")
	return nil
}

// Stores exposes the wired stores.
func (app *App) Stores() *services.Stores { return app.stores }

// Main is the storefrontd entry point body: it loads configuration from
// args and runs the app.
func Main(ctx context.Context, args []string) error {
	cfg, err := config.LoadConfig(args)
	if err != nil {
		return err
	}
	app, err := NewApp(ctx, cfg, os.Stdout)
	if err != nil {
		return err
	}
	return app.Run(ctx)
}
