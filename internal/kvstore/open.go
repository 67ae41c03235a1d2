package kvstore

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/storefront/internal/common"
)

const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
)

type Options struct {
	Driver      string
	DSN         string
	RedisPrefix string
}

// Open returns the backend selected by opts.Driver.
func Open(ctx context.Context, opts Options) (Store, error) {
	switch opts.Driver {
	case DriverMemory:
		return NewMemoryStore(), nil
	case DriverSQLite, "":
		dsn := opts.DSN
		if dsn == "" {
			dsn = "storefront.db"
		}
		return OpenSQLite(ctx, dsn)
	case DriverPostgres:
		return OpenPostgres(ctx, opts.DSN)
	case DriverRedis:
		return OpenRedis(ctx, opts.DSN, opts.RedisPrefix)
	default:
		return nil, fmt.Errorf("%w: %q", common.ErrUnknownDriver, opts.Driver)
	}
}
