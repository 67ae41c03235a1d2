package config

import (
	"flag"
	"io"

	"github.com/dmitrijs2005/storefront/internal/flagx"
)

var knownFlags = []string{
	"-a", "-driver", "-d", "-redis-prefix", "-log-level", "-log-format",
	"-password-scheme", "-latency", "-s", "-t", "-rate", "-burst",
}

// parseFlags applies command-line overrides.
//
// Supported flags:
//
//	-a string              gRPC bind address (e.g. ":50051")
//	-driver string         storage driver: memory, sqlite, postgres, redis
//	-d string              storage DSN
//	-redis-prefix string   key prefix for the redis driver
//	-log-level string      debug, info, warn, error
//	-log-format string     text, json, zap
//	-password-scheme string plain, bcrypt or argon2
//	-latency duration      simulated auth latency (e.g. "800ms")
//	-s string              token signing secret
//	-t duration            access token lifetime
//	-rate float            login/signup calls per second
//	-burst int             login/signup burst size
//
// Unrelated arguments are filtered out first with flagx.FilterArgs so the
// CLI's own positional arguments do not trip the parser.
func parseFlags(cfg *Config, args []string) error {
	fs := flag.NewFlagSet("storefront", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.ListenAddr, "a", cfg.ListenAddr, "address and port to run server")
	fs.StringVar(&cfg.StorageDriver, "driver", cfg.StorageDriver, "storage driver")
	fs.StringVar(&cfg.StorageDSN, "d", cfg.StorageDSN, "storage DSN")
	fs.StringVar(&cfg.RedisPrefix, "redis-prefix", cfg.RedisPrefix, "redis key prefix")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "log format")
	fs.StringVar(&cfg.PasswordScheme, "password-scheme", cfg.PasswordScheme, "password scheme")
	fs.DurationVar(&cfg.SimulatedLatency, "latency", cfg.SimulatedLatency, "simulated auth latency")
	fs.StringVar(&cfg.TokenSecret, "s", cfg.TokenSecret, "secret key")
	fs.DurationVar(&cfg.TokenTTL, "t", cfg.TokenTTL, "access token validity")
	fs.Float64Var(&cfg.AuthRateLimit, "rate", cfg.AuthRateLimit, "auth calls per second")
	fs.IntVar(&cfg.AuthRateBurst, "burst", cfg.AuthRateBurst, "auth burst")

	return fs.Parse(flagx.FilterArgs(args, knownFlags))
}
