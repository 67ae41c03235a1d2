// Package config assembles runtime settings for storefrontd and the
// storefront CLI. Sources are applied in order, each overriding the last:
// built-in defaults, .env plus STOREFRONT_* environment variables, a JSON
// or YAML file named by -c/-config, and finally command-line flags.
package config

import (
	"time"
)

// Config holds runtime settings.
//
// Fields:
//   - ListenAddr: gRPC bind address for storefrontd.
//   - StorageDriver / StorageDSN: kvstore backend (memory, sqlite, postgres, redis) and its DSN.
//   - RedisPrefix: key namespace used by the redis backend.
//   - LogLevel / LogFormat: logger settings (format text, json or zap).
//   - PasswordScheme: plain (stored as entered), bcrypt or argon2.
//   - SimulatedLatency: artificial delay applied to login and signup.
//   - TokenSecret / TokenTTL: HS256 secret and lifetime of access tokens.
//   - AuthRateLimit / AuthRateBurst: per-second limit on login and signup calls.
type Config struct {
	ListenAddr       string
	StorageDriver    string
	StorageDSN       string
	RedisPrefix      string
	LogLevel         string
	LogFormat        string
	PasswordScheme   string
	SimulatedLatency time.Duration
	TokenSecret      string
	TokenTTL         time.Duration
	AuthRateLimit    float64
	AuthRateBurst    int
}

// LoadDefaults populates Config with local development defaults.
// NOTE: TokenSecret must be overridden outside development.
func (c *Config) LoadDefaults() {
	c.ListenAddr = ":50051"
	c.StorageDriver = "sqlite"
	c.StorageDSN = "storefront.db"
	c.RedisPrefix = "storefront:"
	c.LogLevel = "info"
	c.LogFormat = "text"
	c.PasswordScheme = "plain"
	c.SimulatedLatency = 0
	c.TokenSecret = "secretKey"
	c.TokenTTL = 30 * time.Minute
	c.AuthRateLimit = 5
	c.AuthRateBurst = 10
}

// LoadConfig builds a Config from defaults, environment, the optional
// config file and args (usually os.Args[1:]).
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseEnv(cfg, ".env"); err != nil {
		return nil, err
	}
	if err := parseFile(cfg, args); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	return cfg, nil
}
