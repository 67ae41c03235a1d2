package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const envPrefix = "STOREFRONT_"

// parseEnv loads dotenv (if the file exists) into the process environment
// without overriding variables already set, then copies every STOREFRONT_*
// variable that is present into cfg.
func parseEnv(cfg *Config, dotenv string) error {
	if dotenv != "" {
		if err := godotenv.Load(dotenv); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", dotenv, err)
		}
	}

	str := func(name string, dst *string) {
		if v, ok := os.LookupEnv(envPrefix + name); ok {
			*dst = v
		}
	}
	str("LISTEN_ADDR", &cfg.ListenAddr)
	str("STORAGE_DRIVER", &cfg.StorageDriver)
	str("STORAGE_DSN", &cfg.StorageDSN)
	str("REDIS_PREFIX", &cfg.RedisPrefix)
	str("LOG_LEVEL", &cfg.LogLevel)
	str("LOG_FORMAT", &cfg.LogFormat)
	str("PASSWORD_SCHEME", &cfg.PasswordScheme)
	str("TOKEN_SECRET", &cfg.TokenSecret)

	durations := map[string]*time.Duration{
		"SIMULATED_LATENCY": &cfg.SimulatedLatency,
		"TOKEN_TTL":         &cfg.TokenTTL,
	}
	for name, dst := range durations {
		v, ok := os.LookupEnv(envPrefix + name)
		if !ok {
			continue
		}
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s%s: %w", envPrefix, name, err)
		}
		*dst = d
	}

	if v, ok := os.LookupEnv(envPrefix + "AUTH_RATE_LIMIT"); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%sAUTH_RATE_LIMIT: %w", envPrefix, err)
		}
		cfg.AuthRateLimit = f
	}
	if v, ok := os.LookupEnv(envPrefix + "AUTH_RATE_BURST"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%sAUTH_RATE_BURST: %w", envPrefix, err)
		}
		cfg.AuthRateBurst = n
	}
	return nil
}
