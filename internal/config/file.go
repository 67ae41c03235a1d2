package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/storefront/internal/flagx"
	"github.com/dmitrijs2005/storefront/internal/timex"
	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk shape of a config file. Pointer fields tell
// "absent" from "zero" so a file only overrides what it names.
type FileConfig struct {
	ListenAddr       *string         `json:"listen_addr" yaml:"listen_addr"`
	StorageDriver    *string         `json:"storage_driver" yaml:"storage_driver"`
	StorageDSN       *string         `json:"storage_dsn" yaml:"storage_dsn"`
	RedisPrefix      *string         `json:"redis_prefix" yaml:"redis_prefix"`
	LogLevel         *string         `json:"log_level" yaml:"log_level"`
	LogFormat        *string         `json:"log_format" yaml:"log_format"`
	PasswordScheme   *string         `json:"password_scheme" yaml:"password_scheme"`
	SimulatedLatency *timex.Duration `json:"simulated_latency" yaml:"simulated_latency"`
	TokenSecret      *string         `json:"token_secret" yaml:"token_secret"`
	TokenTTL         *timex.Duration `json:"token_ttl" yaml:"token_ttl"`
	AuthRateLimit    *float64        `json:"auth_rate_limit" yaml:"auth_rate_limit"`
	AuthRateBurst    *int            `json:"auth_rate_burst" yaml:"auth_rate_burst"`
}

// parseFile overlays the file named by -c/-config in args, if any. Files
// ending in .yaml or .yml are YAML, anything else is JSON.
func parseFile(cfg *Config, args []string) error {
	path := flagx.ConfigFileFlag(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	fc := &FileConfig{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, fc)
	default:
		err = json.Unmarshal(data, fc)
	}
	if err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	fc.apply(cfg)
	return nil
}

func (fc *FileConfig) apply(cfg *Config) {
	setString(&cfg.ListenAddr, fc.ListenAddr)
	setString(&cfg.StorageDriver, fc.StorageDriver)
	setString(&cfg.StorageDSN, fc.StorageDSN)
	setString(&cfg.RedisPrefix, fc.RedisPrefix)
	setString(&cfg.LogLevel, fc.LogLevel)
	setString(&cfg.LogFormat, fc.LogFormat)
	setString(&cfg.PasswordScheme, fc.PasswordScheme)
	setString(&cfg.TokenSecret, fc.TokenSecret)
	if fc.SimulatedLatency != nil {
		cfg.SimulatedLatency = fc.SimulatedLatency.Duration
	}
	if fc.TokenTTL != nil {
		cfg.TokenTTL = fc.TokenTTL.Duration
	}
	if fc.AuthRateLimit != nil {
		cfg.AuthRateLimit = *fc.AuthRateLimit
	}
	if fc.AuthRateBurst != nil {
		cfg.AuthRateBurst = *fc.AuthRateBurst
	}
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
