package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the complete CLI configuration, assembled from the config
// file, XON_* environment variables, and flag overrides.
type Config struct {
	API     APIConfig     `mapstructure:"api"`
	Logging LoggingConfig `mapstructure:"logging"`
	Bulk    BulkConfig    `mapstructure:"bulk"`
}

// APIConfig holds client connection settings.
type APIConfig struct {
	BaseURL         string        `mapstructure:"base_url"`
	PasswordBaseURL string        `mapstructure:"password_base_url"`
	Key             string        `mapstructure:"key"`
	Timeout         time.Duration `mapstructure:"timeout"`
	Retries         int           `mapstructure:"retries"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}

// BulkConfig controls concurrent processing in bulk mode.
type BulkConfig struct {
	Workers int `mapstructure:"workers"`
}

// loadConfig reads the configuration. A missing config file is fine when
// no path was given; an explicit path that cannot be read is an error.
func loadConfig(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	// XON_API_KEY overrides api.key, and so on.
	v.SetEnvPrefix("XON")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	} else {
		v.SetConfigName("xon")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "xon"))
		}

		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
			// No config file; defaults and environment apply.
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// setDefaults sets default configuration values. Keys without a
// meaningful default still get an empty one so environment overrides
// reach Unmarshal.
func setDefaults(v *viper.Viper) {
	v.SetDefault("api.base_url", "")
	v.SetDefault("api.password_base_url", "")
	v.SetDefault("api.key", "")
	v.SetDefault("api.timeout", 30*time.Second)
	v.SetDefault("api.retries", 3)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)

	v.SetDefault("bulk.workers", 5)
}

// validateConfig checks settings the client itself does not see.
// Timeout and retry bounds are enforced by the client constructor.
func validateConfig(cfg *Config) error {
	switch cfg.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid logging.level: %s", cfg.Logging.Level)
	}

	switch cfg.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("invalid logging.format: %s", cfg.Logging.Format)
	}

	if cfg.Bulk.Workers < 1 {
		return fmt.Errorf("bulk.workers must be at least 1, got %d", cfg.Bulk.Workers)
	}

	return nil
}
