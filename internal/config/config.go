// Package config loads hunterlog settings from the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	StoreSQLite = "sqlite"
	StoreBolt   = "bolt"
)

// Config holds process-level settings. Flags on the CLI override these.
type Config struct {
	DBPath   string `env:"HUNTERLOG_DB"`
	Store    string `env:"HUNTERLOG_STORE" envDefault:"sqlite"`
	LogLevel string `env:"HUNTERLOG_LOG_LEVEL" envDefault:"warn"`
	Timezone string `env:"HUNTERLOG_TZ"`
}

// Load parses the environment into a Config and fills derived defaults.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Normalize(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Normalize validates the backend name and resolves an empty DB path.
func (c *Config) Normalize() error {
	c.Store = strings.ToLower(strings.TrimSpace(c.Store))
	if c.Store == "" {
		c.Store = StoreSQLite
	}
	switch c.Store {
	case StoreSQLite, StoreBolt:
	default:
		return fmt.Errorf("invalid store %q (want sqlite or bolt)", c.Store)
	}
	if strings.TrimSpace(c.DBPath) == "" {
		p, err := DefaultDBPath(c.Store)
		if err != nil {
			return err
		}
		c.DBPath = p
	}
	return nil
}

// Location returns the configured timezone, or time.Local when unset.
func (c Config) Location() (*time.Location, error) {
	if strings.TrimSpace(c.Timezone) == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// DefaultDBPath returns the default state file location for a backend.
func DefaultDBPath(store string) (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	name := ".hunterlog.db"
	if store == StoreBolt {
		name = ".hunterlog.bolt"
	}
	return filepath.Join(homeDir, name), nil
}
