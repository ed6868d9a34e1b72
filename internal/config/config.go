// Package config handles application configuration from environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/zapponejosh/luach-api/internal/holiday"
)

// Config holds all application configuration.
// Fields are populated from environment variables.
type Config struct {
	// Server settings
	Port            int           `env:"PORT" envDefault:"8080"`
	Env             string        `env:"ENV" envDefault:"development"` // development, staging, production
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`

	// Database
	DatabasePath string `env:"DATABASE_PATH" envDefault:"./data/luach.db"`
	CacheDays    bool   `env:"CACHE_DAYS" envDefault:"true"` // store resolved days in SQLite

	// Authentication for admin endpoints
	APIKey string `env:"API_KEY"`

	// Logging
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`  // debug, info, warn, error
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"` // json, text

	// Calendar
	InIsrael       bool   `env:"IN_ISRAEL" envDefault:"false"`
	ModernHolidays bool   `env:"MODERN_HOLIDAYS" envDefault:"true"`
	WalledCity     bool   `env:"WALLED_CITY" envDefault:"false"`
	CyclesFile     string `env:"CYCLES_FILE"` // YAML study cycle overrides
	TimeZone       string `env:"TIMEZONE" envDefault:"UTC"`
}

// Environment constants
const (
	EnvDevelopment = "development"
	EnvStaging     = "staging"
	EnvProduction  = "production"
)

// Load reads configuration from environment variables.
// In development, it first loads from .env file if present.
func Load() (*Config, error) {
	// No-op in production where env vars are set directly
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks that all required configuration is present and valid.
func (c *Config) Validate() error {
	var errs []error

	if c.Port < 1 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("PORT must be between 1 and 65535, got %d", c.Port))
	}

	switch c.Env {
	case EnvDevelopment, EnvStaging, EnvProduction:
	default:
		errs = append(errs, fmt.Errorf("ENV must be one of: development, staging, production; got %q", c.Env))
	}

	if c.DatabasePath == "" && c.CacheDays {
		errs = append(errs, errors.New("DATABASE_PATH is required when CACHE_DAYS is set"))
	}

	if c.Env == EnvProduction && c.APIKey == "" {
		errs = append(errs, errors.New("API_KEY is required in production"))
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error; got %q", c.LogLevel))
	}

	switch c.LogFormat {
	case "json", "text":
	default:
		errs = append(errs, fmt.Errorf("LOG_FORMAT must be one of: json, text; got %q", c.LogFormat))
	}

	if c.CyclesFile != "" {
		if _, err := os.Stat(c.CyclesFile); err != nil {
			errs = append(errs, fmt.Errorf("CYCLES_FILE: %w", err))
		}
	}

	if _, err := time.LoadLocation(c.TimeZone); err != nil {
		errs = append(errs, fmt.Errorf("TIMEZONE: %w", err))
	}

	if c.ShutdownTimeout <= 0 {
		errs = append(errs, fmt.Errorf("SHUTDOWN_TIMEOUT must be positive, got %s", c.ShutdownTimeout))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Env == EnvDevelopment
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.Env == EnvProduction
}

// HolidayOptions returns the default holiday options.
func (c *Config) HolidayOptions() holiday.Options {
	return holiday.Options{
		InIsrael:       c.InIsrael,
		ModernHolidays: c.ModernHolidays,
		WalledCity:     c.WalledCity,
	}
}

// Location returns the time zone used to decide which civil day is today.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
}
