// Package config loads application settings from the environment,
// optionally seeded from a .env file.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"crypto-volatility-lab/internal/domain"
)

// Config holds settings for the dashboard server and report tooling.
type Config struct {
	Server struct {
		ListenAddr      string        `envconfig:"LISTEN_ADDR" default:":8080"`
		ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
	}

	Reports struct {
		OutputDir string `envconfig:"REPORT_OUTPUT_DIR" default:"reports"`
	}

	// Defaults applied to new sessions before the user touches any control.
	Generator struct {
		Pattern   string  `envconfig:"DEFAULT_PATTERN" default:"wave"`
		Amplitude float64 `envconfig:"DEFAULT_AMPLITUDE" default:"0.5"`
		Frequency float64 `envconfig:"DEFAULT_FREQUENCY" default:"1.0"`
		Drift     float64 `envconfig:"DEFAULT_DRIFT" default:"0.0"`
		Noise     float64 `envconfig:"DEFAULT_NOISE" default:"0.3"`
		Length    int     `envconfig:"DEFAULT_LENGTH" default:"90"`
	}
}

// DefaultParams returns the generator defaults as a parameter set.
func (c *Config) DefaultParams() domain.Params {
	return domain.Params{
		Pattern:   domain.Pattern(c.Generator.Pattern),
		Amplitude: c.Generator.Amplitude,
		Frequency: c.Generator.Frequency,
		Drift:     c.Generator.Drift,
		Noise:     c.Generator.Noise,
		Length:    c.Generator.Length,
	}
}

// ValidateConfig checks that loaded settings are usable.
func ValidateConfig(cfg *Config) error {
	if cfg.Server.ListenAddr == "" {
		return fmt.Errorf("LISTEN_ADDR must not be empty")
	}
	if cfg.Server.ShutdownTimeout < time.Second {
		return fmt.Errorf("SHUTDOWN_TIMEOUT must be at least 1s")
	}
	if cfg.Reports.OutputDir == "" {
		return fmt.Errorf("REPORT_OUTPUT_DIR must not be empty")
	}
	if err := cfg.DefaultParams().Validate(); err != nil {
		return fmt.Errorf("generator defaults: %w", err)
	}
	return nil
}

// LoadConfig loads settings from the environment. A .env file is read
// when present but is not required.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("load .env file: %w", err)
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("process environment: %w", err)
	}

	if err := ValidateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}
