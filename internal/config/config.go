// Package config loads bitcube settings from the environment.
package config

import (
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"

	"github.com/SeamusWaldron/bitcube/internal/logging"
)

// Config holds settings shared by all commands.
// Command-line flags take precedence over these values.
type Config struct {
	Color          bool   `env:"BITCUBE_COLOR" envDefault:"true"`
	LogLevel       string `env:"BITCUBE_LOG_LEVEL" envDefault:"info"`
	ScrambleLength int    `env:"BITCUBE_SCRAMBLE_LENGTH" envDefault:"25"`
	AlgsFile       string `env:"BITCUBE_ALGS_FILE"`
}

// Load parses the configuration from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.ScrambleLength < 0 {
		return Config{}, fmt.Errorf("BITCUBE_SCRAMBLE_LENGTH must not be negative, got %d", cfg.ScrambleLength)
	}
	return cfg, nil
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// SlogLevel returns the configured log level.
func (c Config) SlogLevel() slog.Level {
	return logging.ParseLevel(c.LogLevel)
}
