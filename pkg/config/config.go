package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/fadedpez/deckcore/pkg/deck"
	"github.com/fadedpez/deckcore/pkg/logging"
)

// Config holds all configuration for decks built by this module
type Config struct {
	// Logging
	LogLevel logging.Level

	// Shuffling
	ShuffleSeed    int64
	HasShuffleSeed bool // false means shuffles are seeded from crypto/rand

	// Environment
	Environment string // "development" or "production"
}

// Load reads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		// Only return error if file exists but couldn't be loaded
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("error loading .env file: %w", err)
		}
	}

	return fromEnv()
}

// LoadFile reads the configuration from the given .env files, then the environment
func LoadFile(filenames ...string) (*Config, error) {
	if err := godotenv.Load(filenames...); err != nil {
		return nil, fmt.Errorf("error loading env files: %w", err)
	}

	return fromEnv()
}

func fromEnv() (*Config, error) {
	level, err := logging.ParseLevel(getEnvWithDefault("DECK_LOG_LEVEL", "INFO"))
	if err != nil {
		return nil, fmt.Errorf("invalid DECK_LOG_LEVEL: %w", err)
	}

	cfg := &Config{
		LogLevel:    level,
		Environment: getEnvWithDefault("ENVIRONMENT", "development"),
	}

	if raw := os.Getenv("DECK_SHUFFLE_SEED"); raw != "" {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid DECK_SHUFFLE_SEED %q: %w", raw, err)
		}
		cfg.ShuffleSeed = seed
		cfg.HasShuffleSeed = true
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate checks if all configuration values are usable
func (c *Config) validate() error {
	if c.Environment != "development" && c.Environment != "production" {
		return fmt.Errorf("ENVIRONMENT must be development or production, got %q", c.Environment)
	}
	return nil
}

// IsDevelopment returns true if running in development environment
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// Options builds deck options from the configuration
func (c *Config) Options() *deck.Options {
	logger := logging.NewLogger(c.LogLevel)
	opts := deck.NewOptions()
	if c.HasShuffleSeed {
		opts.Rand = deck.NewSource(c.ShuffleSeed)
		logger.Info("deck shuffles seeded with %d", c.ShuffleSeed)
	}
	opts.Logger = logger
	return opts
}

// getEnvWithDefault returns environment variable value or default if not set
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
