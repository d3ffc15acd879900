package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"family-tree/backend/internal/constants"
	apperrors "family-tree/backend/pkg/errors"
)

// Config holds all application configuration
type Config struct {
	// App
	Port string
	Env  string

	// SeedFile is an optional YAML scenario applied to the tree at startup
	SeedFile string

	// ShutdownTimeout bounds graceful HTTP shutdown
	ShutdownTimeout time.Duration
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file, but don't fail if it doesn't exist
	_ = godotenv.Load()

	timeoutSeconds, err := getEnvInt("SHUTDOWN_TIMEOUT_SECONDS", constants.DefaultShutdownTimeoutSeconds)
	if err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	cfg := &Config{
		Port:            getEnv("PORT", constants.DefaultPort),
		Env:             getEnv("ENV", constants.EnvDevelopment),
		SeedFile:        getEnv("SEED_FILE", ""),
		ShutdownTimeout: time.Duration(timeoutSeconds) * time.Second,
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks that required configuration values are set
func (c *Config) Validate() error {
	if c.Port == "" {
		return apperrors.NewConfigMissingRequired("PORT")
	}
	if _, err := strconv.Atoi(c.Port); err != nil {
		return apperrors.NewConfigValidationFailed("PORT", "must be numeric")
	}
	switch c.Env {
	case constants.EnvDevelopment, constants.EnvProduction, constants.EnvTest:
	default:
		return apperrors.NewConfigValidationFailed("ENV", fmt.Sprintf("unknown environment %q", c.Env))
	}
	if c.ShutdownTimeout <= 0 {
		return apperrors.NewConfigValidationFailed("SHUTDOWN_TIMEOUT_SECONDS", "must be positive")
	}
	if c.SeedFile != "" {
		if _, err := os.Stat(c.SeedFile); err != nil {
			return apperrors.NewConfigValidationFailed("SEED_FILE", err.Error())
		}
	}
	return nil
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Env == constants.EnvDevelopment
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.Env == constants.EnvProduction
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	result, err := strconv.Atoi(value)
	if err != nil {
		return 0, apperrors.NewConfigValidationFailed(key, "must be an integer")
	}
	return result, nil
}
