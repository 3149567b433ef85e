// Package config provides configuration for the receipt points service.
// It loads configuration from environment variables and .env files.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Defaults.
const (
	defaultPort   = "8080"
	defaultDBPath = "./data/receipts.db"
)

// Config represents the application configuration.
type Config struct {
	Port   string
	DBPath string
	Debug  bool
}

// Load loads configuration from environment variables.
// It automatically loads a .env file from the current directory if available.
// You can optionally specify a custom .env file path.
func Load(envPath ...string) (*Config, error) {
	if len(envPath) > 0 && envPath[0] != "" {
		if err := godotenv.Load(envPath[0]); err != nil {
			return nil, fmt.Errorf("failed to load .env file: %w", err)
		}
	} else {
		// Try to load .env from current directory (ignore error if not found).
		_ = godotenv.Load()
	}

	return &Config{
		Port:   getEnvOrDefault("PORT", defaultPort),
		DBPath: getEnvOrDefault("DB_PATH", defaultDBPath),
		Debug:  os.Getenv("DEBUG") == "true",
	}, nil
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Port
}

// getEnvOrDefault returns the value of the environment variable or a default value if not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
