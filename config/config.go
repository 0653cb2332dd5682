package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Config holds the application configuration
type Config struct {
	APIBaseURL     string        // Yoga backend base URL
	Port           string        // Service port
	FlashSecret    string        // Secret for signing the flash cookie
	RequestTimeout time.Duration // Per-request timeout toward the backend
}

// Load reads configuration from environment variables with sensible defaults
func Load() (*Config, error) {
	config := &Config{
		APIBaseURL:     getEnv("API_BASE_URL", "http://localhost:8080"),
		Port:           getEnv("PORT", "4200"),
		FlashSecret:    getEnv("FLASH_SECRET", "yoga-front-dev"),
		RequestTimeout: 3 * time.Second,
	}

	// Parse REQUEST_TIMEOUT if provided
	if timeoutStr := os.Getenv("REQUEST_TIMEOUT"); timeoutStr != "" {
		duration, err := time.ParseDuration(timeoutStr)
		if err != nil {
			return nil, fmt.Errorf("invalid REQUEST_TIMEOUT format: %w", err)
		}
		config.RequestTimeout = duration
	}

	// Validate configuration
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.APIBaseURL == "" {
		return fmt.Errorf("API_BASE_URL cannot be empty")
	}

	if c.Port == "" {
		return fmt.Errorf("PORT cannot be empty")
	}

	if c.RequestTimeout <= 0 {
		return fmt.Errorf("REQUEST_TIMEOUT must be positive")
	}

	return nil
}

// getEnv retrieves an environment variable or returns a fallback value
func getEnv(key, fallback string) string {
	// Check for _FILE suffix
	if fileValue := os.Getenv(key + "_FILE"); fileValue != "" {
		content, err := os.ReadFile(fileValue)
		if err == nil {
			return strings.TrimSpace(string(content))
		}
	}

	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
