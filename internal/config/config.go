// Package config loads application configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/promptdeck/promptdeck/internal/extractor"
)

// Config holds all application configuration.
type Config struct {
	// Database
	DatabasePath string

	// OpenAI API
	OpenAIAPIKey  string
	OpenAIModel   string
	OpenAIBaseURL string

	// Generation settings
	GenerationDelay   time.Duration
	MaxImageDimension int

	// Logging
	LogLevel string
}

// Load reads configuration from environment variables.
// It automatically loads .env file if present.
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	cfg := &Config{
		DatabasePath:  getEnv("DATABASE_PATH", "data/promptdeck.db"),
		OpenAIAPIKey:  getEnv("OPENAI_API_KEY", ""),
		OpenAIModel:   getEnv("OPENAI_MODEL", "gpt-4o"),
		OpenAIBaseURL: getEnv("OPENAI_BASE_URL", ""),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
	}

	var err error
	cfg.GenerationDelay, err = time.ParseDuration(getEnv("GENERATION_DELAY", "1s"))
	if err != nil {
		return nil, fmt.Errorf("invalid GENERATION_DELAY: %w", err)
	}

	maxDim, err := strconv.Atoi(getEnv("MAX_IMAGE_DIMENSION", "1024"))
	if err != nil {
		return nil, fmt.Errorf("invalid MAX_IMAGE_DIMENSION: %w", err)
	}
	if maxDim <= 0 {
		return nil, fmt.Errorf("invalid MAX_IMAGE_DIMENSION: must be positive, got %d", maxDim)
	}
	cfg.MaxImageDimension = maxDim

	return cfg, nil
}

// Validate checks that required configuration is present.
func (c *Config) Validate() error {
	if c.DatabasePath == "" {
		return fmt.Errorf("DATABASE_PATH is required")
	}
	return nil
}

// ValidateForGeneration checks configuration needed for screenshot
// extraction and remote prompt generation.
func (c *Config) ValidateForGeneration() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.OpenAIAPIKey == "" {
		return fmt.Errorf("OPENAI_API_KEY is required for generation")
	}
	if err := extractor.ValidateAPIKey(c.OpenAIAPIKey); err != nil {
		return fmt.Errorf("OPENAI_API_KEY: %w", err)
	}
	return nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
