package config

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	// Save original env and restore after test
	origEnv := os.Environ()
	t.Cleanup(func() {
		os.Clearenv()
		for _, e := range origEnv {
			for i := 0; i < len(e); i++ {
				if e[i] == '=' {
					os.Setenv(e[:i], e[i+1:])
					break
				}
			}
		}
	})

	t.Run("defaults", func(t *testing.T) {
		os.Clearenv()
		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "data/promptdeck.db", cfg.DatabasePath)
		assert.Equal(t, "gpt-4o", cfg.OpenAIModel)
		assert.Equal(t, "", cfg.OpenAIBaseURL)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, time.Second, cfg.GenerationDelay)
		assert.Equal(t, 1024, cfg.MaxImageDimension)
	})

	t.Run("custom values", func(t *testing.T) {
		os.Clearenv()
		os.Setenv("DATABASE_PATH", "/custom/path.db")
		os.Setenv("OPENAI_API_KEY", "sk-test")
		os.Setenv("OPENAI_MODEL", "gpt-4o-mini")
		os.Setenv("GENERATION_DELAY", "250ms")
		os.Setenv("MAX_IMAGE_DIMENSION", "768")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "/custom/path.db", cfg.DatabasePath)
		assert.Equal(t, "sk-test", cfg.OpenAIAPIKey)
		assert.Equal(t, "gpt-4o-mini", cfg.OpenAIModel)
		assert.Equal(t, 250*time.Millisecond, cfg.GenerationDelay)
		assert.Equal(t, 768, cfg.MaxImageDimension)
	})

	t.Run("invalid duration", func(t *testing.T) {
		os.Clearenv()
		os.Setenv("GENERATION_DELAY", "invalid")

		_, err := Load()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "GENERATION_DELAY")
	})

	t.Run("invalid dimension", func(t *testing.T) {
		os.Clearenv()
		os.Setenv("MAX_IMAGE_DIMENSION", "notanumber")

		_, err := Load()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "MAX_IMAGE_DIMENSION")
	})

	t.Run("non-positive dimension", func(t *testing.T) {
		os.Clearenv()
		os.Setenv("MAX_IMAGE_DIMENSION", "0")

		_, err := Load()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "MAX_IMAGE_DIMENSION")
	})
}

func TestConfig_Validate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		cfg := &Config{DatabasePath: "test.db"}
		assert.NoError(t, cfg.Validate())
	})

	t.Run("missing database path", func(t *testing.T) {
		cfg := &Config{}
		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "DATABASE_PATH")
	})
}

func TestConfig_ValidateForGeneration(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		cfg := &Config{
			DatabasePath: "test.db",
			OpenAIAPIKey: "sk-" + strings.Repeat("a", 40),
		}
		assert.NoError(t, cfg.ValidateForGeneration())
	})

	t.Run("missing api key", func(t *testing.T) {
		cfg := &Config{DatabasePath: "test.db"}
		err := cfg.ValidateForGeneration()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "OPENAI_API_KEY")
	})

	t.Run("malformed api key", func(t *testing.T) {
		cfg := &Config{DatabasePath: "test.db", OpenAIAPIKey: "not-a-key"}
		err := cfg.ValidateForGeneration()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "OPENAI_API_KEY")
	})
}
