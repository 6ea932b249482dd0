package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DefaultWordAPIURL is the upstream random word endpoint
const DefaultWordAPIURL = "https://random-word-api.herokuapp.com/word?number=1"

// Config holds all application configuration
type Config struct {
	Addr         string
	GinMode      string
	SSL          bool
	FallbackWord string
	WordAPI      WordAPIConfig
}

// WordAPIConfig holds upstream word API settings
type WordAPIConfig struct {
	URL     string
	Timeout time.Duration
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	timeout, err := time.ParseDuration(getEnv("WORD_API_TIMEOUT", "5s"))
	if err != nil {
		return nil, fmt.Errorf("WORD_API_TIMEOUT is invalid: %w", err)
	}
	if timeout <= 0 {
		return nil, fmt.Errorf("WORD_API_TIMEOUT must be positive, got %s", timeout)
	}

	ssl, err := strconv.ParseBool(getEnv("SSL", "false"))
	if err != nil {
		return nil, fmt.Errorf("SSL is invalid: %w", err)
	}

	cfg := &Config{
		Addr:         getEnv("HTTP_ADDR", ":5000"),
		GinMode:      getEnv("GIN_MODE", "release"),
		SSL:          ssl,
		FallbackWord: strings.ToUpper(strings.TrimSpace(getEnv("FALLBACK_WORD", "PYTHON"))),
		WordAPI: WordAPIConfig{
			URL:     getEnv("WORD_API_URL", DefaultWordAPIURL),
			Timeout: timeout,
		},
	}

	// Validate fields
	switch cfg.GinMode {
	case "debug", "release", "test":
	default:
		return nil, fmt.Errorf("GIN_MODE must be debug, release or test, got %q", cfg.GinMode)
	}
	if cfg.FallbackWord == "" {
		return nil, fmt.Errorf("FALLBACK_WORD cannot be blank")
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
