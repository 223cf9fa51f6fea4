package config

import (
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// DefaultAPIBase is the backend address used when API_BASE is not set.
const DefaultAPIBase = "http://localhost:8000"

// Config holds all configuration for the application.
type Config struct {
	APIBase   string
	APIPort   string
	DBPath    string
	Locale    string
	LogLevel  slog.Level
	LogFormat string
}

// Load reads configuration from environment variables and returns a Config struct.
// It applies defaults for optional fields and validates the rest.
// If a .env file exists in the current directory or one of its parents, it will be loaded automatically.
// Environment variables already set take precedence over .env file values.
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	wd, err := os.Getwd()
	if err == nil {
		dir := wd
		for i := 0; i < 5; i++ { // Limit search depth
			envPath := filepath.Join(dir, ".env")
			if _, err := os.Stat(envPath); err == nil {
				_ = godotenv.Load(envPath)
				break
			}
			parent := filepath.Dir(dir)
			if parent == dir {
				break // Reached filesystem root
			}
			dir = parent
		}
	}

	cfg := &Config{
		APIBase:   strings.TrimRight(getEnv("API_BASE", DefaultAPIBase), "/"),
		APIPort:   getEnv("API_PORT", "9000"),
		DBPath:    getEnv("DB_PATH", "./data/dexsearch.db"),
		Locale:    strings.ToLower(getEnv("LOCALE", "cs")),
		LogFormat: strings.ToLower(getEnv("LOG_FORMAT", "text")),
	}

	parsed, err := url.Parse(cfg.APIBase)
	if err != nil {
		return nil, fmt.Errorf("API_BASE must be a valid URL: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("API_BASE must use http or https, got %q", parsed.Scheme)
	}
	if parsed.Host == "" {
		return nil, fmt.Errorf("API_BASE must include a host")
	}

	if cfg.Locale != "cs" && cfg.Locale != "en" {
		return nil, fmt.Errorf("LOCALE must be cs or en, got %q", cfg.Locale)
	}

	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, fmt.Errorf("LOG_FORMAT must be text or json, got %q", cfg.LogFormat)
	}

	level, err := parseLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		return nil, err
	}
	cfg.LogLevel = level

	return cfg, nil
}

// EnsureDataDir creates the directory holding the activity database.
func (c *Config) EnsureDataDir() error {
	dataDir := filepath.Dir(c.DBPath)
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	return nil
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("LOG_LEVEL must be debug, info, warn or error: %w", err)
	}
	return level, nil
}

// getEnv gets an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
