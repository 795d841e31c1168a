// ABOUTME: Configuration loader for the petradar client
// ABOUTME: Loads settings from environment variables with defaults, honoring a local .env file

package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const defaultAPIURL = "https://api-qa.petradar-qa.org"

type Config struct {
	APIURL      string        // PetRadar API base URL
	HTTPTimeout time.Duration // per-request timeout (connect through body read)
	ConfigDir   string        // where credentials and photo associations live
}

// Load reads configuration from the environment.
// A .env file in the working directory is applied first if present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		APIURL:      getEnv("PETRADAR_API_URL", defaultAPIURL),
		HTTPTimeout: time.Duration(getEnvInt("PETRADAR_HTTP_TIMEOUT", 30)) * time.Second,
		ConfigDir:   getEnv("PETRADAR_CONFIG_DIR", DefaultConfigDir()),
	}

	return cfg, nil
}

// DefaultConfigDir returns the default config directory following XDG spec
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "petradar")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "petradar")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intVal, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return intVal
}
