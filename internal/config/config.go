package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultBaseURL        = "http://localhost:8000"
	defaultTimeoutSeconds = 10
)

// Config holds the client settings, all overridable through the environment.
type Config struct {
	APIBaseURL string
	Timeout    time.Duration
}

// Load reads the environment (and an optional .env file) and returns the
// effective configuration.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		APIBaseURL: getEnv("SALESDESK_API_URL", defaultBaseURL),
		Timeout:    time.Duration(getEnvInt("SALESDESK_TIMEOUT_SECONDS", defaultTimeoutSeconds)) * time.Second,
	}
}

// Helper to read environment variables with a default fallback
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, def int) int {
	v := getEnv(key, "")
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return def
	}
	return n
}
