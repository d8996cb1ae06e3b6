// Package config loads and validates application configuration from
// environment variables. A .env file in the working directory is loaded
// first when present, so local development needs no exported variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// DatabaseURL is the Postgres connection string. Required.
	DatabaseURL string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["http://localhost:5173"] (Vite dev server).
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string

	// SubmitRatePerMinute caps survey submissions per client IP per minute.
	// Defaults to 5. Set SUBMIT_RATE_PER_MINUTE to override.
	SubmitRatePerMinute int

	// SubmitRateBurst is the token bucket burst for the submission limiter.
	// Defaults to 5. Set SUBMIT_RATE_BURST to override.
	SubmitRateBurst int
}

// Load reads configuration from a .env file (if present) and environment
// variables, and returns a Config. Returns an error listing any required
// variables that are not set.
func Load() (Config, error) {
	// Ignore the error: a missing .env file just means everything comes
	// from the real environment.
	_ = godotenv.Load()

	cfg := Config{
		Port:                getEnv("PORT", "8080"),
		LogLevel:            getEnv("LOG_LEVEL", "info"),
		CORSOrigins:         splitCSV(getEnv("CORS_ORIGINS", "http://localhost:5173")),
		SubmitRatePerMinute: getEnvInt("SUBMIT_RATE_PER_MINUTE", 5),
		SubmitRateBurst:     getEnvInt("SUBMIT_RATE_BURST", 5),
	}

	var missing []string

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	if cfg.DatabaseURL == "" {
		missing = append(missing, "DATABASE_URL")
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("required environment variables not set: %s", strings.Join(missing, ", "))
	}

	return cfg, nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// getEnvInt returns the integer value of the environment variable named by
// key, or fallback if the variable is unset, empty, or not a positive integer.
func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
