// Package config loads service configuration from the environment, with a
// best-effort .env file for local development.
package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	defaultHTTPAddr = ":8000"
	defaultDBPath   = "./data/watchparty.db"
)

// Config holds the service configuration.
type Config struct {
	HTTPAddr       string   // listen address for the API server
	DBPath         string   // SQLite database file path
	AllowedOrigins []string // CORS origins; empty disables the CORS layer
}

// Load reads configuration from the environment. A .env file in the working
// directory is loaded first when present; real environment variables win.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		HTTPAddr:       envOr("HTTP_ADDR", defaultHTTPAddr),
		DBPath:         envOr("DB_PATH", defaultDBPath),
		AllowedOrigins: envCSV("CORS_ALLOWED_ORIGINS"),
	}
}

// envOr returns the environment value for key, or def when unset or empty.
func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// envCSV parses a comma-separated environment value into a trimmed list.
func envCSV(key string) []string {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	var out []string
	for _, p := range strings.Split(v, ",") {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
