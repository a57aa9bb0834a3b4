package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the process configuration. It is built once at startup
// and passed to the services that need it; nothing reads the
// environment after Load returns.
type Config struct {
	// Database driver name: "sqlite3" or "postgres"
	DatabaseDriver string
	// Driver-specific DSN (file path for sqlite3)
	DatabaseDSN string
	// Listen address for the admin pages
	HTTPAddr string
	// Number of items per page on paginated views
	PageSize int
	// Hour of day (0-23) for the nightly translation recount job
	RecountHour int
}

// Load reads the configuration from the environment. A .env file in the
// working directory is loaded first if present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		DatabaseDriver: getEnv("DATABASE_DRIVER", "sqlite3"),
		DatabaseDSN:    getEnv("DATABASE_DSN", "data/setlocale.db"),
		HTTPAddr:       getEnv("HTTP_ADDR", ":8080"),
		PageSize:       getEnvInt("PAGE_SIZE", 10),
		RecountHour:    getEnvInt("RECOUNT_HOUR", 3),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}
