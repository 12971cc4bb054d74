package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	HTTPPort        string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
	MaxTableRows    int
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		HTTPPort:        envOrDefault("HTTP_PORT", "8080"),
		ReadTimeout:     envOrDefaultDuration("READ_TIMEOUT", 15*time.Second),
		WriteTimeout:    envOrDefaultDuration("WRITE_TIMEOUT", 30*time.Second),
		IdleTimeout:     envOrDefaultDuration("IDLE_TIMEOUT", 60*time.Second),
		ShutdownTimeout: envOrDefaultDuration("SHUTDOWN_TIMEOUT", 30*time.Second),
		MaxTableRows:    envOrDefaultPositiveInt("MAX_TABLE_ROWS", 1000),
	}
}

func envOrDefault(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func envOrDefaultPositiveInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			slog.Warn("invalid positive integer env var, using default", "key", key, "value", v, "default", defaultVal)
			return defaultVal
		}
		return n
	}
	return defaultVal
}

func envOrDefaultDuration(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			slog.Warn("invalid duration env var, using default", "key", key, "value", v, "default", defaultVal)
			return defaultVal
		}
		return d
	}
	return defaultVal
}
