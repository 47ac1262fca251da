package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	LogLevel        string
	OutputDir       string
	ReferenceLocale string
	WorkerCount     int
	DatabaseURL     string
	WatchDebounce   time.Duration
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	return &Config{
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		OutputDir:       getEnv("CATALOG_OUTPUT_DIR", "."),
		ReferenceLocale: getEnv("CATALOG_REFERENCE_LOCALE", "zh"),
		WorkerCount:     getEnvInt("WORKER_COUNT", 4),
		DatabaseURL:     getEnv("DATABASE_URL", ""),
		WatchDebounce:   time.Duration(getEnvInt("WATCH_DEBOUNCE_MS", 200)) * time.Millisecond,
	}
}

// SnapshotsEnabled reports whether a snapshot database is configured.
func (c *Config) SnapshotsEnabled() bool {
	return c.DatabaseURL != ""
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
