package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"LOG_LEVEL", "CATALOG_OUTPUT_DIR", "CATALOG_REFERENCE_LOCALE", "WORKER_COUNT", "DATABASE_URL", "WATCH_DEBOUNCE_MS"} {
		t.Setenv(k, "")
	}

	cfg := Load()
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, ".", cfg.OutputDir)
	assert.Equal(t, "zh", cfg.ReferenceLocale)
	assert.Equal(t, 4, cfg.WorkerCount)
	assert.Equal(t, 200*time.Millisecond, cfg.WatchDebounce)
	assert.False(t, cfg.SnapshotsEnabled())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("CATALOG_REFERENCE_LOCALE", "en")
	t.Setenv("WORKER_COUNT", "9")
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/catalogs")
	t.Setenv("WATCH_DEBOUNCE_MS", "not-a-number")

	cfg := Load()
	assert.Equal(t, "en", cfg.ReferenceLocale)
	assert.Equal(t, 9, cfg.WorkerCount)
	assert.True(t, cfg.SnapshotsEnabled())
	assert.Equal(t, 200*time.Millisecond, cfg.WatchDebounce)
}
