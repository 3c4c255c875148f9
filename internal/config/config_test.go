package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "HOST", "ENV", "DRILL_IDLE_TIMEOUT", "DRILL_CLEANUP_INTERVAL", "DRILL_MAX_TEXT_BYTES", "LOG_LEVEL", "LOG_FORMAT", "RECALL_LOG_FILE"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, "0.0.0.0:8080", cfg.GetAddr())
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())
	assert.Equal(t, 2*time.Hour, cfg.Drill.IdleTimeout)
	assert.Equal(t, 10*time.Minute, cfg.Drill.CleanupInterval)
	assert.Equal(t, int64(65536), cfg.Drill.MaxTextBytes)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.Empty(t, cfg.Logging.File)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("HOST", "127.0.0.1")
	t.Setenv("ENV", "production")
	t.Setenv("DRILL_IDLE_TIMEOUT", "30m")
	t.Setenv("DRILL_CLEANUP_INTERVAL", "1m")
	t.Setenv("DRILL_MAX_TEXT_BYTES", "1024")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", cfg.GetAddr())
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, 30*time.Minute, cfg.Drill.IdleTimeout)
	assert.Equal(t, time.Minute, cfg.Drill.CleanupInterval)
	assert.Equal(t, int64(1024), cfg.Drill.MaxTextBytes)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoadIgnoresCase(t *testing.T) {
	t.Setenv("ENV", "Production")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("LOG_FORMAT", "JSON")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"bad duration", "DRILL_IDLE_TIMEOUT", "soon"},
		{"unknown log level", "LOG_LEVEL", "verbose"},
		{"unknown format", "LOG_FORMAT", "xml"},
		{"non numeric port", "PORT", "http"},
		{"unknown env", "ENV", "staging"},
		{"zero text limit", "DRILL_MAX_TEXT_BYTES", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}
