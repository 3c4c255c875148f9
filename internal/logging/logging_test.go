package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recall/internal/config"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("info"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("WARN"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("loud"))
}

func TestNewJSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := New(config.LoggingConfig{Level: "warn", Format: "json"}, &buf)

	logger.Info("hidden")
	logger.Warn("drill created", "drillID", "abc")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "drill created", entry["msg"])
	assert.Equal(t, "abc", entry["drillID"])
}

func TestNewText(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := New(config.LoggingConfig{Level: "info", Format: "text"}, &buf)
	logger.Info("request", "status", 200)

	assert.Contains(t, buf.String(), "msg=request")
	assert.Contains(t, buf.String(), "status=200")
}

func TestSetupFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recall.log")

	logger, closeFn, err := SetupFile(config.LoggingConfig{Level: "info", Format: "text", File: path})
	require.NoError(t, err)
	logger.Info("terminal started")
	require.NoError(t, closeFn())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "terminal started")
}

func TestSetupFileDiscardsWithoutPath(t *testing.T) {
	logger, closeFn, err := SetupFile(config.LoggingConfig{Level: "info"})
	require.NoError(t, err)
	assert.NotNil(t, logger)
	assert.NoError(t, closeFn())
}
