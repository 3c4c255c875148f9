// Package logging builds the slog logger used across the application.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"recall/internal/config"
)

// New creates a logger writing to w in the configured format and level
func New(cfg config.LoggingConfig, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: ParseLevel(cfg.Level),
	}

	if cfg.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// Setup creates a stdout logger and makes it the default
func Setup(cfg config.LoggingConfig) *slog.Logger {
	logger := New(cfg, os.Stdout)
	slog.SetDefault(logger)
	return logger
}

// SetupFile logs to cfg.File, or discards everything when no file is
// configured. Used by the terminal UI, which owns stdout. The returned
// close function must be called on exit.
func SetupFile(cfg config.LoggingConfig) (*slog.Logger, func() error, error) {
	if cfg.File == "" {
		logger := New(cfg, io.Discard)
		slog.SetDefault(logger)
		return logger, func() error { return nil }, nil
	}

	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	logger := New(cfg, f)
	slog.SetDefault(logger)
	return logger, f.Close, nil
}

// ParseLevel maps a level name to a slog.Level, defaulting to info
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
