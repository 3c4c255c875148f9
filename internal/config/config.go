package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
)

// Config holds all application configuration
type Config struct {
	Server  ServerConfig
	Drill   DrillConfig
	Logging LoggingConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port string `env:"PORT" envDefault:"8080" validate:"required,numeric"`
	Host string `env:"HOST" envDefault:"0.0.0.0"`
	Env  string `env:"ENV" envDefault:"development" validate:"oneof=development production"`
}

// DrillConfig holds drill lifecycle configuration
type DrillConfig struct {
	IdleTimeout     time.Duration `env:"DRILL_IDLE_TIMEOUT" envDefault:"2h" validate:"gt=0"`
	CleanupInterval time.Duration `env:"DRILL_CLEANUP_INTERVAL" envDefault:"10m" validate:"gt=0"`
	MaxTextBytes    int64         `env:"DRILL_MAX_TEXT_BYTES" envDefault:"65536" validate:"gt=0"`
}

// LoggingConfig holds logging-related configuration
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error"`
	Format string `env:"LOG_FORMAT" envDefault:"text" validate:"oneof=json text"` // "json" or "text"
	File   string `env:"RECALL_LOG_FILE"`
}

// Load loads configuration from environment variables with defaults
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	cfg.Server.Env = strings.ToLower(cfg.Server.Env)
	cfg.Logging.Level = strings.ToLower(cfg.Logging.Level)
	cfg.Logging.Format = strings.ToLower(cfg.Logging.Format)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the configuration values
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Server.Env == "development"
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.Server.Env == "production"
}

// GetAddr returns the server address in host:port format
func (c *Config) GetAddr() string {
	return c.Server.Host + ":" + c.Server.Port
}
