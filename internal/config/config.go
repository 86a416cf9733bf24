// Package config loads service configuration from the environment.
package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config is the complete service configuration. Every field can be set
// through the environment with the SMEHEALTH prefix, e.g.
// SMEHEALTH_SERVER_ADDR=:9000.
type Config struct {
	Server  ServerConfig  `envconfig:"SERVER"`
	Upload  UploadConfig  `envconfig:"UPLOAD"`
	Logging LoggingConfig `envconfig:"LOGGING"`
}

// ServerConfig contains HTTP server configuration.
type ServerConfig struct {
	Addr            string        `envconfig:"ADDR" default:":8080"`
	ReadTimeout     time.Duration `envconfig:"READ_TIMEOUT" default:"15s"`
	WriteTimeout    time.Duration `envconfig:"WRITE_TIMEOUT" default:"15s"`
	IdleTimeout     time.Duration `envconfig:"IDLE_TIMEOUT" default:"60s"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"5s"`
}

// UploadConfig bounds the CSV ingestion endpoint.
type UploadConfig struct {
	MaxBytes int64 `envconfig:"MAX_BYTES" default:"26214400"` // 25MB
}

// LoggingConfig selects log level and output format.
type LoggingConfig struct {
	Level  string `envconfig:"LEVEL" default:"info"`
	Format string `envconfig:"FORMAT" default:"json"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("SMEHEALTH", &cfg); err != nil {
		return nil, fmt.Errorf("loading config from env: %w", err)
	}
	return &cfg, nil
}

// Logger builds the root slog logger for the configured level and format.
func (c LoggingConfig) Logger(w io.Writer) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}
	opts := &slog.HandlerOptions{Level: c.slogLevel()}
	if strings.EqualFold(c.Format, "text") {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

func (c LoggingConfig) slogLevel() slog.Level {
	switch strings.ToLower(c.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
