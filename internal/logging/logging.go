// Package logging builds the service's zerolog logger from configuration.
package logging

import (
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/sebasr/greeting-service/internal/config"
)

// New creates a logger writing to out. Format "console" produces
// human-readable lines; anything else produces one JSON object per event.
// An unparseable level falls back to info.
func New(cfg config.LogConfig, out io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	if cfg.Format == "console" {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	return zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Str("service", "greeting-service").
		Logger()
}
