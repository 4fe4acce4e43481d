// Package logging provides the zerolog based diagnostic logger shared by the
// gitsetup components. Diagnostics go to stderr so that they never interleave
// with the status lines written to stdout.
package logging

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Config captures options for configuring the global logger.
type Config struct {
	Level   string    // optional log level ("debug", "info", etc.)
	Output  io.Writer // optional writer (defaults to os.Stderr)
	Console bool      // human readable output instead of JSON
}

var (
	mux  sync.RWMutex
	base = zerolog.Nop()
)

// Configure replaces the global logger. The level falls back to LOG_LEVEL and
// then to "warn" so that a regular run only prints its status lines.
func Configure(cfg Config) zerolog.Logger {
	logger := New(cfg)
	mux.Lock()
	base = logger
	mux.Unlock()
	return logger
}

// New builds a logger from cfg without touching the global one.
func New(cfg Config) zerolog.Logger {
	level := zerolog.WarnLevel
	name := cfg.Level
	if name == "" {
		name = os.Getenv("LOG_LEVEL")
	}
	if name != "" {
		if parsed, err := zerolog.ParseLevel(name); err == nil {
			level = parsed
		}
	}
	writer := cfg.Output
	if writer == nil {
		writer = os.Stderr
	}
	if cfg.Console {
		writer = zerolog.ConsoleWriter{Out: writer, TimeFormat: time.Kitchen}
	}
	return zerolog.New(writer).Level(level).With().
		Timestamp().
		Str("service", "gitsetup").
		Logger()
}

// Base returns the configured base logger instance.
func Base() zerolog.Logger {
	mux.RLock()
	defer mux.RUnlock()
	return base
}

// WithComponent returns a child logger annotated with the given component name.
func WithComponent(component string) zerolog.Logger {
	return Base().With().Str("component", component).Logger()
}
