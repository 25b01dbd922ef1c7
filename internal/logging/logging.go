// Package logging provides zerolog construction and context plumbing for
// all EcoSim components. Loggers are passed through context.Context so
// that the engine, analyzer, auditor, and HTTP layer share one configured
// sink without package-level generators of their own.
package logging

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Config controls logger construction.
type Config struct {
	// Level is a zerolog level string (trace, debug, info, warn, error).
	// Unparseable values fall back to info.
	Level string

	// Format selects "console" (human-readable) or "json" output.
	Format string

	// File, when non-empty, is appended to in addition to stderr.
	File string

	// Caller enables caller annotation on every event.
	Caller bool
}

// NewLogger builds a zerolog.Logger from cfg.
//
// The level defaults to info when the configured level does not parse.
// When cfg.File is set and can be opened, log events are written to both
// stderr and the file via a MultiLevelWriter; open failures degrade to
// stderr-only rather than failing startup.
func NewLogger(cfg Config) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		lvl = zerolog.InfoLevel
	}

	var console io.Writer = os.Stderr
	if cfg.Format != "json" {
		console = zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		}
	}

	writers := []io.Writer{console}
	if cfg.File != "" {
		f, openErr := os.OpenFile(cfg.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
		if openErr == nil {
			writers = append(writers, f)
		}
	}

	ctx := zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(lvl).
		With().
		Timestamp()
	if cfg.Caller {
		ctx = ctx.Caller()
	}
	return ctx.Logger()
}

// ComponentLogger returns a child logger tagged with a component name.
// Every event emitted through it carries component=<name>.
func ComponentLogger(logger zerolog.Logger, name string) zerolog.Logger {
	return logger.With().Str("component", name).Logger()
}

// FromContext returns the logger stored in ctx, or a disabled logger when
// none was attached. The pointer return keeps level methods chainable
// directly on the call. Callers never need to nil-check the result.
func FromContext(ctx context.Context) *zerolog.Logger {
	if ctx == nil {
		l := zerolog.Nop()
		return &l
	}
	return zerolog.Ctx(ctx)
}

// WithLogger attaches logger to ctx for retrieval via FromContext.
func WithLogger(ctx context.Context, logger zerolog.Logger) context.Context {
	return logger.WithContext(ctx)
}
