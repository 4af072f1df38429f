// Package logging provides structured logging for the demo drivers and a
// bridge into the agent library's logger interface.
package logging

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"

	meshlog "github.com/hupe1980/agentmesh/logging"
)

// contextKey is used for storing the logger in a context.
type contextKey struct{}

// Logger wraps slog.Logger with demo-specific construction defaults.
type Logger struct {
	*slog.Logger
}

// New creates a Logger. Format "json" uses the slog JSON handler; anything
// else gets a tinted text handler suited for terminals.
func New(level, format string) *Logger {
	lvl := parseLevel(level)
	var handler slog.Handler
	if strings.EqualFold(format, "json") {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})
	} else {
		handler = tint.NewHandler(os.Stderr, &tint.Options{
			Level:      lvl,
			TimeFormat: time.Kitchen,
		})
	}
	return &Logger{Logger: slog.New(handler)}
}

// Default returns an info-level text logger.
func Default() *Logger {
	return New("info", "text")
}

// With returns a new Logger with the given attributes.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{Logger: l.Logger.With(args...)}
}

// Mesh adapts the logger for the agent library.
func (l *Logger) Mesh() meshlog.Logger {
	return meshlog.NewSlogAdapter(l.Logger)
}

// WithContext returns a new context with the logger attached.
func (l *Logger) WithContext(ctx context.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

// FromContext retrieves the logger from context, or returns the default logger.
func FromContext(ctx context.Context) *Logger {
	if l, ok := ctx.Value(contextKey{}).(*Logger); ok {
		return l
	}
	return Default()
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
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
