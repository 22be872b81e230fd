// Package logger builds the slog loggers used by the sparkmail command.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// New creates a JSON-formatted logger writing to w at the given level.
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewNope creates a logger that drops every record. The command uses it
// for --log-level off.
func NewNope() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// ParseLevel maps a level name (debug, info, warn, error) to a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}

// FromLevelName builds the command's logger from a --log-level value.
// "off" and "none" silence logging entirely.
func FromLevelName(w io.Writer, name string) (*slog.Logger, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "off", "none":
		return NewNope(), nil
	}

	level, err := ParseLevel(name)
	if err != nil {
		return nil, err
	}
	return New(w, level), nil
}
