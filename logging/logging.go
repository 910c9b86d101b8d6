package logging

import (
	"io"
	"log/slog"
	"strings"
)

// levelSilent is above all the standard levels, so nothing passes through.
const levelSilent = slog.Level(100)

type Format string

const (
	Text Format = "text"
	JSON Format = "json"
)

// New creates a text logger writing to w.
func New(w io.Writer, level slog.Level) *slog.Logger {
	return NewFormatted(w, level, Text)
}

// NewFormatted creates a logger writing records to w in the given format. Unknown formats
// fall back to Text.
func NewFormatted(w io.Writer, level slog.Level, format Format) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}

	if format == JSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}

// Discard creates a logger that discards all output.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: levelSilent}))
}

// LevelFromString converts a string to a slog.Level.
// Supports: debug, info, warn, error, silent (case-insensitive).
// Returns slog.LevelInfo for unrecognized strings.
func LevelFromString(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	case "silent", "quiet":
		return levelSilent
	default:
		return slog.LevelInfo
	}
}
