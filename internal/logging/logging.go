// Package logging builds the structured logger used by the ingestion
// pipeline and the CLI.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/term"
)

// EnvLogLevel overrides the log level when set.
const EnvLogLevel = "STV_LOG_LEVEL"

// New creates a logger writing to w. Terminals get slog's text handler,
// anything else (pipes, files, CI) gets JSON.
func New(w io.Writer, level slog.Level) *slog.Logger {
	options := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if isTerminal(w) {
		handler = slog.NewTextHandler(w, options)
	} else {
		handler = slog.NewJSONHandler(w, options)
	}

	return slog.New(handler)
}

// NewCommandLogger creates a logger on w at the level named by flagLevel,
// or by EnvLogLevel when flagLevel is empty. Unknown names mean info.
func NewCommandLogger(w io.Writer, flagLevel string) *slog.Logger {
	raw := flagLevel
	if raw == "" {
		raw = os.Getenv(EnvLogLevel)
	}

	level, _ := ParseLevel(raw)

	return New(w, level)
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// ParseLevel maps a level name to a slog.Level. The second result is false
// for empty or unknown names, in which case the level is info.
func ParseLevel(raw string) (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug", "trace":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}
