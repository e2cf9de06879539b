// Package logging configures the process-wide slog logger for the
// resolvconf CLI. Diagnostics go to stderr so command output on
// stdout stays clean.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Level is an alias for slog.Level.
type Level = slog.Level

// Levels accepted by Setup.
const (
	LevelDebug = slog.LevelDebug
	LevelInfo  = slog.LevelInfo
	LevelWarn  = slog.LevelWarn
	LevelError = slog.LevelError
)

// ParseLevel maps a level name to a Level, ignoring case. Unknown
// names fall back to LevelInfo.
func ParseLevel(s string) Level {
	switch strings.ToLower(s) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// Setup installs a text handler writing to w as the default slog
// logger. A nil w selects stderr.
func Setup(level Level, w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}
