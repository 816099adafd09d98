package log

import (
	"io"
	"log/slog"
	"strings"
)

// ParseLevel maps a level name to a slog.Level.
// Unknown names fall back to info; "" and "off" report ok=false.
func ParseLevel(name string) (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "off", "none":
		return slog.LevelInfo, false
	case "debug":
		return slog.LevelDebug, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, true
	}
}

// NewLogger builds a JSON logger writing to w at the named level, with
// sensitive attributes redacted. An empty or "off" level discards everything.
func NewLogger(level string, w io.Writer) *slog.Logger {
	lvl, ok := ParseLevel(level)
	if !ok || w == nil {
		return Discard()
	}
	h := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl})
	return slog.New(NewRedactingHandler(h))
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
