package logger

import (
	"log/slog"
	"strings"
)

// New builds a logger at the given level using the provided handler
// constructor. Level strings are case-insensitive; unknown values fall
// back to info.
func New(level string, handler func(level slog.Level) slog.Handler) *slog.Logger {
	return slog.New(handler(parseLevel(level)))
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
