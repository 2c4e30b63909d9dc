package logger

import (
	"context"
	"log/slog"
)

type contextKey string

const loggerKey contextKey = "logger"

// ToContext stores a logger in the context.
func ToContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext retrieves the logger from context, falling back to the
// default logger so callers never get nil.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// With extracts the context logger, attaches attributes, and returns
// both the enriched logger and an updated context carrying it.
func With(ctx context.Context, args ...any) (*slog.Logger, context.Context) {
	logger := FromContext(ctx).With(args...)
	return logger, ToContext(ctx, logger)
}
