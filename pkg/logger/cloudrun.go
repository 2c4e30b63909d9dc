package logger

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"time"
)

// CloudRunHandler emits one JSON object per record in the shape Cloud
// Logging expects: severity, message, time, and attributes under data.
type CloudRunHandler struct {
	level slog.Level
}

func NewCloudRunHandler(level slog.Level) slog.Handler {
	return &CloudRunHandler{level: level}
}

func (h *CloudRunHandler) Enabled(_ context.Context, l slog.Level) bool {
	return l >= h.level
}

func (h *CloudRunHandler) Handle(_ context.Context, r slog.Record) error {
	event := map[string]any{
		"severity": severity(r.Level),
		"message":  r.Message,
		"time":     r.Time.Format(time.RFC3339Nano),
	}

	if r.NumAttrs() > 0 {
		data := make(map[string]any, r.NumAttrs())
		r.Attrs(func(a slog.Attr) bool {
			data[a.Key] = a.Value.Any()
			return true
		})
		event["data"] = data
	}

	b, err := json.Marshal(event)
	if err != nil {
		return err
	}

	// Cloud Run collects every severity from stdout.
	_, err = os.Stdout.Write(append(b, '\n'))
	return err
}

func (h *CloudRunHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &withAttrsHandler{handler: h, attrs: attrs}
}

func (h *CloudRunHandler) WithGroup(_ string) slog.Handler {
	// groups are not representable in this format
	return h
}

func severity(level slog.Level) string {
	switch level {
	case slog.LevelDebug:
		return "DEBUG"
	case slog.LevelInfo:
		return "INFO"
	case slog.LevelWarn:
		return "WARNING"
	case slog.LevelError:
		return "ERROR"
	default:
		return "DEFAULT"
	}
}

// withAttrsHandler injects static attrs into every record before
// delegating to the base handler.
type withAttrsHandler struct {
	handler *CloudRunHandler
	attrs   []slog.Attr
}

func (h *withAttrsHandler) Enabled(ctx context.Context, l slog.Level) bool {
	return h.handler.Enabled(ctx, l)
}

func (h *withAttrsHandler) Handle(ctx context.Context, r slog.Record) error {
	for _, a := range h.attrs {
		r.AddAttrs(a)
	}
	return h.handler.Handle(ctx, r)
}

func (h *withAttrsHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	all := append(append([]slog.Attr{}, h.attrs...), attrs...)
	return &withAttrsHandler{handler: h.handler, attrs: all}
}

func (h *withAttrsHandler) WithGroup(_ string) slog.Handler {
	return h
}
