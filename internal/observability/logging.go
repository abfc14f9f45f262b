package observability

import (
	"context"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"
)

type contextKey string

const correlationIDKey contextKey = "correlation_id"

// NewLogger builds the process-wide JSON logger at the configured level.
func NewLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}

// WithCorrelationID stamps a fresh correlation ID onto the context for one
// refresh or command invocation.
func WithCorrelationID(ctx context.Context) context.Context {
	return context.WithValue(ctx, correlationIDKey, uuid.NewString())
}

// CorrelationID returns the context's correlation ID, or the empty string.
func CorrelationID(ctx context.Context) string {
	if id, ok := ctx.Value(correlationIDKey).(string); ok {
		return id
	}
	return ""
}

// CorrelationAttr is the slog attribute form of the context's correlation ID.
func CorrelationAttr(ctx context.Context) slog.Attr {
	return slog.String("correlation_id", CorrelationID(ctx))
}
