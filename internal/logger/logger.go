package logger

import (
	"context"
	"log/slog"
	"os"

	"github.com/google/uuid"
)

type ctxKey string

const scanIDKey ctxKey = "scanID"

// Init installs the default slog logger according to cfg.
func Init(cfg Config) {
	opts := &slog.HandlerOptions{
		Level:     cfg.LogLevel(),
		AddSource: cfg.AddSource,
	}

	var handler slog.Handler
	if cfg.IsJSON() {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	log := slog.New(handler).With(
		"service", cfg.ServiceName,
		"environment", cfg.Environment,
	)
	slog.SetDefault(log)
}

// GenerateScanID creates a new UUID for tracing one scoring invocation.
func GenerateScanID() string {
	return uuid.NewString()
}

// WithScanID returns a new context containing the scan ID.
func WithScanID(ctx context.Context, scanID string) context.Context {
	return context.WithValue(ctx, scanIDKey, scanID)
}

// ScanIDFromContext extracts the scan ID from the context, if present.
func ScanIDFromContext(ctx context.Context) (string, bool) {
	v := ctx.Value(scanIDKey)
	if v == nil {
		return "", false
	}
	if id, ok := v.(string); ok {
		return id, true
	}
	return "", false
}

// FromContext returns a logger that includes the scan_id attribute when present.
func FromContext(ctx context.Context) *slog.Logger {
	if id, ok := ScanIDFromContext(ctx); ok {
		return slog.Default().With("scan_id", id)
	}
	return slog.Default()
}
