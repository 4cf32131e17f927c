// Package ctxlog carries the calculator's *slog.Logger on a context.Context,
// so that the prompt, menu and settings code log through whatever logger the
// app configured without taking it as a parameter.
package ctxlog

import (
	"context"
	"log/slog"
)

type loggerKey struct{}

// WithLogger returns ctx carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// FromContext returns the logger on ctx, or slog.Default when there is none.
// Packages used on their own, as in tests, therefore still log somewhere.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// With derives a logger from the one on ctx with args attached, stores it back
// and returns both. Everything downstream of the returned context logs with
// the same attributes.
func With(ctx context.Context, args ...any) (context.Context, *slog.Logger) {
	logger := FromContext(ctx).With(args...)
	return WithLogger(ctx, logger), logger
}
