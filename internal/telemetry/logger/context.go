// Package logger provides structured logging for SyncVault.
package logger

import "context"

// contextKey is a private type for context keys to avoid collisions.
type contextKey string

const loggerKey contextKey = "syncvault.logger"

// WithLogger adds a logger to the context.
func WithLogger(ctx context.Context, l Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// FromContext extracts the logger from a context, falling back to the
// default logger when none is set.
func FromContext(ctx context.Context) Logger {
	if l, ok := ctx.Value(loggerKey).(Logger); ok {
		return l
	}
	return Default()
}
