// Package logging is the voyage client's structured logger. SlogLogger backs
// it with log/slog; NewNop discards everything.
package logging

import "context"

// Logger takes a message plus alternating key/value args, as in
//
//	logger.Warn(ctx, "discarding stored user", "error", err)
//
// With derives a logger that adds the given pairs to every record.
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)
	With(args ...any) Logger
}
