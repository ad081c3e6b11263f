package render

import (
	"context"
	"log/slog"
)

type ctxKey struct{}

var slogCtxKey = ctxKey{}

// Logger returns the *slog.Logger stored in ctx by LoggingContext. When there
// is none, the returned logger discards everything.
func Logger(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(slogCtxKey).(*slog.Logger); ok && logger != nil {
		return logger
	}
	return slog.New(slog.DiscardHandler)
}

// LoggingContext returns a copy of ctx that carries logger, for retrieval
// with Logger.
func LoggingContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, slogCtxKey, logger)
}
