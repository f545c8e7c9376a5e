package render

import (
	"context"
	"log/slog"
)

type loggerKey struct{}

// LoggingContext returns a copy of ctx carrying logger. Render and
// RenderServerError report the errors they swallow to it; without one they
// stay silent.
func LoggingContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// discard is shared by every render without a logger in its context.
var discard = slog.New(slog.DiscardHandler)

func logger(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok && l != nil {
		return l
	}
	return discard
}
