package stylesheet

import (
	"context"
	"log/slog"
)

type contextKey struct{}

// WithContext stores d in ctx.
func WithContext(ctx context.Context, d Decision) context.Context {
	return context.WithValue(ctx, contextKey{}, d)
}

// FromContext returns the decision stored by Middleware.
func FromContext(ctx context.Context) (Decision, bool) {
	if ctx == nil {
		return Decision{}, false
	}
	d, ok := ctx.Value(contextKey{}).(Decision)
	return d, ok
}

// LoggerExtractor returns a logger context extractor adding the selected
// stylesheet to every record logged with the request context.
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		if d, ok := FromContext(ctx); ok {
			return slog.String("stylesheet", string(d.Name)), true
		}
		return slog.Attr{}, false
	}
}
