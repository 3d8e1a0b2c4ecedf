package mediator

import (
	"context"

	"github.com/google/uuid"
)

type requestIDKey struct{}

// WithRequestID stores a request id on the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFromContext returns the request id stored by WithRequestID or RequestID, or "".
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// RequestID ensures every request carries a request id.
// An id already on the context (e.g. propagated by a caller) is kept,
// otherwise a new UUID is generated.
func RequestID() Behavior {
	return func(ctx context.Context, _ string, _ any, next Next) (any, error) {
		if RequestIDFromContext(ctx) == "" {
			ctx = WithRequestID(ctx, uuid.NewString())
		}
		return next(ctx)
	}
}
