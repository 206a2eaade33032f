// internal/utils/requestid.go
package utils

import "context"

type requestIDKey struct{}

// WithRequestID returns a context carrying the request id so outbound
// gateway calls can reuse the inbound id.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFromContext returns the carried request id, or "" when the
// context has none.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
