package logtrace

import (
	"context"
)

// requestIdContextKey is a custom type for the context key storing request IDs.
type requestIdContextKey string

const requestIdKey = requestIdContextKey("requestId")

// WithRequestId stores the request ID in the context.
func WithRequestId(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIdKey, requestID)
}

// RequestIdFromContext extracts the request ID from the context.
// Returns an empty string if the context is nil or carries no request ID.
func RequestIdFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	r, ok := ctx.Value(requestIdKey).(string)
	if !ok {
		return ""
	}
	return r
}
