package shared

import (
	"context"

	"github.com/google/uuid"
)

// ContextKey is the type of the request context keys owned by the API layer.
type ContextKey string

// Context keys for various values
const (
	// TraceIDKey is the key for the trace ID in the request context
	TraceIDKey ContextKey = "traceID"

	// ClaimsContextKey is the key for the verified token claims
	ClaimsContextKey ContextKey = "claims"
)

// SetTraceID adds a fresh trace ID to the context.
// It correlates log lines and error responses of one request.
func SetTraceID(ctx context.Context) context.Context {
	return context.WithValue(ctx, TraceIDKey, uuid.NewString())
}

// GetTraceID retrieves the trace ID from the context.
// If no trace ID exists, it returns an empty string.
func GetTraceID(ctx context.Context) string {
	traceID, ok := ctx.Value(TraceIDKey).(string)
	if !ok {
		return ""
	}
	return traceID
}
