package events

import "context"

type correlationKey struct{}

// WithCorrelationID attaches a correlation id to ctx so every event
// published downstream of one request or one consumed message carries
// the same causal chain marker.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationKey{}, id)
}

// CorrelationFromContext returns the correlation id attached to ctx,
// or "" when none is set.
func CorrelationFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(correlationKey{}).(string); ok {
		return id
	}
	return ""
}
