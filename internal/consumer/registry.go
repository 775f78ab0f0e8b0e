package consumer

import (
	"context"
	"fmt"

	"musafir/internal/events"
)

// HandlerFunc applies one decoded envelope to local state. Returning
// common.DuplicateKeyError marks the delivery as a benign duplicate;
// any other error is recorded as a genuine failure.
type HandlerFunc func(ctx context.Context, env events.Envelope) error

// Registry maps an event type to its single handler. Registration is
// done once at startup, before the consumer runs, so lookups need no
// locking.
type Registry struct {
	handlers map[string]HandlerFunc
}

func NewRegistry() *Registry {
	return &Registry{handlers: make(map[string]HandlerFunc)}
}

// Register binds h to eventType. Each event type has at most one
// handler; a second registration is rejected rather than silently
// replaced.
func (r *Registry) Register(eventType string, h HandlerFunc) error {
	if eventType == "" {
		return fmt.Errorf("register handler: empty event type")
	}
	if h == nil {
		return fmt.Errorf("register handler for %s: nil handler", eventType)
	}
	if _, exists := r.handlers[eventType]; exists {
		return fmt.Errorf("register handler for %s: already registered", eventType)
	}
	r.handlers[eventType] = h
	return nil
}

// Lookup returns the handler for eventType, or false for event types
// this service does not consume.
func (r *Registry) Lookup(eventType string) (HandlerFunc, bool) {
	h, ok := r.handlers[eventType]
	return h, ok
}
