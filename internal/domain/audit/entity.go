package audit

import "time"

// Record captures the outcome of processing one consumed message.
// Insert-only: records are never updated or deleted by this service.
type Record struct {
	ID int64
	// Event is the envelope's event type (or "unknown" when the
	// envelope itself could not be decoded).
	Event string
	// Message is the raw envelope snapshot as received from the bus.
	Message []byte
	// Payload is the inner payload, when one was present.
	Payload []byte
	// Error holds structured error detail for genuine failures. Empty
	// for successes and benign duplicate deliveries.
	Error     string
	CreatedAt time.Time
}
