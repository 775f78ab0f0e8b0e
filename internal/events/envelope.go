package events

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// SchemaVersion pins the structural contract of every payload family.
// Bump the minor on additive changes, the major on breaking ones.
const SchemaVersion = "1.0"

// Envelope is the transport wrapper around a domain payload, as it
// appears on the wire (bus ingress body and Kafka message value).
//
// MessageID is unique per send attempt: an upstream retry of the same
// logical event mints a new MessageID but keeps the IdempotencyKey.
type Envelope struct {
	MessageID      string          `json:"messageId"`
	EventType      string          `json:"eventType"`
	SchemaVersion  string          `json:"schemaVersion"`
	OccurredAt     time.Time       `json:"occurredAt"`
	Producer       string          `json:"producer"`
	CorrelationID  string          `json:"correlationId,omitempty"`
	IdempotencyKey string          `json:"idempotencyKey,omitempty"`
	Payload        json.RawMessage `json:"payload"`
}

// NewEnvelope wraps payload into an Envelope. Pure construction: no
// I/O, no retries, every call mints a fresh MessageID.
//
// The idempotency key is "<family>-<unixnano>" where family is the
// event type segment before the first dot ("search.performed" ->
// "search-1733412345678901234"), so a consumer can both group and
// deduplicate logically identical redeliveries.
func NewEnvelope(producer, eventType string, payload any, correlationID string) (Envelope, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return Envelope{}, fmt.Errorf("marshal payload: %w", err)
	}

	if correlationID == "" {
		correlationID = uuid.NewString()
	}

	family, _, _ := strings.Cut(eventType, ".")

	return Envelope{
		MessageID:      uuid.NewString(),
		EventType:      eventType,
		SchemaVersion:  SchemaVersion,
		OccurredAt:     time.Now().UTC(),
		Producer:       producer,
		CorrelationID:  correlationID,
		IdempotencyKey: family + "-" + strconv.FormatInt(time.Now().UnixNano(), 10),
		Payload:        body,
	}, nil
}

// DecodeEnvelope parses a raw bus message into an Envelope.
func DecodeEnvelope(raw []byte) (Envelope, error) {
	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return Envelope{}, fmt.Errorf("decode envelope: %w", err)
	}
	if env.EventType == "" {
		return Envelope{}, fmt.Errorf("decode envelope: missing eventType")
	}
	return env, nil
}

// DecodePayload unmarshals the envelope's payload into dst after
// checking the schema version is one this build understands. Handlers
// must call this rather than unmarshalling Payload directly.
func DecodePayload(env Envelope, dst any) error {
	if !strings.HasPrefix(env.SchemaVersion, "1.") {
		return fmt.Errorf("unsupported schema version %q for %s", env.SchemaVersion, env.EventType)
	}
	if len(env.Payload) == 0 {
		return fmt.Errorf("empty payload for %s", env.EventType)
	}
	if err := json.Unmarshal(env.Payload, dst); err != nil {
		return fmt.Errorf("decode %s payload: %w", env.EventType, err)
	}
	return nil
}
