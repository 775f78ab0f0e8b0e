package events

import (
	"context"
	"encoding/json"
	"regexp"
	"testing"
	"time"
)

func TestNewEnvelopeRoundTrip(t *testing.T) {
	payload := FlightCreatedPayload{
		FlightID:     "f1",
		FlightNumber: "AA123",
		Origin:       "JFK",
		Destination:  "LAX",
		Aircraft:     "B738",
		Departure:    time.Date(2025, 12, 1, 8, 0, 0, 0, time.UTC),
		Arrival:      time.Date(2025, 12, 1, 11, 30, 0, 0, time.UTC),
		Status:       "scheduled",
		Price:        199.99,
		Currency:     "USD",
	}

	env, err := NewEnvelope("musafir", FlightCreatedType, payload, "corr-1")
	if err != nil {
		t.Fatalf("build envelope: %v", err)
	}

	raw, err := json.Marshal(env)
	if err != nil {
		t.Fatalf("marshal envelope: %v", err)
	}

	decoded, err := DecodeEnvelope(raw)
	if err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	if decoded.EventType != FlightCreatedType {
		t.Fatalf("expected event type %s, got %s", FlightCreatedType, decoded.EventType)
	}
	if decoded.CorrelationID != "corr-1" {
		t.Fatalf("expected correlation id corr-1, got %s", decoded.CorrelationID)
	}

	var got FlightCreatedPayload
	if err := DecodePayload(decoded, &got); err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	if got != payload {
		t.Fatalf("payload round trip mismatch: %+v != %+v", got, payload)
	}
}

func TestNewEnvelopeIdentity(t *testing.T) {
	env, err := NewEnvelope("musafir", SearchPerformedType, SearchPerformedPayload{Origin: "JFK", Destination: "LAX"}, "")
	if err != nil {
		t.Fatalf("build envelope: %v", err)
	}

	if env.SchemaVersion != "1.0" {
		t.Fatalf("expected schema version 1.0, got %s", env.SchemaVersion)
	}
	if env.Producer != "musafir" {
		t.Fatalf("expected producer musafir, got %s", env.Producer)
	}
	if env.MessageID == "" {
		t.Fatal("expected a message id")
	}
	if env.CorrelationID == "" {
		t.Fatal("expected a minted correlation id when none is supplied")
	}
	if env.OccurredAt.IsZero() {
		t.Fatal("expected occurredAt to be set")
	}

	keyPattern := regexp.MustCompile(`^search-\d+$`)
	if !keyPattern.MatchString(env.IdempotencyKey) {
		t.Fatalf("idempotency key %q does not match search-<numeric>", env.IdempotencyKey)
	}
}

func TestNewEnvelopeMintsFreshMessageIDs(t *testing.T) {
	first, err := NewEnvelope("musafir", UserCreatedType, UserCreatedPayload{UserID: "u1"}, "corr")
	if err != nil {
		t.Fatalf("build first envelope: %v", err)
	}
	second, err := NewEnvelope("musafir", UserCreatedType, UserCreatedPayload{UserID: "u1"}, "corr")
	if err != nil {
		t.Fatalf("build second envelope: %v", err)
	}
	if first.MessageID == second.MessageID {
		t.Fatalf("expected distinct message ids, both were %s", first.MessageID)
	}
}

func TestDecodeEnvelopeRejectsGarbage(t *testing.T) {
	if _, err := DecodeEnvelope([]byte("not json")); err == nil {
		t.Fatal("expected error for malformed envelope")
	}
	if _, err := DecodeEnvelope([]byte(`{"payload":{}}`)); err == nil {
		t.Fatal("expected error for envelope without eventType")
	}
}

func TestDecodePayloadChecksSchemaVersion(t *testing.T) {
	env := Envelope{
		EventType:     FlightUpdatedType,
		SchemaVersion: "2.0",
		Payload:       json.RawMessage(`{"flightId":"f1"}`),
	}

	var p FlightUpdatedPayload
	if err := DecodePayload(env, &p); err == nil {
		t.Fatal("expected schema version 2.0 to be rejected")
	}
}

func TestCorrelationContext(t *testing.T) {
	ctx := context.Background()
	if got := CorrelationFromContext(ctx); got != "" {
		t.Fatalf("expected empty correlation id, got %s", got)
	}

	ctx = WithCorrelationID(ctx, "corr-9")
	if got := CorrelationFromContext(ctx); got != "corr-9" {
		t.Fatalf("expected corr-9, got %s", got)
	}
}
