package consumer

import (
	"context"
	"testing"

	"musafir/internal/events"
)

func TestRegistryRejectsDoubleRegistration(t *testing.T) {
	reg := NewRegistry()

	handler := func(ctx context.Context, env events.Envelope) error { return nil }

	if err := reg.Register(events.FlightCreatedType, handler); err != nil {
		t.Fatalf("first registration failed: %v", err)
	}
	if err := reg.Register(events.FlightCreatedType, handler); err == nil {
		t.Fatal("expected second registration to be rejected")
	}
}

func TestRegistryRejectsInvalidRegistrations(t *testing.T) {
	reg := NewRegistry()

	if err := reg.Register("", func(ctx context.Context, env events.Envelope) error { return nil }); err == nil {
		t.Fatal("expected empty event type to be rejected")
	}
	if err := reg.Register(events.FlightCreatedType, nil); err == nil {
		t.Fatal("expected nil handler to be rejected")
	}
}

func TestRegistryLookupUnknownType(t *testing.T) {
	reg := NewRegistry()

	if _, ok := reg.Lookup("something.else"); ok {
		t.Fatal("expected lookup miss for unregistered type")
	}
}
