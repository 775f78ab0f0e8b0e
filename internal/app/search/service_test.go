package search

import (
	"context"
	"errors"
	"testing"

	"musafir/internal/events"
	"musafir/internal/logging"
)

type capturingPublisher struct {
	eventType string
	payload   any
	err       error
}

func (p *capturingPublisher) Publish(ctx context.Context, eventType string, payload any) error {
	p.eventType = eventType
	p.payload = payload
	return p.err
}

func TestRecordSearchPublishesEvent(t *testing.T) {
	pub := &capturingPublisher{}
	svc := NewService(pub, logging.Nop())

	err := svc.RecordSearch(context.Background(), PerformSearchInput{
		Origin:        "JFK",
		Destination:   "LAX",
		DepartureDate: "2025-12-01",
		Passengers:    2,
	})
	if err != nil {
		t.Fatalf("record search: %v", err)
	}

	if pub.eventType != events.SearchPerformedType {
		t.Fatalf("expected %s, got %s", events.SearchPerformedType, pub.eventType)
	}
	payload, ok := pub.payload.(events.SearchPerformedPayload)
	if !ok {
		t.Fatalf("unexpected payload type %T", pub.payload)
	}
	if payload.Origin != "JFK" || payload.Passengers != 2 {
		t.Fatalf("payload mismatch: %+v", payload)
	}
}

func TestRecordSearchSurfacesPublishFailure(t *testing.T) {
	pub := &capturingPublisher{err: errors.New("ingress down")}
	svc := NewService(pub, logging.Nop())

	err := svc.RecordSearch(context.Background(), PerformSearchInput{
		Origin:      "JFK",
		Destination: "LAX",
	})
	if err == nil {
		t.Fatal("expected publish failure to propagate")
	}
}
