package ingress

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"

	"musafir/internal/config"
	"musafir/internal/events"
	"musafir/internal/logging"
)

func newTestPublisher(t *testing.T, baseURL string) Publisher {
	t.Helper()

	p, err := NewPublisher(config.IngressConfig{
		BaseURL:        baseURL,
		APIKey:         "secret-key",
		TimeoutSeconds: 5,
		Producer:       "musafir",
	}, logging.Nop())
	if err != nil {
		t.Fatalf("create publisher: %v", err)
	}
	return p
}

func TestPublishSearchPerformed(t *testing.T) {
	var calls int
	var gotPath, gotAPIKey, gotContentType string
	var gotEnvelope events.Envelope

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		gotPath = r.URL.Path
		gotAPIKey = r.Header.Get("X-API-Key")
		gotContentType = r.Header.Get("Content-Type")
		if err := json.NewDecoder(r.Body).Decode(&gotEnvelope); err != nil {
			t.Errorf("decode envelope: %v", err)
		}
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	p := newTestPublisher(t, srv.URL)

	err := p.Publish(context.Background(), events.SearchPerformedType, events.SearchPerformedPayload{
		Origin:        "JFK",
		Destination:   "LAX",
		DepartureDate: "2025-12-01",
		Passengers:    2,
	})
	if err != nil {
		t.Fatalf("publish: %v", err)
	}

	if calls != 1 {
		t.Fatalf("expected exactly one POST, got %d", calls)
	}
	if gotPath != "/events" {
		t.Fatalf("expected POST /events, got %s", gotPath)
	}
	if gotAPIKey != "secret-key" {
		t.Fatalf("expected X-API-Key header, got %q", gotAPIKey)
	}
	if gotContentType != "application/json" {
		t.Fatalf("expected application/json content type, got %q", gotContentType)
	}

	if gotEnvelope.EventType != events.SearchPerformedType {
		t.Fatalf("expected event type %s, got %s", events.SearchPerformedType, gotEnvelope.EventType)
	}
	if gotEnvelope.SchemaVersion != "1.0" {
		t.Fatalf("expected schema version 1.0, got %s", gotEnvelope.SchemaVersion)
	}
	if gotEnvelope.Producer != "musafir" {
		t.Fatalf("expected producer musafir, got %s", gotEnvelope.Producer)
	}

	keyPattern := regexp.MustCompile(`^search-\d+$`)
	if !keyPattern.MatchString(gotEnvelope.IdempotencyKey) {
		t.Fatalf("idempotency key %q does not match search-<numeric>", gotEnvelope.IdempotencyKey)
	}
}

func TestPublishPropagatesTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "ingress unavailable", http.StatusBadGateway)
	}))
	defer srv.Close()

	p := newTestPublisher(t, srv.URL)

	err := p.Publish(context.Background(), events.CartItemAddedType, events.CartItemAddedPayload{
		UserID:   "u1",
		FlightID: "f1",
		Seats:    1,
	})
	if err == nil {
		t.Fatal("expected transport failure to propagate to the caller")
	}
}

func TestPublishCarriesCorrelationFromContext(t *testing.T) {
	var gotEnvelope events.Envelope

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&gotEnvelope)
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	p := newTestPublisher(t, srv.URL)

	ctx := events.WithCorrelationID(context.Background(), "corr-42")
	if err := p.Publish(ctx, events.UserCreatedType, events.UserCreatedPayload{UserID: "u1"}); err != nil {
		t.Fatalf("publish: %v", err)
	}

	if gotEnvelope.CorrelationID != "corr-42" {
		t.Fatalf("expected correlation id corr-42, got %s", gotEnvelope.CorrelationID)
	}
}
