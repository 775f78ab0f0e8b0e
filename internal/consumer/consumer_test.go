package consumer

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	appflight "musafir/internal/app/flight"
	appreservation "musafir/internal/app/reservation"
	"musafir/internal/audit"
	"musafir/internal/config"
	"musafir/internal/domain/common"
	domflight "musafir/internal/domain/flight"
	domreservation "musafir/internal/domain/reservation"
	"musafir/internal/events"
	"musafir/internal/logging"
)

type fakeRecorder struct {
	entries []audit.Entry
}

func (r *fakeRecorder) Record(ctx context.Context, entry audit.Entry) {
	r.entries = append(r.entries, entry)
}

type fakeFlightRepo struct {
	rows map[string]*domflight.Flight
}

func newFakeFlightRepo() *fakeFlightRepo {
	return &fakeFlightRepo{rows: make(map[string]*domflight.Flight)}
}

func (r *fakeFlightRepo) GetById(ctx context.Context, id string) (*domflight.Flight, error) {
	f, ok := r.rows[id]
	if !ok {
		return nil, common.NewNotFound("flight", id)
	}
	copied := *f
	return &copied, nil
}

func (r *fakeFlightRepo) Create(ctx context.Context, f *domflight.Flight) error {
	if _, exists := r.rows[f.ID]; exists {
		return common.NewDuplicateKey("flight", f.ID)
	}
	copied := *f
	r.rows[f.ID] = &copied
	return nil
}

func (r *fakeFlightRepo) ApplyPatch(ctx context.Context, p domflight.Patch) error {
	f, ok := r.rows[p.ID]
	if !ok {
		return common.NewNotFound("flight", p.ID)
	}
	if p.Status != nil {
		f.Status = *p.Status
	}
	if p.Departure != nil {
		f.Departure = *p.Departure
	}
	if p.Arrival != nil {
		f.Arrival = *p.Arrival
	}
	return nil
}

func (r *fakeFlightRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.rows[id]; !ok {
		return common.NewNotFound("flight", id)
	}
	delete(r.rows, id)
	return nil
}

type fakeReservationRepo struct {
	rows map[string]*domreservation.Reservation
}

func newFakeReservationRepo() *fakeReservationRepo {
	return &fakeReservationRepo{rows: make(map[string]*domreservation.Reservation)}
}

func (r *fakeReservationRepo) GetById(ctx context.Context, id string) (*domreservation.Reservation, error) {
	res, ok := r.rows[id]
	if !ok {
		return nil, common.NewNotFound("reservation", id)
	}
	copied := *res
	return &copied, nil
}

func (r *fakeReservationRepo) Create(ctx context.Context, res *domreservation.Reservation) error {
	if _, exists := r.rows[res.ID]; exists {
		return common.NewDuplicateKey("reservation", res.ID)
	}
	copied := *res
	r.rows[res.ID] = &copied
	return nil
}

func (r *fakeReservationRepo) ApplyPatch(ctx context.Context, p domreservation.Patch) error {
	res, ok := r.rows[p.ID]
	if !ok {
		return common.NewNotFound("reservation", p.ID)
	}
	if p.Status != nil {
		res.Status = *p.Status
	}
	if p.Amount != nil {
		res.Amount = *p.Amount
	}
	return nil
}

type noopFlightCache struct{}

func (noopFlightCache) GetByID(ctx context.Context, id string) ([]byte, error) { return nil, nil }
func (noopFlightCache) Set(ctx context.Context, id string, data []byte, ttl time.Duration) error {
	return nil
}
func (noopFlightCache) Delete(ctx context.Context, id string) error { return nil }

type fixture struct {
	consumer     *Consumer
	recorder     *fakeRecorder
	flights      *fakeFlightRepo
	reservations *fakeReservationRepo
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	flights := newFakeFlightRepo()
	reservations := newFakeReservationRepo()
	recorder := &fakeRecorder{}

	logger := logging.Nop()
	flightService := appflight.NewService(flights, noopFlightCache{}, logger)
	reservationService := appreservation.NewService(reservations, logger)

	registry := NewRegistry()
	if err := RegisterDomainHandlers(registry, flightService, reservationService); err != nil {
		t.Fatalf("register handlers: %v", err)
	}

	c, err := New(config.KafkaConfig{Enabled: false}, registry, recorder, logger)
	if err != nil {
		t.Fatalf("create consumer: %v", err)
	}

	return &fixture{
		consumer:     c,
		recorder:     recorder,
		flights:      flights,
		reservations: reservations,
	}
}

func rawEnvelope(t *testing.T, eventType string, payload any) []byte {
	t.Helper()

	env, err := events.NewEnvelope("sibling-service", eventType, payload, "corr-test")
	if err != nil {
		t.Fatalf("build envelope: %v", err)
	}
	raw, err := json.Marshal(env)
	if err != nil {
		t.Fatalf("marshal envelope: %v", err)
	}
	return raw
}

func flightCreated(id string) events.FlightCreatedPayload {
	return events.FlightCreatedPayload{
		FlightID:     id,
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
}

func TestProcessFlightCreated(t *testing.T) {
	f := newFixture(t)

	f.consumer.Process(context.Background(), rawEnvelope(t, events.FlightCreatedType, flightCreated("f1")))

	stored, err := f.flights.GetById(context.Background(), "f1")
	if err != nil {
		t.Fatalf("expected flight row: %v", err)
	}
	// Alphabetic prefix is linked as an airline code without any
	// registry check; that linkage is unverified upstream behavior.
	if stored.AirlineCode != "AA" {
		t.Fatalf("expected airline code AA, got %q", stored.AirlineCode)
	}

	if len(f.recorder.entries) != 1 {
		t.Fatalf("expected 1 audit record, got %d", len(f.recorder.entries))
	}
	if f.recorder.entries[0].Err != nil {
		t.Fatalf("unexpected audit error: %v", f.recorder.entries[0].Err)
	}
	if f.recorder.entries[0].Event != events.FlightCreatedType {
		t.Fatalf("audit event mismatch: %s", f.recorder.entries[0].Event)
	}
}

func TestProcessDuplicateCreateIsBenign(t *testing.T) {
	f := newFixture(t)

	raw := rawEnvelope(t, events.FlightCreatedType, flightCreated("f1"))
	f.consumer.Process(context.Background(), raw)
	f.consumer.Process(context.Background(), raw)

	if got := len(f.flights.rows); got != 1 {
		t.Fatalf("expected exactly one flight row, got %d", got)
	}
	if got := len(f.recorder.entries); got != 2 {
		t.Fatalf("expected 2 audit records, got %d", got)
	}
	for i, entry := range f.recorder.entries {
		if entry.Err != nil {
			t.Fatalf("audit record %d marked as hard error: %v", i, entry.Err)
		}
	}
}

func TestProcessPartialFlightUpdate(t *testing.T) {
	f := newFixture(t)

	f.consumer.Process(context.Background(), rawEnvelope(t, events.FlightCreatedType, flightCreated("f1")))

	before, _ := f.flights.GetById(context.Background(), "f1")

	status := "delayed"
	f.consumer.Process(context.Background(), rawEnvelope(t, events.FlightUpdatedType, events.FlightUpdatedPayload{
		FlightID:  "f1",
		NewStatus: &status,
	}))

	after, err := f.flights.GetById(context.Background(), "f1")
	if err != nil {
		t.Fatalf("expected flight row: %v", err)
	}
	if after.Status != "delayed" {
		t.Fatalf("expected status delayed, got %s", after.Status)
	}
	if !after.Departure.Equal(before.Departure) || !after.Arrival.Equal(before.Arrival) {
		t.Fatal("expected departure/arrival to stay untouched")
	}
}

func TestProcessReservationReplay(t *testing.T) {
	f := newFixture(t)

	raw := rawEnvelope(t, events.ReservationCreatedType, events.ReservationCreatedPayload{
		ReservationID: "r1",
		UserID:        "u1",
		FlightID:      "f1",
		Amount:        300,
		Currency:      "USD",
		ReservedAt:    time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC),
	})

	f.consumer.Process(context.Background(), raw)
	f.consumer.Process(context.Background(), raw)

	if got := len(f.reservations.rows); got != 1 {
		t.Fatalf("expected exactly one reservation row, got %d", got)
	}
	stored := f.reservations.rows["r1"]
	if stored == nil || stored.Amount != 300 || stored.UserID != "u1" {
		t.Fatalf("unexpected reservation row: %+v", stored)
	}
	for i, entry := range f.recorder.entries {
		if entry.Err != nil {
			t.Fatalf("audit record %d marked as hard error: %v", i, entry.Err)
		}
	}
}

func TestProcessUnknownEventType(t *testing.T) {
	f := newFixture(t)

	f.consumer.Process(context.Background(), rawEnvelope(t, "baggage.lost", map[string]string{"bagId": "b1"}))

	if len(f.flights.rows) != 0 || len(f.reservations.rows) != 0 {
		t.Fatal("expected no mutation for unknown event type")
	}
	if got := len(f.recorder.entries); got != 1 {
		t.Fatalf("expected 1 audit record, got %d", got)
	}
	if f.recorder.entries[0].Err != nil {
		t.Fatalf("unknown event type must not be a hard error: %v", f.recorder.entries[0].Err)
	}
}

func TestProcessMalformedEnvelope(t *testing.T) {
	f := newFixture(t)

	f.consumer.Process(context.Background(), []byte("][ not json"))

	if got := len(f.recorder.entries); got != 1 {
		t.Fatalf("expected 1 audit record, got %d", got)
	}
	entry := f.recorder.entries[0]
	if entry.Err == nil {
		t.Fatal("expected decode failure to carry error detail")
	}
	if entry.Event != "unknown" {
		t.Fatalf("expected event \"unknown\", got %s", entry.Event)
	}
	if string(entry.Message) != "][ not json" {
		t.Fatal("expected raw message snapshot on the audit entry")
	}
}

func TestProcessGenuineErrorIsRecorded(t *testing.T) {
	f := newFixture(t)

	// Update for a flight that was never created.
	status := "cancelled"
	f.consumer.Process(context.Background(), rawEnvelope(t, events.FlightUpdatedType, events.FlightUpdatedPayload{
		FlightID:  "ghost",
		NewStatus: &status,
	}))

	if got := len(f.recorder.entries); got != 1 {
		t.Fatalf("expected 1 audit record, got %d", got)
	}
	entry := f.recorder.entries[0]
	if entry.Err == nil {
		t.Fatal("expected genuine mutation error on the audit entry")
	}
	if !common.IsNotFound(entry.Err) {
		t.Fatalf("expected not-found detail, got %v", entry.Err)
	}
}

func TestProcessHandlerPanicBecomesAuditError(t *testing.T) {
	recorder := &fakeRecorder{}
	registry := NewRegistry()
	if err := registry.Register("boom.event", func(ctx context.Context, env events.Envelope) error {
		panic("exploded")
	}); err != nil {
		t.Fatalf("register handler: %v", err)
	}

	c, err := New(config.KafkaConfig{Enabled: false}, registry, recorder, logging.Nop())
	if err != nil {
		t.Fatalf("create consumer: %v", err)
	}

	c.Process(context.Background(), rawEnvelope(t, "boom.event", map[string]string{}))

	if got := len(recorder.entries); got != 1 {
		t.Fatalf("expected 1 audit record, got %d", got)
	}
	if recorder.entries[0].Err == nil {
		t.Fatal("expected panic to surface as audit error detail")
	}
}
