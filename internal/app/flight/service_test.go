package flight

import (
	"context"
	"testing"
	"time"

	"musafir/internal/domain/common"
	dom "musafir/internal/domain/flight"
	"musafir/internal/events"
	"musafir/internal/logging"
)

type memRepo struct {
	rows map[string]*dom.Flight
}

func newMemRepo() *memRepo {
	return &memRepo{rows: make(map[string]*dom.Flight)}
}

func (r *memRepo) GetById(ctx context.Context, id string) (*dom.Flight, error) {
	f, ok := r.rows[id]
	if !ok {
		return nil, common.NewNotFound("flight", id)
	}
	copied := *f
	return &copied, nil
}

func (r *memRepo) Create(ctx context.Context, f *dom.Flight) error {
	if _, exists := r.rows[f.ID]; exists {
		return common.NewDuplicateKey("flight", f.ID)
	}
	copied := *f
	r.rows[f.ID] = &copied
	return nil
}

func (r *memRepo) ApplyPatch(ctx context.Context, p dom.Patch) error {
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

func (r *memRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.rows[id]; !ok {
		return common.NewNotFound("flight", id)
	}
	delete(r.rows, id)
	return nil
}

type memCache struct {
	deletes []string
}

func (c *memCache) GetByID(ctx context.Context, id string) ([]byte, error) { return nil, nil }
func (c *memCache) Set(ctx context.Context, id string, data []byte, ttl time.Duration) error {
	return nil
}
func (c *memCache) Delete(ctx context.Context, id string) error {
	c.deletes = append(c.deletes, id)
	return nil
}

func TestAirlineFromFlightNumber(t *testing.T) {
	cases := []struct {
		flightNumber string
		want         string
	}{
		{"AA123", "AA"},
		{"U2456", "U"},
		{"123", ""},
		{"", ""},
		{"LH", "LH"},
		// Unknown prefixes are linked as-is: nothing validates the
		// code against an airline registry.
		{"ZZZ999", "ZZZ"},
	}

	for _, tc := range cases {
		if got := AirlineFromFlightNumber(tc.flightNumber); got != tc.want {
			t.Errorf("AirlineFromFlightNumber(%q) = %q, want %q", tc.flightNumber, got, tc.want)
		}
	}
}

func TestApplyCreatedLinksAirline(t *testing.T) {
	repo := newMemRepo()
	svc := NewService(repo, &memCache{}, logging.Nop())

	err := svc.ApplyCreated(context.Background(), events.FlightCreatedPayload{
		FlightID:     "f1",
		FlightNumber: "BA42",
		Origin:       "LHR",
		Destination:  "JFK",
		Departure:    time.Date(2025, 12, 1, 8, 0, 0, 0, time.UTC),
		Arrival:      time.Date(2025, 12, 1, 16, 0, 0, 0, time.UTC),
		Status:       "scheduled",
		Price:        420,
		Currency:     "GBP",
	})
	if err != nil {
		t.Fatalf("apply created: %v", err)
	}

	if repo.rows["f1"].AirlineCode != "BA" {
		t.Fatalf("expected airline code BA, got %q", repo.rows["f1"].AirlineCode)
	}
}

func TestApplyCreatedNumericPrefixLeavesAirlineUnset(t *testing.T) {
	repo := newMemRepo()
	svc := NewService(repo, &memCache{}, logging.Nop())

	err := svc.ApplyCreated(context.Background(), events.FlightCreatedPayload{
		FlightID:     "f2",
		FlightNumber: "9999",
		Origin:       "CDG",
		Destination:  "AMS",
		Departure:    time.Date(2025, 12, 2, 8, 0, 0, 0, time.UTC),
		Arrival:      time.Date(2025, 12, 2, 9, 10, 0, 0, time.UTC),
		Price:        80,
		Currency:     "EUR",
	})
	if err != nil {
		t.Fatalf("apply created: %v", err)
	}

	if repo.rows["f2"].AirlineCode != "" {
		t.Fatalf("expected airline code unset, got %q", repo.rows["f2"].AirlineCode)
	}
	if repo.rows["f2"].Status != "scheduled" {
		t.Fatalf("expected default status scheduled, got %q", repo.rows["f2"].Status)
	}
}

func TestApplyCreatedDuplicatePassesThrough(t *testing.T) {
	repo := newMemRepo()
	svc := NewService(repo, &memCache{}, logging.Nop())

	payload := events.FlightCreatedPayload{
		FlightID:     "f1",
		FlightNumber: "AA1",
		Origin:       "JFK",
		Destination:  "BOS",
		Currency:     "USD",
	}

	if err := svc.ApplyCreated(context.Background(), payload); err != nil {
		t.Fatalf("first create: %v", err)
	}

	err := svc.ApplyCreated(context.Background(), payload)
	if !common.IsDuplicateKey(err) {
		t.Fatalf("expected DuplicateKeyError unchanged, got %v", err)
	}
}

func TestApplyUpdatedPatchesOnlyProvidedFields(t *testing.T) {
	repo := newMemRepo()
	cacheSpy := &memCache{}
	svc := NewService(repo, cacheSpy, logging.Nop())

	departure := time.Date(2025, 12, 1, 8, 0, 0, 0, time.UTC)
	arrival := time.Date(2025, 12, 1, 11, 0, 0, 0, time.UTC)
	if err := svc.ApplyCreated(context.Background(), events.FlightCreatedPayload{
		FlightID:     "f1",
		FlightNumber: "AA1",
		Origin:       "JFK",
		Destination:  "BOS",
		Departure:    departure,
		Arrival:      arrival,
		Status:       "scheduled",
		Currency:     "USD",
	}); err != nil {
		t.Fatalf("create: %v", err)
	}

	status := "delayed"
	if err := svc.ApplyUpdated(context.Background(), events.FlightUpdatedPayload{
		FlightID:  "f1",
		NewStatus: &status,
	}); err != nil {
		t.Fatalf("update: %v", err)
	}

	row := repo.rows["f1"]
	if row.Status != "delayed" {
		t.Fatalf("expected status delayed, got %s", row.Status)
	}
	if !row.Departure.Equal(departure) || !row.Arrival.Equal(arrival) {
		t.Fatal("expected departure/arrival untouched by status-only update")
	}

	if len(cacheSpy.deletes) == 0 {
		t.Fatal("expected cache invalidation after update")
	}
}
