package reservation

import (
	"context"
	"testing"
	"time"

	"musafir/internal/domain/common"
	dom "musafir/internal/domain/reservation"
	"musafir/internal/events"
	"musafir/internal/logging"
)

type memRepo struct {
	rows map[string]*dom.Reservation
}

func newMemRepo() *memRepo {
	return &memRepo{rows: make(map[string]*dom.Reservation)}
}

func (r *memRepo) GetById(ctx context.Context, id string) (*dom.Reservation, error) {
	res, ok := r.rows[id]
	if !ok {
		return nil, common.NewNotFound("reservation", id)
	}
	copied := *res
	return &copied, nil
}

func (r *memRepo) Create(ctx context.Context, res *dom.Reservation) error {
	if _, exists := r.rows[res.ID]; exists {
		return common.NewDuplicateKey("reservation", res.ID)
	}
	copied := *res
	r.rows[res.ID] = &copied
	return nil
}

func (r *memRepo) ApplyPatch(ctx context.Context, p dom.Patch) error {
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

func TestApplyCreatedKeyedByNaturalId(t *testing.T) {
	repo := newMemRepo()
	svc := NewService(repo, logging.Nop())

	payload := events.ReservationCreatedPayload{
		ReservationID: "r1",
		UserID:        "u1",
		FlightID:      "f1",
		Amount:        300,
		Currency:      "USD",
		ReservedAt:    time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC),
	}

	if err := svc.ApplyCreated(context.Background(), payload); err != nil {
		t.Fatalf("apply created: %v", err)
	}

	row := repo.rows["r1"]
	if row == nil {
		t.Fatal("expected reservation r1")
	}
	if row.Status != "confirmed" {
		t.Fatalf("expected default status confirmed, got %s", row.Status)
	}

	// Replay of the identical message: duplicate key passes through so
	// the consumer can classify it, and no second row appears.
	err := svc.ApplyCreated(context.Background(), payload)
	if !common.IsDuplicateKey(err) {
		t.Fatalf("expected DuplicateKeyError on replay, got %v", err)
	}
	if len(repo.rows) != 1 {
		t.Fatalf("expected exactly one row after replay, got %d", len(repo.rows))
	}
}

func TestApplyUpdatedPatchesOnlyProvidedFields(t *testing.T) {
	repo := newMemRepo()
	svc := NewService(repo, logging.Nop())

	if err := svc.ApplyCreated(context.Background(), events.ReservationCreatedPayload{
		ReservationID: "r1",
		UserID:        "u1",
		FlightID:      "f1",
		Amount:        300,
		Currency:      "USD",
		ReservedAt:    time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC),
	}); err != nil {
		t.Fatalf("create: %v", err)
	}

	status := "cancelled"
	if err := svc.ApplyUpdated(context.Background(), events.ReservationUpdatedPayload{
		ReservationID: "r1",
		NewStatus:     &status,
	}); err != nil {
		t.Fatalf("update: %v", err)
	}

	row := repo.rows["r1"]
	if row.Status != "cancelled" {
		t.Fatalf("expected status cancelled, got %s", row.Status)
	}
	if row.Amount != 300 {
		t.Fatalf("expected amount untouched, got %v", row.Amount)
	}
}

func TestApplyUpdatedMissingRowIsGenuineError(t *testing.T) {
	repo := newMemRepo()
	svc := NewService(repo, logging.Nop())

	status := "cancelled"
	err := svc.ApplyUpdated(context.Background(), events.ReservationUpdatedPayload{
		ReservationID: "ghost",
		NewStatus:     &status,
	})
	if !common.IsNotFound(err) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}
