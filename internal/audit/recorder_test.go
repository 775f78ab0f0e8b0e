package audit

import (
	"context"
	"errors"
	"testing"

	dom "musafir/internal/domain/audit"
	"musafir/internal/logging"
)

type memRepo struct {
	records []dom.Record
	failing bool
}

func (r *memRepo) Insert(ctx context.Context, rec *dom.Record) error {
	if r.failing {
		return errors.New("storage down")
	}
	r.records = append(r.records, *rec)
	return nil
}

func TestRecordPersistsOutcome(t *testing.T) {
	repo := &memRepo{}
	rec := NewRecorder(repo, logging.Nop())

	rec.Record(context.Background(), Entry{
		Event:   "flight.created",
		Message: []byte(`{"eventType":"flight.created"}`),
		Payload: []byte(`{"flightId":"f1"}`),
		Err:     errors.New("constraint broke"),
	})

	if len(repo.records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(repo.records))
	}
	got := repo.records[0]
	if got.Event != "flight.created" {
		t.Fatalf("event mismatch: %s", got.Event)
	}
	if got.Error != "constraint broke" {
		t.Fatalf("expected error detail, got %q", got.Error)
	}
}

func TestRecordSwallowsWriteFailure(t *testing.T) {
	rec := NewRecorder(&memRepo{failing: true}, logging.Nop())

	// Must return normally: losing an audit row never re-processes the
	// original message.
	rec.Record(context.Background(), Entry{
		Event:   "reservation.created",
		Message: []byte("{}"),
	})
}
