package audit

import (
	"context"

	dom "musafir/internal/domain/audit"
	"musafir/internal/logging"
)

// Entry is what the consumer hands over for one processed message.
type Entry struct {
	// Event is the decoded event type, or "unknown" when the envelope
	// was undecodable.
	Event string
	// Message is the raw envelope snapshot as received from the bus.
	Message []byte
	// Payload is the inner payload when one was present.
	Payload []byte
	// Err carries genuine failure detail. Nil for successes and for
	// benign duplicate deliveries.
	Err error
}

// Recorder writes one audit record per consumed message. Record never
// propagates a failure: losing an audit row must not cause the
// original message to be re-processed, so a write error is logged and
// swallowed here.
type Recorder interface {
	Record(ctx context.Context, entry Entry)
}

type recorder struct {
	repo   dom.Repository
	logger logging.Logger
}

func NewRecorder(repo dom.Repository, logger logging.Logger) Recorder {
	return &recorder{
		repo:   repo,
		logger: logger.With("component", "audit_recorder"),
	}
}

func (r *recorder) Record(ctx context.Context, entry Entry) {
	rec := &dom.Record{
		Event:   entry.Event,
		Message: entry.Message,
		Payload: entry.Payload,
	}
	if entry.Err != nil {
		rec.Error = entry.Err.Error()
	}

	if err := r.repo.Insert(ctx, rec); err != nil {
		r.logger.Error("failed to write audit record",
			"event", entry.Event,
			"error", err,
		)
	}
}
