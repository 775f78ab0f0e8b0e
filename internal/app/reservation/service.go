package reservation

import (
	"context"
	"fmt"

	dom "musafir/internal/domain/reservation"
	"musafir/internal/events"
	"musafir/internal/logging"
)

// Service applies consumed reservation events to local state. One
// storage mutation per event, keyed by the event's reservation id.
type Service interface {
	ApplyCreated(ctx context.Context, p events.ReservationCreatedPayload) error
	ApplyUpdated(ctx context.Context, p events.ReservationUpdatedPayload) error
}

type service struct {
	repo   dom.Repository
	logger logging.Logger
}

func NewService(repo dom.Repository, logger logging.Logger) Service {
	return &service{
		repo:   repo,
		logger: logger.With("component", "reservation_service"),
	}
}

func (s *service) ApplyCreated(ctx context.Context, p events.ReservationCreatedPayload) error {
	r := &dom.Reservation{
		ID:         p.ReservationID,
		UserID:     p.UserID,
		FlightID:   p.FlightID,
		Amount:     p.Amount,
		Currency:   p.Currency,
		Status:     "confirmed",
		ReservedAt: p.ReservedAt,
	}

	// DuplicateKeyError passes through untouched so the consumer can
	// classify the redelivery as benign.
	return s.repo.Create(ctx, r)
}

func (s *service) ApplyUpdated(ctx context.Context, p events.ReservationUpdatedPayload) error {
	patch := dom.Patch{
		ID:     p.ReservationID,
		Status: p.NewStatus,
		Amount: p.NewAmount,
	}

	if err := s.repo.ApplyPatch(ctx, patch); err != nil {
		return fmt.Errorf("patch reservation %s: %w", p.ReservationID, err)
	}
	return nil
}
