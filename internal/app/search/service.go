package search

import (
	"context"
	"fmt"

	"musafir/internal/events"
	"musafir/internal/ingress"
	"musafir/internal/logging"
)

type PerformSearchInput struct {
	UserID        string
	Origin        string
	Destination   string
	DepartureDate string
	Passengers    int
}

// Service announces performed searches on the event bus. The search
// ranking itself lives elsewhere; this is the producer boundary that
// turns a search into a search.performed event.
type Service interface {
	RecordSearch(ctx context.Context, input PerformSearchInput) error
}

type service struct {
	publisher ingress.Publisher
	logger    logging.Logger
}

func NewService(publisher ingress.Publisher, logger logging.Logger) Service {
	return &service{
		publisher: publisher,
		logger:    logger.With("component", "search_service"),
	}
}

func (s *service) RecordSearch(ctx context.Context, input PerformSearchInput) error {
	payload := events.SearchPerformedPayload{
		UserID:        input.UserID,
		Origin:        input.Origin,
		Destination:   input.Destination,
		DepartureDate: input.DepartureDate,
		Passengers:    input.Passengers,
	}

	if err := s.publisher.Publish(ctx, events.SearchPerformedType, payload); err != nil {
		return fmt.Errorf("publish %s: %w", events.SearchPerformedType, err)
	}
	return nil
}
