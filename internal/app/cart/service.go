package cart

import (
	"context"
	"fmt"

	"musafir/internal/events"
	"musafir/internal/ingress"
	"musafir/internal/logging"
)

type AddItemInput struct {
	UserID   string
	FlightID string
	Seats    int
	Price    float64
	Currency string
}

// Service announces cart additions on the event bus.
type Service interface {
	AddItem(ctx context.Context, input AddItemInput) error
}

type service struct {
	publisher ingress.Publisher
	logger    logging.Logger
}

func NewService(publisher ingress.Publisher, logger logging.Logger) Service {
	return &service{
		publisher: publisher,
		logger:    logger.With("component", "cart_service"),
	}
}

func (s *service) AddItem(ctx context.Context, input AddItemInput) error {
	payload := events.CartItemAddedPayload{
		UserID:   input.UserID,
		FlightID: input.FlightID,
		Seats:    input.Seats,
		Price:    input.Price,
		Currency: input.Currency,
	}

	if err := s.publisher.Publish(ctx, events.CartItemAddedType, payload); err != nil {
		return fmt.Errorf("publish %s: %w", events.CartItemAddedType, err)
	}
	return nil
}
