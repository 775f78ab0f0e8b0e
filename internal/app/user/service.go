package user

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"musafir/internal/events"
	"musafir/internal/ingress"
	"musafir/internal/logging"
)

type RegisterInput struct {
	Email string
	Name  string
}

type RegisteredDto struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Name   string `json:"name"`
}

// Service announces user registrations on the event bus. Account
// storage and authentication live with an external collaborator; here
// a registration is only a user.created event.
type Service interface {
	Register(ctx context.Context, input RegisterInput) (*RegisteredDto, error)
}

type service struct {
	publisher ingress.Publisher
	logger    logging.Logger
}

func NewService(publisher ingress.Publisher, logger logging.Logger) Service {
	return &service{
		publisher: publisher,
		logger:    logger.With("component", "user_service"),
	}
}

func (s *service) Register(ctx context.Context, input RegisterInput) (*RegisteredDto, error) {
	dto := &RegisteredDto{
		UserID: uuid.NewString(),
		Email:  input.Email,
		Name:   input.Name,
	}

	payload := events.UserCreatedPayload{
		UserID: dto.UserID,
		Email:  dto.Email,
		Name:   dto.Name,
	}

	if err := s.publisher.Publish(ctx, events.UserCreatedType, payload); err != nil {
		return nil, fmt.Errorf("publish %s: %w", events.UserCreatedType, err)
	}

	return dto, nil
}
