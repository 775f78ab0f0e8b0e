package flight

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
	"unicode"

	"musafir/internal/cache"
	dom "musafir/internal/domain/flight"
	"musafir/internal/events"
	"musafir/internal/logging"
)

const defaultFlightCacheTTL = 10 * time.Minute

// Service applies consumed flight events to local state and serves
// flight reads. Each Apply* call is exactly one storage mutation keyed
// by the event's natural flight id.
type Service interface {
	ApplyCreated(ctx context.Context, p events.FlightCreatedPayload) error
	ApplyUpdated(ctx context.Context, p events.FlightUpdatedPayload) error
	GetById(ctx context.Context, id string) (*FlightDto, error)
}

type service struct {
	repo   dom.Repository
	cache  cache.FlightCache
	logger logging.Logger
}

func NewService(repo dom.Repository, flightCache cache.FlightCache, logger logging.Logger) Service {
	return &service{
		repo:   repo,
		cache:  flightCache,
		logger: logger.With("component", "flight_service"),
	}
}

// AirlineFromFlightNumber derives the owning airline from the flight
// number prefix: the leading non-digit run is taken as an IATA airline
// code ("AA123" -> "AA"), a purely numeric flight number yields "".
// The code is not checked against any airline registry, so an unknown
// prefix still ends up linked as-is.
func AirlineFromFlightNumber(flightNumber string) string {
	for i, r := range flightNumber {
		if unicode.IsDigit(r) {
			return flightNumber[:i]
		}
	}
	return flightNumber
}

func (s *service) ApplyCreated(ctx context.Context, p events.FlightCreatedPayload) error {
	f := &dom.Flight{
		ID:           p.FlightID,
		FlightNumber: p.FlightNumber,
		AirlineCode:  AirlineFromFlightNumber(p.FlightNumber),
		Origin:       p.Origin,
		Destination:  p.Destination,
		Aircraft:     p.Aircraft,
		Departure:    p.Departure,
		Arrival:      p.Arrival,
		Status:       p.Status,
		Price:        p.Price,
		Currency:     p.Currency,
	}
	if f.Status == "" {
		f.Status = "scheduled"
	}

	if err := s.repo.Create(ctx, f); err != nil {
		// DuplicateKeyError passes through untouched so the consumer
		// can classify the redelivery as benign.
		return err
	}

	s.invalidate(ctx, p.FlightID)
	return nil
}

func (s *service) ApplyUpdated(ctx context.Context, p events.FlightUpdatedPayload) error {
	patch := dom.Patch{
		ID:        p.FlightID,
		Status:    p.NewStatus,
		Departure: p.NewDeparture,
		Arrival:   p.NewArrival,
	}

	if err := s.repo.ApplyPatch(ctx, patch); err != nil {
		return fmt.Errorf("patch flight %s: %w", p.FlightID, err)
	}

	s.invalidate(ctx, p.FlightID)
	return nil
}

func (s *service) GetById(ctx context.Context, id string) (*FlightDto, error) {
	if data, err := s.cache.GetByID(ctx, id); err == nil && data != nil {
		var dto FlightDto
		if err := json.Unmarshal(data, &dto); err == nil {
			return &dto, nil
		}
		s.logger.Error("failed to unmarshal flight from cache", "id", id)
	} else if err != nil {
		s.logger.Error("failed to get flight from cache", "error", err, "id", id)
	}

	f, err := s.repo.GetById(ctx, id)
	if err != nil {
		return nil, err
	}

	dto := toDTO(f)

	if data, err := json.Marshal(dto); err == nil {
		if err := s.cache.Set(ctx, id, data, defaultFlightCacheTTL); err != nil {
			s.logger.Error("failed to set flight cache", "error", err, "id", id)
		}
	}

	return dto, nil
}

// invalidate drops the cached row after an event-driven write. Best
// effort: a failed delete only means one stale read until TTL.
func (s *service) invalidate(ctx context.Context, id string) {
	if err := s.cache.Delete(ctx, id); err != nil {
		s.logger.Error("failed to invalidate flight cache", "error", err, "id", id)
	}
}
