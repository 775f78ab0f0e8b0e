package consumer

import (
	"context"

	appflight "musafir/internal/app/flight"
	appreservation "musafir/internal/app/reservation"
	"musafir/internal/events"
)

// RegisterDomainHandlers binds every inbound event type to its domain
// mutator. Each handler checks the schema version, decodes the typed
// payload, and performs exactly one storage mutation.
func RegisterDomainHandlers(
	registry *Registry,
	flights appflight.Service,
	reservations appreservation.Service,
) error {
	if err := registry.Register(events.FlightCreatedType, func(ctx context.Context, env events.Envelope) error {
		var p events.FlightCreatedPayload
		if err := events.DecodePayload(env, &p); err != nil {
			return err
		}
		return flights.ApplyCreated(ctx, p)
	}); err != nil {
		return err
	}

	if err := registry.Register(events.FlightUpdatedType, func(ctx context.Context, env events.Envelope) error {
		var p events.FlightUpdatedPayload
		if err := events.DecodePayload(env, &p); err != nil {
			return err
		}
		return flights.ApplyUpdated(ctx, p)
	}); err != nil {
		return err
	}

	if err := registry.Register(events.ReservationCreatedType, func(ctx context.Context, env events.Envelope) error {
		var p events.ReservationCreatedPayload
		if err := events.DecodePayload(env, &p); err != nil {
			return err
		}
		return reservations.ApplyCreated(ctx, p)
	}); err != nil {
		return err
	}

	if err := registry.Register(events.ReservationUpdatedType, func(ctx context.Context, env events.Envelope) error {
		var p events.ReservationUpdatedPayload
		if err := events.DecodePayload(env, &p); err != nil {
			return err
		}
		return reservations.ApplyUpdated(ctx, p)
	}); err != nil {
		return err
	}

	return nil
}
