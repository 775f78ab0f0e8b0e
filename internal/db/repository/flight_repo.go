package repository

import (
	"context"
	"fmt"

	"musafir/ent"
	"musafir/internal/db"
	"musafir/internal/domain/common"
	dom "musafir/internal/domain/flight"
	"musafir/internal/logging"
)

type FlightRepository struct {
	client *db.Client
	logger logging.Logger
}

func NewFlightRepository(client *db.Client, logger logging.Logger) dom.Repository {
	return &FlightRepository{
		client: client,
		logger: logger.With("component", "flight_repo"),
	}
}

func (r *FlightRepository) GetById(ctx context.Context, id string) (*dom.Flight, error) {
	f, err := r.client.Ent().Flight.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.NewNotFound("flight", id)
		}
		return nil, fmt.Errorf("ent.Flight.Get: %w", err)
	}
	return toDomainFlight(f), nil
}

func (r *FlightRepository) Create(ctx context.Context, f *dom.Flight) error {
	builder := r.client.Ent().Flight.
		Create().
		SetID(f.ID).
		SetFlightNumber(f.FlightNumber).
		SetOrigin(f.Origin).
		SetDestination(f.Destination).
		SetDeparture(f.Departure).
		SetArrival(f.Arrival).
		SetStatus(f.Status).
		SetPrice(f.Price).
		SetCurrency(f.Currency)

	if f.AirlineCode != "" {
		builder = builder.SetAirlineCode(f.AirlineCode)
	}
	if f.Aircraft != "" {
		builder = builder.SetAircraft(f.Aircraft)
	}

	created, err := builder.Save(ctx)
	if err != nil {
		// The store's uniqueness constraint is the concurrency guard
		// against duplicate creates racing across workers.
		if ent.IsConstraintError(err) {
			return common.NewDuplicateKey("flight", f.ID)
		}
		return fmt.Errorf("ent.Flight.Create: %w", err)
	}

	f.CreatedAt = created.CreatedAt
	f.UpdatedAt = created.UpdatedAt
	return nil
}

func (r *FlightRepository) ApplyPatch(ctx context.Context, p dom.Patch) error {
	upd := r.client.Ent().Flight.UpdateOneID(p.ID)

	if p.Status != nil {
		upd = upd.SetStatus(*p.Status)
	}
	if p.Departure != nil {
		upd = upd.SetDeparture(*p.Departure)
	}
	if p.Arrival != nil {
		upd = upd.SetArrival(*p.Arrival)
	}

	if _, err := upd.Save(ctx); err != nil {
		if ent.IsNotFound(err) {
			return common.NewNotFound("flight", p.ID)
		}
		return fmt.Errorf("ent.Flight.UpdateOneID.Save: %w", err)
	}
	return nil
}

func (r *FlightRepository) Delete(ctx context.Context, id string) error {
	err := r.client.Ent().Flight.
		DeleteOneID(id).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return common.NewNotFound("flight", id)
		}
		return fmt.Errorf("ent.Flight.DeleteOneID.Exec: %w", err)
	}
	return nil
}
