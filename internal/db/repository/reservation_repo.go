package repository

import (
	"context"
	"fmt"

	"musafir/ent"
	"musafir/internal/db"
	"musafir/internal/domain/common"
	dom "musafir/internal/domain/reservation"
	"musafir/internal/logging"
)

type ReservationRepository struct {
	client *db.Client
	logger logging.Logger
}

func NewReservationRepository(client *db.Client, logger logging.Logger) dom.Repository {
	return &ReservationRepository{
		client: client,
		logger: logger.With("component", "reservation_repo"),
	}
}

func (r *ReservationRepository) GetById(ctx context.Context, id string) (*dom.Reservation, error) {
	res, err := r.client.Ent().Reservation.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.NewNotFound("reservation", id)
		}
		return nil, fmt.Errorf("ent.Reservation.Get: %w", err)
	}
	return toDomainReservation(res), nil
}

func (r *ReservationRepository) Create(ctx context.Context, res *dom.Reservation) error {
	created, err := r.client.Ent().Reservation.
		Create().
		SetID(res.ID).
		SetUserID(res.UserID).
		SetFlightID(res.FlightID).
		SetAmount(res.Amount).
		SetCurrency(res.Currency).
		SetStatus(res.Status).
		SetReservedAt(res.ReservedAt).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return common.NewDuplicateKey("reservation", res.ID)
		}
		return fmt.Errorf("ent.Reservation.Create: %w", err)
	}

	res.CreatedAt = created.CreatedAt
	res.UpdatedAt = created.UpdatedAt
	return nil
}

func (r *ReservationRepository) ApplyPatch(ctx context.Context, p dom.Patch) error {
	upd := r.client.Ent().Reservation.UpdateOneID(p.ID)

	if p.Status != nil {
		upd = upd.SetStatus(*p.Status)
	}
	if p.Amount != nil {
		upd = upd.SetAmount(*p.Amount)
	}

	if _, err := upd.Save(ctx); err != nil {
		if ent.IsNotFound(err) {
			return common.NewNotFound("reservation", p.ID)
		}
		return fmt.Errorf("ent.Reservation.UpdateOneID.Save: %w", err)
	}
	return nil
}
