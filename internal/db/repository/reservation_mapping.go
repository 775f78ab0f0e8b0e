package repository

import (
	"musafir/ent"
	dom "musafir/internal/domain/reservation"
)

func toDomainReservation(e *ent.Reservation) *dom.Reservation {
	if e == nil {
		return nil
	}
	return &dom.Reservation{
		ID:         e.ID,
		UserID:     e.UserID,
		FlightID:   e.FlightID,
		Amount:     e.Amount,
		Currency:   e.Currency,
		Status:     e.Status,
		ReservedAt: e.ReservedAt,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
}
