package repository

import (
	"musafir/ent"
	dom "musafir/internal/domain/flight"
)

func toDomainFlight(e *ent.Flight) *dom.Flight {
	if e == nil {
		return nil
	}
	return &dom.Flight{
		ID:           e.ID,
		FlightNumber: e.FlightNumber,
		AirlineCode:  e.AirlineCode,
		Origin:       e.Origin,
		Destination:  e.Destination,
		Aircraft:     e.Aircraft,
		Departure:    e.Departure,
		Arrival:      e.Arrival,
		Status:       e.Status,
		Price:        e.Price,
		Currency:     e.Currency,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}
