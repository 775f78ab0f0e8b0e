package flight

import (
	"time"

	dom "musafir/internal/domain/flight"
)

type FlightDto struct {
	Id           string    `json:"id"`
	FlightNumber string    `json:"flightNumber"`
	AirlineCode  string    `json:"airlineCode,omitempty"`
	Origin       string    `json:"origin"`
	Destination  string    `json:"destination"`
	Aircraft     string    `json:"aircraft,omitempty"`
	Departure    time.Time `json:"departure"`
	Arrival      time.Time `json:"arrival"`
	Status       string    `json:"status"`
	Price        float64   `json:"price"`
	Currency     string    `json:"currency"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func toDTO(f *dom.Flight) *FlightDto {
	if f == nil {
		return nil
	}
	return &FlightDto{
		Id:           f.ID,
		FlightNumber: f.FlightNumber,
		AirlineCode:  f.AirlineCode,
		Origin:       f.Origin,
		Destination:  f.Destination,
		Aircraft:     f.Aircraft,
		Departure:    f.Departure,
		Arrival:      f.Arrival,
		Status:       f.Status,
		Price:        f.Price,
		Currency:     f.Currency,
		UpdatedAt:    f.UpdatedAt,
	}
}
