package flight

import "time"

// Flight is keyed by the natural flight id carried in inbound events;
// this subsystem never mints flight ids of its own.
type Flight struct {
	ID           string
	FlightNumber string
	// AirlineCode is the IATA code derived from the flight number
	// prefix; empty when the prefix is purely numeric.
	AirlineCode string
	Origin      string
	Destination string
	Aircraft    string
	Departure   time.Time
	Arrival     time.Time
	Status      string
	Price       float64
	Currency    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Patch carries a partial update. Nil fields leave the stored value
// untouched.
type Patch struct {
	ID        string
	Status    *string
	Departure *time.Time
	Arrival   *time.Time
}
