package reservation

import "time"

// Reservation is keyed by the natural reservation id carried in
// inbound events.
type Reservation struct {
	ID         string
	UserID     string
	FlightID   string
	Amount     float64
	Currency   string
	Status     string
	ReservedAt time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Patch carries a partial update; nil fields are left untouched.
type Patch struct {
	ID     string
	Status *string
	Amount *float64
}
