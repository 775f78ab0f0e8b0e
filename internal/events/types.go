package events

import "time"

// Event types consumed from sibling services.
const (
	FlightCreatedType      = "flight.created"
	FlightUpdatedType      = "flight.updated"
	ReservationCreatedType = "reservation.created"
	ReservationUpdatedType = "reservation.updated"
)

// Event types this service emits.
const (
	SearchPerformedType = "search.performed"
	CartItemAddedType   = "cart.item.added"
	UserCreatedType     = "user.created"
)

// FlightCreatedPayload announces a new flight. Origin, destination and
// aircraft are natural codes (IATA airport codes, aircraft type code);
// the owning airline is not carried explicitly but derived from the
// flight number prefix by the consumer.
type FlightCreatedPayload struct {
	FlightID     string    `json:"flightId"`
	FlightNumber string    `json:"flightNumber"`
	Origin       string    `json:"origin"`
	Destination  string    `json:"destination"`
	Aircraft     string    `json:"aircraft"`
	Departure    time.Time `json:"departure"`
	Arrival      time.Time `json:"arrival"`
	Status       string    `json:"status"`
	Price        float64   `json:"price"`
	Currency     string    `json:"currency"`
}

// FlightUpdatedPayload patches an existing flight. Absent optional
// fields leave the stored values untouched.
type FlightUpdatedPayload struct {
	FlightID     string     `json:"flightId"`
	NewStatus    *string    `json:"newStatus,omitempty"`
	NewDeparture *time.Time `json:"newDeparture,omitempty"`
	NewArrival   *time.Time `json:"newArrival,omitempty"`
}

type ReservationCreatedPayload struct {
	ReservationID string    `json:"reservationId"`
	UserID        string    `json:"userId"`
	FlightID      string    `json:"flightId"`
	Amount        float64   `json:"amount"`
	Currency      string    `json:"currency"`
	ReservedAt    time.Time `json:"reservedAt"`
}

// ReservationUpdatedPayload patches an existing reservation; absent
// fields are left untouched.
type ReservationUpdatedPayload struct {
	ReservationID string   `json:"reservationId"`
	NewStatus     *string  `json:"newStatus,omitempty"`
	NewAmount     *float64 `json:"newAmount,omitempty"`
}

type SearchPerformedPayload struct {
	UserID        string `json:"userId,omitempty"`
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	DepartureDate string `json:"departureDate"`
	Passengers    int    `json:"passengers"`
}

type CartItemAddedPayload struct {
	UserID   string  `json:"userId"`
	FlightID string  `json:"flightId"`
	Seats    int     `json:"seats"`
	Price    float64 `json:"price"`
	Currency string  `json:"currency"`
}

type UserCreatedPayload struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Name   string `json:"name"`
}
