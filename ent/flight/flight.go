// Code generated by ent, DO NOT EDIT.

package flight

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the flight type in the database.
	Label = "flight"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldFlightNumber holds the string denoting the flight_number field in the database.
	FieldFlightNumber = "flight_number"
	// FieldAirlineCode holds the string denoting the airline_code field in the database.
	FieldAirlineCode = "airline_code"
	// FieldOrigin holds the string denoting the origin field in the database.
	FieldOrigin = "origin"
	// FieldDestination holds the string denoting the destination field in the database.
	FieldDestination = "destination"
	// FieldAircraft holds the string denoting the aircraft field in the database.
	FieldAircraft = "aircraft"
	// FieldDeparture holds the string denoting the departure field in the database.
	FieldDeparture = "departure"
	// FieldArrival holds the string denoting the arrival field in the database.
	FieldArrival = "arrival"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldPrice holds the string denoting the price field in the database.
	FieldPrice = "price"
	// FieldCurrency holds the string denoting the currency field in the database.
	FieldCurrency = "currency"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the flight in the database.
	Table = "flights"
)

// Columns holds all SQL columns for flight fields.
var Columns = []string{
	FieldID,
	FieldFlightNumber,
	FieldAirlineCode,
	FieldOrigin,
	FieldDestination,
	FieldAircraft,
	FieldDeparture,
	FieldArrival,
	FieldStatus,
	FieldPrice,
	FieldCurrency,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// FlightNumberValidator is a validator for the "flight_number" field. It is called by the builders before save.
	FlightNumberValidator func(string) error
	// OriginValidator is a validator for the "origin" field. It is called by the builders before save.
	OriginValidator func(string) error
	// DestinationValidator is a validator for the "destination" field. It is called by the builders before save.
	DestinationValidator func(string) error
	// DefaultStatus holds the default value on creation for the "status" field.
	DefaultStatus string
	// CurrencyValidator is a validator for the "currency" field. It is called by the builders before save.
	CurrencyValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// IDValidator is a validator for the "id" field. It is called by the builders before save.
	IDValidator func(string) error
)

// OrderOption defines the ordering options for the Flight queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByFlightNumber orders the results by the flight_number field.
func ByFlightNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFlightNumber, opts...).ToFunc()
}

// ByAirlineCode orders the results by the airline_code field.
func ByAirlineCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAirlineCode, opts...).ToFunc()
}

// ByOrigin orders the results by the origin field.
func ByOrigin(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOrigin, opts...).ToFunc()
}

// ByDestination orders the results by the destination field.
func ByDestination(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDestination, opts...).ToFunc()
}

// ByAircraft orders the results by the aircraft field.
func ByAircraft(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAircraft, opts...).ToFunc()
}

// ByDeparture orders the results by the departure field.
func ByDeparture(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeparture, opts...).ToFunc()
}

// ByArrival orders the results by the arrival field.
func ByArrival(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldArrival, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByPrice orders the results by the price field.
func ByPrice(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPrice, opts...).ToFunc()
}

// ByCurrency orders the results by the currency field.
func ByCurrency(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrency, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
