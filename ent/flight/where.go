// Code generated by ent, DO NOT EDIT.

package flight

import (
	"musafir/ent/predicate"
	"time"

	"entgo.io/ent/dialect/sql"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Flight {
	return predicate.Flight(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Flight {
	return predicate.Flight(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Flight {
	return predicate.Flight(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Flight {
	return predicate.Flight(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Flight {
	return predicate.Flight(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Flight {
	return predicate.Flight(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Flight {
	return predicate.Flight(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Flight {
	return predicate.Flight(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Flight {
	return predicate.Flight(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Flight {
	return predicate.Flight(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Flight {
	return predicate.Flight(sql.FieldContainsFold(FieldID, id))
}

// FlightNumber applies equality check predicate on the "flight_number" field. It's identical to FlightNumberEQ.
func FlightNumber(v string) predicate.Flight {
	return predicate.Flight(sql.FieldEQ(FieldFlightNumber, v))
}

// AirlineCode applies equality check predicate on the "airline_code" field. It's identical to AirlineCodeEQ.
func AirlineCode(v string) predicate.Flight {
	return predicate.Flight(sql.FieldEQ(FieldAirlineCode, v))
}

// Origin applies equality check predicate on the "origin" field. It's identical to OriginEQ.
func Origin(v string) predicate.Flight {
	return predicate.Flight(sql.FieldEQ(FieldOrigin, v))
}

// Destination applies equality check predicate on the "destination" field. It's identical to DestinationEQ.
func Destination(v string) predicate.Flight {
	return predicate.Flight(sql.FieldEQ(FieldDestination, v))
}

// Aircraft applies equality check predicate on the "aircraft" field. It's identical to AircraftEQ.
func Aircraft(v string) predicate.Flight {
	return predicate.Flight(sql.FieldEQ(FieldAircraft, v))
}

// Departure applies equality check predicate on the "departure" field. It's identical to DepartureEQ.
func Departure(v time.Time) predicate.Flight {
	return predicate.Flight(sql.FieldEQ(FieldDeparture, v))
}

// Arrival applies equality check predicate on the "arrival" field. It's identical to ArrivalEQ.
func Arrival(v time.Time) predicate.Flight {
	return predicate.Flight(sql.FieldEQ(FieldArrival, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.Flight {
	return predicate.Flight(sql.FieldEQ(FieldStatus, v))
}

// Price applies equality check predicate on the "price" field. It's identical to PriceEQ.
func Price(v float64) predicate.Flight {
	return predicate.Flight(sql.FieldEQ(FieldPrice, v))
}

// Currency applies equality check predicate on the "currency" field. It's identical to CurrencyEQ.
func Currency(v string) predicate.Flight {
	return predicate.Flight(sql.FieldEQ(FieldCurrency, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Flight {
	return predicate.Flight(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Flight {
	return predicate.Flight(sql.FieldEQ(FieldUpdatedAt, v))
}

// FlightNumberEQ applies the EQ predicate on the "flight_number" field.
func FlightNumberEQ(v string) predicate.Flight {
	return predicate.Flight(sql.FieldEQ(FieldFlightNumber, v))
}

// FlightNumberNEQ applies the NEQ predicate on the "flight_number" field.
func FlightNumberNEQ(v string) predicate.Flight {
	return predicate.Flight(sql.FieldNEQ(FieldFlightNumber, v))
}

// FlightNumberIn applies the In predicate on the "flight_number" field.
func FlightNumberIn(vs ...string) predicate.Flight {
	return predicate.Flight(sql.FieldIn(FieldFlightNumber, vs...))
}

// FlightNumberNotIn applies the NotIn predicate on the "flight_number" field.
func FlightNumberNotIn(vs ...string) predicate.Flight {
	return predicate.Flight(sql.FieldNotIn(FieldFlightNumber, vs...))
}

// FlightNumberGT applies the GT predicate on the "flight_number" field.
func FlightNumberGT(v string) predicate.Flight {
	return predicate.Flight(sql.FieldGT(FieldFlightNumber, v))
}

// FlightNumberGTE applies the GTE predicate on the "flight_number" field.
func FlightNumberGTE(v string) predicate.Flight {
	return predicate.Flight(sql.FieldGTE(FieldFlightNumber, v))
}

// FlightNumberLT applies the LT predicate on the "flight_number" field.
func FlightNumberLT(v string) predicate.Flight {
	return predicate.Flight(sql.FieldLT(FieldFlightNumber, v))
}

// FlightNumberLTE applies the LTE predicate on the "flight_number" field.
func FlightNumberLTE(v string) predicate.Flight {
	return predicate.Flight(sql.FieldLTE(FieldFlightNumber, v))
}

// FlightNumberContains applies the Contains predicate on the "flight_number" field.
func FlightNumberContains(v string) predicate.Flight {
	return predicate.Flight(sql.FieldContains(FieldFlightNumber, v))
}

// FlightNumberHasPrefix applies the HasPrefix predicate on the "flight_number" field.
func FlightNumberHasPrefix(v string) predicate.Flight {
	return predicate.Flight(sql.FieldHasPrefix(FieldFlightNumber, v))
}

// FlightNumberHasSuffix applies the HasSuffix predicate on the "flight_number" field.
func FlightNumberHasSuffix(v string) predicate.Flight {
	return predicate.Flight(sql.FieldHasSuffix(FieldFlightNumber, v))
}

// FlightNumberEqualFold applies the EqualFold predicate on the "flight_number" field.
func FlightNumberEqualFold(v string) predicate.Flight {
	return predicate.Flight(sql.FieldEqualFold(FieldFlightNumber, v))
}

// FlightNumberContainsFold applies the ContainsFold predicate on the "flight_number" field.
func FlightNumberContainsFold(v string) predicate.Flight {
	return predicate.Flight(sql.FieldContainsFold(FieldFlightNumber, v))
}

// AirlineCodeEQ applies the EQ predicate on the "airline_code" field.
func AirlineCodeEQ(v string) predicate.Flight {
	return predicate.Flight(sql.FieldEQ(FieldAirlineCode, v))
}

// AirlineCodeNEQ applies the NEQ predicate on the "airline_code" field.
func AirlineCodeNEQ(v string) predicate.Flight {
	return predicate.Flight(sql.FieldNEQ(FieldAirlineCode, v))
}

// AirlineCodeIn applies the In predicate on the "airline_code" field.
func AirlineCodeIn(vs ...string) predicate.Flight {
	return predicate.Flight(sql.FieldIn(FieldAirlineCode, vs...))
}

// AirlineCodeNotIn applies the NotIn predicate on the "airline_code" field.
func AirlineCodeNotIn(vs ...string) predicate.Flight {
	return predicate.Flight(sql.FieldNotIn(FieldAirlineCode, vs...))
}

// AirlineCodeGT applies the GT predicate on the "airline_code" field.
func AirlineCodeGT(v string) predicate.Flight {
	return predicate.Flight(sql.FieldGT(FieldAirlineCode, v))
}

// AirlineCodeGTE applies the GTE predicate on the "airline_code" field.
func AirlineCodeGTE(v string) predicate.Flight {
	return predicate.Flight(sql.FieldGTE(FieldAirlineCode, v))
}

// AirlineCodeLT applies the LT predicate on the "airline_code" field.
func AirlineCodeLT(v string) predicate.Flight {
	return predicate.Flight(sql.FieldLT(FieldAirlineCode, v))
}

// AirlineCodeLTE applies the LTE predicate on the "airline_code" field.
func AirlineCodeLTE(v string) predicate.Flight {
	return predicate.Flight(sql.FieldLTE(FieldAirlineCode, v))
}

// AirlineCodeContains applies the Contains predicate on the "airline_code" field.
func AirlineCodeContains(v string) predicate.Flight {
	return predicate.Flight(sql.FieldContains(FieldAirlineCode, v))
}

// AirlineCodeHasPrefix applies the HasPrefix predicate on the "airline_code" field.
func AirlineCodeHasPrefix(v string) predicate.Flight {
	return predicate.Flight(sql.FieldHasPrefix(FieldAirlineCode, v))
}

// AirlineCodeHasSuffix applies the HasSuffix predicate on the "airline_code" field.
func AirlineCodeHasSuffix(v string) predicate.Flight {
	return predicate.Flight(sql.FieldHasSuffix(FieldAirlineCode, v))
}

// AirlineCodeIsNil applies the IsNil predicate on the "airline_code" field.
func AirlineCodeIsNil() predicate.Flight {
	return predicate.Flight(sql.FieldIsNull(FieldAirlineCode))
}

// AirlineCodeNotNil applies the NotNil predicate on the "airline_code" field.
func AirlineCodeNotNil() predicate.Flight {
	return predicate.Flight(sql.FieldNotNull(FieldAirlineCode))
}

// AirlineCodeEqualFold applies the EqualFold predicate on the "airline_code" field.
func AirlineCodeEqualFold(v string) predicate.Flight {
	return predicate.Flight(sql.FieldEqualFold(FieldAirlineCode, v))
}

// AirlineCodeContainsFold applies the ContainsFold predicate on the "airline_code" field.
func AirlineCodeContainsFold(v string) predicate.Flight {
	return predicate.Flight(sql.FieldContainsFold(FieldAirlineCode, v))
}

// OriginEQ applies the EQ predicate on the "origin" field.
func OriginEQ(v string) predicate.Flight {
	return predicate.Flight(sql.FieldEQ(FieldOrigin, v))
}

// OriginNEQ applies the NEQ predicate on the "origin" field.
func OriginNEQ(v string) predicate.Flight {
	return predicate.Flight(sql.FieldNEQ(FieldOrigin, v))
}

// OriginIn applies the In predicate on the "origin" field.
func OriginIn(vs ...string) predicate.Flight {
	return predicate.Flight(sql.FieldIn(FieldOrigin, vs...))
}

// OriginNotIn applies the NotIn predicate on the "origin" field.
func OriginNotIn(vs ...string) predicate.Flight {
	return predicate.Flight(sql.FieldNotIn(FieldOrigin, vs...))
}

// OriginGT applies the GT predicate on the "origin" field.
func OriginGT(v string) predicate.Flight {
	return predicate.Flight(sql.FieldGT(FieldOrigin, v))
}

// OriginGTE applies the GTE predicate on the "origin" field.
func OriginGTE(v string) predicate.Flight {
	return predicate.Flight(sql.FieldGTE(FieldOrigin, v))
}

// OriginLT applies the LT predicate on the "origin" field.
func OriginLT(v string) predicate.Flight {
	return predicate.Flight(sql.FieldLT(FieldOrigin, v))
}

// OriginLTE applies the LTE predicate on the "origin" field.
func OriginLTE(v string) predicate.Flight {
	return predicate.Flight(sql.FieldLTE(FieldOrigin, v))
}

// OriginContains applies the Contains predicate on the "origin" field.
func OriginContains(v string) predicate.Flight {
	return predicate.Flight(sql.FieldContains(FieldOrigin, v))
}

// OriginHasPrefix applies the HasPrefix predicate on the "origin" field.
func OriginHasPrefix(v string) predicate.Flight {
	return predicate.Flight(sql.FieldHasPrefix(FieldOrigin, v))
}

// OriginHasSuffix applies the HasSuffix predicate on the "origin" field.
func OriginHasSuffix(v string) predicate.Flight {
	return predicate.Flight(sql.FieldHasSuffix(FieldOrigin, v))
}

// OriginEqualFold applies the EqualFold predicate on the "origin" field.
func OriginEqualFold(v string) predicate.Flight {
	return predicate.Flight(sql.FieldEqualFold(FieldOrigin, v))
}

// OriginContainsFold applies the ContainsFold predicate on the "origin" field.
func OriginContainsFold(v string) predicate.Flight {
	return predicate.Flight(sql.FieldContainsFold(FieldOrigin, v))
}

// DestinationEQ applies the EQ predicate on the "destination" field.
func DestinationEQ(v string) predicate.Flight {
	return predicate.Flight(sql.FieldEQ(FieldDestination, v))
}

// DestinationNEQ applies the NEQ predicate on the "destination" field.
func DestinationNEQ(v string) predicate.Flight {
	return predicate.Flight(sql.FieldNEQ(FieldDestination, v))
}

// DestinationIn applies the In predicate on the "destination" field.
func DestinationIn(vs ...string) predicate.Flight {
	return predicate.Flight(sql.FieldIn(FieldDestination, vs...))
}

// DestinationNotIn applies the NotIn predicate on the "destination" field.
func DestinationNotIn(vs ...string) predicate.Flight {
	return predicate.Flight(sql.FieldNotIn(FieldDestination, vs...))
}

// DestinationGT applies the GT predicate on the "destination" field.
func DestinationGT(v string) predicate.Flight {
	return predicate.Flight(sql.FieldGT(FieldDestination, v))
}

// DestinationGTE applies the GTE predicate on the "destination" field.
func DestinationGTE(v string) predicate.Flight {
	return predicate.Flight(sql.FieldGTE(FieldDestination, v))
}

// DestinationLT applies the LT predicate on the "destination" field.
func DestinationLT(v string) predicate.Flight {
	return predicate.Flight(sql.FieldLT(FieldDestination, v))
}

// DestinationLTE applies the LTE predicate on the "destination" field.
func DestinationLTE(v string) predicate.Flight {
	return predicate.Flight(sql.FieldLTE(FieldDestination, v))
}

// DestinationContains applies the Contains predicate on the "destination" field.
func DestinationContains(v string) predicate.Flight {
	return predicate.Flight(sql.FieldContains(FieldDestination, v))
}

// DestinationHasPrefix applies the HasPrefix predicate on the "destination" field.
func DestinationHasPrefix(v string) predicate.Flight {
	return predicate.Flight(sql.FieldHasPrefix(FieldDestination, v))
}

// DestinationHasSuffix applies the HasSuffix predicate on the "destination" field.
func DestinationHasSuffix(v string) predicate.Flight {
	return predicate.Flight(sql.FieldHasSuffix(FieldDestination, v))
}

// DestinationEqualFold applies the EqualFold predicate on the "destination" field.
func DestinationEqualFold(v string) predicate.Flight {
	return predicate.Flight(sql.FieldEqualFold(FieldDestination, v))
}

// DestinationContainsFold applies the ContainsFold predicate on the "destination" field.
func DestinationContainsFold(v string) predicate.Flight {
	return predicate.Flight(sql.FieldContainsFold(FieldDestination, v))
}

// AircraftEQ applies the EQ predicate on the "aircraft" field.
func AircraftEQ(v string) predicate.Flight {
	return predicate.Flight(sql.FieldEQ(FieldAircraft, v))
}

// AircraftNEQ applies the NEQ predicate on the "aircraft" field.
func AircraftNEQ(v string) predicate.Flight {
	return predicate.Flight(sql.FieldNEQ(FieldAircraft, v))
}

// AircraftIn applies the In predicate on the "aircraft" field.
func AircraftIn(vs ...string) predicate.Flight {
	return predicate.Flight(sql.FieldIn(FieldAircraft, vs...))
}

// AircraftNotIn applies the NotIn predicate on the "aircraft" field.
func AircraftNotIn(vs ...string) predicate.Flight {
	return predicate.Flight(sql.FieldNotIn(FieldAircraft, vs...))
}

// AircraftGT applies the GT predicate on the "aircraft" field.
func AircraftGT(v string) predicate.Flight {
	return predicate.Flight(sql.FieldGT(FieldAircraft, v))
}

// AircraftGTE applies the GTE predicate on the "aircraft" field.
func AircraftGTE(v string) predicate.Flight {
	return predicate.Flight(sql.FieldGTE(FieldAircraft, v))
}

// AircraftLT applies the LT predicate on the "aircraft" field.
func AircraftLT(v string) predicate.Flight {
	return predicate.Flight(sql.FieldLT(FieldAircraft, v))
}

// AircraftLTE applies the LTE predicate on the "aircraft" field.
func AircraftLTE(v string) predicate.Flight {
	return predicate.Flight(sql.FieldLTE(FieldAircraft, v))
}

// AircraftContains applies the Contains predicate on the "aircraft" field.
func AircraftContains(v string) predicate.Flight {
	return predicate.Flight(sql.FieldContains(FieldAircraft, v))
}

// AircraftHasPrefix applies the HasPrefix predicate on the "aircraft" field.
func AircraftHasPrefix(v string) predicate.Flight {
	return predicate.Flight(sql.FieldHasPrefix(FieldAircraft, v))
}

// AircraftHasSuffix applies the HasSuffix predicate on the "aircraft" field.
func AircraftHasSuffix(v string) predicate.Flight {
	return predicate.Flight(sql.FieldHasSuffix(FieldAircraft, v))
}

// AircraftIsNil applies the IsNil predicate on the "aircraft" field.
func AircraftIsNil() predicate.Flight {
	return predicate.Flight(sql.FieldIsNull(FieldAircraft))
}

// AircraftNotNil applies the NotNil predicate on the "aircraft" field.
func AircraftNotNil() predicate.Flight {
	return predicate.Flight(sql.FieldNotNull(FieldAircraft))
}

// AircraftEqualFold applies the EqualFold predicate on the "aircraft" field.
func AircraftEqualFold(v string) predicate.Flight {
	return predicate.Flight(sql.FieldEqualFold(FieldAircraft, v))
}

// AircraftContainsFold applies the ContainsFold predicate on the "aircraft" field.
func AircraftContainsFold(v string) predicate.Flight {
	return predicate.Flight(sql.FieldContainsFold(FieldAircraft, v))
}

// DepartureEQ applies the EQ predicate on the "departure" field.
func DepartureEQ(v time.Time) predicate.Flight {
	return predicate.Flight(sql.FieldEQ(FieldDeparture, v))
}

// DepartureNEQ applies the NEQ predicate on the "departure" field.
func DepartureNEQ(v time.Time) predicate.Flight {
	return predicate.Flight(sql.FieldNEQ(FieldDeparture, v))
}

// DepartureIn applies the In predicate on the "departure" field.
func DepartureIn(vs ...time.Time) predicate.Flight {
	return predicate.Flight(sql.FieldIn(FieldDeparture, vs...))
}

// DepartureNotIn applies the NotIn predicate on the "departure" field.
func DepartureNotIn(vs ...time.Time) predicate.Flight {
	return predicate.Flight(sql.FieldNotIn(FieldDeparture, vs...))
}

// DepartureGT applies the GT predicate on the "departure" field.
func DepartureGT(v time.Time) predicate.Flight {
	return predicate.Flight(sql.FieldGT(FieldDeparture, v))
}

// DepartureGTE applies the GTE predicate on the "departure" field.
func DepartureGTE(v time.Time) predicate.Flight {
	return predicate.Flight(sql.FieldGTE(FieldDeparture, v))
}

// DepartureLT applies the LT predicate on the "departure" field.
func DepartureLT(v time.Time) predicate.Flight {
	return predicate.Flight(sql.FieldLT(FieldDeparture, v))
}

// DepartureLTE applies the LTE predicate on the "departure" field.
func DepartureLTE(v time.Time) predicate.Flight {
	return predicate.Flight(sql.FieldLTE(FieldDeparture, v))
}

// ArrivalEQ applies the EQ predicate on the "arrival" field.
func ArrivalEQ(v time.Time) predicate.Flight {
	return predicate.Flight(sql.FieldEQ(FieldArrival, v))
}

// ArrivalNEQ applies the NEQ predicate on the "arrival" field.
func ArrivalNEQ(v time.Time) predicate.Flight {
	return predicate.Flight(sql.FieldNEQ(FieldArrival, v))
}

// ArrivalIn applies the In predicate on the "arrival" field.
func ArrivalIn(vs ...time.Time) predicate.Flight {
	return predicate.Flight(sql.FieldIn(FieldArrival, vs...))
}

// ArrivalNotIn applies the NotIn predicate on the "arrival" field.
func ArrivalNotIn(vs ...time.Time) predicate.Flight {
	return predicate.Flight(sql.FieldNotIn(FieldArrival, vs...))
}

// ArrivalGT applies the GT predicate on the "arrival" field.
func ArrivalGT(v time.Time) predicate.Flight {
	return predicate.Flight(sql.FieldGT(FieldArrival, v))
}

// ArrivalGTE applies the GTE predicate on the "arrival" field.
func ArrivalGTE(v time.Time) predicate.Flight {
	return predicate.Flight(sql.FieldGTE(FieldArrival, v))
}

// ArrivalLT applies the LT predicate on the "arrival" field.
func ArrivalLT(v time.Time) predicate.Flight {
	return predicate.Flight(sql.FieldLT(FieldArrival, v))
}

// ArrivalLTE applies the LTE predicate on the "arrival" field.
func ArrivalLTE(v time.Time) predicate.Flight {
	return predicate.Flight(sql.FieldLTE(FieldArrival, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.Flight {
	return predicate.Flight(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.Flight {
	return predicate.Flight(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.Flight {
	return predicate.Flight(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.Flight {
	return predicate.Flight(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.Flight {
	return predicate.Flight(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.Flight {
	return predicate.Flight(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.Flight {
	return predicate.Flight(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.Flight {
	return predicate.Flight(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.Flight {
	return predicate.Flight(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.Flight {
	return predicate.Flight(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.Flight {
	return predicate.Flight(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.Flight {
	return predicate.Flight(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.Flight {
	return predicate.Flight(sql.FieldContainsFold(FieldStatus, v))
}

// PriceEQ applies the EQ predicate on the "price" field.
func PriceEQ(v float64) predicate.Flight {
	return predicate.Flight(sql.FieldEQ(FieldPrice, v))
}

// PriceNEQ applies the NEQ predicate on the "price" field.
func PriceNEQ(v float64) predicate.Flight {
	return predicate.Flight(sql.FieldNEQ(FieldPrice, v))
}

// PriceIn applies the In predicate on the "price" field.
func PriceIn(vs ...float64) predicate.Flight {
	return predicate.Flight(sql.FieldIn(FieldPrice, vs...))
}

// PriceNotIn applies the NotIn predicate on the "price" field.
func PriceNotIn(vs ...float64) predicate.Flight {
	return predicate.Flight(sql.FieldNotIn(FieldPrice, vs...))
}

// PriceGT applies the GT predicate on the "price" field.
func PriceGT(v float64) predicate.Flight {
	return predicate.Flight(sql.FieldGT(FieldPrice, v))
}

// PriceGTE applies the GTE predicate on the "price" field.
func PriceGTE(v float64) predicate.Flight {
	return predicate.Flight(sql.FieldGTE(FieldPrice, v))
}

// PriceLT applies the LT predicate on the "price" field.
func PriceLT(v float64) predicate.Flight {
	return predicate.Flight(sql.FieldLT(FieldPrice, v))
}

// PriceLTE applies the LTE predicate on the "price" field.
func PriceLTE(v float64) predicate.Flight {
	return predicate.Flight(sql.FieldLTE(FieldPrice, v))
}

// CurrencyEQ applies the EQ predicate on the "currency" field.
func CurrencyEQ(v string) predicate.Flight {
	return predicate.Flight(sql.FieldEQ(FieldCurrency, v))
}

// CurrencyNEQ applies the NEQ predicate on the "currency" field.
func CurrencyNEQ(v string) predicate.Flight {
	return predicate.Flight(sql.FieldNEQ(FieldCurrency, v))
}

// CurrencyIn applies the In predicate on the "currency" field.
func CurrencyIn(vs ...string) predicate.Flight {
	return predicate.Flight(sql.FieldIn(FieldCurrency, vs...))
}

// CurrencyNotIn applies the NotIn predicate on the "currency" field.
func CurrencyNotIn(vs ...string) predicate.Flight {
	return predicate.Flight(sql.FieldNotIn(FieldCurrency, vs...))
}

// CurrencyGT applies the GT predicate on the "currency" field.
func CurrencyGT(v string) predicate.Flight {
	return predicate.Flight(sql.FieldGT(FieldCurrency, v))
}

// CurrencyGTE applies the GTE predicate on the "currency" field.
func CurrencyGTE(v string) predicate.Flight {
	return predicate.Flight(sql.FieldGTE(FieldCurrency, v))
}

// CurrencyLT applies the LT predicate on the "currency" field.
func CurrencyLT(v string) predicate.Flight {
	return predicate.Flight(sql.FieldLT(FieldCurrency, v))
}

// CurrencyLTE applies the LTE predicate on the "currency" field.
func CurrencyLTE(v string) predicate.Flight {
	return predicate.Flight(sql.FieldLTE(FieldCurrency, v))
}

// CurrencyContains applies the Contains predicate on the "currency" field.
func CurrencyContains(v string) predicate.Flight {
	return predicate.Flight(sql.FieldContains(FieldCurrency, v))
}

// CurrencyHasPrefix applies the HasPrefix predicate on the "currency" field.
func CurrencyHasPrefix(v string) predicate.Flight {
	return predicate.Flight(sql.FieldHasPrefix(FieldCurrency, v))
}

// CurrencyHasSuffix applies the HasSuffix predicate on the "currency" field.
func CurrencyHasSuffix(v string) predicate.Flight {
	return predicate.Flight(sql.FieldHasSuffix(FieldCurrency, v))
}

// CurrencyEqualFold applies the EqualFold predicate on the "currency" field.
func CurrencyEqualFold(v string) predicate.Flight {
	return predicate.Flight(sql.FieldEqualFold(FieldCurrency, v))
}

// CurrencyContainsFold applies the ContainsFold predicate on the "currency" field.
func CurrencyContainsFold(v string) predicate.Flight {
	return predicate.Flight(sql.FieldContainsFold(FieldCurrency, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Flight {
	return predicate.Flight(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Flight {
	return predicate.Flight(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Flight {
	return predicate.Flight(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Flight {
	return predicate.Flight(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Flight {
	return predicate.Flight(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Flight {
	return predicate.Flight(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Flight {
	return predicate.Flight(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Flight {
	return predicate.Flight(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Flight {
	return predicate.Flight(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Flight {
	return predicate.Flight(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Flight {
	return predicate.Flight(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Flight {
	return predicate.Flight(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Flight {
	return predicate.Flight(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Flight {
	return predicate.Flight(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Flight {
	return predicate.Flight(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Flight {
	return predicate.Flight(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Flight) predicate.Flight {
	return predicate.Flight(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Flight) predicate.Flight {
	return predicate.Flight(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Flight) predicate.Flight {
	return predicate.Flight(sql.NotPredicates(p))
}
