// Code generated by ent, DO NOT EDIT.

package ent

import (
	"musafir/ent/auditrecord"
	"musafir/ent/flight"
	"musafir/ent/reservation"
	"musafir/ent/schema"
	"time"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	auditrecordFields := schema.AuditRecord{}.Fields()
	_ = auditrecordFields
	// auditrecordDescEvent is the schema descriptor for event field.
	auditrecordDescEvent := auditrecordFields[1].Descriptor()
	// auditrecord.EventValidator is a validator for the "event" field. It is called by the builders before save.
	auditrecord.EventValidator = auditrecordDescEvent.Validators[0].(func(string) error)
	// auditrecordDescCreatedAt is the schema descriptor for created_at field.
	auditrecordDescCreatedAt := auditrecordFields[5].Descriptor()
	// auditrecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	auditrecord.DefaultCreatedAt = auditrecordDescCreatedAt.Default.(func() time.Time)
	flightFields := schema.Flight{}.Fields()
	_ = flightFields
	// flightDescFlightNumber is the schema descriptor for flight_number field.
	flightDescFlightNumber := flightFields[1].Descriptor()
	// flight.FlightNumberValidator is a validator for the "flight_number" field. It is called by the builders before save.
	flight.FlightNumberValidator = flightDescFlightNumber.Validators[0].(func(string) error)
	// flightDescOrigin is the schema descriptor for origin field.
	flightDescOrigin := flightFields[3].Descriptor()
	// flight.OriginValidator is a validator for the "origin" field. It is called by the builders before save.
	flight.OriginValidator = flightDescOrigin.Validators[0].(func(string) error)
	// flightDescDestination is the schema descriptor for destination field.
	flightDescDestination := flightFields[4].Descriptor()
	// flight.DestinationValidator is a validator for the "destination" field. It is called by the builders before save.
	flight.DestinationValidator = flightDescDestination.Validators[0].(func(string) error)
	// flightDescStatus is the schema descriptor for status field.
	flightDescStatus := flightFields[8].Descriptor()
	// flight.DefaultStatus holds the default value on creation for the status field.
	flight.DefaultStatus = flightDescStatus.Default.(string)
	// flightDescCurrency is the schema descriptor for currency field.
	flightDescCurrency := flightFields[10].Descriptor()
	// flight.CurrencyValidator is a validator for the "currency" field. It is called by the builders before save.
	flight.CurrencyValidator = flightDescCurrency.Validators[0].(func(string) error)
	// flightDescCreatedAt is the schema descriptor for created_at field.
	flightDescCreatedAt := flightFields[11].Descriptor()
	// flight.DefaultCreatedAt holds the default value on creation for the created_at field.
	flight.DefaultCreatedAt = flightDescCreatedAt.Default.(func() time.Time)
	// flightDescUpdatedAt is the schema descriptor for updated_at field.
	flightDescUpdatedAt := flightFields[12].Descriptor()
	// flight.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	flight.DefaultUpdatedAt = flightDescUpdatedAt.Default.(func() time.Time)
	// flight.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	flight.UpdateDefaultUpdatedAt = flightDescUpdatedAt.UpdateDefault.(func() time.Time)
	// flightDescID is the schema descriptor for id field.
	flightDescID := flightFields[0].Descriptor()
	// flight.IDValidator is a validator for the "id" field. It is called by the builders before save.
	flight.IDValidator = flightDescID.Validators[0].(func(string) error)
	reservationFields := schema.Reservation{}.Fields()
	_ = reservationFields
	// reservationDescUserID is the schema descriptor for user_id field.
	reservationDescUserID := reservationFields[1].Descriptor()
	// reservation.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	reservation.UserIDValidator = reservationDescUserID.Validators[0].(func(string) error)
	// reservationDescFlightID is the schema descriptor for flight_id field.
	reservationDescFlightID := reservationFields[2].Descriptor()
	// reservation.FlightIDValidator is a validator for the "flight_id" field. It is called by the builders before save.
	reservation.FlightIDValidator = reservationDescFlightID.Validators[0].(func(string) error)
	// reservationDescCurrency is the schema descriptor for currency field.
	reservationDescCurrency := reservationFields[4].Descriptor()
	// reservation.CurrencyValidator is a validator for the "currency" field. It is called by the builders before save.
	reservation.CurrencyValidator = reservationDescCurrency.Validators[0].(func(string) error)
	// reservationDescStatus is the schema descriptor for status field.
	reservationDescStatus := reservationFields[5].Descriptor()
	// reservation.DefaultStatus holds the default value on creation for the status field.
	reservation.DefaultStatus = reservationDescStatus.Default.(string)
	// reservationDescCreatedAt is the schema descriptor for created_at field.
	reservationDescCreatedAt := reservationFields[7].Descriptor()
	// reservation.DefaultCreatedAt holds the default value on creation for the created_at field.
	reservation.DefaultCreatedAt = reservationDescCreatedAt.Default.(func() time.Time)
	// reservationDescUpdatedAt is the schema descriptor for updated_at field.
	reservationDescUpdatedAt := reservationFields[8].Descriptor()
	// reservation.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	reservation.DefaultUpdatedAt = reservationDescUpdatedAt.Default.(func() time.Time)
	// reservation.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	reservation.UpdateDefaultUpdatedAt = reservationDescUpdatedAt.UpdateDefault.(func() time.Time)
	// reservationDescID is the schema descriptor for id field.
	reservationDescID := reservationFields[0].Descriptor()
	// reservation.IDValidator is a validator for the "id" field. It is called by the builders before save.
	reservation.IDValidator = reservationDescID.Validators[0].(func(string) error)
}
