// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"musafir/ent/flight"
	"musafir/ent/predicate"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// FlightUpdate is the builder for updating Flight entities.
type FlightUpdate struct {
	config
	hooks    []Hook
	mutation *FlightMutation
}

// Where appends a list predicates to the FlightUpdate builder.
func (_u *FlightUpdate) Where(ps ...predicate.Flight) *FlightUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFlightNumber sets the "flight_number" field.
func (_u *FlightUpdate) SetFlightNumber(v string) *FlightUpdate {
	_u.mutation.SetFlightNumber(v)
	return _u
}

// SetNillableFlightNumber sets the "flight_number" field if the given value is not nil.
func (_u *FlightUpdate) SetNillableFlightNumber(v *string) *FlightUpdate {
	if v != nil {
		_u.SetFlightNumber(*v)
	}
	return _u
}

// SetAirlineCode sets the "airline_code" field.
func (_u *FlightUpdate) SetAirlineCode(v string) *FlightUpdate {
	_u.mutation.SetAirlineCode(v)
	return _u
}

// SetNillableAirlineCode sets the "airline_code" field if the given value is not nil.
func (_u *FlightUpdate) SetNillableAirlineCode(v *string) *FlightUpdate {
	if v != nil {
		_u.SetAirlineCode(*v)
	}
	return _u
}

// ClearAirlineCode clears the value of the "airline_code" field.
func (_u *FlightUpdate) ClearAirlineCode() *FlightUpdate {
	_u.mutation.ClearAirlineCode()
	return _u
}

// SetOrigin sets the "origin" field.
func (_u *FlightUpdate) SetOrigin(v string) *FlightUpdate {
	_u.mutation.SetOrigin(v)
	return _u
}

// SetNillableOrigin sets the "origin" field if the given value is not nil.
func (_u *FlightUpdate) SetNillableOrigin(v *string) *FlightUpdate {
	if v != nil {
		_u.SetOrigin(*v)
	}
	return _u
}

// SetDestination sets the "destination" field.
func (_u *FlightUpdate) SetDestination(v string) *FlightUpdate {
	_u.mutation.SetDestination(v)
	return _u
}

// SetNillableDestination sets the "destination" field if the given value is not nil.
func (_u *FlightUpdate) SetNillableDestination(v *string) *FlightUpdate {
	if v != nil {
		_u.SetDestination(*v)
	}
	return _u
}

// SetAircraft sets the "aircraft" field.
func (_u *FlightUpdate) SetAircraft(v string) *FlightUpdate {
	_u.mutation.SetAircraft(v)
	return _u
}

// SetNillableAircraft sets the "aircraft" field if the given value is not nil.
func (_u *FlightUpdate) SetNillableAircraft(v *string) *FlightUpdate {
	if v != nil {
		_u.SetAircraft(*v)
	}
	return _u
}

// ClearAircraft clears the value of the "aircraft" field.
func (_u *FlightUpdate) ClearAircraft() *FlightUpdate {
	_u.mutation.ClearAircraft()
	return _u
}

// SetDeparture sets the "departure" field.
func (_u *FlightUpdate) SetDeparture(v time.Time) *FlightUpdate {
	_u.mutation.SetDeparture(v)
	return _u
}

// SetNillableDeparture sets the "departure" field if the given value is not nil.
func (_u *FlightUpdate) SetNillableDeparture(v *time.Time) *FlightUpdate {
	if v != nil {
		_u.SetDeparture(*v)
	}
	return _u
}

// SetArrival sets the "arrival" field.
func (_u *FlightUpdate) SetArrival(v time.Time) *FlightUpdate {
	_u.mutation.SetArrival(v)
	return _u
}

// SetNillableArrival sets the "arrival" field if the given value is not nil.
func (_u *FlightUpdate) SetNillableArrival(v *time.Time) *FlightUpdate {
	if v != nil {
		_u.SetArrival(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *FlightUpdate) SetStatus(v string) *FlightUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *FlightUpdate) SetNillableStatus(v *string) *FlightUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPrice sets the "price" field.
func (_u *FlightUpdate) SetPrice(v float64) *FlightUpdate {
	_u.mutation.ResetPrice()
	_u.mutation.SetPrice(v)
	return _u
}

// SetNillablePrice sets the "price" field if the given value is not nil.
func (_u *FlightUpdate) SetNillablePrice(v *float64) *FlightUpdate {
	if v != nil {
		_u.SetPrice(*v)
	}
	return _u
}

// AddPrice adds value to the "price" field.
func (_u *FlightUpdate) AddPrice(v float64) *FlightUpdate {
	_u.mutation.AddPrice(v)
	return _u
}

// SetCurrency sets the "currency" field.
func (_u *FlightUpdate) SetCurrency(v string) *FlightUpdate {
	_u.mutation.SetCurrency(v)
	return _u
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (_u *FlightUpdate) SetNillableCurrency(v *string) *FlightUpdate {
	if v != nil {
		_u.SetCurrency(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *FlightUpdate) SetUpdatedAt(v time.Time) *FlightUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the FlightMutation object of the builder.
func (_u *FlightUpdate) Mutation() *FlightMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *FlightUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FlightUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *FlightUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FlightUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *FlightUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := flight.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FlightUpdate) check() error {
	if v, ok := _u.mutation.FlightNumber(); ok {
		if err := flight.FlightNumberValidator(v); err != nil {
			return &ValidationError{Name: "flight_number", err: fmt.Errorf(`ent: validator failed for field "Flight.flight_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Origin(); ok {
		if err := flight.OriginValidator(v); err != nil {
			return &ValidationError{Name: "origin", err: fmt.Errorf(`ent: validator failed for field "Flight.origin": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Destination(); ok {
		if err := flight.DestinationValidator(v); err != nil {
			return &ValidationError{Name: "destination", err: fmt.Errorf(`ent: validator failed for field "Flight.destination": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Currency(); ok {
		if err := flight.CurrencyValidator(v); err != nil {
			return &ValidationError{Name: "currency", err: fmt.Errorf(`ent: validator failed for field "Flight.currency": %w`, err)}
		}
	}
	return nil
}

func (_u *FlightUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(flight.Table, flight.Columns, sqlgraph.NewFieldSpec(flight.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.FlightNumber(); ok {
		_spec.SetField(flight.FieldFlightNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.AirlineCode(); ok {
		_spec.SetField(flight.FieldAirlineCode, field.TypeString, value)
	}
	if _u.mutation.AirlineCodeCleared() {
		_spec.ClearField(flight.FieldAirlineCode, field.TypeString)
	}
	if value, ok := _u.mutation.Origin(); ok {
		_spec.SetField(flight.FieldOrigin, field.TypeString, value)
	}
	if value, ok := _u.mutation.Destination(); ok {
		_spec.SetField(flight.FieldDestination, field.TypeString, value)
	}
	if value, ok := _u.mutation.Aircraft(); ok {
		_spec.SetField(flight.FieldAircraft, field.TypeString, value)
	}
	if _u.mutation.AircraftCleared() {
		_spec.ClearField(flight.FieldAircraft, field.TypeString)
	}
	if value, ok := _u.mutation.Departure(); ok {
		_spec.SetField(flight.FieldDeparture, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Arrival(); ok {
		_spec.SetField(flight.FieldArrival, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(flight.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Price(); ok {
		_spec.SetField(flight.FieldPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPrice(); ok {
		_spec.AddField(flight.FieldPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Currency(); ok {
		_spec.SetField(flight.FieldCurrency, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(flight.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{flight.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// FlightUpdateOne is the builder for updating a single Flight entity.
type FlightUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FlightMutation
}

// SetFlightNumber sets the "flight_number" field.
func (_u *FlightUpdateOne) SetFlightNumber(v string) *FlightUpdateOne {
	_u.mutation.SetFlightNumber(v)
	return _u
}

// SetNillableFlightNumber sets the "flight_number" field if the given value is not nil.
func (_u *FlightUpdateOne) SetNillableFlightNumber(v *string) *FlightUpdateOne {
	if v != nil {
		_u.SetFlightNumber(*v)
	}
	return _u
}

// SetAirlineCode sets the "airline_code" field.
func (_u *FlightUpdateOne) SetAirlineCode(v string) *FlightUpdateOne {
	_u.mutation.SetAirlineCode(v)
	return _u
}

// SetNillableAirlineCode sets the "airline_code" field if the given value is not nil.
func (_u *FlightUpdateOne) SetNillableAirlineCode(v *string) *FlightUpdateOne {
	if v != nil {
		_u.SetAirlineCode(*v)
	}
	return _u
}

// ClearAirlineCode clears the value of the "airline_code" field.
func (_u *FlightUpdateOne) ClearAirlineCode() *FlightUpdateOne {
	_u.mutation.ClearAirlineCode()
	return _u
}

// SetOrigin sets the "origin" field.
func (_u *FlightUpdateOne) SetOrigin(v string) *FlightUpdateOne {
	_u.mutation.SetOrigin(v)
	return _u
}

// SetNillableOrigin sets the "origin" field if the given value is not nil.
func (_u *FlightUpdateOne) SetNillableOrigin(v *string) *FlightUpdateOne {
	if v != nil {
		_u.SetOrigin(*v)
	}
	return _u
}

// SetDestination sets the "destination" field.
func (_u *FlightUpdateOne) SetDestination(v string) *FlightUpdateOne {
	_u.mutation.SetDestination(v)
	return _u
}

// SetNillableDestination sets the "destination" field if the given value is not nil.
func (_u *FlightUpdateOne) SetNillableDestination(v *string) *FlightUpdateOne {
	if v != nil {
		_u.SetDestination(*v)
	}
	return _u
}

// SetAircraft sets the "aircraft" field.
func (_u *FlightUpdateOne) SetAircraft(v string) *FlightUpdateOne {
	_u.mutation.SetAircraft(v)
	return _u
}

// SetNillableAircraft sets the "aircraft" field if the given value is not nil.
func (_u *FlightUpdateOne) SetNillableAircraft(v *string) *FlightUpdateOne {
	if v != nil {
		_u.SetAircraft(*v)
	}
	return _u
}

// ClearAircraft clears the value of the "aircraft" field.
func (_u *FlightUpdateOne) ClearAircraft() *FlightUpdateOne {
	_u.mutation.ClearAircraft()
	return _u
}

// SetDeparture sets the "departure" field.
func (_u *FlightUpdateOne) SetDeparture(v time.Time) *FlightUpdateOne {
	_u.mutation.SetDeparture(v)
	return _u
}

// SetNillableDeparture sets the "departure" field if the given value is not nil.
func (_u *FlightUpdateOne) SetNillableDeparture(v *time.Time) *FlightUpdateOne {
	if v != nil {
		_u.SetDeparture(*v)
	}
	return _u
}

// SetArrival sets the "arrival" field.
func (_u *FlightUpdateOne) SetArrival(v time.Time) *FlightUpdateOne {
	_u.mutation.SetArrival(v)
	return _u
}

// SetNillableArrival sets the "arrival" field if the given value is not nil.
func (_u *FlightUpdateOne) SetNillableArrival(v *time.Time) *FlightUpdateOne {
	if v != nil {
		_u.SetArrival(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *FlightUpdateOne) SetStatus(v string) *FlightUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *FlightUpdateOne) SetNillableStatus(v *string) *FlightUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPrice sets the "price" field.
func (_u *FlightUpdateOne) SetPrice(v float64) *FlightUpdateOne {
	_u.mutation.ResetPrice()
	_u.mutation.SetPrice(v)
	return _u
}

// SetNillablePrice sets the "price" field if the given value is not nil.
func (_u *FlightUpdateOne) SetNillablePrice(v *float64) *FlightUpdateOne {
	if v != nil {
		_u.SetPrice(*v)
	}
	return _u
}

// AddPrice adds value to the "price" field.
func (_u *FlightUpdateOne) AddPrice(v float64) *FlightUpdateOne {
	_u.mutation.AddPrice(v)
	return _u
}

// SetCurrency sets the "currency" field.
func (_u *FlightUpdateOne) SetCurrency(v string) *FlightUpdateOne {
	_u.mutation.SetCurrency(v)
	return _u
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (_u *FlightUpdateOne) SetNillableCurrency(v *string) *FlightUpdateOne {
	if v != nil {
		_u.SetCurrency(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *FlightUpdateOne) SetUpdatedAt(v time.Time) *FlightUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the FlightMutation object of the builder.
func (_u *FlightUpdateOne) Mutation() *FlightMutation {
	return _u.mutation
}

// Where appends a list predicates to the FlightUpdate builder.
func (_u *FlightUpdateOne) Where(ps ...predicate.Flight) *FlightUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *FlightUpdateOne) Select(field string, fields ...string) *FlightUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Flight entity.
func (_u *FlightUpdateOne) Save(ctx context.Context) (*Flight, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FlightUpdateOne) SaveX(ctx context.Context) *Flight {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *FlightUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FlightUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *FlightUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := flight.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FlightUpdateOne) check() error {
	if v, ok := _u.mutation.FlightNumber(); ok {
		if err := flight.FlightNumberValidator(v); err != nil {
			return &ValidationError{Name: "flight_number", err: fmt.Errorf(`ent: validator failed for field "Flight.flight_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Origin(); ok {
		if err := flight.OriginValidator(v); err != nil {
			return &ValidationError{Name: "origin", err: fmt.Errorf(`ent: validator failed for field "Flight.origin": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Destination(); ok {
		if err := flight.DestinationValidator(v); err != nil {
			return &ValidationError{Name: "destination", err: fmt.Errorf(`ent: validator failed for field "Flight.destination": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Currency(); ok {
		if err := flight.CurrencyValidator(v); err != nil {
			return &ValidationError{Name: "currency", err: fmt.Errorf(`ent: validator failed for field "Flight.currency": %w`, err)}
		}
	}
	return nil
}

func (_u *FlightUpdateOne) sqlSave(ctx context.Context) (_node *Flight, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(flight.Table, flight.Columns, sqlgraph.NewFieldSpec(flight.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Flight.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, flight.FieldID)
		for _, f := range fields {
			if !flight.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != flight.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.FlightNumber(); ok {
		_spec.SetField(flight.FieldFlightNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.AirlineCode(); ok {
		_spec.SetField(flight.FieldAirlineCode, field.TypeString, value)
	}
	if _u.mutation.AirlineCodeCleared() {
		_spec.ClearField(flight.FieldAirlineCode, field.TypeString)
	}
	if value, ok := _u.mutation.Origin(); ok {
		_spec.SetField(flight.FieldOrigin, field.TypeString, value)
	}
	if value, ok := _u.mutation.Destination(); ok {
		_spec.SetField(flight.FieldDestination, field.TypeString, value)
	}
	if value, ok := _u.mutation.Aircraft(); ok {
		_spec.SetField(flight.FieldAircraft, field.TypeString, value)
	}
	if _u.mutation.AircraftCleared() {
		_spec.ClearField(flight.FieldAircraft, field.TypeString)
	}
	if value, ok := _u.mutation.Departure(); ok {
		_spec.SetField(flight.FieldDeparture, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Arrival(); ok {
		_spec.SetField(flight.FieldArrival, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(flight.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Price(); ok {
		_spec.SetField(flight.FieldPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPrice(); ok {
		_spec.AddField(flight.FieldPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Currency(); ok {
		_spec.SetField(flight.FieldCurrency, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(flight.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Flight{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{flight.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
