// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"musafir/ent/flight"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// FlightCreate is the builder for creating a Flight entity.
type FlightCreate struct {
	config
	mutation *FlightMutation
	hooks    []Hook
}

// SetFlightNumber sets the "flight_number" field.
func (_c *FlightCreate) SetFlightNumber(v string) *FlightCreate {
	_c.mutation.SetFlightNumber(v)
	return _c
}

// SetAirlineCode sets the "airline_code" field.
func (_c *FlightCreate) SetAirlineCode(v string) *FlightCreate {
	_c.mutation.SetAirlineCode(v)
	return _c
}

// SetNillableAirlineCode sets the "airline_code" field if the given value is not nil.
func (_c *FlightCreate) SetNillableAirlineCode(v *string) *FlightCreate {
	if v != nil {
		_c.SetAirlineCode(*v)
	}
	return _c
}

// SetOrigin sets the "origin" field.
func (_c *FlightCreate) SetOrigin(v string) *FlightCreate {
	_c.mutation.SetOrigin(v)
	return _c
}

// SetDestination sets the "destination" field.
func (_c *FlightCreate) SetDestination(v string) *FlightCreate {
	_c.mutation.SetDestination(v)
	return _c
}

// SetAircraft sets the "aircraft" field.
func (_c *FlightCreate) SetAircraft(v string) *FlightCreate {
	_c.mutation.SetAircraft(v)
	return _c
}

// SetNillableAircraft sets the "aircraft" field if the given value is not nil.
func (_c *FlightCreate) SetNillableAircraft(v *string) *FlightCreate {
	if v != nil {
		_c.SetAircraft(*v)
	}
	return _c
}

// SetDeparture sets the "departure" field.
func (_c *FlightCreate) SetDeparture(v time.Time) *FlightCreate {
	_c.mutation.SetDeparture(v)
	return _c
}

// SetArrival sets the "arrival" field.
func (_c *FlightCreate) SetArrival(v time.Time) *FlightCreate {
	_c.mutation.SetArrival(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *FlightCreate) SetStatus(v string) *FlightCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *FlightCreate) SetNillableStatus(v *string) *FlightCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetPrice sets the "price" field.
func (_c *FlightCreate) SetPrice(v float64) *FlightCreate {
	_c.mutation.SetPrice(v)
	return _c
}

// SetCurrency sets the "currency" field.
func (_c *FlightCreate) SetCurrency(v string) *FlightCreate {
	_c.mutation.SetCurrency(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *FlightCreate) SetCreatedAt(v time.Time) *FlightCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *FlightCreate) SetNillableCreatedAt(v *time.Time) *FlightCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *FlightCreate) SetUpdatedAt(v time.Time) *FlightCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *FlightCreate) SetNillableUpdatedAt(v *time.Time) *FlightCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *FlightCreate) SetID(v string) *FlightCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the FlightMutation object of the builder.
func (_c *FlightCreate) Mutation() *FlightMutation {
	return _c.mutation
}

// Save creates the Flight in the database.
func (_c *FlightCreate) Save(ctx context.Context) (*Flight, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *FlightCreate) SaveX(ctx context.Context) *Flight {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FlightCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FlightCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *FlightCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := flight.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := flight.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := flight.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *FlightCreate) check() error {
	if _, ok := _c.mutation.FlightNumber(); !ok {
		return &ValidationError{Name: "flight_number", err: errors.New(`ent: missing required field "Flight.flight_number"`)}
	}
	if v, ok := _c.mutation.FlightNumber(); ok {
		if err := flight.FlightNumberValidator(v); err != nil {
			return &ValidationError{Name: "flight_number", err: fmt.Errorf(`ent: validator failed for field "Flight.flight_number": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Origin(); !ok {
		return &ValidationError{Name: "origin", err: errors.New(`ent: missing required field "Flight.origin"`)}
	}
	if v, ok := _c.mutation.Origin(); ok {
		if err := flight.OriginValidator(v); err != nil {
			return &ValidationError{Name: "origin", err: fmt.Errorf(`ent: validator failed for field "Flight.origin": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Destination(); !ok {
		return &ValidationError{Name: "destination", err: errors.New(`ent: missing required field "Flight.destination"`)}
	}
	if v, ok := _c.mutation.Destination(); ok {
		if err := flight.DestinationValidator(v); err != nil {
			return &ValidationError{Name: "destination", err: fmt.Errorf(`ent: validator failed for field "Flight.destination": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Departure(); !ok {
		return &ValidationError{Name: "departure", err: errors.New(`ent: missing required field "Flight.departure"`)}
	}
	if _, ok := _c.mutation.Arrival(); !ok {
		return &ValidationError{Name: "arrival", err: errors.New(`ent: missing required field "Flight.arrival"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Flight.status"`)}
	}
	if _, ok := _c.mutation.Price(); !ok {
		return &ValidationError{Name: "price", err: errors.New(`ent: missing required field "Flight.price"`)}
	}
	if _, ok := _c.mutation.Currency(); !ok {
		return &ValidationError{Name: "currency", err: errors.New(`ent: missing required field "Flight.currency"`)}
	}
	if v, ok := _c.mutation.Currency(); ok {
		if err := flight.CurrencyValidator(v); err != nil {
			return &ValidationError{Name: "currency", err: fmt.Errorf(`ent: validator failed for field "Flight.currency": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Flight.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Flight.updated_at"`)}
	}
	if v, ok := _c.mutation.ID(); ok {
		if err := flight.IDValidator(v); err != nil {
			return &ValidationError{Name: "id", err: fmt.Errorf(`ent: validator failed for field "Flight.id": %w`, err)}
		}
	}
	return nil
}

func (_c *FlightCreate) sqlSave(ctx context.Context) (*Flight, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Flight.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *FlightCreate) createSpec() (*Flight, *sqlgraph.CreateSpec) {
	var (
		_node = &Flight{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(flight.Table, sqlgraph.NewFieldSpec(flight.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.FlightNumber(); ok {
		_spec.SetField(flight.FieldFlightNumber, field.TypeString, value)
		_node.FlightNumber = value
	}
	if value, ok := _c.mutation.AirlineCode(); ok {
		_spec.SetField(flight.FieldAirlineCode, field.TypeString, value)
		_node.AirlineCode = value
	}
	if value, ok := _c.mutation.Origin(); ok {
		_spec.SetField(flight.FieldOrigin, field.TypeString, value)
		_node.Origin = value
	}
	if value, ok := _c.mutation.Destination(); ok {
		_spec.SetField(flight.FieldDestination, field.TypeString, value)
		_node.Destination = value
	}
	if value, ok := _c.mutation.Aircraft(); ok {
		_spec.SetField(flight.FieldAircraft, field.TypeString, value)
		_node.Aircraft = value
	}
	if value, ok := _c.mutation.Departure(); ok {
		_spec.SetField(flight.FieldDeparture, field.TypeTime, value)
		_node.Departure = value
	}
	if value, ok := _c.mutation.Arrival(); ok {
		_spec.SetField(flight.FieldArrival, field.TypeTime, value)
		_node.Arrival = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(flight.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Price(); ok {
		_spec.SetField(flight.FieldPrice, field.TypeFloat64, value)
		_node.Price = value
	}
	if value, ok := _c.mutation.Currency(); ok {
		_spec.SetField(flight.FieldCurrency, field.TypeString, value)
		_node.Currency = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(flight.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(flight.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// FlightCreateBulk is the builder for creating many Flight entities in bulk.
type FlightCreateBulk struct {
	config
	err      error
	builders []*FlightCreate
}

// Save creates the Flight entities in the database.
func (_c *FlightCreateBulk) Save(ctx context.Context) ([]*Flight, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Flight, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*FlightMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *FlightCreateBulk) SaveX(ctx context.Context) []*Flight {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FlightCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FlightCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
