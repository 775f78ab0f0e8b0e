// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"musafir/ent/predicate"
	"musafir/ent/reservation"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// ReservationUpdate is the builder for updating Reservation entities.
type ReservationUpdate struct {
	config
	hooks    []Hook
	mutation *ReservationMutation
}

// Where appends a list predicates to the ReservationUpdate builder.
func (_u *ReservationUpdate) Where(ps ...predicate.Reservation) *ReservationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ReservationUpdate) SetUserID(v string) *ReservationUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ReservationUpdate) SetNillableUserID(v *string) *ReservationUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetFlightID sets the "flight_id" field.
func (_u *ReservationUpdate) SetFlightID(v string) *ReservationUpdate {
	_u.mutation.SetFlightID(v)
	return _u
}

// SetNillableFlightID sets the "flight_id" field if the given value is not nil.
func (_u *ReservationUpdate) SetNillableFlightID(v *string) *ReservationUpdate {
	if v != nil {
		_u.SetFlightID(*v)
	}
	return _u
}

// SetAmount sets the "amount" field.
func (_u *ReservationUpdate) SetAmount(v float64) *ReservationUpdate {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *ReservationUpdate) SetNillableAmount(v *float64) *ReservationUpdate {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *ReservationUpdate) AddAmount(v float64) *ReservationUpdate {
	_u.mutation.AddAmount(v)
	return _u
}

// SetCurrency sets the "currency" field.
func (_u *ReservationUpdate) SetCurrency(v string) *ReservationUpdate {
	_u.mutation.SetCurrency(v)
	return _u
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (_u *ReservationUpdate) SetNillableCurrency(v *string) *ReservationUpdate {
	if v != nil {
		_u.SetCurrency(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ReservationUpdate) SetStatus(v string) *ReservationUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ReservationUpdate) SetNillableStatus(v *string) *ReservationUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetReservedAt sets the "reserved_at" field.
func (_u *ReservationUpdate) SetReservedAt(v time.Time) *ReservationUpdate {
	_u.mutation.SetReservedAt(v)
	return _u
}

// SetNillableReservedAt sets the "reserved_at" field if the given value is not nil.
func (_u *ReservationUpdate) SetNillableReservedAt(v *time.Time) *ReservationUpdate {
	if v != nil {
		_u.SetReservedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ReservationUpdate) SetUpdatedAt(v time.Time) *ReservationUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ReservationMutation object of the builder.
func (_u *ReservationUpdate) Mutation() *ReservationMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ReservationUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReservationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ReservationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReservationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ReservationUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := reservation.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReservationUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := reservation.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "Reservation.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FlightID(); ok {
		if err := reservation.FlightIDValidator(v); err != nil {
			return &ValidationError{Name: "flight_id", err: fmt.Errorf(`ent: validator failed for field "Reservation.flight_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Currency(); ok {
		if err := reservation.CurrencyValidator(v); err != nil {
			return &ValidationError{Name: "currency", err: fmt.Errorf(`ent: validator failed for field "Reservation.currency": %w`, err)}
		}
	}
	return nil
}

func (_u *ReservationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reservation.Table, reservation.Columns, sqlgraph.NewFieldSpec(reservation.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(reservation.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.FlightID(); ok {
		_spec.SetField(reservation.FieldFlightID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(reservation.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(reservation.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Currency(); ok {
		_spec.SetField(reservation.FieldCurrency, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(reservation.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ReservedAt(); ok {
		_spec.SetField(reservation.FieldReservedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(reservation.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reservation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ReservationUpdateOne is the builder for updating a single Reservation entity.
type ReservationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReservationMutation
}

// SetUserID sets the "user_id" field.
func (_u *ReservationUpdateOne) SetUserID(v string) *ReservationUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ReservationUpdateOne) SetNillableUserID(v *string) *ReservationUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetFlightID sets the "flight_id" field.
func (_u *ReservationUpdateOne) SetFlightID(v string) *ReservationUpdateOne {
	_u.mutation.SetFlightID(v)
	return _u
}

// SetNillableFlightID sets the "flight_id" field if the given value is not nil.
func (_u *ReservationUpdateOne) SetNillableFlightID(v *string) *ReservationUpdateOne {
	if v != nil {
		_u.SetFlightID(*v)
	}
	return _u
}

// SetAmount sets the "amount" field.
func (_u *ReservationUpdateOne) SetAmount(v float64) *ReservationUpdateOne {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *ReservationUpdateOne) SetNillableAmount(v *float64) *ReservationUpdateOne {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *ReservationUpdateOne) AddAmount(v float64) *ReservationUpdateOne {
	_u.mutation.AddAmount(v)
	return _u
}

// SetCurrency sets the "currency" field.
func (_u *ReservationUpdateOne) SetCurrency(v string) *ReservationUpdateOne {
	_u.mutation.SetCurrency(v)
	return _u
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (_u *ReservationUpdateOne) SetNillableCurrency(v *string) *ReservationUpdateOne {
	if v != nil {
		_u.SetCurrency(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ReservationUpdateOne) SetStatus(v string) *ReservationUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ReservationUpdateOne) SetNillableStatus(v *string) *ReservationUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetReservedAt sets the "reserved_at" field.
func (_u *ReservationUpdateOne) SetReservedAt(v time.Time) *ReservationUpdateOne {
	_u.mutation.SetReservedAt(v)
	return _u
}

// SetNillableReservedAt sets the "reserved_at" field if the given value is not nil.
func (_u *ReservationUpdateOne) SetNillableReservedAt(v *time.Time) *ReservationUpdateOne {
	if v != nil {
		_u.SetReservedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ReservationUpdateOne) SetUpdatedAt(v time.Time) *ReservationUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ReservationMutation object of the builder.
func (_u *ReservationUpdateOne) Mutation() *ReservationMutation {
	return _u.mutation
}

// Where appends a list predicates to the ReservationUpdate builder.
func (_u *ReservationUpdateOne) Where(ps ...predicate.Reservation) *ReservationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ReservationUpdateOne) Select(field string, fields ...string) *ReservationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Reservation entity.
func (_u *ReservationUpdateOne) Save(ctx context.Context) (*Reservation, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReservationUpdateOne) SaveX(ctx context.Context) *Reservation {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ReservationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReservationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ReservationUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := reservation.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReservationUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := reservation.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "Reservation.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FlightID(); ok {
		if err := reservation.FlightIDValidator(v); err != nil {
			return &ValidationError{Name: "flight_id", err: fmt.Errorf(`ent: validator failed for field "Reservation.flight_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Currency(); ok {
		if err := reservation.CurrencyValidator(v); err != nil {
			return &ValidationError{Name: "currency", err: fmt.Errorf(`ent: validator failed for field "Reservation.currency": %w`, err)}
		}
	}
	return nil
}

func (_u *ReservationUpdateOne) sqlSave(ctx context.Context) (_node *Reservation, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reservation.Table, reservation.Columns, sqlgraph.NewFieldSpec(reservation.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Reservation.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, reservation.FieldID)
		for _, f := range fields {
			if !reservation.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != reservation.FieldID {
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
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(reservation.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.FlightID(); ok {
		_spec.SetField(reservation.FieldFlightID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(reservation.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(reservation.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Currency(); ok {
		_spec.SetField(reservation.FieldCurrency, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(reservation.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ReservedAt(); ok {
		_spec.SetField(reservation.FieldReservedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(reservation.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Reservation{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reservation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
