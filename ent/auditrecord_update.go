// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"musafir/ent/auditrecord"
	"musafir/ent/predicate"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// AuditRecordUpdate is the builder for updating AuditRecord entities.
type AuditRecordUpdate struct {
	config
	hooks    []Hook
	mutation *AuditRecordMutation
}

// Where appends a list predicates to the AuditRecordUpdate builder.
func (_u *AuditRecordUpdate) Where(ps ...predicate.AuditRecord) *AuditRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEvent sets the "event" field.
func (_u *AuditRecordUpdate) SetEvent(v string) *AuditRecordUpdate {
	_u.mutation.SetEvent(v)
	return _u
}

// SetNillableEvent sets the "event" field if the given value is not nil.
func (_u *AuditRecordUpdate) SetNillableEvent(v *string) *AuditRecordUpdate {
	if v != nil {
		_u.SetEvent(*v)
	}
	return _u
}

// SetMessage sets the "message" field.
func (_u *AuditRecordUpdate) SetMessage(v []byte) *AuditRecordUpdate {
	_u.mutation.SetMessage(v)
	return _u
}

// SetPayload sets the "payload" field.
func (_u *AuditRecordUpdate) SetPayload(v []byte) *AuditRecordUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// ClearPayload clears the value of the "payload" field.
func (_u *AuditRecordUpdate) ClearPayload() *AuditRecordUpdate {
	_u.mutation.ClearPayload()
	return _u
}

// SetError sets the "error" field.
func (_u *AuditRecordUpdate) SetError(v string) *AuditRecordUpdate {
	_u.mutation.SetError(v)
	return _u
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_u *AuditRecordUpdate) SetNillableError(v *string) *AuditRecordUpdate {
	if v != nil {
		_u.SetError(*v)
	}
	return _u
}

// ClearError clears the value of the "error" field.
func (_u *AuditRecordUpdate) ClearError() *AuditRecordUpdate {
	_u.mutation.ClearError()
	return _u
}

// Mutation returns the AuditRecordMutation object of the builder.
func (_u *AuditRecordUpdate) Mutation() *AuditRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AuditRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AuditRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AuditRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AuditRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AuditRecordUpdate) check() error {
	if v, ok := _u.mutation.Event(); ok {
		if err := auditrecord.EventValidator(v); err != nil {
			return &ValidationError{Name: "event", err: fmt.Errorf(`ent: validator failed for field "AuditRecord.event": %w`, err)}
		}
	}
	return nil
}

func (_u *AuditRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(auditrecord.Table, auditrecord.Columns, sqlgraph.NewFieldSpec(auditrecord.FieldID, field.TypeInt64))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Event(); ok {
		_spec.SetField(auditrecord.FieldEvent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(auditrecord.FieldMessage, field.TypeBytes, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(auditrecord.FieldPayload, field.TypeBytes, value)
	}
	if _u.mutation.PayloadCleared() {
		_spec.ClearField(auditrecord.FieldPayload, field.TypeBytes)
	}
	if value, ok := _u.mutation.Error(); ok {
		_spec.SetField(auditrecord.FieldError, field.TypeString, value)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(auditrecord.FieldError, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{auditrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AuditRecordUpdateOne is the builder for updating a single AuditRecord entity.
type AuditRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AuditRecordMutation
}

// SetEvent sets the "event" field.
func (_u *AuditRecordUpdateOne) SetEvent(v string) *AuditRecordUpdateOne {
	_u.mutation.SetEvent(v)
	return _u
}

// SetNillableEvent sets the "event" field if the given value is not nil.
func (_u *AuditRecordUpdateOne) SetNillableEvent(v *string) *AuditRecordUpdateOne {
	if v != nil {
		_u.SetEvent(*v)
	}
	return _u
}

// SetMessage sets the "message" field.
func (_u *AuditRecordUpdateOne) SetMessage(v []byte) *AuditRecordUpdateOne {
	_u.mutation.SetMessage(v)
	return _u
}

// SetPayload sets the "payload" field.
func (_u *AuditRecordUpdateOne) SetPayload(v []byte) *AuditRecordUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// ClearPayload clears the value of the "payload" field.
func (_u *AuditRecordUpdateOne) ClearPayload() *AuditRecordUpdateOne {
	_u.mutation.ClearPayload()
	return _u
}

// SetError sets the "error" field.
func (_u *AuditRecordUpdateOne) SetError(v string) *AuditRecordUpdateOne {
	_u.mutation.SetError(v)
	return _u
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_u *AuditRecordUpdateOne) SetNillableError(v *string) *AuditRecordUpdateOne {
	if v != nil {
		_u.SetError(*v)
	}
	return _u
}

// ClearError clears the value of the "error" field.
func (_u *AuditRecordUpdateOne) ClearError() *AuditRecordUpdateOne {
	_u.mutation.ClearError()
	return _u
}

// Mutation returns the AuditRecordMutation object of the builder.
func (_u *AuditRecordUpdateOne) Mutation() *AuditRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the AuditRecordUpdate builder.
func (_u *AuditRecordUpdateOne) Where(ps ...predicate.AuditRecord) *AuditRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AuditRecordUpdateOne) Select(field string, fields ...string) *AuditRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AuditRecord entity.
func (_u *AuditRecordUpdateOne) Save(ctx context.Context) (*AuditRecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AuditRecordUpdateOne) SaveX(ctx context.Context) *AuditRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AuditRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AuditRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AuditRecordUpdateOne) check() error {
	if v, ok := _u.mutation.Event(); ok {
		if err := auditrecord.EventValidator(v); err != nil {
			return &ValidationError{Name: "event", err: fmt.Errorf(`ent: validator failed for field "AuditRecord.event": %w`, err)}
		}
	}
	return nil
}

func (_u *AuditRecordUpdateOne) sqlSave(ctx context.Context) (_node *AuditRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(auditrecord.Table, auditrecord.Columns, sqlgraph.NewFieldSpec(auditrecord.FieldID, field.TypeInt64))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AuditRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, auditrecord.FieldID)
		for _, f := range fields {
			if !auditrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != auditrecord.FieldID {
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
	if value, ok := _u.mutation.Event(); ok {
		_spec.SetField(auditrecord.FieldEvent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(auditrecord.FieldMessage, field.TypeBytes, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(auditrecord.FieldPayload, field.TypeBytes, value)
	}
	if _u.mutation.PayloadCleared() {
		_spec.ClearField(auditrecord.FieldPayload, field.TypeBytes)
	}
	if value, ok := _u.mutation.Error(); ok {
		_spec.SetField(auditrecord.FieldError, field.TypeString, value)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(auditrecord.FieldError, field.TypeString)
	}
	_node = &AuditRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{auditrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
