// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"musafir/ent/auditrecord"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// AuditRecordCreate is the builder for creating a AuditRecord entity.
type AuditRecordCreate struct {
	config
	mutation *AuditRecordMutation
	hooks    []Hook
}

// SetEvent sets the "event" field.
func (_c *AuditRecordCreate) SetEvent(v string) *AuditRecordCreate {
	_c.mutation.SetEvent(v)
	return _c
}

// SetMessage sets the "message" field.
func (_c *AuditRecordCreate) SetMessage(v []byte) *AuditRecordCreate {
	_c.mutation.SetMessage(v)
	return _c
}

// SetPayload sets the "payload" field.
func (_c *AuditRecordCreate) SetPayload(v []byte) *AuditRecordCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetError sets the "error" field.
func (_c *AuditRecordCreate) SetError(v string) *AuditRecordCreate {
	_c.mutation.SetError(v)
	return _c
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_c *AuditRecordCreate) SetNillableError(v *string) *AuditRecordCreate {
	if v != nil {
		_c.SetError(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AuditRecordCreate) SetCreatedAt(v time.Time) *AuditRecordCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AuditRecordCreate) SetNillableCreatedAt(v *time.Time) *AuditRecordCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AuditRecordCreate) SetID(v int64) *AuditRecordCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the AuditRecordMutation object of the builder.
func (_c *AuditRecordCreate) Mutation() *AuditRecordMutation {
	return _c.mutation
}

// Save creates the AuditRecord in the database.
func (_c *AuditRecordCreate) Save(ctx context.Context) (*AuditRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AuditRecordCreate) SaveX(ctx context.Context) *AuditRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AuditRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AuditRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AuditRecordCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := auditrecord.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AuditRecordCreate) check() error {
	if _, ok := _c.mutation.Event(); !ok {
		return &ValidationError{Name: "event", err: errors.New(`ent: missing required field "AuditRecord.event"`)}
	}
	if v, ok := _c.mutation.Event(); ok {
		if err := auditrecord.EventValidator(v); err != nil {
			return &ValidationError{Name: "event", err: fmt.Errorf(`ent: validator failed for field "AuditRecord.event": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Message(); !ok {
		return &ValidationError{Name: "message", err: errors.New(`ent: missing required field "AuditRecord.message"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AuditRecord.created_at"`)}
	}
	return nil
}

func (_c *AuditRecordCreate) sqlSave(ctx context.Context) (*AuditRecord, error) {
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
	if _spec.ID.Value != _node.ID {
		id := _spec.ID.Value.(int64)
		_node.ID = int64(id)
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AuditRecordCreate) createSpec() (*AuditRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &AuditRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(auditrecord.Table, sqlgraph.NewFieldSpec(auditrecord.FieldID, field.TypeInt64))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Event(); ok {
		_spec.SetField(auditrecord.FieldEvent, field.TypeString, value)
		_node.Event = value
	}
	if value, ok := _c.mutation.Message(); ok {
		_spec.SetField(auditrecord.FieldMessage, field.TypeBytes, value)
		_node.Message = value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(auditrecord.FieldPayload, field.TypeBytes, value)
		_node.Payload = value
	}
	if value, ok := _c.mutation.Error(); ok {
		_spec.SetField(auditrecord.FieldError, field.TypeString, value)
		_node.Error = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(auditrecord.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// AuditRecordCreateBulk is the builder for creating many AuditRecord entities in bulk.
type AuditRecordCreateBulk struct {
	config
	err      error
	builders []*AuditRecordCreate
}

// Save creates the AuditRecord entities in the database.
func (_c *AuditRecordCreateBulk) Save(ctx context.Context) ([]*AuditRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AuditRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AuditRecordMutation)
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
				if specs[i].ID.Value != nil && nodes[i].ID == 0 {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int64(id)
				}
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
func (_c *AuditRecordCreateBulk) SaveX(ctx context.Context) []*AuditRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AuditRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AuditRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
