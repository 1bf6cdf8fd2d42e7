// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/hunggoodkidz/data-extraction-module/gen/ent/correction"
	"github.com/hunggoodkidz/data-extraction-module/gen/ent/extractedfield"
)

// CorrectionCreate is the builder for creating a Correction entity.
type CorrectionCreate struct {
	config
	mutation *CorrectionMutation
	hooks    []Hook
}

// SetExtractedFieldID sets the "extracted_field_id" field.
func (_c *CorrectionCreate) SetExtractedFieldID(v uuid.UUID) *CorrectionCreate {
	_c.mutation.SetExtractedFieldID(v)
	return _c
}

// SetCorrectedValue sets the "corrected_value" field.
func (_c *CorrectionCreate) SetCorrectedValue(v string) *CorrectionCreate {
	_c.mutation.SetCorrectedValue(v)
	return _c
}

// SetCorrectedByUser sets the "corrected_by_user" field.
func (_c *CorrectionCreate) SetCorrectedByUser(v string) *CorrectionCreate {
	_c.mutation.SetCorrectedByUser(v)
	return _c
}

// SetNillableCorrectedByUser sets the "corrected_by_user" field if the given value is not nil.
func (_c *CorrectionCreate) SetNillableCorrectedByUser(v *string) *CorrectionCreate {
	if v != nil {
		_c.SetCorrectedByUser(*v)
	}
	return _c
}

// SetReason sets the "reason" field.
func (_c *CorrectionCreate) SetReason(v string) *CorrectionCreate {
	_c.mutation.SetReason(v)
	return _c
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_c *CorrectionCreate) SetNillableReason(v *string) *CorrectionCreate {
	if v != nil {
		_c.SetReason(*v)
	}
	return _c
}

// SetCorrectedAt sets the "corrected_at" field.
func (_c *CorrectionCreate) SetCorrectedAt(v time.Time) *CorrectionCreate {
	_c.mutation.SetCorrectedAt(v)
	return _c
}

// SetNillableCorrectedAt sets the "corrected_at" field if the given value is not nil.
func (_c *CorrectionCreate) SetNillableCorrectedAt(v *time.Time) *CorrectionCreate {
	if v != nil {
		_c.SetCorrectedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CorrectionCreate) SetID(v uuid.UUID) *CorrectionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *CorrectionCreate) SetNillableID(v *uuid.UUID) *CorrectionCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetExtractedField sets the "extracted_field" edge to the ExtractedField entity.
func (_c *CorrectionCreate) SetExtractedField(v *ExtractedField) *CorrectionCreate {
	return _c.SetExtractedFieldID(v.ID)
}

// Mutation returns the CorrectionMutation object of the builder.
func (_c *CorrectionCreate) Mutation() *CorrectionMutation {
	return _c.mutation
}

// Save creates the Correction in the database.
func (_c *CorrectionCreate) Save(ctx context.Context) (*Correction, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CorrectionCreate) SaveX(ctx context.Context) *Correction {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CorrectionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CorrectionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CorrectionCreate) defaults() {
	if _, ok := _c.mutation.CorrectedAt(); !ok {
		v := correction.DefaultCorrectedAt()
		_c.mutation.SetCorrectedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := correction.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CorrectionCreate) check() error {
	if _, ok := _c.mutation.ExtractedFieldID(); !ok {
		return &ValidationError{Name: "extracted_field_id", err: errors.New(`ent: missing required field "Correction.extracted_field_id"`)}
	}
	if _, ok := _c.mutation.CorrectedValue(); !ok {
		return &ValidationError{Name: "corrected_value", err: errors.New(`ent: missing required field "Correction.corrected_value"`)}
	}
	if _, ok := _c.mutation.CorrectedAt(); !ok {
		return &ValidationError{Name: "corrected_at", err: errors.New(`ent: missing required field "Correction.corrected_at"`)}
	}
	if len(_c.mutation.ExtractedFieldIDs()) == 0 {
		return &ValidationError{Name: "extracted_field", err: errors.New(`ent: missing required edge "Correction.extracted_field"`)}
	}
	return nil
}

func (_c *CorrectionCreate) sqlSave(ctx context.Context) (*Correction, error) {
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
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CorrectionCreate) createSpec() (*Correction, *sqlgraph.CreateSpec) {
	var (
		_node = &Correction{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(correction.Table, sqlgraph.NewFieldSpec(correction.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CorrectedValue(); ok {
		_spec.SetField(correction.FieldCorrectedValue, field.TypeString, value)
		_node.CorrectedValue = value
	}
	if value, ok := _c.mutation.CorrectedByUser(); ok {
		_spec.SetField(correction.FieldCorrectedByUser, field.TypeString, value)
		_node.CorrectedByUser = &value
	}
	if value, ok := _c.mutation.Reason(); ok {
		_spec.SetField(correction.FieldReason, field.TypeString, value)
		_node.Reason = &value
	}
	if value, ok := _c.mutation.CorrectedAt(); ok {
		_spec.SetField(correction.FieldCorrectedAt, field.TypeTime, value)
		_node.CorrectedAt = value
	}
	if nodes := _c.mutation.ExtractedFieldIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   correction.ExtractedFieldTable,
			Columns: []string{correction.ExtractedFieldColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractedfield.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ExtractedFieldID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// CorrectionCreateBulk is the builder for creating many Correction entities in bulk.
type CorrectionCreateBulk struct {
	config
	err      error
	builders []*CorrectionCreate
}

// Save creates the Correction entities in the database.
func (_c *CorrectionCreateBulk) Save(ctx context.Context) ([]*Correction, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Correction, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CorrectionMutation)
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
func (_c *CorrectionCreateBulk) SaveX(ctx context.Context) []*Correction {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CorrectionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CorrectionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
