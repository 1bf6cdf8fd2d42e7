// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/hunggoodkidz/data-extraction-module/gen/ent/correction"
	"github.com/hunggoodkidz/data-extraction-module/gen/ent/extractedfield"
	"github.com/hunggoodkidz/data-extraction-module/gen/ent/predicate"
)

// CorrectionUpdate is the builder for updating Correction entities.
type CorrectionUpdate struct {
	config
	hooks    []Hook
	mutation *CorrectionMutation
}

// Where appends a list predicates to the CorrectionUpdate builder.
func (_u *CorrectionUpdate) Where(ps ...predicate.Correction) *CorrectionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetExtractedFieldID sets the "extracted_field_id" field.
func (_u *CorrectionUpdate) SetExtractedFieldID(v uuid.UUID) *CorrectionUpdate {
	_u.mutation.SetExtractedFieldID(v)
	return _u
}

// SetNillableExtractedFieldID sets the "extracted_field_id" field if the given value is not nil.
func (_u *CorrectionUpdate) SetNillableExtractedFieldID(v *uuid.UUID) *CorrectionUpdate {
	if v != nil {
		_u.SetExtractedFieldID(*v)
	}
	return _u
}

// SetCorrectedValue sets the "corrected_value" field.
func (_u *CorrectionUpdate) SetCorrectedValue(v string) *CorrectionUpdate {
	_u.mutation.SetCorrectedValue(v)
	return _u
}

// SetNillableCorrectedValue sets the "corrected_value" field if the given value is not nil.
func (_u *CorrectionUpdate) SetNillableCorrectedValue(v *string) *CorrectionUpdate {
	if v != nil {
		_u.SetCorrectedValue(*v)
	}
	return _u
}

// SetCorrectedByUser sets the "corrected_by_user" field.
func (_u *CorrectionUpdate) SetCorrectedByUser(v string) *CorrectionUpdate {
	_u.mutation.SetCorrectedByUser(v)
	return _u
}

// SetNillableCorrectedByUser sets the "corrected_by_user" field if the given value is not nil.
func (_u *CorrectionUpdate) SetNillableCorrectedByUser(v *string) *CorrectionUpdate {
	if v != nil {
		_u.SetCorrectedByUser(*v)
	}
	return _u
}

// ClearCorrectedByUser clears the value of the "corrected_by_user" field.
func (_u *CorrectionUpdate) ClearCorrectedByUser() *CorrectionUpdate {
	_u.mutation.ClearCorrectedByUser()
	return _u
}

// SetReason sets the "reason" field.
func (_u *CorrectionUpdate) SetReason(v string) *CorrectionUpdate {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *CorrectionUpdate) SetNillableReason(v *string) *CorrectionUpdate {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// ClearReason clears the value of the "reason" field.
func (_u *CorrectionUpdate) ClearReason() *CorrectionUpdate {
	_u.mutation.ClearReason()
	return _u
}

// SetCorrectedAt sets the "corrected_at" field.
func (_u *CorrectionUpdate) SetCorrectedAt(v time.Time) *CorrectionUpdate {
	_u.mutation.SetCorrectedAt(v)
	return _u
}

// SetNillableCorrectedAt sets the "corrected_at" field if the given value is not nil.
func (_u *CorrectionUpdate) SetNillableCorrectedAt(v *time.Time) *CorrectionUpdate {
	if v != nil {
		_u.SetCorrectedAt(*v)
	}
	return _u
}

// SetExtractedField sets the "extracted_field" edge to the ExtractedField entity.
func (_u *CorrectionUpdate) SetExtractedField(v *ExtractedField) *CorrectionUpdate {
	return _u.SetExtractedFieldID(v.ID)
}

// Mutation returns the CorrectionMutation object of the builder.
func (_u *CorrectionUpdate) Mutation() *CorrectionMutation {
	return _u.mutation
}

// ClearExtractedField clears the "extracted_field" edge to the ExtractedField entity.
func (_u *CorrectionUpdate) ClearExtractedField() *CorrectionUpdate {
	_u.mutation.ClearExtractedField()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CorrectionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CorrectionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CorrectionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CorrectionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CorrectionUpdate) check() error {
	if _u.mutation.ExtractedFieldCleared() && len(_u.mutation.ExtractedFieldIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Correction.extracted_field"`)
	}
	return nil
}

func (_u *CorrectionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(correction.Table, correction.Columns, sqlgraph.NewFieldSpec(correction.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CorrectedValue(); ok {
		_spec.SetField(correction.FieldCorrectedValue, field.TypeString, value)
	}
	if value, ok := _u.mutation.CorrectedByUser(); ok {
		_spec.SetField(correction.FieldCorrectedByUser, field.TypeString, value)
	}
	if _u.mutation.CorrectedByUserCleared() {
		_spec.ClearField(correction.FieldCorrectedByUser, field.TypeString)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(correction.FieldReason, field.TypeString, value)
	}
	if _u.mutation.ReasonCleared() {
		_spec.ClearField(correction.FieldReason, field.TypeString)
	}
	if value, ok := _u.mutation.CorrectedAt(); ok {
		_spec.SetField(correction.FieldCorrectedAt, field.TypeTime, value)
	}
	if _u.mutation.ExtractedFieldCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ExtractedFieldIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{correction.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CorrectionUpdateOne is the builder for updating a single Correction entity.
type CorrectionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CorrectionMutation
}

// SetExtractedFieldID sets the "extracted_field_id" field.
func (_u *CorrectionUpdateOne) SetExtractedFieldID(v uuid.UUID) *CorrectionUpdateOne {
	_u.mutation.SetExtractedFieldID(v)
	return _u
}

// SetNillableExtractedFieldID sets the "extracted_field_id" field if the given value is not nil.
func (_u *CorrectionUpdateOne) SetNillableExtractedFieldID(v *uuid.UUID) *CorrectionUpdateOne {
	if v != nil {
		_u.SetExtractedFieldID(*v)
	}
	return _u
}

// SetCorrectedValue sets the "corrected_value" field.
func (_u *CorrectionUpdateOne) SetCorrectedValue(v string) *CorrectionUpdateOne {
	_u.mutation.SetCorrectedValue(v)
	return _u
}

// SetNillableCorrectedValue sets the "corrected_value" field if the given value is not nil.
func (_u *CorrectionUpdateOne) SetNillableCorrectedValue(v *string) *CorrectionUpdateOne {
	if v != nil {
		_u.SetCorrectedValue(*v)
	}
	return _u
}

// SetCorrectedByUser sets the "corrected_by_user" field.
func (_u *CorrectionUpdateOne) SetCorrectedByUser(v string) *CorrectionUpdateOne {
	_u.mutation.SetCorrectedByUser(v)
	return _u
}

// SetNillableCorrectedByUser sets the "corrected_by_user" field if the given value is not nil.
func (_u *CorrectionUpdateOne) SetNillableCorrectedByUser(v *string) *CorrectionUpdateOne {
	if v != nil {
		_u.SetCorrectedByUser(*v)
	}
	return _u
}

// ClearCorrectedByUser clears the value of the "corrected_by_user" field.
func (_u *CorrectionUpdateOne) ClearCorrectedByUser() *CorrectionUpdateOne {
	_u.mutation.ClearCorrectedByUser()
	return _u
}

// SetReason sets the "reason" field.
func (_u *CorrectionUpdateOne) SetReason(v string) *CorrectionUpdateOne {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *CorrectionUpdateOne) SetNillableReason(v *string) *CorrectionUpdateOne {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// ClearReason clears the value of the "reason" field.
func (_u *CorrectionUpdateOne) ClearReason() *CorrectionUpdateOne {
	_u.mutation.ClearReason()
	return _u
}

// SetCorrectedAt sets the "corrected_at" field.
func (_u *CorrectionUpdateOne) SetCorrectedAt(v time.Time) *CorrectionUpdateOne {
	_u.mutation.SetCorrectedAt(v)
	return _u
}

// SetNillableCorrectedAt sets the "corrected_at" field if the given value is not nil.
func (_u *CorrectionUpdateOne) SetNillableCorrectedAt(v *time.Time) *CorrectionUpdateOne {
	if v != nil {
		_u.SetCorrectedAt(*v)
	}
	return _u
}

// SetExtractedField sets the "extracted_field" edge to the ExtractedField entity.
func (_u *CorrectionUpdateOne) SetExtractedField(v *ExtractedField) *CorrectionUpdateOne {
	return _u.SetExtractedFieldID(v.ID)
}

// Mutation returns the CorrectionMutation object of the builder.
func (_u *CorrectionUpdateOne) Mutation() *CorrectionMutation {
	return _u.mutation
}

// ClearExtractedField clears the "extracted_field" edge to the ExtractedField entity.
func (_u *CorrectionUpdateOne) ClearExtractedField() *CorrectionUpdateOne {
	_u.mutation.ClearExtractedField()
	return _u
}

// Where appends a list predicates to the CorrectionUpdate builder.
func (_u *CorrectionUpdateOne) Where(ps ...predicate.Correction) *CorrectionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CorrectionUpdateOne) Select(field string, fields ...string) *CorrectionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Correction entity.
func (_u *CorrectionUpdateOne) Save(ctx context.Context) (*Correction, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CorrectionUpdateOne) SaveX(ctx context.Context) *Correction {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CorrectionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CorrectionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CorrectionUpdateOne) check() error {
	if _u.mutation.ExtractedFieldCleared() && len(_u.mutation.ExtractedFieldIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Correction.extracted_field"`)
	}
	return nil
}

func (_u *CorrectionUpdateOne) sqlSave(ctx context.Context) (_node *Correction, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(correction.Table, correction.Columns, sqlgraph.NewFieldSpec(correction.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Correction.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, correction.FieldID)
		for _, f := range fields {
			if !correction.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != correction.FieldID {
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
	if value, ok := _u.mutation.CorrectedValue(); ok {
		_spec.SetField(correction.FieldCorrectedValue, field.TypeString, value)
	}
	if value, ok := _u.mutation.CorrectedByUser(); ok {
		_spec.SetField(correction.FieldCorrectedByUser, field.TypeString, value)
	}
	if _u.mutation.CorrectedByUserCleared() {
		_spec.ClearField(correction.FieldCorrectedByUser, field.TypeString)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(correction.FieldReason, field.TypeString, value)
	}
	if _u.mutation.ReasonCleared() {
		_spec.ClearField(correction.FieldReason, field.TypeString)
	}
	if value, ok := _u.mutation.CorrectedAt(); ok {
		_spec.SetField(correction.FieldCorrectedAt, field.TypeTime, value)
	}
	if _u.mutation.ExtractedFieldCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ExtractedFieldIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Correction{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{correction.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
