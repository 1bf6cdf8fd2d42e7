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
	"github.com/hunggoodkidz/data-extraction-module/gen/ent/document"
	"github.com/hunggoodkidz/data-extraction-module/gen/ent/extractedfield"
	"github.com/hunggoodkidz/data-extraction-module/gen/ent/predicate"
)

// ExtractedFieldUpdate is the builder for updating ExtractedField entities.
type ExtractedFieldUpdate struct {
	config
	hooks    []Hook
	mutation *ExtractedFieldMutation
}

// Where appends a list predicates to the ExtractedFieldUpdate builder.
func (_u *ExtractedFieldUpdate) Where(ps ...predicate.ExtractedField) *ExtractedFieldUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDocumentID sets the "document_id" field.
func (_u *ExtractedFieldUpdate) SetDocumentID(v uuid.UUID) *ExtractedFieldUpdate {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *ExtractedFieldUpdate) SetNillableDocumentID(v *uuid.UUID) *ExtractedFieldUpdate {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetFieldName sets the "field_name" field.
func (_u *ExtractedFieldUpdate) SetFieldName(v string) *ExtractedFieldUpdate {
	_u.mutation.SetFieldName(v)
	return _u
}

// SetNillableFieldName sets the "field_name" field if the given value is not nil.
func (_u *ExtractedFieldUpdate) SetNillableFieldName(v *string) *ExtractedFieldUpdate {
	if v != nil {
		_u.SetFieldName(*v)
	}
	return _u
}

// SetExtractedValue sets the "extracted_value" field.
func (_u *ExtractedFieldUpdate) SetExtractedValue(v string) *ExtractedFieldUpdate {
	_u.mutation.SetExtractedValue(v)
	return _u
}

// SetNillableExtractedValue sets the "extracted_value" field if the given value is not nil.
func (_u *ExtractedFieldUpdate) SetNillableExtractedValue(v *string) *ExtractedFieldUpdate {
	if v != nil {
		_u.SetExtractedValue(*v)
	}
	return _u
}

// SetPageNumber sets the "page_number" field.
func (_u *ExtractedFieldUpdate) SetPageNumber(v int) *ExtractedFieldUpdate {
	_u.mutation.ResetPageNumber()
	_u.mutation.SetPageNumber(v)
	return _u
}

// SetNillablePageNumber sets the "page_number" field if the given value is not nil.
func (_u *ExtractedFieldUpdate) SetNillablePageNumber(v *int) *ExtractedFieldUpdate {
	if v != nil {
		_u.SetPageNumber(*v)
	}
	return _u
}

// AddPageNumber adds value to the "page_number" field.
func (_u *ExtractedFieldUpdate) AddPageNumber(v int) *ExtractedFieldUpdate {
	_u.mutation.AddPageNumber(v)
	return _u
}

// ClearPageNumber clears the value of the "page_number" field.
func (_u *ExtractedFieldUpdate) ClearPageNumber() *ExtractedFieldUpdate {
	_u.mutation.ClearPageNumber()
	return _u
}

// SetConfidenceScore sets the "confidence_score" field.
func (_u *ExtractedFieldUpdate) SetConfidenceScore(v float64) *ExtractedFieldUpdate {
	_u.mutation.ResetConfidenceScore()
	_u.mutation.SetConfidenceScore(v)
	return _u
}

// SetNillableConfidenceScore sets the "confidence_score" field if the given value is not nil.
func (_u *ExtractedFieldUpdate) SetNillableConfidenceScore(v *float64) *ExtractedFieldUpdate {
	if v != nil {
		_u.SetConfidenceScore(*v)
	}
	return _u
}

// AddConfidenceScore adds value to the "confidence_score" field.
func (_u *ExtractedFieldUpdate) AddConfidenceScore(v float64) *ExtractedFieldUpdate {
	_u.mutation.AddConfidenceScore(v)
	return _u
}

// ClearConfidenceScore clears the value of the "confidence_score" field.
func (_u *ExtractedFieldUpdate) ClearConfidenceScore() *ExtractedFieldUpdate {
	_u.mutation.ClearConfidenceScore()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ExtractedFieldUpdate) SetCreatedAt(v time.Time) *ExtractedFieldUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ExtractedFieldUpdate) SetNillableCreatedAt(v *time.Time) *ExtractedFieldUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *ExtractedFieldUpdate) SetDocument(v *Document) *ExtractedFieldUpdate {
	return _u.SetDocumentID(v.ID)
}

// AddCorrectionIDs adds the "corrections" edge to the Correction entity by IDs.
func (_u *ExtractedFieldUpdate) AddCorrectionIDs(ids ...uuid.UUID) *ExtractedFieldUpdate {
	_u.mutation.AddCorrectionIDs(ids...)
	return _u
}

// AddCorrections adds the "corrections" edges to the Correction entity.
func (_u *ExtractedFieldUpdate) AddCorrections(v ...*Correction) *ExtractedFieldUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCorrectionIDs(ids...)
}

// Mutation returns the ExtractedFieldMutation object of the builder.
func (_u *ExtractedFieldUpdate) Mutation() *ExtractedFieldMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *ExtractedFieldUpdate) ClearDocument() *ExtractedFieldUpdate {
	_u.mutation.ClearDocument()
	return _u
}

// ClearCorrections clears all "corrections" edges to the Correction entity.
func (_u *ExtractedFieldUpdate) ClearCorrections() *ExtractedFieldUpdate {
	_u.mutation.ClearCorrections()
	return _u
}

// RemoveCorrectionIDs removes the "corrections" edge to Correction entities by IDs.
func (_u *ExtractedFieldUpdate) RemoveCorrectionIDs(ids ...uuid.UUID) *ExtractedFieldUpdate {
	_u.mutation.RemoveCorrectionIDs(ids...)
	return _u
}

// RemoveCorrections removes "corrections" edges to Correction entities.
func (_u *ExtractedFieldUpdate) RemoveCorrections(v ...*Correction) *ExtractedFieldUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCorrectionIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExtractedFieldUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractedFieldUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExtractedFieldUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractedFieldUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExtractedFieldUpdate) check() error {
	if v, ok := _u.mutation.FieldName(); ok {
		if err := extractedfield.FieldNameValidator(v); err != nil {
			return &ValidationError{Name: "field_name", err: fmt.Errorf(`ent: validator failed for field "ExtractedField.field_name": %w`, err)}
		}
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExtractedField.document"`)
	}
	return nil
}

func (_u *ExtractedFieldUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(extractedfield.Table, extractedfield.Columns, sqlgraph.NewFieldSpec(extractedfield.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.FieldName(); ok {
		_spec.SetField(extractedfield.FieldFieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExtractedValue(); ok {
		_spec.SetField(extractedfield.FieldExtractedValue, field.TypeString, value)
	}
	if value, ok := _u.mutation.PageNumber(); ok {
		_spec.SetField(extractedfield.FieldPageNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPageNumber(); ok {
		_spec.AddField(extractedfield.FieldPageNumber, field.TypeInt, value)
	}
	if _u.mutation.PageNumberCleared() {
		_spec.ClearField(extractedfield.FieldPageNumber, field.TypeInt)
	}
	if value, ok := _u.mutation.ConfidenceScore(); ok {
		_spec.SetField(extractedfield.FieldConfidenceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidenceScore(); ok {
		_spec.AddField(extractedfield.FieldConfidenceScore, field.TypeFloat64, value)
	}
	if _u.mutation.ConfidenceScoreCleared() {
		_spec.ClearField(extractedfield.FieldConfidenceScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(extractedfield.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.DocumentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractedfield.DocumentTable,
			Columns: []string{extractedfield.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractedfield.DocumentTable,
			Columns: []string{extractedfield.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CorrectionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   extractedfield.CorrectionsTable,
			Columns: []string{extractedfield.CorrectionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(correction.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCorrectionsIDs(); len(nodes) > 0 && !_u.mutation.CorrectionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   extractedfield.CorrectionsTable,
			Columns: []string{extractedfield.CorrectionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(correction.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CorrectionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   extractedfield.CorrectionsTable,
			Columns: []string{extractedfield.CorrectionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(correction.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extractedfield.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExtractedFieldUpdateOne is the builder for updating a single ExtractedField entity.
type ExtractedFieldUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExtractedFieldMutation
}

// SetDocumentID sets the "document_id" field.
func (_u *ExtractedFieldUpdateOne) SetDocumentID(v uuid.UUID) *ExtractedFieldUpdateOne {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *ExtractedFieldUpdateOne) SetNillableDocumentID(v *uuid.UUID) *ExtractedFieldUpdateOne {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetFieldName sets the "field_name" field.
func (_u *ExtractedFieldUpdateOne) SetFieldName(v string) *ExtractedFieldUpdateOne {
	_u.mutation.SetFieldName(v)
	return _u
}

// SetNillableFieldName sets the "field_name" field if the given value is not nil.
func (_u *ExtractedFieldUpdateOne) SetNillableFieldName(v *string) *ExtractedFieldUpdateOne {
	if v != nil {
		_u.SetFieldName(*v)
	}
	return _u
}

// SetExtractedValue sets the "extracted_value" field.
func (_u *ExtractedFieldUpdateOne) SetExtractedValue(v string) *ExtractedFieldUpdateOne {
	_u.mutation.SetExtractedValue(v)
	return _u
}

// SetNillableExtractedValue sets the "extracted_value" field if the given value is not nil.
func (_u *ExtractedFieldUpdateOne) SetNillableExtractedValue(v *string) *ExtractedFieldUpdateOne {
	if v != nil {
		_u.SetExtractedValue(*v)
	}
	return _u
}

// SetPageNumber sets the "page_number" field.
func (_u *ExtractedFieldUpdateOne) SetPageNumber(v int) *ExtractedFieldUpdateOne {
	_u.mutation.ResetPageNumber()
	_u.mutation.SetPageNumber(v)
	return _u
}

// SetNillablePageNumber sets the "page_number" field if the given value is not nil.
func (_u *ExtractedFieldUpdateOne) SetNillablePageNumber(v *int) *ExtractedFieldUpdateOne {
	if v != nil {
		_u.SetPageNumber(*v)
	}
	return _u
}

// AddPageNumber adds value to the "page_number" field.
func (_u *ExtractedFieldUpdateOne) AddPageNumber(v int) *ExtractedFieldUpdateOne {
	_u.mutation.AddPageNumber(v)
	return _u
}

// ClearPageNumber clears the value of the "page_number" field.
func (_u *ExtractedFieldUpdateOne) ClearPageNumber() *ExtractedFieldUpdateOne {
	_u.mutation.ClearPageNumber()
	return _u
}

// SetConfidenceScore sets the "confidence_score" field.
func (_u *ExtractedFieldUpdateOne) SetConfidenceScore(v float64) *ExtractedFieldUpdateOne {
	_u.mutation.ResetConfidenceScore()
	_u.mutation.SetConfidenceScore(v)
	return _u
}

// SetNillableConfidenceScore sets the "confidence_score" field if the given value is not nil.
func (_u *ExtractedFieldUpdateOne) SetNillableConfidenceScore(v *float64) *ExtractedFieldUpdateOne {
	if v != nil {
		_u.SetConfidenceScore(*v)
	}
	return _u
}

// AddConfidenceScore adds value to the "confidence_score" field.
func (_u *ExtractedFieldUpdateOne) AddConfidenceScore(v float64) *ExtractedFieldUpdateOne {
	_u.mutation.AddConfidenceScore(v)
	return _u
}

// ClearConfidenceScore clears the value of the "confidence_score" field.
func (_u *ExtractedFieldUpdateOne) ClearConfidenceScore() *ExtractedFieldUpdateOne {
	_u.mutation.ClearConfidenceScore()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ExtractedFieldUpdateOne) SetCreatedAt(v time.Time) *ExtractedFieldUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ExtractedFieldUpdateOne) SetNillableCreatedAt(v *time.Time) *ExtractedFieldUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *ExtractedFieldUpdateOne) SetDocument(v *Document) *ExtractedFieldUpdateOne {
	return _u.SetDocumentID(v.ID)
}

// AddCorrectionIDs adds the "corrections" edge to the Correction entity by IDs.
func (_u *ExtractedFieldUpdateOne) AddCorrectionIDs(ids ...uuid.UUID) *ExtractedFieldUpdateOne {
	_u.mutation.AddCorrectionIDs(ids...)
	return _u
}

// AddCorrections adds the "corrections" edges to the Correction entity.
func (_u *ExtractedFieldUpdateOne) AddCorrections(v ...*Correction) *ExtractedFieldUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCorrectionIDs(ids...)
}

// Mutation returns the ExtractedFieldMutation object of the builder.
func (_u *ExtractedFieldUpdateOne) Mutation() *ExtractedFieldMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *ExtractedFieldUpdateOne) ClearDocument() *ExtractedFieldUpdateOne {
	_u.mutation.ClearDocument()
	return _u
}

// ClearCorrections clears all "corrections" edges to the Correction entity.
func (_u *ExtractedFieldUpdateOne) ClearCorrections() *ExtractedFieldUpdateOne {
	_u.mutation.ClearCorrections()
	return _u
}

// RemoveCorrectionIDs removes the "corrections" edge to Correction entities by IDs.
func (_u *ExtractedFieldUpdateOne) RemoveCorrectionIDs(ids ...uuid.UUID) *ExtractedFieldUpdateOne {
	_u.mutation.RemoveCorrectionIDs(ids...)
	return _u
}

// RemoveCorrections removes "corrections" edges to Correction entities.
func (_u *ExtractedFieldUpdateOne) RemoveCorrections(v ...*Correction) *ExtractedFieldUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCorrectionIDs(ids...)
}

// Where appends a list predicates to the ExtractedFieldUpdate builder.
func (_u *ExtractedFieldUpdateOne) Where(ps ...predicate.ExtractedField) *ExtractedFieldUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExtractedFieldUpdateOne) Select(field string, fields ...string) *ExtractedFieldUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ExtractedField entity.
func (_u *ExtractedFieldUpdateOne) Save(ctx context.Context) (*ExtractedField, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractedFieldUpdateOne) SaveX(ctx context.Context) *ExtractedField {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExtractedFieldUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractedFieldUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExtractedFieldUpdateOne) check() error {
	if v, ok := _u.mutation.FieldName(); ok {
		if err := extractedfield.FieldNameValidator(v); err != nil {
			return &ValidationError{Name: "field_name", err: fmt.Errorf(`ent: validator failed for field "ExtractedField.field_name": %w`, err)}
		}
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExtractedField.document"`)
	}
	return nil
}

func (_u *ExtractedFieldUpdateOne) sqlSave(ctx context.Context) (_node *ExtractedField, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(extractedfield.Table, extractedfield.Columns, sqlgraph.NewFieldSpec(extractedfield.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ExtractedField.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, extractedfield.FieldID)
		for _, f := range fields {
			if !extractedfield.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != extractedfield.FieldID {
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
	if value, ok := _u.mutation.FieldName(); ok {
		_spec.SetField(extractedfield.FieldFieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExtractedValue(); ok {
		_spec.SetField(extractedfield.FieldExtractedValue, field.TypeString, value)
	}
	if value, ok := _u.mutation.PageNumber(); ok {
		_spec.SetField(extractedfield.FieldPageNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPageNumber(); ok {
		_spec.AddField(extractedfield.FieldPageNumber, field.TypeInt, value)
	}
	if _u.mutation.PageNumberCleared() {
		_spec.ClearField(extractedfield.FieldPageNumber, field.TypeInt)
	}
	if value, ok := _u.mutation.ConfidenceScore(); ok {
		_spec.SetField(extractedfield.FieldConfidenceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidenceScore(); ok {
		_spec.AddField(extractedfield.FieldConfidenceScore, field.TypeFloat64, value)
	}
	if _u.mutation.ConfidenceScoreCleared() {
		_spec.ClearField(extractedfield.FieldConfidenceScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(extractedfield.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.DocumentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractedfield.DocumentTable,
			Columns: []string{extractedfield.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractedfield.DocumentTable,
			Columns: []string{extractedfield.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CorrectionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   extractedfield.CorrectionsTable,
			Columns: []string{extractedfield.CorrectionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(correction.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCorrectionsIDs(); len(nodes) > 0 && !_u.mutation.CorrectionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   extractedfield.CorrectionsTable,
			Columns: []string{extractedfield.CorrectionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(correction.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CorrectionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   extractedfield.CorrectionsTable,
			Columns: []string{extractedfield.CorrectionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(correction.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ExtractedField{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extractedfield.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
