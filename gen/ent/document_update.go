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
	"github.com/hunggoodkidz/data-extraction-module/gen/ent/company"
	"github.com/hunggoodkidz/data-extraction-module/gen/ent/document"
	"github.com/hunggoodkidz/data-extraction-module/gen/ent/extractedfield"
	"github.com/hunggoodkidz/data-extraction-module/gen/ent/fund"
	"github.com/hunggoodkidz/data-extraction-module/gen/ent/predicate"
)

// DocumentUpdate is the builder for updating Document entities.
type DocumentUpdate struct {
	config
	hooks    []Hook
	mutation *DocumentMutation
}

// Where appends a list predicates to the DocumentUpdate builder.
func (_u *DocumentUpdate) Where(ps ...predicate.Document) *DocumentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFundID sets the "fund_id" field.
func (_u *DocumentUpdate) SetFundID(v uuid.UUID) *DocumentUpdate {
	_u.mutation.SetFundID(v)
	return _u
}

// SetNillableFundID sets the "fund_id" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableFundID(v *uuid.UUID) *DocumentUpdate {
	if v != nil {
		_u.SetFundID(*v)
	}
	return _u
}

// ClearFundID clears the value of the "fund_id" field.
func (_u *DocumentUpdate) ClearFundID() *DocumentUpdate {
	_u.mutation.ClearFundID()
	return _u
}

// SetCompanyID sets the "company_id" field.
func (_u *DocumentUpdate) SetCompanyID(v uuid.UUID) *DocumentUpdate {
	_u.mutation.SetCompanyID(v)
	return _u
}

// SetNillableCompanyID sets the "company_id" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableCompanyID(v *uuid.UUID) *DocumentUpdate {
	if v != nil {
		_u.SetCompanyID(*v)
	}
	return _u
}

// ClearCompanyID clears the value of the "company_id" field.
func (_u *DocumentUpdate) ClearCompanyID() *DocumentUpdate {
	_u.mutation.ClearCompanyID()
	return _u
}

// SetFileName sets the "file_name" field.
func (_u *DocumentUpdate) SetFileName(v string) *DocumentUpdate {
	_u.mutation.SetFileName(v)
	return _u
}

// SetNillableFileName sets the "file_name" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableFileName(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetFileName(*v)
	}
	return _u
}

// SetFilePath sets the "file_path" field.
func (_u *DocumentUpdate) SetFilePath(v string) *DocumentUpdate {
	_u.mutation.SetFilePath(v)
	return _u
}

// SetNillableFilePath sets the "file_path" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableFilePath(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetFilePath(*v)
	}
	return _u
}

// SetUploadedAt sets the "uploaded_at" field.
func (_u *DocumentUpdate) SetUploadedAt(v time.Time) *DocumentUpdate {
	_u.mutation.SetUploadedAt(v)
	return _u
}

// SetNillableUploadedAt sets the "uploaded_at" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableUploadedAt(v *time.Time) *DocumentUpdate {
	if v != nil {
		_u.SetUploadedAt(*v)
	}
	return _u
}

// SetFund sets the "fund" edge to the Fund entity.
func (_u *DocumentUpdate) SetFund(v *Fund) *DocumentUpdate {
	return _u.SetFundID(v.ID)
}

// SetCompany sets the "company" edge to the Company entity.
func (_u *DocumentUpdate) SetCompany(v *Company) *DocumentUpdate {
	return _u.SetCompanyID(v.ID)
}

// AddFieldIDs adds the "fields" edge to the ExtractedField entity by IDs.
func (_u *DocumentUpdate) AddFieldIDs(ids ...uuid.UUID) *DocumentUpdate {
	_u.mutation.AddFieldIDs(ids...)
	return _u
}

// AddFields adds the "fields" edges to the ExtractedField entity.
func (_u *DocumentUpdate) AddFields(v ...*ExtractedField) *DocumentUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFieldIDs(ids...)
}

// Mutation returns the DocumentMutation object of the builder.
func (_u *DocumentUpdate) Mutation() *DocumentMutation {
	return _u.mutation
}

// ClearFund clears the "fund" edge to the Fund entity.
func (_u *DocumentUpdate) ClearFund() *DocumentUpdate {
	_u.mutation.ClearFund()
	return _u
}

// ClearCompany clears the "company" edge to the Company entity.
func (_u *DocumentUpdate) ClearCompany() *DocumentUpdate {
	_u.mutation.ClearCompany()
	return _u
}

// ClearFields clears all "fields" edges to the ExtractedField entity.
func (_u *DocumentUpdate) ClearFields() *DocumentUpdate {
	_u.mutation.ClearFields()
	return _u
}

// RemoveFieldIDs removes the "fields" edge to ExtractedField entities by IDs.
func (_u *DocumentUpdate) RemoveFieldIDs(ids ...uuid.UUID) *DocumentUpdate {
	_u.mutation.RemoveFieldIDs(ids...)
	return _u
}

// RemoveFields removes "fields" edges to ExtractedField entities.
func (_u *DocumentUpdate) RemoveFields(v ...*ExtractedField) *DocumentUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFieldIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DocumentUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocumentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DocumentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocumentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DocumentUpdate) check() error {
	if v, ok := _u.mutation.FileName(); ok {
		if err := document.FileNameValidator(v); err != nil {
			return &ValidationError{Name: "file_name", err: fmt.Errorf(`ent: validator failed for field "Document.file_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FilePath(); ok {
		if err := document.FilePathValidator(v); err != nil {
			return &ValidationError{Name: "file_path", err: fmt.Errorf(`ent: validator failed for field "Document.file_path": %w`, err)}
		}
	}
	return nil
}

func (_u *DocumentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(document.Table, document.Columns, sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.FileName(); ok {
		_spec.SetField(document.FieldFileName, field.TypeString, value)
	}
	if value, ok := _u.mutation.FilePath(); ok {
		_spec.SetField(document.FieldFilePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.UploadedAt(); ok {
		_spec.SetField(document.FieldUploadedAt, field.TypeTime, value)
	}
	if _u.mutation.FundCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   document.FundTable,
			Columns: []string{document.FundColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(fund.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FundIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   document.FundTable,
			Columns: []string{document.FundColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(fund.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CompanyCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   document.CompanyTable,
			Columns: []string{document.CompanyColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(company.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CompanyIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   document.CompanyTable,
			Columns: []string{document.CompanyColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(company.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.FieldsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.FieldsTable,
			Columns: []string{document.FieldsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractedfield.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFieldsIDs(); len(nodes) > 0 && !_u.mutation.FieldsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.FieldsTable,
			Columns: []string{document.FieldsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractedfield.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FieldsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.FieldsTable,
			Columns: []string{document.FieldsColumn},
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
			err = &NotFoundError{document.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DocumentUpdateOne is the builder for updating a single Document entity.
type DocumentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DocumentMutation
}

// SetFundID sets the "fund_id" field.
func (_u *DocumentUpdateOne) SetFundID(v uuid.UUID) *DocumentUpdateOne {
	_u.mutation.SetFundID(v)
	return _u
}

// SetNillableFundID sets the "fund_id" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableFundID(v *uuid.UUID) *DocumentUpdateOne {
	if v != nil {
		_u.SetFundID(*v)
	}
	return _u
}

// ClearFundID clears the value of the "fund_id" field.
func (_u *DocumentUpdateOne) ClearFundID() *DocumentUpdateOne {
	_u.mutation.ClearFundID()
	return _u
}

// SetCompanyID sets the "company_id" field.
func (_u *DocumentUpdateOne) SetCompanyID(v uuid.UUID) *DocumentUpdateOne {
	_u.mutation.SetCompanyID(v)
	return _u
}

// SetNillableCompanyID sets the "company_id" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableCompanyID(v *uuid.UUID) *DocumentUpdateOne {
	if v != nil {
		_u.SetCompanyID(*v)
	}
	return _u
}

// ClearCompanyID clears the value of the "company_id" field.
func (_u *DocumentUpdateOne) ClearCompanyID() *DocumentUpdateOne {
	_u.mutation.ClearCompanyID()
	return _u
}

// SetFileName sets the "file_name" field.
func (_u *DocumentUpdateOne) SetFileName(v string) *DocumentUpdateOne {
	_u.mutation.SetFileName(v)
	return _u
}

// SetNillableFileName sets the "file_name" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableFileName(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetFileName(*v)
	}
	return _u
}

// SetFilePath sets the "file_path" field.
func (_u *DocumentUpdateOne) SetFilePath(v string) *DocumentUpdateOne {
	_u.mutation.SetFilePath(v)
	return _u
}

// SetNillableFilePath sets the "file_path" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableFilePath(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetFilePath(*v)
	}
	return _u
}

// SetUploadedAt sets the "uploaded_at" field.
func (_u *DocumentUpdateOne) SetUploadedAt(v time.Time) *DocumentUpdateOne {
	_u.mutation.SetUploadedAt(v)
	return _u
}

// SetNillableUploadedAt sets the "uploaded_at" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableUploadedAt(v *time.Time) *DocumentUpdateOne {
	if v != nil {
		_u.SetUploadedAt(*v)
	}
	return _u
}

// SetFund sets the "fund" edge to the Fund entity.
func (_u *DocumentUpdateOne) SetFund(v *Fund) *DocumentUpdateOne {
	return _u.SetFundID(v.ID)
}

// SetCompany sets the "company" edge to the Company entity.
func (_u *DocumentUpdateOne) SetCompany(v *Company) *DocumentUpdateOne {
	return _u.SetCompanyID(v.ID)
}

// AddFieldIDs adds the "fields" edge to the ExtractedField entity by IDs.
func (_u *DocumentUpdateOne) AddFieldIDs(ids ...uuid.UUID) *DocumentUpdateOne {
	_u.mutation.AddFieldIDs(ids...)
	return _u
}

// AddFields adds the "fields" edges to the ExtractedField entity.
func (_u *DocumentUpdateOne) AddFields(v ...*ExtractedField) *DocumentUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFieldIDs(ids...)
}

// Mutation returns the DocumentMutation object of the builder.
func (_u *DocumentUpdateOne) Mutation() *DocumentMutation {
	return _u.mutation
}

// ClearFund clears the "fund" edge to the Fund entity.
func (_u *DocumentUpdateOne) ClearFund() *DocumentUpdateOne {
	_u.mutation.ClearFund()
	return _u
}

// ClearCompany clears the "company" edge to the Company entity.
func (_u *DocumentUpdateOne) ClearCompany() *DocumentUpdateOne {
	_u.mutation.ClearCompany()
	return _u
}

// ClearFields clears all "fields" edges to the ExtractedField entity.
func (_u *DocumentUpdateOne) ClearFields() *DocumentUpdateOne {
	_u.mutation.ClearFields()
	return _u
}

// RemoveFieldIDs removes the "fields" edge to ExtractedField entities by IDs.
func (_u *DocumentUpdateOne) RemoveFieldIDs(ids ...uuid.UUID) *DocumentUpdateOne {
	_u.mutation.RemoveFieldIDs(ids...)
	return _u
}

// RemoveFields removes "fields" edges to ExtractedField entities.
func (_u *DocumentUpdateOne) RemoveFields(v ...*ExtractedField) *DocumentUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFieldIDs(ids...)
}

// Where appends a list predicates to the DocumentUpdate builder.
func (_u *DocumentUpdateOne) Where(ps ...predicate.Document) *DocumentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DocumentUpdateOne) Select(field string, fields ...string) *DocumentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Document entity.
func (_u *DocumentUpdateOne) Save(ctx context.Context) (*Document, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocumentUpdateOne) SaveX(ctx context.Context) *Document {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DocumentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocumentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DocumentUpdateOne) check() error {
	if v, ok := _u.mutation.FileName(); ok {
		if err := document.FileNameValidator(v); err != nil {
			return &ValidationError{Name: "file_name", err: fmt.Errorf(`ent: validator failed for field "Document.file_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FilePath(); ok {
		if err := document.FilePathValidator(v); err != nil {
			return &ValidationError{Name: "file_path", err: fmt.Errorf(`ent: validator failed for field "Document.file_path": %w`, err)}
		}
	}
	return nil
}

func (_u *DocumentUpdateOne) sqlSave(ctx context.Context) (_node *Document, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(document.Table, document.Columns, sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Document.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, document.FieldID)
		for _, f := range fields {
			if !document.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != document.FieldID {
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
	if value, ok := _u.mutation.FileName(); ok {
		_spec.SetField(document.FieldFileName, field.TypeString, value)
	}
	if value, ok := _u.mutation.FilePath(); ok {
		_spec.SetField(document.FieldFilePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.UploadedAt(); ok {
		_spec.SetField(document.FieldUploadedAt, field.TypeTime, value)
	}
	if _u.mutation.FundCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   document.FundTable,
			Columns: []string{document.FundColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(fund.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FundIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   document.FundTable,
			Columns: []string{document.FundColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(fund.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CompanyCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   document.CompanyTable,
			Columns: []string{document.CompanyColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(company.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CompanyIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   document.CompanyTable,
			Columns: []string{document.CompanyColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(company.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.FieldsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.FieldsTable,
			Columns: []string{document.FieldsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractedfield.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFieldsIDs(); len(nodes) > 0 && !_u.mutation.FieldsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.FieldsTable,
			Columns: []string{document.FieldsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractedfield.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FieldsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.FieldsTable,
			Columns: []string{document.FieldsColumn},
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
	_node = &Document{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{document.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
