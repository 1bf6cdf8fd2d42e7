// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/hunggoodkidz/data-extraction-module/gen/ent/company"
	"github.com/hunggoodkidz/data-extraction-module/gen/ent/document"
	"github.com/hunggoodkidz/data-extraction-module/gen/ent/financialhighlight"
	"github.com/hunggoodkidz/data-extraction-module/gen/ent/investment"
	"github.com/hunggoodkidz/data-extraction-module/gen/ent/predicate"
)

// CompanyUpdate is the builder for updating Company entities.
type CompanyUpdate struct {
	config
	hooks    []Hook
	mutation *CompanyMutation
}

// Where appends a list predicates to the CompanyUpdate builder.
func (_u *CompanyUpdate) Where(ps ...predicate.Company) *CompanyUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *CompanyUpdate) SetName(v string) *CompanyUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *CompanyUpdate) SetNillableName(v *string) *CompanyUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetHoldingCompany sets the "holding_company" field.
func (_u *CompanyUpdate) SetHoldingCompany(v string) *CompanyUpdate {
	_u.mutation.SetHoldingCompany(v)
	return _u
}

// SetNillableHoldingCompany sets the "holding_company" field if the given value is not nil.
func (_u *CompanyUpdate) SetNillableHoldingCompany(v *string) *CompanyUpdate {
	if v != nil {
		_u.SetHoldingCompany(*v)
	}
	return _u
}

// ClearHoldingCompany clears the value of the "holding_company" field.
func (_u *CompanyUpdate) ClearHoldingCompany() *CompanyUpdate {
	_u.mutation.ClearHoldingCompany()
	return _u
}

// SetDescription sets the "description" field.
func (_u *CompanyUpdate) SetDescription(v string) *CompanyUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *CompanyUpdate) SetNillableDescription(v *string) *CompanyUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *CompanyUpdate) ClearDescription() *CompanyUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetHeadOfficeLocation sets the "head_office_location" field.
func (_u *CompanyUpdate) SetHeadOfficeLocation(v string) *CompanyUpdate {
	_u.mutation.SetHeadOfficeLocation(v)
	return _u
}

// SetNillableHeadOfficeLocation sets the "head_office_location" field if the given value is not nil.
func (_u *CompanyUpdate) SetNillableHeadOfficeLocation(v *string) *CompanyUpdate {
	if v != nil {
		_u.SetHeadOfficeLocation(*v)
	}
	return _u
}

// ClearHeadOfficeLocation clears the value of the "head_office_location" field.
func (_u *CompanyUpdate) ClearHeadOfficeLocation() *CompanyUpdate {
	_u.mutation.ClearHeadOfficeLocation()
	return _u
}

// AddDocumentIDs adds the "documents" edge to the Document entity by IDs.
func (_u *CompanyUpdate) AddDocumentIDs(ids ...uuid.UUID) *CompanyUpdate {
	_u.mutation.AddDocumentIDs(ids...)
	return _u
}

// AddDocuments adds the "documents" edges to the Document entity.
func (_u *CompanyUpdate) AddDocuments(v ...*Document) *CompanyUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDocumentIDs(ids...)
}

// AddInvestmentIDs adds the "investments" edge to the Investment entity by IDs.
func (_u *CompanyUpdate) AddInvestmentIDs(ids ...uuid.UUID) *CompanyUpdate {
	_u.mutation.AddInvestmentIDs(ids...)
	return _u
}

// AddInvestments adds the "investments" edges to the Investment entity.
func (_u *CompanyUpdate) AddInvestments(v ...*Investment) *CompanyUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddInvestmentIDs(ids...)
}

// AddFinancialIDs adds the "financials" edge to the FinancialHighlight entity by IDs.
func (_u *CompanyUpdate) AddFinancialIDs(ids ...uuid.UUID) *CompanyUpdate {
	_u.mutation.AddFinancialIDs(ids...)
	return _u
}

// AddFinancials adds the "financials" edges to the FinancialHighlight entity.
func (_u *CompanyUpdate) AddFinancials(v ...*FinancialHighlight) *CompanyUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFinancialIDs(ids...)
}

// Mutation returns the CompanyMutation object of the builder.
func (_u *CompanyUpdate) Mutation() *CompanyMutation {
	return _u.mutation
}

// ClearDocuments clears all "documents" edges to the Document entity.
func (_u *CompanyUpdate) ClearDocuments() *CompanyUpdate {
	_u.mutation.ClearDocuments()
	return _u
}

// RemoveDocumentIDs removes the "documents" edge to Document entities by IDs.
func (_u *CompanyUpdate) RemoveDocumentIDs(ids ...uuid.UUID) *CompanyUpdate {
	_u.mutation.RemoveDocumentIDs(ids...)
	return _u
}

// RemoveDocuments removes "documents" edges to Document entities.
func (_u *CompanyUpdate) RemoveDocuments(v ...*Document) *CompanyUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDocumentIDs(ids...)
}

// ClearInvestments clears all "investments" edges to the Investment entity.
func (_u *CompanyUpdate) ClearInvestments() *CompanyUpdate {
	_u.mutation.ClearInvestments()
	return _u
}

// RemoveInvestmentIDs removes the "investments" edge to Investment entities by IDs.
func (_u *CompanyUpdate) RemoveInvestmentIDs(ids ...uuid.UUID) *CompanyUpdate {
	_u.mutation.RemoveInvestmentIDs(ids...)
	return _u
}

// RemoveInvestments removes "investments" edges to Investment entities.
func (_u *CompanyUpdate) RemoveInvestments(v ...*Investment) *CompanyUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveInvestmentIDs(ids...)
}

// ClearFinancials clears all "financials" edges to the FinancialHighlight entity.
func (_u *CompanyUpdate) ClearFinancials() *CompanyUpdate {
	_u.mutation.ClearFinancials()
	return _u
}

// RemoveFinancialIDs removes the "financials" edge to FinancialHighlight entities by IDs.
func (_u *CompanyUpdate) RemoveFinancialIDs(ids ...uuid.UUID) *CompanyUpdate {
	_u.mutation.RemoveFinancialIDs(ids...)
	return _u
}

// RemoveFinancials removes "financials" edges to FinancialHighlight entities.
func (_u *CompanyUpdate) RemoveFinancials(v ...*FinancialHighlight) *CompanyUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFinancialIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CompanyUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CompanyUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CompanyUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CompanyUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CompanyUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := company.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Company.name": %w`, err)}
		}
	}
	return nil
}

func (_u *CompanyUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(company.Table, company.Columns, sqlgraph.NewFieldSpec(company.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(company.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.HoldingCompany(); ok {
		_spec.SetField(company.FieldHoldingCompany, field.TypeString, value)
	}
	if _u.mutation.HoldingCompanyCleared() {
		_spec.ClearField(company.FieldHoldingCompany, field.TypeString)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(company.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(company.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.HeadOfficeLocation(); ok {
		_spec.SetField(company.FieldHeadOfficeLocation, field.TypeString, value)
	}
	if _u.mutation.HeadOfficeLocationCleared() {
		_spec.ClearField(company.FieldHeadOfficeLocation, field.TypeString)
	}
	if _u.mutation.DocumentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   company.DocumentsTable,
			Columns: []string{company.DocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDocumentsIDs(); len(nodes) > 0 && !_u.mutation.DocumentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   company.DocumentsTable,
			Columns: []string{company.DocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   company.DocumentsTable,
			Columns: []string{company.DocumentsColumn},
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
	if _u.mutation.InvestmentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   company.InvestmentsTable,
			Columns: []string{company.InvestmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(investment.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedInvestmentsIDs(); len(nodes) > 0 && !_u.mutation.InvestmentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   company.InvestmentsTable,
			Columns: []string{company.InvestmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(investment.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.InvestmentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   company.InvestmentsTable,
			Columns: []string{company.InvestmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(investment.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.FinancialsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   company.FinancialsTable,
			Columns: []string{company.FinancialsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(financialhighlight.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFinancialsIDs(); len(nodes) > 0 && !_u.mutation.FinancialsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   company.FinancialsTable,
			Columns: []string{company.FinancialsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(financialhighlight.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FinancialsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   company.FinancialsTable,
			Columns: []string{company.FinancialsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(financialhighlight.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{company.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CompanyUpdateOne is the builder for updating a single Company entity.
type CompanyUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CompanyMutation
}

// SetName sets the "name" field.
func (_u *CompanyUpdateOne) SetName(v string) *CompanyUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *CompanyUpdateOne) SetNillableName(v *string) *CompanyUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetHoldingCompany sets the "holding_company" field.
func (_u *CompanyUpdateOne) SetHoldingCompany(v string) *CompanyUpdateOne {
	_u.mutation.SetHoldingCompany(v)
	return _u
}

// SetNillableHoldingCompany sets the "holding_company" field if the given value is not nil.
func (_u *CompanyUpdateOne) SetNillableHoldingCompany(v *string) *CompanyUpdateOne {
	if v != nil {
		_u.SetHoldingCompany(*v)
	}
	return _u
}

// ClearHoldingCompany clears the value of the "holding_company" field.
func (_u *CompanyUpdateOne) ClearHoldingCompany() *CompanyUpdateOne {
	_u.mutation.ClearHoldingCompany()
	return _u
}

// SetDescription sets the "description" field.
func (_u *CompanyUpdateOne) SetDescription(v string) *CompanyUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *CompanyUpdateOne) SetNillableDescription(v *string) *CompanyUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *CompanyUpdateOne) ClearDescription() *CompanyUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetHeadOfficeLocation sets the "head_office_location" field.
func (_u *CompanyUpdateOne) SetHeadOfficeLocation(v string) *CompanyUpdateOne {
	_u.mutation.SetHeadOfficeLocation(v)
	return _u
}

// SetNillableHeadOfficeLocation sets the "head_office_location" field if the given value is not nil.
func (_u *CompanyUpdateOne) SetNillableHeadOfficeLocation(v *string) *CompanyUpdateOne {
	if v != nil {
		_u.SetHeadOfficeLocation(*v)
	}
	return _u
}

// ClearHeadOfficeLocation clears the value of the "head_office_location" field.
func (_u *CompanyUpdateOne) ClearHeadOfficeLocation() *CompanyUpdateOne {
	_u.mutation.ClearHeadOfficeLocation()
	return _u
}

// AddDocumentIDs adds the "documents" edge to the Document entity by IDs.
func (_u *CompanyUpdateOne) AddDocumentIDs(ids ...uuid.UUID) *CompanyUpdateOne {
	_u.mutation.AddDocumentIDs(ids...)
	return _u
}

// AddDocuments adds the "documents" edges to the Document entity.
func (_u *CompanyUpdateOne) AddDocuments(v ...*Document) *CompanyUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDocumentIDs(ids...)
}

// AddInvestmentIDs adds the "investments" edge to the Investment entity by IDs.
func (_u *CompanyUpdateOne) AddInvestmentIDs(ids ...uuid.UUID) *CompanyUpdateOne {
	_u.mutation.AddInvestmentIDs(ids...)
	return _u
}

// AddInvestments adds the "investments" edges to the Investment entity.
func (_u *CompanyUpdateOne) AddInvestments(v ...*Investment) *CompanyUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddInvestmentIDs(ids...)
}

// AddFinancialIDs adds the "financials" edge to the FinancialHighlight entity by IDs.
func (_u *CompanyUpdateOne) AddFinancialIDs(ids ...uuid.UUID) *CompanyUpdateOne {
	_u.mutation.AddFinancialIDs(ids...)
	return _u
}

// AddFinancials adds the "financials" edges to the FinancialHighlight entity.
func (_u *CompanyUpdateOne) AddFinancials(v ...*FinancialHighlight) *CompanyUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFinancialIDs(ids...)
}

// Mutation returns the CompanyMutation object of the builder.
func (_u *CompanyUpdateOne) Mutation() *CompanyMutation {
	return _u.mutation
}

// ClearDocuments clears all "documents" edges to the Document entity.
func (_u *CompanyUpdateOne) ClearDocuments() *CompanyUpdateOne {
	_u.mutation.ClearDocuments()
	return _u
}

// RemoveDocumentIDs removes the "documents" edge to Document entities by IDs.
func (_u *CompanyUpdateOne) RemoveDocumentIDs(ids ...uuid.UUID) *CompanyUpdateOne {
	_u.mutation.RemoveDocumentIDs(ids...)
	return _u
}

// RemoveDocuments removes "documents" edges to Document entities.
func (_u *CompanyUpdateOne) RemoveDocuments(v ...*Document) *CompanyUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDocumentIDs(ids...)
}

// ClearInvestments clears all "investments" edges to the Investment entity.
func (_u *CompanyUpdateOne) ClearInvestments() *CompanyUpdateOne {
	_u.mutation.ClearInvestments()
	return _u
}

// RemoveInvestmentIDs removes the "investments" edge to Investment entities by IDs.
func (_u *CompanyUpdateOne) RemoveInvestmentIDs(ids ...uuid.UUID) *CompanyUpdateOne {
	_u.mutation.RemoveInvestmentIDs(ids...)
	return _u
}

// RemoveInvestments removes "investments" edges to Investment entities.
func (_u *CompanyUpdateOne) RemoveInvestments(v ...*Investment) *CompanyUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveInvestmentIDs(ids...)
}

// ClearFinancials clears all "financials" edges to the FinancialHighlight entity.
func (_u *CompanyUpdateOne) ClearFinancials() *CompanyUpdateOne {
	_u.mutation.ClearFinancials()
	return _u
}

// RemoveFinancialIDs removes the "financials" edge to FinancialHighlight entities by IDs.
func (_u *CompanyUpdateOne) RemoveFinancialIDs(ids ...uuid.UUID) *CompanyUpdateOne {
	_u.mutation.RemoveFinancialIDs(ids...)
	return _u
}

// RemoveFinancials removes "financials" edges to FinancialHighlight entities.
func (_u *CompanyUpdateOne) RemoveFinancials(v ...*FinancialHighlight) *CompanyUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFinancialIDs(ids...)
}

// Where appends a list predicates to the CompanyUpdate builder.
func (_u *CompanyUpdateOne) Where(ps ...predicate.Company) *CompanyUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CompanyUpdateOne) Select(field string, fields ...string) *CompanyUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Company entity.
func (_u *CompanyUpdateOne) Save(ctx context.Context) (*Company, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CompanyUpdateOne) SaveX(ctx context.Context) *Company {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CompanyUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CompanyUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CompanyUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := company.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Company.name": %w`, err)}
		}
	}
	return nil
}

func (_u *CompanyUpdateOne) sqlSave(ctx context.Context) (_node *Company, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(company.Table, company.Columns, sqlgraph.NewFieldSpec(company.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Company.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, company.FieldID)
		for _, f := range fields {
			if !company.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != company.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(company.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.HoldingCompany(); ok {
		_spec.SetField(company.FieldHoldingCompany, field.TypeString, value)
	}
	if _u.mutation.HoldingCompanyCleared() {
		_spec.ClearField(company.FieldHoldingCompany, field.TypeString)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(company.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(company.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.HeadOfficeLocation(); ok {
		_spec.SetField(company.FieldHeadOfficeLocation, field.TypeString, value)
	}
	if _u.mutation.HeadOfficeLocationCleared() {
		_spec.ClearField(company.FieldHeadOfficeLocation, field.TypeString)
	}
	if _u.mutation.DocumentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   company.DocumentsTable,
			Columns: []string{company.DocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDocumentsIDs(); len(nodes) > 0 && !_u.mutation.DocumentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   company.DocumentsTable,
			Columns: []string{company.DocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   company.DocumentsTable,
			Columns: []string{company.DocumentsColumn},
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
	if _u.mutation.InvestmentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   company.InvestmentsTable,
			Columns: []string{company.InvestmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(investment.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedInvestmentsIDs(); len(nodes) > 0 && !_u.mutation.InvestmentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   company.InvestmentsTable,
			Columns: []string{company.InvestmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(investment.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.InvestmentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   company.InvestmentsTable,
			Columns: []string{company.InvestmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(investment.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.FinancialsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   company.FinancialsTable,
			Columns: []string{company.FinancialsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(financialhighlight.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFinancialsIDs(); len(nodes) > 0 && !_u.mutation.FinancialsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   company.FinancialsTable,
			Columns: []string{company.FinancialsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(financialhighlight.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FinancialsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   company.FinancialsTable,
			Columns: []string{company.FinancialsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(financialhighlight.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Company{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{company.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
