// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/hunggoodkidz/data-extraction-module/gen/ent/company"
	"github.com/hunggoodkidz/data-extraction-module/gen/ent/document"
	"github.com/hunggoodkidz/data-extraction-module/gen/ent/financialhighlight"
	"github.com/hunggoodkidz/data-extraction-module/gen/ent/investment"
)

// CompanyCreate is the builder for creating a Company entity.
type CompanyCreate struct {
	config
	mutation *CompanyMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *CompanyCreate) SetName(v string) *CompanyCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetHoldingCompany sets the "holding_company" field.
func (_c *CompanyCreate) SetHoldingCompany(v string) *CompanyCreate {
	_c.mutation.SetHoldingCompany(v)
	return _c
}

// SetNillableHoldingCompany sets the "holding_company" field if the given value is not nil.
func (_c *CompanyCreate) SetNillableHoldingCompany(v *string) *CompanyCreate {
	if v != nil {
		_c.SetHoldingCompany(*v)
	}
	return _c
}

// SetDescription sets the "description" field.
func (_c *CompanyCreate) SetDescription(v string) *CompanyCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *CompanyCreate) SetNillableDescription(v *string) *CompanyCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetHeadOfficeLocation sets the "head_office_location" field.
func (_c *CompanyCreate) SetHeadOfficeLocation(v string) *CompanyCreate {
	_c.mutation.SetHeadOfficeLocation(v)
	return _c
}

// SetNillableHeadOfficeLocation sets the "head_office_location" field if the given value is not nil.
func (_c *CompanyCreate) SetNillableHeadOfficeLocation(v *string) *CompanyCreate {
	if v != nil {
		_c.SetHeadOfficeLocation(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CompanyCreate) SetID(v uuid.UUID) *CompanyCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *CompanyCreate) SetNillableID(v *uuid.UUID) *CompanyCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddDocumentIDs adds the "documents" edge to the Document entity by IDs.
func (_c *CompanyCreate) AddDocumentIDs(ids ...uuid.UUID) *CompanyCreate {
	_c.mutation.AddDocumentIDs(ids...)
	return _c
}

// AddDocuments adds the "documents" edges to the Document entity.
func (_c *CompanyCreate) AddDocuments(v ...*Document) *CompanyCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddDocumentIDs(ids...)
}

// AddInvestmentIDs adds the "investments" edge to the Investment entity by IDs.
func (_c *CompanyCreate) AddInvestmentIDs(ids ...uuid.UUID) *CompanyCreate {
	_c.mutation.AddInvestmentIDs(ids...)
	return _c
}

// AddInvestments adds the "investments" edges to the Investment entity.
func (_c *CompanyCreate) AddInvestments(v ...*Investment) *CompanyCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddInvestmentIDs(ids...)
}

// AddFinancialIDs adds the "financials" edge to the FinancialHighlight entity by IDs.
func (_c *CompanyCreate) AddFinancialIDs(ids ...uuid.UUID) *CompanyCreate {
	_c.mutation.AddFinancialIDs(ids...)
	return _c
}

// AddFinancials adds the "financials" edges to the FinancialHighlight entity.
func (_c *CompanyCreate) AddFinancials(v ...*FinancialHighlight) *CompanyCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddFinancialIDs(ids...)
}

// Mutation returns the CompanyMutation object of the builder.
func (_c *CompanyCreate) Mutation() *CompanyMutation {
	return _c.mutation
}

// Save creates the Company in the database.
func (_c *CompanyCreate) Save(ctx context.Context) (*Company, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CompanyCreate) SaveX(ctx context.Context) *Company {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CompanyCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CompanyCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CompanyCreate) defaults() {
	if _, ok := _c.mutation.ID(); !ok {
		v := company.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CompanyCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Company.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := company.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Company.name": %w`, err)}
		}
	}
	return nil
}

func (_c *CompanyCreate) sqlSave(ctx context.Context) (*Company, error) {
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

func (_c *CompanyCreate) createSpec() (*Company, *sqlgraph.CreateSpec) {
	var (
		_node = &Company{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(company.Table, sqlgraph.NewFieldSpec(company.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(company.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.HoldingCompany(); ok {
		_spec.SetField(company.FieldHoldingCompany, field.TypeString, value)
		_node.HoldingCompany = &value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(company.FieldDescription, field.TypeString, value)
		_node.Description = &value
	}
	if value, ok := _c.mutation.HeadOfficeLocation(); ok {
		_spec.SetField(company.FieldHeadOfficeLocation, field.TypeString, value)
		_node.HeadOfficeLocation = &value
	}
	if nodes := _c.mutation.DocumentsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.InvestmentsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.FinancialsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// CompanyCreateBulk is the builder for creating many Company entities in bulk.
type CompanyCreateBulk struct {
	config
	err      error
	builders []*CompanyCreate
}

// Save creates the Company entities in the database.
func (_c *CompanyCreateBulk) Save(ctx context.Context) ([]*Company, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Company, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CompanyMutation)
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
func (_c *CompanyCreateBulk) SaveX(ctx context.Context) []*Company {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CompanyCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CompanyCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
