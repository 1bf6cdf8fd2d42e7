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
	"github.com/hunggoodkidz/data-extraction-module/gen/ent/company"
	"github.com/hunggoodkidz/data-extraction-module/gen/ent/fund"
	"github.com/hunggoodkidz/data-extraction-module/gen/ent/investment"
)

// InvestmentCreate is the builder for creating a Investment entity.
type InvestmentCreate struct {
	config
	mutation *InvestmentMutation
	hooks    []Hook
}

// SetFundID sets the "fund_id" field.
func (_c *InvestmentCreate) SetFundID(v uuid.UUID) *InvestmentCreate {
	_c.mutation.SetFundID(v)
	return _c
}

// SetNillableFundID sets the "fund_id" field if the given value is not nil.
func (_c *InvestmentCreate) SetNillableFundID(v *uuid.UUID) *InvestmentCreate {
	if v != nil {
		_c.SetFundID(*v)
	}
	return _c
}

// SetCompanyID sets the "company_id" field.
func (_c *InvestmentCreate) SetCompanyID(v uuid.UUID) *InvestmentCreate {
	_c.mutation.SetCompanyID(v)
	return _c
}

// SetFundRole sets the "fund_role" field.
func (_c *InvestmentCreate) SetFundRole(v string) *InvestmentCreate {
	_c.mutation.SetFundRole(v)
	return _c
}

// SetNillableFundRole sets the "fund_role" field if the given value is not nil.
func (_c *InvestmentCreate) SetNillableFundRole(v *string) *InvestmentCreate {
	if v != nil {
		_c.SetFundRole(*v)
	}
	return _c
}

// SetInvestmentType sets the "investment_type" field.
func (_c *InvestmentCreate) SetInvestmentType(v string) *InvestmentCreate {
	_c.mutation.SetInvestmentType(v)
	return _c
}

// SetNillableInvestmentType sets the "investment_type" field if the given value is not nil.
func (_c *InvestmentCreate) SetNillableInvestmentType(v *string) *InvestmentCreate {
	if v != nil {
		_c.SetInvestmentType(*v)
	}
	return _c
}

// SetOwnershipPercent sets the "ownership_percent" field.
func (_c *InvestmentCreate) SetOwnershipPercent(v float64) *InvestmentCreate {
	_c.mutation.SetOwnershipPercent(v)
	return _c
}

// SetNillableOwnershipPercent sets the "ownership_percent" field if the given value is not nil.
func (_c *InvestmentCreate) SetNillableOwnershipPercent(v *float64) *InvestmentCreate {
	if v != nil {
		_c.SetOwnershipPercent(*v)
	}
	return _c
}

// SetDateOfFirstCompletion sets the "date_of_first_completion" field.
func (_c *InvestmentCreate) SetDateOfFirstCompletion(v time.Time) *InvestmentCreate {
	_c.mutation.SetDateOfFirstCompletion(v)
	return _c
}

// SetNillableDateOfFirstCompletion sets the "date_of_first_completion" field if the given value is not nil.
func (_c *InvestmentCreate) SetNillableDateOfFirstCompletion(v *time.Time) *InvestmentCreate {
	if v != nil {
		_c.SetDateOfFirstCompletion(*v)
	}
	return _c
}

// SetTransactionValue sets the "transaction_value" field.
func (_c *InvestmentCreate) SetTransactionValue(v float64) *InvestmentCreate {
	_c.mutation.SetTransactionValue(v)
	return _c
}

// SetNillableTransactionValue sets the "transaction_value" field if the given value is not nil.
func (_c *InvestmentCreate) SetNillableTransactionValue(v *float64) *InvestmentCreate {
	if v != nil {
		_c.SetTransactionValue(*v)
	}
	return _c
}

// SetCurrentCost sets the "current_cost" field.
func (_c *InvestmentCreate) SetCurrentCost(v float64) *InvestmentCreate {
	_c.mutation.SetCurrentCost(v)
	return _c
}

// SetNillableCurrentCost sets the "current_cost" field if the given value is not nil.
func (_c *InvestmentCreate) SetNillableCurrentCost(v *float64) *InvestmentCreate {
	if v != nil {
		_c.SetCurrentCost(*v)
	}
	return _c
}

// SetFairValue sets the "fair_value" field.
func (_c *InvestmentCreate) SetFairValue(v float64) *InvestmentCreate {
	_c.mutation.SetFairValue(v)
	return _c
}

// SetNillableFairValue sets the "fair_value" field if the given value is not nil.
func (_c *InvestmentCreate) SetNillableFairValue(v *float64) *InvestmentCreate {
	if v != nil {
		_c.SetFairValue(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *InvestmentCreate) SetID(v uuid.UUID) *InvestmentCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *InvestmentCreate) SetNillableID(v *uuid.UUID) *InvestmentCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetFund sets the "fund" edge to the Fund entity.
func (_c *InvestmentCreate) SetFund(v *Fund) *InvestmentCreate {
	return _c.SetFundID(v.ID)
}

// SetCompany sets the "company" edge to the Company entity.
func (_c *InvestmentCreate) SetCompany(v *Company) *InvestmentCreate {
	return _c.SetCompanyID(v.ID)
}

// Mutation returns the InvestmentMutation object of the builder.
func (_c *InvestmentCreate) Mutation() *InvestmentMutation {
	return _c.mutation
}

// Save creates the Investment in the database.
func (_c *InvestmentCreate) Save(ctx context.Context) (*Investment, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *InvestmentCreate) SaveX(ctx context.Context) *Investment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InvestmentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InvestmentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *InvestmentCreate) defaults() {
	if _, ok := _c.mutation.OwnershipPercent(); !ok {
		v := investment.DefaultOwnershipPercent
		_c.mutation.SetOwnershipPercent(v)
	}
	if _, ok := _c.mutation.TransactionValue(); !ok {
		v := investment.DefaultTransactionValue
		_c.mutation.SetTransactionValue(v)
	}
	if _, ok := _c.mutation.CurrentCost(); !ok {
		v := investment.DefaultCurrentCost
		_c.mutation.SetCurrentCost(v)
	}
	if _, ok := _c.mutation.FairValue(); !ok {
		v := investment.DefaultFairValue
		_c.mutation.SetFairValue(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := investment.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *InvestmentCreate) check() error {
	if _, ok := _c.mutation.CompanyID(); !ok {
		return &ValidationError{Name: "company_id", err: errors.New(`ent: missing required field "Investment.company_id"`)}
	}
	if _, ok := _c.mutation.OwnershipPercent(); !ok {
		return &ValidationError{Name: "ownership_percent", err: errors.New(`ent: missing required field "Investment.ownership_percent"`)}
	}
	if _, ok := _c.mutation.TransactionValue(); !ok {
		return &ValidationError{Name: "transaction_value", err: errors.New(`ent: missing required field "Investment.transaction_value"`)}
	}
	if _, ok := _c.mutation.CurrentCost(); !ok {
		return &ValidationError{Name: "current_cost", err: errors.New(`ent: missing required field "Investment.current_cost"`)}
	}
	if _, ok := _c.mutation.FairValue(); !ok {
		return &ValidationError{Name: "fair_value", err: errors.New(`ent: missing required field "Investment.fair_value"`)}
	}
	if len(_c.mutation.CompanyIDs()) == 0 {
		return &ValidationError{Name: "company", err: errors.New(`ent: missing required edge "Investment.company"`)}
	}
	return nil
}

func (_c *InvestmentCreate) sqlSave(ctx context.Context) (*Investment, error) {
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

func (_c *InvestmentCreate) createSpec() (*Investment, *sqlgraph.CreateSpec) {
	var (
		_node = &Investment{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(investment.Table, sqlgraph.NewFieldSpec(investment.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.FundRole(); ok {
		_spec.SetField(investment.FieldFundRole, field.TypeString, value)
		_node.FundRole = &value
	}
	if value, ok := _c.mutation.InvestmentType(); ok {
		_spec.SetField(investment.FieldInvestmentType, field.TypeString, value)
		_node.InvestmentType = &value
	}
	if value, ok := _c.mutation.OwnershipPercent(); ok {
		_spec.SetField(investment.FieldOwnershipPercent, field.TypeFloat64, value)
		_node.OwnershipPercent = value
	}
	if value, ok := _c.mutation.DateOfFirstCompletion(); ok {
		_spec.SetField(investment.FieldDateOfFirstCompletion, field.TypeTime, value)
		_node.DateOfFirstCompletion = &value
	}
	if value, ok := _c.mutation.TransactionValue(); ok {
		_spec.SetField(investment.FieldTransactionValue, field.TypeFloat64, value)
		_node.TransactionValue = value
	}
	if value, ok := _c.mutation.CurrentCost(); ok {
		_spec.SetField(investment.FieldCurrentCost, field.TypeFloat64, value)
		_node.CurrentCost = value
	}
	if value, ok := _c.mutation.FairValue(); ok {
		_spec.SetField(investment.FieldFairValue, field.TypeFloat64, value)
		_node.FairValue = value
	}
	if nodes := _c.mutation.FundIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   investment.FundTable,
			Columns: []string{investment.FundColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(fund.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.FundID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.CompanyIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   investment.CompanyTable,
			Columns: []string{investment.CompanyColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(company.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.CompanyID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// InvestmentCreateBulk is the builder for creating many Investment entities in bulk.
type InvestmentCreateBulk struct {
	config
	err      error
	builders []*InvestmentCreate
}

// Save creates the Investment entities in the database.
func (_c *InvestmentCreateBulk) Save(ctx context.Context) ([]*Investment, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Investment, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*InvestmentMutation)
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
func (_c *InvestmentCreateBulk) SaveX(ctx context.Context) []*Investment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InvestmentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InvestmentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
