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
	"github.com/hunggoodkidz/data-extraction-module/gen/ent/financialhighlight"
)

// FinancialHighlightCreate is the builder for creating a FinancialHighlight entity.
type FinancialHighlightCreate struct {
	config
	mutation *FinancialHighlightMutation
	hooks    []Hook
}

// SetCompanyID sets the "company_id" field.
func (_c *FinancialHighlightCreate) SetCompanyID(v uuid.UUID) *FinancialHighlightCreate {
	_c.mutation.SetCompanyID(v)
	return _c
}

// SetPeriod sets the "period" field.
func (_c *FinancialHighlightCreate) SetPeriod(v string) *FinancialHighlightCreate {
	_c.mutation.SetPeriod(v)
	return _c
}

// SetCurrency sets the "currency" field.
func (_c *FinancialHighlightCreate) SetCurrency(v string) *FinancialHighlightCreate {
	_c.mutation.SetCurrency(v)
	return _c
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (_c *FinancialHighlightCreate) SetNillableCurrency(v *string) *FinancialHighlightCreate {
	if v != nil {
		_c.SetCurrency(*v)
	}
	return _c
}

// SetRevenue sets the "revenue" field.
func (_c *FinancialHighlightCreate) SetRevenue(v float64) *FinancialHighlightCreate {
	_c.mutation.SetRevenue(v)
	return _c
}

// SetNillableRevenue sets the "revenue" field if the given value is not nil.
func (_c *FinancialHighlightCreate) SetNillableRevenue(v *float64) *FinancialHighlightCreate {
	if v != nil {
		_c.SetRevenue(*v)
	}
	return _c
}

// SetEbitda sets the "ebitda" field.
func (_c *FinancialHighlightCreate) SetEbitda(v float64) *FinancialHighlightCreate {
	_c.mutation.SetEbitda(v)
	return _c
}

// SetNillableEbitda sets the "ebitda" field if the given value is not nil.
func (_c *FinancialHighlightCreate) SetNillableEbitda(v *float64) *FinancialHighlightCreate {
	if v != nil {
		_c.SetEbitda(*v)
	}
	return _c
}

// SetEbitdaMargin sets the "ebitda_margin" field.
func (_c *FinancialHighlightCreate) SetEbitdaMargin(v float64) *FinancialHighlightCreate {
	_c.mutation.SetEbitdaMargin(v)
	return _c
}

// SetNillableEbitdaMargin sets the "ebitda_margin" field if the given value is not nil.
func (_c *FinancialHighlightCreate) SetNillableEbitdaMargin(v *float64) *FinancialHighlightCreate {
	if v != nil {
		_c.SetEbitdaMargin(*v)
	}
	return _c
}

// SetEbit sets the "ebit" field.
func (_c *FinancialHighlightCreate) SetEbit(v float64) *FinancialHighlightCreate {
	_c.mutation.SetEbit(v)
	return _c
}

// SetNillableEbit sets the "ebit" field if the given value is not nil.
func (_c *FinancialHighlightCreate) SetNillableEbit(v *float64) *FinancialHighlightCreate {
	if v != nil {
		_c.SetEbit(*v)
	}
	return _c
}

// SetEbitMargin sets the "ebit_margin" field.
func (_c *FinancialHighlightCreate) SetEbitMargin(v float64) *FinancialHighlightCreate {
	_c.mutation.SetEbitMargin(v)
	return _c
}

// SetNillableEbitMargin sets the "ebit_margin" field if the given value is not nil.
func (_c *FinancialHighlightCreate) SetNillableEbitMargin(v *float64) *FinancialHighlightCreate {
	if v != nil {
		_c.SetEbitMargin(*v)
	}
	return _c
}

// SetNetProfitAfterTax sets the "net_profit_after_tax" field.
func (_c *FinancialHighlightCreate) SetNetProfitAfterTax(v float64) *FinancialHighlightCreate {
	_c.mutation.SetNetProfitAfterTax(v)
	return _c
}

// SetNillableNetProfitAfterTax sets the "net_profit_after_tax" field if the given value is not nil.
func (_c *FinancialHighlightCreate) SetNillableNetProfitAfterTax(v *float64) *FinancialHighlightCreate {
	if v != nil {
		_c.SetNetProfitAfterTax(*v)
	}
	return _c
}

// SetCapex sets the "capex" field.
func (_c *FinancialHighlightCreate) SetCapex(v float64) *FinancialHighlightCreate {
	_c.mutation.SetCapex(v)
	return _c
}

// SetNillableCapex sets the "capex" field if the given value is not nil.
func (_c *FinancialHighlightCreate) SetNillableCapex(v *float64) *FinancialHighlightCreate {
	if v != nil {
		_c.SetCapex(*v)
	}
	return _c
}

// SetNetDebt sets the "net_debt" field.
func (_c *FinancialHighlightCreate) SetNetDebt(v float64) *FinancialHighlightCreate {
	_c.mutation.SetNetDebt(v)
	return _c
}

// SetNillableNetDebt sets the "net_debt" field if the given value is not nil.
func (_c *FinancialHighlightCreate) SetNillableNetDebt(v *float64) *FinancialHighlightCreate {
	if v != nil {
		_c.SetNetDebt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *FinancialHighlightCreate) SetID(v uuid.UUID) *FinancialHighlightCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *FinancialHighlightCreate) SetNillableID(v *uuid.UUID) *FinancialHighlightCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetCompany sets the "company" edge to the Company entity.
func (_c *FinancialHighlightCreate) SetCompany(v *Company) *FinancialHighlightCreate {
	return _c.SetCompanyID(v.ID)
}

// Mutation returns the FinancialHighlightMutation object of the builder.
func (_c *FinancialHighlightCreate) Mutation() *FinancialHighlightMutation {
	return _c.mutation
}

// Save creates the FinancialHighlight in the database.
func (_c *FinancialHighlightCreate) Save(ctx context.Context) (*FinancialHighlight, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *FinancialHighlightCreate) SaveX(ctx context.Context) *FinancialHighlight {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FinancialHighlightCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FinancialHighlightCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *FinancialHighlightCreate) defaults() {
	if _, ok := _c.mutation.Revenue(); !ok {
		v := financialhighlight.DefaultRevenue
		_c.mutation.SetRevenue(v)
	}
	if _, ok := _c.mutation.Ebitda(); !ok {
		v := financialhighlight.DefaultEbitda
		_c.mutation.SetEbitda(v)
	}
	if _, ok := _c.mutation.EbitdaMargin(); !ok {
		v := financialhighlight.DefaultEbitdaMargin
		_c.mutation.SetEbitdaMargin(v)
	}
	if _, ok := _c.mutation.Ebit(); !ok {
		v := financialhighlight.DefaultEbit
		_c.mutation.SetEbit(v)
	}
	if _, ok := _c.mutation.EbitMargin(); !ok {
		v := financialhighlight.DefaultEbitMargin
		_c.mutation.SetEbitMargin(v)
	}
	if _, ok := _c.mutation.NetProfitAfterTax(); !ok {
		v := financialhighlight.DefaultNetProfitAfterTax
		_c.mutation.SetNetProfitAfterTax(v)
	}
	if _, ok := _c.mutation.Capex(); !ok {
		v := financialhighlight.DefaultCapex
		_c.mutation.SetCapex(v)
	}
	if _, ok := _c.mutation.NetDebt(); !ok {
		v := financialhighlight.DefaultNetDebt
		_c.mutation.SetNetDebt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := financialhighlight.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *FinancialHighlightCreate) check() error {
	if _, ok := _c.mutation.CompanyID(); !ok {
		return &ValidationError{Name: "company_id", err: errors.New(`ent: missing required field "FinancialHighlight.company_id"`)}
	}
	if _, ok := _c.mutation.Period(); !ok {
		return &ValidationError{Name: "period", err: errors.New(`ent: missing required field "FinancialHighlight.period"`)}
	}
	if _, ok := _c.mutation.Revenue(); !ok {
		return &ValidationError{Name: "revenue", err: errors.New(`ent: missing required field "FinancialHighlight.revenue"`)}
	}
	if _, ok := _c.mutation.Ebitda(); !ok {
		return &ValidationError{Name: "ebitda", err: errors.New(`ent: missing required field "FinancialHighlight.ebitda"`)}
	}
	if _, ok := _c.mutation.EbitdaMargin(); !ok {
		return &ValidationError{Name: "ebitda_margin", err: errors.New(`ent: missing required field "FinancialHighlight.ebitda_margin"`)}
	}
	if _, ok := _c.mutation.Ebit(); !ok {
		return &ValidationError{Name: "ebit", err: errors.New(`ent: missing required field "FinancialHighlight.ebit"`)}
	}
	if _, ok := _c.mutation.EbitMargin(); !ok {
		return &ValidationError{Name: "ebit_margin", err: errors.New(`ent: missing required field "FinancialHighlight.ebit_margin"`)}
	}
	if _, ok := _c.mutation.NetProfitAfterTax(); !ok {
		return &ValidationError{Name: "net_profit_after_tax", err: errors.New(`ent: missing required field "FinancialHighlight.net_profit_after_tax"`)}
	}
	if _, ok := _c.mutation.Capex(); !ok {
		return &ValidationError{Name: "capex", err: errors.New(`ent: missing required field "FinancialHighlight.capex"`)}
	}
	if _, ok := _c.mutation.NetDebt(); !ok {
		return &ValidationError{Name: "net_debt", err: errors.New(`ent: missing required field "FinancialHighlight.net_debt"`)}
	}
	if len(_c.mutation.CompanyIDs()) == 0 {
		return &ValidationError{Name: "company", err: errors.New(`ent: missing required edge "FinancialHighlight.company"`)}
	}
	return nil
}

func (_c *FinancialHighlightCreate) sqlSave(ctx context.Context) (*FinancialHighlight, error) {
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

func (_c *FinancialHighlightCreate) createSpec() (*FinancialHighlight, *sqlgraph.CreateSpec) {
	var (
		_node = &FinancialHighlight{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(financialhighlight.Table, sqlgraph.NewFieldSpec(financialhighlight.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Period(); ok {
		_spec.SetField(financialhighlight.FieldPeriod, field.TypeString, value)
		_node.Period = value
	}
	if value, ok := _c.mutation.Currency(); ok {
		_spec.SetField(financialhighlight.FieldCurrency, field.TypeString, value)
		_node.Currency = &value
	}
	if value, ok := _c.mutation.Revenue(); ok {
		_spec.SetField(financialhighlight.FieldRevenue, field.TypeFloat64, value)
		_node.Revenue = value
	}
	if value, ok := _c.mutation.Ebitda(); ok {
		_spec.SetField(financialhighlight.FieldEbitda, field.TypeFloat64, value)
		_node.Ebitda = value
	}
	if value, ok := _c.mutation.EbitdaMargin(); ok {
		_spec.SetField(financialhighlight.FieldEbitdaMargin, field.TypeFloat64, value)
		_node.EbitdaMargin = value
	}
	if value, ok := _c.mutation.Ebit(); ok {
		_spec.SetField(financialhighlight.FieldEbit, field.TypeFloat64, value)
		_node.Ebit = value
	}
	if value, ok := _c.mutation.EbitMargin(); ok {
		_spec.SetField(financialhighlight.FieldEbitMargin, field.TypeFloat64, value)
		_node.EbitMargin = value
	}
	if value, ok := _c.mutation.NetProfitAfterTax(); ok {
		_spec.SetField(financialhighlight.FieldNetProfitAfterTax, field.TypeFloat64, value)
		_node.NetProfitAfterTax = value
	}
	if value, ok := _c.mutation.Capex(); ok {
		_spec.SetField(financialhighlight.FieldCapex, field.TypeFloat64, value)
		_node.Capex = value
	}
	if value, ok := _c.mutation.NetDebt(); ok {
		_spec.SetField(financialhighlight.FieldNetDebt, field.TypeFloat64, value)
		_node.NetDebt = value
	}
	if nodes := _c.mutation.CompanyIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   financialhighlight.CompanyTable,
			Columns: []string{financialhighlight.CompanyColumn},
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

// FinancialHighlightCreateBulk is the builder for creating many FinancialHighlight entities in bulk.
type FinancialHighlightCreateBulk struct {
	config
	err      error
	builders []*FinancialHighlightCreate
}

// Save creates the FinancialHighlight entities in the database.
func (_c *FinancialHighlightCreateBulk) Save(ctx context.Context) ([]*FinancialHighlight, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*FinancialHighlight, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*FinancialHighlightMutation)
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
func (_c *FinancialHighlightCreateBulk) SaveX(ctx context.Context) []*FinancialHighlight {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FinancialHighlightCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FinancialHighlightCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
