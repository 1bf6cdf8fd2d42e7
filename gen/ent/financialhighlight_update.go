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
	"github.com/hunggoodkidz/data-extraction-module/gen/ent/financialhighlight"
	"github.com/hunggoodkidz/data-extraction-module/gen/ent/predicate"
)

// FinancialHighlightUpdate is the builder for updating FinancialHighlight entities.
type FinancialHighlightUpdate struct {
	config
	hooks    []Hook
	mutation *FinancialHighlightMutation
}

// Where appends a list predicates to the FinancialHighlightUpdate builder.
func (_u *FinancialHighlightUpdate) Where(ps ...predicate.FinancialHighlight) *FinancialHighlightUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCompanyID sets the "company_id" field.
func (_u *FinancialHighlightUpdate) SetCompanyID(v uuid.UUID) *FinancialHighlightUpdate {
	_u.mutation.SetCompanyID(v)
	return _u
}

// SetNillableCompanyID sets the "company_id" field if the given value is not nil.
func (_u *FinancialHighlightUpdate) SetNillableCompanyID(v *uuid.UUID) *FinancialHighlightUpdate {
	if v != nil {
		_u.SetCompanyID(*v)
	}
	return _u
}

// SetPeriod sets the "period" field.
func (_u *FinancialHighlightUpdate) SetPeriod(v string) *FinancialHighlightUpdate {
	_u.mutation.SetPeriod(v)
	return _u
}

// SetNillablePeriod sets the "period" field if the given value is not nil.
func (_u *FinancialHighlightUpdate) SetNillablePeriod(v *string) *FinancialHighlightUpdate {
	if v != nil {
		_u.SetPeriod(*v)
	}
	return _u
}

// SetCurrency sets the "currency" field.
func (_u *FinancialHighlightUpdate) SetCurrency(v string) *FinancialHighlightUpdate {
	_u.mutation.SetCurrency(v)
	return _u
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (_u *FinancialHighlightUpdate) SetNillableCurrency(v *string) *FinancialHighlightUpdate {
	if v != nil {
		_u.SetCurrency(*v)
	}
	return _u
}

// ClearCurrency clears the value of the "currency" field.
func (_u *FinancialHighlightUpdate) ClearCurrency() *FinancialHighlightUpdate {
	_u.mutation.ClearCurrency()
	return _u
}

// SetRevenue sets the "revenue" field.
func (_u *FinancialHighlightUpdate) SetRevenue(v float64) *FinancialHighlightUpdate {
	_u.mutation.ResetRevenue()
	_u.mutation.SetRevenue(v)
	return _u
}

// SetNillableRevenue sets the "revenue" field if the given value is not nil.
func (_u *FinancialHighlightUpdate) SetNillableRevenue(v *float64) *FinancialHighlightUpdate {
	if v != nil {
		_u.SetRevenue(*v)
	}
	return _u
}

// AddRevenue adds value to the "revenue" field.
func (_u *FinancialHighlightUpdate) AddRevenue(v float64) *FinancialHighlightUpdate {
	_u.mutation.AddRevenue(v)
	return _u
}

// SetEbitda sets the "ebitda" field.
func (_u *FinancialHighlightUpdate) SetEbitda(v float64) *FinancialHighlightUpdate {
	_u.mutation.ResetEbitda()
	_u.mutation.SetEbitda(v)
	return _u
}

// SetNillableEbitda sets the "ebitda" field if the given value is not nil.
func (_u *FinancialHighlightUpdate) SetNillableEbitda(v *float64) *FinancialHighlightUpdate {
	if v != nil {
		_u.SetEbitda(*v)
	}
	return _u
}

// AddEbitda adds value to the "ebitda" field.
func (_u *FinancialHighlightUpdate) AddEbitda(v float64) *FinancialHighlightUpdate {
	_u.mutation.AddEbitda(v)
	return _u
}

// SetEbitdaMargin sets the "ebitda_margin" field.
func (_u *FinancialHighlightUpdate) SetEbitdaMargin(v float64) *FinancialHighlightUpdate {
	_u.mutation.ResetEbitdaMargin()
	_u.mutation.SetEbitdaMargin(v)
	return _u
}

// SetNillableEbitdaMargin sets the "ebitda_margin" field if the given value is not nil.
func (_u *FinancialHighlightUpdate) SetNillableEbitdaMargin(v *float64) *FinancialHighlightUpdate {
	if v != nil {
		_u.SetEbitdaMargin(*v)
	}
	return _u
}

// AddEbitdaMargin adds value to the "ebitda_margin" field.
func (_u *FinancialHighlightUpdate) AddEbitdaMargin(v float64) *FinancialHighlightUpdate {
	_u.mutation.AddEbitdaMargin(v)
	return _u
}

// SetEbit sets the "ebit" field.
func (_u *FinancialHighlightUpdate) SetEbit(v float64) *FinancialHighlightUpdate {
	_u.mutation.ResetEbit()
	_u.mutation.SetEbit(v)
	return _u
}

// SetNillableEbit sets the "ebit" field if the given value is not nil.
func (_u *FinancialHighlightUpdate) SetNillableEbit(v *float64) *FinancialHighlightUpdate {
	if v != nil {
		_u.SetEbit(*v)
	}
	return _u
}

// AddEbit adds value to the "ebit" field.
func (_u *FinancialHighlightUpdate) AddEbit(v float64) *FinancialHighlightUpdate {
	_u.mutation.AddEbit(v)
	return _u
}

// SetEbitMargin sets the "ebit_margin" field.
func (_u *FinancialHighlightUpdate) SetEbitMargin(v float64) *FinancialHighlightUpdate {
	_u.mutation.ResetEbitMargin()
	_u.mutation.SetEbitMargin(v)
	return _u
}

// SetNillableEbitMargin sets the "ebit_margin" field if the given value is not nil.
func (_u *FinancialHighlightUpdate) SetNillableEbitMargin(v *float64) *FinancialHighlightUpdate {
	if v != nil {
		_u.SetEbitMargin(*v)
	}
	return _u
}

// AddEbitMargin adds value to the "ebit_margin" field.
func (_u *FinancialHighlightUpdate) AddEbitMargin(v float64) *FinancialHighlightUpdate {
	_u.mutation.AddEbitMargin(v)
	return _u
}

// SetNetProfitAfterTax sets the "net_profit_after_tax" field.
func (_u *FinancialHighlightUpdate) SetNetProfitAfterTax(v float64) *FinancialHighlightUpdate {
	_u.mutation.ResetNetProfitAfterTax()
	_u.mutation.SetNetProfitAfterTax(v)
	return _u
}

// SetNillableNetProfitAfterTax sets the "net_profit_after_tax" field if the given value is not nil.
func (_u *FinancialHighlightUpdate) SetNillableNetProfitAfterTax(v *float64) *FinancialHighlightUpdate {
	if v != nil {
		_u.SetNetProfitAfterTax(*v)
	}
	return _u
}

// AddNetProfitAfterTax adds value to the "net_profit_after_tax" field.
func (_u *FinancialHighlightUpdate) AddNetProfitAfterTax(v float64) *FinancialHighlightUpdate {
	_u.mutation.AddNetProfitAfterTax(v)
	return _u
}

// SetCapex sets the "capex" field.
func (_u *FinancialHighlightUpdate) SetCapex(v float64) *FinancialHighlightUpdate {
	_u.mutation.ResetCapex()
	_u.mutation.SetCapex(v)
	return _u
}

// SetNillableCapex sets the "capex" field if the given value is not nil.
func (_u *FinancialHighlightUpdate) SetNillableCapex(v *float64) *FinancialHighlightUpdate {
	if v != nil {
		_u.SetCapex(*v)
	}
	return _u
}

// AddCapex adds value to the "capex" field.
func (_u *FinancialHighlightUpdate) AddCapex(v float64) *FinancialHighlightUpdate {
	_u.mutation.AddCapex(v)
	return _u
}

// SetNetDebt sets the "net_debt" field.
func (_u *FinancialHighlightUpdate) SetNetDebt(v float64) *FinancialHighlightUpdate {
	_u.mutation.ResetNetDebt()
	_u.mutation.SetNetDebt(v)
	return _u
}

// SetNillableNetDebt sets the "net_debt" field if the given value is not nil.
func (_u *FinancialHighlightUpdate) SetNillableNetDebt(v *float64) *FinancialHighlightUpdate {
	if v != nil {
		_u.SetNetDebt(*v)
	}
	return _u
}

// AddNetDebt adds value to the "net_debt" field.
func (_u *FinancialHighlightUpdate) AddNetDebt(v float64) *FinancialHighlightUpdate {
	_u.mutation.AddNetDebt(v)
	return _u
}

// SetCompany sets the "company" edge to the Company entity.
func (_u *FinancialHighlightUpdate) SetCompany(v *Company) *FinancialHighlightUpdate {
	return _u.SetCompanyID(v.ID)
}

// Mutation returns the FinancialHighlightMutation object of the builder.
func (_u *FinancialHighlightUpdate) Mutation() *FinancialHighlightMutation {
	return _u.mutation
}

// ClearCompany clears the "company" edge to the Company entity.
func (_u *FinancialHighlightUpdate) ClearCompany() *FinancialHighlightUpdate {
	_u.mutation.ClearCompany()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *FinancialHighlightUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FinancialHighlightUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *FinancialHighlightUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FinancialHighlightUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FinancialHighlightUpdate) check() error {
	if _u.mutation.CompanyCleared() && len(_u.mutation.CompanyIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "FinancialHighlight.company"`)
	}
	return nil
}

func (_u *FinancialHighlightUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(financialhighlight.Table, financialhighlight.Columns, sqlgraph.NewFieldSpec(financialhighlight.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Period(); ok {
		_spec.SetField(financialhighlight.FieldPeriod, field.TypeString, value)
	}
	if value, ok := _u.mutation.Currency(); ok {
		_spec.SetField(financialhighlight.FieldCurrency, field.TypeString, value)
	}
	if _u.mutation.CurrencyCleared() {
		_spec.ClearField(financialhighlight.FieldCurrency, field.TypeString)
	}
	if value, ok := _u.mutation.Revenue(); ok {
		_spec.SetField(financialhighlight.FieldRevenue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRevenue(); ok {
		_spec.AddField(financialhighlight.FieldRevenue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Ebitda(); ok {
		_spec.SetField(financialhighlight.FieldEbitda, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEbitda(); ok {
		_spec.AddField(financialhighlight.FieldEbitda, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.EbitdaMargin(); ok {
		_spec.SetField(financialhighlight.FieldEbitdaMargin, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEbitdaMargin(); ok {
		_spec.AddField(financialhighlight.FieldEbitdaMargin, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Ebit(); ok {
		_spec.SetField(financialhighlight.FieldEbit, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEbit(); ok {
		_spec.AddField(financialhighlight.FieldEbit, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.EbitMargin(); ok {
		_spec.SetField(financialhighlight.FieldEbitMargin, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEbitMargin(); ok {
		_spec.AddField(financialhighlight.FieldEbitMargin, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.NetProfitAfterTax(); ok {
		_spec.SetField(financialhighlight.FieldNetProfitAfterTax, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedNetProfitAfterTax(); ok {
		_spec.AddField(financialhighlight.FieldNetProfitAfterTax, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Capex(); ok {
		_spec.SetField(financialhighlight.FieldCapex, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCapex(); ok {
		_spec.AddField(financialhighlight.FieldCapex, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.NetDebt(); ok {
		_spec.SetField(financialhighlight.FieldNetDebt, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedNetDebt(); ok {
		_spec.AddField(financialhighlight.FieldNetDebt, field.TypeFloat64, value)
	}
	if _u.mutation.CompanyCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CompanyIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{financialhighlight.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// FinancialHighlightUpdateOne is the builder for updating a single FinancialHighlight entity.
type FinancialHighlightUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FinancialHighlightMutation
}

// SetCompanyID sets the "company_id" field.
func (_u *FinancialHighlightUpdateOne) SetCompanyID(v uuid.UUID) *FinancialHighlightUpdateOne {
	_u.mutation.SetCompanyID(v)
	return _u
}

// SetNillableCompanyID sets the "company_id" field if the given value is not nil.
func (_u *FinancialHighlightUpdateOne) SetNillableCompanyID(v *uuid.UUID) *FinancialHighlightUpdateOne {
	if v != nil {
		_u.SetCompanyID(*v)
	}
	return _u
}

// SetPeriod sets the "period" field.
func (_u *FinancialHighlightUpdateOne) SetPeriod(v string) *FinancialHighlightUpdateOne {
	_u.mutation.SetPeriod(v)
	return _u
}

// SetNillablePeriod sets the "period" field if the given value is not nil.
func (_u *FinancialHighlightUpdateOne) SetNillablePeriod(v *string) *FinancialHighlightUpdateOne {
	if v != nil {
		_u.SetPeriod(*v)
	}
	return _u
}

// SetCurrency sets the "currency" field.
func (_u *FinancialHighlightUpdateOne) SetCurrency(v string) *FinancialHighlightUpdateOne {
	_u.mutation.SetCurrency(v)
	return _u
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (_u *FinancialHighlightUpdateOne) SetNillableCurrency(v *string) *FinancialHighlightUpdateOne {
	if v != nil {
		_u.SetCurrency(*v)
	}
	return _u
}

// ClearCurrency clears the value of the "currency" field.
func (_u *FinancialHighlightUpdateOne) ClearCurrency() *FinancialHighlightUpdateOne {
	_u.mutation.ClearCurrency()
	return _u
}

// SetRevenue sets the "revenue" field.
func (_u *FinancialHighlightUpdateOne) SetRevenue(v float64) *FinancialHighlightUpdateOne {
	_u.mutation.ResetRevenue()
	_u.mutation.SetRevenue(v)
	return _u
}

// SetNillableRevenue sets the "revenue" field if the given value is not nil.
func (_u *FinancialHighlightUpdateOne) SetNillableRevenue(v *float64) *FinancialHighlightUpdateOne {
	if v != nil {
		_u.SetRevenue(*v)
	}
	return _u
}

// AddRevenue adds value to the "revenue" field.
func (_u *FinancialHighlightUpdateOne) AddRevenue(v float64) *FinancialHighlightUpdateOne {
	_u.mutation.AddRevenue(v)
	return _u
}

// SetEbitda sets the "ebitda" field.
func (_u *FinancialHighlightUpdateOne) SetEbitda(v float64) *FinancialHighlightUpdateOne {
	_u.mutation.ResetEbitda()
	_u.mutation.SetEbitda(v)
	return _u
}

// SetNillableEbitda sets the "ebitda" field if the given value is not nil.
func (_u *FinancialHighlightUpdateOne) SetNillableEbitda(v *float64) *FinancialHighlightUpdateOne {
	if v != nil {
		_u.SetEbitda(*v)
	}
	return _u
}

// AddEbitda adds value to the "ebitda" field.
func (_u *FinancialHighlightUpdateOne) AddEbitda(v float64) *FinancialHighlightUpdateOne {
	_u.mutation.AddEbitda(v)
	return _u
}

// SetEbitdaMargin sets the "ebitda_margin" field.
func (_u *FinancialHighlightUpdateOne) SetEbitdaMargin(v float64) *FinancialHighlightUpdateOne {
	_u.mutation.ResetEbitdaMargin()
	_u.mutation.SetEbitdaMargin(v)
	return _u
}

// SetNillableEbitdaMargin sets the "ebitda_margin" field if the given value is not nil.
func (_u *FinancialHighlightUpdateOne) SetNillableEbitdaMargin(v *float64) *FinancialHighlightUpdateOne {
	if v != nil {
		_u.SetEbitdaMargin(*v)
	}
	return _u
}

// AddEbitdaMargin adds value to the "ebitda_margin" field.
func (_u *FinancialHighlightUpdateOne) AddEbitdaMargin(v float64) *FinancialHighlightUpdateOne {
	_u.mutation.AddEbitdaMargin(v)
	return _u
}

// SetEbit sets the "ebit" field.
func (_u *FinancialHighlightUpdateOne) SetEbit(v float64) *FinancialHighlightUpdateOne {
	_u.mutation.ResetEbit()
	_u.mutation.SetEbit(v)
	return _u
}

// SetNillableEbit sets the "ebit" field if the given value is not nil.
func (_u *FinancialHighlightUpdateOne) SetNillableEbit(v *float64) *FinancialHighlightUpdateOne {
	if v != nil {
		_u.SetEbit(*v)
	}
	return _u
}

// AddEbit adds value to the "ebit" field.
func (_u *FinancialHighlightUpdateOne) AddEbit(v float64) *FinancialHighlightUpdateOne {
	_u.mutation.AddEbit(v)
	return _u
}

// SetEbitMargin sets the "ebit_margin" field.
func (_u *FinancialHighlightUpdateOne) SetEbitMargin(v float64) *FinancialHighlightUpdateOne {
	_u.mutation.ResetEbitMargin()
	_u.mutation.SetEbitMargin(v)
	return _u
}

// SetNillableEbitMargin sets the "ebit_margin" field if the given value is not nil.
func (_u *FinancialHighlightUpdateOne) SetNillableEbitMargin(v *float64) *FinancialHighlightUpdateOne {
	if v != nil {
		_u.SetEbitMargin(*v)
	}
	return _u
}

// AddEbitMargin adds value to the "ebit_margin" field.
func (_u *FinancialHighlightUpdateOne) AddEbitMargin(v float64) *FinancialHighlightUpdateOne {
	_u.mutation.AddEbitMargin(v)
	return _u
}

// SetNetProfitAfterTax sets the "net_profit_after_tax" field.
func (_u *FinancialHighlightUpdateOne) SetNetProfitAfterTax(v float64) *FinancialHighlightUpdateOne {
	_u.mutation.ResetNetProfitAfterTax()
	_u.mutation.SetNetProfitAfterTax(v)
	return _u
}

// SetNillableNetProfitAfterTax sets the "net_profit_after_tax" field if the given value is not nil.
func (_u *FinancialHighlightUpdateOne) SetNillableNetProfitAfterTax(v *float64) *FinancialHighlightUpdateOne {
	if v != nil {
		_u.SetNetProfitAfterTax(*v)
	}
	return _u
}

// AddNetProfitAfterTax adds value to the "net_profit_after_tax" field.
func (_u *FinancialHighlightUpdateOne) AddNetProfitAfterTax(v float64) *FinancialHighlightUpdateOne {
	_u.mutation.AddNetProfitAfterTax(v)
	return _u
}

// SetCapex sets the "capex" field.
func (_u *FinancialHighlightUpdateOne) SetCapex(v float64) *FinancialHighlightUpdateOne {
	_u.mutation.ResetCapex()
	_u.mutation.SetCapex(v)
	return _u
}

// SetNillableCapex sets the "capex" field if the given value is not nil.
func (_u *FinancialHighlightUpdateOne) SetNillableCapex(v *float64) *FinancialHighlightUpdateOne {
	if v != nil {
		_u.SetCapex(*v)
	}
	return _u
}

// AddCapex adds value to the "capex" field.
func (_u *FinancialHighlightUpdateOne) AddCapex(v float64) *FinancialHighlightUpdateOne {
	_u.mutation.AddCapex(v)
	return _u
}

// SetNetDebt sets the "net_debt" field.
func (_u *FinancialHighlightUpdateOne) SetNetDebt(v float64) *FinancialHighlightUpdateOne {
	_u.mutation.ResetNetDebt()
	_u.mutation.SetNetDebt(v)
	return _u
}

// SetNillableNetDebt sets the "net_debt" field if the given value is not nil.
func (_u *FinancialHighlightUpdateOne) SetNillableNetDebt(v *float64) *FinancialHighlightUpdateOne {
	if v != nil {
		_u.SetNetDebt(*v)
	}
	return _u
}

// AddNetDebt adds value to the "net_debt" field.
func (_u *FinancialHighlightUpdateOne) AddNetDebt(v float64) *FinancialHighlightUpdateOne {
	_u.mutation.AddNetDebt(v)
	return _u
}

// SetCompany sets the "company" edge to the Company entity.
func (_u *FinancialHighlightUpdateOne) SetCompany(v *Company) *FinancialHighlightUpdateOne {
	return _u.SetCompanyID(v.ID)
}

// Mutation returns the FinancialHighlightMutation object of the builder.
func (_u *FinancialHighlightUpdateOne) Mutation() *FinancialHighlightMutation {
	return _u.mutation
}

// ClearCompany clears the "company" edge to the Company entity.
func (_u *FinancialHighlightUpdateOne) ClearCompany() *FinancialHighlightUpdateOne {
	_u.mutation.ClearCompany()
	return _u
}

// Where appends a list predicates to the FinancialHighlightUpdate builder.
func (_u *FinancialHighlightUpdateOne) Where(ps ...predicate.FinancialHighlight) *FinancialHighlightUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *FinancialHighlightUpdateOne) Select(field string, fields ...string) *FinancialHighlightUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated FinancialHighlight entity.
func (_u *FinancialHighlightUpdateOne) Save(ctx context.Context) (*FinancialHighlight, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FinancialHighlightUpdateOne) SaveX(ctx context.Context) *FinancialHighlight {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *FinancialHighlightUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FinancialHighlightUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FinancialHighlightUpdateOne) check() error {
	if _u.mutation.CompanyCleared() && len(_u.mutation.CompanyIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "FinancialHighlight.company"`)
	}
	return nil
}

func (_u *FinancialHighlightUpdateOne) sqlSave(ctx context.Context) (_node *FinancialHighlight, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(financialhighlight.Table, financialhighlight.Columns, sqlgraph.NewFieldSpec(financialhighlight.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "FinancialHighlight.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, financialhighlight.FieldID)
		for _, f := range fields {
			if !financialhighlight.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != financialhighlight.FieldID {
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
	if value, ok := _u.mutation.Period(); ok {
		_spec.SetField(financialhighlight.FieldPeriod, field.TypeString, value)
	}
	if value, ok := _u.mutation.Currency(); ok {
		_spec.SetField(financialhighlight.FieldCurrency, field.TypeString, value)
	}
	if _u.mutation.CurrencyCleared() {
		_spec.ClearField(financialhighlight.FieldCurrency, field.TypeString)
	}
	if value, ok := _u.mutation.Revenue(); ok {
		_spec.SetField(financialhighlight.FieldRevenue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRevenue(); ok {
		_spec.AddField(financialhighlight.FieldRevenue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Ebitda(); ok {
		_spec.SetField(financialhighlight.FieldEbitda, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEbitda(); ok {
		_spec.AddField(financialhighlight.FieldEbitda, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.EbitdaMargin(); ok {
		_spec.SetField(financialhighlight.FieldEbitdaMargin, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEbitdaMargin(); ok {
		_spec.AddField(financialhighlight.FieldEbitdaMargin, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Ebit(); ok {
		_spec.SetField(financialhighlight.FieldEbit, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEbit(); ok {
		_spec.AddField(financialhighlight.FieldEbit, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.EbitMargin(); ok {
		_spec.SetField(financialhighlight.FieldEbitMargin, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEbitMargin(); ok {
		_spec.AddField(financialhighlight.FieldEbitMargin, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.NetProfitAfterTax(); ok {
		_spec.SetField(financialhighlight.FieldNetProfitAfterTax, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedNetProfitAfterTax(); ok {
		_spec.AddField(financialhighlight.FieldNetProfitAfterTax, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Capex(); ok {
		_spec.SetField(financialhighlight.FieldCapex, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCapex(); ok {
		_spec.AddField(financialhighlight.FieldCapex, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.NetDebt(); ok {
		_spec.SetField(financialhighlight.FieldNetDebt, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedNetDebt(); ok {
		_spec.AddField(financialhighlight.FieldNetDebt, field.TypeFloat64, value)
	}
	if _u.mutation.CompanyCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CompanyIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &FinancialHighlight{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{financialhighlight.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
