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
	"github.com/hunggoodkidz/data-extraction-module/gen/ent/fund"
	"github.com/hunggoodkidz/data-extraction-module/gen/ent/investment"
	"github.com/hunggoodkidz/data-extraction-module/gen/ent/predicate"
)

// InvestmentUpdate is the builder for updating Investment entities.
type InvestmentUpdate struct {
	config
	hooks    []Hook
	mutation *InvestmentMutation
}

// Where appends a list predicates to the InvestmentUpdate builder.
func (_u *InvestmentUpdate) Where(ps ...predicate.Investment) *InvestmentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFundID sets the "fund_id" field.
func (_u *InvestmentUpdate) SetFundID(v uuid.UUID) *InvestmentUpdate {
	_u.mutation.SetFundID(v)
	return _u
}

// SetNillableFundID sets the "fund_id" field if the given value is not nil.
func (_u *InvestmentUpdate) SetNillableFundID(v *uuid.UUID) *InvestmentUpdate {
	if v != nil {
		_u.SetFundID(*v)
	}
	return _u
}

// ClearFundID clears the value of the "fund_id" field.
func (_u *InvestmentUpdate) ClearFundID() *InvestmentUpdate {
	_u.mutation.ClearFundID()
	return _u
}

// SetCompanyID sets the "company_id" field.
func (_u *InvestmentUpdate) SetCompanyID(v uuid.UUID) *InvestmentUpdate {
	_u.mutation.SetCompanyID(v)
	return _u
}

// SetNillableCompanyID sets the "company_id" field if the given value is not nil.
func (_u *InvestmentUpdate) SetNillableCompanyID(v *uuid.UUID) *InvestmentUpdate {
	if v != nil {
		_u.SetCompanyID(*v)
	}
	return _u
}

// SetFundRole sets the "fund_role" field.
func (_u *InvestmentUpdate) SetFundRole(v string) *InvestmentUpdate {
	_u.mutation.SetFundRole(v)
	return _u
}

// SetNillableFundRole sets the "fund_role" field if the given value is not nil.
func (_u *InvestmentUpdate) SetNillableFundRole(v *string) *InvestmentUpdate {
	if v != nil {
		_u.SetFundRole(*v)
	}
	return _u
}

// ClearFundRole clears the value of the "fund_role" field.
func (_u *InvestmentUpdate) ClearFundRole() *InvestmentUpdate {
	_u.mutation.ClearFundRole()
	return _u
}

// SetInvestmentType sets the "investment_type" field.
func (_u *InvestmentUpdate) SetInvestmentType(v string) *InvestmentUpdate {
	_u.mutation.SetInvestmentType(v)
	return _u
}

// SetNillableInvestmentType sets the "investment_type" field if the given value is not nil.
func (_u *InvestmentUpdate) SetNillableInvestmentType(v *string) *InvestmentUpdate {
	if v != nil {
		_u.SetInvestmentType(*v)
	}
	return _u
}

// ClearInvestmentType clears the value of the "investment_type" field.
func (_u *InvestmentUpdate) ClearInvestmentType() *InvestmentUpdate {
	_u.mutation.ClearInvestmentType()
	return _u
}

// SetOwnershipPercent sets the "ownership_percent" field.
func (_u *InvestmentUpdate) SetOwnershipPercent(v float64) *InvestmentUpdate {
	_u.mutation.ResetOwnershipPercent()
	_u.mutation.SetOwnershipPercent(v)
	return _u
}

// SetNillableOwnershipPercent sets the "ownership_percent" field if the given value is not nil.
func (_u *InvestmentUpdate) SetNillableOwnershipPercent(v *float64) *InvestmentUpdate {
	if v != nil {
		_u.SetOwnershipPercent(*v)
	}
	return _u
}

// AddOwnershipPercent adds value to the "ownership_percent" field.
func (_u *InvestmentUpdate) AddOwnershipPercent(v float64) *InvestmentUpdate {
	_u.mutation.AddOwnershipPercent(v)
	return _u
}

// SetDateOfFirstCompletion sets the "date_of_first_completion" field.
func (_u *InvestmentUpdate) SetDateOfFirstCompletion(v time.Time) *InvestmentUpdate {
	_u.mutation.SetDateOfFirstCompletion(v)
	return _u
}

// SetNillableDateOfFirstCompletion sets the "date_of_first_completion" field if the given value is not nil.
func (_u *InvestmentUpdate) SetNillableDateOfFirstCompletion(v *time.Time) *InvestmentUpdate {
	if v != nil {
		_u.SetDateOfFirstCompletion(*v)
	}
	return _u
}

// ClearDateOfFirstCompletion clears the value of the "date_of_first_completion" field.
func (_u *InvestmentUpdate) ClearDateOfFirstCompletion() *InvestmentUpdate {
	_u.mutation.ClearDateOfFirstCompletion()
	return _u
}

// SetTransactionValue sets the "transaction_value" field.
func (_u *InvestmentUpdate) SetTransactionValue(v float64) *InvestmentUpdate {
	_u.mutation.ResetTransactionValue()
	_u.mutation.SetTransactionValue(v)
	return _u
}

// SetNillableTransactionValue sets the "transaction_value" field if the given value is not nil.
func (_u *InvestmentUpdate) SetNillableTransactionValue(v *float64) *InvestmentUpdate {
	if v != nil {
		_u.SetTransactionValue(*v)
	}
	return _u
}

// AddTransactionValue adds value to the "transaction_value" field.
func (_u *InvestmentUpdate) AddTransactionValue(v float64) *InvestmentUpdate {
	_u.mutation.AddTransactionValue(v)
	return _u
}

// SetCurrentCost sets the "current_cost" field.
func (_u *InvestmentUpdate) SetCurrentCost(v float64) *InvestmentUpdate {
	_u.mutation.ResetCurrentCost()
	_u.mutation.SetCurrentCost(v)
	return _u
}

// SetNillableCurrentCost sets the "current_cost" field if the given value is not nil.
func (_u *InvestmentUpdate) SetNillableCurrentCost(v *float64) *InvestmentUpdate {
	if v != nil {
		_u.SetCurrentCost(*v)
	}
	return _u
}

// AddCurrentCost adds value to the "current_cost" field.
func (_u *InvestmentUpdate) AddCurrentCost(v float64) *InvestmentUpdate {
	_u.mutation.AddCurrentCost(v)
	return _u
}

// SetFairValue sets the "fair_value" field.
func (_u *InvestmentUpdate) SetFairValue(v float64) *InvestmentUpdate {
	_u.mutation.ResetFairValue()
	_u.mutation.SetFairValue(v)
	return _u
}

// SetNillableFairValue sets the "fair_value" field if the given value is not nil.
func (_u *InvestmentUpdate) SetNillableFairValue(v *float64) *InvestmentUpdate {
	if v != nil {
		_u.SetFairValue(*v)
	}
	return _u
}

// AddFairValue adds value to the "fair_value" field.
func (_u *InvestmentUpdate) AddFairValue(v float64) *InvestmentUpdate {
	_u.mutation.AddFairValue(v)
	return _u
}

// SetFund sets the "fund" edge to the Fund entity.
func (_u *InvestmentUpdate) SetFund(v *Fund) *InvestmentUpdate {
	return _u.SetFundID(v.ID)
}

// SetCompany sets the "company" edge to the Company entity.
func (_u *InvestmentUpdate) SetCompany(v *Company) *InvestmentUpdate {
	return _u.SetCompanyID(v.ID)
}

// Mutation returns the InvestmentMutation object of the builder.
func (_u *InvestmentUpdate) Mutation() *InvestmentMutation {
	return _u.mutation
}

// ClearFund clears the "fund" edge to the Fund entity.
func (_u *InvestmentUpdate) ClearFund() *InvestmentUpdate {
	_u.mutation.ClearFund()
	return _u
}

// ClearCompany clears the "company" edge to the Company entity.
func (_u *InvestmentUpdate) ClearCompany() *InvestmentUpdate {
	_u.mutation.ClearCompany()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *InvestmentUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InvestmentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *InvestmentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InvestmentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InvestmentUpdate) check() error {
	if _u.mutation.CompanyCleared() && len(_u.mutation.CompanyIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Investment.company"`)
	}
	return nil
}

func (_u *InvestmentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(investment.Table, investment.Columns, sqlgraph.NewFieldSpec(investment.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.FundRole(); ok {
		_spec.SetField(investment.FieldFundRole, field.TypeString, value)
	}
	if _u.mutation.FundRoleCleared() {
		_spec.ClearField(investment.FieldFundRole, field.TypeString)
	}
	if value, ok := _u.mutation.InvestmentType(); ok {
		_spec.SetField(investment.FieldInvestmentType, field.TypeString, value)
	}
	if _u.mutation.InvestmentTypeCleared() {
		_spec.ClearField(investment.FieldInvestmentType, field.TypeString)
	}
	if value, ok := _u.mutation.OwnershipPercent(); ok {
		_spec.SetField(investment.FieldOwnershipPercent, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedOwnershipPercent(); ok {
		_spec.AddField(investment.FieldOwnershipPercent, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.DateOfFirstCompletion(); ok {
		_spec.SetField(investment.FieldDateOfFirstCompletion, field.TypeTime, value)
	}
	if _u.mutation.DateOfFirstCompletionCleared() {
		_spec.ClearField(investment.FieldDateOfFirstCompletion, field.TypeTime)
	}
	if value, ok := _u.mutation.TransactionValue(); ok {
		_spec.SetField(investment.FieldTransactionValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTransactionValue(); ok {
		_spec.AddField(investment.FieldTransactionValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CurrentCost(); ok {
		_spec.SetField(investment.FieldCurrentCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCurrentCost(); ok {
		_spec.AddField(investment.FieldCurrentCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.FairValue(); ok {
		_spec.SetField(investment.FieldFairValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedFairValue(); ok {
		_spec.AddField(investment.FieldFairValue, field.TypeFloat64, value)
	}
	if _u.mutation.FundCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FundIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CompanyCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CompanyIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{investment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// InvestmentUpdateOne is the builder for updating a single Investment entity.
type InvestmentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InvestmentMutation
}

// SetFundID sets the "fund_id" field.
func (_u *InvestmentUpdateOne) SetFundID(v uuid.UUID) *InvestmentUpdateOne {
	_u.mutation.SetFundID(v)
	return _u
}

// SetNillableFundID sets the "fund_id" field if the given value is not nil.
func (_u *InvestmentUpdateOne) SetNillableFundID(v *uuid.UUID) *InvestmentUpdateOne {
	if v != nil {
		_u.SetFundID(*v)
	}
	return _u
}

// ClearFundID clears the value of the "fund_id" field.
func (_u *InvestmentUpdateOne) ClearFundID() *InvestmentUpdateOne {
	_u.mutation.ClearFundID()
	return _u
}

// SetCompanyID sets the "company_id" field.
func (_u *InvestmentUpdateOne) SetCompanyID(v uuid.UUID) *InvestmentUpdateOne {
	_u.mutation.SetCompanyID(v)
	return _u
}

// SetNillableCompanyID sets the "company_id" field if the given value is not nil.
func (_u *InvestmentUpdateOne) SetNillableCompanyID(v *uuid.UUID) *InvestmentUpdateOne {
	if v != nil {
		_u.SetCompanyID(*v)
	}
	return _u
}

// SetFundRole sets the "fund_role" field.
func (_u *InvestmentUpdateOne) SetFundRole(v string) *InvestmentUpdateOne {
	_u.mutation.SetFundRole(v)
	return _u
}

// SetNillableFundRole sets the "fund_role" field if the given value is not nil.
func (_u *InvestmentUpdateOne) SetNillableFundRole(v *string) *InvestmentUpdateOne {
	if v != nil {
		_u.SetFundRole(*v)
	}
	return _u
}

// ClearFundRole clears the value of the "fund_role" field.
func (_u *InvestmentUpdateOne) ClearFundRole() *InvestmentUpdateOne {
	_u.mutation.ClearFundRole()
	return _u
}

// SetInvestmentType sets the "investment_type" field.
func (_u *InvestmentUpdateOne) SetInvestmentType(v string) *InvestmentUpdateOne {
	_u.mutation.SetInvestmentType(v)
	return _u
}

// SetNillableInvestmentType sets the "investment_type" field if the given value is not nil.
func (_u *InvestmentUpdateOne) SetNillableInvestmentType(v *string) *InvestmentUpdateOne {
	if v != nil {
		_u.SetInvestmentType(*v)
	}
	return _u
}

// ClearInvestmentType clears the value of the "investment_type" field.
func (_u *InvestmentUpdateOne) ClearInvestmentType() *InvestmentUpdateOne {
	_u.mutation.ClearInvestmentType()
	return _u
}

// SetOwnershipPercent sets the "ownership_percent" field.
func (_u *InvestmentUpdateOne) SetOwnershipPercent(v float64) *InvestmentUpdateOne {
	_u.mutation.ResetOwnershipPercent()
	_u.mutation.SetOwnershipPercent(v)
	return _u
}

// SetNillableOwnershipPercent sets the "ownership_percent" field if the given value is not nil.
func (_u *InvestmentUpdateOne) SetNillableOwnershipPercent(v *float64) *InvestmentUpdateOne {
	if v != nil {
		_u.SetOwnershipPercent(*v)
	}
	return _u
}

// AddOwnershipPercent adds value to the "ownership_percent" field.
func (_u *InvestmentUpdateOne) AddOwnershipPercent(v float64) *InvestmentUpdateOne {
	_u.mutation.AddOwnershipPercent(v)
	return _u
}

// SetDateOfFirstCompletion sets the "date_of_first_completion" field.
func (_u *InvestmentUpdateOne) SetDateOfFirstCompletion(v time.Time) *InvestmentUpdateOne {
	_u.mutation.SetDateOfFirstCompletion(v)
	return _u
}

// SetNillableDateOfFirstCompletion sets the "date_of_first_completion" field if the given value is not nil.
func (_u *InvestmentUpdateOne) SetNillableDateOfFirstCompletion(v *time.Time) *InvestmentUpdateOne {
	if v != nil {
		_u.SetDateOfFirstCompletion(*v)
	}
	return _u
}

// ClearDateOfFirstCompletion clears the value of the "date_of_first_completion" field.
func (_u *InvestmentUpdateOne) ClearDateOfFirstCompletion() *InvestmentUpdateOne {
	_u.mutation.ClearDateOfFirstCompletion()
	return _u
}

// SetTransactionValue sets the "transaction_value" field.
func (_u *InvestmentUpdateOne) SetTransactionValue(v float64) *InvestmentUpdateOne {
	_u.mutation.ResetTransactionValue()
	_u.mutation.SetTransactionValue(v)
	return _u
}

// SetNillableTransactionValue sets the "transaction_value" field if the given value is not nil.
func (_u *InvestmentUpdateOne) SetNillableTransactionValue(v *float64) *InvestmentUpdateOne {
	if v != nil {
		_u.SetTransactionValue(*v)
	}
	return _u
}

// AddTransactionValue adds value to the "transaction_value" field.
func (_u *InvestmentUpdateOne) AddTransactionValue(v float64) *InvestmentUpdateOne {
	_u.mutation.AddTransactionValue(v)
	return _u
}

// SetCurrentCost sets the "current_cost" field.
func (_u *InvestmentUpdateOne) SetCurrentCost(v float64) *InvestmentUpdateOne {
	_u.mutation.ResetCurrentCost()
	_u.mutation.SetCurrentCost(v)
	return _u
}

// SetNillableCurrentCost sets the "current_cost" field if the given value is not nil.
func (_u *InvestmentUpdateOne) SetNillableCurrentCost(v *float64) *InvestmentUpdateOne {
	if v != nil {
		_u.SetCurrentCost(*v)
	}
	return _u
}

// AddCurrentCost adds value to the "current_cost" field.
func (_u *InvestmentUpdateOne) AddCurrentCost(v float64) *InvestmentUpdateOne {
	_u.mutation.AddCurrentCost(v)
	return _u
}

// SetFairValue sets the "fair_value" field.
func (_u *InvestmentUpdateOne) SetFairValue(v float64) *InvestmentUpdateOne {
	_u.mutation.ResetFairValue()
	_u.mutation.SetFairValue(v)
	return _u
}

// SetNillableFairValue sets the "fair_value" field if the given value is not nil.
func (_u *InvestmentUpdateOne) SetNillableFairValue(v *float64) *InvestmentUpdateOne {
	if v != nil {
		_u.SetFairValue(*v)
	}
	return _u
}

// AddFairValue adds value to the "fair_value" field.
func (_u *InvestmentUpdateOne) AddFairValue(v float64) *InvestmentUpdateOne {
	_u.mutation.AddFairValue(v)
	return _u
}

// SetFund sets the "fund" edge to the Fund entity.
func (_u *InvestmentUpdateOne) SetFund(v *Fund) *InvestmentUpdateOne {
	return _u.SetFundID(v.ID)
}

// SetCompany sets the "company" edge to the Company entity.
func (_u *InvestmentUpdateOne) SetCompany(v *Company) *InvestmentUpdateOne {
	return _u.SetCompanyID(v.ID)
}

// Mutation returns the InvestmentMutation object of the builder.
func (_u *InvestmentUpdateOne) Mutation() *InvestmentMutation {
	return _u.mutation
}

// ClearFund clears the "fund" edge to the Fund entity.
func (_u *InvestmentUpdateOne) ClearFund() *InvestmentUpdateOne {
	_u.mutation.ClearFund()
	return _u
}

// ClearCompany clears the "company" edge to the Company entity.
func (_u *InvestmentUpdateOne) ClearCompany() *InvestmentUpdateOne {
	_u.mutation.ClearCompany()
	return _u
}

// Where appends a list predicates to the InvestmentUpdate builder.
func (_u *InvestmentUpdateOne) Where(ps ...predicate.Investment) *InvestmentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *InvestmentUpdateOne) Select(field string, fields ...string) *InvestmentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Investment entity.
func (_u *InvestmentUpdateOne) Save(ctx context.Context) (*Investment, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InvestmentUpdateOne) SaveX(ctx context.Context) *Investment {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *InvestmentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InvestmentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InvestmentUpdateOne) check() error {
	if _u.mutation.CompanyCleared() && len(_u.mutation.CompanyIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Investment.company"`)
	}
	return nil
}

func (_u *InvestmentUpdateOne) sqlSave(ctx context.Context) (_node *Investment, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(investment.Table, investment.Columns, sqlgraph.NewFieldSpec(investment.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Investment.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, investment.FieldID)
		for _, f := range fields {
			if !investment.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != investment.FieldID {
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
	if value, ok := _u.mutation.FundRole(); ok {
		_spec.SetField(investment.FieldFundRole, field.TypeString, value)
	}
	if _u.mutation.FundRoleCleared() {
		_spec.ClearField(investment.FieldFundRole, field.TypeString)
	}
	if value, ok := _u.mutation.InvestmentType(); ok {
		_spec.SetField(investment.FieldInvestmentType, field.TypeString, value)
	}
	if _u.mutation.InvestmentTypeCleared() {
		_spec.ClearField(investment.FieldInvestmentType, field.TypeString)
	}
	if value, ok := _u.mutation.OwnershipPercent(); ok {
		_spec.SetField(investment.FieldOwnershipPercent, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedOwnershipPercent(); ok {
		_spec.AddField(investment.FieldOwnershipPercent, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.DateOfFirstCompletion(); ok {
		_spec.SetField(investment.FieldDateOfFirstCompletion, field.TypeTime, value)
	}
	if _u.mutation.DateOfFirstCompletionCleared() {
		_spec.ClearField(investment.FieldDateOfFirstCompletion, field.TypeTime)
	}
	if value, ok := _u.mutation.TransactionValue(); ok {
		_spec.SetField(investment.FieldTransactionValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTransactionValue(); ok {
		_spec.AddField(investment.FieldTransactionValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CurrentCost(); ok {
		_spec.SetField(investment.FieldCurrentCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCurrentCost(); ok {
		_spec.AddField(investment.FieldCurrentCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.FairValue(); ok {
		_spec.SetField(investment.FieldFairValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedFairValue(); ok {
		_spec.AddField(investment.FieldFairValue, field.TypeFloat64, value)
	}
	if _u.mutation.FundCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FundIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CompanyCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CompanyIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Investment{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{investment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
