// Code generated by ent, DO NOT EDIT.

package investment

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/hunggoodkidz/data-extraction-module/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Investment {
	return predicate.Investment(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Investment {
	return predicate.Investment(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Investment {
	return predicate.Investment(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Investment {
	return predicate.Investment(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Investment {
	return predicate.Investment(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Investment {
	return predicate.Investment(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Investment {
	return predicate.Investment(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Investment {
	return predicate.Investment(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Investment {
	return predicate.Investment(sql.FieldLTE(FieldID, id))
}

// FundID applies equality check predicate on the "fund_id" field. It's identical to FundIDEQ.
func FundID(v uuid.UUID) predicate.Investment {
	return predicate.Investment(sql.FieldEQ(FieldFundID, v))
}

// CompanyID applies equality check predicate on the "company_id" field. It's identical to CompanyIDEQ.
func CompanyID(v uuid.UUID) predicate.Investment {
	return predicate.Investment(sql.FieldEQ(FieldCompanyID, v))
}

// FundRole applies equality check predicate on the "fund_role" field. It's identical to FundRoleEQ.
func FundRole(v string) predicate.Investment {
	return predicate.Investment(sql.FieldEQ(FieldFundRole, v))
}

// InvestmentType applies equality check predicate on the "investment_type" field. It's identical to InvestmentTypeEQ.
func InvestmentType(v string) predicate.Investment {
	return predicate.Investment(sql.FieldEQ(FieldInvestmentType, v))
}

// OwnershipPercent applies equality check predicate on the "ownership_percent" field. It's identical to OwnershipPercentEQ.
func OwnershipPercent(v float64) predicate.Investment {
	return predicate.Investment(sql.FieldEQ(FieldOwnershipPercent, v))
}

// DateOfFirstCompletion applies equality check predicate on the "date_of_first_completion" field. It's identical to DateOfFirstCompletionEQ.
func DateOfFirstCompletion(v time.Time) predicate.Investment {
	return predicate.Investment(sql.FieldEQ(FieldDateOfFirstCompletion, v))
}

// TransactionValue applies equality check predicate on the "transaction_value" field. It's identical to TransactionValueEQ.
func TransactionValue(v float64) predicate.Investment {
	return predicate.Investment(sql.FieldEQ(FieldTransactionValue, v))
}

// CurrentCost applies equality check predicate on the "current_cost" field. It's identical to CurrentCostEQ.
func CurrentCost(v float64) predicate.Investment {
	return predicate.Investment(sql.FieldEQ(FieldCurrentCost, v))
}

// FairValue applies equality check predicate on the "fair_value" field. It's identical to FairValueEQ.
func FairValue(v float64) predicate.Investment {
	return predicate.Investment(sql.FieldEQ(FieldFairValue, v))
}

// FundIDEQ applies the EQ predicate on the "fund_id" field.
func FundIDEQ(v uuid.UUID) predicate.Investment {
	return predicate.Investment(sql.FieldEQ(FieldFundID, v))
}

// FundIDNEQ applies the NEQ predicate on the "fund_id" field.
func FundIDNEQ(v uuid.UUID) predicate.Investment {
	return predicate.Investment(sql.FieldNEQ(FieldFundID, v))
}

// FundIDIn applies the In predicate on the "fund_id" field.
func FundIDIn(vs ...uuid.UUID) predicate.Investment {
	return predicate.Investment(sql.FieldIn(FieldFundID, vs...))
}

// FundIDNotIn applies the NotIn predicate on the "fund_id" field.
func FundIDNotIn(vs ...uuid.UUID) predicate.Investment {
	return predicate.Investment(sql.FieldNotIn(FieldFundID, vs...))
}

// FundIDIsNil applies the IsNil predicate on the "fund_id" field.
func FundIDIsNil() predicate.Investment {
	return predicate.Investment(sql.FieldIsNull(FieldFundID))
}

// FundIDNotNil applies the NotNil predicate on the "fund_id" field.
func FundIDNotNil() predicate.Investment {
	return predicate.Investment(sql.FieldNotNull(FieldFundID))
}

// CompanyIDEQ applies the EQ predicate on the "company_id" field.
func CompanyIDEQ(v uuid.UUID) predicate.Investment {
	return predicate.Investment(sql.FieldEQ(FieldCompanyID, v))
}

// CompanyIDNEQ applies the NEQ predicate on the "company_id" field.
func CompanyIDNEQ(v uuid.UUID) predicate.Investment {
	return predicate.Investment(sql.FieldNEQ(FieldCompanyID, v))
}

// CompanyIDIn applies the In predicate on the "company_id" field.
func CompanyIDIn(vs ...uuid.UUID) predicate.Investment {
	return predicate.Investment(sql.FieldIn(FieldCompanyID, vs...))
}

// CompanyIDNotIn applies the NotIn predicate on the "company_id" field.
func CompanyIDNotIn(vs ...uuid.UUID) predicate.Investment {
	return predicate.Investment(sql.FieldNotIn(FieldCompanyID, vs...))
}

// FundRoleEQ applies the EQ predicate on the "fund_role" field.
func FundRoleEQ(v string) predicate.Investment {
	return predicate.Investment(sql.FieldEQ(FieldFundRole, v))
}

// FundRoleNEQ applies the NEQ predicate on the "fund_role" field.
func FundRoleNEQ(v string) predicate.Investment {
	return predicate.Investment(sql.FieldNEQ(FieldFundRole, v))
}

// FundRoleIn applies the In predicate on the "fund_role" field.
func FundRoleIn(vs ...string) predicate.Investment {
	return predicate.Investment(sql.FieldIn(FieldFundRole, vs...))
}

// FundRoleNotIn applies the NotIn predicate on the "fund_role" field.
func FundRoleNotIn(vs ...string) predicate.Investment {
	return predicate.Investment(sql.FieldNotIn(FieldFundRole, vs...))
}

// FundRoleGT applies the GT predicate on the "fund_role" field.
func FundRoleGT(v string) predicate.Investment {
	return predicate.Investment(sql.FieldGT(FieldFundRole, v))
}

// FundRoleGTE applies the GTE predicate on the "fund_role" field.
func FundRoleGTE(v string) predicate.Investment {
	return predicate.Investment(sql.FieldGTE(FieldFundRole, v))
}

// FundRoleLT applies the LT predicate on the "fund_role" field.
func FundRoleLT(v string) predicate.Investment {
	return predicate.Investment(sql.FieldLT(FieldFundRole, v))
}

// FundRoleLTE applies the LTE predicate on the "fund_role" field.
func FundRoleLTE(v string) predicate.Investment {
	return predicate.Investment(sql.FieldLTE(FieldFundRole, v))
}

// FundRoleContains applies the Contains predicate on the "fund_role" field.
func FundRoleContains(v string) predicate.Investment {
	return predicate.Investment(sql.FieldContains(FieldFundRole, v))
}

// FundRoleHasPrefix applies the HasPrefix predicate on the "fund_role" field.
func FundRoleHasPrefix(v string) predicate.Investment {
	return predicate.Investment(sql.FieldHasPrefix(FieldFundRole, v))
}

// FundRoleHasSuffix applies the HasSuffix predicate on the "fund_role" field.
func FundRoleHasSuffix(v string) predicate.Investment {
	return predicate.Investment(sql.FieldHasSuffix(FieldFundRole, v))
}

// FundRoleIsNil applies the IsNil predicate on the "fund_role" field.
func FundRoleIsNil() predicate.Investment {
	return predicate.Investment(sql.FieldIsNull(FieldFundRole))
}

// FundRoleNotNil applies the NotNil predicate on the "fund_role" field.
func FundRoleNotNil() predicate.Investment {
	return predicate.Investment(sql.FieldNotNull(FieldFundRole))
}

// FundRoleEqualFold applies the EqualFold predicate on the "fund_role" field.
func FundRoleEqualFold(v string) predicate.Investment {
	return predicate.Investment(sql.FieldEqualFold(FieldFundRole, v))
}

// FundRoleContainsFold applies the ContainsFold predicate on the "fund_role" field.
func FundRoleContainsFold(v string) predicate.Investment {
	return predicate.Investment(sql.FieldContainsFold(FieldFundRole, v))
}

// InvestmentTypeEQ applies the EQ predicate on the "investment_type" field.
func InvestmentTypeEQ(v string) predicate.Investment {
	return predicate.Investment(sql.FieldEQ(FieldInvestmentType, v))
}

// InvestmentTypeNEQ applies the NEQ predicate on the "investment_type" field.
func InvestmentTypeNEQ(v string) predicate.Investment {
	return predicate.Investment(sql.FieldNEQ(FieldInvestmentType, v))
}

// InvestmentTypeIn applies the In predicate on the "investment_type" field.
func InvestmentTypeIn(vs ...string) predicate.Investment {
	return predicate.Investment(sql.FieldIn(FieldInvestmentType, vs...))
}

// InvestmentTypeNotIn applies the NotIn predicate on the "investment_type" field.
func InvestmentTypeNotIn(vs ...string) predicate.Investment {
	return predicate.Investment(sql.FieldNotIn(FieldInvestmentType, vs...))
}

// InvestmentTypeGT applies the GT predicate on the "investment_type" field.
func InvestmentTypeGT(v string) predicate.Investment {
	return predicate.Investment(sql.FieldGT(FieldInvestmentType, v))
}

// InvestmentTypeGTE applies the GTE predicate on the "investment_type" field.
func InvestmentTypeGTE(v string) predicate.Investment {
	return predicate.Investment(sql.FieldGTE(FieldInvestmentType, v))
}

// InvestmentTypeLT applies the LT predicate on the "investment_type" field.
func InvestmentTypeLT(v string) predicate.Investment {
	return predicate.Investment(sql.FieldLT(FieldInvestmentType, v))
}

// InvestmentTypeLTE applies the LTE predicate on the "investment_type" field.
func InvestmentTypeLTE(v string) predicate.Investment {
	return predicate.Investment(sql.FieldLTE(FieldInvestmentType, v))
}

// InvestmentTypeContains applies the Contains predicate on the "investment_type" field.
func InvestmentTypeContains(v string) predicate.Investment {
	return predicate.Investment(sql.FieldContains(FieldInvestmentType, v))
}

// InvestmentTypeHasPrefix applies the HasPrefix predicate on the "investment_type" field.
func InvestmentTypeHasPrefix(v string) predicate.Investment {
	return predicate.Investment(sql.FieldHasPrefix(FieldInvestmentType, v))
}

// InvestmentTypeHasSuffix applies the HasSuffix predicate on the "investment_type" field.
func InvestmentTypeHasSuffix(v string) predicate.Investment {
	return predicate.Investment(sql.FieldHasSuffix(FieldInvestmentType, v))
}

// InvestmentTypeIsNil applies the IsNil predicate on the "investment_type" field.
func InvestmentTypeIsNil() predicate.Investment {
	return predicate.Investment(sql.FieldIsNull(FieldInvestmentType))
}

// InvestmentTypeNotNil applies the NotNil predicate on the "investment_type" field.
func InvestmentTypeNotNil() predicate.Investment {
	return predicate.Investment(sql.FieldNotNull(FieldInvestmentType))
}

// InvestmentTypeEqualFold applies the EqualFold predicate on the "investment_type" field.
func InvestmentTypeEqualFold(v string) predicate.Investment {
	return predicate.Investment(sql.FieldEqualFold(FieldInvestmentType, v))
}

// InvestmentTypeContainsFold applies the ContainsFold predicate on the "investment_type" field.
func InvestmentTypeContainsFold(v string) predicate.Investment {
	return predicate.Investment(sql.FieldContainsFold(FieldInvestmentType, v))
}

// OwnershipPercentEQ applies the EQ predicate on the "ownership_percent" field.
func OwnershipPercentEQ(v float64) predicate.Investment {
	return predicate.Investment(sql.FieldEQ(FieldOwnershipPercent, v))
}

// OwnershipPercentNEQ applies the NEQ predicate on the "ownership_percent" field.
func OwnershipPercentNEQ(v float64) predicate.Investment {
	return predicate.Investment(sql.FieldNEQ(FieldOwnershipPercent, v))
}

// OwnershipPercentIn applies the In predicate on the "ownership_percent" field.
func OwnershipPercentIn(vs ...float64) predicate.Investment {
	return predicate.Investment(sql.FieldIn(FieldOwnershipPercent, vs...))
}

// OwnershipPercentNotIn applies the NotIn predicate on the "ownership_percent" field.
func OwnershipPercentNotIn(vs ...float64) predicate.Investment {
	return predicate.Investment(sql.FieldNotIn(FieldOwnershipPercent, vs...))
}

// OwnershipPercentGT applies the GT predicate on the "ownership_percent" field.
func OwnershipPercentGT(v float64) predicate.Investment {
	return predicate.Investment(sql.FieldGT(FieldOwnershipPercent, v))
}

// OwnershipPercentGTE applies the GTE predicate on the "ownership_percent" field.
func OwnershipPercentGTE(v float64) predicate.Investment {
	return predicate.Investment(sql.FieldGTE(FieldOwnershipPercent, v))
}

// OwnershipPercentLT applies the LT predicate on the "ownership_percent" field.
func OwnershipPercentLT(v float64) predicate.Investment {
	return predicate.Investment(sql.FieldLT(FieldOwnershipPercent, v))
}

// OwnershipPercentLTE applies the LTE predicate on the "ownership_percent" field.
func OwnershipPercentLTE(v float64) predicate.Investment {
	return predicate.Investment(sql.FieldLTE(FieldOwnershipPercent, v))
}

// DateOfFirstCompletionEQ applies the EQ predicate on the "date_of_first_completion" field.
func DateOfFirstCompletionEQ(v time.Time) predicate.Investment {
	return predicate.Investment(sql.FieldEQ(FieldDateOfFirstCompletion, v))
}

// DateOfFirstCompletionNEQ applies the NEQ predicate on the "date_of_first_completion" field.
func DateOfFirstCompletionNEQ(v time.Time) predicate.Investment {
	return predicate.Investment(sql.FieldNEQ(FieldDateOfFirstCompletion, v))
}

// DateOfFirstCompletionIn applies the In predicate on the "date_of_first_completion" field.
func DateOfFirstCompletionIn(vs ...time.Time) predicate.Investment {
	return predicate.Investment(sql.FieldIn(FieldDateOfFirstCompletion, vs...))
}

// DateOfFirstCompletionNotIn applies the NotIn predicate on the "date_of_first_completion" field.
func DateOfFirstCompletionNotIn(vs ...time.Time) predicate.Investment {
	return predicate.Investment(sql.FieldNotIn(FieldDateOfFirstCompletion, vs...))
}

// DateOfFirstCompletionGT applies the GT predicate on the "date_of_first_completion" field.
func DateOfFirstCompletionGT(v time.Time) predicate.Investment {
	return predicate.Investment(sql.FieldGT(FieldDateOfFirstCompletion, v))
}

// DateOfFirstCompletionGTE applies the GTE predicate on the "date_of_first_completion" field.
func DateOfFirstCompletionGTE(v time.Time) predicate.Investment {
	return predicate.Investment(sql.FieldGTE(FieldDateOfFirstCompletion, v))
}

// DateOfFirstCompletionLT applies the LT predicate on the "date_of_first_completion" field.
func DateOfFirstCompletionLT(v time.Time) predicate.Investment {
	return predicate.Investment(sql.FieldLT(FieldDateOfFirstCompletion, v))
}

// DateOfFirstCompletionLTE applies the LTE predicate on the "date_of_first_completion" field.
func DateOfFirstCompletionLTE(v time.Time) predicate.Investment {
	return predicate.Investment(sql.FieldLTE(FieldDateOfFirstCompletion, v))
}

// DateOfFirstCompletionIsNil applies the IsNil predicate on the "date_of_first_completion" field.
func DateOfFirstCompletionIsNil() predicate.Investment {
	return predicate.Investment(sql.FieldIsNull(FieldDateOfFirstCompletion))
}

// DateOfFirstCompletionNotNil applies the NotNil predicate on the "date_of_first_completion" field.
func DateOfFirstCompletionNotNil() predicate.Investment {
	return predicate.Investment(sql.FieldNotNull(FieldDateOfFirstCompletion))
}

// TransactionValueEQ applies the EQ predicate on the "transaction_value" field.
func TransactionValueEQ(v float64) predicate.Investment {
	return predicate.Investment(sql.FieldEQ(FieldTransactionValue, v))
}

// TransactionValueNEQ applies the NEQ predicate on the "transaction_value" field.
func TransactionValueNEQ(v float64) predicate.Investment {
	return predicate.Investment(sql.FieldNEQ(FieldTransactionValue, v))
}

// TransactionValueIn applies the In predicate on the "transaction_value" field.
func TransactionValueIn(vs ...float64) predicate.Investment {
	return predicate.Investment(sql.FieldIn(FieldTransactionValue, vs...))
}

// TransactionValueNotIn applies the NotIn predicate on the "transaction_value" field.
func TransactionValueNotIn(vs ...float64) predicate.Investment {
	return predicate.Investment(sql.FieldNotIn(FieldTransactionValue, vs...))
}

// TransactionValueGT applies the GT predicate on the "transaction_value" field.
func TransactionValueGT(v float64) predicate.Investment {
	return predicate.Investment(sql.FieldGT(FieldTransactionValue, v))
}

// TransactionValueGTE applies the GTE predicate on the "transaction_value" field.
func TransactionValueGTE(v float64) predicate.Investment {
	return predicate.Investment(sql.FieldGTE(FieldTransactionValue, v))
}

// TransactionValueLT applies the LT predicate on the "transaction_value" field.
func TransactionValueLT(v float64) predicate.Investment {
	return predicate.Investment(sql.FieldLT(FieldTransactionValue, v))
}

// TransactionValueLTE applies the LTE predicate on the "transaction_value" field.
func TransactionValueLTE(v float64) predicate.Investment {
	return predicate.Investment(sql.FieldLTE(FieldTransactionValue, v))
}

// CurrentCostEQ applies the EQ predicate on the "current_cost" field.
func CurrentCostEQ(v float64) predicate.Investment {
	return predicate.Investment(sql.FieldEQ(FieldCurrentCost, v))
}

// CurrentCostNEQ applies the NEQ predicate on the "current_cost" field.
func CurrentCostNEQ(v float64) predicate.Investment {
	return predicate.Investment(sql.FieldNEQ(FieldCurrentCost, v))
}

// CurrentCostIn applies the In predicate on the "current_cost" field.
func CurrentCostIn(vs ...float64) predicate.Investment {
	return predicate.Investment(sql.FieldIn(FieldCurrentCost, vs...))
}

// CurrentCostNotIn applies the NotIn predicate on the "current_cost" field.
func CurrentCostNotIn(vs ...float64) predicate.Investment {
	return predicate.Investment(sql.FieldNotIn(FieldCurrentCost, vs...))
}

// CurrentCostGT applies the GT predicate on the "current_cost" field.
func CurrentCostGT(v float64) predicate.Investment {
	return predicate.Investment(sql.FieldGT(FieldCurrentCost, v))
}

// CurrentCostGTE applies the GTE predicate on the "current_cost" field.
func CurrentCostGTE(v float64) predicate.Investment {
	return predicate.Investment(sql.FieldGTE(FieldCurrentCost, v))
}

// CurrentCostLT applies the LT predicate on the "current_cost" field.
func CurrentCostLT(v float64) predicate.Investment {
	return predicate.Investment(sql.FieldLT(FieldCurrentCost, v))
}

// CurrentCostLTE applies the LTE predicate on the "current_cost" field.
func CurrentCostLTE(v float64) predicate.Investment {
	return predicate.Investment(sql.FieldLTE(FieldCurrentCost, v))
}

// FairValueEQ applies the EQ predicate on the "fair_value" field.
func FairValueEQ(v float64) predicate.Investment {
	return predicate.Investment(sql.FieldEQ(FieldFairValue, v))
}

// FairValueNEQ applies the NEQ predicate on the "fair_value" field.
func FairValueNEQ(v float64) predicate.Investment {
	return predicate.Investment(sql.FieldNEQ(FieldFairValue, v))
}

// FairValueIn applies the In predicate on the "fair_value" field.
func FairValueIn(vs ...float64) predicate.Investment {
	return predicate.Investment(sql.FieldIn(FieldFairValue, vs...))
}

// FairValueNotIn applies the NotIn predicate on the "fair_value" field.
func FairValueNotIn(vs ...float64) predicate.Investment {
	return predicate.Investment(sql.FieldNotIn(FieldFairValue, vs...))
}

// FairValueGT applies the GT predicate on the "fair_value" field.
func FairValueGT(v float64) predicate.Investment {
	return predicate.Investment(sql.FieldGT(FieldFairValue, v))
}

// FairValueGTE applies the GTE predicate on the "fair_value" field.
func FairValueGTE(v float64) predicate.Investment {
	return predicate.Investment(sql.FieldGTE(FieldFairValue, v))
}

// FairValueLT applies the LT predicate on the "fair_value" field.
func FairValueLT(v float64) predicate.Investment {
	return predicate.Investment(sql.FieldLT(FieldFairValue, v))
}

// FairValueLTE applies the LTE predicate on the "fair_value" field.
func FairValueLTE(v float64) predicate.Investment {
	return predicate.Investment(sql.FieldLTE(FieldFairValue, v))
}

// HasFund applies the HasEdge predicate on the "fund" edge.
func HasFund() predicate.Investment {
	return predicate.Investment(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, FundTable, FundColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasFundWith applies the HasEdge predicate on the "fund" edge with a given conditions (other predicates).
func HasFundWith(preds ...predicate.Fund) predicate.Investment {
	return predicate.Investment(func(s *sql.Selector) {
		step := newFundStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasCompany applies the HasEdge predicate on the "company" edge.
func HasCompany() predicate.Investment {
	return predicate.Investment(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, CompanyTable, CompanyColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCompanyWith applies the HasEdge predicate on the "company" edge with a given conditions (other predicates).
func HasCompanyWith(preds ...predicate.Company) predicate.Investment {
	return predicate.Investment(func(s *sql.Selector) {
		step := newCompanyStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Investment) predicate.Investment {
	return predicate.Investment(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Investment) predicate.Investment {
	return predicate.Investment(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Investment) predicate.Investment {
	return predicate.Investment(sql.NotPredicates(p))
}
