// Code generated by ent, DO NOT EDIT.

package financialhighlight

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/hunggoodkidz/data-extraction-module/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.FinancialHighlight {
	return predicate.FinancialHighlight(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.FinancialHighlight {
	return predicate.FinancialHighlight(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.FinancialHighlight {
	return predicate.FinancialHighlight(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.FinancialHighlight {
	return predicate.FinancialHighlight(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.FinancialHighlight {
	return predicate.FinancialHighlight(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.FinancialHighlight {
	return predicate.FinancialHighlight(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.FinancialHighlight {
	return predicate.FinancialHighlight(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.FinancialHighlight {
	return predicate.FinancialHighlight(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.FinancialHighlight {
	return predicate.FinancialHighlight(sql.FieldLTE(FieldID, id))
}

// CompanyID applies equality check predicate on the "company_id" field. It's identical to CompanyIDEQ.
func CompanyID(v uuid.UUID) predicate.FinancialHighlight {
	return predicate.FinancialHighlight(sql.FieldEQ(FieldCompanyID, v))
}

// Period applies equality check predicate on the "period" field. It's identical to PeriodEQ.
func Period(v string) predicate.FinancialHighlight {
	return predicate.FinancialHighlight(sql.FieldEQ(FieldPeriod, v))
}

// Currency applies equality check predicate on the "currency" field. It's identical to CurrencyEQ.
func Currency(v string) predicate.FinancialHighlight {
	return predicate.FinancialHighlight(sql.FieldEQ(FieldCurrency, v))
}

// Revenue applies equality check predicate on the "revenue" field. It's identical to RevenueEQ.
func Revenue(v float64) predicate.FinancialHighlight {
	return predicate.FinancialHighlight(sql.FieldEQ(FieldRevenue, v))
}

// Ebitda applies equality check predicate on the "ebitda" field. It's identical to EbitdaEQ.
func Ebitda(v float64) predicate.FinancialHighlight {
	return predicate.FinancialHighlight(sql.FieldEQ(FieldEbitda, v))
}

// EbitdaMargin applies equality check predicate on the "ebitda_margin" field. It's identical to EbitdaMarginEQ.
func EbitdaMargin(v float64) predicate.FinancialHighlight {
	return predicate.FinancialHighlight(sql.FieldEQ(FieldEbitdaMargin, v))
}

// Ebit applies equality check predicate on the "ebit" field. It's identical to EbitEQ.
func Ebit(v float64) predicate.FinancialHighlight {
	return predicate.FinancialHighlight(sql.FieldEQ(FieldEbit, v))
}

// EbitMargin applies equality check predicate on the "ebit_margin" field. It's identical to EbitMarginEQ.
func EbitMargin(v float64) predicate.FinancialHighlight {
	return predicate.FinancialHighlight(sql.FieldEQ(FieldEbitMargin, v))
}

// NetProfitAfterTax applies equality check predicate on the "net_profit_after_tax" field. It's identical to NetProfitAfterTaxEQ.
func NetProfitAfterTax(v float64) predicate.FinancialHighlight {
	return predicate.FinancialHighlight(sql.FieldEQ(FieldNetProfitAfterTax, v))
}

// Capex applies equality check predicate on the "capex" field. It's identical to CapexEQ.
func Capex(v float64) predicate.FinancialHighlight {
	return predicate.FinancialHighlight(sql.FieldEQ(FieldCapex, v))
}

// NetDebt applies equality check predicate on the "net_debt" field. It's identical to NetDebtEQ.
func NetDebt(v float64) predicate.FinancialHighlight {
	return predicate.FinancialHighlight(sql.FieldEQ(FieldNetDebt, v))
}

// CompanyIDEQ applies the EQ predicate on the "company_id" field.
func CompanyIDEQ(v uuid.UUID) predicate.FinancialHighlight {
	return predicate.FinancialHighlight(sql.FieldEQ(FieldCompanyID, v))
}

// CompanyIDNEQ applies the NEQ predicate on the "company_id" field.
func CompanyIDNEQ(v uuid.UUID) predicate.FinancialHighlight {
	return predicate.FinancialHighlight(sql.FieldNEQ(FieldCompanyID, v))
}

// CompanyIDIn applies the In predicate on the "company_id" field.
func CompanyIDIn(vs ...uuid.UUID) predicate.FinancialHighlight {
	return predicate.FinancialHighlight(sql.FieldIn(FieldCompanyID, vs...))
}

// CompanyIDNotIn applies the NotIn predicate on the "company_id" field.
func CompanyIDNotIn(vs ...uuid.UUID) predicate.FinancialHighlight {
	return predicate.FinancialHighlight(sql.FieldNotIn(FieldCompanyID, vs...))
}

// PeriodEQ applies the EQ predicate on the "period" field.
func PeriodEQ(v string) predicate.FinancialHighlight {
	return predicate.FinancialHighlight(sql.FieldEQ(FieldPeriod, v))
}

// PeriodNEQ applies the NEQ predicate on the "period" field.
func PeriodNEQ(v string) predicate.FinancialHighlight {
	return predicate.FinancialHighlight(sql.FieldNEQ(FieldPeriod, v))
}

// PeriodIn applies the In predicate on the "period" field.
func PeriodIn(vs ...string) predicate.FinancialHighlight {
	return predicate.FinancialHighlight(sql.FieldIn(FieldPeriod, vs...))
}

// PeriodNotIn applies the NotIn predicate on the "period" field.
func PeriodNotIn(vs ...string) predicate.FinancialHighlight {
	return predicate.FinancialHighlight(sql.FieldNotIn(FieldPeriod, vs...))
}

// PeriodGT applies the GT predicate on the "period" field.
func PeriodGT(v string) predicate.FinancialHighlight {
	return predicate.FinancialHighlight(sql.FieldGT(FieldPeriod, v))
}

// PeriodGTE applies the GTE predicate on the "period" field.
func PeriodGTE(v string) predicate.FinancialHighlight {
	return predicate.FinancialHighlight(sql.FieldGTE(FieldPeriod, v))
}

// PeriodLT applies the LT predicate on the "period" field.
func PeriodLT(v string) predicate.FinancialHighlight {
	return predicate.FinancialHighlight(sql.FieldLT(FieldPeriod, v))
}

// PeriodLTE applies the LTE predicate on the "period" field.
func PeriodLTE(v string) predicate.FinancialHighlight {
	return predicate.FinancialHighlight(sql.FieldLTE(FieldPeriod, v))
}

// PeriodContains applies the Contains predicate on the "period" field.
func PeriodContains(v string) predicate.FinancialHighlight {
	return predicate.FinancialHighlight(sql.FieldContains(FieldPeriod, v))
}

// PeriodHasPrefix applies the HasPrefix predicate on the "period" field.
func PeriodHasPrefix(v string) predicate.FinancialHighlight {
	return predicate.FinancialHighlight(sql.FieldHasPrefix(FieldPeriod, v))
}

// PeriodHasSuffix applies the HasSuffix predicate on the "period" field.
func PeriodHasSuffix(v string) predicate.FinancialHighlight {
	return predicate.FinancialHighlight(sql.FieldHasSuffix(FieldPeriod, v))
}

// PeriodEqualFold applies the EqualFold predicate on the "period" field.
func PeriodEqualFold(v string) predicate.FinancialHighlight {
	return predicate.FinancialHighlight(sql.FieldEqualFold(FieldPeriod, v))
}

// PeriodContainsFold applies the ContainsFold predicate on the "period" field.
func PeriodContainsFold(v string) predicate.FinancialHighlight {
	return predicate.FinancialHighlight(sql.FieldContainsFold(FieldPeriod, v))
}

// CurrencyEQ applies the EQ predicate on the "currency" field.
func CurrencyEQ(v string) predicate.FinancialHighlight {
	return predicate.FinancialHighlight(sql.FieldEQ(FieldCurrency, v))
}

// CurrencyNEQ applies the NEQ predicate on the "currency" field.
func CurrencyNEQ(v string) predicate.FinancialHighlight {
	return predicate.FinancialHighlight(sql.FieldNEQ(FieldCurrency, v))
}

// CurrencyIn applies the In predicate on the "currency" field.
func CurrencyIn(vs ...string) predicate.FinancialHighlight {
	return predicate.FinancialHighlight(sql.FieldIn(FieldCurrency, vs...))
}

// CurrencyNotIn applies the NotIn predicate on the "currency" field.
func CurrencyNotIn(vs ...string) predicate.FinancialHighlight {
	return predicate.FinancialHighlight(sql.FieldNotIn(FieldCurrency, vs...))
}

// CurrencyGT applies the GT predicate on the "currency" field.
func CurrencyGT(v string) predicate.FinancialHighlight {
	return predicate.FinancialHighlight(sql.FieldGT(FieldCurrency, v))
}

// CurrencyGTE applies the GTE predicate on the "currency" field.
func CurrencyGTE(v string) predicate.FinancialHighlight {
	return predicate.FinancialHighlight(sql.FieldGTE(FieldCurrency, v))
}

// CurrencyLT applies the LT predicate on the "currency" field.
func CurrencyLT(v string) predicate.FinancialHighlight {
	return predicate.FinancialHighlight(sql.FieldLT(FieldCurrency, v))
}

// CurrencyLTE applies the LTE predicate on the "currency" field.
func CurrencyLTE(v string) predicate.FinancialHighlight {
	return predicate.FinancialHighlight(sql.FieldLTE(FieldCurrency, v))
}

// CurrencyContains applies the Contains predicate on the "currency" field.
func CurrencyContains(v string) predicate.FinancialHighlight {
	return predicate.FinancialHighlight(sql.FieldContains(FieldCurrency, v))
}

// CurrencyHasPrefix applies the HasPrefix predicate on the "currency" field.
func CurrencyHasPrefix(v string) predicate.FinancialHighlight {
	return predicate.FinancialHighlight(sql.FieldHasPrefix(FieldCurrency, v))
}

// CurrencyHasSuffix applies the HasSuffix predicate on the "currency" field.
func CurrencyHasSuffix(v string) predicate.FinancialHighlight {
	return predicate.FinancialHighlight(sql.FieldHasSuffix(FieldCurrency, v))
}

// CurrencyIsNil applies the IsNil predicate on the "currency" field.
func CurrencyIsNil() predicate.FinancialHighlight {
	return predicate.FinancialHighlight(sql.FieldIsNull(FieldCurrency))
}

// CurrencyNotNil applies the NotNil predicate on the "currency" field.
func CurrencyNotNil() predicate.FinancialHighlight {
	return predicate.FinancialHighlight(sql.FieldNotNull(FieldCurrency))
}

// CurrencyEqualFold applies the EqualFold predicate on the "currency" field.
func CurrencyEqualFold(v string) predicate.FinancialHighlight {
	return predicate.FinancialHighlight(sql.FieldEqualFold(FieldCurrency, v))
}

// CurrencyContainsFold applies the ContainsFold predicate on the "currency" field.
func CurrencyContainsFold(v string) predicate.FinancialHighlight {
	return predicate.FinancialHighlight(sql.FieldContainsFold(FieldCurrency, v))
}

// RevenueEQ applies the EQ predicate on the "revenue" field.
func RevenueEQ(v float64) predicate.FinancialHighlight {
	return predicate.FinancialHighlight(sql.FieldEQ(FieldRevenue, v))
}

// RevenueNEQ applies the NEQ predicate on the "revenue" field.
func RevenueNEQ(v float64) predicate.FinancialHighlight {
	return predicate.FinancialHighlight(sql.FieldNEQ(FieldRevenue, v))
}

// RevenueIn applies the In predicate on the "revenue" field.
func RevenueIn(vs ...float64) predicate.FinancialHighlight {
	return predicate.FinancialHighlight(sql.FieldIn(FieldRevenue, vs...))
}

// RevenueNotIn applies the NotIn predicate on the "revenue" field.
func RevenueNotIn(vs ...float64) predicate.FinancialHighlight {
	return predicate.FinancialHighlight(sql.FieldNotIn(FieldRevenue, vs...))
}

// RevenueGT applies the GT predicate on the "revenue" field.
func RevenueGT(v float64) predicate.FinancialHighlight {
	return predicate.FinancialHighlight(sql.FieldGT(FieldRevenue, v))
}

// RevenueGTE applies the GTE predicate on the "revenue" field.
func RevenueGTE(v float64) predicate.FinancialHighlight {
	return predicate.FinancialHighlight(sql.FieldGTE(FieldRevenue, v))
}

// RevenueLT applies the LT predicate on the "revenue" field.
func RevenueLT(v float64) predicate.FinancialHighlight {
	return predicate.FinancialHighlight(sql.FieldLT(FieldRevenue, v))
}

// RevenueLTE applies the LTE predicate on the "revenue" field.
func RevenueLTE(v float64) predicate.FinancialHighlight {
	return predicate.FinancialHighlight(sql.FieldLTE(FieldRevenue, v))
}

// EbitdaEQ applies the EQ predicate on the "ebitda" field.
func EbitdaEQ(v float64) predicate.FinancialHighlight {
	return predicate.FinancialHighlight(sql.FieldEQ(FieldEbitda, v))
}

// EbitdaNEQ applies the NEQ predicate on the "ebitda" field.
func EbitdaNEQ(v float64) predicate.FinancialHighlight {
	return predicate.FinancialHighlight(sql.FieldNEQ(FieldEbitda, v))
}

// EbitdaIn applies the In predicate on the "ebitda" field.
func EbitdaIn(vs ...float64) predicate.FinancialHighlight {
	return predicate.FinancialHighlight(sql.FieldIn(FieldEbitda, vs...))
}

// EbitdaNotIn applies the NotIn predicate on the "ebitda" field.
func EbitdaNotIn(vs ...float64) predicate.FinancialHighlight {
	return predicate.FinancialHighlight(sql.FieldNotIn(FieldEbitda, vs...))
}

// EbitdaGT applies the GT predicate on the "ebitda" field.
func EbitdaGT(v float64) predicate.FinancialHighlight {
	return predicate.FinancialHighlight(sql.FieldGT(FieldEbitda, v))
}

// EbitdaGTE applies the GTE predicate on the "ebitda" field.
func EbitdaGTE(v float64) predicate.FinancialHighlight {
	return predicate.FinancialHighlight(sql.FieldGTE(FieldEbitda, v))
}

// EbitdaLT applies the LT predicate on the "ebitda" field.
func EbitdaLT(v float64) predicate.FinancialHighlight {
	return predicate.FinancialHighlight(sql.FieldLT(FieldEbitda, v))
}

// EbitdaLTE applies the LTE predicate on the "ebitda" field.
func EbitdaLTE(v float64) predicate.FinancialHighlight {
	return predicate.FinancialHighlight(sql.FieldLTE(FieldEbitda, v))
}

// EbitdaMarginEQ applies the EQ predicate on the "ebitda_margin" field.
func EbitdaMarginEQ(v float64) predicate.FinancialHighlight {
	return predicate.FinancialHighlight(sql.FieldEQ(FieldEbitdaMargin, v))
}

// EbitdaMarginNEQ applies the NEQ predicate on the "ebitda_margin" field.
func EbitdaMarginNEQ(v float64) predicate.FinancialHighlight {
	return predicate.FinancialHighlight(sql.FieldNEQ(FieldEbitdaMargin, v))
}

// EbitdaMarginIn applies the In predicate on the "ebitda_margin" field.
func EbitdaMarginIn(vs ...float64) predicate.FinancialHighlight {
	return predicate.FinancialHighlight(sql.FieldIn(FieldEbitdaMargin, vs...))
}

// EbitdaMarginNotIn applies the NotIn predicate on the "ebitda_margin" field.
func EbitdaMarginNotIn(vs ...float64) predicate.FinancialHighlight {
	return predicate.FinancialHighlight(sql.FieldNotIn(FieldEbitdaMargin, vs...))
}

// EbitdaMarginGT applies the GT predicate on the "ebitda_margin" field.
func EbitdaMarginGT(v float64) predicate.FinancialHighlight {
	return predicate.FinancialHighlight(sql.FieldGT(FieldEbitdaMargin, v))
}

// EbitdaMarginGTE applies the GTE predicate on the "ebitda_margin" field.
func EbitdaMarginGTE(v float64) predicate.FinancialHighlight {
	return predicate.FinancialHighlight(sql.FieldGTE(FieldEbitdaMargin, v))
}

// EbitdaMarginLT applies the LT predicate on the "ebitda_margin" field.
func EbitdaMarginLT(v float64) predicate.FinancialHighlight {
	return predicate.FinancialHighlight(sql.FieldLT(FieldEbitdaMargin, v))
}

// EbitdaMarginLTE applies the LTE predicate on the "ebitda_margin" field.
func EbitdaMarginLTE(v float64) predicate.FinancialHighlight {
	return predicate.FinancialHighlight(sql.FieldLTE(FieldEbitdaMargin, v))
}

// EbitEQ applies the EQ predicate on the "ebit" field.
func EbitEQ(v float64) predicate.FinancialHighlight {
	return predicate.FinancialHighlight(sql.FieldEQ(FieldEbit, v))
}

// EbitNEQ applies the NEQ predicate on the "ebit" field.
func EbitNEQ(v float64) predicate.FinancialHighlight {
	return predicate.FinancialHighlight(sql.FieldNEQ(FieldEbit, v))
}

// EbitIn applies the In predicate on the "ebit" field.
func EbitIn(vs ...float64) predicate.FinancialHighlight {
	return predicate.FinancialHighlight(sql.FieldIn(FieldEbit, vs...))
}

// EbitNotIn applies the NotIn predicate on the "ebit" field.
func EbitNotIn(vs ...float64) predicate.FinancialHighlight {
	return predicate.FinancialHighlight(sql.FieldNotIn(FieldEbit, vs...))
}

// EbitGT applies the GT predicate on the "ebit" field.
func EbitGT(v float64) predicate.FinancialHighlight {
	return predicate.FinancialHighlight(sql.FieldGT(FieldEbit, v))
}

// EbitGTE applies the GTE predicate on the "ebit" field.
func EbitGTE(v float64) predicate.FinancialHighlight {
	return predicate.FinancialHighlight(sql.FieldGTE(FieldEbit, v))
}

// EbitLT applies the LT predicate on the "ebit" field.
func EbitLT(v float64) predicate.FinancialHighlight {
	return predicate.FinancialHighlight(sql.FieldLT(FieldEbit, v))
}

// EbitLTE applies the LTE predicate on the "ebit" field.
func EbitLTE(v float64) predicate.FinancialHighlight {
	return predicate.FinancialHighlight(sql.FieldLTE(FieldEbit, v))
}

// EbitMarginEQ applies the EQ predicate on the "ebit_margin" field.
func EbitMarginEQ(v float64) predicate.FinancialHighlight {
	return predicate.FinancialHighlight(sql.FieldEQ(FieldEbitMargin, v))
}

// EbitMarginNEQ applies the NEQ predicate on the "ebit_margin" field.
func EbitMarginNEQ(v float64) predicate.FinancialHighlight {
	return predicate.FinancialHighlight(sql.FieldNEQ(FieldEbitMargin, v))
}

// EbitMarginIn applies the In predicate on the "ebit_margin" field.
func EbitMarginIn(vs ...float64) predicate.FinancialHighlight {
	return predicate.FinancialHighlight(sql.FieldIn(FieldEbitMargin, vs...))
}

// EbitMarginNotIn applies the NotIn predicate on the "ebit_margin" field.
func EbitMarginNotIn(vs ...float64) predicate.FinancialHighlight {
	return predicate.FinancialHighlight(sql.FieldNotIn(FieldEbitMargin, vs...))
}

// EbitMarginGT applies the GT predicate on the "ebit_margin" field.
func EbitMarginGT(v float64) predicate.FinancialHighlight {
	return predicate.FinancialHighlight(sql.FieldGT(FieldEbitMargin, v))
}

// EbitMarginGTE applies the GTE predicate on the "ebit_margin" field.
func EbitMarginGTE(v float64) predicate.FinancialHighlight {
	return predicate.FinancialHighlight(sql.FieldGTE(FieldEbitMargin, v))
}

// EbitMarginLT applies the LT predicate on the "ebit_margin" field.
func EbitMarginLT(v float64) predicate.FinancialHighlight {
	return predicate.FinancialHighlight(sql.FieldLT(FieldEbitMargin, v))
}

// EbitMarginLTE applies the LTE predicate on the "ebit_margin" field.
func EbitMarginLTE(v float64) predicate.FinancialHighlight {
	return predicate.FinancialHighlight(sql.FieldLTE(FieldEbitMargin, v))
}

// NetProfitAfterTaxEQ applies the EQ predicate on the "net_profit_after_tax" field.
func NetProfitAfterTaxEQ(v float64) predicate.FinancialHighlight {
	return predicate.FinancialHighlight(sql.FieldEQ(FieldNetProfitAfterTax, v))
}

// NetProfitAfterTaxNEQ applies the NEQ predicate on the "net_profit_after_tax" field.
func NetProfitAfterTaxNEQ(v float64) predicate.FinancialHighlight {
	return predicate.FinancialHighlight(sql.FieldNEQ(FieldNetProfitAfterTax, v))
}

// NetProfitAfterTaxIn applies the In predicate on the "net_profit_after_tax" field.
func NetProfitAfterTaxIn(vs ...float64) predicate.FinancialHighlight {
	return predicate.FinancialHighlight(sql.FieldIn(FieldNetProfitAfterTax, vs...))
}

// NetProfitAfterTaxNotIn applies the NotIn predicate on the "net_profit_after_tax" field.
func NetProfitAfterTaxNotIn(vs ...float64) predicate.FinancialHighlight {
	return predicate.FinancialHighlight(sql.FieldNotIn(FieldNetProfitAfterTax, vs...))
}

// NetProfitAfterTaxGT applies the GT predicate on the "net_profit_after_tax" field.
func NetProfitAfterTaxGT(v float64) predicate.FinancialHighlight {
	return predicate.FinancialHighlight(sql.FieldGT(FieldNetProfitAfterTax, v))
}

// NetProfitAfterTaxGTE applies the GTE predicate on the "net_profit_after_tax" field.
func NetProfitAfterTaxGTE(v float64) predicate.FinancialHighlight {
	return predicate.FinancialHighlight(sql.FieldGTE(FieldNetProfitAfterTax, v))
}

// NetProfitAfterTaxLT applies the LT predicate on the "net_profit_after_tax" field.
func NetProfitAfterTaxLT(v float64) predicate.FinancialHighlight {
	return predicate.FinancialHighlight(sql.FieldLT(FieldNetProfitAfterTax, v))
}

// NetProfitAfterTaxLTE applies the LTE predicate on the "net_profit_after_tax" field.
func NetProfitAfterTaxLTE(v float64) predicate.FinancialHighlight {
	return predicate.FinancialHighlight(sql.FieldLTE(FieldNetProfitAfterTax, v))
}

// CapexEQ applies the EQ predicate on the "capex" field.
func CapexEQ(v float64) predicate.FinancialHighlight {
	return predicate.FinancialHighlight(sql.FieldEQ(FieldCapex, v))
}

// CapexNEQ applies the NEQ predicate on the "capex" field.
func CapexNEQ(v float64) predicate.FinancialHighlight {
	return predicate.FinancialHighlight(sql.FieldNEQ(FieldCapex, v))
}

// CapexIn applies the In predicate on the "capex" field.
func CapexIn(vs ...float64) predicate.FinancialHighlight {
	return predicate.FinancialHighlight(sql.FieldIn(FieldCapex, vs...))
}

// CapexNotIn applies the NotIn predicate on the "capex" field.
func CapexNotIn(vs ...float64) predicate.FinancialHighlight {
	return predicate.FinancialHighlight(sql.FieldNotIn(FieldCapex, vs...))
}

// CapexGT applies the GT predicate on the "capex" field.
func CapexGT(v float64) predicate.FinancialHighlight {
	return predicate.FinancialHighlight(sql.FieldGT(FieldCapex, v))
}

// CapexGTE applies the GTE predicate on the "capex" field.
func CapexGTE(v float64) predicate.FinancialHighlight {
	return predicate.FinancialHighlight(sql.FieldGTE(FieldCapex, v))
}

// CapexLT applies the LT predicate on the "capex" field.
func CapexLT(v float64) predicate.FinancialHighlight {
	return predicate.FinancialHighlight(sql.FieldLT(FieldCapex, v))
}

// CapexLTE applies the LTE predicate on the "capex" field.
func CapexLTE(v float64) predicate.FinancialHighlight {
	return predicate.FinancialHighlight(sql.FieldLTE(FieldCapex, v))
}

// NetDebtEQ applies the EQ predicate on the "net_debt" field.
func NetDebtEQ(v float64) predicate.FinancialHighlight {
	return predicate.FinancialHighlight(sql.FieldEQ(FieldNetDebt, v))
}

// NetDebtNEQ applies the NEQ predicate on the "net_debt" field.
func NetDebtNEQ(v float64) predicate.FinancialHighlight {
	return predicate.FinancialHighlight(sql.FieldNEQ(FieldNetDebt, v))
}

// NetDebtIn applies the In predicate on the "net_debt" field.
func NetDebtIn(vs ...float64) predicate.FinancialHighlight {
	return predicate.FinancialHighlight(sql.FieldIn(FieldNetDebt, vs...))
}

// NetDebtNotIn applies the NotIn predicate on the "net_debt" field.
func NetDebtNotIn(vs ...float64) predicate.FinancialHighlight {
	return predicate.FinancialHighlight(sql.FieldNotIn(FieldNetDebt, vs...))
}

// NetDebtGT applies the GT predicate on the "net_debt" field.
func NetDebtGT(v float64) predicate.FinancialHighlight {
	return predicate.FinancialHighlight(sql.FieldGT(FieldNetDebt, v))
}

// NetDebtGTE applies the GTE predicate on the "net_debt" field.
func NetDebtGTE(v float64) predicate.FinancialHighlight {
	return predicate.FinancialHighlight(sql.FieldGTE(FieldNetDebt, v))
}

// NetDebtLT applies the LT predicate on the "net_debt" field.
func NetDebtLT(v float64) predicate.FinancialHighlight {
	return predicate.FinancialHighlight(sql.FieldLT(FieldNetDebt, v))
}

// NetDebtLTE applies the LTE predicate on the "net_debt" field.
func NetDebtLTE(v float64) predicate.FinancialHighlight {
	return predicate.FinancialHighlight(sql.FieldLTE(FieldNetDebt, v))
}

// HasCompany applies the HasEdge predicate on the "company" edge.
func HasCompany() predicate.FinancialHighlight {
	return predicate.FinancialHighlight(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, CompanyTable, CompanyColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCompanyWith applies the HasEdge predicate on the "company" edge with a given conditions (other predicates).
func HasCompanyWith(preds ...predicate.Company) predicate.FinancialHighlight {
	return predicate.FinancialHighlight(func(s *sql.Selector) {
		step := newCompanyStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.FinancialHighlight) predicate.FinancialHighlight {
	return predicate.FinancialHighlight(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.FinancialHighlight) predicate.FinancialHighlight {
	return predicate.FinancialHighlight(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.FinancialHighlight) predicate.FinancialHighlight {
	return predicate.FinancialHighlight(sql.NotPredicates(p))
}
