// Code generated by ent, DO NOT EDIT.

package financialhighlight

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the financialhighlight type in the database.
	Label = "financial_highlight"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCompanyID holds the string denoting the company_id field in the database.
	FieldCompanyID = "company_id"
	// FieldPeriod holds the string denoting the period field in the database.
	FieldPeriod = "period"
	// FieldCurrency holds the string denoting the currency field in the database.
	FieldCurrency = "currency"
	// FieldRevenue holds the string denoting the revenue field in the database.
	FieldRevenue = "revenue"
	// FieldEbitda holds the string denoting the ebitda field in the database.
	FieldEbitda = "ebitda"
	// FieldEbitdaMargin holds the string denoting the ebitda_margin field in the database.
	FieldEbitdaMargin = "ebitda_margin"
	// FieldEbit holds the string denoting the ebit field in the database.
	FieldEbit = "ebit"
	// FieldEbitMargin holds the string denoting the ebit_margin field in the database.
	FieldEbitMargin = "ebit_margin"
	// FieldNetProfitAfterTax holds the string denoting the net_profit_after_tax field in the database.
	FieldNetProfitAfterTax = "net_profit_after_tax"
	// FieldCapex holds the string denoting the capex field in the database.
	FieldCapex = "capex"
	// FieldNetDebt holds the string denoting the net_debt field in the database.
	FieldNetDebt = "net_debt"
	// EdgeCompany holds the string denoting the company edge name in mutations.
	EdgeCompany = "company"
	// Table holds the table name of the financialhighlight in the database.
	Table = "financial_highlights"
	// CompanyTable is the table that holds the company relation/edge.
	CompanyTable = "financial_highlights"
	// CompanyInverseTable is the table name for the Company entity.
	// It exists in this package in order to avoid circular dependency with the "company" package.
	CompanyInverseTable = "companies"
	// CompanyColumn is the table column denoting the company relation/edge.
	CompanyColumn = "company_id"
)

// Columns holds all SQL columns for financialhighlight fields.
var Columns = []string{
	FieldID,
	FieldCompanyID,
	FieldPeriod,
	FieldCurrency,
	FieldRevenue,
	FieldEbitda,
	FieldEbitdaMargin,
	FieldEbit,
	FieldEbitMargin,
	FieldNetProfitAfterTax,
	FieldCapex,
	FieldNetDebt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultRevenue holds the default value on creation for the "revenue" field.
	DefaultRevenue float64
	// DefaultEbitda holds the default value on creation for the "ebitda" field.
	DefaultEbitda float64
	// DefaultEbitdaMargin holds the default value on creation for the "ebitda_margin" field.
	DefaultEbitdaMargin float64
	// DefaultEbit holds the default value on creation for the "ebit" field.
	DefaultEbit float64
	// DefaultEbitMargin holds the default value on creation for the "ebit_margin" field.
	DefaultEbitMargin float64
	// DefaultNetProfitAfterTax holds the default value on creation for the "net_profit_after_tax" field.
	DefaultNetProfitAfterTax float64
	// DefaultCapex holds the default value on creation for the "capex" field.
	DefaultCapex float64
	// DefaultNetDebt holds the default value on creation for the "net_debt" field.
	DefaultNetDebt float64
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the FinancialHighlight queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCompanyID orders the results by the company_id field.
func ByCompanyID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompanyID, opts...).ToFunc()
}

// ByPeriod orders the results by the period field.
func ByPeriod(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPeriod, opts...).ToFunc()
}

// ByCurrency orders the results by the currency field.
func ByCurrency(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrency, opts...).ToFunc()
}

// ByRevenue orders the results by the revenue field.
func ByRevenue(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRevenue, opts...).ToFunc()
}

// ByEbitda orders the results by the ebitda field.
func ByEbitda(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEbitda, opts...).ToFunc()
}

// ByEbitdaMargin orders the results by the ebitda_margin field.
func ByEbitdaMargin(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEbitdaMargin, opts...).ToFunc()
}

// ByEbit orders the results by the ebit field.
func ByEbit(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEbit, opts...).ToFunc()
}

// ByEbitMargin orders the results by the ebit_margin field.
func ByEbitMargin(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEbitMargin, opts...).ToFunc()
}

// ByNetProfitAfterTax orders the results by the net_profit_after_tax field.
func ByNetProfitAfterTax(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNetProfitAfterTax, opts...).ToFunc()
}

// ByCapex orders the results by the capex field.
func ByCapex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCapex, opts...).ToFunc()
}

// ByNetDebt orders the results by the net_debt field.
func ByNetDebt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNetDebt, opts...).ToFunc()
}

// ByCompanyField orders the results by company field.
func ByCompanyField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCompanyStep(), sql.OrderByField(field, opts...))
	}
}
func newCompanyStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CompanyInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, CompanyTable, CompanyColumn),
	)
}
