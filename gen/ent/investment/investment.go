// Code generated by ent, DO NOT EDIT.

package investment

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the investment type in the database.
	Label = "investment"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldFundID holds the string denoting the fund_id field in the database.
	FieldFundID = "fund_id"
	// FieldCompanyID holds the string denoting the company_id field in the database.
	FieldCompanyID = "company_id"
	// FieldFundRole holds the string denoting the fund_role field in the database.
	FieldFundRole = "fund_role"
	// FieldInvestmentType holds the string denoting the investment_type field in the database.
	FieldInvestmentType = "investment_type"
	// FieldOwnershipPercent holds the string denoting the ownership_percent field in the database.
	FieldOwnershipPercent = "ownership_percent"
	// FieldDateOfFirstCompletion holds the string denoting the date_of_first_completion field in the database.
	FieldDateOfFirstCompletion = "date_of_first_completion"
	// FieldTransactionValue holds the string denoting the transaction_value field in the database.
	FieldTransactionValue = "transaction_value"
	// FieldCurrentCost holds the string denoting the current_cost field in the database.
	FieldCurrentCost = "current_cost"
	// FieldFairValue holds the string denoting the fair_value field in the database.
	FieldFairValue = "fair_value"
	// EdgeFund holds the string denoting the fund edge name in mutations.
	EdgeFund = "fund"
	// EdgeCompany holds the string denoting the company edge name in mutations.
	EdgeCompany = "company"
	// Table holds the table name of the investment in the database.
	Table = "investments"
	// FundTable is the table that holds the fund relation/edge.
	FundTable = "investments"
	// FundInverseTable is the table name for the Fund entity.
	// It exists in this package in order to avoid circular dependency with the "fund" package.
	FundInverseTable = "funds"
	// FundColumn is the table column denoting the fund relation/edge.
	FundColumn = "fund_id"
	// CompanyTable is the table that holds the company relation/edge.
	CompanyTable = "investments"
	// CompanyInverseTable is the table name for the Company entity.
	// It exists in this package in order to avoid circular dependency with the "company" package.
	CompanyInverseTable = "companies"
	// CompanyColumn is the table column denoting the company relation/edge.
	CompanyColumn = "company_id"
)

// Columns holds all SQL columns for investment fields.
var Columns = []string{
	FieldID,
	FieldFundID,
	FieldCompanyID,
	FieldFundRole,
	FieldInvestmentType,
	FieldOwnershipPercent,
	FieldDateOfFirstCompletion,
	FieldTransactionValue,
	FieldCurrentCost,
	FieldFairValue,
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
	// DefaultOwnershipPercent holds the default value on creation for the "ownership_percent" field.
	DefaultOwnershipPercent float64
	// DefaultTransactionValue holds the default value on creation for the "transaction_value" field.
	DefaultTransactionValue float64
	// DefaultCurrentCost holds the default value on creation for the "current_cost" field.
	DefaultCurrentCost float64
	// DefaultFairValue holds the default value on creation for the "fair_value" field.
	DefaultFairValue float64
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Investment queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByFundID orders the results by the fund_id field.
func ByFundID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFundID, opts...).ToFunc()
}

// ByCompanyID orders the results by the company_id field.
func ByCompanyID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompanyID, opts...).ToFunc()
}

// ByFundRole orders the results by the fund_role field.
func ByFundRole(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFundRole, opts...).ToFunc()
}

// ByInvestmentType orders the results by the investment_type field.
func ByInvestmentType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInvestmentType, opts...).ToFunc()
}

// ByOwnershipPercent orders the results by the ownership_percent field.
func ByOwnershipPercent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOwnershipPercent, opts...).ToFunc()
}

// ByDateOfFirstCompletion orders the results by the date_of_first_completion field.
func ByDateOfFirstCompletion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDateOfFirstCompletion, opts...).ToFunc()
}

// ByTransactionValue orders the results by the transaction_value field.
func ByTransactionValue(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTransactionValue, opts...).ToFunc()
}

// ByCurrentCost orders the results by the current_cost field.
func ByCurrentCost(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentCost, opts...).ToFunc()
}

// ByFairValue orders the results by the fair_value field.
func ByFairValue(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFairValue, opts...).ToFunc()
}

// ByFundField orders the results by fund field.
func ByFundField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newFundStep(), sql.OrderByField(field, opts...))
	}
}

// ByCompanyField orders the results by company field.
func ByCompanyField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCompanyStep(), sql.OrderByField(field, opts...))
	}
}
func newFundStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(FundInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, FundTable, FundColumn),
	)
}
func newCompanyStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CompanyInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, CompanyTable, CompanyColumn),
	)
}
