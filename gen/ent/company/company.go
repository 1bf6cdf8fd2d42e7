// Code generated by ent, DO NOT EDIT.

package company

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the company type in the database.
	Label = "company"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldHoldingCompany holds the string denoting the holding_company field in the database.
	FieldHoldingCompany = "holding_company"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldHeadOfficeLocation holds the string denoting the head_office_location field in the database.
	FieldHeadOfficeLocation = "head_office_location"
	// EdgeDocuments holds the string denoting the documents edge name in mutations.
	EdgeDocuments = "documents"
	// EdgeInvestments holds the string denoting the investments edge name in mutations.
	EdgeInvestments = "investments"
	// EdgeFinancials holds the string denoting the financials edge name in mutations.
	EdgeFinancials = "financials"
	// Table holds the table name of the company in the database.
	Table = "companies"
	// DocumentsTable is the table that holds the documents relation/edge.
	DocumentsTable = "documents"
	// DocumentsInverseTable is the table name for the Document entity.
	// It exists in this package in order to avoid circular dependency with the "document" package.
	DocumentsInverseTable = "documents"
	// DocumentsColumn is the table column denoting the documents relation/edge.
	DocumentsColumn = "company_id"
	// InvestmentsTable is the table that holds the investments relation/edge.
	InvestmentsTable = "investments"
	// InvestmentsInverseTable is the table name for the Investment entity.
	// It exists in this package in order to avoid circular dependency with the "investment" package.
	InvestmentsInverseTable = "investments"
	// InvestmentsColumn is the table column denoting the investments relation/edge.
	InvestmentsColumn = "company_id"
	// FinancialsTable is the table that holds the financials relation/edge.
	FinancialsTable = "financial_highlights"
	// FinancialsInverseTable is the table name for the FinancialHighlight entity.
	// It exists in this package in order to avoid circular dependency with the "financialhighlight" package.
	FinancialsInverseTable = "financial_highlights"
	// FinancialsColumn is the table column denoting the financials relation/edge.
	FinancialsColumn = "company_id"
)

// Columns holds all SQL columns for company fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldHoldingCompany,
	FieldDescription,
	FieldHeadOfficeLocation,
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
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Company queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByHoldingCompany orders the results by the holding_company field.
func ByHoldingCompany(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHoldingCompany, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByHeadOfficeLocation orders the results by the head_office_location field.
func ByHeadOfficeLocation(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHeadOfficeLocation, opts...).ToFunc()
}

// ByDocumentsCount orders the results by documents count.
func ByDocumentsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newDocumentsStep(), opts...)
	}
}

// ByDocuments orders the results by documents terms.
func ByDocuments(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDocumentsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByInvestmentsCount orders the results by investments count.
func ByInvestmentsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newInvestmentsStep(), opts...)
	}
}

// ByInvestments orders the results by investments terms.
func ByInvestments(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newInvestmentsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByFinancialsCount orders the results by financials count.
func ByFinancialsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newFinancialsStep(), opts...)
	}
}

// ByFinancials orders the results by financials terms.
func ByFinancials(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newFinancialsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newDocumentsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DocumentsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, DocumentsTable, DocumentsColumn),
	)
}
func newInvestmentsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(InvestmentsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, InvestmentsTable, InvestmentsColumn),
	)
}
func newFinancialsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(FinancialsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, FinancialsTable, FinancialsColumn),
	)
}
