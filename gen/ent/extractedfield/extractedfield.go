// Code generated by ent, DO NOT EDIT.

package extractedfield

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the extractedfield type in the database.
	Label = "extracted_field"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldDocumentID holds the string denoting the document_id field in the database.
	FieldDocumentID = "document_id"
	// FieldFieldName holds the string denoting the field_name field in the database.
	FieldFieldName = "field_name"
	// FieldExtractedValue holds the string denoting the extracted_value field in the database.
	FieldExtractedValue = "extracted_value"
	// FieldPageNumber holds the string denoting the page_number field in the database.
	FieldPageNumber = "page_number"
	// FieldConfidenceScore holds the string denoting the confidence_score field in the database.
	FieldConfidenceScore = "confidence_score"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeDocument holds the string denoting the document edge name in mutations.
	EdgeDocument = "document"
	// EdgeCorrections holds the string denoting the corrections edge name in mutations.
	EdgeCorrections = "corrections"
	// Table holds the table name of the extractedfield in the database.
	Table = "extracted_fields"
	// DocumentTable is the table that holds the document relation/edge.
	DocumentTable = "extracted_fields"
	// DocumentInverseTable is the table name for the Document entity.
	// It exists in this package in order to avoid circular dependency with the "document" package.
	DocumentInverseTable = "documents"
	// DocumentColumn is the table column denoting the document relation/edge.
	DocumentColumn = "document_id"
	// CorrectionsTable is the table that holds the corrections relation/edge.
	CorrectionsTable = "corrections"
	// CorrectionsInverseTable is the table name for the Correction entity.
	// It exists in this package in order to avoid circular dependency with the "correction" package.
	CorrectionsInverseTable = "corrections"
	// CorrectionsColumn is the table column denoting the corrections relation/edge.
	CorrectionsColumn = "extracted_field_id"
)

// Columns holds all SQL columns for extractedfield fields.
var Columns = []string{
	FieldID,
	FieldDocumentID,
	FieldFieldName,
	FieldExtractedValue,
	FieldPageNumber,
	FieldConfidenceScore,
	FieldCreatedAt,
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
	// FieldNameValidator is a validator for the "field_name" field. It is called by the builders before save.
	FieldNameValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the ExtractedField queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByDocumentID orders the results by the document_id field.
func ByDocumentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDocumentID, opts...).ToFunc()
}

// ByFieldName orders the results by the field_name field.
func ByFieldName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFieldName, opts...).ToFunc()
}

// ByExtractedValue orders the results by the extracted_value field.
func ByExtractedValue(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExtractedValue, opts...).ToFunc()
}

// ByPageNumber orders the results by the page_number field.
func ByPageNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPageNumber, opts...).ToFunc()
}

// ByConfidenceScore orders the results by the confidence_score field.
func ByConfidenceScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidenceScore, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByDocumentField orders the results by document field.
func ByDocumentField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDocumentStep(), sql.OrderByField(field, opts...))
	}
}

// ByCorrectionsCount orders the results by corrections count.
func ByCorrectionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newCorrectionsStep(), opts...)
	}
}

// ByCorrections orders the results by corrections terms.
func ByCorrections(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCorrectionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newDocumentStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DocumentInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, DocumentTable, DocumentColumn),
	)
}
func newCorrectionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CorrectionsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, CorrectionsTable, CorrectionsColumn),
	)
}
