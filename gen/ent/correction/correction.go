// Code generated by ent, DO NOT EDIT.

package correction

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the correction type in the database.
	Label = "correction"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldExtractedFieldID holds the string denoting the extracted_field_id field in the database.
	FieldExtractedFieldID = "extracted_field_id"
	// FieldCorrectedValue holds the string denoting the corrected_value field in the database.
	FieldCorrectedValue = "corrected_value"
	// FieldCorrectedByUser holds the string denoting the corrected_by_user field in the database.
	FieldCorrectedByUser = "corrected_by_user"
	// FieldReason holds the string denoting the reason field in the database.
	FieldReason = "reason"
	// FieldCorrectedAt holds the string denoting the corrected_at field in the database.
	FieldCorrectedAt = "corrected_at"
	// EdgeExtractedField holds the string denoting the extracted_field edge name in mutations.
	EdgeExtractedField = "extracted_field"
	// Table holds the table name of the correction in the database.
	Table = "corrections"
	// ExtractedFieldTable is the table that holds the extracted_field relation/edge.
	ExtractedFieldTable = "corrections"
	// ExtractedFieldInverseTable is the table name for the ExtractedField entity.
	// It exists in this package in order to avoid circular dependency with the "extractedfield" package.
	ExtractedFieldInverseTable = "extracted_fields"
	// ExtractedFieldColumn is the table column denoting the extracted_field relation/edge.
	ExtractedFieldColumn = "extracted_field_id"
)

// Columns holds all SQL columns for correction fields.
var Columns = []string{
	FieldID,
	FieldExtractedFieldID,
	FieldCorrectedValue,
	FieldCorrectedByUser,
	FieldReason,
	FieldCorrectedAt,
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
	// DefaultCorrectedAt holds the default value on creation for the "corrected_at" field.
	DefaultCorrectedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Correction queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByExtractedFieldID orders the results by the extracted_field_id field.
func ByExtractedFieldID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExtractedFieldID, opts...).ToFunc()
}

// ByCorrectedValue orders the results by the corrected_value field.
func ByCorrectedValue(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrectedValue, opts...).ToFunc()
}

// ByCorrectedByUser orders the results by the corrected_by_user field.
func ByCorrectedByUser(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrectedByUser, opts...).ToFunc()
}

// ByReason orders the results by the reason field.
func ByReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReason, opts...).ToFunc()
}

// ByCorrectedAt orders the results by the corrected_at field.
func ByCorrectedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrectedAt, opts...).ToFunc()
}

// ByExtractedFieldField orders the results by extracted_field field.
func ByExtractedFieldField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newExtractedFieldStep(), sql.OrderByField(field, opts...))
	}
}
func newExtractedFieldStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ExtractedFieldInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ExtractedFieldTable, ExtractedFieldColumn),
	)
}
