// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/hunggoodkidz/data-extraction-module/gen/ent/document"
	"github.com/hunggoodkidz/data-extraction-module/gen/ent/extractedfield"
)

// ExtractedField is the model entity for the ExtractedField schema.
type ExtractedField struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// DocumentID holds the value of the "document_id" field.
	DocumentID uuid.UUID `json:"document_id,omitempty"`
	// FieldName holds the value of the "field_name" field.
	FieldName string `json:"field_name,omitempty"`
	// ExtractedValue holds the value of the "extracted_value" field.
	ExtractedValue string `json:"extracted_value,omitempty"`
	// PageNumber holds the value of the "page_number" field.
	PageNumber *int `json:"page_number,omitempty"`
	// ConfidenceScore holds the value of the "confidence_score" field.
	ConfidenceScore *float64 `json:"confidence_score,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ExtractedFieldQuery when eager-loading is set.
	Edges        ExtractedFieldEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ExtractedFieldEdges holds the relations/edges for other nodes in the graph.
type ExtractedFieldEdges struct {
	// Document holds the value of the document edge.
	Document *Document `json:"document,omitempty"`
	// Corrections holds the value of the corrections edge.
	Corrections []*Correction `json:"corrections,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// DocumentOrErr returns the Document value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ExtractedFieldEdges) DocumentOrErr() (*Document, error) {
	if e.Document != nil {
		return e.Document, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: document.Label}
	}
	return nil, &NotLoadedError{edge: "document"}
}

// CorrectionsOrErr returns the Corrections value or an error if the edge
// was not loaded in eager-loading.
func (e ExtractedFieldEdges) CorrectionsOrErr() ([]*Correction, error) {
	if e.loadedTypes[1] {
		return e.Corrections, nil
	}
	return nil, &NotLoadedError{edge: "corrections"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ExtractedField) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case extractedfield.FieldConfidenceScore:
			values[i] = new(sql.NullFloat64)
		case extractedfield.FieldPageNumber:
			values[i] = new(sql.NullInt64)
		case extractedfield.FieldFieldName, extractedfield.FieldExtractedValue:
			values[i] = new(sql.NullString)
		case extractedfield.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case extractedfield.FieldID, extractedfield.FieldDocumentID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ExtractedField fields.
func (_m *ExtractedField) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case extractedfield.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case extractedfield.FieldDocumentID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field document_id", values[i])
			} else if value != nil {
				_m.DocumentID = *value
			}
		case extractedfield.FieldFieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field field_name", values[i])
			} else if value.Valid {
				_m.FieldName = value.String
			}
		case extractedfield.FieldExtractedValue:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field extracted_value", values[i])
			} else if value.Valid {
				_m.ExtractedValue = value.String
			}
		case extractedfield.FieldPageNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field page_number", values[i])
			} else if value.Valid {
				_m.PageNumber = new(int)
				*_m.PageNumber = int(value.Int64)
			}
		case extractedfield.FieldConfidenceScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence_score", values[i])
			} else if value.Valid {
				_m.ConfidenceScore = new(float64)
				*_m.ConfidenceScore = value.Float64
			}
		case extractedfield.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ExtractedField.
// This includes values selected through modifiers, order, etc.
func (_m *ExtractedField) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryDocument queries the "document" edge of the ExtractedField entity.
func (_m *ExtractedField) QueryDocument() *DocumentQuery {
	return NewExtractedFieldClient(_m.config).QueryDocument(_m)
}

// QueryCorrections queries the "corrections" edge of the ExtractedField entity.
func (_m *ExtractedField) QueryCorrections() *CorrectionQuery {
	return NewExtractedFieldClient(_m.config).QueryCorrections(_m)
}

// Update returns a builder for updating this ExtractedField.
// Note that you need to call ExtractedField.Unwrap() before calling this method if this ExtractedField
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ExtractedField) Update() *ExtractedFieldUpdateOne {
	return NewExtractedFieldClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ExtractedField entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ExtractedField) Unwrap() *ExtractedField {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ExtractedField is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ExtractedField) String() string {
	var builder strings.Builder
	builder.WriteString("ExtractedField(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("document_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.DocumentID))
	builder.WriteString(", ")
	builder.WriteString("field_name=")
	builder.WriteString(_m.FieldName)
	builder.WriteString(", ")
	builder.WriteString("extracted_value=")
	builder.WriteString(_m.ExtractedValue)
	builder.WriteString(", ")
	if v := _m.PageNumber; v != nil {
		builder.WriteString("page_number=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.ConfidenceScore; v != nil {
		builder.WriteString("confidence_score=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ExtractedFields is a parsable slice of ExtractedField.
type ExtractedFields []*ExtractedField
