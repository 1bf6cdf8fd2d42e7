// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/hunggoodkidz/data-extraction-module/gen/ent/correction"
	"github.com/hunggoodkidz/data-extraction-module/gen/ent/extractedfield"
)

// Correction is the model entity for the Correction schema.
type Correction struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// ExtractedFieldID holds the value of the "extracted_field_id" field.
	ExtractedFieldID uuid.UUID `json:"extracted_field_id,omitempty"`
	// CorrectedValue holds the value of the "corrected_value" field.
	CorrectedValue string `json:"corrected_value,omitempty"`
	// CorrectedByUser holds the value of the "corrected_by_user" field.
	CorrectedByUser *string `json:"corrected_by_user,omitempty"`
	// Reason holds the value of the "reason" field.
	Reason *string `json:"reason,omitempty"`
	// CorrectedAt holds the value of the "corrected_at" field.
	CorrectedAt time.Time `json:"corrected_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CorrectionQuery when eager-loading is set.
	Edges        CorrectionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CorrectionEdges holds the relations/edges for other nodes in the graph.
type CorrectionEdges struct {
	// ExtractedField holds the value of the extracted_field edge.
	ExtractedField *ExtractedField `json:"extracted_field,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ExtractedFieldOrErr returns the ExtractedField value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CorrectionEdges) ExtractedFieldOrErr() (*ExtractedField, error) {
	if e.ExtractedField != nil {
		return e.ExtractedField, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: extractedfield.Label}
	}
	return nil, &NotLoadedError{edge: "extracted_field"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Correction) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case correction.FieldCorrectedValue, correction.FieldCorrectedByUser, correction.FieldReason:
			values[i] = new(sql.NullString)
		case correction.FieldCorrectedAt:
			values[i] = new(sql.NullTime)
		case correction.FieldID, correction.FieldExtractedFieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Correction fields.
func (_m *Correction) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case correction.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case correction.FieldExtractedFieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field extracted_field_id", values[i])
			} else if value != nil {
				_m.ExtractedFieldID = *value
			}
		case correction.FieldCorrectedValue:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field corrected_value", values[i])
			} else if value.Valid {
				_m.CorrectedValue = value.String
			}
		case correction.FieldCorrectedByUser:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field corrected_by_user", values[i])
			} else if value.Valid {
				_m.CorrectedByUser = new(string)
				*_m.CorrectedByUser = value.String
			}
		case correction.FieldReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reason", values[i])
			} else if value.Valid {
				_m.Reason = new(string)
				*_m.Reason = value.String
			}
		case correction.FieldCorrectedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field corrected_at", values[i])
			} else if value.Valid {
				_m.CorrectedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Correction.
// This includes values selected through modifiers, order, etc.
func (_m *Correction) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryExtractedField queries the "extracted_field" edge of the Correction entity.
func (_m *Correction) QueryExtractedField() *ExtractedFieldQuery {
	return NewCorrectionClient(_m.config).QueryExtractedField(_m)
}

// Update returns a builder for updating this Correction.
// Note that you need to call Correction.Unwrap() before calling this method if this Correction
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Correction) Update() *CorrectionUpdateOne {
	return NewCorrectionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Correction entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Correction) Unwrap() *Correction {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Correction is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Correction) String() string {
	var builder strings.Builder
	builder.WriteString("Correction(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("extracted_field_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExtractedFieldID))
	builder.WriteString(", ")
	builder.WriteString("corrected_value=")
	builder.WriteString(_m.CorrectedValue)
	builder.WriteString(", ")
	if v := _m.CorrectedByUser; v != nil {
		builder.WriteString("corrected_by_user=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Reason; v != nil {
		builder.WriteString("reason=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("corrected_at=")
	builder.WriteString(_m.CorrectedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Corrections is a parsable slice of Correction.
type Corrections []*Correction
