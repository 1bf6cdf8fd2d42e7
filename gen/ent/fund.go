// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/hunggoodkidz/data-extraction-module/gen/ent/fund"
)

// Fund is the model entity for the Fund schema.
type Fund struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Type holds the value of the "type" field.
	Type string `json:"type,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the FundQuery when eager-loading is set.
	Edges        FundEdges `json:"edges"`
	selectValues sql.SelectValues
}

// FundEdges holds the relations/edges for other nodes in the graph.
type FundEdges struct {
	// Documents holds the value of the documents edge.
	Documents []*Document `json:"documents,omitempty"`
	// Investments holds the value of the investments edge.
	Investments []*Investment `json:"investments,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// DocumentsOrErr returns the Documents value or an error if the edge
// was not loaded in eager-loading.
func (e FundEdges) DocumentsOrErr() ([]*Document, error) {
	if e.loadedTypes[0] {
		return e.Documents, nil
	}
	return nil, &NotLoadedError{edge: "documents"}
}

// InvestmentsOrErr returns the Investments value or an error if the edge
// was not loaded in eager-loading.
func (e FundEdges) InvestmentsOrErr() ([]*Investment, error) {
	if e.loadedTypes[1] {
		return e.Investments, nil
	}
	return nil, &NotLoadedError{edge: "investments"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Fund) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case fund.FieldName, fund.FieldType:
			values[i] = new(sql.NullString)
		case fund.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Fund fields.
func (_m *Fund) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case fund.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case fund.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case fund.FieldType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field type", values[i])
			} else if value.Valid {
				_m.Type = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Fund.
// This includes values selected through modifiers, order, etc.
func (_m *Fund) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryDocuments queries the "documents" edge of the Fund entity.
func (_m *Fund) QueryDocuments() *DocumentQuery {
	return NewFundClient(_m.config).QueryDocuments(_m)
}

// QueryInvestments queries the "investments" edge of the Fund entity.
func (_m *Fund) QueryInvestments() *InvestmentQuery {
	return NewFundClient(_m.config).QueryInvestments(_m)
}

// Update returns a builder for updating this Fund.
// Note that you need to call Fund.Unwrap() before calling this method if this Fund
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Fund) Update() *FundUpdateOne {
	return NewFundClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Fund entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Fund) Unwrap() *Fund {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Fund is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Fund) String() string {
	var builder strings.Builder
	builder.WriteString("Fund(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("type=")
	builder.WriteString(_m.Type)
	builder.WriteByte(')')
	return builder.String()
}

// Funds is a parsable slice of Fund.
type Funds []*Fund
