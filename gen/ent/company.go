// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/hunggoodkidz/data-extraction-module/gen/ent/company"
)

// Company is the model entity for the Company schema.
type Company struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// HoldingCompany holds the value of the "holding_company" field.
	HoldingCompany *string `json:"holding_company,omitempty"`
	// Description holds the value of the "description" field.
	Description *string `json:"description,omitempty"`
	// HeadOfficeLocation holds the value of the "head_office_location" field.
	HeadOfficeLocation *string `json:"head_office_location,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CompanyQuery when eager-loading is set.
	Edges        CompanyEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CompanyEdges holds the relations/edges for other nodes in the graph.
type CompanyEdges struct {
	// Documents holds the value of the documents edge.
	Documents []*Document `json:"documents,omitempty"`
	// Investments holds the value of the investments edge.
	Investments []*Investment `json:"investments,omitempty"`
	// Financials holds the value of the financials edge.
	Financials []*FinancialHighlight `json:"financials,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// DocumentsOrErr returns the Documents value or an error if the edge
// was not loaded in eager-loading.
func (e CompanyEdges) DocumentsOrErr() ([]*Document, error) {
	if e.loadedTypes[0] {
		return e.Documents, nil
	}
	return nil, &NotLoadedError{edge: "documents"}
}

// InvestmentsOrErr returns the Investments value or an error if the edge
// was not loaded in eager-loading.
func (e CompanyEdges) InvestmentsOrErr() ([]*Investment, error) {
	if e.loadedTypes[1] {
		return e.Investments, nil
	}
	return nil, &NotLoadedError{edge: "investments"}
}

// FinancialsOrErr returns the Financials value or an error if the edge
// was not loaded in eager-loading.
func (e CompanyEdges) FinancialsOrErr() ([]*FinancialHighlight, error) {
	if e.loadedTypes[2] {
		return e.Financials, nil
	}
	return nil, &NotLoadedError{edge: "financials"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Company) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case company.FieldName, company.FieldHoldingCompany, company.FieldDescription, company.FieldHeadOfficeLocation:
			values[i] = new(sql.NullString)
		case company.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Company fields.
func (_m *Company) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case company.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case company.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case company.FieldHoldingCompany:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field holding_company", values[i])
			} else if value.Valid {
				_m.HoldingCompany = new(string)
				*_m.HoldingCompany = value.String
			}
		case company.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = new(string)
				*_m.Description = value.String
			}
		case company.FieldHeadOfficeLocation:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field head_office_location", values[i])
			} else if value.Valid {
				_m.HeadOfficeLocation = new(string)
				*_m.HeadOfficeLocation = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Company.
// This includes values selected through modifiers, order, etc.
func (_m *Company) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryDocuments queries the "documents" edge of the Company entity.
func (_m *Company) QueryDocuments() *DocumentQuery {
	return NewCompanyClient(_m.config).QueryDocuments(_m)
}

// QueryInvestments queries the "investments" edge of the Company entity.
func (_m *Company) QueryInvestments() *InvestmentQuery {
	return NewCompanyClient(_m.config).QueryInvestments(_m)
}

// QueryFinancials queries the "financials" edge of the Company entity.
func (_m *Company) QueryFinancials() *FinancialHighlightQuery {
	return NewCompanyClient(_m.config).QueryFinancials(_m)
}

// Update returns a builder for updating this Company.
// Note that you need to call Company.Unwrap() before calling this method if this Company
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Company) Update() *CompanyUpdateOne {
	return NewCompanyClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Company entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Company) Unwrap() *Company {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Company is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Company) String() string {
	var builder strings.Builder
	builder.WriteString("Company(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	if v := _m.HoldingCompany; v != nil {
		builder.WriteString("holding_company=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Description; v != nil {
		builder.WriteString("description=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.HeadOfficeLocation; v != nil {
		builder.WriteString("head_office_location=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// Companies is a parsable slice of Company.
type Companies []*Company
