// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/hunggoodkidz/data-extraction-module/gen/ent/company"
	"github.com/hunggoodkidz/data-extraction-module/gen/ent/financialhighlight"
)

// FinancialHighlight is the model entity for the FinancialHighlight schema.
type FinancialHighlight struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CompanyID holds the value of the "company_id" field.
	CompanyID uuid.UUID `json:"company_id,omitempty"`
	// Period holds the value of the "period" field.
	Period string `json:"period,omitempty"`
	// Currency holds the value of the "currency" field.
	Currency *string `json:"currency,omitempty"`
	// Revenue holds the value of the "revenue" field.
	Revenue float64 `json:"revenue,omitempty"`
	// Ebitda holds the value of the "ebitda" field.
	Ebitda float64 `json:"ebitda,omitempty"`
	// EbitdaMargin holds the value of the "ebitda_margin" field.
	EbitdaMargin float64 `json:"ebitda_margin,omitempty"`
	// Ebit holds the value of the "ebit" field.
	Ebit float64 `json:"ebit,omitempty"`
	// EbitMargin holds the value of the "ebit_margin" field.
	EbitMargin float64 `json:"ebit_margin,omitempty"`
	// NetProfitAfterTax holds the value of the "net_profit_after_tax" field.
	NetProfitAfterTax float64 `json:"net_profit_after_tax,omitempty"`
	// Capex holds the value of the "capex" field.
	Capex float64 `json:"capex,omitempty"`
	// NetDebt holds the value of the "net_debt" field.
	NetDebt float64 `json:"net_debt,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the FinancialHighlightQuery when eager-loading is set.
	Edges        FinancialHighlightEdges `json:"edges"`
	selectValues sql.SelectValues
}

// FinancialHighlightEdges holds the relations/edges for other nodes in the graph.
type FinancialHighlightEdges struct {
	// Company holds the value of the company edge.
	Company *Company `json:"company,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// CompanyOrErr returns the Company value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e FinancialHighlightEdges) CompanyOrErr() (*Company, error) {
	if e.Company != nil {
		return e.Company, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: company.Label}
	}
	return nil, &NotLoadedError{edge: "company"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*FinancialHighlight) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case financialhighlight.FieldRevenue, financialhighlight.FieldEbitda, financialhighlight.FieldEbitdaMargin, financialhighlight.FieldEbit, financialhighlight.FieldEbitMargin, financialhighlight.FieldNetProfitAfterTax, financialhighlight.FieldCapex, financialhighlight.FieldNetDebt:
			values[i] = new(sql.NullFloat64)
		case financialhighlight.FieldPeriod, financialhighlight.FieldCurrency:
			values[i] = new(sql.NullString)
		case financialhighlight.FieldID, financialhighlight.FieldCompanyID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the FinancialHighlight fields.
func (_m *FinancialHighlight) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case financialhighlight.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case financialhighlight.FieldCompanyID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field company_id", values[i])
			} else if value != nil {
				_m.CompanyID = *value
			}
		case financialhighlight.FieldPeriod:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field period", values[i])
			} else if value.Valid {
				_m.Period = value.String
			}
		case financialhighlight.FieldCurrency:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field currency", values[i])
			} else if value.Valid {
				_m.Currency = new(string)
				*_m.Currency = value.String
			}
		case financialhighlight.FieldRevenue:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field revenue", values[i])
			} else if value.Valid {
				_m.Revenue = value.Float64
			}
		case financialhighlight.FieldEbitda:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field ebitda", values[i])
			} else if value.Valid {
				_m.Ebitda = value.Float64
			}
		case financialhighlight.FieldEbitdaMargin:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field ebitda_margin", values[i])
			} else if value.Valid {
				_m.EbitdaMargin = value.Float64
			}
		case financialhighlight.FieldEbit:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field ebit", values[i])
			} else if value.Valid {
				_m.Ebit = value.Float64
			}
		case financialhighlight.FieldEbitMargin:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field ebit_margin", values[i])
			} else if value.Valid {
				_m.EbitMargin = value.Float64
			}
		case financialhighlight.FieldNetProfitAfterTax:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field net_profit_after_tax", values[i])
			} else if value.Valid {
				_m.NetProfitAfterTax = value.Float64
			}
		case financialhighlight.FieldCapex:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field capex", values[i])
			} else if value.Valid {
				_m.Capex = value.Float64
			}
		case financialhighlight.FieldNetDebt:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field net_debt", values[i])
			} else if value.Valid {
				_m.NetDebt = value.Float64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the FinancialHighlight.
// This includes values selected through modifiers, order, etc.
func (_m *FinancialHighlight) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryCompany queries the "company" edge of the FinancialHighlight entity.
func (_m *FinancialHighlight) QueryCompany() *CompanyQuery {
	return NewFinancialHighlightClient(_m.config).QueryCompany(_m)
}

// Update returns a builder for updating this FinancialHighlight.
// Note that you need to call FinancialHighlight.Unwrap() before calling this method if this FinancialHighlight
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *FinancialHighlight) Update() *FinancialHighlightUpdateOne {
	return NewFinancialHighlightClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the FinancialHighlight entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *FinancialHighlight) Unwrap() *FinancialHighlight {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: FinancialHighlight is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *FinancialHighlight) String() string {
	var builder strings.Builder
	builder.WriteString("FinancialHighlight(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("company_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.CompanyID))
	builder.WriteString(", ")
	builder.WriteString("period=")
	builder.WriteString(_m.Period)
	builder.WriteString(", ")
	if v := _m.Currency; v != nil {
		builder.WriteString("currency=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("revenue=")
	builder.WriteString(fmt.Sprintf("%v", _m.Revenue))
	builder.WriteString(", ")
	builder.WriteString("ebitda=")
	builder.WriteString(fmt.Sprintf("%v", _m.Ebitda))
	builder.WriteString(", ")
	builder.WriteString("ebitda_margin=")
	builder.WriteString(fmt.Sprintf("%v", _m.EbitdaMargin))
	builder.WriteString(", ")
	builder.WriteString("ebit=")
	builder.WriteString(fmt.Sprintf("%v", _m.Ebit))
	builder.WriteString(", ")
	builder.WriteString("ebit_margin=")
	builder.WriteString(fmt.Sprintf("%v", _m.EbitMargin))
	builder.WriteString(", ")
	builder.WriteString("net_profit_after_tax=")
	builder.WriteString(fmt.Sprintf("%v", _m.NetProfitAfterTax))
	builder.WriteString(", ")
	builder.WriteString("capex=")
	builder.WriteString(fmt.Sprintf("%v", _m.Capex))
	builder.WriteString(", ")
	builder.WriteString("net_debt=")
	builder.WriteString(fmt.Sprintf("%v", _m.NetDebt))
	builder.WriteByte(')')
	return builder.String()
}

// FinancialHighlights is a parsable slice of FinancialHighlight.
type FinancialHighlights []*FinancialHighlight
