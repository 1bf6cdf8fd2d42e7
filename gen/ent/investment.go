// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/hunggoodkidz/data-extraction-module/gen/ent/company"
	"github.com/hunggoodkidz/data-extraction-module/gen/ent/fund"
	"github.com/hunggoodkidz/data-extraction-module/gen/ent/investment"
)

// Investment is the model entity for the Investment schema.
type Investment struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// FundID holds the value of the "fund_id" field.
	FundID *uuid.UUID `json:"fund_id,omitempty"`
	// CompanyID holds the value of the "company_id" field.
	CompanyID uuid.UUID `json:"company_id,omitempty"`
	// FundRole holds the value of the "fund_role" field.
	FundRole *string `json:"fund_role,omitempty"`
	// InvestmentType holds the value of the "investment_type" field.
	InvestmentType *string `json:"investment_type,omitempty"`
	// OwnershipPercent holds the value of the "ownership_percent" field.
	OwnershipPercent float64 `json:"ownership_percent,omitempty"`
	// DateOfFirstCompletion holds the value of the "date_of_first_completion" field.
	DateOfFirstCompletion *time.Time `json:"date_of_first_completion,omitempty"`
	// TransactionValue holds the value of the "transaction_value" field.
	TransactionValue float64 `json:"transaction_value,omitempty"`
	// CurrentCost holds the value of the "current_cost" field.
	CurrentCost float64 `json:"current_cost,omitempty"`
	// FairValue holds the value of the "fair_value" field.
	FairValue float64 `json:"fair_value,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the InvestmentQuery when eager-loading is set.
	Edges        InvestmentEdges `json:"edges"`
	selectValues sql.SelectValues
}

// InvestmentEdges holds the relations/edges for other nodes in the graph.
type InvestmentEdges struct {
	// Fund holds the value of the fund edge.
	Fund *Fund `json:"fund,omitempty"`
	// Company holds the value of the company edge.
	Company *Company `json:"company,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// FundOrErr returns the Fund value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e InvestmentEdges) FundOrErr() (*Fund, error) {
	if e.Fund != nil {
		return e.Fund, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: fund.Label}
	}
	return nil, &NotLoadedError{edge: "fund"}
}

// CompanyOrErr returns the Company value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e InvestmentEdges) CompanyOrErr() (*Company, error) {
	if e.Company != nil {
		return e.Company, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: company.Label}
	}
	return nil, &NotLoadedError{edge: "company"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Investment) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case investment.FieldFundID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case investment.FieldOwnershipPercent, investment.FieldTransactionValue, investment.FieldCurrentCost, investment.FieldFairValue:
			values[i] = new(sql.NullFloat64)
		case investment.FieldFundRole, investment.FieldInvestmentType:
			values[i] = new(sql.NullString)
		case investment.FieldDateOfFirstCompletion:
			values[i] = new(sql.NullTime)
		case investment.FieldID, investment.FieldCompanyID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Investment fields.
func (_m *Investment) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case investment.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case investment.FieldFundID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field fund_id", values[i])
			} else if value.Valid {
				_m.FundID = new(uuid.UUID)
				*_m.FundID = *value.S.(*uuid.UUID)
			}
		case investment.FieldCompanyID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field company_id", values[i])
			} else if value != nil {
				_m.CompanyID = *value
			}
		case investment.FieldFundRole:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field fund_role", values[i])
			} else if value.Valid {
				_m.FundRole = new(string)
				*_m.FundRole = value.String
			}
		case investment.FieldInvestmentType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field investment_type", values[i])
			} else if value.Valid {
				_m.InvestmentType = new(string)
				*_m.InvestmentType = value.String
			}
		case investment.FieldOwnershipPercent:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field ownership_percent", values[i])
			} else if value.Valid {
				_m.OwnershipPercent = value.Float64
			}
		case investment.FieldDateOfFirstCompletion:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field date_of_first_completion", values[i])
			} else if value.Valid {
				_m.DateOfFirstCompletion = new(time.Time)
				*_m.DateOfFirstCompletion = value.Time
			}
		case investment.FieldTransactionValue:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field transaction_value", values[i])
			} else if value.Valid {
				_m.TransactionValue = value.Float64
			}
		case investment.FieldCurrentCost:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field current_cost", values[i])
			} else if value.Valid {
				_m.CurrentCost = value.Float64
			}
		case investment.FieldFairValue:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field fair_value", values[i])
			} else if value.Valid {
				_m.FairValue = value.Float64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Investment.
// This includes values selected through modifiers, order, etc.
func (_m *Investment) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryFund queries the "fund" edge of the Investment entity.
func (_m *Investment) QueryFund() *FundQuery {
	return NewInvestmentClient(_m.config).QueryFund(_m)
}

// QueryCompany queries the "company" edge of the Investment entity.
func (_m *Investment) QueryCompany() *CompanyQuery {
	return NewInvestmentClient(_m.config).QueryCompany(_m)
}

// Update returns a builder for updating this Investment.
// Note that you need to call Investment.Unwrap() before calling this method if this Investment
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Investment) Update() *InvestmentUpdateOne {
	return NewInvestmentClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Investment entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Investment) Unwrap() *Investment {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Investment is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Investment) String() string {
	var builder strings.Builder
	builder.WriteString("Investment(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	if v := _m.FundID; v != nil {
		builder.WriteString("fund_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("company_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.CompanyID))
	builder.WriteString(", ")
	if v := _m.FundRole; v != nil {
		builder.WriteString("fund_role=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.InvestmentType; v != nil {
		builder.WriteString("investment_type=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("ownership_percent=")
	builder.WriteString(fmt.Sprintf("%v", _m.OwnershipPercent))
	builder.WriteString(", ")
	if v := _m.DateOfFirstCompletion; v != nil {
		builder.WriteString("date_of_first_completion=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("transaction_value=")
	builder.WriteString(fmt.Sprintf("%v", _m.TransactionValue))
	builder.WriteString(", ")
	builder.WriteString("current_cost=")
	builder.WriteString(fmt.Sprintf("%v", _m.CurrentCost))
	builder.WriteString(", ")
	builder.WriteString("fair_value=")
	builder.WriteString(fmt.Sprintf("%v", _m.FairValue))
	builder.WriteByte(')')
	return builder.String()
}

// Investments is a parsable slice of Investment.
type Investments []*Investment
