package entity

import (
	"time"

	"github.com/google/uuid"
)

// Investment links a fund to a portfolio company with deal attributes.
// One row is created per successful profile extraction run.
type Investment struct {
	ID        uuid.UUID  `json:"id"`
	FundID    *uuid.UUID `json:"fund_id,omitempty"`
	CompanyID uuid.UUID  `json:"company_id"`

	FundRole       *string `json:"fund_role,omitempty"`
	InvestmentType *string `json:"investment_type,omitempty"`

	OwnershipPercent      float64    `json:"ownership_percent"`
	DateOfFirstCompletion *time.Time `json:"date_of_first_completion,omitempty"`
	TransactionValue      float64    `json:"transaction_value"`
	CurrentCost           float64    `json:"current_cost"`
	FairValue             float64    `json:"fair_value"`
}
