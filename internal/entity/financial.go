package entity

import "github.com/google/uuid"

// FinancialHighlight is a fixed set of metrics for one reporting period.
// Numeric fields default to zero when the source text had no value, so a
// zero is ambiguous between "true zero" and "absent".
type FinancialHighlight struct {
	ID        uuid.UUID `json:"id"`
	CompanyID uuid.UUID `json:"company_id"`

	Period   string  `json:"period"`
	Currency *string `json:"currency,omitempty"`

	Revenue           float64 `json:"revenue"`
	EBITDA            float64 `json:"ebitda"`
	EBITDAMargin      float64 `json:"ebitda_margin"`
	EBIT              float64 `json:"ebit"`
	EBITMargin        float64 `json:"ebit_margin"`
	NetProfitAfterTax float64 `json:"net_profit_after_tax"`
	Capex             float64 `json:"capex"`
	NetDebt           float64 `json:"net_debt"`
}
