package llm

import "context"

// Completer is the completion oracle the pipeline depends on: one prompt
// in, raw text out. Alternate backends can be substituted without
// touching the pipeline.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// EntityNames is the shape of the entity identification task.
type EntityNames struct {
	FundName    string `json:"fund_name"`
	CompanyName string `json:"company_name"`
}

// CompanyProfile is the shape of the company/investment task. Every field
// is optional from the consumer's perspective; missing values arrive as
// empty strings (text) or zero (numerics) after coercion.
type CompanyProfile struct {
	CompanyName         string `json:"company_name"`
	HoldingCompany      string `json:"holding_company"`
	BusinessDescription string `json:"business_description"`
	HeadOfficeLocation  string `json:"head_office_location"`
	FundRole            string `json:"fund_role"`
	InvestmentType      string `json:"investment_type"`
	OwnershipPercent    string `json:"ownership_percent"`
	FirstCompletionDate string `json:"first_completion_date"`
	TransactionValue    string `json:"transaction_value"`
	CurrentCost         string `json:"current_cost"`
	FairValue           string `json:"fair_value"`
}

// FinancialFields is the shape of the financial highlights task.
type FinancialFields struct {
	Period            string `json:"period"`
	Currency          string `json:"currency"`
	Revenue           string `json:"revenue"`
	EBITDA            string `json:"ebitda"`
	EBITDAMargin      string `json:"ebitda_margin"`
	EBIT              string `json:"ebit"`
	EBITMargin        string `json:"ebit_margin"`
	NetProfitAfterTax string `json:"net_profit_after_tax"`
	Capex             string `json:"capex"`
	NetDebt           string `json:"net_debt"`
}
