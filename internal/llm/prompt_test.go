package llm

import (
	"strings"
	"testing"
)

func TestBuildEntityPrompt(t *testing.T) {
	p := BuildEntityPrompt("Quarterly report for Alpha Fund III")
	if !strings.Contains(p, `"fund_name"`) || !strings.Contains(p, `"company_name"`) {
		t.Error("entity prompt missing identification fields")
	}
	if !strings.Contains(p, "Quarterly report for Alpha Fund III") {
		t.Error("entity prompt missing input text")
	}
}

func TestBuildCompanyPrompt(t *testing.T) {
	p := BuildCompanyPrompt("body text")
	for _, field := range []string{
		"company_name", "holding_company", "business_description",
		"head_office_location", "fund_role", "investment_type",
		"ownership_percent", "first_completion_date", "transaction_value",
		"current_cost", "fair_value",
	} {
		if !strings.Contains(p, `"`+field+`"`) {
			t.Errorf("company prompt missing field %q", field)
		}
	}
	if !strings.Contains(p, "body text") {
		t.Error("company prompt missing input text")
	}
}

func TestBuildFinancialPrompt(t *testing.T) {
	p := BuildFinancialPrompt("fy2023 numbers")
	for _, field := range []string{
		"period", "currency", "revenue", "ebitda", "ebitda_margin",
		"ebit", "ebit_margin", "net_profit_after_tax", "capex", "net_debt",
	} {
		if !strings.Contains(p, `"`+field+`"`) {
			t.Errorf("financial prompt missing field %q", field)
		}
	}
	// the financial task wraps the text in triple quotes
	if !strings.Contains(p, `"""fy2023 numbers"""`) {
		t.Error("financial prompt missing quoted input text")
	}
}

func TestValidateObjectLenient(t *testing.T) {
	obj := map[string]any{
		"fund_name":    nil,
		"company_name": "Beta Holdings",
		"extra_field":  "ignored",
	}
	if err := ValidateObject(BuildEntitySchema(), obj); err != nil {
		t.Errorf("lenient schema rejected sparse object: %v", err)
	}
}

func TestValidateObjectShapeViolation(t *testing.T) {
	obj := map[string]any{
		"fund_name": []any{"not", "a", "scalar"},
	}
	if err := ValidateObject(BuildEntitySchema(), obj); err == nil {
		t.Error("expected shape violation for array-valued field")
	}
}

func TestValidateObjectNumericish(t *testing.T) {
	obj := map[string]any{
		"revenue": 1200.5,
		"ebitda":  "350",
		"capex":   nil,
	}
	if err := ValidateObject(BuildFinancialSchema(), obj); err != nil {
		t.Errorf("numeric-ish fields rejected: %v", err)
	}
}
