package llm

// Per-task JSON-Schema maps (draft 2020-12 subset) for the structured
// objects each prompt requests. Validation is deliberately lenient: every
// field is optional and nullable, numeric-ish fields also accept plain
// numbers, and unrecognized extra fields are ignored. The schemas catch
// wholesale shape violations (arrays, nested objects) without rejecting
// the sparse answers a small local model tends to give.

func textProp() map[string]any {
	return map[string]any{"type": []string{"string", "null"}}
}

func numericProp() map[string]any {
	return map[string]any{"type": []string{"string", "number", "null"}}
}

// BuildEntitySchema describes the entity identification object.
func BuildEntitySchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"fund_name":    textProp(),
			"company_name": textProp(),
		},
	}
}

// BuildCompanySchema describes the company/investment profile object.
func BuildCompanySchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"company_name":          textProp(),
			"holding_company":       textProp(),
			"business_description":  textProp(),
			"head_office_location":  textProp(),
			"fund_role":             textProp(),
			"investment_type":       textProp(),
			"ownership_percent":     numericProp(),
			"first_completion_date": textProp(),
			"transaction_value":     numericProp(),
			"current_cost":          numericProp(),
			"fair_value":            numericProp(),
		},
	}
}

// BuildFinancialSchema describes the financial highlights object.
func BuildFinancialSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"period":               textProp(),
			"currency":             textProp(),
			"revenue":              numericProp(),
			"ebitda":               numericProp(),
			"ebitda_margin":        numericProp(),
			"ebit":                 numericProp(),
			"ebit_margin":          numericProp(),
			"net_profit_after_tax": numericProp(),
			"capex":                numericProp(),
			"net_debt":             numericProp(),
		},
	}
}
