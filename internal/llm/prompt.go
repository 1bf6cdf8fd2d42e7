package llm

import "fmt"

// Prompt builders are pure functions: accumulated text in, task prompt
// out. Each one pins the exact field set for its task and instructs the
// oracle to emit a single JSON object with no surrounding prose. Input
// text is passed through verbatim, however large.

const entityPromptTemplate = `You are an AI that extracts key identifying information from investment reports.

Extract ONLY the fund and company names in valid JSON format:
{
  "fund_name": "",
  "company_name": ""
}

Text:
%s
`

// BuildEntityPrompt seeds entity identification from preview text.
func BuildEntityPrompt(previewText string) string {
	return fmt.Sprintf(entityPromptTemplate, previewText)
}

const companyPromptTemplate = `You are a strict data extraction AI.
Return ONLY a single valid JSON object. No explanations, no markdown, no text outside JSON.

Extract these fields from the report:
{
  "company_name": "",
  "holding_company": "",
  "business_description": "",
  "head_office_location": "",
  "fund_role": "",
  "investment_type": "",
  "ownership_percent": "",
  "first_completion_date": "",
  "transaction_value": "",
  "current_cost": "",
  "fair_value": ""
}

Do not include words like 'Here is' or 'Sure'.
Only output valid JSON.

Text:
%s
`

// BuildCompanyPrompt requests the company/investment profile fields.
func BuildCompanyPrompt(rawText string) string {
	return fmt.Sprintf(companyPromptTemplate, rawText)
}

const financialPromptTemplate = `You are an AI that extracts company financial highlights from an annual report.

Extract ONLY these fields in valid JSON format:
{
  "period": "",
  "currency": "",
  "revenue": "",
  "ebitda": "",
  "ebitda_margin": "",
  "ebit": "",
  "ebit_margin": "",
  "net_profit_after_tax": "",
  "capex": "",
  "net_debt": ""
}

Use only exact numbers from the text below. Do not guess.
Output valid JSON only.

Text:
"""%s"""
`

// BuildFinancialPrompt requests the fixed financial metric set.
func BuildFinancialPrompt(rawText string) string {
	return fmt.Sprintf(financialPromptTemplate, rawText)
}
