package constants

// Fallback entity names used when the model returns nulls for the
// identification fields. Distinct from a malformed response, which aborts
// ingestion entirely.
const (
	UnknownFund    = "Unknown Fund"
	UnknownCompany = "Unknown Company"
)

// DefaultFundType is assigned to funds created during entity resolution.
const DefaultFundType = "Private Equity"

// DefaultCompanyDescription is assigned to companies created during
// entity resolution (as opposed to profile extraction, which fills the
// description from the report).
const DefaultCompanyDescription = "Detected from uploaded document"

// RawTextField is the field_name under which per-page document text is
// stored in extracted_field rows.
const RawTextField = "raw_text"

// DefaultPreviewPages is how many leading pages feed the entity
// identification prompt.
const DefaultPreviewPages = 2
