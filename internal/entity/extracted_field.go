package entity

import (
	"time"

	"github.com/google/uuid"
)

// ExtractedField is one unit of text pulled out of a document, typically
// one page of raw text. Rows are append-only.
type ExtractedField struct {
	ID         uuid.UUID `json:"id"`
	DocumentID uuid.UUID `json:"document_id"`

	FieldName      string `json:"field_name"`
	ExtractedValue string `json:"extracted_value"`
	PageNumber     *int   `json:"page_number,omitempty"`

	ConfidenceScore *float64  `json:"confidence_score,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}
