package entity

import (
	"time"

	"github.com/google/uuid"
)

// Correction is a manual override for an extracted field. The pipeline
// never writes these; they form an audit trail of human edits.
type Correction struct {
	ID               uuid.UUID `json:"id"`
	ExtractedFieldID uuid.UUID `json:"extracted_field_id"`

	CorrectedValue  string  `json:"corrected_value"`
	CorrectedByUser *string `json:"corrected_by_user,omitempty"`
	Reason          *string `json:"reason,omitempty"`

	CorrectedAt time.Time `json:"corrected_at"`
}
