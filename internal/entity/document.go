package entity

import (
	"time"

	"github.com/google/uuid"
)

// Document represents an ingested PDF report for data transfer between layers.
type Document struct {
	ID        uuid.UUID  `json:"id"`
	FundID    *uuid.UUID `json:"fund_id,omitempty"`
	CompanyID *uuid.UUID `json:"company_id,omitempty"`

	FileName   string    `json:"file_name"`
	FilePath   string    `json:"file_path"`
	UploadedAt time.Time `json:"uploaded_at"`
}
