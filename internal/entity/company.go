package entity

import "github.com/google/uuid"

// Company is a portfolio company record. Name is the resolution key.
type Company struct {
	ID                 uuid.UUID `json:"id"`
	Name               string    `json:"name"`
	HoldingCompany     *string   `json:"holding_company,omitempty"`
	Description        *string   `json:"description,omitempty"`
	HeadOfficeLocation *string   `json:"head_office_location,omitempty"`
}
