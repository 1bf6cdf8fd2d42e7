package entity

import "github.com/google/uuid"

// Fund is a canonical investment fund record. Name is the resolution key.
type Fund struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Type string    `json:"type"`
}
