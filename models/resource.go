package models

import "time"

// Resource is the record shape shared by every row in the ownership
// hierarchy. Embed it anonymously.
type Resource struct {
	ID        int64     `json:"id"`
	IsActive  bool      `json:"is_active"`
	IsFlagged bool      `json:"is_flagged"`
	Notes     *string   `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ----- interface helpers -----
func (r *Resource) GetID() int64   { return r.ID }
func (r *Resource) SetID(id int64) { r.ID = id }
