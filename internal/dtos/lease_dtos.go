package dtos

import (
	"time"

	"github.com/dnstock/realty-backend/repositories"
)

type CreateLeaseRequest struct {
	StartDate time.Time `json:"start_date" validate:"required"`
	EndDate   time.Time `json:"end_date" validate:"required,gtfield=StartDate"`
	Rent      float64   `json:"rent" validate:"required,gt=0"`
	Deposit   *float64  `json:"deposit,omitempty" validate:"omitempty,gte=0"`
	Notes     *string   `json:"notes,omitempty" validate:"omitempty,max=1000"`
}

func (r *CreateLeaseRequest) Fields() repositories.Fields {
	f := repositories.Fields{
		"start_date": r.StartDate,
		"end_date":   r.EndDate,
		"rent":       r.Rent,
	}
	if r.Deposit != nil {
		f["deposit"] = *r.Deposit
	}
	if r.Notes != nil {
		f["notes"] = *r.Notes
	}
	return f
}

type UpdateLeaseRequest struct {
	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`
	Rent      *float64   `json:"rent,omitempty" validate:"omitempty,gt=0"`
	Deposit   *float64   `json:"deposit,omitempty" validate:"omitempty,gte=0"`
	IsActive  *bool      `json:"is_active,omitempty"`
	IsFlagged *bool      `json:"is_flagged,omitempty"`
	Notes     *string    `json:"notes,omitempty" validate:"omitempty,max=1000"`
}

func (r *UpdateLeaseRequest) Fields() repositories.Fields {
	f := repositories.Fields{}
	if r.StartDate != nil {
		f["start_date"] = *r.StartDate
	}
	if r.EndDate != nil {
		f["end_date"] = *r.EndDate
	}
	if r.Rent != nil {
		f["rent"] = *r.Rent
	}
	if r.Deposit != nil {
		f["deposit"] = *r.Deposit
	}
	if r.IsActive != nil {
		f["is_active"] = *r.IsActive
	}
	if r.IsFlagged != nil {
		f["is_flagged"] = *r.IsFlagged
	}
	if r.Notes != nil {
		f["notes"] = *r.Notes
	}
	return f
}
