package dtos

import "github.com/dnstock/realty-backend/repositories"

type CreateUnitRequest struct {
	UnitNumber  string  `json:"unit_number" validate:"required,min=1,max=20"`
	FloorNumber int     `json:"floor_number" validate:"min=0,max=200"`
	Bedrooms    int     `json:"bedrooms" validate:"min=0,max=20"`
	Bathrooms   float64 `json:"bathrooms" validate:"min=0,max=20"`
	Sqft        int     `json:"sqft" validate:"min=0"`
	IsVacant    bool    `json:"is_vacant"`
	Notes       *string `json:"notes,omitempty" validate:"omitempty,max=1000"`
}

func (r *CreateUnitRequest) Fields() repositories.Fields {
	f := repositories.Fields{
		"unit_number":  r.UnitNumber,
		"floor_number": r.FloorNumber,
		"bedrooms":     r.Bedrooms,
		"bathrooms":    r.Bathrooms,
		"sqft":         r.Sqft,
		"is_vacant":    r.IsVacant,
	}
	if r.Notes != nil {
		f["notes"] = *r.Notes
	}
	return f
}

type UpdateUnitRequest struct {
	UnitNumber  *string  `json:"unit_number,omitempty" validate:"omitempty,min=1,max=20"`
	FloorNumber *int     `json:"floor_number,omitempty" validate:"omitempty,min=0,max=200"`
	Bedrooms    *int     `json:"bedrooms,omitempty" validate:"omitempty,min=0,max=20"`
	Bathrooms   *float64 `json:"bathrooms,omitempty" validate:"omitempty,min=0,max=20"`
	Sqft        *int     `json:"sqft,omitempty" validate:"omitempty,min=0"`
	IsVacant    *bool    `json:"is_vacant,omitempty"`
	IsActive    *bool    `json:"is_active,omitempty"`
	IsFlagged   *bool    `json:"is_flagged,omitempty"`
	Notes       *string  `json:"notes,omitempty" validate:"omitempty,max=1000"`
}

func (r *UpdateUnitRequest) Fields() repositories.Fields {
	f := repositories.Fields{}
	if r.UnitNumber != nil {
		f["unit_number"] = *r.UnitNumber
	}
	if r.FloorNumber != nil {
		f["floor_number"] = *r.FloorNumber
	}
	if r.Bedrooms != nil {
		f["bedrooms"] = *r.Bedrooms
	}
	if r.Bathrooms != nil {
		f["bathrooms"] = *r.Bathrooms
	}
	if r.Sqft != nil {
		f["sqft"] = *r.Sqft
	}
	if r.IsVacant != nil {
		f["is_vacant"] = *r.IsVacant
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
