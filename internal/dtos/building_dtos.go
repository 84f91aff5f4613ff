package dtos

import "github.com/dnstock/realty-backend/repositories"

type CreateBuildingRequest struct {
	Name        string  `json:"name" validate:"required,min=1,max=100"`
	FloorCount  int     `json:"floor_count" validate:"required,min=1,max=200"`
	HasElevator bool    `json:"has_elevator"`
	HasLaundry  bool    `json:"has_laundry"`
	Notes       *string `json:"notes,omitempty" validate:"omitempty,max=1000"`
}

func (r *CreateBuildingRequest) Fields() repositories.Fields {
	f := repositories.Fields{
		"name":         r.Name,
		"floor_count":  r.FloorCount,
		"has_elevator": r.HasElevator,
		"has_laundry":  r.HasLaundry,
	}
	if r.Notes != nil {
		f["notes"] = *r.Notes
	}
	return f
}

type UpdateBuildingRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	FloorCount  *int    `json:"floor_count,omitempty" validate:"omitempty,min=1,max=200"`
	HasElevator *bool   `json:"has_elevator,omitempty"`
	HasLaundry  *bool   `json:"has_laundry,omitempty"`
	IsActive    *bool   `json:"is_active,omitempty"`
	IsFlagged   *bool   `json:"is_flagged,omitempty"`
	Notes       *string `json:"notes,omitempty" validate:"omitempty,max=1000"`
}

func (r *UpdateBuildingRequest) Fields() repositories.Fields {
	f := repositories.Fields{}
	if r.Name != nil {
		f["name"] = *r.Name
	}
	if r.FloorCount != nil {
		f["floor_count"] = *r.FloorCount
	}
	if r.HasElevator != nil {
		f["has_elevator"] = *r.HasElevator
	}
	if r.HasLaundry != nil {
		f["has_laundry"] = *r.HasLaundry
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
