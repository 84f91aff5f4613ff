package dtos

import "github.com/dnstock/realty-backend/repositories"

type CreatePropertyRequest struct {
	Name         string  `json:"name" validate:"required,min=1,max=100"`
	Address      string  `json:"address" validate:"required,min=3,max=255"`
	City         string  `json:"city" validate:"required,min=2,max=100"`
	State        string  `json:"state" validate:"required,min=2,max=14"`
	ZipCode      string  `json:"zip_code" validate:"required,min=5,max=10"`
	PropertyType string  `json:"property_type" validate:"required,oneof=residential commercial mixed_use"`
	Notes        *string `json:"notes,omitempty" validate:"omitempty,max=1000"`
}

func (r *CreatePropertyRequest) Fields() repositories.Fields {
	f := repositories.Fields{
		"name":          r.Name,
		"address":       r.Address,
		"city":          r.City,
		"state":         r.State,
		"zip_code":      r.ZipCode,
		"property_type": r.PropertyType,
	}
	if r.Notes != nil {
		f["notes"] = *r.Notes
	}
	return f
}

type UpdatePropertyRequest struct {
	Name         *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Address      *string `json:"address,omitempty" validate:"omitempty,min=3,max=255"`
	City         *string `json:"city,omitempty" validate:"omitempty,min=2,max=100"`
	State        *string `json:"state,omitempty" validate:"omitempty,min=2,max=14"`
	ZipCode      *string `json:"zip_code,omitempty" validate:"omitempty,min=5,max=10"`
	PropertyType *string `json:"property_type,omitempty" validate:"omitempty,oneof=residential commercial mixed_use"`
	IsActive     *bool   `json:"is_active,omitempty"`
	IsFlagged    *bool   `json:"is_flagged,omitempty"`
	Notes        *string `json:"notes,omitempty" validate:"omitempty,max=1000"`
}

func (r *UpdatePropertyRequest) Fields() repositories.Fields {
	f := repositories.Fields{}
	if r.Name != nil {
		f["name"] = *r.Name
	}
	if r.Address != nil {
		f["address"] = *r.Address
	}
	if r.City != nil {
		f["city"] = *r.City
	}
	if r.State != nil {
		f["state"] = *r.State
	}
	if r.ZipCode != nil {
		f["zip_code"] = *r.ZipCode
	}
	if r.PropertyType != nil {
		f["property_type"] = *r.PropertyType
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
