package dtos

import "github.com/dnstock/realty-backend/repositories"

type CreateTenantRequest struct {
	Name  string  `json:"name" validate:"required,min=1,max=100"`
	Email string  `json:"email" validate:"required,email"`
	Phone string  `json:"phone" validate:"required,e164"`
	Notes *string `json:"notes,omitempty" validate:"omitempty,max=1000"`
}

func (r *CreateTenantRequest) Fields() repositories.Fields {
	f := repositories.Fields{
		"name":  r.Name,
		"email": r.Email,
		"phone": r.Phone,
	}
	if r.Notes != nil {
		f["notes"] = *r.Notes
	}
	return f
}

type UpdateTenantRequest struct {
	Name      *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Email     *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone     *string `json:"phone,omitempty" validate:"omitempty,e164"`
	IsActive  *bool   `json:"is_active,omitempty"`
	IsFlagged *bool   `json:"is_flagged,omitempty"`
	Notes     *string `json:"notes,omitempty" validate:"omitempty,max=1000"`
}

func (r *UpdateTenantRequest) Fields() repositories.Fields {
	f := repositories.Fields{}
	if r.Name != nil {
		f["name"] = *r.Name
	}
	if r.Email != nil {
		f["email"] = *r.Email
	}
	if r.Phone != nil {
		f["phone"] = *r.Phone
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
