package dtos

import "github.com/dnstock/realty-backend/repositories"

// ----------------------
// Requests
// ----------------------

type RegisterUserRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// UpdateUserRequest carries only the fields a manager may change on their own
// account. Absent fields are left untouched.
type UpdateUserRequest struct {
	Name  *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Notes *string `json:"notes,omitempty" validate:"omitempty,max=1000"`
}

func (r *UpdateUserRequest) Fields() repositories.Fields {
	f := repositories.Fields{}
	if r.Name != nil {
		f["name"] = *r.Name
	}
	if r.Notes != nil {
		f["notes"] = *r.Notes
	}
	return f
}
