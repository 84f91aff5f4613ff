package dtos

import (
	"time"

	"github.com/dnstock/realty-backend/repositories"
)

type CreateInsuranceRequest struct {
	Provider       string    `json:"provider" validate:"required,min=1,max=100"`
	PolicyType     string    `json:"policy_type" validate:"required,min=1,max=50"`
	PolicyNumber   string    `json:"policy_number" validate:"required,min=1,max=50"`
	Premium        float64   `json:"premium" validate:"required,gt=0"`
	EffectiveDate  time.Time `json:"effective_date" validate:"required"`
	ExpirationDate time.Time `json:"expiration_date" validate:"required,gtfield=EffectiveDate"`
	Notes          *string   `json:"notes,omitempty" validate:"omitempty,max=1000"`
}

func (r *CreateInsuranceRequest) Fields() repositories.Fields {
	f := repositories.Fields{
		"provider":        r.Provider,
		"policy_type":     r.PolicyType,
		"policy_number":   r.PolicyNumber,
		"premium":         r.Premium,
		"effective_date":  r.EffectiveDate,
		"expiration_date": r.ExpirationDate,
	}
	if r.Notes != nil {
		f["notes"] = *r.Notes
	}
	return f
}

type UpdateInsuranceRequest struct {
	Provider       *string    `json:"provider,omitempty" validate:"omitempty,min=1,max=100"`
	PolicyType     *string    `json:"policy_type,omitempty" validate:"omitempty,min=1,max=50"`
	PolicyNumber   *string    `json:"policy_number,omitempty" validate:"omitempty,min=1,max=50"`
	Premium        *float64   `json:"premium,omitempty" validate:"omitempty,gt=0"`
	EffectiveDate  *time.Time `json:"effective_date,omitempty"`
	ExpirationDate *time.Time `json:"expiration_date,omitempty"`
	IsActive       *bool      `json:"is_active,omitempty"`
	IsFlagged      *bool      `json:"is_flagged,omitempty"`
	Notes          *string    `json:"notes,omitempty" validate:"omitempty,max=1000"`
}

func (r *UpdateInsuranceRequest) Fields() repositories.Fields {
	f := repositories.Fields{}
	if r.Provider != nil {
		f["provider"] = *r.Provider
	}
	if r.PolicyType != nil {
		f["policy_type"] = *r.PolicyType
	}
	if r.PolicyNumber != nil {
		f["policy_number"] = *r.PolicyNumber
	}
	if r.Premium != nil {
		f["premium"] = *r.Premium
	}
	if r.EffectiveDate != nil {
		f["effective_date"] = *r.EffectiveDate
	}
	if r.ExpirationDate != nil {
		f["expiration_date"] = *r.ExpirationDate
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
