package models

import "time"

// Insurance is a tenant's policy record, the leaf of the hierarchy.
type Insurance struct {
	Resource
	Provider       string    `json:"provider"`
	PolicyType     string    `json:"policy_type"`
	PolicyNumber   string    `json:"policy_number"`
	Premium        float64   `json:"premium"`
	EffectiveDate  time.Time `json:"effective_date"`
	ExpirationDate time.Time `json:"expiration_date"`
	TenantID       int64     `json:"tenant_id"`
}
