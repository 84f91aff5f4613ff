package models

type Tenant struct {
	Resource
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	LeaseID int64  `json:"lease_id"`
}
