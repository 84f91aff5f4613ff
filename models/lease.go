package models

import "time"

type Lease struct {
	Resource
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	Rent      float64   `json:"rent"`
	Deposit   *float64  `json:"deposit,omitempty"`
	UnitID    int64     `json:"unit_id"`
}
