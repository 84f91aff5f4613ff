package models

// Unit is a tenant-addressable space inside a building.
type Unit struct {
	Resource
	UnitNumber  string  `json:"unit_number"`
	FloorNumber int     `json:"floor_number"`
	Bedrooms    int     `json:"bedrooms"`
	Bathrooms   float64 `json:"bathrooms"`
	Sqft        int     `json:"sqft"`
	IsVacant    bool    `json:"is_vacant"`
	BuildingID  int64   `json:"building_id"`
}
