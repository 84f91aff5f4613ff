package models

type Building struct {
	Resource
	Name        string `json:"name"`
	FloorCount  int    `json:"floor_count"`
	HasElevator bool   `json:"has_elevator"`
	HasLaundry  bool   `json:"has_laundry"`
	PropertyID  int64  `json:"property_id"`
}
