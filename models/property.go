package models

// Property is the root of a manager's ownership subtree. It is the only
// record that stores ownership directly (manager_id); descendants derive
// theirs through the parent chain.
type Property struct {
	Resource
	Name         string `json:"name"`
	Address      string `json:"address"`
	City         string `json:"city"`
	State        string `json:"state"`
	ZipCode      string `json:"zip_code"`
	PropertyType string `json:"property_type"`
	ManagerID    int64  `json:"manager_id"`
}
