package models

// User is a property manager, the authenticated owner of a subtree of
// records. Users have no parent; every other record resolves its owner by
// walking up to a property's manager_id.
type User struct {
	Resource
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"-"` // bcrypt hash, never serialized
}
