package models

// Identity is the subset of the external identity provider's claims the core
// cares about. A nil identity means a guest placement.
type Identity struct {
	User_id string `json:"user_id"`
	Name    string `json:"name"`
}
