package models

// Resource is an in-game currency, material or item
type Resource struct {
	Name        string `json:"name"`
	Category    string `json:"category,omitempty"`
	Description string `json:"description,omitempty"`
	LastUpdated int64  `json:"last_updated,omitempty"`
}
