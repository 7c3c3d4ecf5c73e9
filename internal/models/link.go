package models

// UsefulLink is an external tool or community resource
type UsefulLink struct {
	Icon        string `json:"icon,omitempty"`
	Application string `json:"application"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Link        string `json:"link"`
	LastUpdated int64  `json:"last_updated,omitempty"`
}
