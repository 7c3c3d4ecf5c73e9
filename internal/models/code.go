package models

// Code represents a redemption code
type Code struct {
	Code        string         `json:"code"`
	Active      bool           `json:"active"`
	Rewards     map[string]int `json:"rewards,omitempty"`
	LastUpdated int64          `json:"last_updated,omitempty"`
}
