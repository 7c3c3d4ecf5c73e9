package models

// Howlkin represents a howlkin companion
type Howlkin struct {
	Name          string             `json:"name"`
	Quality       Quality            `json:"quality"`
	BasicStats    map[string]float64 `json:"basic_stats,omitempty"`
	PassiveEffect string             `json:"passive_effect,omitempty"`
	LastUpdated   int64              `json:"last_updated,omitempty"`
}
