package models

// GearSetBonus describes the bonus granted for wearing N pieces of a set
type GearSetBonus struct {
	Quantity    int    `json:"quantity"`
	Description string `json:"description"`
}

// Gear represents a single equippable gear piece
type Gear struct {
	Name        string             `json:"name"`
	Set         string             `json:"set"`
	Type        string             `json:"type"`
	Lore        string             `json:"lore,omitempty"`
	Stats       map[string]float64 `json:"stats,omitempty"`
	SetBonus    GearSetBonus       `json:"set_bonus"`
	LastUpdated int64              `json:"last_updated,omitempty"`
}
