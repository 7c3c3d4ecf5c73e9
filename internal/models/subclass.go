package models

// Subclass represents a full subclass entry (tier, bonuses, effect)
type Subclass struct {
	Name        string         `json:"name"`
	Class       CharacterClass `json:"class"`
	Tier        int            `json:"tier"`
	Bonuses     []string       `json:"bonuses"`
	Effect      string         `json:"effect"`
	LastUpdated int64          `json:"last_updated,omitempty"`
}
