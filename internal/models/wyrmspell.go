package models

// WyrmspellType is a wyrmspell slot
type WyrmspellType string

const (
	SpellBreach      WyrmspellType = "Breach"
	SpellRefuge      WyrmspellType = "Refuge"
	SpellWildcry     WyrmspellType = "Wildcry"
	SpellDragonsCall WyrmspellType = "Dragon's Call"
)

// Wyrmspell represents a dragon spell
type Wyrmspell struct {
	Name        string        `json:"name"`
	Effect      string        `json:"effect"`
	Type        WyrmspellType `json:"type"`
	Quality     Quality       `json:"quality,omitempty"`
	LastUpdated int64         `json:"last_updated,omitempty"`
}
