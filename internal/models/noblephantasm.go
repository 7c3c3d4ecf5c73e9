package models

// NoblePhantasmEffect is a passive effect line, optionally gated on an
// upgrade tier.
type NoblePhantasmEffect struct {
	Tier        string `json:"tier,omitempty"`
	TierLevel   int    `json:"tier_level,omitempty"`
	Description string `json:"description"`
}

// NoblePhantasmSkill is an active skill line unlocked at a level
type NoblePhantasmSkill struct {
	Level       int    `json:"level"`
	Tier        string `json:"tier,omitempty"`
	TierLevel   int    `json:"tier_level,omitempty"`
	Description string `json:"description"`
}

// NoblePhantasm represents a character's signature weapon
type NoblePhantasm struct {
	Name        string                `json:"name"`
	Character   string                `json:"character,omitempty"`
	IsGlobal    bool                  `json:"is_global"`
	Lore        string                `json:"lore,omitempty"`
	Effects     []NoblePhantasmEffect `json:"effects"`
	Skills      []NoblePhantasmSkill  `json:"skills"`
	LastUpdated int64                 `json:"last_updated,omitempty"`
}
