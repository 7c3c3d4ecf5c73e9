package models

// ArtifactEffect is one level step of an artifact's effect
type ArtifactEffect struct {
	Level       int    `json:"level"`
	Description string `json:"description"`
}

// ArtifactTreasure is a class-bound treasure slotted into an artifact
type ArtifactTreasure struct {
	Name   string           `json:"name"`
	Lore   string           `json:"lore,omitempty"`
	Class  CharacterClass   `json:"character_class"`
	Effect []ArtifactEffect `json:"effect"`
}

// Artifact represents a placeable artifact and its treasures
type Artifact struct {
	Name        string             `json:"name"`
	IsGlobal    bool               `json:"is_global"`
	Lore        string             `json:"lore,omitempty"`
	Quality     Quality            `json:"quality"`
	Effect      []ArtifactEffect   `json:"effect"`
	Width       int                `json:"width"`
	Height      int                `json:"height"`
	Treasures   []ArtifactTreasure `json:"treasures,omitempty"`
	LastUpdated int64              `json:"last_updated,omitempty"`
}
