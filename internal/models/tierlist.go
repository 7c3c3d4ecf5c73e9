package models

// Tier is a tier-list grade
type Tier string

const (
	TierSPlus Tier = "S+"
	TierS     Tier = "S"
	TierA     Tier = "A"
	TierB     Tier = "B"
	TierC     Tier = "C"
	TierD     Tier = "D"
)

// TierEntry places one character in a tier
type TierEntry struct {
	CharacterName string `json:"character_name"`
	Tier          Tier   `json:"tier"`
	Note          string `json:"note,omitempty"`
}

// TierList represents a community tier list
type TierList struct {
	Name        string      `json:"name"`
	Author      string      `json:"author"`
	ContentType string      `json:"content_type"`
	Description string      `json:"description"`
	Entries     []TierEntry `json:"entries"`
	LastUpdated int64       `json:"last_updated,omitempty"`
}
