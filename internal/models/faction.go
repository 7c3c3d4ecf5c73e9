package models

// FactionName identifies one of the six factions
type FactionName string

const (
	FactionElementalEcho    FactionName = "Elemental Echo"
	FactionWildSpirit       FactionName = "Wild Spirit"
	FactionArcaneWisdom     FactionName = "Arcane Wisdom"
	FactionSanctumGlory     FactionName = "Sanctum Glory"
	FactionOtherworldReturn FactionName = "Otherworld Return"
	FactionIllusionVeil     FactionName = "Illusion Veil"
)

// Wyrm is the whelp associated with a faction
type Wyrm string

const (
	WyrmFire      Wyrm = "Fire Whelp"
	WyrmButterfly Wyrm = "Butterfly Whelp"
	WyrmEmerald   Wyrm = "Emerald Whelp"
	WyrmShadow    Wyrm = "Shadow Whelp"
	WyrmLight     Wyrm = "Light Whelp"
	WyrmDark      Wyrm = "Dark Whelp"
)

// Faction represents a faction and its wyrm
type Faction struct {
	Name                 FactionName `json:"name"`
	Wyrm                 Wyrm        `json:"wyrm"`
	Description          string      `json:"description"`
	RecommendedArtifacts []string    `json:"recommended_artifacts,omitempty"`
	LastUpdated          int64       `json:"last_updated,omitempty"`
}
