package models

// Quality is a character/item rarity grade
type Quality string

const (
	QualityMyth       Quality = "Myth"
	QualityLegendPlus Quality = "Legend+"
	QualityLegend     Quality = "Legend"
	QualityEpic       Quality = "Epic"
	QualityElite      Quality = "Elite"
)

// CharacterClass is one of the six combat classes
type CharacterClass string

const (
	ClassGuardian CharacterClass = "Guardian"
	ClassPriest   CharacterClass = "Priest"
	ClassAssassin CharacterClass = "Assassin"
	ClassWarrior  CharacterClass = "Warrior"
	ClassArcher   CharacterClass = "Archer"
	ClassMage     CharacterClass = "Mage"
)

// SubclassRef is a subclass as listed on a character card (the full
// subclass entity lives in subclass.go)
type SubclassRef struct {
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// Ability is a character skill entry
type Ability struct {
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
}

// Character represents a playable character
type Character struct {
	Name          string           `json:"name"`
	Title         string           `json:"title,omitempty"`
	Quality       Quality          `json:"quality"`
	Class         CharacterClass   `json:"character_class"`
	Factions      []FactionName    `json:"factions"`
	IsGlobal      bool             `json:"is_global"`
	Subclasses    []SubclassRef    `json:"subclasses"`
	Portraits     []string         `json:"portraits,omitempty"`
	Illustrations []string         `json:"illustrations,omitempty"`
	Height        string           `json:"height,omitempty"`
	Weight        string           `json:"weight,omitempty"`
	Origin        string           `json:"origin,omitempty"`
	Lore          string           `json:"lore,omitempty"`
	Quote         string           `json:"quote,omitempty"`
	Abilities     []Ability        `json:"abilities,omitempty"`
	LastUpdated   int64            `json:"last_updated,omitempty"`
}

// HasFaction reports whether the character belongs to the given faction
func (c *Character) HasFaction(f FactionName) bool {
	for _, cf := range c.Factions {
		if cf == f {
			return true
		}
	}
	return false
}
