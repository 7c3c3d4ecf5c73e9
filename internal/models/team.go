package models

// TeamMember is a slot in a team composition
type TeamMember struct {
	CharacterName  string   `json:"character_name"`
	OverdriveOrder *int     `json:"overdrive_order,omitempty"`
	Substitutes    []string `json:"substitutes,omitempty"`
	Note           string   `json:"note,omitempty"`
}

// WyrmspellLoadout is the recommended spell per slot for a team
type WyrmspellLoadout struct {
	Breach      string `json:"breach,omitempty"`
	Refuge      string `json:"refuge,omitempty"`
	Wildcry     string `json:"wildcry,omitempty"`
	DragonsCall string `json:"dragons_call,omitempty"`
}

// Team represents a community team composition
type Team struct {
	Name        string           `json:"name"`
	Author      string           `json:"author"`
	ContentType string           `json:"content_type"`
	Description string           `json:"description"`
	Faction     FactionName      `json:"faction"`
	Members     []TeamMember     `json:"members"`
	Wyrmspells  WyrmspellLoadout `json:"wyrmspells,omitempty"`
	LastUpdated int64            `json:"last_updated,omitempty"`
}

// MemberNames returns the main-slot character names in order
func (t *Team) MemberNames() []string {
	names := make([]string, 0, len(t.Members))
	for _, m := range t.Members {
		names = append(names, m.CharacterName)
	}
	return names
}
