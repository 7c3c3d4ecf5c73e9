package models

// GoldenAllianceEffect is the stat bonus granted at an alliance level
type GoldenAllianceEffect struct {
	Level int      `json:"level"`
	Stats []string `json:"stats"`
}

// GoldenAlliance represents a howlkin alliance and its level bonuses
type GoldenAlliance struct {
	Name        string                 `json:"name"`
	Howlkins    []string               `json:"howlkins"`
	Effects     []GoldenAllianceEffect `json:"effects"`
	LastUpdated int64                  `json:"last_updated,omitempty"`
}

// HasHowlkin reports whether the alliance includes the given howlkin
func (g *GoldenAlliance) HasHowlkin(name string) bool {
	for _, h := range g.Howlkins {
		if h == name {
			return true
		}
	}
	return false
}
