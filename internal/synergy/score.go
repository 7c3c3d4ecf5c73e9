// Package synergy scores team compositions with a fixed set of weighted
// heuristics over the character roster. The score is advisory, for the
// team-builder UI; it is not a simulation.
package synergy

import "github.com/meur/wyrmwiki/internal/models"

// Component is one heuristic's contribution to the total
type Component struct {
	Label  string `json:"label"`
	Points int    `json:"points"`
	Max    int    `json:"max"`
	Detail string `json:"detail,omitempty"`
}

// Result is a team's synergy score out of 100 with a per-heuristic
// breakdown.
type Result struct {
	Score      int         `json:"score"`
	Components []Component `json:"components"`
	Missing    []string    `json:"missing,omitempty"`
}

// Heuristic weights, summing to 100
const (
	maxFactionCohesion = 30
	maxRoleCoverage    = 30
	maxQuality         = 20
	maxClassSpread     = 10
	maxAvailability    = 10
)

// ScoreTeam scores a set of members. Member names that are not in the
// roster are reported in Result.Missing and excluded from the heuristics.
func ScoreTeam(memberNames []string, roster []models.Character) Result {
	byName := make(map[string]models.Character, len(roster))
	for _, c := range roster {
		byName[c.Name] = c
	}

	var members []models.Character
	var result Result
	for _, name := range memberNames {
		if c, ok := byName[name]; ok {
			members = append(members, c)
		} else {
			result.Missing = append(result.Missing, name)
		}
	}

	if len(members) == 0 {
		return result
	}

	result.Components = []Component{
		factionCohesion(members),
		roleCoverage(members),
		qualityWeight(members),
		classSpread(members),
		availability(members),
	}
	for _, c := range result.Components {
		result.Score += c.Points
	}
	return result
}

// factionCohesion rewards members sharing a faction, which drives the
// faction bonus in game.
func factionCohesion(members []models.Character) Component {
	counts := make(map[models.FactionName]int)
	for _, m := range members {
		for _, f := range m.Factions {
			counts[f]++
		}
	}

	best := 0
	var bestFaction models.FactionName
	for f, n := range counts {
		if n > best {
			best, bestFaction = n, f
		}
	}

	points := maxFactionCohesion * best / len(members)
	detail := ""
	if best > 0 {
		detail = string(bestFaction)
	}
	return Component{Label: "faction cohesion", Points: points, Max: maxFactionCohesion, Detail: detail}
}

// roleCoverage checks for a frontline, a healer, and a damage dealer
func roleCoverage(members []models.Character) Component {
	var hasTank, hasHealer, hasDamage bool
	for _, m := range members {
		switch m.Class {
		case models.ClassGuardian:
			hasTank = true
		case models.ClassPriest:
			hasHealer = true
		default:
			hasDamage = true
		}
	}

	points := 0
	per := maxRoleCoverage / 3
	missing := ""
	if hasTank {
		points += per
	} else {
		missing = "no Guardian"
	}
	if hasHealer {
		points += per
	} else if missing == "" {
		missing = "no Priest"
	}
	if hasDamage {
		points += per
	} else if missing == "" {
		missing = "no damage dealer"
	}
	return Component{Label: "role coverage", Points: points, Max: maxRoleCoverage, Detail: missing}
}

// qualityWeight scales with the average rarity of the members
func qualityWeight(members []models.Character) Component {
	// QualityRank is 0 for Myth through 4 for Elite
	const worstRank = 4
	total := 0
	for _, m := range members {
		r := models.QualityRank(m.Quality)
		if r > worstRank {
			r = worstRank
		}
		total += worstRank - r
	}
	points := maxQuality * total / (worstRank * len(members))
	return Component{Label: "quality", Points: points, Max: maxQuality}
}

// classSpread penalizes stacking one class
func classSpread(members []models.Character) Component {
	distinct := make(map[models.CharacterClass]bool)
	for _, m := range members {
		distinct[m.Class] = true
	}
	points := maxClassSpread * len(distinct) / len(members)
	return Component{Label: "class spread", Points: points, Max: maxClassSpread}
}

// availability rewards teams every player can actually field
func availability(members []models.Character) Component {
	global := 0
	for _, m := range members {
		if m.IsGlobal {
			global++
		}
	}
	points := maxAvailability * global / len(members)
	detail := ""
	if global < len(members) {
		detail = "has non-global members"
	}
	return Component{Label: "availability", Points: points, Max: maxAvailability, Detail: detail}
}
