package synergy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meur/wyrmwiki/internal/models"
)

func roster() []models.Character {
	wild := []models.FactionName{models.FactionWildSpirit}
	veil := []models.FactionName{models.FactionIllusionVeil}
	return []models.Character{
		{Name: "Borin", Quality: models.QualityMyth, Class: models.ClassGuardian, Factions: wild, IsGlobal: true},
		{Name: "Serah", Quality: models.QualityMyth, Class: models.ClassPriest, Factions: wild, IsGlobal: true},
		{Name: "Kael", Quality: models.QualityMyth, Class: models.ClassArcher, Factions: wild, IsGlobal: true},
		{Name: "Aria", Quality: models.QualityMyth, Class: models.ClassMage, Factions: wild, IsGlobal: true},
		{Name: "Vex", Quality: models.QualityElite, Class: models.ClassMage, Factions: veil, IsGlobal: false},
		{Name: "Nyx", Quality: models.QualityElite, Class: models.ClassMage, Factions: veil, IsGlobal: false},
	}
}

func TestScoreTeamIdealComposition(t *testing.T) {
	result := ScoreTeam([]string{"Borin", "Serah", "Kael", "Aria"}, roster())

	// Shared faction, full role coverage, all Myth, all global
	assert.Equal(t, 100, result.Score)
	assert.Empty(t, result.Missing)

	total := 0
	for _, c := range result.Components {
		assert.LessOrEqual(t, c.Points, c.Max)
		total += c.Points
	}
	assert.Equal(t, result.Score, total)
}

func TestScoreTeamWeakComposition(t *testing.T) {
	// Two stacked Elite mages, no tank, no healer, not global
	result := ScoreTeam([]string{"Vex", "Nyx"}, roster())
	assert.Less(t, result.Score, 50)

	var roles Component
	for _, c := range result.Components {
		if c.Label == "role coverage" {
			roles = c
		}
	}
	assert.Equal(t, "no Guardian", roles.Detail)
}

func TestScoreTeamUnknownMembers(t *testing.T) {
	result := ScoreTeam([]string{"Borin", "Nobody"}, roster())
	assert.Equal(t, []string{"Nobody"}, result.Missing)
	require.NotEmpty(t, result.Components)
}

func TestScoreTeamAllUnknown(t *testing.T) {
	result := ScoreTeam([]string{"Nobody"}, roster())
	assert.Zero(t, result.Score)
	assert.Empty(t, result.Components)
}

func TestScoreTeamRangeInvariant(t *testing.T) {
	cases := [][]string{
		{"Borin"},
		{"Borin", "Vex"},
		{"Vex", "Nyx", "Aria"},
		{"Borin", "Serah", "Kael", "Aria", "Vex"},
	}
	for _, members := range cases {
		result := ScoreTeam(members, roster())
		assert.GreaterOrEqual(t, result.Score, 0)
		assert.LessOrEqual(t, result.Score, 100)
	}
}
