package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQualityRankOrder(t *testing.T) {
	assert.Less(t, QualityRank(QualityMyth), QualityRank(QualityLegendPlus))
	assert.Less(t, QualityRank(QualityLegendPlus), QualityRank(QualityLegend))
	assert.Less(t, QualityRank(QualityEpic), QualityRank(QualityElite))

	// Unknown qualities sort after everything known
	assert.Greater(t, QualityRank(Quality("???")), QualityRank(QualityElite))
}

func TestTierRankOrder(t *testing.T) {
	assert.Less(t, TierRank(TierSPlus), TierRank(TierS))
	assert.Less(t, TierRank(TierS), TierRank(TierD))
}

func TestCompareCharacters(t *testing.T) {
	guardian := Character{Name: "Borin", Quality: QualityEpic, Class: ClassGuardian}
	mage := Character{Name: "Aria", Quality: QualityMyth, Class: ClassMage}
	priestA := Character{Name: "ana", Quality: QualityLegend, Class: ClassPriest}
	priestB := Character{Name: "Bel", Quality: QualityLegend, Class: ClassPriest}

	// Class outranks quality: a Guardian precedes even a Myth Mage
	assert.Negative(t, CompareCharacters(guardian, mage))
	// Same class and quality falls back to case-insensitive name
	assert.Negative(t, CompareCharacters(priestA, priestB))
	assert.Positive(t, CompareCharacters(priestB, priestA))
	assert.Zero(t, CompareCharacters(priestA, priestA))
}

func TestCompareStatusEffects(t *testing.T) {
	buff := StatusEffect{Name: "Zeal", Type: EffectBuff}
	debuff := StatusEffect{Name: "Ague", Type: EffectDebuff}
	assert.Negative(t, CompareStatusEffects(buff, debuff))
}

func TestCompareSubclasses(t *testing.T) {
	a := Subclass{Name: "Sentinel", Class: ClassGuardian, Tier: 1}
	b := Subclass{Name: "Bulwark", Class: ClassGuardian, Tier: 2}
	assert.Negative(t, CompareSubclasses(a, b))
}

func TestCompareArtifacts(t *testing.T) {
	myth := Artifact{Name: "Zephyr Chime", Quality: QualityMyth}
	epicA := Artifact{Name: "ashen Urn", Quality: QualityEpic}
	epicB := Artifact{Name: "Bell of Dawn", Quality: QualityEpic}

	assert.Negative(t, CompareArtifacts(myth, epicA))
	// Same quality falls back to case-insensitive name
	assert.Negative(t, CompareArtifacts(epicA, epicB))
}

func TestCompareNoblePhantasms(t *testing.T) {
	a := NoblePhantasm{Name: "Dawnpiercer", Character: "Aria"}
	b := NoblePhantasm{Name: "Ashfang", Character: "Borin"}
	c := NoblePhantasm{Name: "Emberbrand", Character: "Borin"}

	// Owning character outranks name
	assert.Negative(t, CompareNoblePhantasms(a, b))
	assert.Negative(t, CompareNoblePhantasms(b, c))
}

func TestCompareGoldenAlliances(t *testing.T) {
	a := GoldenAlliance{Name: "Emberkin Pact"}
	b := GoldenAlliance{Name: "Frostmane Pact"}
	assert.Negative(t, CompareGoldenAlliances(a, b))
}

func TestHasHowlkin(t *testing.T) {
	g := GoldenAlliance{Howlkins: []string{"Cinder", "Sleet"}}
	assert.True(t, g.HasHowlkin("Cinder"))
	assert.False(t, g.HasHowlkin("Moss"))
}

func TestHasFaction(t *testing.T) {
	c := Character{Factions: []FactionName{FactionWildSpirit, FactionIllusionVeil}}
	assert.True(t, c.HasFaction(FactionWildSpirit))
	assert.False(t, c.HasFaction(FactionArcaneWisdom))
}
