package models

import "strings"

// Canonical display orders. Rank tables map a value to its position;
// unknown values rank after every known one.

const unrankedValue = 999

var qualityRank = rankOf(
	string(QualityMyth), string(QualityLegendPlus), string(QualityLegend),
	string(QualityEpic), string(QualityElite),
)

var classRank = rankOf(
	string(ClassGuardian), string(ClassPriest), string(ClassAssassin),
	string(ClassWarrior), string(ClassArcher), string(ClassMage),
)

var effectTypeRank = rankOf(
	string(EffectBuff), string(EffectDebuff), string(EffectSpecial),
	string(EffectControl), string(EffectElemental), string(EffectBlessing),
	string(EffectExclusive),
)

var tierRank = rankOf(
	string(TierSPlus), string(TierS), string(TierA),
	string(TierB), string(TierC), string(TierD),
)

var resourceCategoryRank = rankOf(
	"Currency", "Gift", "Item", "Material", "Summoning", "Shard",
)

func rankOf(values ...string) map[string]int {
	m := make(map[string]int, len(values))
	for i, v := range values {
		m[v] = i
	}
	return m
}

func rank(table map[string]int, value string) int {
	if r, ok := table[value]; ok {
		return r
	}
	return unrankedValue
}

// QualityRank returns the display rank of a quality (Myth first)
func QualityRank(q Quality) int { return rank(qualityRank, string(q)) }

// ClassRank returns the display rank of a class (Guardian first)
func ClassRank(c CharacterClass) int { return rank(classRank, string(c)) }

// EffectTypeRank returns the display rank of a status effect type
func EffectTypeRank(t StatusEffectType) int { return rank(effectTypeRank, string(t)) }

// TierRank returns the display rank of a tier (S+ first)
func TierRank(t Tier) int { return rank(tierRank, string(t)) }

// ResourceCategoryRank returns the display rank of a resource category
func ResourceCategoryRank(c string) int { return rank(resourceCategoryRank, c) }

func compareFold(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}

// Default ascending orderings per data file. Each is the canonical order a
// page shows when no explicit sort column is active.

// CompareCharacters orders by class, then quality, then name
func CompareCharacters(a, b Character) int {
	if c := ClassRank(a.Class) - ClassRank(b.Class); c != 0 {
		return c
	}
	if c := QualityRank(a.Quality) - QualityRank(b.Quality); c != 0 {
		return c
	}
	return compareFold(a.Name, b.Name)
}

// CompareWyrmspells orders by type, then quality, then name
func CompareWyrmspells(a, b Wyrmspell) int {
	if c := compareFold(string(a.Type), string(b.Type)); c != 0 {
		return c
	}
	if c := QualityRank(a.Quality) - QualityRank(b.Quality); c != 0 {
		return c
	}
	return compareFold(a.Name, b.Name)
}

// CompareStatusEffects orders by effect type, then name
func CompareStatusEffects(a, b StatusEffect) int {
	if c := EffectTypeRank(a.Type) - EffectTypeRank(b.Type); c != 0 {
		return c
	}
	return compareFold(a.Name, b.Name)
}

// CompareHowlkins orders by quality, then name
func CompareHowlkins(a, b Howlkin) int {
	if c := QualityRank(a.Quality) - QualityRank(b.Quality); c != 0 {
		return c
	}
	return compareFold(a.Name, b.Name)
}

// CompareResources orders by category, then name
func CompareResources(a, b Resource) int {
	if c := ResourceCategoryRank(a.Category) - ResourceCategoryRank(b.Category); c != 0 {
		return c
	}
	return compareFold(a.Name, b.Name)
}

// CompareUsefulLinks orders by application, then name
func CompareUsefulLinks(a, b UsefulLink) int {
	if c := compareFold(a.Application, b.Application); c != 0 {
		return c
	}
	return compareFold(a.Name, b.Name)
}

// CompareFactions orders by name
func CompareFactions(a, b Faction) int {
	return compareFold(string(a.Name), string(b.Name))
}

// CompareGear orders by set, then name
func CompareGear(a, b Gear) int {
	if c := compareFold(a.Set, b.Set); c != 0 {
		return c
	}
	return compareFold(a.Name, b.Name)
}

// CompareSubclasses orders by class, then tier, then name
func CompareSubclasses(a, b Subclass) int {
	if c := ClassRank(a.Class) - ClassRank(b.Class); c != 0 {
		return c
	}
	if c := a.Tier - b.Tier; c != 0 {
		return c
	}
	return compareFold(a.Name, b.Name)
}

// CompareArtifacts orders by quality, then name
func CompareArtifacts(a, b Artifact) int {
	if c := QualityRank(a.Quality) - QualityRank(b.Quality); c != 0 {
		return c
	}
	return compareFold(a.Name, b.Name)
}

// CompareNoblePhantasms orders by owning character, then name
func CompareNoblePhantasms(a, b NoblePhantasm) int {
	if c := compareFold(a.Character, b.Character); c != 0 {
		return c
	}
	return compareFold(a.Name, b.Name)
}

// CompareGoldenAlliances orders by name
func CompareGoldenAlliances(a, b GoldenAlliance) int {
	return compareFold(a.Name, b.Name)
}
