package api

import (
	"context"
	"net/url"
	"strings"

	"github.com/meur/wyrmwiki/internal/data"
	"github.com/meur/wyrmwiki/internal/listview"
	"github.com/meur/wyrmwiki/internal/models"
)

// Per-page filter criteria. The empty value of each struct is the page's
// "no filters" constant.

type characterFilters struct {
	Search    string   `json:"search"`
	Qualities []string `json:"qualities"`
	Classes   []string `json:"classes"`
	Factions  []string `json:"factions"`
}

type codeFilters struct {
	Search string   `json:"search"`
	Status []string `json:"status"` // "active" / "expired"
}

type statusEffectFilters struct {
	Search string   `json:"search"`
	Types  []string `json:"types"`
}

type wyrmspellFilters struct {
	Search string   `json:"search"`
	Types  []string `json:"types"`
}

type teamFilters struct {
	Search       string   `json:"search"`
	Factions     []string `json:"factions"`
	ContentTypes []string `json:"content_types"`
}

type tierListFilters struct {
	Search       string   `json:"search"`
	ContentTypes []string `json:"content_types"`
}

type howlkinFilters struct {
	Search    string   `json:"search"`
	Qualities []string `json:"qualities"`
}

type subclassFilters struct {
	Search  string   `json:"search"`
	Classes []string `json:"classes"`
}

type factionFilters struct {
	Search string `json:"search"`
}

type gearFilters struct {
	Search string   `json:"search"`
	Sets   []string `json:"sets"`
	Types  []string `json:"types"`
}

type linkFilters struct {
	Search       string   `json:"search"`
	Applications []string `json:"applications"`
}

type resourceFilters struct {
	Search     string   `json:"search"`
	Categories []string `json:"categories"`
}

type artifactFilters struct {
	Search    string   `json:"search"`
	Qualities []string `json:"qualities"`
}

type noblePhantasmFilters struct {
	Search     string   `json:"search"`
	Characters []string `json:"characters"`
}

type goldenAllianceFilters struct {
	Search   string   `json:"search"`
	Howlkins []string `json:"howlkins"`
}

func characterPage(pageSize int) listPage[characterFilters, models.Character] {
	return listPage[characterFilters, models.Character]{
		cfg: listview.Config[characterFilters, models.Character]{
			Predicate: func(f characterFilters, c models.Character) bool {
				if f.Search != "" && !containsFold(c.Name, f.Search) && !containsFold(c.Title, f.Search) {
					return false
				}
				if !inSet(f.Qualities, string(c.Quality)) || !inSet(f.Classes, string(c.Class)) {
					return false
				}
				if len(f.Factions) > 0 {
					match := false
					for _, cf := range c.Factions {
						if inSet(f.Factions, string(cf)) {
							match = true
							break
						}
					}
					if !match {
						return false
					}
				}
				return true
			},
			Compare: func(column string, a, b models.Character) int {
				switch column {
				case "name":
					return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
				case "quality":
					return models.QualityRank(a.Quality) - models.QualityRank(b.Quality)
				case "class":
					return models.ClassRank(a.Class) - models.ClassRank(b.Class)
				case "last_updated":
					return compareInt64(a.LastUpdated, b.LastUpdated)
				}
				return 0
			},
			Default:     models.CompareCharacters,
			Keys:        pageKeys("characters"),
			DefaultMode: listview.ModeGrid,
			PageSize:    pageSize,
		},
		load: func(ctx context.Context, c *data.Catalog) ([]models.Character, error) {
			return data.Load[models.Character](ctx, c, "characters.json")
		},
		apply: func(q url.Values, f *characterFilters) bool {
			touched := false
			if q.Has("search") {
				f.Search, touched = q.Get("search"), true
			}
			if v, ok := csvParam(q, "qualities"); ok {
				f.Qualities, touched = v, true
			}
			if v, ok := csvParam(q, "classes"); ok {
				f.Classes, touched = v, true
			}
			if v, ok := csvParam(q, "factions"); ok {
				f.Factions, touched = v, true
			}
			return touched
		},
	}
}

func codePage(pageSize int) listPage[codeFilters, models.Code] {
	return listPage[codeFilters, models.Code]{
		cfg: listview.Config[codeFilters, models.Code]{
			Predicate: func(f codeFilters, c models.Code) bool {
				if f.Search != "" && !containsFold(c.Code, f.Search) {
					return false
				}
				status := "expired"
				if c.Active {
					status = "active"
				}
				return inSet(f.Status, status)
			},
			Compare: func(column string, a, b models.Code) int {
				switch column {
				case "code":
					return strings.Compare(strings.ToLower(a.Code), strings.ToLower(b.Code))
				case "last_updated":
					return compareInt64(a.LastUpdated, b.LastUpdated)
				}
				return 0
			},
			// Active codes first, newest first within each group
			Default: func(a, b models.Code) int {
				if a.Active != b.Active {
					if a.Active {
						return -1
					}
					return 1
				}
				return -compareInt64(a.LastUpdated, b.LastUpdated)
			},
			Keys:        pageKeys("codes"),
			DefaultMode: listview.ModeList,
			PageSize:    pageSize,
		},
		load: func(ctx context.Context, c *data.Catalog) ([]models.Code, error) {
			return data.Load[models.Code](ctx, c, "codes.json")
		},
		apply: func(q url.Values, f *codeFilters) bool {
			touched := false
			if q.Has("search") {
				f.Search, touched = q.Get("search"), true
			}
			if v, ok := csvParam(q, "status"); ok {
				f.Status, touched = v, true
			}
			return touched
		},
	}
}

func statusEffectPage(pageSize int) listPage[statusEffectFilters, models.StatusEffect] {
	return listPage[statusEffectFilters, models.StatusEffect]{
		cfg: listview.Config[statusEffectFilters, models.StatusEffect]{
			Predicate: func(f statusEffectFilters, e models.StatusEffect) bool {
				if f.Search != "" && !containsFold(e.Name, f.Search) && !containsFold(e.Effect, f.Search) {
					return false
				}
				return inSet(f.Types, string(e.Type))
			},
			Compare: func(column string, a, b models.StatusEffect) int {
				switch column {
				case "name":
					return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
				case "type":
					return models.EffectTypeRank(a.Type) - models.EffectTypeRank(b.Type)
				case "last_updated":
					return compareInt64(a.LastUpdated, b.LastUpdated)
				}
				return 0
			},
			Default:     models.CompareStatusEffects,
			Keys:        pageKeys("status-effects"),
			DefaultMode: listview.ModeList,
			PageSize:    pageSize,
		},
		load: func(ctx context.Context, c *data.Catalog) ([]models.StatusEffect, error) {
			return data.Load[models.StatusEffect](ctx, c, "status-effects.json")
		},
		apply: func(q url.Values, f *statusEffectFilters) bool {
			touched := false
			if q.Has("search") {
				f.Search, touched = q.Get("search"), true
			}
			if v, ok := csvParam(q, "types"); ok {
				f.Types, touched = v, true
			}
			return touched
		},
	}
}

func wyrmspellPage(pageSize int) listPage[wyrmspellFilters, models.Wyrmspell] {
	return listPage[wyrmspellFilters, models.Wyrmspell]{
		cfg: listview.Config[wyrmspellFilters, models.Wyrmspell]{
			Predicate: func(f wyrmspellFilters, s models.Wyrmspell) bool {
				if f.Search != "" && !containsFold(s.Name, f.Search) && !containsFold(s.Effect, f.Search) {
					return false
				}
				return inSet(f.Types, string(s.Type))
			},
			Compare: func(column string, a, b models.Wyrmspell) int {
				switch column {
				case "name":
					return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
				case "type":
					return strings.Compare(string(a.Type), string(b.Type))
				case "quality":
					return models.QualityRank(a.Quality) - models.QualityRank(b.Quality)
				case "last_updated":
					return compareInt64(a.LastUpdated, b.LastUpdated)
				}
				return 0
			},
			Default:     models.CompareWyrmspells,
			Keys:        pageKeys("wyrmspells"),
			DefaultMode: listview.ModeGrid,
			PageSize:    pageSize,
		},
		load: func(ctx context.Context, c *data.Catalog) ([]models.Wyrmspell, error) {
			return data.Load[models.Wyrmspell](ctx, c, "wyrmspells.json")
		},
		apply: func(q url.Values, f *wyrmspellFilters) bool {
			touched := false
			if q.Has("search") {
				f.Search, touched = q.Get("search"), true
			}
			if v, ok := csvParam(q, "types"); ok {
				f.Types, touched = v, true
			}
			return touched
		},
	}
}

func teamPage(pageSize int) listPage[teamFilters, models.Team] {
	return listPage[teamFilters, models.Team]{
		cfg: listview.Config[teamFilters, models.Team]{
			Predicate: func(f teamFilters, t models.Team) bool {
				if f.Search != "" {
					match := containsFold(t.Name, f.Search) || containsFold(t.Author, f.Search)
					for _, m := range t.Members {
						if containsFold(m.CharacterName, f.Search) {
							match = true
							break
						}
					}
					if !match {
						return false
					}
				}
				return inSet(f.Factions, string(t.Faction)) && inSet(f.ContentTypes, t.ContentType)
			},
			Compare: func(column string, a, b models.Team) int {
				switch column {
				case "name":
					return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
				case "author":
					return strings.Compare(strings.ToLower(a.Author), strings.ToLower(b.Author))
				case "faction":
					return strings.Compare(string(a.Faction), string(b.Faction))
				case "last_updated":
					return compareInt64(a.LastUpdated, b.LastUpdated)
				}
				return 0
			},
			// Newest teams first
			Default: func(a, b models.Team) int {
				if c := -compareInt64(a.LastUpdated, b.LastUpdated); c != 0 {
					return c
				}
				return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
			},
			Keys:        pageKeys("teams"),
			DefaultMode: listview.ModeGrid,
			PageSize:    pageSize,
		},
		load: func(ctx context.Context, c *data.Catalog) ([]models.Team, error) {
			return data.Load[models.Team](ctx, c, "teams.json")
		},
		apply: func(q url.Values, f *teamFilters) bool {
			touched := false
			if q.Has("search") {
				f.Search, touched = q.Get("search"), true
			}
			if v, ok := csvParam(q, "factions"); ok {
				f.Factions, touched = v, true
			}
			if v, ok := csvParam(q, "content_types"); ok {
				f.ContentTypes, touched = v, true
			}
			return touched
		},
	}
}

func tierListPage(pageSize int) listPage[tierListFilters, models.TierList] {
	return listPage[tierListFilters, models.TierList]{
		cfg: listview.Config[tierListFilters, models.TierList]{
			Predicate: func(f tierListFilters, tl models.TierList) bool {
				if f.Search != "" && !containsFold(tl.Name, f.Search) && !containsFold(tl.Author, f.Search) {
					return false
				}
				return inSet(f.ContentTypes, tl.ContentType)
			},
			Compare: func(column string, a, b models.TierList) int {
				switch column {
				case "name":
					return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
				case "author":
					return strings.Compare(strings.ToLower(a.Author), strings.ToLower(b.Author))
				case "last_updated":
					return compareInt64(a.LastUpdated, b.LastUpdated)
				}
				return 0
			},
			Default: func(a, b models.TierList) int {
				if c := -compareInt64(a.LastUpdated, b.LastUpdated); c != 0 {
					return c
				}
				return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
			},
			Keys:        pageKeys("tier-lists"),
			DefaultMode: listview.ModeList,
			PageSize:    pageSize,
		},
		load: func(ctx context.Context, c *data.Catalog) ([]models.TierList, error) {
			return data.Load[models.TierList](ctx, c, "tier-lists.json")
		},
		apply: func(q url.Values, f *tierListFilters) bool {
			touched := false
			if q.Has("search") {
				f.Search, touched = q.Get("search"), true
			}
			if v, ok := csvParam(q, "content_types"); ok {
				f.ContentTypes, touched = v, true
			}
			return touched
		},
	}
}

func howlkinPage(pageSize int) listPage[howlkinFilters, models.Howlkin] {
	return listPage[howlkinFilters, models.Howlkin]{
		cfg: listview.Config[howlkinFilters, models.Howlkin]{
			Predicate: func(f howlkinFilters, h models.Howlkin) bool {
				if f.Search != "" && !containsFold(h.Name, f.Search) && !containsFold(h.PassiveEffect, f.Search) {
					return false
				}
				return inSet(f.Qualities, string(h.Quality))
			},
			Compare: func(column string, a, b models.Howlkin) int {
				switch column {
				case "name":
					return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
				case "quality":
					return models.QualityRank(a.Quality) - models.QualityRank(b.Quality)
				case "last_updated":
					return compareInt64(a.LastUpdated, b.LastUpdated)
				}
				return 0
			},
			Default:     models.CompareHowlkins,
			Keys:        pageKeys("howlkins"),
			DefaultMode: listview.ModeGrid,
			PageSize:    pageSize,
		},
		load: func(ctx context.Context, c *data.Catalog) ([]models.Howlkin, error) {
			return data.Load[models.Howlkin](ctx, c, "howlkins.json")
		},
		apply: func(q url.Values, f *howlkinFilters) bool {
			touched := false
			if q.Has("search") {
				f.Search, touched = q.Get("search"), true
			}
			if v, ok := csvParam(q, "qualities"); ok {
				f.Qualities, touched = v, true
			}
			return touched
		},
	}
}

func subclassPage(pageSize int) listPage[subclassFilters, models.Subclass] {
	return listPage[subclassFilters, models.Subclass]{
		cfg: listview.Config[subclassFilters, models.Subclass]{
			Predicate: func(f subclassFilters, sc models.Subclass) bool {
				if f.Search != "" && !containsFold(sc.Name, f.Search) && !containsFold(sc.Effect, f.Search) {
					return false
				}
				return inSet(f.Classes, string(sc.Class))
			},
			Compare: func(column string, a, b models.Subclass) int {
				switch column {
				case "name":
					return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
				case "class":
					return models.ClassRank(a.Class) - models.ClassRank(b.Class)
				case "tier":
					return a.Tier - b.Tier
				case "last_updated":
					return compareInt64(a.LastUpdated, b.LastUpdated)
				}
				return 0
			},
			Default:     models.CompareSubclasses,
			Keys:        pageKeys("subclasses"),
			DefaultMode: listview.ModeList,
			PageSize:    pageSize,
		},
		load: func(ctx context.Context, c *data.Catalog) ([]models.Subclass, error) {
			return data.Load[models.Subclass](ctx, c, "subclasses.json")
		},
		apply: func(q url.Values, f *subclassFilters) bool {
			touched := false
			if q.Has("search") {
				f.Search, touched = q.Get("search"), true
			}
			if v, ok := csvParam(q, "classes"); ok {
				f.Classes, touched = v, true
			}
			return touched
		},
	}
}

func factionPage(pageSize int) listPage[factionFilters, models.Faction] {
	return listPage[factionFilters, models.Faction]{
		cfg: listview.Config[factionFilters, models.Faction]{
			Predicate: func(f factionFilters, fa models.Faction) bool {
				return f.Search == "" ||
					containsFold(string(fa.Name), f.Search) ||
					containsFold(string(fa.Wyrm), f.Search)
			},
			Compare: func(column string, a, b models.Faction) int {
				switch column {
				case "name":
					return strings.Compare(string(a.Name), string(b.Name))
				case "wyrm":
					return strings.Compare(string(a.Wyrm), string(b.Wyrm))
				}
				return 0
			},
			Default:     models.CompareFactions,
			Keys:        pageKeys("factions"),
			DefaultMode: listview.ModeGrid,
			PageSize:    pageSize,
		},
		load: func(ctx context.Context, c *data.Catalog) ([]models.Faction, error) {
			return data.Load[models.Faction](ctx, c, "factions.json")
		},
		apply: func(q url.Values, f *factionFilters) bool {
			if q.Has("search") {
				f.Search = q.Get("search")
				return true
			}
			return false
		},
	}
}

func gearPage(pageSize int) listPage[gearFilters, models.Gear] {
	return listPage[gearFilters, models.Gear]{
		cfg: listview.Config[gearFilters, models.Gear]{
			Predicate: func(f gearFilters, g models.Gear) bool {
				if f.Search != "" && !containsFold(g.Name, f.Search) && !containsFold(g.Set, f.Search) {
					return false
				}
				return inSet(f.Sets, g.Set) && inSet(f.Types, g.Type)
			},
			Compare: func(column string, a, b models.Gear) int {
				switch column {
				case "name":
					return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
				case "set":
					return strings.Compare(strings.ToLower(a.Set), strings.ToLower(b.Set))
				case "type":
					return strings.Compare(strings.ToLower(a.Type), strings.ToLower(b.Type))
				case "last_updated":
					return compareInt64(a.LastUpdated, b.LastUpdated)
				}
				return 0
			},
			Default:     models.CompareGear,
			Keys:        pageKeys("gear"),
			DefaultMode: listview.ModeGrid,
			PageSize:    pageSize,
		},
		load: func(ctx context.Context, c *data.Catalog) ([]models.Gear, error) {
			return data.Load[models.Gear](ctx, c, "gear.json")
		},
		apply: func(q url.Values, f *gearFilters) bool {
			touched := false
			if q.Has("search") {
				f.Search, touched = q.Get("search"), true
			}
			if v, ok := csvParam(q, "sets"); ok {
				f.Sets, touched = v, true
			}
			if v, ok := csvParam(q, "types"); ok {
				f.Types, touched = v, true
			}
			return touched
		},
	}
}

func linkPage(pageSize int) listPage[linkFilters, models.UsefulLink] {
	return listPage[linkFilters, models.UsefulLink]{
		cfg: listview.Config[linkFilters, models.UsefulLink]{
			Predicate: func(f linkFilters, l models.UsefulLink) bool {
				if f.Search != "" && !containsFold(l.Name, f.Search) && !containsFold(l.Description, f.Search) {
					return false
				}
				return inSet(f.Applications, l.Application)
			},
			Compare: func(column string, a, b models.UsefulLink) int {
				switch column {
				case "name":
					return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
				case "application":
					return strings.Compare(strings.ToLower(a.Application), strings.ToLower(b.Application))
				}
				return 0
			},
			Default:     models.CompareUsefulLinks,
			Keys:        pageKeys("useful-links"),
			DefaultMode: listview.ModeList,
			PageSize:    pageSize,
		},
		load: func(ctx context.Context, c *data.Catalog) ([]models.UsefulLink, error) {
			return data.Load[models.UsefulLink](ctx, c, "useful-links.json")
		},
		apply: func(q url.Values, f *linkFilters) bool {
			touched := false
			if q.Has("search") {
				f.Search, touched = q.Get("search"), true
			}
			if v, ok := csvParam(q, "applications"); ok {
				f.Applications, touched = v, true
			}
			return touched
		},
	}
}

func artifactPage(pageSize int) listPage[artifactFilters, models.Artifact] {
	return listPage[artifactFilters, models.Artifact]{
		cfg: listview.Config[artifactFilters, models.Artifact]{
			Predicate: func(f artifactFilters, a models.Artifact) bool {
				if f.Search != "" && !containsFold(a.Name, f.Search) && !containsFold(a.Lore, f.Search) {
					return false
				}
				return inSet(f.Qualities, string(a.Quality))
			},
			Compare: func(column string, a, b models.Artifact) int {
				switch column {
				case "name":
					return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
				case "quality":
					return models.QualityRank(a.Quality) - models.QualityRank(b.Quality)
				case "last_updated":
					return compareInt64(a.LastUpdated, b.LastUpdated)
				}
				return 0
			},
			Default:     models.CompareArtifacts,
			Keys:        pageKeys("artifacts"),
			DefaultMode: listview.ModeGrid,
			PageSize:    pageSize,
		},
		load: func(ctx context.Context, c *data.Catalog) ([]models.Artifact, error) {
			return data.Load[models.Artifact](ctx, c, "artifacts.json")
		},
		apply: func(q url.Values, f *artifactFilters) bool {
			touched := false
			if q.Has("search") {
				f.Search, touched = q.Get("search"), true
			}
			if v, ok := csvParam(q, "qualities"); ok {
				f.Qualities, touched = v, true
			}
			return touched
		},
	}
}

func noblePhantasmPage(pageSize int) listPage[noblePhantasmFilters, models.NoblePhantasm] {
	return listPage[noblePhantasmFilters, models.NoblePhantasm]{
		cfg: listview.Config[noblePhantasmFilters, models.NoblePhantasm]{
			Predicate: func(f noblePhantasmFilters, np models.NoblePhantasm) bool {
				if f.Search != "" && !containsFold(np.Name, f.Search) &&
					!containsFold(np.Character, f.Search) && !containsFold(np.Lore, f.Search) {
					return false
				}
				return inSet(f.Characters, np.Character)
			},
			Compare: func(column string, a, b models.NoblePhantasm) int {
				switch column {
				case "name":
					return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
				case "character":
					return strings.Compare(strings.ToLower(a.Character), strings.ToLower(b.Character))
				case "last_updated":
					return compareInt64(a.LastUpdated, b.LastUpdated)
				}
				return 0
			},
			Default:     models.CompareNoblePhantasms,
			Keys:        pageKeys("noble-phantasms"),
			DefaultMode: listview.ModeGrid,
			PageSize:    pageSize,
		},
		load: func(ctx context.Context, c *data.Catalog) ([]models.NoblePhantasm, error) {
			return data.Load[models.NoblePhantasm](ctx, c, "noble_phantasm.json")
		},
		apply: func(q url.Values, f *noblePhantasmFilters) bool {
			touched := false
			if q.Has("search") {
				f.Search, touched = q.Get("search"), true
			}
			if v, ok := csvParam(q, "characters"); ok {
				f.Characters, touched = v, true
			}
			return touched
		},
	}
}

func goldenAlliancePage(pageSize int) listPage[goldenAllianceFilters, models.GoldenAlliance] {
	return listPage[goldenAllianceFilters, models.GoldenAlliance]{
		cfg: listview.Config[goldenAllianceFilters, models.GoldenAlliance]{
			Predicate: func(f goldenAllianceFilters, g models.GoldenAlliance) bool {
				if f.Search != "" && !containsFold(g.Name, f.Search) {
					return false
				}
				if len(f.Howlkins) > 0 {
					match := false
					for _, h := range g.Howlkins {
						if inSet(f.Howlkins, h) {
							match = true
							break
						}
					}
					if !match {
						return false
					}
				}
				return true
			},
			Compare: func(column string, a, b models.GoldenAlliance) int {
				switch column {
				case "name":
					return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
				case "last_updated":
					return compareInt64(a.LastUpdated, b.LastUpdated)
				}
				return 0
			},
			Default:     models.CompareGoldenAlliances,
			Keys:        pageKeys("golden-alliances"),
			DefaultMode: listview.ModeList,
			PageSize:    pageSize,
		},
		load: func(ctx context.Context, c *data.Catalog) ([]models.GoldenAlliance, error) {
			return data.Load[models.GoldenAlliance](ctx, c, "golden_alliances.json")
		},
		apply: func(q url.Values, f *goldenAllianceFilters) bool {
			touched := false
			if q.Has("search") {
				f.Search, touched = q.Get("search"), true
			}
			if v, ok := csvParam(q, "howlkins"); ok {
				f.Howlkins, touched = v, true
			}
			return touched
		},
	}
}

func resourcePage(pageSize int) listPage[resourceFilters, models.Resource] {
	return listPage[resourceFilters, models.Resource]{
		cfg: listview.Config[resourceFilters, models.Resource]{
			Predicate: func(f resourceFilters, res models.Resource) bool {
				if f.Search != "" && !containsFold(res.Name, f.Search) && !containsFold(res.Description, f.Search) {
					return false
				}
				return inSet(f.Categories, res.Category)
			},
			Compare: func(column string, a, b models.Resource) int {
				switch column {
				case "name":
					return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
				case "category":
					return models.ResourceCategoryRank(a.Category) - models.ResourceCategoryRank(b.Category)
				}
				return 0
			},
			Default:     models.CompareResources,
			Keys:        pageKeys("resources"),
			DefaultMode: listview.ModeList,
			PageSize:    pageSize,
		},
		load: func(ctx context.Context, c *data.Catalog) ([]models.Resource, error) {
			return data.Load[models.Resource](ctx, c, "resources.json")
		},
		apply: func(q url.Values, f *resourceFilters) bool {
			touched := false
			if q.Has("search") {
				f.Search, touched = q.Get("search"), true
			}
			if v, ok := csvParam(q, "categories"); ok {
				f.Categories, touched = v, true
			}
			return touched
		},
	}
}
