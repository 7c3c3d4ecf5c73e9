package data

import (
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"reflect"
	"sort"
	"strings"

	"github.com/meur/wyrmwiki/internal/models"
)

// Files that carry last_updated timestamps on their entries
var timestampedFiles = map[string]bool{
	"artifacts.json":        true,
	"changelog.json":        true,
	"characters.json":       true,
	"factions.json":         true,
	"gear.json":             true,
	"gear_sets.json":        true,
	"golden_alliances.json": true,
	"howlkins.json":         true,
	"noble_phantasm.json":   true,
	"resources.json":        true,
	"status-effects.json":   true,
	"subclasses.json":       true,
	"teams.json":            true,
	"useful-links.json":     true,
	"wyrmspells.json":       true,
}

// Identity key used to match entries across current vs. committed versions
var identityKeys = map[string]string{
	"changelog.json": "version",
	"codes.json":     "code",
}

func identityKey(filename string) string {
	if k, ok := identityKeys[filename]; ok {
		return k
	}
	return "name"
}

// entryLess is a canonical ordering over raw JSON entries of one file.
// Files without an entry here keep their insertion order.
var entryLess = map[string]func(a, b map[string]any) bool{
	"characters.json": func(a, b map[string]any) bool {
		return compareEntries(a, b,
			classKey, qualityKey, nameKey) < 0
	},
	"wyrmspells.json": func(a, b map[string]any) bool {
		return compareEntries(a, b,
			foldKey("type"), qualityKey, nameKey) < 0
	},
	"status-effects.json": func(a, b map[string]any) bool {
		return compareEntries(a, b, effectTypeKey, nameKey) < 0
	},
	"resources.json": func(a, b map[string]any) bool {
		return compareEntries(a, b, resourceCategoryKey, qualityKey, nameKey) < 0
	},
	"useful-links.json": func(a, b map[string]any) bool {
		return compareEntries(a, b, foldKey("application"), nameKey) < 0
	},
	"factions.json": func(a, b map[string]any) bool {
		return compareEntries(a, b, nameKey) < 0
	},
	"howlkins.json": func(a, b map[string]any) bool {
		return compareEntries(a, b, qualityKey, nameKey) < 0
	},
	"artifacts.json": func(a, b map[string]any) bool {
		return compareEntries(a, b, qualityKey, nameKey) < 0
	},
	"noble_phantasm.json": func(a, b map[string]any) bool {
		return compareEntries(a, b, foldKey("character"), nameKey) < 0
	},
}

type entryKey func(map[string]any) string

func stringField(e map[string]any, field string) string {
	if v, ok := e[field].(string); ok {
		return v
	}
	return ""
}

func foldKey(field string) entryKey {
	return func(e map[string]any) string {
		return strings.ToLower(stringField(e, field))
	}
}

var nameKey = foldKey("name")

func qualityKey(e map[string]any) string {
	return fmt.Sprintf("%03d", models.QualityRank(models.Quality(stringField(e, "quality"))))
}

func classKey(e map[string]any) string {
	return fmt.Sprintf("%03d", models.ClassRank(models.CharacterClass(stringField(e, "character_class"))))
}

func effectTypeKey(e map[string]any) string {
	return fmt.Sprintf("%03d", models.EffectTypeRank(models.StatusEffectType(stringField(e, "type"))))
}

func resourceCategoryKey(e map[string]any) string {
	return fmt.Sprintf("%03d", models.ResourceCategoryRank(stringField(e, "category")))
}

func compareEntries(a, b map[string]any, keys ...entryKey) int {
	for _, key := range keys {
		if c := strings.Compare(key(a), key(b)); c != 0 {
			return c
		}
	}
	return 0
}

// NormalizeOptions selects which normalize steps run
type NormalizeOptions struct {
	Sort       bool
	Timestamps bool
	// Now is the Unix timestamp written into bumped entries
	Now int64
	// GitDir is the repository root used to load committed file versions;
	// empty disables the diff and bumps nothing that already exists.
	GitDir string
}

// FileReport summarizes what Normalize did to one file
type FileReport struct {
	Filename string
	Exists   bool
	Sorted   bool
	Bumped   int
	Skipped  int
}

// NormalizeFile sorts a data file's entries into canonical order and bumps
// last_updated on entries that differ from the committed version. New
// entries are always bumped; entries without a timestamp field are left
// alone.
func NormalizeFile(dataDir, filename string, opts NormalizeOptions) (FileReport, error) {
	report := FileReport{Filename: filename}

	path := filepath.Join(dataDir, filename)
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return report, nil
	}
	if err != nil {
		return report, err
	}
	report.Exists = true

	var entries []map[string]any
	if err := json.Unmarshal(raw, &entries); err != nil {
		return report, fmt.Errorf("parse %s: %w", filename, err)
	}

	if opts.Sort {
		if less, ok := entryLess[filename]; ok {
			sort.SliceStable(entries, func(i, j int) bool {
				return less(entries[i], entries[j])
			})
			report.Sorted = true
		}
	}

	if opts.Timestamps && timestampedFiles[filename] {
		committed := loadCommitted(opts.GitDir, dataDir, filename)
		idKey := identityKey(filename)

		for _, entry := range entries {
			identity := stringField(entry, idKey)
			prev, known := committed[identity]

			var changed bool
			switch {
			case !known:
				changed = true
			case entry["last_updated"] == nil:
				report.Skipped++
				continue
			default:
				changed = !reflect.DeepEqual(withoutTimestamp(entry), withoutTimestamp(prev))
			}

			if changed {
				entry["last_updated"] = opts.Now
				report.Bumped++
			} else {
				report.Skipped++
			}
		}
	}

	out, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return report, err
	}
	out = append(out, '\n')
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return report, err
	}
	return report, nil
}

func withoutTimestamp(entry map[string]any) map[string]any {
	out := make(map[string]any, len(entry))
	for k, v := range entry {
		if k == "last_updated" {
			continue
		}
		out[k] = v
	}
	return out
}

// loadCommitted returns the HEAD-committed version of a data file keyed by
// entry identity. Missing git, untracked files, and parse failures all
// yield an empty map, which makes every current entry look new.
func loadCommitted(gitDir, dataDir, filename string) map[string]map[string]any {
	committed := make(map[string]map[string]any)
	if gitDir == "" {
		return committed
	}

	rel, err := filepath.Rel(gitDir, filepath.Join(dataDir, filename))
	if err != nil {
		return committed
	}

	cmd := exec.Command("git", "-C", gitDir, "show", "HEAD:"+filepath.ToSlash(rel))
	raw, err := cmd.Output()
	if err != nil {
		return committed
	}

	var entries []map[string]any
	if err := json.Unmarshal(raw, &entries); err != nil {
		return committed
	}

	idKey := identityKey(filename)
	for _, entry := range entries {
		if id := stringField(entry, idKey); id != "" {
			committed[id] = entry
		}
	}
	return committed
}

// DataFiles lists the JSON files in a data directory, sorted by name
func DataFiles(dataDir string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(dataDir, "*.json"))
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, filepath.Base(m))
	}
	sort.Strings(names)
	return names, nil
}
