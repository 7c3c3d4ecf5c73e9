// Package suggest turns "suggest new data" GitHub issues into data-file
// entries, and builds the prefilled new-issue URLs the site links to.
package suggest

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// Kind is one suggestable data category
type Kind string

const (
	KindCode         Kind = "codes"
	KindCharacter    Kind = "character"
	KindWyrmspell    Kind = "wyrmspell"
	KindStatusEffect Kind = "status-effect"
	KindLink         Kind = "links"
	KindTierList     Kind = "tier-list"
	KindTeam         Kind = "team"
)

// kindSpec describes how a kind maps onto issues and data files
type kindSpec struct {
	titlePrefix string
	dataFile    string
	required    []string
}

var kinds = map[Kind]kindSpec{
	KindCode:         {"[Code]", "codes.json", []string{"code"}},
	KindCharacter:    {"[Character]", "characters.json", []string{"name"}},
	KindWyrmspell:    {"[Wyrmspell]", "wyrmspells.json", []string{"name"}},
	KindStatusEffect: {"[Status Effect]", "status-effects.json", []string{"name"}},
	KindLink:         {"[Link]", "useful-links.json", []string{"name", "link"}},
	KindTierList:     {"[Tier List]", "tier-lists.json", []string{"name", "entries"}},
	KindTeam:         {"[Team]", "teams.json", []string{"name", "members"}},
}

// DataFile returns the data file a kind appends to
func (k Kind) DataFile() string {
	return kinds[k].dataFile
}

// KindFromTitle matches an issue title against the known prefixes
func KindFromTitle(title string) (Kind, bool) {
	for kind, spec := range kinds {
		if strings.HasPrefix(title, spec.titlePrefix) {
			return kind, true
		}
	}
	return "", false
}

var jsonBlockRe = regexp.MustCompile("(?s)```json\\s*\\n(.*?)\\n\\s*```")

// ExtractJSON pulls the payload out of a ```json fenced block in an
// issue body.
func ExtractJSON(body string) (map[string]any, error) {
	match := jsonBlockRe.FindStringSubmatch(body)
	if match == nil {
		return nil, fmt.Errorf("no ```json code block found in the issue body")
	}
	var data map[string]any
	if err := json.Unmarshal([]byte(strings.TrimSpace(match[1])), &data); err != nil {
		return nil, fmt.Errorf("invalid JSON in issue body: %w", err)
	}
	return data, nil
}

// Validate checks required fields plus the per-kind list shapes
func Validate(kind Kind, data map[string]any) error {
	spec, ok := kinds[kind]
	if !ok {
		return fmt.Errorf("unknown suggestion kind: %s", kind)
	}

	var missing []string
	for _, field := range spec.required {
		if isEmptyValue(data[field]) {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required fields for %q: %s", kind, strings.Join(missing, ", "))
	}

	switch kind {
	case KindTierList:
		entries, _ := data["entries"].([]any)
		if len(entries) == 0 {
			return fmt.Errorf("tier list must have at least one entry")
		}
		for i, raw := range entries {
			entry, _ := raw.(map[string]any)
			if isEmptyValue(entry["character_name"]) {
				return fmt.Errorf("entry %d is missing character_name", i)
			}
			if isEmptyValue(entry["tier"]) {
				return fmt.Errorf("entry %d is missing tier", i)
			}
		}
	case KindTeam:
		members, _ := data["members"].([]any)
		if len(members) == 0 {
			return fmt.Errorf("team must have at least one member")
		}
		for i, raw := range members {
			member, _ := raw.(map[string]any)
			if isEmptyValue(member["character_name"]) {
				return fmt.Errorf("member %d is missing character_name", i)
			}
		}
	}
	return nil
}

func isEmptyValue(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return val == ""
	case []any:
		return len(val) == 0
	case map[string]any:
		return len(val) == 0
	}
	return false
}

func str(data map[string]any, key string) string {
	if s, ok := data[key].(string); ok {
		return s
	}
	return ""
}

func list(data map[string]any, key string) []any {
	if l, ok := data[key].([]any); ok {
		return l
	}
	return nil
}

// Normalize shapes raw issue data into the entry the data file expects,
// dropping unknown fields and defaulting the optional ones.
func Normalize(kind Kind, data map[string]any) (map[string]any, error) {
	switch kind {
	case KindCode:
		active := true
		if b, ok := data["active"].(bool); ok {
			active = b
		}
		return map[string]any{"code": str(data, "code"), "active": active}, nil

	case KindWyrmspell:
		return map[string]any{
			"name":   str(data, "name"),
			"effect": str(data, "effect"),
			"type":   str(data, "type"),
		}, nil

	case KindStatusEffect:
		return map[string]any{
			"name":   str(data, "name"),
			"type":   str(data, "type"),
			"effect": str(data, "effect"),
			"remark": str(data, "remark"),
		}, nil

	case KindLink:
		return map[string]any{
			"icon":        str(data, "icon"),
			"application": str(data, "application"),
			"name":        str(data, "name"),
			"description": str(data, "description"),
			"link":        str(data, "link"),
		}, nil

	case KindCharacter:
		isGlobal := true
		if b, ok := data["is_global"].(bool); ok {
			isGlobal = b
		}
		return map[string]any{
			"name":            str(data, "name"),
			"title":           str(data, "title"),
			"quality":         str(data, "quality"),
			"character_class": str(data, "character_class"),
			"factions":        orEmptyList(list(data, "factions")),
			"is_global":       isGlobal,
			"subclasses":      orEmptyList(list(data, "subclasses")),
			"height":          str(data, "height"),
			"weight":          str(data, "weight"),
			"origin":          str(data, "origin"),
			"lore":            str(data, "lore"),
			"quote":           str(data, "quote"),
			"talent":          data["talent"],
			"skills":          orEmptyList(list(data, "skills")),
			"noble_phantasm":  data["noble_phantasm"],
		}, nil

	case KindTierList:
		entries := make([]map[string]any, 0, len(list(data, "entries")))
		for _, raw := range list(data, "entries") {
			entry, _ := raw.(map[string]any)
			entries = append(entries, map[string]any{
				"character_name": str(entry, "character_name"),
				"tier":           str(entry, "tier"),
				"note":           str(entry, "note"),
			})
		}
		return map[string]any{
			"name":         str(data, "name"),
			"author":       str(data, "author"),
			"content_type": str(data, "content_type"),
			"description":  str(data, "description"),
			"entries":      entries,
		}, nil

	case KindTeam:
		members := make([]map[string]any, 0, len(list(data, "members")))
		for _, raw := range list(data, "members") {
			member, _ := raw.(map[string]any)
			members = append(members, map[string]any{
				"character_name":  str(member, "character_name"),
				"overdrive_order": member["overdrive_order"],
				"substitutes":     orEmptyList(list(member, "substitutes")),
				"note":            str(member, "note"),
			})
		}
		spells, _ := data["wyrmspells"].(map[string]any)
		return map[string]any{
			"name":         str(data, "name"),
			"author":       str(data, "author"),
			"content_type": str(data, "content_type"),
			"description":  str(data, "description"),
			"faction":      str(data, "faction"),
			"members":      members,
			"wyrmspells": map[string]any{
				"breach":       str(spells, "breach"),
				"refuge":       str(spells, "refuge"),
				"wildcry":      str(spells, "wildcry"),
				"dragons_call": str(spells, "dragons_call"),
			},
		}, nil
	}
	return nil, fmt.Errorf("unknown suggestion kind: %s", kind)
}

func orEmptyList(l []any) []any {
	if l == nil {
		return []any{}
	}
	return l
}

// Append adds a normalized entry to the kind's data file
func Append(dataDir string, kind Kind, entry map[string]any) error {
	path := filepath.Join(dataDir, kinds[kind].dataFile)
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("data file not found: %w", err)
	}

	var existing []map[string]any
	if err := json.Unmarshal(raw, &existing); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	existing = append(existing, entry)
	out, err := json.MarshalIndent(existing, "", "  ")
	if err != nil {
		return err
	}
	out = append(out, '\n')
	return os.WriteFile(path, out, 0o644)
}

// IssueURL builds a prefilled GitHub new-issue URL for a suggestion form.
// repo is "owner/name"; payload becomes the ```json block in the body.
func IssueURL(repo string, kind Kind, summary string, payload map[string]any) (string, error) {
	spec, ok := kinds[kind]
	if !ok {
		return "", fmt.Errorf("unknown suggestion kind: %s", kind)
	}

	body, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", err
	}

	title := spec.titlePrefix + " " + summary
	issueBody := "```json\n" + string(body) + "\n```\n"

	q := url.Values{}
	q.Set("title", title)
	q.Set("body", issueBody)
	q.Set("labels", string(kind))

	return fmt.Sprintf("https://github.com/%s/issues/new?%s", repo, q.Encode()), nil
}
