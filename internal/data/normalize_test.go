package data

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readEntries(t *testing.T, dir, name string) []map[string]any {
	t.Helper()
	raw, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	var entries []map[string]any
	require.NoError(t, json.Unmarshal(raw, &entries))
	return entries
}

func TestNormalizeSortsCharacters(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "characters.json", `[
		{"name": "Zara", "quality": "Elite", "character_class": "Mage"},
		{"name": "Borin", "quality": "Myth", "character_class": "Guardian"},
		{"name": "Aria", "quality": "Myth", "character_class": "Mage"}
	]`)

	report, err := NormalizeFile(dir, "characters.json", NormalizeOptions{Sort: true})
	require.NoError(t, err)
	assert.True(t, report.Sorted)

	entries := readEntries(t, dir, "characters.json")
	require.Len(t, entries, 3)
	// Guardian before Mage; within Mage, Myth before Elite
	assert.Equal(t, "Borin", entries[0]["name"])
	assert.Equal(t, "Aria", entries[1]["name"])
	assert.Equal(t, "Zara", entries[2]["name"])
}

func TestNormalizeBumpsNewEntries(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "howlkins.json", `[
		{"name": "Embertail", "quality": "Epic"}
	]`)

	// No git dir: everything counts as new
	report, err := NormalizeFile(dir, "howlkins.json", NormalizeOptions{
		Timestamps: true,
		Now:        1700000000,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, report.Bumped)

	entries := readEntries(t, dir, "howlkins.json")
	assert.Equal(t, float64(1700000000), entries[0]["last_updated"])
}

func TestNormalizeSkipsUntimestampedFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "tier-lists.json", `[{"name": "PvP"}]`)

	report, err := NormalizeFile(dir, "tier-lists.json", NormalizeOptions{
		Timestamps: true,
		Now:        1700000000,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, report.Bumped)

	entries := readEntries(t, dir, "tier-lists.json")
	assert.Nil(t, entries[0]["last_updated"])
}

func TestNormalizeSortsArtifacts(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "artifacts.json", `[
		{"name": "Bell of Dawn", "quality": "Epic"},
		{"name": "Zephyr Chime", "quality": "Myth"},
		{"name": "Ashen Urn", "quality": "Epic"}
	]`)

	report, err := NormalizeFile(dir, "artifacts.json", NormalizeOptions{Sort: true})
	require.NoError(t, err)
	assert.True(t, report.Sorted)

	entries := readEntries(t, dir, "artifacts.json")
	assert.Equal(t, "Zephyr Chime", entries[0]["name"])
	assert.Equal(t, "Ashen Urn", entries[1]["name"])
	assert.Equal(t, "Bell of Dawn", entries[2]["name"])
}

func TestNormalizeSortsNoblePhantasmsByCharacter(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "noble_phantasm.json", `[
		{"name": "Emberbrand", "character": "Borin"},
		{"name": "Dawnpiercer", "character": "Aria"}
	]`)

	report, err := NormalizeFile(dir, "noble_phantasm.json", NormalizeOptions{Sort: true})
	require.NoError(t, err)
	assert.True(t, report.Sorted)

	entries := readEntries(t, dir, "noble_phantasm.json")
	assert.Equal(t, "Dawnpiercer", entries[0]["name"])
}

func TestNormalizeBumpsGoldenAlliances(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "golden_alliances.json", `[
		{"name": "Emberkin Pact", "howlkins": ["Cinder"]}
	]`)

	report, err := NormalizeFile(dir, "golden_alliances.json", NormalizeOptions{
		Timestamps: true,
		Now:        1700000000,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, report.Bumped)
}

func TestNormalizeMissingFile(t *testing.T) {
	report, err := NormalizeFile(t.TempDir(), "characters.json", NormalizeOptions{Sort: true})
	require.NoError(t, err)
	assert.False(t, report.Exists)
}

func TestNormalizeUnknownFileKeepsOrder(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "changelog.json", `[
		{"version": "1.2.0"},
		{"version": "1.1.0"}
	]`)

	report, err := NormalizeFile(dir, "changelog.json", NormalizeOptions{Sort: true})
	require.NoError(t, err)
	assert.False(t, report.Sorted)

	entries := readEntries(t, dir, "changelog.json")
	assert.Equal(t, "1.2.0", entries[0]["version"])
}

func TestDataFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.json", `[]`)
	writeFile(t, dir, "a.json", `[]`)
	writeFile(t, dir, "notes.txt", "x")

	files, err := DataFiles(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.json", "b.json"}, files)
}
