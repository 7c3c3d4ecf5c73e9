package listview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meur/wyrmwiki/internal/storage"
)

type testFilters struct {
	Search string   `json:"search"`
	Types  []string `json:"types"`
}

func TestFilterStoreDefaults(t *testing.T) {
	kv := storage.NewMemoryKV()
	s := NewFilterStore(kv, "page.filters", testFilters{})

	assert.Equal(t, testFilters{}, s.Current())
	assert.Equal(t, uint64(0), s.Version())
}

func TestFilterStoreUpdatePersists(t *testing.T) {
	kv := storage.NewMemoryKV()
	s := NewFilterStore(kv, "page.filters", testFilters{})

	s.Update(func(f *testFilters) { f.Search = "drake" })
	assert.Equal(t, "drake", s.Current().Search)
	assert.Equal(t, uint64(1), s.Version())

	// A fresh store seeded from the same storage sees the update
	reloaded := NewFilterStore(kv, "page.filters", testFilters{})
	assert.Equal(t, "drake", reloaded.Current().Search)
}

func TestFilterStoreResetIdempotent(t *testing.T) {
	kv := storage.NewMemoryKV()
	s := NewFilterStore(kv, "page.filters", testFilters{})

	s.Update(func(f *testFilters) {
		f.Search = "drake"
		f.Types = []string{"Buff"}
	})

	s.Reset()
	afterOne := s.Current()
	s.Reset()
	afterTwo := s.Current()

	assert.Equal(t, testFilters{}, afterOne)
	assert.Equal(t, afterOne, afterTwo)
}

func TestFilterStoreCorruptStorageFallsBack(t *testing.T) {
	kv := storage.NewMemoryKV()
	kv.Set("page.filters", "{not json")

	s := NewFilterStore(kv, "page.filters", testFilters{Search: ""})
	assert.Equal(t, testFilters{}, s.Current())
}

func TestFilterStoreVersionBumpsOnEveryMutation(t *testing.T) {
	kv := storage.NewMemoryKV()
	s := NewFilterStore(kv, "page.filters", testFilters{})

	s.Update(func(f *testFilters) { f.Search = "a" })
	s.Update(func(f *testFilters) { f.Search = "b" })
	s.Reset()
	require.Equal(t, uint64(3), s.Version())
}

func TestFilterStoreNoopUpdateKeepsVersion(t *testing.T) {
	kv := storage.NewMemoryKV()
	s := NewFilterStore(kv, "page.filters", testFilters{})

	s.Update(func(f *testFilters) { f.Search = "drake" })
	require.Equal(t, uint64(1), s.Version())

	// Resubmitting identical criteria must not look like a change,
	// otherwise the signature reset kicks the user back to page 1
	s.Update(func(f *testFilters) { f.Search = "drake" })
	s.Update(func(f *testFilters) {})
	assert.Equal(t, uint64(1), s.Version())

	s.Update(func(f *testFilters) { f.Search = "wyrm" })
	assert.Equal(t, uint64(2), s.Version())
}

func TestActiveCount(t *testing.T) {
	assert.Equal(t, 2, ActiveCount(testFilters{
		Search: "drake",
		Types:  []string{"Buff", "Debuff"},
	}))
	assert.Equal(t, 0, ActiveCount(testFilters{Search: "", Types: []string{}}))
	assert.Equal(t, 1, ActiveCount(testFilters{Types: []string{"Buff"}}))

	// Works on any criteria shape, not just this page's
	type other struct {
		Name      string
		Qualities []string
		Classes   []string
		Global    bool
	}
	assert.Equal(t, 3, ActiveCount(other{
		Name:      "x",
		Qualities: []string{"Myth"},
		Classes:   []string{"Mage"},
		Global:    true, // bools never count
	}))

	assert.Equal(t, 1, ActiveCount(map[string]any{"search": "x", "types": []any{}}))
	assert.Equal(t, 0, ActiveCount(nil))
	assert.Equal(t, 2, ActiveCount(&testFilters{Search: "a", Types: []string{"b"}}))
}
