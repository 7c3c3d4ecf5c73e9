package listview

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/meur/wyrmwiki/internal/storage"
)

func TestSortCycle(t *testing.T) {
	kv := storage.NewMemoryKV()
	s := NewSortStore(kv, "page.sort")

	assert.Equal(t, SortState{}, s.State())

	assert.Equal(t, SortState{Column: "x", Direction: Ascending}, s.Handle("x"))
	assert.Equal(t, SortState{Column: "x", Direction: Descending}, s.Handle("x"))
	assert.Equal(t, SortState{}, s.Handle("x"))
}

func TestSortDifferentColumnRestartsAscending(t *testing.T) {
	kv := storage.NewMemoryKV()
	s := NewSortStore(kv, "page.sort")

	s.Handle("x")
	got := s.Handle("y")
	assert.Equal(t, SortState{Column: "y", Direction: Ascending}, got)
}

func TestSortStatePersists(t *testing.T) {
	kv := storage.NewMemoryKV()
	s := NewSortStore(kv, "page.sort")
	s.Handle("name")
	s.Handle("name")

	reloaded := NewSortStore(kv, "page.sort")
	assert.Equal(t, SortState{Column: "name", Direction: Descending}, reloaded.State())
}

func TestSortStoreMalformedPersistedState(t *testing.T) {
	cases := map[string]string{
		"bad json":        "{nope",
		"bad direction":   `{"column":"name","direction":"sideways"}`,
		"direction only":  `{"column":"","direction":"asc"}`,
		"wrong shape":     `["name","asc"]`,
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			kv := storage.NewMemoryKV()
			kv.Set("page.sort", raw)
			s := NewSortStore(kv, "page.sort")
			assert.Equal(t, SortState{}, s.State())
		})
	}
}

func TestSortSetRejectsInvalid(t *testing.T) {
	kv := storage.NewMemoryKV()
	s := NewSortStore(kv, "page.sort")
	s.Set(SortState{Column: "name", Direction: "sideways"})
	assert.Equal(t, SortState{}, s.State())

	s.Set(SortState{Column: "name", Direction: Descending})
	assert.Equal(t, SortState{Column: "name", Direction: Descending}, s.State())
}

func TestApplyDirection(t *testing.T) {
	assert.Equal(t, -1, ApplyDirection(-1, Ascending))
	assert.Equal(t, 1, ApplyDirection(-1, Descending))
	assert.Equal(t, -5, ApplyDirection(5, Descending))
	assert.Equal(t, 0, ApplyDirection(0, Descending))
}
