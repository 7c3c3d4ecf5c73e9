package listview

import (
	"encoding/json"

	"github.com/meur/wyrmwiki/internal/storage"
)

// Direction is a sort direction
type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// SortState is the active sort column and direction. An empty Column means
// unsorted; the page then falls back to its default ordering.
type SortState struct {
	Column    string    `json:"column"`
	Direction Direction `json:"direction"`
}

// Active reports whether an explicit sort column is set
func (st SortState) Active() bool {
	return st.Column != ""
}

func (st SortState) valid() bool {
	if st.Column == "" {
		return st.Direction == ""
	}
	return st.Direction == Ascending || st.Direction == Descending
}

// SortStore persists a page's sort state and drives the click cycle
type SortStore struct {
	kv      storage.KV
	key     string
	current SortState
}

// NewSortStore seeds from storage; malformed persisted state (bad JSON,
// unknown direction) is discarded in favor of unsorted.
func NewSortStore(kv storage.KV, key string) *SortStore {
	s := &SortStore{kv: kv, key: key}
	if raw, ok := kv.Get(key); ok {
		var loaded SortState
		if err := json.Unmarshal([]byte(raw), &loaded); err == nil && loaded.valid() {
			s.current = loaded
		}
	}
	return s
}

// State returns the current sort state
func (s *SortStore) State() SortState {
	return s.current
}

// Handle applies a header click: a new column starts ascending, clicking
// the active column again flips to descending, and a third click clears
// the sort entirely.
func (s *SortStore) Handle(column string) SortState {
	switch {
	case s.current.Column != column:
		s.current = SortState{Column: column, Direction: Ascending}
	case s.current.Direction == Ascending:
		s.current = SortState{Column: column, Direction: Descending}
	default:
		s.current = SortState{}
	}
	s.persist()
	return s.current
}

// Set replaces the sort state outright. Invalid states are ignored.
func (s *SortStore) Set(st SortState) {
	if !st.valid() {
		return
	}
	s.current = st
	s.persist()
}

func (s *SortStore) persist() {
	raw, err := json.Marshal(s.current)
	if err != nil {
		return
	}
	s.kv.Set(s.key, string(raw))
}

// ApplyDirection inverts a comparator's sign for descending sorts, so
// page comparators only ever express ascending semantics.
func ApplyDirection(cmp int, d Direction) int {
	if d == Descending {
		return -cmp
	}
	return cmp
}
