// Package listview implements the shared state mechanics behind every
// data-listing page: persisted filter criteria, view mode, the tri-state
// sort cycle, pagination, and the composition that wires them together.
package listview

import (
	"encoding/json"
	"reflect"

	"github.com/meur/wyrmwiki/internal/storage"
)

// FilterStore holds a page's filter criteria and persists every change.
// F is the page-specific criteria struct; its zero-or-default value is the
// page's declared "empty" criteria constant.
type FilterStore[F any] struct {
	kv      storage.KV
	key     string
	empty   F
	current F
	version uint64
}

// NewFilterStore seeds the store from the persisted value under key, or
// from empty when nothing usable is stored.
func NewFilterStore[F any](kv storage.KV, key string, empty F) *FilterStore[F] {
	s := &FilterStore[F]{kv: kv, key: key, empty: empty, current: empty}
	if raw, ok := kv.Get(key); ok {
		var loaded F
		if err := json.Unmarshal([]byte(raw), &loaded); err == nil {
			s.current = loaded
		}
	}
	return s
}

// Current returns the active criteria
func (s *FilterStore[F]) Current() F {
	return s.current
}

// Version is a counter bumped on every mutation. It serves as the filter
// signature for pagination resets, so the signature never depends on how
// the criteria would serialize.
func (s *FilterStore[F]) Version() uint64 {
	return s.version
}

// Update applies a mutation to the current criteria and persists the
// result synchronously. No shape validation is performed. A mutation that
// leaves the criteria unchanged is a no-op: the version stays put, so
// resubmitting identical filters does not reset pagination.
func (s *FilterStore[F]) Update(mutate func(*F)) {
	before := s.current
	mutate(&s.current)
	if reflect.DeepEqual(before, s.current) {
		return
	}
	s.version++
	s.persist()
}

// Reset restores exactly the empty criteria and persists
func (s *FilterStore[F]) Reset() {
	s.current = s.empty
	s.version++
	s.persist()
}

func (s *FilterStore[F]) persist() {
	raw, err := json.Marshal(s.current)
	if err != nil {
		return
	}
	s.kv.Set(s.key, string(raw))
}

// ActiveCount reports how many fields of a criteria value are "active":
// non-empty strings and non-empty slices count, everything else does not.
// It is shape-agnostic so every page's badge uses the same rule.
func ActiveCount(criteria any) int {
	v := reflect.ValueOf(criteria)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return 0
		}
		v = v.Elem()
	}

	count := 0
	switch v.Kind() {
	case reflect.Struct:
		for i := 0; i < v.NumField(); i++ {
			if fieldActive(v.Field(i)) {
				count++
			}
		}
	case reflect.Map:
		for _, k := range v.MapKeys() {
			if fieldActive(v.MapIndex(k)) {
				count++
			}
		}
	}
	return count
}

func fieldActive(v reflect.Value) bool {
	for v.Kind() == reflect.Interface || v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return false
		}
		v = v.Elem()
	}
	switch v.Kind() {
	case reflect.String:
		return v.Len() > 0
	case reflect.Slice, reflect.Array:
		return v.Len() > 0
	}
	return false
}
