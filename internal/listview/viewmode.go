package listview

import "github.com/meur/wyrmwiki/internal/storage"

// Mode is a page's display layout
type Mode string

const (
	ModeGrid Mode = "grid"
	ModeList Mode = "list"
)

// Valid reports whether m is one of the known modes
func (m Mode) Valid() bool {
	return m == ModeGrid || m == ModeList
}

// ModeStore persists a page's grid/list preference
type ModeStore struct {
	kv       storage.KV
	key      string
	fallback Mode
	current  Mode
}

// NewModeStore seeds from storage; anything outside {grid, list} is
// treated as never persisted and the default applies.
func NewModeStore(kv storage.KV, key string, fallback Mode) *ModeStore {
	s := &ModeStore{kv: kv, key: key, fallback: fallback, current: fallback}
	if raw, ok := kv.Get(key); ok && Mode(raw).Valid() {
		s.current = Mode(raw)
	}
	return s
}

// Mode returns the active mode
func (s *ModeStore) Mode() Mode {
	return s.current
}

// SetMode switches the mode and persists immediately. Invalid modes are
// ignored.
func (s *ModeStore) SetMode(m Mode) {
	if !m.Valid() {
		return
	}
	s.current = m
	s.kv.Set(s.key, string(m))
}
