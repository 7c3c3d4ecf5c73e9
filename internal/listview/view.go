package listview

import (
	"slices"

	"github.com/meur/wyrmwiki/internal/storage"
)

// Keys are the storage keys a page uses, one per concern
type Keys struct {
	Filters  string
	ViewMode string
	Sort     string
}

// Config declares everything page-specific about a list view. Compare must
// express ascending semantics for the given column (return 0 for columns
// it does not know); Default is the ordering used while unsorted.
type Config[F, T any] struct {
	EmptyFilters F
	Predicate    func(F, T) bool
	Compare      func(column string, a, b T) int
	Default      func(a, b T) int
	Keys         Keys
	DefaultMode  Mode
	PageSize     int
}

// PageResult is the render-ready slice for the current page
type PageResult[T any] struct {
	Items      []T `json:"items"`
	Total      int `json:"total"`
	Page       int `json:"page"`
	TotalPages int `json:"total_pages"`
	Offset     int `json:"offset"`
}

// View composes the filter, view-mode, and sort stores with pagination
// into one per-page contract: records in, current page slice out.
// Processing order is fixed: filter, then sort, then slice.
type View[F, T any] struct {
	cfg       Config[F, T]
	filters   *FilterStore[F]
	mode      *ModeStore
	sort      *SortStore
	pager     *Paginator
	records   []T
	panelOpen bool

	// The filtered+sorted collection is recomputed only when the records,
	// the filter version, or the sort state change.
	memo      []T
	memoKey   viewMemoKey
	memoValid bool
}

type viewMemoKey struct {
	filterVer uint64
	sort      SortState
}

// NewView builds the composition for one page on top of the given storage
func NewView[F, T any](kv storage.KV, cfg Config[F, T]) *View[F, T] {
	return &View[F, T]{
		cfg:     cfg,
		filters: NewFilterStore(kv, cfg.Keys.Filters, cfg.EmptyFilters),
		mode:    NewModeStore(kv, cfg.Keys.ViewMode, cfg.DefaultMode),
		sort:    NewSortStore(kv, cfg.Keys.Sort),
		pager:   NewPaginator(cfg.PageSize),
	}
}

// SetRecords replaces the raw record set. The same backing slice passed
// again does not invalidate the memoized collection.
func (v *View[F, T]) SetRecords(records []T) {
	same := len(records) == len(v.records) &&
		(len(records) == 0 || &records[0] == &v.records[0])
	v.records = records
	if !same {
		v.memoValid = false
	}
}

// Filters returns the current criteria
func (v *View[F, T]) Filters() F {
	return v.filters.Current()
}

// UpdateFilters mutates the criteria and persists
func (v *View[F, T]) UpdateFilters(mutate func(*F)) {
	v.filters.Update(mutate)
}

// ResetFilters restores the empty criteria
func (v *View[F, T]) ResetFilters() {
	v.filters.Reset()
}

// ActiveFilters is the badge count of non-default filter fields
func (v *View[F, T]) ActiveFilters() int {
	return ActiveCount(v.filters.Current())
}

// Mode returns the active view mode
func (v *View[F, T]) Mode() Mode {
	return v.mode.Mode()
}

// SetMode switches grid/list display
func (v *View[F, T]) SetMode(m Mode) {
	v.mode.SetMode(m)
}

// Sort returns the current sort state
func (v *View[F, T]) Sort() SortState {
	return v.sort.State()
}

// HandleSort applies a column-header click (the tri-state cycle)
func (v *View[F, T]) HandleSort(column string) SortState {
	return v.sort.Handle(column)
}

// SetSort replaces the sort state outright
func (v *View[F, T]) SetSort(st SortState) {
	v.sort.Set(st)
}

// SetPage navigates to a page under the current filter signature
func (v *View[F, T]) SetPage(page int) {
	v.pager.SetPage(page, v.filters.Version())
}

// PanelOpen reports whether the filter panel is expanded
func (v *View[F, T]) PanelOpen() bool {
	return v.panelOpen
}

// TogglePanel flips the filter panel. Panel state is per-mount and never
// persisted.
func (v *View[F, T]) TogglePanel() bool {
	v.panelOpen = !v.panelOpen
	return v.panelOpen
}

// Collection returns the filtered and sorted record set
func (v *View[F, T]) Collection() []T {
	key := viewMemoKey{
		filterVer: v.filters.Version(),
		sort:      v.sort.State(),
	}
	if v.memoValid && key == v.memoKey {
		return v.memo
	}

	criteria := v.filters.Current()
	out := make([]T, 0, len(v.records))
	for _, rec := range v.records {
		if v.cfg.Predicate(criteria, rec) {
			out = append(out, rec)
		}
	}

	st := v.sort.State()
	slices.SortStableFunc(out, func(a, b T) int {
		if st.Active() {
			return ApplyDirection(v.cfg.Compare(st.Column, a, b), st.Direction)
		}
		return v.cfg.Default(a, b)
	})

	v.memo = out
	v.memoKey = key
	v.memoValid = true
	return out
}

// Page returns the current page slice plus pagination state
func (v *View[F, T]) Page() PageResult[T] {
	collection := v.Collection()
	info := v.pager.Compute(len(collection), v.filters.Version())

	end := info.Offset + v.pager.PageSize()
	if end > len(collection) {
		end = len(collection)
	}

	return PageResult[T]{
		Items:      collection[info.Offset:end],
		Total:      len(collection),
		Page:       info.Page,
		TotalPages: info.TotalPages,
		Offset:     info.Offset,
	}
}
