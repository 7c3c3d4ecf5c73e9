package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/meur/wyrmwiki/internal/data"
	"github.com/meur/wyrmwiki/internal/listview"
)

// listPage bundles everything one listing endpoint needs: the view
// configuration, the data-file loader, and the query-param → filter
// mapping.
type listPage[F, T any] struct {
	cfg  listview.Config[F, T]
	load func(ctx context.Context, c *data.Catalog) ([]T, error)
	// apply copies present query params onto the criteria and reports
	// whether any filter param was present at all.
	apply func(q url.Values, f *F) bool
}

// listResponse is the render-ready state for one listing page
type listResponse[F, T any] struct {
	Items         []T                `json:"items"`
	Total         int                `json:"total"`
	Page          int                `json:"page"`
	TotalPages    int                `json:"total_pages"`
	Filters       F                  `json:"filters"`
	ActiveFilters int                `json:"active_filters"`
	Sort          listview.SortState `json:"sort"`
	ViewMode      listview.Mode      `json:"view_mode"`
}

// registerList mounts GET /{name}. Each request rebuilds the page's view
// from the caller's persisted state, applies any mutations carried in the
// query string, and responds with the current page slice.
func registerList[F, T any](r chi.Router, s *Server, name string, page listPage[F, T]) {
	r.Get("/"+name, func(w http.ResponseWriter, req *http.Request) {
		records, err := page.load(req.Context(), s.catalog)
		if err != nil {
			s.log.Error("failed to load data file", zap.String("page", name), zap.Error(err))
			respondError(w, http.StatusInternalServerError, "Failed to load "+name)
			return
		}

		view := listview.NewView(s.clientKV(req), page.cfg)
		view.SetRecords(records)

		q := req.URL.Query()

		// Filters first: a filter change resets pagination via the
		// signature, so explicit page params below still win.
		if isTrue(q.Get("reset")) {
			view.ResetFilters()
		}
		if page.apply != nil {
			probe := view.Filters()
			if page.apply(q, &probe) {
				view.UpdateFilters(func(f *F) { page.apply(q, f) })
			}
		}

		if col := q.Get("click"); col != "" {
			view.HandleSort(col)
		} else if col := q.Get("sort"); col != "" {
			dir := listview.Ascending
			if q.Get("dir") == string(listview.Descending) {
				dir = listview.Descending
			}
			view.SetSort(listview.SortState{Column: col, Direction: dir})
		}

		if mode := q.Get("view"); mode != "" {
			view.SetMode(listview.Mode(mode))
		}

		if raw := q.Get("page"); raw != "" {
			if n, err := strconv.Atoi(raw); err == nil {
				view.SetPage(n)
			}
		}

		result := view.Page()
		respondJSON(w, http.StatusOK, listResponse[F, T]{
			Items:         result.Items,
			Total:         result.Total,
			Page:          result.Page,
			TotalPages:    result.TotalPages,
			Filters:       view.Filters(),
			ActiveFilters: view.ActiveFilters(),
			Sort:          view.Sort(),
			ViewMode:      view.Mode(),
		})
	})
}

// pageKeys builds a page's storage keys, one per concern
func pageKeys(name string) listview.Keys {
	return listview.Keys{
		Filters:  name + ".filters",
		ViewMode: name + ".view_mode",
		Sort:     name + ".sort",
	}
}

func isTrue(v string) bool {
	return v == "1" || v == "true"
}

// csvParam reads a multi-select param given as a comma-separated list.
// The bool reports presence: "types=" present-but-empty clears the field.
func csvParam(q url.Values, key string) ([]string, bool) {
	if !q.Has(key) {
		return nil, false
	}
	raw := q.Get(key)
	if raw == "" {
		return []string{}, true
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out, true
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func inSet(set []string, value string) bool {
	if len(set) == 0 {
		return true
	}
	for _, s := range set {
		if strings.EqualFold(s, value) {
			return true
		}
	}
	return false
}

func compareInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
