package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/meur/wyrmwiki/internal/suggest"
)

// handleSuggest validates a suggestion payload and responds with the
// prefilled GitHub issue URL the client should open. The server never
// writes data files itself; merging happens through the issue workflow.
func (s *Server) handleSuggest(w http.ResponseWriter, r *http.Request) {
	kind := suggest.Kind(chi.URLParam(r, "kind"))

	var req struct {
		Summary string         `json:"summary"`
		Data    map[string]any `json:"data"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Data == nil {
		respondError(w, http.StatusBadRequest, "data is required")
		return
	}

	if err := suggest.Validate(kind, req.Data); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	entry, err := suggest.Normalize(kind, req.Data)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	summary := req.Summary
	if summary == "" {
		if name, ok := entry["name"].(string); ok {
			summary = name
		} else if code, ok := entry["code"].(string); ok {
			summary = code
		}
	}

	issueURL, err := suggest.IssueURL(s.cfg.GitHubRepo, kind, summary, entry)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"issue_url": issueURL,
		"data_file": kind.DataFile(),
	})
}
