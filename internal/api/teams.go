package api

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/meur/wyrmwiki/internal/data"
	"github.com/meur/wyrmwiki/internal/models"
	"github.com/meur/wyrmwiki/internal/synergy"
)

// handleTeamSynergy scores a published team composition
func (s *Server) handleTeamSynergy(w http.ResponseWriter, r *http.Request) {
	name, err := url.PathUnescape(chi.URLParam(r, "name"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid team name")
		return
	}

	teams, err := data.Load[models.Team](r.Context(), s.catalog, "teams.json")
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to load teams")
		return
	}

	var team *models.Team
	for i := range teams {
		if teams[i].Name == name {
			team = &teams[i]
			break
		}
	}
	if team == nil {
		respondError(w, http.StatusNotFound, "Team not found")
		return
	}

	roster, err := data.Load[models.Character](r.Context(), s.catalog, "characters.json")
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to load characters")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"team":    team.Name,
		"synergy": synergy.ScoreTeam(team.MemberNames(), roster),
	})
}

// handleScoreMembers scores an ad-hoc member list from the team builder
func (s *Server) handleScoreMembers(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Members []string `json:"members"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if len(req.Members) == 0 {
		respondError(w, http.StatusBadRequest, "members is required")
		return
	}

	roster, err := data.Load[models.Character](r.Context(), s.catalog, "characters.json")
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to load characters")
		return
	}

	respondJSON(w, http.StatusOK, synergy.ScoreTeam(req.Members, roster))
}
