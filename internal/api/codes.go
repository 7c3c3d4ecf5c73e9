package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// handleRegisterClient issues a new client ID for persisted prefs and
// redeemed-code tracking
func (s *Server) handleRegisterClient(w http.ResponseWriter, r *http.Request) {
	id, err := s.store.RegisterClient()
	if err != nil {
		s.log.Error("failed to register client", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Failed to register client")
		return
	}
	respondJSON(w, http.StatusCreated, map[string]string{"client_id": id})
}

// requireClient resolves and verifies the caller's client ID
func (s *Server) requireClient(w http.ResponseWriter, r *http.Request) (string, bool) {
	clientID := r.Header.Get("X-Client-ID")
	if clientID == "" {
		respondError(w, http.StatusBadRequest, "X-Client-ID header required")
		return "", false
	}
	exists, err := s.store.ClientExists(clientID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to look up client")
		return "", false
	}
	if !exists {
		respondError(w, http.StatusNotFound, "Unknown client")
		return "", false
	}
	return clientID, true
}

// handleGetRedeemed returns the codes the client has marked redeemed
func (s *Server) handleGetRedeemed(w http.ResponseWriter, r *http.Request) {
	clientID, ok := s.requireClient(w, r)
	if !ok {
		return
	}

	redeemed, err := s.store.RedeemedCodes(clientID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch redeemed codes")
		return
	}

	codes := make([]string, 0, len(redeemed))
	for code := range redeemed {
		codes = append(codes, code)
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"redeemed": codes})
}

// handleSetRedeemed marks or unmarks one code as redeemed
func (s *Server) handleSetRedeemed(w http.ResponseWriter, r *http.Request) {
	clientID, ok := s.requireClient(w, r)
	if !ok {
		return
	}
	code := chi.URLParam(r, "code")

	var req struct {
		Redeemed bool `json:"redeemed"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := s.store.SetRedeemed(clientID, code, req.Redeemed); err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to update redeemed state")
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"code":     code,
		"redeemed": req.Redeemed,
	})
}
