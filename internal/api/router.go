package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/meur/wyrmwiki/internal/config"
	"github.com/meur/wyrmwiki/internal/data"
	"github.com/meur/wyrmwiki/internal/storage"
)

// Server holds the HTTP server dependencies
type Server struct {
	store   *storage.Store
	catalog *data.Catalog
	cfg     config.Config
	log     *zap.Logger
	router  chi.Router
}

// New creates a new API server
func New(store *storage.Store, catalog *data.Catalog, cfg config.Config, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Server{
		store:   store,
		catalog: catalog,
		cfg:     cfg,
		log:     log,
		router:  chi.NewRouter(),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Router exposes the underlying mux so the caller can mount extra routes
// (the static file server).
func (s *Server) Router() chi.Router {
	return s.router
}

func (s *Server) setupMiddleware() {
	s.router.Use(middleware.Recoverer)
	s.router.Use(requestLogger(s.log))
	s.router.Use(middleware.Compress(5))
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   s.cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Client-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
}

func (s *Server) setupRoutes() {
	s.router.Route("/api", func(r chi.Router) {
		// Listing pages
		registerList(r, s, "characters", characterPage(s.cfg.PageSize))
		registerList(r, s, "codes", codePage(s.cfg.PageSize))
		registerList(r, s, "status-effects", statusEffectPage(s.cfg.PageSize))
		registerList(r, s, "wyrmspells", wyrmspellPage(s.cfg.PageSize))
		registerList(r, s, "teams", teamPage(s.cfg.PageSize))
		registerList(r, s, "tier-lists", tierListPage(s.cfg.PageSize))
		registerList(r, s, "howlkins", howlkinPage(s.cfg.PageSize))
		registerList(r, s, "subclasses", subclassPage(s.cfg.PageSize))
		registerList(r, s, "factions", factionPage(s.cfg.PageSize))
		registerList(r, s, "gear", gearPage(s.cfg.PageSize))
		registerList(r, s, "artifacts", artifactPage(s.cfg.PageSize))
		registerList(r, s, "noble-phantasms", noblePhantasmPage(s.cfg.PageSize))
		registerList(r, s, "golden-alliances", goldenAlliancePage(s.cfg.PageSize))
		registerList(r, s, "useful-links", linkPage(s.cfg.PageSize))
		registerList(r, s, "resources", resourcePage(s.cfg.PageSize))

		// Clients and redeemed-code tracking
		r.Post("/clients", s.handleRegisterClient)
		r.Get("/codes/redeemed", s.handleGetRedeemed)
		r.Put("/codes/{code}/redeemed", s.handleSetRedeemed)

		// Team builder
		r.Get("/teams/{name}/synergy", s.handleTeamSynergy)
		r.Post("/synergy", s.handleScoreMembers)

		// Suggestion forms
		r.Post("/suggest/{kind}", s.handleSuggest)
	})

	// Health check
	s.router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
}

// --- Response helpers ---

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

func decodeJSON(r *http.Request, v interface{}) error {
	return json.NewDecoder(r.Body).Decode(v)
}

// clientKV resolves the caller's persisted storage. Identified clients
// (X-Client-ID) get a namespace in the prefs table; anonymous callers get
// a throwaway in-memory store so every request sees page defaults.
func (s *Server) clientKV(r *http.Request) storage.KV {
	clientID := r.Header.Get("X-Client-ID")
	if clientID == "" {
		clientID = r.URL.Query().Get("client")
	}
	if clientID == "" {
		return storage.NewMemoryKV()
	}
	return s.store.KV(clientID)
}
