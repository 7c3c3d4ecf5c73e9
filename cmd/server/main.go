package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/meur/wyrmwiki/internal/api"
	"github.com/meur/wyrmwiki/internal/config"
	"github.com/meur/wyrmwiki/internal/data"
	"github.com/meur/wyrmwiki/internal/storage"
)

func main() {
	// Parse flags; flags override the config file, env overrides defaults
	configPath := flag.String("config", getEnv("CONFIG_PATH", ""), "YAML config path")
	port := flag.String("port", getEnv("PORT", ""), "Server port")
	dbPath := flag.String("db", getEnv("DB_PATH", ""), "SQLite database path")
	dataDir := flag.String("data", getEnv("DATA_DIR", ""), "Data directory")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *port != "" {
		cfg.Port = *port
	}
	if *dbPath != "" {
		cfg.DBPath = *dbPath
	}
	if *dataDir != "" {
		cfg.DataDir = *dataDir
	}

	logger, err := newLogger(cfg.Debug)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	// Initialize storage
	store, err := storage.New(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}
	defer store.Close()

	// Data catalog, optionally watching for file changes
	catalog := data.NewCatalog(cfg.DataDir, logger)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if cfg.WatchData {
		if err := catalog.Watch(ctx); err != nil {
			logger.Warn("data watch disabled", zap.Error(err))
		}
	}

	// Create router
	r := api.New(store, catalog, cfg, logger)

	// Serve frontend static files (for production deployment)
	FileServer(r.Router(), "/", http.Dir(cfg.StaticDir))

	logger.Info("wyrmwiki API starting",
		zap.String("addr", "http://localhost:"+cfg.Port),
		zap.String("db", cfg.DBPath),
		zap.String("data", cfg.DataDir),
	)

	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// FileServer conveniently sets up a http.FileServer handler to serve
// static files from a http.FileSystem.
func FileServer(r chi.Router, path string, root http.FileSystem) {
	if strings.ContainsAny(path, "{}*") {
		panic("FileServer does not permit URL parameters.")
	}

	if path != "/" && path[len(path)-1] != '/' {
		r.Get(path, http.RedirectHandler(path+"/", 301).ServeHTTP)
		path += "/"
	}
	path += "*"

	r.Get(path, func(w http.ResponseWriter, req *http.Request) {
		rctx := chi.RouteContext(req.Context())
		pathPrefix := strings.TrimSuffix(rctx.RoutePattern(), "/*")
		fs := http.StripPrefix(pathPrefix, http.FileServer(root))
		fs.ServeHTTP(w, req)
	})
}
