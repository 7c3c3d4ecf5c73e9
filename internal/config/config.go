// Package config holds the server configuration, loaded from an optional
// YAML file with flag/env values layered on top by the caller.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the server configuration
type Config struct {
	Port        string   `yaml:"port"`
	DBPath      string   `yaml:"db_path"`
	DataDir     string   `yaml:"data_dir"`
	StaticDir   string   `yaml:"static_dir"`
	PageSize    int      `yaml:"page_size"`
	GitHubRepo  string   `yaml:"github_repo"`
	CORSOrigins []string `yaml:"cors_origins"`
	WatchData   bool     `yaml:"watch_data"`
	Debug       bool     `yaml:"debug"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Port:        "8080",
		DBPath:      "./wyrmwiki.db",
		DataDir:     "./data",
		StaticDir:   "../frontend/dist",
		PageSize:    20,
		GitHubRepo:  "meur/wyrmwiki",
		CORSOrigins: []string{"http://localhost:*"},
		WatchData:   true,
	}
}

// Load reads a YAML config file over the defaults. An empty path returns
// the defaults; a missing file at an explicit path is an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if cfg.PageSize < 1 {
		return cfg, fmt.Errorf("page_size must be at least 1, got %d", cfg.PageSize)
	}
	return cfg, nil
}
