package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 20, cfg.PageSize)
	assert.Equal(t, "meur/wyrmwiki", cfg.GitHubRepo)
	assert.True(t, cfg.WatchData)
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
port: "9090"
page_size: 50
data_dir: /srv/wyrmwiki/data
debug: true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 50, cfg.PageSize)
	assert.Equal(t, "/srv/wyrmwiki/data", cfg.DataDir)
	assert.True(t, cfg.Debug)
	// Untouched fields keep their defaults
	assert.Equal(t, "meur/wyrmwiki", cfg.GitHubRepo)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadRejectsBadPageSize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("page_size: 0\n"), 0o644))

	_, err := Load(path)
	assert.ErrorContains(t, err, "page_size")
}

func TestLoadMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: [unterminated\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
