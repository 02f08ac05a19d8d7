package config

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Makepad-fr/shoplist/internal/catalog"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 5*time.Second, cfg.Celebration.Delay)
	assert.False(t, cfg.Celebration.CelebrateEmpty)
	assert.False(t, cfg.LenientLookup)
	assert.Equal(t, "classic", cfg.UI.Theme)
	assert.Equal(t, "en", cfg.UI.Language)

	c, err := cfg.Catalog()
	require.NoError(t, err)
	assert.Equal(t, catalog.DefaultShops, c.Shops.Entries())
	assert.Equal(t, catalog.DefaultCategories, c.Categories.Entries())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "no shops", mutate: func(c *Config) { c.Shops = nil }, wantErr: "shops"},
		{name: "duplicate category", mutate: func(c *Config) {
			c.Categories = []catalog.Entry{{ID: 1, Name: "A"}, {ID: 1, Name: "B"}}
		}, wantErr: "duplicate id"},
		{name: "zero delay", mutate: func(c *Config) { c.Celebration.Delay = 0 }, wantErr: "celebration.delay"},
		{name: "bad theme", mutate: func(c *Config) { c.UI.Theme = "pink" }, wantErr: "ui.theme"},
		{name: "bad language", mutate: func(c *Config) { c.UI.Language = "de" }, wantErr: "ui.language"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.ErrorContains(t, cfg.Validate(), tt.wantErr)
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	content := `
shops:
  - id: 10
    name: "Şok"
celebration:
  delay: 2s
  celebrate_empty: true
ui:
  language: tr
`
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0o644))

	cfg, err := LoadFromFile(configPath)
	require.NoError(t, err)
	assert.Equal(t, []catalog.Entry{{ID: 10, Name: "Şok"}}, cfg.Shops)
	assert.Empty(t, cfg.Categories)
	assert.Equal(t, 2*time.Second, cfg.Celebration.Delay)
	assert.True(t, cfg.Celebration.CelebrateEmpty)
	assert.Equal(t, "tr", cfg.UI.Language)
}

func TestLoadFromFileErrors(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("shops: [unclosed"), 0o644))
	_, err = LoadFromFile(bad)
	assert.ErrorContains(t, err, "failed to parse config file")
}

func TestSaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := DefaultConfig()
	cfg.UI.Theme = "neon"
	require.NoError(t, cfg.SaveToFile(path))

	loaded, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestMerge(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Merge(nil)
	assert.Equal(t, DefaultConfig(), cfg)

	cfg.Merge(&Config{
		Categories:    []catalog.Entry{{ID: 1, Name: "Meyve"}},
		LenientLookup: true,
		UI:            UIConfig{Theme: "mono"},
	})
	assert.Equal(t, catalog.DefaultShops, cfg.Shops, "unset table is kept")
	assert.Equal(t, []catalog.Entry{{ID: 1, Name: "Meyve"}}, cfg.Categories)
	assert.True(t, cfg.LenientLookup)
	assert.Equal(t, "mono", cfg.UI.Theme)
	assert.Equal(t, "en", cfg.UI.Language)
	assert.Equal(t, 5*time.Second, cfg.Celebration.Delay)
}

func testLoader(home, wd string) *Loader {
	l := NewLoader(slog.New(slog.NewTextHandler(io.Discard, nil)))
	l.home = func() (string, error) { return home, nil }
	l.getwd = func() (string, error) { return wd, nil }
	return l
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoaderPrecedence(t *testing.T) {
	home := t.TempDir()
	project := t.TempDir()
	wd := filepath.Join(project, "sub", "dir")
	require.NoError(t, os.MkdirAll(wd, 0o755))

	writeFile(t, filepath.Join(home, UserConfigDir, UserConfigFile), "ui:\n  theme: neon\n  language: tr\n")
	writeFile(t, filepath.Join(project, ProjectConfigFile), "ui:\n  theme: mono\n")
	explicit := filepath.Join(t.TempDir(), "explicit.yaml")
	writeFile(t, explicit, "celebration:\n  delay: 1s\n")

	cfg, err := testLoader(home, wd).Load(explicit)
	require.NoError(t, err)
	assert.Equal(t, "mono", cfg.UI.Theme, "project overrides user")
	assert.Equal(t, "tr", cfg.UI.Language, "user value survives")
	assert.Equal(t, time.Second, cfg.Celebration.Delay, "explicit file applies last")
}

func TestLoaderDefaultsWithoutFiles(t *testing.T) {
	cfg, err := testLoader(t.TempDir(), t.TempDir()).Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoaderExplicitMissing(t *testing.T) {
	_, err := testLoader(t.TempDir(), t.TempDir()).Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoaderRejectsInvalidResult(t *testing.T) {
	explicit := filepath.Join(t.TempDir(), "bad.yaml")
	writeFile(t, explicit, "ui:\n  theme: pink\n")
	_, err := testLoader(t.TempDir(), t.TempDir()).Load(explicit)
	assert.ErrorContains(t, err, "invalid configuration")
}
