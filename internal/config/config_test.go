package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestDefaultConfigMatchesPageSetup(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 8, cfg.PerPage)
	assert.Equal(t, "Previous", cfg.Previous)
	assert.Equal(t, "Next", cfg.Next)
	assert.Equal(t, "workshoplist", cfg.Container)
	assert.Equal(t, 400, cfg.AnimationMS)
	assert.False(t, cfg.FilterOnType)
	require.NoError(t, cfg.Validate())
}

func TestLoadFromPathKeepsDefaultsForMissingKeys(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	writeFile(t, path, `
catalog = "workshops.yaml"
per_page = 4
filter_on_type = true
`)

	cfg, err := NewConfigService().LoadFromPath(path)
	require.NoError(t, err)

	assert.Equal(t, 4, cfg.PerPage)
	assert.True(t, cfg.FilterOnType)
	assert.Equal(t, "Previous", cfg.Previous)
	assert.Equal(t, 400, cfg.AnimationMS)
	assert.Equal(t, filepath.Join(dir, "workshops.yaml"), cfg.Catalog)
}

func TestLoadFromPathRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "zero per page", content: "per_page = 0"},
		{name: "negative per page", content: "per_page = -2"},
		{name: "negative animation", content: "animation_ms = -1"},
		{name: "malformed toml", content: "per_page = ["},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), FileName)
			writeFile(t, path, tt.content)

			_, err := NewConfigService().LoadFromPath(path)
			assert.Error(t, err)
		})
	}
}

func TestLoadFromPathMissingFile(t *testing.T) {
	_, err := NewConfigService().LoadFromPath(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config file not found")
}

func TestSaveToPathRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	svc := NewConfigService()

	cfg := DefaultConfig()
	cfg.PerPage = 12
	cfg.Next = "More"
	require.NoError(t, svc.SaveToPath(cfg, path))

	loaded, err := svc.LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, 12, loaded.PerPage)
	assert.Equal(t, "More", loaded.Next)
}

func TestResolvePrecedence(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	svc := NewConfigService()

	t.Run("defaults when nothing exists", func(t *testing.T) {
		cfg, err := Resolve(svc, "", t.TempDir())
		require.NoError(t, err)
		assert.Equal(t, DefaultPerPage, cfg.PerPage)
	})

	t.Run("local file beats user file", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, FileName), "per_page = 3")
		require.NoError(t, svc.Save(&Config{PerPage: 5, AnimationMS: 0}))

		cfg, err := Resolve(svc, "", dir)
		require.NoError(t, err)
		assert.Equal(t, 3, cfg.PerPage)
	})

	t.Run("user file when no local file", func(t *testing.T) {
		cfg, err := Resolve(svc, "", t.TempDir())
		require.NoError(t, err)
		assert.Equal(t, 5, cfg.PerPage)
	})

	t.Run("explicit path wins", func(t *testing.T) {
		explicit := filepath.Join(t.TempDir(), "custom.toml")
		writeFile(t, explicit, "per_page = 9")

		cfg, err := Resolve(svc, explicit, t.TempDir())
		require.NoError(t, err)
		assert.Equal(t, 9, cfg.PerPage)
	})
}
