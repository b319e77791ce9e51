package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupConfigTest(t *testing.T) string {
	t.Helper()
	return t.TempDir()
}

func TestLoadConfig(t *testing.T) {
	t.Run("should create a default config on first run", func(t *testing.T) {
		// Arrange
		home := setupConfigTest(t)

		// Act
		cfg, err := LoadConfig(home)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "en", cfg.Language)
		assert.Empty(t, cfg.DefaultPolicies)
		expectedPath := filepath.Join(home, ".ready-mate", "config.json")
		assert.Equal(t, expectedPath, cfg.PathFile)
		assert.FileExists(t, expectedPath)
	})

	t.Run("should load an existing config file", func(t *testing.T) {
		// Arrange
		home := setupConfigTest(t)
		dir := filepath.Join(home, ".ready-mate")
		require.NoError(t, os.MkdirAll(dir, 0755))
		path := filepath.Join(dir, "config.json")
		content := Config{
			Language:        "es",
			DefaultPolicies: []string{"strict", "team.yaml"},
			MinLevel:        3,
			MinPassRate:     0.85,
			PathFile:        path,
		}
		data, err := json.Marshal(content)
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(path, data, 0644))

		// Act
		cfg, err := LoadConfig(home)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "es", cfg.Language)
		assert.Equal(t, []string{"strict", "team.yaml"}, cfg.DefaultPolicies)
		assert.Equal(t, 3, cfg.MinLevel)
		assert.InDelta(t, 0.85, cfg.MinPassRate, 0.0001)
	})

	t.Run("should accept a direct path to a json file", func(t *testing.T) {
		// Arrange
		home := setupConfigTest(t)
		path := filepath.Join(home, "custom.json")

		// Act
		cfg, err := LoadConfig(path)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, path, cfg.PathFile)
	})

	t.Run("should fail on malformed json", func(t *testing.T) {
		// Arrange
		home := setupConfigTest(t)
		dir := filepath.Join(home, ".ready-mate")
		require.NoError(t, os.MkdirAll(dir, 0755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "config.json"), []byte("{roto"), 0644))

		// Act
		_, err := LoadConfig(home)

		// Assert
		assert.Error(t, err)
	})

	t.Run("should reject an invalid loaded config", func(t *testing.T) {
		// Arrange
		home := setupConfigTest(t)
		dir := filepath.Join(home, ".ready-mate")
		require.NoError(t, os.MkdirAll(dir, 0755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "config.json"),
			[]byte(`{"language": "es", "min_pass_rate": 1.5, "path_file": "x"}`), 0644))

		// Act
		_, err := LoadConfig(home)

		// Assert
		require.Error(t, err)
		assert.Contains(t, err.Error(), "MinPassRate")
	})
}

func TestSaveConfig(t *testing.T) {
	t.Run("should persist changes and reload them", func(t *testing.T) {
		// Arrange
		home := setupConfigTest(t)
		cfg, err := LoadConfig(home)
		require.NoError(t, err)
		cfg.Language = "es"
		cfg.GitHubOwner = "acme"
		cfg.GitHubRepo = "widgets"

		// Act
		require.NoError(t, SaveConfig(cfg))
		reloaded, err := LoadConfig(home)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "es", reloaded.Language)
		assert.Equal(t, "acme", reloaded.GitHubOwner)
		assert.Equal(t, "widgets", reloaded.GitHubRepo)
	})

	t.Run("should fail without a path file", func(t *testing.T) {
		err := SaveConfig(&Config{Language: "en"})
		assert.Error(t, err)
	})

	t.Run("should validate before writing", func(t *testing.T) {
		err := SaveConfig(&Config{Language: "en", MinLevel: 9, PathFile: "x"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "MinLevel")
	})
}

func TestValidateConfig(t *testing.T) {
	t.Run("should enforce field bounds", func(t *testing.T) {
		assert.Error(t, validateConfig(&Config{}))
		assert.Error(t, validateConfig(&Config{Language: "en", MinPassRate: -0.1}))
		assert.Error(t, validateConfig(&Config{Language: "en", MinLevel: 6}))
		assert.NoError(t, validateConfig(&Config{Language: "en", MinPassRate: 1, MinLevel: 5}))
	})
}
