package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig_Valid(t *testing.T) {
	path := writeConfig(t, `{
		"genre": "physics",
		"threshold": 95,
		"concurrency": 4,
		"json_output": true
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "physics", cfg.Genre)
	assert.Equal(t, 95, cfg.Threshold)
	assert.Equal(t, 4, cfg.Concurrency)
	assert.True(t, cfg.JSONOutput)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	path := writeConfig(t, "{not json")

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestValidate_NegativeThreshold(t *testing.T) {
	cfg := Config{Threshold: -1}

	require.Error(t, cfg.Validate())
}

func TestValidate_MissingBundleFile(t *testing.T) {
	cfg := Config{Bundles: []string{filepath.Join(t.TempDir(), "absent.yaml")}}

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bundle file not found")
}

func TestMergeWithDefaults(t *testing.T) {
	flags := Config{Threshold: 95}
	defaults := Config{Genre: "arcade", Threshold: 80, Concurrency: 2}

	merged := flags.MergeWithDefaults(defaults)

	assert.Equal(t, "arcade", merged.Genre, "unset field filled from defaults")
	assert.Equal(t, 95, merged.Threshold, "flag value wins")
	assert.Equal(t, 2, merged.Concurrency)
}
