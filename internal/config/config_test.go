package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bamsammich/checksum/internal/config"
)

func writeConfig(t *testing.T, content string) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	configDir := filepath.Join(dir, "checksum")
	require.NoError(t, os.MkdirAll(configDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.toml"), []byte(content), 0o644))
}

func TestLoad_MissingFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Nil(t, cfg.Defaults.Algorithm)
	assert.Nil(t, cfg.Defaults.Verbose)
	assert.Nil(t, cfg.Defaults.BufferSize)
}

func TestLoad_FullConfig(t *testing.T) {
	writeConfig(t, `
[defaults]
algorithm = "blake3"
verbose = true
no_progress = false
buffer_size = "128K"
bwlimit = "100M"
`)

	cfg, err := config.Load()
	require.NoError(t, err)

	require.NotNil(t, cfg.Defaults.Algorithm)
	assert.Equal(t, "blake3", *cfg.Defaults.Algorithm)

	require.NotNil(t, cfg.Defaults.Verbose)
	assert.True(t, *cfg.Defaults.Verbose)

	require.NotNil(t, cfg.Defaults.NoProgress)
	assert.False(t, *cfg.Defaults.NoProgress)

	require.NotNil(t, cfg.Defaults.BufferSize)
	assert.Equal(t, "128K", *cfg.Defaults.BufferSize)

	require.NotNil(t, cfg.Defaults.BWLimit)
	assert.Equal(t, "100M", *cfg.Defaults.BWLimit)
}

func TestLoad_PartialConfig(t *testing.T) {
	writeConfig(t, `
[defaults]
verbose = true
`)

	cfg, err := config.Load()
	require.NoError(t, err)

	require.NotNil(t, cfg.Defaults.Verbose)
	assert.Nil(t, cfg.Defaults.Algorithm)
	assert.Nil(t, cfg.Defaults.NoProgress)
}

func TestLoad_InvalidTOML(t *testing.T) {
	writeConfig(t, "invalid [[[")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestConfigPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/custom/config")
	assert.Equal(t, "/custom/config/checksum/config.toml", config.Path())
}

func TestConfigPathHomeFallback(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("HOME", "/home/tester")
	assert.Equal(t, "/home/tester/.config/checksum/config.toml", config.Path())
}
