package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("[[sources]]\nname = \"vice\"\nroot = \"/media/vice\"\n"), 0644))
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/srv/xdg")
	assert.Equal(t, "/srv/xdg/vidcat/config.toml", DefaultPath())

	t.Setenv("XDG_CONFIG_HOME", "")
	assert.True(t, strings.HasSuffix(DefaultPath(), filepath.Join(".config", "vidcat", "config.toml")), DefaultPath())
}

func TestDiscover_EnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "elsewhere.toml")
	writeFile(t, path)
	t.Setenv(EnvConfig, path)

	got, err := Discover()
	require.NoError(t, err)
	assert.Equal(t, path, got)
}

func TestDiscover_EnvOverrideMissing(t *testing.T) {
	t.Setenv(EnvConfig, filepath.Join(t.TempDir(), "gone.toml"))

	_, err := Discover()
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), EnvConfig)
}

func TestDiscover_SearchOrder(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv(EnvConfig, "")
	t.Setenv("XDG_CONFIG_HOME", xdg)
	t.Chdir(t.TempDir())

	xdgPath := filepath.Join(xdg, "vidcat", "config.toml")
	writeFile(t, xdgPath)

	got, err := Discover()
	require.NoError(t, err)
	assert.Equal(t, xdgPath, got, "XDG config used when the working directory has none")

	writeFile(t, "config.toml")
	got, err = Discover()
	require.NoError(t, err)
	assert.Equal(t, "config.toml", got, "working directory wins over XDG")
}

func TestDiscover_NothingFound(t *testing.T) {
	if _, err := os.Stat("/etc/vidcat/config.toml"); err == nil {
		t.Skip("system config present")
	}
	t.Setenv(EnvConfig, "")
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Chdir(t.TempDir())

	_, err := Discover()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no vidcat config")
	assert.Contains(t, err.Error(), "vidcat config init")
}
