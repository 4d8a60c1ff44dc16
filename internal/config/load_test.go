package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	cfgPath := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(content), 0644), "failed to write test config")
	return cfgPath
}

func TestLoad_Valid(t *testing.T) {
	tmp := t.TempDir()
	cfgPath := writeConfig(t, `
[server]
port = 8080

[[sources]]
name = "youtube"
root = "`+tmp+`"
`)

	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("expected port 8080, got %d", cfg.Server.Port)
	}
}

func TestLoad_SourcesKeepFileOrder(t *testing.T) {
	cfgPath := writeConfig(t, `
[[sources]]
name = "youtube"
root = "/mnt/youtube"

[[sources]]
name = "vice"
root = "/mnt/vice"

[[sources]]
name = "twitch"
root = "/mnt/twitch"
`)

	cfg, err := Load(cfgPath)
	require.NoError(t, err)
	assert.Equal(t, []SourceConfig{
		{Name: "youtube", Root: "/mnt/youtube"},
		{Name: "vice", Root: "/mnt/vice"},
		{Name: "twitch", Root: "/mnt/twitch"},
	}, cfg.Sources)
}

func TestLoad_MissingEnvVar(t *testing.T) {
	cfgPath := writeConfig(t, `
[[sources]]
name = "youtube"
root = "${VIDCAT_TEST_MISSING_ROOT}"
`)

	_, err := Load(cfgPath)
	require.Error(t, err, "expected error for missing env var")

	var cfgErr *Error
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, []string{"VIDCAT_TEST_MISSING_ROOT"}, cfgErr.Missing)
}

func TestLoad_ValidationError(t *testing.T) {
	cfgPath := writeConfig(t, `
[server]
port = 99999

[[sources]]
name = "youtube"
root = "/mnt/youtube"
`)

	_, err := Load(cfgPath)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "server.port") {
		t.Errorf("expected server.port in error, got %v", err)
	}
}

func TestLoad_AppliesDefaults(t *testing.T) {
	cfgPath := writeConfig(t, `
[[sources]]
name = "youtube"
root = "/mnt/youtube"
`)

	cfg, err := Load(cfgPath)
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 5000, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.Equal(t, "./data/videos.db", cfg.Database.Path)
	assert.Equal(t, "ffprobe", cfg.Probe.FFprobePath)
	assert.True(t, cfg.Sync.StartupSync())
	require.NotNil(t, cfg.Sync.RefreshLimit)
	assert.Equal(t, 6, *cfg.Sync.RefreshLimit)
	assert.False(t, cfg.Watch.Enabled)
	assert.Equal(t, 5*time.Second, cfg.Watch.Debounce)
}

func TestLoad_ExplicitZeroValuesAreKept(t *testing.T) {
	cfgPath := writeConfig(t, `
[sync]
on_startup = false
refresh_limit = 0

[watch]
enabled = true
debounce = "250ms"

[[sources]]
name = "youtube"
root = "/mnt/youtube"
`)

	cfg, err := Load(cfgPath)
	require.NoError(t, err)
	assert.False(t, cfg.Sync.StartupSync())
	assert.Equal(t, 0, *cfg.Sync.RefreshLimit)
	assert.True(t, cfg.Watch.Enabled)
	assert.Equal(t, 250*time.Millisecond, cfg.Watch.Debounce)
}

func TestLoad_ExpandsHomeInRoots(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	homedir.DisableCache = true
	t.Cleanup(func() { homedir.DisableCache = false })

	cfgPath := writeConfig(t, `
[database]
path = "~/vidcat/videos.db"

[[sources]]
name = "youtube"
root = "~/media/youtube"
`)

	cfg, err := Load(cfgPath)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "media", "youtube"), cfg.Sources[0].Root)
	assert.Equal(t, filepath.Join(home, "vidcat", "videos.db"), cfg.Database.Path)
}

func TestLoad_EnvVarDefault(t *testing.T) {
	t.Setenv("VIDCAT_TEST_MEDIA_ROOT", "")

	cfgPath := writeConfig(t, `
[[sources]]
name = "twitch"
root = "${VIDCAT_TEST_MEDIA_ROOT:-/srv/media}/twitch"
`)

	cfg, err := Load(cfgPath)
	require.NoError(t, err)
	assert.Equal(t, "/srv/media/twitch", cfg.Sources[0].Root)
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_InvalidTOML(t *testing.T) {
	cfgPath := writeConfig(t, `[server`)

	_, err := Load(cfgPath)
	assert.ErrorContains(t, err, "parsing config")
}

func TestLoad_DefaultConfigIsValid(t *testing.T) {
	t.Setenv("VIDCAT_MEDIA_ROOT", "/srv/media")

	cfgPath := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, WriteDefault(cfgPath))

	cfg, err := Load(cfgPath)
	require.NoError(t, err)
	require.Len(t, cfg.Sources, 3)
	assert.Equal(t, "youtube", cfg.Sources[0].Name)
	assert.Equal(t, "/srv/media/youtube", cfg.Sources[0].Root)
	assert.Equal(t, "twitch", cfg.Sources[2].Name)
}
