package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
)

// EnvConfig names a config file explicitly and disables the search.
const EnvConfig = "VIDCAT_CONFIG"

// DefaultPath is where `vidcat config init` writes when no path is given:
// $XDG_CONFIG_HOME/vidcat/config.toml, falling back to ~/.config.
func DefaultPath() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := homedir.Dir()
		if err != nil {
			return "config.toml"
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "vidcat", "config.toml")
}

// searchPaths lists the locations Discover tries, in order.
func searchPaths() []string {
	return []string{"config.toml", DefaultPath(), "/etc/vidcat/config.toml"}
}

// Discover returns the config file vidcat and vidcatd should load. A path in
// VIDCAT_CONFIG must exist; otherwise the first existing entry of
// ./config.toml, DefaultPath() and /etc/vidcat/config.toml wins.
func Discover() (string, error) {
	if path := os.Getenv(EnvConfig); path != "" {
		if _, err := os.Stat(path); err != nil {
			return "", fmt.Errorf("%s=%s: %w", EnvConfig, path, err)
		}
		return path, nil
	}

	candidates := searchPaths()
	for _, path := range candidates {
		_, err := os.Stat(path)
		if err == nil {
			return path, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("check %s: %w", path, err)
		}
	}
	return "", fmt.Errorf("no vidcat config in %s (run `vidcat config init`)", strings.Join(candidates, ", "))
}
