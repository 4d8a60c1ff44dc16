package config

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/google/renameio/v2"
)

//go:embed default_config.toml
var defaultConfig string

// WriteDefault writes the commented starter config used by
// `vidcat config init`, creating parent directories as needed. The file is
// replaced atomically so readers never observe a partial config.
func WriteDefault(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return renameio.WriteFile(path, []byte(defaultConfig), 0644)
}
