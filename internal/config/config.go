// Package config handles TOML configuration loading with environment variable substitution.
package config

import (
	"fmt"
	"os"
	"regexp"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/mitchellh/go-homedir"
)

// Config is the root configuration structure.
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Probe    ProbeConfig    `toml:"probe"`
	Sync     SyncConfig     `toml:"sync"`
	Watch    WatchConfig    `toml:"watch"`
	Sources  []SourceConfig `toml:"sources"`
}

type ServerConfig struct {
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	LogLevel string `toml:"log_level"`
}

type DatabaseConfig struct {
	Path string `toml:"path"`
}

type ProbeConfig struct {
	FFprobePath string `toml:"ffprobe_path"`
}

type SyncConfig struct {
	// OnStartup runs a full sync before the HTTP server starts listening.
	OnStartup *bool `toml:"on_startup"`
	// RefreshLimit is the number of refresh requests allowed per client IP
	// per minute. 0 disables the limit.
	RefreshLimit *int `toml:"refresh_limit"`
}

// StartupSync reports whether a sync should run at startup.
func (s SyncConfig) StartupSync() bool {
	return s.OnStartup == nil || *s.OnStartup
}

type WatchConfig struct {
	Enabled  bool          `toml:"enabled"`
	Debounce time.Duration `toml:"debounce"`
}

// SourceConfig is one labeled root directory. The order of sources in the
// file is the order they are synchronized in.
type SourceConfig struct {
	Name string `toml:"name"`
	Root string `toml:"root"`
}

const (
	defaultHost         = "0.0.0.0"
	defaultPort         = 5000
	defaultLogLevel     = "info"
	defaultDatabasePath = "./data/videos.db"
	defaultFFprobePath  = "ffprobe"
	defaultRefreshLimit = 6
	defaultDebounce     = 5 * time.Second
)

// Load reads, parses and validates the configuration file.
// Returns *Error when environment variables are missing or validation fails.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	content, missing := substituteEnvVars(string(data))
	if len(missing) > 0 {
		return nil, &Error{Path: path, Missing: missing}
	}

	var cfg Config
	if _, err := toml.Decode(content, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.applyDefaults()
	if err := cfg.expandRoots(); err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, &Error{Path: path, Invalid: errs}
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Host == "" {
		c.Server.Host = defaultHost
	}
	if c.Server.Port == 0 {
		c.Server.Port = defaultPort
	}
	if c.Server.LogLevel == "" {
		c.Server.LogLevel = defaultLogLevel
	}
	if c.Database.Path == "" {
		c.Database.Path = defaultDatabasePath
	}
	if c.Probe.FFprobePath == "" {
		c.Probe.FFprobePath = defaultFFprobePath
	}
	if c.Sync.RefreshLimit == nil {
		limit := defaultRefreshLimit
		c.Sync.RefreshLimit = &limit
	}
	if c.Watch.Debounce == 0 {
		c.Watch.Debounce = defaultDebounce
	}
}

// expandRoots resolves a leading ~ in source roots and the database path.
func (c *Config) expandRoots() error {
	for i, src := range c.Sources {
		root, err := homedir.Expand(src.Root)
		if err != nil {
			return fmt.Errorf("sources.%s.root: %w", src.Name, err)
		}
		c.Sources[i].Root = root
	}
	dbPath, err := homedir.Expand(c.Database.Path)
	if err != nil {
		return fmt.Errorf("database.path: %w", err)
	}
	c.Database.Path = dbPath
	return nil
}

// envVarPattern matches ${VAR}, ${VAR:-default} and ${VAR:?message}.
var envVarPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)(?:(:-|:\?)([^}]*))?\}`)

// substituteEnvVars replaces ${VAR} with environment variable values.
// ${VAR:-default} falls back to default when VAR is unset or empty;
// ${VAR:?message} reports "VAR: message" as missing in that case.
// Unresolved variables are left unchanged and returned in missing.
func substituteEnvVars(content string) (string, []string) {
	var missing []string
	seen := make(map[string]bool)
	report := func(entry string) {
		if !seen[entry] {
			seen[entry] = true
			missing = append(missing, entry)
		}
	}

	result := envVarPattern.ReplaceAllStringFunc(content, func(match string) string {
		groups := envVarPattern.FindStringSubmatch(match)
		name, op, arg := groups[1], groups[2], groups[3]
		value, ok := os.LookupEnv(name)

		switch op {
		case ":-":
			if ok && value != "" {
				return value
			}
			return arg
		case ":?":
			if ok && value != "" {
				return value
			}
			report(fmt.Sprintf("%s: %s", name, arg))
			return match
		}
		if ok {
			return value
		}
		report(name)
		return match
	})

	return result, missing
}
