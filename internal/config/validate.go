package config

import (
	"fmt"
	"os"
)

var validLogLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "error": true, "": true,
}

// Validate checks the configuration for errors.
// Returns a slice of error messages (empty if valid).
func (c *Config) Validate() []string {
	var errs []string

	// Server validation
	if c.Server.Port != 0 && (c.Server.Port < 1 || c.Server.Port > 65535) {
		errs = append(errs, fmt.Sprintf("server.port: must be between 1 and 65535, got %d", c.Server.Port))
	}
	if !validLogLevels[c.Server.LogLevel] {
		errs = append(errs, fmt.Sprintf("server.log_level: must be one of debug, info, warn, error; got %q", c.Server.LogLevel))
	}

	// Sources validation
	if len(c.Sources) == 0 {
		errs = append(errs, "sources: at least one source must be configured")
	}
	seen := make(map[string]bool)
	for i, src := range c.Sources {
		if src.Name == "" {
			errs = append(errs, fmt.Sprintf("sources[%d].name: required", i))
		} else if seen[src.Name] {
			errs = append(errs, fmt.Sprintf("sources[%d].name: duplicate source %q", i, src.Name))
		}
		seen[src.Name] = true
		if src.Root == "" {
			errs = append(errs, fmt.Sprintf("sources[%d].root: required", i))
		}
	}

	if c.Sync.RefreshLimit != nil && *c.Sync.RefreshLimit < 0 {
		errs = append(errs, fmt.Sprintf("sync.refresh_limit: must not be negative, got %d", *c.Sync.RefreshLimit))
	}
	if c.Watch.Debounce < 0 {
		errs = append(errs, fmt.Sprintf("watch.debounce: must not be negative, got %s", c.Watch.Debounce))
	}

	return errs
}

// Warnings returns non-fatal problems, such as source roots that do not
// exist yet. A missing root only fails its own source at sync time.
func (c *Config) Warnings() []string {
	var warnings []string
	for _, src := range c.Sources {
		if src.Root == "" {
			continue
		}
		if _, err := os.Stat(src.Root); os.IsNotExist(err) {
			warnings = append(warnings, fmt.Sprintf("sources.%s.root: directory %q does not exist", src.Name, src.Root))
		}
	}
	return warnings
}
