package config

import (
	"fmt"
	"strings"
)

// Error is returned by Load when a config file cannot be used: ${VAR}
// references with no value, or a decoded config that fails Validate.
// Unset variables stop Load before decoding, so only one list is filled.
type Error struct {
	Path    string
	Missing []string // referenced variables with no value and no default
	Invalid []string // "field: problem" entries from Validate
}

func (e *Error) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "config %s", e.Path)
	if len(e.Missing) > 0 {
		fmt.Fprintf(&b, ": unset variables %s", strings.Join(e.Missing, ", "))
	}
	if len(e.Invalid) > 0 {
		fmt.Fprintf(&b, ": %d invalid setting(s): %s", len(e.Invalid), strings.Join(e.Invalid, "; "))
	}
	return b.String()
}
