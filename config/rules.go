package config

import (
	_ "embed"
	"strings"
)

//go:embed default_rules.md
var defaultRules string

// DefaultRules returns the stock scheduling rules offered to clients as a starting point
func DefaultRules() string {
	return strings.TrimSpace(defaultRules)
}
