// SPDX-License-Identifier: Apache-2.0

package resolve

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// Thresholds are the acceptance cutoffs of the cascade. The near-duplicate
// implementations this design consolidates disagreed on several of them, so
// they are configuration rather than constants; Lenient and Strict are the
// two curated profiles.
type Thresholds struct {
	// Attribute is the dynamic attribute matcher's acceptance score.
	Attribute float64 `yaml:"attribute"`
	// Diagnostic is the floor above which a rejected attribute match is
	// still logged as a near miss.
	Diagnostic float64 `yaml:"diagnostic"`
	// Option is the enumerated-option matcher's acceptance score.
	Option float64 `yaml:"option"`
	// Nationality is the nationality resolver's acceptance confidence.
	Nationality float64 `yaml:"nationality"`
	// External is the confidence an external classifier response must
	// exceed to stop the cascade.
	External float64 `yaml:"external"`
	// RuleTable is the integer score cutoff of the rule-table fallback,
	// deliberately stricter than the dynamic matcher.
	RuleTable int `yaml:"rule_table"`
}

// Lenient favors fill coverage over precision.
func Lenient() Thresholds {
	return Thresholds{
		Attribute:   0.4,
		Diagnostic:  0.2,
		Option:      0.3,
		Nationality: 0.6,
		External:    0.8,
		RuleTable:   3,
	}
}

// Strict favors precision: fewer fills, fewer false positives.
func Strict() Thresholds {
	return Thresholds{
		Attribute:   0.6,
		Diagnostic:  0.2,
		Option:      0.5,
		Nationality: 0.7,
		External:    0.8,
		RuleTable:   3,
	}
}

// Profile returns the named curated profile, defaulting to Lenient for an
// empty name.
func Profile(name string) (Thresholds, error) {
	switch name {
	case "", "lenient":
		return Lenient(), nil
	case "strict":
		return Strict(), nil
	}
	return Thresholds{}, fmt.Errorf("unknown strictness profile %q", name)
}

// LoadThresholds reads a YAML threshold file, overriding the Lenient
// profile field by field.
func LoadThresholds(path string) (Thresholds, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Thresholds{}, fmt.Errorf("read thresholds: %w", err)
	}
	t := Lenient()
	if err := yaml.Unmarshal(raw, &t); err != nil {
		return Thresholds{}, fmt.Errorf("decode thresholds: %w", err)
	}
	return t, nil
}
