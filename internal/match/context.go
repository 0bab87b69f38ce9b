// SPDX-License-Identifier: Apache-2.0

// Package match scores form-field descriptions against profile attributes
// and desired values against enumerated options. All scoring is pure and
// synchronous; the only shared state is an n-gram memoization cache.
package match

import "strings"

// FieldInfo is the raw textual description of one form control, as the
// document-traversal collaborator extracted it. All fields are optional.
type FieldInfo struct {
	Label        string `json:"label,omitempty"`
	Placeholder  string `json:"placeholder,omitempty"`
	Name         string `json:"name,omitempty"`
	ID           string `json:"id,omitempty"`
	AriaLabel    string `json:"aria_label,omitempty"`
	Autocomplete string `json:"autocomplete,omitempty"`
	InputType    string `json:"input_type,omitempty"`
}

// FieldContext is a FieldInfo with its combined text derived once at
// construction. The combined text is a pure function of the other fields;
// construct a new context rather than mutating one.
type FieldContext struct {
	FieldInfo

	combined string
}

// NewFieldContext derives the combined text: the label, placeholder, name,
// id and aria-label joined, lowercased, whitespace-normalized.
func NewFieldContext(info FieldInfo) FieldContext {
	parts := make([]string, 0, 5)
	for _, p := range []string{info.Label, info.Placeholder, info.Name, info.ID, info.AriaLabel} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	joined := strings.ToLower(strings.Join(parts, " "))
	return FieldContext{
		FieldInfo: info,
		combined:  strings.Join(strings.Fields(joined), " "),
	}
}

// CombinedText returns the derived text the matchers score against.
func (c FieldContext) CombinedText() string {
	return c.combined
}

// Result is an attribute-match decision. An empty Key with Confidence > 0
// is a diagnostic near miss; Confidence 0 means no evidence at all.
type Result struct {
	Key        string  `json:"key,omitempty"`
	Confidence float64 `json:"confidence"`
}

// OptionCandidate is one entry of an enumerated-choice control.
type OptionCandidate struct {
	Text  string `json:"text"`
	Value string `json:"value,omitempty"`
}
