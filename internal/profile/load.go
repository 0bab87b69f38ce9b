// SPDX-License-Identifier: Apache-2.0

package profile

import (
	"fmt"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"github.com/goccy/go-yaml"
)

// recordSchema constrains the canonical attribute set: every known key must
// be a string when present. Unknown keys are allowed, since the attribute
// matcher scores whatever keys the record carries.
const recordSchema = `
{
	firstName?:     string
	middleName?:    string
	lastName?:      string
	fullName?:      string
	preferredName?: string
	maidenName?:    string
	nickname?:      string

	email?:    string
	workEmail?: string
	phone?:    string
	altPhone?: string

	birthday?:    string
	sex?:         string
	nationality?: string

	address1?:       string
	address2?:       string
	cityAddress?:    string
	stateAddress?:   string
	postalCode?:     string
	countryAddress?: string

	university?: string
	degree?:     string
	major?:      string
	gpa?:        string
	gradYear?:   string

	employer?:       string
	jobTitle?:       string
	workExperience?: string

	linkedin?: string
	github?:   string
	website?:  string

	languages?: string
	skills?:    string
	summary?:   string

	...
}
`

// Load reads a YAML (or JSON) profile document from path, validates its
// scalar attributes against the canonical schema and returns the Record.
func Load(path string) (Record, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profile: %w", err)
	}
	return Parse(raw)
}

// Parse decodes and validates a profile document.
func Parse(raw []byte) (Record, error) {
	var doc map[string]any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode profile: %w", err)
	}

	rec := FromAny(doc)
	if err := validate(rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// validate unifies the record's scalar view with the canonical schema.
// Structured entries are excluded from matching by construction, so only
// the scalar attributes are subject to the schema.
func validate(rec Record) error {
	scalars := make(map[string]string)
	for k, v := range rec {
		if s, ok := v.(Scalar); ok {
			scalars[k] = string(s)
		}
	}

	cctx := cuecontext.New()
	schema := cctx.CompileString(recordSchema)
	if err := schema.Err(); err != nil {
		return fmt.Errorf("compile profile schema: %w", err)
	}

	merged := schema.Unify(cctx.Encode(scalars))
	if err := merged.Validate(cue.Concrete(true)); err != nil {
		return fmt.Errorf("invalid profile: %w", err)
	}
	return nil
}
