// SPDX-License-Identifier: Apache-2.0

// Package lexicon holds the curated vocabulary the matchers score against:
// abbreviation expansions, linguistic category patterns, semantic-equivalence
// clusters, degree-level keyword sets, and the nationality quick map with its
// morphological transform rules. Pure static data plus small lookup functions.
package lexicon

import "strings"

// abbreviations maps lowercased profile keys to the long-form phrase a form
// is likely to spell out. Checked against the field's combined text.
var abbreviations = map[string]string{
	"firstname":  "first name",
	"lastname":   "last name",
	"fullname":   "full name",
	"phone":      "phone number",
	"email":      "email address",
	"dob":        "date of birth",
	"birthday":   "birth date",
	"address":    "street address",
	"zip":        "postal code",
	"postalcode": "zip code",
	"website":    "web site",
	"gpa":        "grade point average",
	"university": "college",
	"degree":     "education level",
	"major":      "field of study",
}

// Expand returns the long-form phrase for a profile key, if one is curated.
func Expand(key string) (string, bool) {
	phrase, ok := abbreviations[strings.ToLower(key)]
	return phrase, ok
}
