// SPDX-License-Identifier: Apache-2.0

package lexicon

import "regexp"

// Category is a coarse linguistic grouping of form-field vocabulary. A field
// context and a profile key falling in the same category is weak evidence
// that they describe the same attribute.
type Category string

const (
	CategoryPersonalInfo   Category = "personalInfo"
	CategoryContact        Category = "contact"
	CategoryLocation       Category = "location"
	CategoryTemporal       Category = "temporal"
	CategoryIdentification Category = "identification"
	CategoryAcademic       Category = "academic"
	CategoryProfessional   Category = "professional"
	CategoryFinancial      Category = "financial"
	CategoryWeb            Category = "web"
	CategoryDescriptive    Category = "descriptive"
)

type categoryPattern struct {
	category Category
	pattern  *regexp.Regexp
}

var categoryPatterns = []categoryPattern{
	{CategoryPersonalInfo, regexp.MustCompile(`\b(name|first|last|surname|given|middle|initial|title|mr|ms|mrs)\b`)},
	{CategoryContact, regexp.MustCompile(`\b(email|mail|phone|tel|mobile|cell|fax|contact|reach)\b`)},
	{CategoryLocation, regexp.MustCompile(`\b(address|street|city|state|country|zip|postal|region|province)\b`)},
	{CategoryTemporal, regexp.MustCompile(`\b(date|year|month|day|time|when|deadline|start|end|from|to)\b`)},
	{CategoryIdentification, regexp.MustCompile(`\b(id|number|code|ssn|passport|license|registration)\b`)},
	{CategoryAcademic, regexp.MustCompile(`\b(school|university|college|degree|major|gpa|grade|education|study)\b`)},
	{CategoryProfessional, regexp.MustCompile(`\b(company|employer|job|position|title|work|experience|salary)\b`)},
	{CategoryFinancial, regexp.MustCompile(`\b(amount|price|cost|fee|payment|account|bank|card)\b`)},
	{CategoryWeb, regexp.MustCompile(`\b(url|website|link|profile|portfolio|github|linkedin|twitter)\b`)},
	{CategoryDescriptive, regexp.MustCompile(`\b(description|summary|bio|about|details|notes|comments|message)\b`)},
}

// SharesCategory reports whether any category pattern matches both texts.
// Inputs are expected to be lowercased already.
func SharesCategory(a, b string) bool {
	for _, cp := range categoryPatterns {
		if cp.pattern.MatchString(a) && cp.pattern.MatchString(b) {
			return true
		}
	}
	return false
}

// Categories returns every category whose pattern matches the text.
func Categories(text string) []Category {
	var cats []Category
	for _, cp := range categoryPatterns {
		if cp.pattern.MatchString(text) {
			cats = append(cats, cp.category)
		}
	}
	return cats
}
