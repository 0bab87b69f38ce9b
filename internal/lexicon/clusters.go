// SPDX-License-Identifier: Apache-2.0

package lexicon

import "regexp"

// semanticClusters groups words treated as interchangeable when scoring a
// desired value against enumerated options. A desired word and an option
// word from the same cluster count as a strong partial match.
var semanticClusters = [][]string{
	// Degree levels
	{"bachelor", "bachelors", "undergraduate", "undergrad", "college", "bsc", "ba", "bs", "university"},
	{"master", "masters", "graduate", "grad", "postgraduate", "postgrad", "msc", "ma", "ms", "mba"},
	{"phd", "doctorate", "doctoral", "doctor", "postdoc", "research"},
	{"high", "secondary", "highschool", "school", "k12"},
	{"associate", "associates", "community", "junior"},

	// Degree domains
	{"science", "sciences", "scientific", "stem"},
	{"arts", "humanities", "liberal"},
	{"engineering", "engineer", "technical"},
	{"business", "commerce", "management", "administration"},

	// Employment and study
	{"work", "job", "employment", "professional", "career"},
	{"study", "education", "academic", "school", "learning"},

	// Gender vocabulary as it appears in enumerated choices
	{"male", "man", "m"},
	{"female", "woman", "f"},

	// Temporal qualifiers
	{"current", "present", "ongoing", "active", "now"},
	{"previous", "past", "former", "prior", "completed"},

	// Completeness
	{"full", "complete", "entire", "whole", "fulltime"},
	{"part", "partial", "incomplete", "some", "parttime"},
}

// ClusterMates returns the other members of the first cluster containing
// word, or nil when the word belongs to no cluster.
func ClusterMates(word string) []string {
	for _, group := range semanticClusters {
		for _, member := range group {
			if member != word {
				continue
			}
			mates := make([]string, 0, len(group)-1)
			for _, m := range group {
				if m != word {
					mates = append(mates, m)
				}
			}
			return mates
		}
	}
	return nil
}

// DegreeLevel is a canonical education level extracted from free text.
type DegreeLevel string

const (
	DegreeUndergraduate DegreeLevel = "undergraduate"
	DegreeGraduate      DegreeLevel = "graduate"
	DegreeDoctorate     DegreeLevel = "doctorate"
	DegreeHighSchool    DegreeLevel = "highschool"
	DegreeAssociate     DegreeLevel = "associate"
)

var degreeVocabulary = regexp.MustCompile(`\b(bachelor|master|phd|doctorate|associate|diploma|certificate|degree|bs|ba|ms|ma|mba|msc|bsc)\b`)

var degreeLevelPatterns = []struct {
	level   DegreeLevel
	pattern *regexp.Regexp
}{
	{DegreeUndergraduate, regexp.MustCompile(`\b(bachelor|bachelors|bs|ba|bsc|b\.s\.|b\.a\.|undergraduate|undergrad|college)\b`)},
	{DegreeGraduate, regexp.MustCompile(`\b(master|masters|ms|ma|mba|msc|m\.s\.|m\.a\.|graduate|grad school|postgraduate)\b`)},
	{DegreeDoctorate, regexp.MustCompile(`\b(phd|ph\.d|doctorate|doctoral|postdoc|post-doc)\b`)},
	{DegreeHighSchool, regexp.MustCompile(`\b(high school|highschool|secondary|hs|k-12)\b`)},
	{DegreeAssociate, regexp.MustCompile(`\b(associate|associates|aa|as|a\.a\.|a\.s\.)\b`)},
}

// IsDegreeText reports whether the text mentions degree vocabulary at all.
// Input is expected to be lowercased.
func IsDegreeText(text string) bool {
	return degreeVocabulary.MatchString(text)
}

// ExtractDegreeLevel maps free text to a canonical education level. Patterns
// are tried in order; undergraduate vocabulary wins over the looser graduate
// one ("grad" alone is ambiguous). Empty result means no level detected.
func ExtractDegreeLevel(text string) DegreeLevel {
	for _, dp := range degreeLevelPatterns {
		if dp.pattern.MatchString(text) {
			return dp.level
		}
	}
	return ""
}
