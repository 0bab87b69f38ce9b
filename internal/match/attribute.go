// SPDX-License-Identifier: Apache-2.0

package match

import (
	"strings"
	"unicode"

	"github.com/formsenseproj/formsense-mcp/internal/lexicon"
	"github.com/formsenseproj/formsense-mcp/internal/profile"
	"github.com/formsenseproj/formsense-mcp/internal/textmetric"
)

// Score contributions of the attribute matcher, additive up to the 1.0 cap.
const (
	keySubstringScore = 0.30
	keyWordScore      = 0.20
	abbreviationScore = 0.15
	similarityWeight  = 0.10
	categoryScore     = 0.05
	typeCompatScore   = 0.20
	identifierScore   = 0.30
	placeholderScore  = 0.15

	educationCityPenalty = 0.50
	educationBoost       = 0.40
	compoundNameBoost    = 0.30
)

// typeCompat lists, per input type, the key fragments that type favors.
var typeCompat = map[string][]string{
	"email":  {"email"},
	"tel":    {"phone", "mobile", "telephone"},
	"url":    {"website", "linkedin", "github", "portfolio"},
	"date":   {"birthday", "date", "deadline", "gradyear"},
	"number": {"age", "year", "gpa", "score", "salary", "gradyear"},
}

// Matcher scores a FieldContext against every scalar attribute of a profile
// record. Safe for concurrent use.
type Matcher struct {
	threshold float64
	cache     *textmetric.NgramCache
}

// NewMatcher creates a Matcher accepting results at or above threshold.
// A nil cache gets a private one.
func NewMatcher(threshold float64, cache *textmetric.NgramCache) *Matcher {
	if cache == nil {
		cache = textmetric.NewNgramCache()
	}
	return &Matcher{threshold: threshold, cache: cache}
}

// Match returns the best-scoring profile key for the field, or an empty key
// with the near-miss score when nothing reaches the threshold. Keys are
// visited in sorted order and only a strictly higher score displaces the
// incumbent, so ties resolve to the lexicographically smallest key.
func (m *Matcher) Match(fc FieldContext, rec profile.Record) Result {
	combined := fc.CombinedText()
	if combined == "" && fc.InputType == "" {
		return Result{}
	}

	// Challenge fields match nothing, whatever the profile holds.
	if lexicon.Challenge.MatchString(combined) {
		return Result{}
	}

	best := Result{}
	for _, key := range rec.ScalarKeys() {
		score := m.scoreKey(fc, combined, key)
		if score > best.Confidence {
			best = Result{Key: key, Confidence: score}
		}
	}

	if best.Confidence >= m.threshold {
		return best
	}
	return Result{Confidence: best.Confidence}
}

func (m *Matcher) scoreKey(fc FieldContext, combined, key string) float64 {
	keyLower := strings.ToLower(key)
	score := 0.0

	if strings.Contains(combined, keyLower) {
		score += keySubstringScore
	}

	for _, word := range decomposeKey(key) {
		if strings.Contains(combined, word) {
			score += keyWordScore
		}
	}

	if phrase, ok := lexicon.Expand(key); ok && strings.Contains(combined, phrase) {
		score += abbreviationScore
	}

	score += m.cache.Similarity(combined, keyLower) * similarityWeight

	if lexicon.SharesCategory(combined, keyLower) {
		score += categoryScore
	}

	if fragments, ok := typeCompat[fc.InputType]; ok {
		for _, frag := range fragments {
			if strings.Contains(keyLower, frag) {
				score += typeCompatScore
				break
			}
		}
	}

	if fc.Name == key || fc.ID == key {
		score += identifierScore
	}
	if fc.Placeholder != "" && strings.Contains(strings.ToLower(fc.Placeholder), keyLower) {
		score += placeholderScore
	}

	score = m.applyOverrides(combined, key, keyLower, score)

	return min(max(score, 0), 1)
}

// applyOverrides handles the known confusing cases after base scoring.
func (m *Matcher) applyOverrides(combined, key, keyLower string, score float64) float64 {
	// A "City" label inside an education block names the campus city,
	// not the applicant's.
	if lexicon.EducationContext.MatchString(combined) {
		if key == "city" || strings.HasPrefix(keyLower, "city") {
			score -= educationCityPenalty
		}
		if strings.Contains(keyLower, "university") || strings.Contains(keyLower, "institution") {
			score += educationBoost
		}
	}

	if lexicon.CompoundName.MatchString(combined) {
		// A field asking for a middle/preferred/maiden/nick name must not
		// receive the generic full name.
		normalized := strings.ReplaceAll(keyLower, "_", "")
		if normalized == "fullname" || normalized == "name" {
			return 0
		}
		switch {
		case lexicon.MiddleName.MatchString(combined) && strings.HasPrefix(keyLower, "middle"):
			score += compoundNameBoost
		case lexicon.PreferredName.MatchString(combined) && strings.HasPrefix(keyLower, "preferred"):
			score += compoundNameBoost
		case lexicon.MaidenName.MatchString(combined) && strings.HasPrefix(keyLower, "maiden"):
			score += compoundNameBoost
		case lexicon.Nickname.MatchString(combined) && strings.HasPrefix(keyLower, "nick"):
			score += compoundNameBoost
		}
	}

	// "Confirm your account number" is a verification prompt, not a request
	// for our numbers.
	if lexicon.VerifyContext.MatchString(combined) && lexicon.IsNumericKey(keyLower) {
		return 0
	}

	return score
}

// decomposeKey splits a profile key on camel-case humps, underscores and
// hyphens, keeping words longer than three characters.
func decomposeKey(key string) []string {
	var b strings.Builder
	for _, r := range key {
		if unicode.IsUpper(r) {
			b.WriteRune(' ')
		}
		b.WriteRune(unicode.ToLower(r))
	}
	spaced := strings.NewReplacer("_", " ", "-", " ").Replace(b.String())

	var words []string
	for _, w := range strings.Fields(spaced) {
		if len(w) > 3 {
			words = append(words, w)
		}
	}
	return words
}
