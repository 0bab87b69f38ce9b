// SPDX-License-Identifier: Apache-2.0

package match

import (
	"strings"

	"github.com/formsenseproj/formsense-mcp/internal/lexicon"
	"github.com/formsenseproj/formsense-mcp/internal/textmetric"
)

// Option-match score contributions.
const (
	sharedWordScore   = 0.30
	clusterMateScore  = 0.50
	degreeLevelFloor  = 0.80
	ngramOptionWeight = 0.20
)

// CategoryNationality routes option matching through the nationality
// resolver instead of the generic scorer.
const CategoryNationality = "nationality"

// OptionMatcher selects the enumerated option that best represents a
// desired scalar value.
type OptionMatcher struct {
	threshold   float64
	nationality *NationalityResolver
	cache       *textmetric.NgramCache
}

// NewOptionMatcher creates an OptionMatcher accepting options scoring at or
// above threshold. The nationality resolver handles that category; a nil
// cache gets a private one.
func NewOptionMatcher(threshold float64, nationality *NationalityResolver, cache *textmetric.NgramCache) *OptionMatcher {
	if cache == nil {
		cache = textmetric.NewNgramCache()
	}
	if nationality == nil {
		nationality = NewNationalityResolver(DefaultNationalityThreshold)
	}
	return &OptionMatcher{threshold: threshold, nationality: nationality, cache: cache}
}

// Match returns the best candidate for the desired value, with its score,
// or nil when no candidate reaches the threshold. A nationality category
// delegates entirely to the nationality resolver.
func (m *OptionMatcher) Match(desired string, candidates []OptionCandidate, category string) (*OptionCandidate, float64) {
	if desired == "" || len(candidates) == 0 {
		return nil, 0
	}
	if strings.EqualFold(category, CategoryNationality) {
		return m.nationality.Match(desired, candidates)
	}

	desiredNorm := textmetric.NormalizeWords(desired)
	desiredWords := optionWords(desiredNorm)

	var best *OptionCandidate
	bestScore := 0.0
	for i := range candidates {
		score := m.scoreCandidate(desiredNorm, desiredWords, candidates[i])
		if score > bestScore {
			bestScore = score
			best = &candidates[i]
		}
	}

	if best != nil && bestScore >= m.threshold {
		return best, bestScore
	}
	return nil, bestScore
}

func (m *OptionMatcher) scoreCandidate(desiredNorm string, desiredWords map[string]struct{}, cand OptionCandidate) float64 {
	textNorm := textmetric.NormalizeWords(cand.Text)
	valueNorm := textmetric.NormalizeWords(cand.Value)

	if desiredNorm == textNorm || (valueNorm != "" && desiredNorm == valueNorm) {
		return 1.0
	}

	candWords := optionWords(textNorm)
	for w := range optionWords(valueNorm) {
		candWords[w] = struct{}{}
	}

	score := 0.0
	for w := range desiredWords {
		if _, ok := candWords[w]; ok {
			score += sharedWordScore
		}
		for _, mate := range lexicon.ClusterMates(w) {
			if _, ok := candWords[mate]; ok {
				score += clusterMateScore
				break
			}
		}
	}

	// The desired degree and the option naming the same education level is
	// a strong match even when the wording differs completely.
	if lexicon.IsDegreeText(desiredNorm) {
		desiredLevel := lexicon.ExtractDegreeLevel(desiredNorm)
		candLevel := lexicon.ExtractDegreeLevel(textNorm + " " + valueNorm)
		if desiredLevel != "" && desiredLevel == candLevel {
			score = max(score, degreeLevelFloor)
		}
	}

	score += textmetric.Jaccard(m.cache.Ngrams(desiredNorm, 3), m.cache.Ngrams(textNorm, 3)) * ngramOptionWeight

	return min(score, 1.0)
}

// optionWords tokenizes normalized option text, dropping one- and
// two-character fragments.
func optionWords(norm string) map[string]struct{} {
	words := make(map[string]struct{})
	for _, w := range strings.Fields(norm) {
		if len(w) > 2 {
			words[w] = struct{}{}
		}
	}
	return words
}
