// SPDX-License-Identifier: Apache-2.0

package match

import (
	"strings"

	"github.com/formsenseproj/formsense-mcp/internal/lexicon"
	"github.com/formsenseproj/formsense-mcp/internal/textmetric"
)

// Confidence levels of the nationality cascade, from cheapest to loosest.
const (
	quickMapConfidence     = 1.00
	transformConfidence    = 0.95
	transformFuzzyScale    = 0.90
	transformFuzzyMinRatio = 0.85
	fuzzyScale             = 0.80
	fuzzyMinRatio          = 0.70
	substringConfidence    = 0.60
	substringMinLength     = 4

	// DefaultNationalityThreshold accepts quick-map, transform and strong
	// fuzzy hits; strict callers raise it to 0.7 to shed the substring tier.
	DefaultNationalityThreshold = 0.60
)

// NationalityResolver matches a demonym or country name against enumerated
// country options: quick map, then morphological transformation, then fuzzy
// and substring fallbacks.
type NationalityResolver struct {
	threshold float64
}

// NewNationalityResolver creates a resolver accepting candidates at or
// above threshold.
func NewNationalityResolver(threshold float64) *NationalityResolver {
	return &NationalityResolver{threshold: threshold}
}

// Match returns the best candidate for the desired nationality and its
// confidence, or nil when nothing reaches the threshold.
func (r *NationalityResolver) Match(desired string, candidates []OptionCandidate) (*OptionCandidate, float64) {
	if desired == "" {
		return nil, 0
	}

	// US option lists are the most common and the most irregular; an exact
	// variant scan beats any scoring for them.
	if textmetric.NormalizeWords(desired) == "american" {
		for i := range candidates {
			for _, variant := range lexicon.UnitedStatesVariants {
				if strings.EqualFold(strings.TrimSpace(candidates[i].Text), variant) ||
					strings.EqualFold(strings.TrimSpace(candidates[i].Value), variant) {
					return &candidates[i], quickMapConfidence
				}
			}
		}
	}

	var best *OptionCandidate
	bestScore := 0.0
	for i := range candidates {
		if candidates[i].Text == "" && candidates[i].Value == "" {
			continue
		}
		score := r.score(desired, candidates[i].Text)
		if v := r.score(desired, candidates[i].Value); v > score {
			score = v
		}
		if score > bestScore {
			bestScore = score
			best = &candidates[i]
		}
	}

	if best != nil && bestScore >= r.threshold {
		return best, bestScore
	}
	return nil, bestScore
}

// score runs the cascade for one desired/option text pair.
func (r *NationalityResolver) score(desired, option string) float64 {
	if option == "" {
		return 0
	}
	natLower := strings.ToLower(strings.TrimSpace(desired))
	optLower := strings.ToLower(strings.TrimSpace(option))
	if natLower == "" || optLower == "" {
		return 0
	}

	if variants, ok := lexicon.NationalityQuickMap[natLower]; ok {
		for _, variant := range variants {
			vLower := strings.ToLower(variant)
			if optLower == vLower || strings.Contains(optLower, vLower) || strings.Contains(vLower, optLower) {
				return quickMapConfidence
			}
		}
	}

	// Reverse lookup: the desired value may itself be a variant ("USA")
	// rather than a demonym.
	for demonym, variants := range lexicon.NationalityQuickMap {
		if !containsFold(variants, natLower) {
			continue
		}
		if demonym == optLower || containsFold(variants, optLower) {
			return quickMapConfidence
		}
	}

	for _, rule := range lexicon.NationalityTransformRules {
		predicted, ok := rule.Apply(desired)
		if !ok {
			continue
		}
		predictedLower := strings.ToLower(predicted)
		if predictedLower == optLower {
			return transformConfidence
		}
		if ratio := textmetric.FuzzyRatio(predictedLower, optLower); ratio > transformFuzzyMinRatio {
			return ratio * transformFuzzyScale
		}
	}

	if ratio := textmetric.FuzzyRatio(natLower, optLower); ratio > fuzzyMinRatio {
		return ratio * fuzzyScale
	}

	if len(natLower) > substringMinLength &&
		(strings.Contains(optLower, natLower) || strings.Contains(natLower, optLower)) {
		return substringConfidence
	}

	return 0
}

func containsFold(values []string, lower string) bool {
	for _, v := range values {
		if strings.ToLower(v) == lower {
			return true
		}
	}
	return false
}
