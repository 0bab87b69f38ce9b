// SPDX-License-Identifier: Apache-2.0

// Package textmetric provides the string primitives the matchers are built
// on: normalization, character n-gram and word tokenization, Jaccard set
// similarity, and Levenshtein edit distance. Every function is total over
// its input domain; empty input yields an empty result, never an error.
package textmetric

import "strings"

// Normalize lowercases text and strips everything outside [a-z0-9].
// Used for character n-grams, where whitespace carries no signal.
func Normalize(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range strings.ToLower(text) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// NormalizeWords lowercases text, replaces everything outside [a-z0-9]
// with a space, collapses runs of whitespace and trims the result.
func NormalizeWords(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range strings.ToLower(text) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// CharNgrams returns the set of all length-n substrings of the normalized,
// whitespace-stripped text. Text shorter than n yields an empty set.
func CharNgrams(text string, n int) map[string]struct{} {
	ngrams := make(map[string]struct{})
	if n <= 0 {
		return ngrams
	}
	normalized := Normalize(text)
	for i := 0; i+n <= len(normalized); i++ {
		ngrams[normalized[i:i+n]] = struct{}{}
	}
	return ngrams
}

// WordTokens returns the set of whitespace-delimited tokens of length > 1
// from the space-preserving normalization of text.
func WordTokens(text string) map[string]struct{} {
	words := make(map[string]struct{})
	for _, w := range strings.Fields(NormalizeWords(text)) {
		if len(w) > 1 {
			words[w] = struct{}{}
		}
	}
	return words
}

// Jaccard returns |A∩B| / |A∪B|. Two empty sets are identical (1.0);
// exactly one empty set shares nothing (0.0).
func Jaccard(a, b map[string]struct{}) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1.0
	}
	if len(a) == 0 || len(b) == 0 {
		return 0.0
	}
	intersection := 0
	for k := range a {
		if _, ok := b[k]; ok {
			intersection++
		}
	}
	union := len(a) + len(b) - intersection
	return float64(intersection) / float64(union)
}

// Similarity blends character-level and word-level Jaccard similarity.
// Word overlap dominates; trigram overlap catches partial and compound
// tokens. Symmetric by construction.
func Similarity(a, b string) float64 {
	ngramSim := Jaccard(CharNgrams(a, 3), CharNgrams(b, 3))
	wordSim := Jaccard(WordTokens(a), WordTokens(b))
	return ngramSim*0.4 + wordSim*0.6
}

// Levenshtein returns the classic edit distance between a and b over code
// points, using a single-row dynamic programming table.
func Levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	curr := make([]int, len(rb)+1)

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			ins := curr[j-1] + 1
			del := prev[j] + 1
			sub := prev[j-1] + cost
			curr[j] = min(ins, del, sub)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

// FuzzyRatio maps edit distance onto [0,1]: 1 − distance/max(len(a),len(b)).
// Two empty strings are identical (1.0).
func FuzzyRatio(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)
	maxLen := max(len(ra), len(rb))
	if maxLen == 0 {
		return 1.0
	}
	return 1.0 - float64(Levenshtein(a, b))/float64(maxLen)
}
