// SPDX-License-Identifier: Apache-2.0

package textmetric

import (
	"fmt"
	"sync"
)

// NgramCache memoizes CharNgrams results keyed by (text, n). It holds no
// identifying data beyond the raw input strings and may be cleared at any
// point without affecting correctness. Safe for concurrent use.
type NgramCache struct {
	mu      sync.RWMutex
	entries map[string]map[string]struct{}
}

// NewNgramCache creates an empty cache.
func NewNgramCache() *NgramCache {
	return &NgramCache{entries: make(map[string]map[string]struct{})}
}

// Ngrams returns the n-gram set for text, computing and storing it on first
// use. Callers must not mutate the returned set.
func (c *NgramCache) Ngrams(text string, n int) map[string]struct{} {
	key := fmt.Sprintf("%s\x00%d", text, n)

	c.mu.RLock()
	cached, ok := c.entries[key]
	c.mu.RUnlock()
	if ok {
		return cached
	}

	ngrams := CharNgrams(text, n)
	c.mu.Lock()
	c.entries[key] = ngrams
	c.mu.Unlock()
	return ngrams
}

// Similarity is the cached counterpart of the package-level Similarity:
// n-gram sets for both inputs come from the cache.
func (c *NgramCache) Similarity(a, b string) float64 {
	ngramSim := Jaccard(c.Ngrams(a, 3), c.Ngrams(b, 3))
	wordSim := Jaccard(WordTokens(a), WordTokens(b))
	return ngramSim*0.4 + wordSim*0.6
}

// Clear discards all memoized entries.
func (c *NgramCache) Clear() {
	c.mu.Lock()
	c.entries = make(map[string]map[string]struct{})
	c.mu.Unlock()
}

// Len reports the number of memoized entries.
func (c *NgramCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
