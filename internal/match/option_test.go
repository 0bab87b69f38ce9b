// SPDX-License-Identifier: Apache-2.0

package match_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/formsenseproj/formsense-mcp/internal/match"
)

func options(texts ...string) []match.OptionCandidate {
	opts := make([]match.OptionCandidate, len(texts))
	for i, t := range texts {
		opts[i] = match.OptionCandidate{Text: t}
	}
	return opts
}

// ---------------------------------------------------------------------------
// Option matcher
// ---------------------------------------------------------------------------

func TestOptionMatcher_ExactMatch(t *testing.T) {
	m := match.NewOptionMatcher(0.3, nil, nil)

	best, score := m.Match("Male", options("Male", "Female", "Prefer not to say"), "")
	require.NotNil(t, best)
	assert.Equal(t, "Male", best.Text)
	assert.Equal(t, 1.0, score)
}

func TestOptionMatcher_ExactValueMatch(t *testing.T) {
	m := match.NewOptionMatcher(0.3, nil, nil)
	opts := []match.OptionCandidate{
		{Text: "United States of America", Value: "US"},
		{Text: "Canada", Value: "CA"},
	}
	best, score := m.Match("us", opts, "")
	require.NotNil(t, best)
	assert.Equal(t, "US", best.Value)
	assert.Equal(t, 1.0, score)
}

func TestOptionMatcher_DegreeLevel(t *testing.T) {
	m := match.NewOptionMatcher(0.3, nil, nil)

	best, score := m.Match("Bachelor of Science",
		options("High School", "Bachelor's Degree", "Master's Degree"), "degree")
	require.NotNil(t, best)
	assert.Equal(t, "Bachelor's Degree", best.Text)
	assert.GreaterOrEqual(t, score, 0.8)
}

func TestOptionMatcher_DegreeLevelAcrossWording(t *testing.T) {
	m := match.NewOptionMatcher(0.3, nil, nil)

	// No shared word at all between "PhD" and "Doctorate"; the canonical
	// level carries the match.
	best, score := m.Match("PhD", options("Undergraduate", "Doctorate", "Associate"), "")
	require.NotNil(t, best)
	assert.Equal(t, "Doctorate", best.Text)
	assert.GreaterOrEqual(t, score, 0.8)
}

func TestOptionMatcher_SemanticCluster(t *testing.T) {
	m := match.NewOptionMatcher(0.3, nil, nil)

	best, _ := m.Match("fulltime", options("Full-time employment", "Part-time employment"), "")
	require.NotNil(t, best)
	assert.Equal(t, "Full-time employment", best.Text)
}

func TestOptionMatcher_NoMatchBelowThreshold(t *testing.T) {
	m := match.NewOptionMatcher(0.5, nil, nil)

	best, score := m.Match("Aerospace", options("Red", "Green", "Blue"), "")
	assert.Nil(t, best)
	assert.Less(t, score, 0.5)
}

func TestOptionMatcher_EmptyInputs(t *testing.T) {
	m := match.NewOptionMatcher(0.3, nil, nil)

	best, _ := m.Match("", options("A"), "")
	assert.Nil(t, best)
	best, _ = m.Match("A", nil, "")
	assert.Nil(t, best)
}

func TestOptionMatcher_NationalityCategoryDelegates(t *testing.T) {
	m := match.NewOptionMatcher(0.3, match.NewNationalityResolver(0.6), nil)

	best, score := m.Match("French", options("France", "Germany", "Spain"), "nationality")
	require.NotNil(t, best)
	assert.Equal(t, "France", best.Text)
	assert.Equal(t, 1.0, score)
}

// ---------------------------------------------------------------------------
// Nationality resolver
// ---------------------------------------------------------------------------

func TestNationalityResolver_AmericanPriority(t *testing.T) {
	r := match.NewNationalityResolver(0.6)

	best, score := r.Match("American", options("Canada", "United States", "Mexico"))
	require.NotNil(t, best)
	assert.Equal(t, "United States", best.Text)
	assert.Equal(t, 1.0, score)
}

func TestNationalityResolver_QuickMap(t *testing.T) {
	r := match.NewNationalityResolver(0.6)

	tests := []struct {
		desired string
		opts    []string
		want    string
	}{
		{"German", []string{"France", "Germany", "Italy"}, "Germany"},
		{"british", []string{"United Kingdom", "Ireland"}, "United Kingdom"},
		{"Singaporean", []string{"SG", "MY", "TH"}, "SG"},
		{"Dutch", []string{"Belgium", "Netherlands"}, "Netherlands"},
	}
	for _, tt := range tests {
		best, score := r.Match(tt.desired, options(tt.opts...))
		require.NotNil(t, best, "desired %q", tt.desired)
		assert.Equal(t, tt.want, best.Text)
		assert.Equal(t, 1.0, score)
	}
}

func TestNationalityResolver_ReverseLookup(t *testing.T) {
	r := match.NewNationalityResolver(0.6)

	// Desired is a country variant, options carry another variant.
	best, score := r.Match("USA", options("Canada", "United States", "Mexico"))
	require.NotNil(t, best)
	assert.Equal(t, "United States", best.Text)
	assert.Equal(t, 1.0, score)
}

func TestNationalityResolver_Transformation(t *testing.T) {
	r := match.NewNationalityResolver(0.6)

	// "Nepalese" is not in the quick map; the -ese rule recovers Nepal.
	best, score := r.Match("Nepalese", options("India", "Nepal", "Bhutan"))
	require.NotNil(t, best)
	assert.Equal(t, "Nepal", best.Text)
	assert.GreaterOrEqual(t, score, 0.95)
}

func TestNationalityResolver_FuzzyFallback(t *testing.T) {
	r := match.NewNationalityResolver(0.6)

	best, _ := r.Match("Luxembourg", options("Luxemburg", "Austria"))
	require.NotNil(t, best)
	assert.Equal(t, "Luxemburg", best.Text)
}

func TestNationalityResolver_SubstringFallback(t *testing.T) {
	r := match.NewNationalityResolver(0.6)

	best, score := r.Match("Kazakhstan", options("Republic of Kazakhstan (KZ)", "Uzbekistan"))
	require.NotNil(t, best)
	assert.Equal(t, "Republic of Kazakhstan (KZ)", best.Text)
	assert.GreaterOrEqual(t, score, 0.6)
}

func TestNationalityResolver_NoMatch(t *testing.T) {
	r := match.NewNationalityResolver(0.6)

	best, _ := r.Match("Martian", options("France", "Germany"))
	assert.Nil(t, best)
}

func TestNationalityResolver_StrictThreshold(t *testing.T) {
	lenient := match.NewNationalityResolver(0.6)
	strict := match.NewNationalityResolver(0.7)

	// A pure substring hit scores exactly 0.6: lenient keeps it, strict
	// rejects it.
	opts := options("Kingdom of Eswatini")
	best, _ := lenient.Match("eswatini", opts)
	assert.NotNil(t, best)
	best, _ = strict.Match("eswatini", opts)
	assert.Nil(t, best)
}
