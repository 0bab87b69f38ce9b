// SPDX-License-Identifier: Apache-2.0

package lexicon_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/formsenseproj/formsense-mcp/internal/lexicon"
)

func TestExpand(t *testing.T) {
	phrase, ok := lexicon.Expand("dob")
	assert.True(t, ok)
	assert.Equal(t, "date of birth", phrase)

	phrase, ok = lexicon.Expand("GPA")
	assert.True(t, ok, "lookup is case-insensitive")
	assert.Equal(t, "grade point average", phrase)

	_, ok = lexicon.Expand("nationality")
	assert.False(t, ok)
}

func TestSharesCategory(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want bool
	}{
		{name: "both contact", a: "email address", b: "workemail", want: true},
		{name: "both academic", a: "name of university", b: "gpa", want: true},
		{name: "disjoint", a: "email address", b: "street", want: false},
		{name: "empty text", a: "", b: "email", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, lexicon.SharesCategory(tt.a, tt.b))
		})
	}
}

func TestCategories(t *testing.T) {
	cats := lexicon.Categories("work email address")
	assert.Contains(t, cats, lexicon.CategoryContact)
	assert.Contains(t, cats, lexicon.CategoryProfessional)
	assert.Empty(t, lexicon.Categories("xyzzy"))
}

func TestClusterMates(t *testing.T) {
	mates := lexicon.ClusterMates("bachelor")
	assert.Contains(t, mates, "undergraduate")
	assert.NotContains(t, mates, "bachelor", "the word itself is excluded")

	assert.Nil(t, lexicon.ClusterMates("zebra"))
}

func TestExtractDegreeLevel(t *testing.T) {
	tests := []struct {
		text string
		want lexicon.DegreeLevel
	}{
		{"bachelor of science", lexicon.DegreeUndergraduate},
		{"bachelors degree", lexicon.DegreeUndergraduate},
		{"master of arts", lexicon.DegreeGraduate},
		{"mba", lexicon.DegreeGraduate},
		{"phd candidate", lexicon.DegreeDoctorate},
		{"high school diploma", lexicon.DegreeHighSchool},
		{"associates", lexicon.DegreeAssociate},
		{"no degree vocabulary here at all", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, lexicon.ExtractDegreeLevel(tt.text), "text %q", tt.text)
	}
}

func TestChallengeVocabulary(t *testing.T) {
	matching := []string{
		"enter the security code",
		"captcha",
		"one-time password",
		"please prove you are not a robot",
		"otp",
	}
	for _, text := range matching {
		assert.True(t, lexicon.Challenge.MatchString(text), "expected challenge match for %q", text)
	}
	assert.False(t, lexicon.Challenge.MatchString("postal code"), "postal code is not a challenge field")
}

func TestTransformRule_Apply(t *testing.T) {
	tests := []struct {
		demonym string
		want    string
	}{
		{"Italian", "Italy"},
		{"Canadian", "Canada"},
		{"Indian", "india"}, // generic -ian fallback lands on the right name
		{"Spanish", "Spain"},
		{"Turkish", "Turkey"},
		{"Chinese", "China"},
		{"Japanese", "Japan"},
		{"American", "United States"},
		{"Korean", "South Korea"},
		{"Saudi", "Saudi Arabia"},
		{"Israeli", "Israel"},
		{"Finnish", "Finland"},
	}
	for _, tt := range tests {
		var got string
		for _, rule := range lexicon.NationalityTransformRules {
			if guess, ok := rule.Apply(tt.demonym); ok {
				got = guess
				break
			}
		}
		assert.Equal(t, tt.want, got, "demonym %q", tt.demonym)
	}
}

func TestTransformRule_NoSuffix(t *testing.T) {
	rule := lexicon.NationalityTransformRules[0]
	_, ok := rule.Apply("dutch")
	assert.False(t, ok)
	_, ok = rule.Apply("ian")
	assert.False(t, ok, "suffix alone leaves no stem")
}

func TestNationalityQuickMapWellFormed(t *testing.T) {
	for demonym, variants := range lexicon.NationalityQuickMap {
		assert.NotEmpty(t, variants, "demonym %q has no variants", demonym)
	}
}
