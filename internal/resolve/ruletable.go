// SPDX-License-Identifier: Apache-2.0

package resolve

import (
	"context"
	"regexp"
	"strings"

	"github.com/formsenseproj/formsense-mcp/internal/lexicon"
	"github.com/formsenseproj/formsense-mcp/internal/match"
	"github.com/formsenseproj/formsense-mcp/internal/textmetric"
)

// fieldRule maps a profile key to the phrases a form label may use for it.
// Rules are scored with fixed integer weights; the best rule wins if it
// reaches the configured cutoff.
type fieldRule struct {
	key     string
	phrases []string
}

var fieldRules = []fieldRule{
	{key: "email", phrases: []string{"email", "e-mail", "mail"}},
	{key: "phone", phrases: []string{"phone", "mobile", "contact number", "telephone", "tel"}},
	{key: "birthday", phrases: []string{"birthday", "birth date", "date of birth", "dob", "birthdate"}},
	{key: "firstName", phrases: []string{"first name", "given name", "forename", "given"}},
	{key: "lastName", phrases: []string{"last name", "surname", "family name", "family"}},
	{key: "fullName", phrases: []string{"full name", "name of applicant", "your name", "name"}},
	{key: "address1", phrases: []string{"address", "street address", "address line", "unit no"}},
	{key: "city", phrases: []string{"city", "town"}},
	{key: "postalCode", phrases: []string{"postal code", "zip", "zip code", "postcode"}},
	{key: "countryAddress", phrases: []string{"country", "nation", "country/region"}},
	{key: "university", phrases: []string{"university", "college", "institution", "school"}},
	{key: "degree", phrases: []string{"degree", "qualification", "level of study", "education level"}},
	{key: "major", phrases: []string{"major", "field of study", "specialization", "programme"}},
	{key: "gpa", phrases: []string{"gpa", "cgpa", "cap", "grade point"}},
	{key: "gradYear", phrases: []string{"graduation year", "year of graduation", "grad year", "completion year"}},
	{key: "linkedin", phrases: []string{"linkedin", "linkedin profile"}},
	{key: "github", phrases: []string{"github", "git hub"}},
	{key: "website", phrases: []string{"website", "portfolio", "personal site", "url"}},
	{key: "summary", phrases: []string{"summary", "bio", "about you", "profile summary", "about me"}},
}

// Integer weights of the rule-table scorer.
const (
	phraseExactWeight     = 4
	phrasePrefixWeight    = 3
	phraseSubstringWeight = 2
	tokenOverlapMax       = 2
	patternBonus          = 1
)

var (
	emailBonusPattern = regexp.MustCompile(`email`)
	phoneBonusPattern = regexp.MustCompile(`\b(tel|phone|mobile)\b`)
	zipBonusPattern   = regexp.MustCompile(`zip|postal`)
)

type ruleTableStage struct {
	cutoff int
}

func (ruleTableStage) Name() string { return "rule-table" }

func (r ruleTableStage) Attempt(_ context.Context, in Input, _ *Session) (match.Result, bool) {
	hay := textmetric.NormalizeWords(in.Context.CombinedText())
	if hay == "" {
		return match.Result{}, false
	}
	// Challenge fields ("email verification code") must not reach the email
	// rule.
	if lexicon.Challenge.MatchString(hay) {
		return match.Result{}, false
	}

	bestKey, bestScore := "", -1
	for _, rule := range fieldRules {
		score := scoreRule(hay, rule)
		if score > bestScore {
			bestKey, bestScore = rule.key, score
		}
	}
	if bestScore < r.cutoff {
		return match.Result{}, false
	}

	// A birthday hit on a control that names one component is really a
	// request for that component.
	if bestKey == "birthday" {
		switch {
		case lexicon.YearVocab.MatchString(hay):
			bestKey = KeyBirthYear
		case lexicon.MonthVocab.MatchString(hay):
			bestKey = KeyBirthMonth
		case lexicon.DayVocab.MatchString(hay):
			bestKey = KeyBirthDay
		}
	}

	// Several phrases of one rule can hit the same label, pushing the
	// integer score past ten; the reported confidence stays in [0,1].
	return match.Result{Key: bestKey, Confidence: min(float64(bestScore)/10, 1.0)}, true
}

func scoreRule(hay string, rule fieldRule) int {
	// A compound-name request never scores as a generic full name.
	if rule.key == "fullName" && lexicon.CompoundName.MatchString(hay) {
		return 0
	}

	score := 0
	for _, phrase := range rule.phrases {
		p := textmetric.NormalizeWords(phrase)
		if p == "" {
			continue
		}
		switch {
		case hay == p:
			score += phraseExactWeight
		case strings.HasPrefix(hay, p):
			score += phrasePrefixWeight
		case strings.Contains(hay, p):
			score += phraseSubstringWeight
		}
		hits := 0
		for _, token := range strings.Fields(p) {
			if strings.Contains(hay, token) {
				hits++
			}
		}
		score += min(tokenOverlapMax, hits)
	}

	if emailBonusPattern.MatchString(hay) {
		score += patternBonus
	}
	if phoneBonusPattern.MatchString(hay) {
		score += patternBonus
	}
	if zipBonusPattern.MatchString(hay) {
		score += patternBonus
	}
	return score
}
