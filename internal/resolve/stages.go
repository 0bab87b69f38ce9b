// SPDX-License-Identifier: Apache-2.0

package resolve

import (
	"context"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/formsenseproj/formsense-mcp/internal/lexicon"
	"github.com/formsenseproj/formsense-mcp/internal/match"
	"github.com/formsenseproj/formsense-mcp/internal/textmetric"
)

// Stage confidence constants.
const (
	structuredHintConfidence = 1.0
	identifierHintConfidence = 0.9
	dateComponentConfidence  = 0.85
	typeHintConfidence       = 0.3
)

// ---------------------------------------------------------------------------
// Stage 1: structured role hints
// ---------------------------------------------------------------------------

// structuredHints maps the closed vocabulary of standard field-role hints
// to profile keys. A hit is definitive.
var structuredHints = map[string]string{
	"email":           "email",
	"tel":             "phone",
	"url":             "website",
	"given-name":      "firstName",
	"additional-name": "middleName",
	"family-name":     "lastName",
	"name":            "fullName",
	"organization":    "university",
	"address-line1":   "address1",
	"postal-code":     "postalCode",
	"country":         "countryAddress",
	"country-name":    "countryAddress",
	"bday":            "birthday",
	"bday-day":        KeyBirthDay,
	"bday-month":      KeyBirthMonth,
	"bday-year":       KeyBirthYear,
}

type structuredHintStage struct{}

func (structuredHintStage) Name() string { return "structured-hint" }

func (structuredHintStage) Attempt(_ context.Context, in Input, _ *Session) (match.Result, bool) {
	hint := strings.ToLower(strings.TrimSpace(in.Context.Autocomplete))
	if hint == "" {
		return match.Result{}, false
	}
	key, ok := structuredHints[hint]
	if !ok {
		// Role hints may carry section prefixes ("shipping postal-code");
		// retry on the last token.
		parts := strings.Fields(hint)
		key, ok = structuredHints[parts[len(parts)-1]]
	}
	if !ok {
		return match.Result{}, false
	}
	return match.Result{Key: key, Confidence: structuredHintConfidence}, true
}

// ---------------------------------------------------------------------------
// Stage 2: identifier-pattern hints
// ---------------------------------------------------------------------------

// Identifier hints examine only the raw name/id attributes, never the
// label: a developer-chosen identifier like "fname" is unambiguous where a
// label rarely is.
var identifierHints = []struct {
	key     string
	pattern *regexp.Regexp
}{
	{"firstName", regexp.MustCompile(`\b(given|first|fname|first ?name)\b`)},
	{"lastName", regexp.MustCompile(`\b(family|last|lname|last ?name|surname)\b`)},
	{"middleName", regexp.MustCompile(`\b(middle|mname|middle ?name)\b`)},
}

type identifierHintStage struct{}

func (identifierHintStage) Name() string { return "identifier-hint" }

func (identifierHintStage) Attempt(_ context.Context, in Input, _ *Session) (match.Result, bool) {
	ids := textmetric.NormalizeWords(in.Context.Name + " " + in.Context.ID)
	if ids == "" {
		return match.Result{}, false
	}
	for _, h := range identifierHints {
		if h.pattern.MatchString(ids) {
			return match.Result{Key: h.key, Confidence: identifierHintConfidence}, true
		}
	}
	return match.Result{}, false
}

// ---------------------------------------------------------------------------
// Stage 3: external classifier
// ---------------------------------------------------------------------------

type externalStage struct {
	classifier    Classifier
	timeout       time.Duration
	minConfidence float64
	log           *slog.Logger
}

func (externalStage) Name() string { return "external" }

func (e externalStage) Attempt(ctx context.Context, in Input, s *Session) (match.Result, bool) {
	cctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	res, err := e.classifier.Classify(cctx, in.Context)
	if err != nil {
		// A slow or broken classifier degrades to the next stage.
		e.log.Debug("external classifier unavailable", "session", s.ID(), "error", err)
		return match.Result{}, false
	}
	if res.Key == "" || res.Confidence <= e.minConfidence {
		return match.Result{}, false
	}
	return res, true
}

// ---------------------------------------------------------------------------
// Stage 4: dynamic attribute matcher
// ---------------------------------------------------------------------------

type attributeStage struct {
	matcher    *match.Matcher
	diagnostic float64
	log        *slog.Logger
}

func (attributeStage) Name() string { return "attribute" }

func (a attributeStage) Attempt(_ context.Context, in Input, s *Session) (match.Result, bool) {
	res := a.matcher.Match(in.Context, in.Profile)
	if res.Key != "" {
		return res, true
	}
	if res.Confidence >= a.diagnostic {
		a.log.Warn("attribute near miss",
			"session", s.ID(),
			"field", in.Context.CombinedText(),
			"confidence", res.Confidence)
	}
	return match.Result{}, false
}

// ---------------------------------------------------------------------------
// Stage 5: compound-name detectors
// ---------------------------------------------------------------------------

// compoundDetectors pair a name-variant vocabulary with the profile keys
// that may satisfy it, in preference order.
var compoundDetectors = []struct {
	vocab *regexp.Regexp
	keys  []string
}{
	{lexicon.PreferredName, []string{"preferredName"}},
	{lexicon.MiddleName, []string{"middleName", "middleInitial"}},
	{lexicon.MaidenName, []string{"maidenName"}},
	{lexicon.Nickname, []string{"nickname"}},
}

type compoundNameStage struct{}

func (compoundNameStage) Name() string { return "compound-name" }

// Attempt recognizes requests for a specific name variant. When the
// vocabulary matches but the profile lacks the attribute, the field is
// handled as explicitly unresolved: falling back to a generic name key
// would misroute it.
func (compoundNameStage) Attempt(_ context.Context, in Input, _ *Session) (match.Result, bool) {
	combined := in.Context.CombinedText()
	for _, d := range compoundDetectors {
		if !d.vocab.MatchString(combined) {
			continue
		}
		for _, key := range d.keys {
			if in.Profile.HasScalar(key) {
				return match.Result{Key: key, Confidence: identifierHintConfidence}, true
			}
		}
		return match.Result{}, true
	}
	return match.Result{}, false
}

// ---------------------------------------------------------------------------
// Stage 6a: birth-date component detection
// ---------------------------------------------------------------------------

type dateComponentStage struct{}

func (dateComponentStage) Name() string { return "date-component" }

// Attempt detects a lone day/month/year control. A field counts as a date
// subcomponent only when tied to birth vocabulary directly, or when at
// least two sibling controls carry date vocabulary of their own.
func (dateComponentStage) Attempt(_ context.Context, in Input, _ *Session) (match.Result, bool) {
	combined := in.Context.CombinedText()
	if combined == "" {
		return match.Result{}, false
	}
	day := lexicon.DayVocab.MatchString(combined)
	month := lexicon.MonthVocab.MatchString(combined)
	year := lexicon.YearVocab.MatchString(combined)
	partOfGroup := in.DateSiblings >= 2
	birth := lexicon.BirthVocab.MatchString(combined)

	switch {
	case day && !month && !year:
		if partOfGroup || birth {
			return match.Result{Key: KeyBirthDay, Confidence: dateComponentConfidence}, true
		}
	case month && !day && !year:
		if partOfGroup || birth {
			return match.Result{Key: KeyBirthMonth, Confidence: dateComponentConfidence}, true
		}
	case year && !day && !month:
		if lexicon.GradVocab.MatchString(combined) {
			return match.Result{Key: "gradYear", Confidence: dateComponentConfidence}, true
		}
		if partOfGroup || birth {
			return match.Result{Key: KeyBirthYear, Confidence: dateComponentConfidence}, true
		}
	}
	return match.Result{}, false
}

// ---------------------------------------------------------------------------
// Stage 7: input-type last resort
// ---------------------------------------------------------------------------

var typeLastResort = map[string]string{
	"email": "email",
	"tel":   "phone",
	"url":   "website",
}

type typeHintStage struct{}

func (typeHintStage) Name() string { return "type-hint" }

func (typeHintStage) Attempt(_ context.Context, in Input, _ *Session) (match.Result, bool) {
	if key, ok := typeLastResort[in.Context.InputType]; ok {
		return match.Result{Key: key, Confidence: typeHintConfidence}, true
	}
	return match.Result{}, false
}
