// SPDX-License-Identifier: Apache-2.0

// Package tool exposes the field and option matchers as typed MCP tools.
package tool

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/formsenseproj/formsense-mcp/internal/lexicon"
	"github.com/formsenseproj/formsense-mcp/internal/match"
	"github.com/formsenseproj/formsense-mcp/internal/profile"
	"github.com/formsenseproj/formsense-mcp/internal/resolve"
	"github.com/formsenseproj/formsense-mcp/internal/textmetric"
)

// sharedCache backs the n-gram similarity of every tool invocation in this
// process; form labels repeat heavily across calls.
var sharedCache = textmetric.NewNgramCache()

// classifier is the optional external classification stage shared by the
// field tools; nil leaves the stage out of the cascade.
var classifier resolve.Classifier

// SetClassifier installs the external classifier used by the field tools.
// Call once at startup, before serving.
func SetClassifier(c resolve.Classifier) {
	classifier = c
}

// fieldSchema describes one form control's evidence; shared by the field
// tools' input schemas.
var fieldSchema = map[string]interface{}{
	"type":        "object",
	"description": "Evidence describing one form control.",
	"properties": map[string]interface{}{
		"label":        map[string]interface{}{"type": "string", "description": "Visible label text"},
		"placeholder":  map[string]interface{}{"type": "string", "description": "Placeholder text"},
		"name":         map[string]interface{}{"type": "string", "description": "name attribute"},
		"id":           map[string]interface{}{"type": "string", "description": "id attribute"},
		"aria_label":   map[string]interface{}{"type": "string", "description": "aria-label attribute"},
		"autocomplete": map[string]interface{}{"type": "string", "description": "autocomplete role hint"},
		"input_type":   map[string]interface{}{"type": "string", "description": "input type (email, tel, url, ...)"},
	},
}

// MetadataMatchField describes the match_field tool.
var MetadataMatchField = &mcp.Tool{
	Name: "match_field",
	Description: "Identify which profile attribute a form field represents. " +
		"Takes the field's visible and structural evidence (label, placeholder, name, id, " +
		"aria-label, autocomplete role, input type) plus a flat profile, runs the resolution " +
		"cascade, and returns the winning attribute key, a confidence in [0,1], and the stage " +
		"that decided. An empty key means the field was deliberately left unresolved " +
		"(verification challenges, missing name variants, already-claimed date components).",
	InputSchema: map[string]interface{}{
		"type":     "object",
		"required": []string{"field", "profile"},
		"properties": map[string]interface{}{
			"field": fieldSchema,
			"profile": map[string]interface{}{
				"type":        "object",
				"description": "Flat attribute map of the person profile (key to scalar value).",
				"additionalProperties": map[string]interface{}{
					"type": "string",
				},
			},
			"strictness": map[string]interface{}{
				"type":        "string",
				"description": "Threshold profile. Lenient favors fill coverage, strict favors precision.",
				"enum":        []string{"lenient", "strict"},
			},
			"date_siblings": map[string]interface{}{
				"type":        "integer",
				"description": "Number of sibling controls carrying day/month/year vocabulary, used to group birth-date components.",
			},
		},
	},
}

// InputMatchField is the input for the MatchField tool.
type InputMatchField struct {
	Field        match.FieldInfo   `json:"field"`
	Profile      map[string]string `json:"profile"`
	Strictness   string            `json:"strictness"`
	DateSiblings int               `json:"date_siblings"`
}

// OutputMatchField is the output for the MatchField tool.
type OutputMatchField struct {
	// Key is the winning profile attribute; empty when unresolved.
	Key string `json:"key"`
	// Confidence is the winning stage's confidence in [0,1].
	Confidence float64 `json:"confidence"`
	// Stage names the strategy that decided the field, empty when no
	// stage handled it.
	Stage string `json:"stage"`
	// Value is the profile's scalar for Key, when present.
	Value string `json:"value,omitempty"`
}

// MatchField runs the resolution cascade over a single field. Each call is
// its own session; batch callers that need grouped-key bookkeeping across
// fields should pass date components in document order within one call
// sequence per form.
func MatchField(ctx context.Context, _ *mcp.CallToolRequest, input InputMatchField) (*mcp.CallToolResult, OutputMatchField, error) {
	if len(input.Profile) == 0 {
		return nil, OutputMatchField{}, fmt.Errorf("profile is required")
	}
	thresholds, err := resolve.Profile(input.Strictness)
	if err != nil {
		return nil, OutputMatchField{}, err
	}

	rec := profile.FromFlat(input.Profile)
	pipe := resolve.New(resolve.Config{
		Thresholds: thresholds,
		Classifier: classifier,
		Cache:      sharedCache,
	})
	res := pipe.Resolve(ctx, resolve.Input{
		Context:      match.NewFieldContext(input.Field),
		Profile:      rec,
		DateSiblings: input.DateSiblings,
	}, resolve.NewSession())

	return nil, fieldOutput(res, rec), nil
}

func fieldOutput(res resolve.Resolution, rec profile.Record) OutputMatchField {
	out := OutputMatchField{Key: res.Key, Confidence: res.Confidence, Stage: res.Stage}
	if res.Key != "" {
		out.Value, _ = rec.Scalar(res.Key)
	}
	return out
}

// MetadataMatchFields describes the match_fields tool.
var MetadataMatchFields = &mcp.Tool{
	Name: "match_fields",
	Description: "Resolve every field of a form in document order under one session. " +
		"Grouped attributes (birth day, month, year) are assigned at most once across the " +
		"whole batch, and lone day/month/year controls are grouped by counting sibling " +
		"fields that carry date vocabulary of their own. Returns one result per field, " +
		"in input order.",
	InputSchema: map[string]interface{}{
		"type":     "object",
		"required": []string{"fields", "profile"},
		"properties": map[string]interface{}{
			"fields": map[string]interface{}{
				"type":        "array",
				"description": "The form's controls in document order.",
				"items":       fieldSchema,
			},
			"profile": map[string]interface{}{
				"type":        "object",
				"description": "Flat attribute map of the person profile (key to scalar value).",
				"additionalProperties": map[string]interface{}{
					"type": "string",
				},
			},
			"strictness": map[string]interface{}{
				"type":        "string",
				"description": "Threshold profile. Lenient favors fill coverage, strict favors precision.",
				"enum":        []string{"lenient", "strict"},
			},
		},
	},
}

// InputMatchFields is the input for the MatchFields tool.
type InputMatchFields struct {
	Fields     []match.FieldInfo `json:"fields"`
	Profile    map[string]string `json:"profile"`
	Strictness string            `json:"strictness"`
}

// OutputMatchFields is the output for the MatchFields tool.
type OutputMatchFields struct {
	// Results holds one resolution per input field, in input order.
	Results []OutputMatchField `json:"results"`
}

// MatchFields resolves a whole form under one session, so grouped keys are
// claimed at most once across the batch.
func MatchFields(ctx context.Context, _ *mcp.CallToolRequest, input InputMatchFields) (*mcp.CallToolResult, OutputMatchFields, error) {
	if len(input.Fields) == 0 {
		return nil, OutputMatchFields{}, fmt.Errorf("fields are required")
	}
	if len(input.Profile) == 0 {
		return nil, OutputMatchFields{}, fmt.Errorf("profile is required")
	}
	thresholds, err := resolve.Profile(input.Strictness)
	if err != nil {
		return nil, OutputMatchFields{}, err
	}

	contexts := make([]match.FieldContext, len(input.Fields))
	dated := 0
	for i, f := range input.Fields {
		contexts[i] = match.NewFieldContext(f)
		if lexicon.DateVocab.MatchString(contexts[i].CombinedText()) {
			dated++
		}
	}

	rec := profile.FromFlat(input.Profile)
	pipe := resolve.New(resolve.Config{
		Thresholds: thresholds,
		Classifier: classifier,
		Cache:      sharedCache,
	})
	sess := resolve.NewSession()

	results := make([]OutputMatchField, len(contexts))
	for i, fc := range contexts {
		siblings := dated
		if lexicon.DateVocab.MatchString(fc.CombinedText()) {
			siblings--
		}
		res := pipe.Resolve(ctx, resolve.Input{
			Context:      fc,
			Profile:      rec,
			DateSiblings: siblings,
		}, sess)
		results[i] = fieldOutput(res, rec)
	}
	return nil, OutputMatchFields{Results: results}, nil
}

// MetadataMatchOption describes the match_option tool.
var MetadataMatchOption = &mcp.Tool{
	Name: "match_option",
	Description: "Choose which option of an enumerated control (select, radio group) best " +
		"represents a desired profile value. Nationality-category fields get demonym-aware " +
		"resolution (quick map, suffix transformation, fuzzy and substring fallbacks); " +
		"everything else is scored by shared words, semantic clusters and character n-grams. " +
		"Returns the chosen option and its score, or an empty option when nothing clears " +
		"the threshold.",
	InputSchema: map[string]interface{}{
		"type":     "object",
		"required": []string{"desired", "options"},
		"properties": map[string]interface{}{
			"desired": map[string]interface{}{
				"type":        "string",
				"description": "The profile value to represent (e.g. \"Singaporean\", \"Bachelor of Science\").",
			},
			"category": map[string]interface{}{
				"type":        "string",
				"description": "Optional semantic category of the control. \"nationality\" switches to demonym resolution.",
			},
			"options": map[string]interface{}{
				"type":        "array",
				"description": "The control's options in document order.",
				"items": map[string]interface{}{
					"type":     "object",
					"required": []string{"text"},
					"properties": map[string]interface{}{
						"text":  map[string]interface{}{"type": "string", "description": "Visible option text"},
						"value": map[string]interface{}{"type": "string", "description": "Underlying option value"},
					},
				},
			},
			"strictness": map[string]interface{}{
				"type":        "string",
				"description": "Threshold profile. Lenient favors fill coverage, strict favors precision.",
				"enum":        []string{"lenient", "strict"},
			},
		},
	},
}

// InputMatchOption is the input for the MatchOption tool.
type InputMatchOption struct {
	Desired    string                  `json:"desired"`
	Category   string                  `json:"category"`
	Options    []match.OptionCandidate `json:"options"`
	Strictness string                  `json:"strictness"`
}

// OutputMatchOption is the output for the MatchOption tool.
type OutputMatchOption struct {
	// Text and Value identify the chosen option; both empty when no
	// option clears the threshold.
	Text  string `json:"text"`
	Value string `json:"value"`
	// Score is the chosen option's match score in [0,1].
	Score float64 `json:"score"`
	// Matched reports whether any option was chosen.
	Matched bool `json:"matched"`
}

// MatchOption scores the options of an enumerated control against a desired
// profile value.
func MatchOption(_ context.Context, _ *mcp.CallToolRequest, input InputMatchOption) (*mcp.CallToolResult, OutputMatchOption, error) {
	if input.Desired == "" {
		return nil, OutputMatchOption{}, fmt.Errorf("desired is required")
	}
	if len(input.Options) == 0 {
		return nil, OutputMatchOption{}, fmt.Errorf("options are required")
	}
	thresholds, err := resolve.Profile(input.Strictness)
	if err != nil {
		return nil, OutputMatchOption{}, err
	}

	matcher := match.NewOptionMatcher(
		thresholds.Option,
		match.NewNationalityResolver(thresholds.Nationality),
		sharedCache,
	)
	chosen, score := matcher.Match(input.Desired, input.Options, input.Category)
	if chosen == nil {
		return nil, OutputMatchOption{Score: score}, nil
	}
	return nil, OutputMatchOption{
		Text:    chosen.Text,
		Value:   chosen.Value,
		Score:   score,
		Matched: true,
	}, nil
}
