// SPDX-License-Identifier: Apache-2.0

package tool

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/formsenseproj/formsense-mcp/internal/match"
)

func TestMatchField(t *testing.T) {
	ctx := context.Background()
	req := &mcp.CallToolRequest{}

	prof := map[string]string{
		"firstName":  "Ada",
		"lastName":   "Lovelace",
		"email":      "ada@example.com",
		"university": "National University of Singapore",
		"city":       "Singapore",
	}

	tests := []struct {
		name           string
		input          InputMatchField
		wantErr        bool
		errContains    string
		validateOutput func(t *testing.T, output OutputMatchField)
	}{
		{
			name:        "missing profile returns error",
			input:       InputMatchField{Field: match.FieldInfo{Label: "First name"}},
			wantErr:     true,
			errContains: "profile is required",
		},
		{
			name: "unknown strictness returns error",
			input: InputMatchField{
				Field:      match.FieldInfo{Label: "First name"},
				Profile:    prof,
				Strictness: "paranoid",
			},
			wantErr:     true,
			errContains: "unknown strictness profile",
		},
		{
			name: "role hint resolves with full confidence",
			input: InputMatchField{
				Field:   match.FieldInfo{Label: "Work contact", Autocomplete: "email"},
				Profile: prof,
			},
			validateOutput: func(t *testing.T, output OutputMatchField) {
				assert.Equal(t, "email", output.Key)
				assert.Equal(t, 1.0, output.Confidence)
				assert.Equal(t, "structured-hint", output.Stage)
				assert.Equal(t, "ada@example.com", output.Value)
			},
		},
		{
			name: "label resolves through the attribute matcher",
			input: InputMatchField{
				Field:   match.FieldInfo{Label: "First name"},
				Profile: prof,
			},
			validateOutput: func(t *testing.T, output OutputMatchField) {
				assert.Equal(t, "firstName", output.Key)
				assert.GreaterOrEqual(t, output.Confidence, 0.4)
				assert.Equal(t, "Ada", output.Value)
			},
		},
		{
			name: "security challenge stays unresolved",
			input: InputMatchField{
				Field:   match.FieldInfo{Label: "Verification code"},
				Profile: prof,
			},
			validateOutput: func(t *testing.T, output OutputMatchField) {
				assert.Empty(t, output.Key)
				assert.Empty(t, output.Value)
			},
		},
		{
			name: "strict profile rejects a weak match",
			input: InputMatchField{
				Field:      match.FieldInfo{Placeholder: "town"},
				Profile:    prof,
				Strictness: "strict",
			},
			validateOutput: func(t *testing.T, output OutputMatchField) {
				assert.NotEqual(t, "attribute", output.Stage)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, output, err := MatchField(ctx, req, tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}
			require.NoError(t, err)
			tt.validateOutput(t, output)
		})
	}
}

type stubClassifier struct {
	res match.Result
}

func (s stubClassifier) Classify(_ context.Context, _ match.FieldContext) (match.Result, error) {
	return s.res, nil
}

func TestMatchField_InstalledClassifier(t *testing.T) {
	SetClassifier(stubClassifier{res: match.Result{Key: "major", Confidence: 0.92}})
	t.Cleanup(func() { SetClassifier(nil) })

	_, output, err := MatchField(context.Background(), &mcp.CallToolRequest{}, InputMatchField{
		Field:   match.FieldInfo{Label: "What are you studying?"},
		Profile: map[string]string{"major": "Computer Science"},
	})
	require.NoError(t, err)
	assert.Equal(t, "major", output.Key)
	assert.Equal(t, "external", output.Stage)
	assert.Equal(t, "Computer Science", output.Value)
}

func TestMatchFields(t *testing.T) {
	ctx := context.Background()
	req := &mcp.CallToolRequest{}

	prof := map[string]string{
		"firstName": "Ada",
		"email":     "ada@example.com",
	}

	t.Run("missing fields returns error", func(t *testing.T) {
		_, _, err := MatchFields(ctx, req, InputMatchFields{Profile: prof})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "fields are required")
	})

	t.Run("missing profile returns error", func(t *testing.T) {
		_, _, err := MatchFields(ctx, req, InputMatchFields{
			Fields: []match.FieldInfo{{Label: "First name"}},
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "profile is required")
	})

	t.Run("date components share one session", func(t *testing.T) {
		_, output, err := MatchFields(ctx, req, InputMatchFields{
			Fields: []match.FieldInfo{
				{Label: "First name"},
				{Label: "Day"},
				{Label: "Month"},
				{Label: "Year"},
				{Label: "Day"},
			},
			Profile: prof,
		})
		require.NoError(t, err)
		require.Len(t, output.Results, 5)

		assert.Equal(t, "firstName", output.Results[0].Key)
		assert.Equal(t, "Ada", output.Results[0].Value)

		// Lone day/month/year controls group through their siblings.
		assert.Equal(t, "birthDay", output.Results[1].Key)
		assert.Equal(t, "birthMonth", output.Results[2].Key)
		assert.Equal(t, "birthYear", output.Results[3].Key)

		// The second day control must not double-fill.
		assert.Empty(t, output.Results[4].Key)
	})

	t.Run("single field has no siblings to group with", func(t *testing.T) {
		_, output, err := MatchFields(ctx, req, InputMatchFields{
			Fields:  []match.FieldInfo{{Label: "Day"}},
			Profile: prof,
		})
		require.NoError(t, err)
		require.Len(t, output.Results, 1)
		assert.Empty(t, output.Results[0].Key)
	})
}

func TestMatchOption(t *testing.T) {
	ctx := context.Background()
	req := &mcp.CallToolRequest{}

	degrees := []match.OptionCandidate{
		{Text: "High School Diploma", Value: "hs"},
		{Text: "Bachelor's Degree", Value: "bachelor"},
		{Text: "Master's Degree", Value: "master"},
	}
	countries := []match.OptionCandidate{
		{Text: "Singapore", Value: "SG"},
		{Text: "United States", Value: "US"},
		{Text: "Germany", Value: "DE"},
	}

	tests := []struct {
		name           string
		input          InputMatchOption
		wantErr        bool
		errContains    string
		validateOutput func(t *testing.T, output OutputMatchOption)
	}{
		{
			name:        "missing desired returns error",
			input:       InputMatchOption{Options: degrees},
			wantErr:     true,
			errContains: "desired is required",
		},
		{
			name:        "missing options returns error",
			input:       InputMatchOption{Desired: "Bachelor of Science"},
			wantErr:     true,
			errContains: "options are required",
		},
		{
			name: "degree level crosses wording",
			input: InputMatchOption{
				Desired: "Bachelor of Science in Computing",
				Options: degrees,
			},
			validateOutput: func(t *testing.T, output OutputMatchOption) {
				require.True(t, output.Matched)
				assert.Equal(t, "Bachelor's Degree", output.Text)
				assert.GreaterOrEqual(t, output.Score, 0.8)
			},
		},
		{
			name: "nationality category resolves demonyms",
			input: InputMatchOption{
				Desired:  "American",
				Category: "nationality",
				Options:  countries,
			},
			validateOutput: func(t *testing.T, output OutputMatchOption) {
				require.True(t, output.Matched)
				assert.Equal(t, "United States", output.Text)
			},
		},
		{
			name: "nothing clears the threshold",
			input: InputMatchOption{
				Desired: "Welding certificate level three",
				Options: countries,
			},
			validateOutput: func(t *testing.T, output OutputMatchOption) {
				assert.False(t, output.Matched)
				assert.Empty(t, output.Text)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, output, err := MatchOption(ctx, req, tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}
			require.NoError(t, err)
			tt.validateOutput(t, output)
		})
	}
}
