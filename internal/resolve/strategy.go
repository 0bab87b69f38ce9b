// SPDX-License-Identifier: Apache-2.0

// Package resolve drives the attribute-resolution cascade: an ordered list
// of strategies, each attempting to name the profile attribute a form field
// represents, executed until one succeeds. Stage order and thresholds are
// data; no error ever propagates out of a resolution — an unresolved field
// is a normal terminal state.
package resolve

import (
	"context"

	"github.com/formsenseproj/formsense-mcp/internal/match"
	"github.com/formsenseproj/formsense-mcp/internal/profile"
)

// Input is everything the cascade knows about one field. DateSiblings is
// the document-traversal collaborator's count of sibling controls whose own
// text carries day/month/year vocabulary; the pipeline itself never touches
// a document.
type Input struct {
	Context      match.FieldContext
	Profile      profile.Record
	DateSiblings int
}

// Strategy is one stage of the cascade. Attempt returns handled=false to
// pass the field to the next stage. A handled result with an empty key
// means the stage recognized the field but deliberately leaves it unfilled;
// the cascade stops there.
type Strategy interface {
	Name() string
	Attempt(ctx context.Context, in Input, s *Session) (result match.Result, handled bool)
}

// Classifier is the optional external classification capability invoked at
// the third stage. Implementations must honor the context deadline; any
// error or timeout degrades to "stage produced no result".
type Classifier interface {
	Classify(ctx context.Context, fc match.FieldContext) (match.Result, error)
}

// Resolution is the cascade's terminal state for one field. An empty Key
// means unresolved; Stage names the strategy that decided.
type Resolution struct {
	Key        string  `json:"key,omitempty"`
	Confidence float64 `json:"confidence"`
	Stage      string  `json:"stage,omitempty"`
}
