// SPDX-License-Identifier: Apache-2.0

package resolve

import (
	"context"
	"log/slog"
	"time"

	"github.com/formsenseproj/formsense-mcp/internal/match"
	"github.com/formsenseproj/formsense-mcp/internal/textmetric"
)

// DefaultExternalTimeout bounds one external classifier call.
const DefaultExternalTimeout = 3 * time.Second

// Config assembles a Pipeline. Classifier is optional; when nil the
// external stage is omitted entirely. A nil Cache or Logger gets a sane
// default.
type Config struct {
	Thresholds      Thresholds
	Classifier      Classifier
	ExternalTimeout time.Duration
	Logger          *slog.Logger
	Cache           *textmetric.NgramCache
}

// Pipeline runs the resolution cascade over one field at a time. It is
// immutable after construction and safe for concurrent use; all per-form
// state lives in the Session.
type Pipeline struct {
	strategies []Strategy
	log        *slog.Logger
}

// New builds the cascade in its fixed stage order.
func New(cfg Config) *Pipeline {
	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}
	cache := cfg.Cache
	if cache == nil {
		cache = textmetric.NewNgramCache()
	}
	timeout := cfg.ExternalTimeout
	if timeout <= 0 {
		timeout = DefaultExternalTimeout
	}

	strategies := []Strategy{
		structuredHintStage{},
		identifierHintStage{},
	}
	if cfg.Classifier != nil {
		strategies = append(strategies, externalStage{
			classifier:    cfg.Classifier,
			timeout:       timeout,
			minConfidence: cfg.Thresholds.External,
			log:           log,
		})
	}
	strategies = append(strategies,
		attributeStage{
			matcher:    match.NewMatcher(cfg.Thresholds.Attribute, cache),
			diagnostic: cfg.Thresholds.Diagnostic,
			log:        log,
		},
		compoundNameStage{},
		dateComponentStage{},
		ruleTableStage{cutoff: cfg.Thresholds.RuleTable},
		typeHintStage{},
	)

	return &Pipeline{strategies: strategies, log: log}
}

// Resolve runs the cascade for one field. The first stage to handle the
// field decides it; grouped keys already claimed in the session demote the
// field to unresolved rather than double-filling a component.
func (p *Pipeline) Resolve(ctx context.Context, in Input, s *Session) Resolution {
	for _, strat := range p.strategies {
		res, handled := strat.Attempt(ctx, in, s)
		if !handled {
			continue
		}
		if res.Key == "" {
			p.log.Debug("field deliberately unresolved",
				"session", s.ID(), "stage", strat.Name())
			return Resolution{Stage: strat.Name()}
		}
		if grouped(res.Key) && !s.Claim(res.Key) {
			p.log.Debug("grouped key already claimed",
				"session", s.ID(), "stage", strat.Name(), "key", res.Key)
			return Resolution{Stage: strat.Name()}
		}
		p.log.Debug("field resolved",
			"session", s.ID(), "stage", strat.Name(),
			"key", res.Key, "confidence", res.Confidence)
		return Resolution{Key: res.Key, Confidence: res.Confidence, Stage: strat.Name()}
	}
	return Resolution{}
}
