// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package generate

import (
	"context"
	"fmt"
	"io"

	"github.com/pdiddy/content-planner/pkg/types"
)

// Backend is the generation contract the pipeline consumes. Both
// variants honor the same three operations; the model-backed variant
// recovers from any of its own failures by substituting the rule-based
// equivalent, so in practice neither variant surfaces errors for valid
// input.
type Backend interface {
	// Name identifies the variant for logging and run records.
	Name() string

	// Topics returns exactly days topics for the theme.
	Topics(ctx context.Context, themeText string, days int) ([]string, error)

	// Caption returns one non-empty caption for the topic.
	Caption(ctx context.Context, topic, themeText string) (string, error)

	// Hashtags returns a space-joined "#" token line for the topic.
	Hashtags(ctx context.Context, topic, themeText string) (string, error)
}

// RuleBackend adapts Rules to the Backend contract.
type RuleBackend struct {
	rules *Rules
}

// NewRuleBackend wraps a rule-based generator.
func NewRuleBackend(rules *Rules) *RuleBackend {
	return &RuleBackend{rules: rules}
}

func (b *RuleBackend) Name() string { return "rule-based" }

func (b *RuleBackend) Topics(_ context.Context, themeText string, days int) ([]string, error) {
	return b.rules.TopicsFor(themeText, days), nil
}

func (b *RuleBackend) Caption(_ context.Context, topic, themeText string) (string, error) {
	return b.rules.CaptionFor(topic, themeText), nil
}

func (b *RuleBackend) Hashtags(_ context.Context, topic, themeText string) (string, error) {
	return b.rules.HashtagsFor(topic, themeText), nil
}

// NewBackend selects the generation backend for one run. With the
// model disabled it returns the rule-based backend directly. With the
// model enabled it constructs the completion client; if construction
// fails the selector logs the degradation and permanently downgrades
// to the rule-based backend for the lifetime of the returned instance.
// The downgrade is one-way and never re-attempted mid-run.
func NewBackend(cfg types.GenerateConfig, rules *Rules, logW io.Writer) Backend {
	ruleBackend := NewRuleBackend(rules)
	if !cfg.Enabled {
		return ruleBackend
	}

	client, err := NewOpenAIClient(cfg.LLMConfig)
	if err != nil {
		fmt.Fprintf(logW, "warning: model backend unavailable (%v), using rule-based generation\n", err)
		return ruleBackend
	}

	return NewModelBackend(client, rules, cfg, logW)
}
