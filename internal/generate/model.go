// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package generate

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"regexp"
	"strings"

	"github.com/pdiddy/content-planner/pkg/types"
)

// CompletionRequest is one call to the text-completion service.
type CompletionRequest struct {
	// Prompt is the full natural-language prompt.
	Prompt string

	// MaxTokens bounds the output length.
	MaxTokens int

	// Temperature and TopP control sampling.
	Temperature float64
	TopP        float64

	// Stop lists the stop sequences that end generation.
	Stop []string
}

// CompletionClient abstracts the text-completion service so tests can
// supply a mock. One call yields one complete response or an error;
// streaming is never assumed.
type CompletionClient interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}

const (
	defaultTopicAcceptRatio = 0.5
	defaultMinHashtags      = 3
	minCaptionLen           = 10
)

// jsonArrayPattern locates the first JSON array in a completion,
// spanning newlines.
var jsonArrayPattern = regexp.MustCompile(`(?s)\[.*\]`)

// hashtagPattern extracts "#" tokens from a completion.
var hashtagPattern = regexp.MustCompile(`#\w+`)

// ModelBackend generates content through a completion client and
// substitutes rule-based output whenever a call fails or its response
// misses the acceptance threshold. Degradations are logged and never
// surfaced to the caller; the three operations only return an error on
// a broken contract, not on a recoverable backend condition.
type ModelBackend struct {
	client           CompletionClient
	rules            *Rules
	topicAcceptRatio float64
	minHashtags      int
	log              io.Writer
}

// NewModelBackend wraps a completion client with rule-based fallback.
// Zero-valued thresholds in cfg take their defaults (ratio 0.5,
// minimum 3 hashtags).
func NewModelBackend(client CompletionClient, rules *Rules, cfg types.GenerateConfig, logW io.Writer) *ModelBackend {
	ratio := cfg.TopicAcceptRatio
	if ratio <= 0 {
		ratio = defaultTopicAcceptRatio
	}
	minTags := cfg.MinHashtags
	if minTags <= 0 {
		minTags = defaultMinHashtags
	}
	if logW == nil {
		logW = io.Discard
	}
	return &ModelBackend{
		client:           client,
		rules:            rules,
		topicAcceptRatio: ratio,
		minHashtags:      minTags,
		log:              logW,
	}
}

func (b *ModelBackend) Name() string { return "model-backed" }

// Topics asks the model for the full topic list. A response is
// accepted only when at least ceil(days * ratio) valid topics parse;
// otherwise the complete rule-based sequence substitutes — partial
// merges are never produced.
func (b *ModelBackend) Topics(ctx context.Context, themeText string, days int) ([]string, error) {
	topics, err := b.modelTopics(ctx, themeText, days)
	if err != nil {
		fmt.Fprintf(b.log, "warning: model topic generation failed (%v), using rule-based topics\n", err)
		return b.rules.TopicsFor(themeText, days), nil
	}
	return topics, nil
}

func (b *ModelBackend) modelTopics(ctx context.Context, themeText string, days int) ([]string, error) {
	prompt, err := renderPrompt(topicsPromptTmpl, promptData{Theme: themeText, Days: days})
	if err != nil {
		return nil, fmt.Errorf("rendering topics prompt: %w", err)
	}

	text, err := b.client.Complete(ctx, CompletionRequest{
		Prompt:      prompt,
		MaxTokens:   1024,
		Temperature: 0.7,
		TopP:        0.9,
		Stop:        []string{"</s>", "\n\n\n"},
	})
	if err != nil {
		return nil, fmt.Errorf("completing: %w", err)
	}

	topics := extractTopics(text, days)
	threshold := int(math.Ceil(float64(days) * b.topicAcceptRatio))
	if len(topics) < threshold {
		return nil, fmt.Errorf("parsed %d topics, need at least %d", len(topics), threshold)
	}

	// An accepted list shorter than requested cycles from its start,
	// the same wrap-around policy the curated pools use.
	parsed := len(topics)
	for i := parsed; i < days; i++ {
		topics = append(topics, topics[i%parsed])
	}
	return topics[:days], nil
}

// Caption asks the model for one caption; anything empty or not longer
// than 10 characters after hashtag stripping falls back to a
// rule-based caption.
func (b *ModelBackend) Caption(ctx context.Context, topic, themeText string) (string, error) {
	caption, err := b.modelCaption(ctx, topic, themeText)
	if err != nil {
		fmt.Fprintf(b.log, "warning: model caption generation failed (%v), using rule-based caption\n", err)
		return b.rules.CaptionFor(topic, themeText), nil
	}
	return caption, nil
}

func (b *ModelBackend) modelCaption(ctx context.Context, topic, themeText string) (string, error) {
	prompt, err := renderPrompt(captionPromptTmpl, promptData{Theme: themeText, Topic: topic})
	if err != nil {
		return "", fmt.Errorf("rendering caption prompt: %w", err)
	}

	text, err := b.client.Complete(ctx, CompletionRequest{
		Prompt:      prompt,
		MaxTokens:   150,
		Temperature: 0.8,
		TopP:        0.9,
		Stop:        []string{"</s>", "\n\n", "Caption for"},
	})
	if err != nil {
		return "", fmt.Errorf("completing: %w", err)
	}

	caption := stripHashtagTokens(strings.TrimSpace(text))
	if len(caption) <= minCaptionLen {
		return "", fmt.Errorf("caption too short after cleanup (%d chars)", len(caption))
	}
	return caption, nil
}

// Hashtags asks the model for hashtag tokens; fewer than the minimum
// falls back to rule-based hashtags. Accepted responses are capped to
// the first five tokens.
func (b *ModelBackend) Hashtags(ctx context.Context, topic, themeText string) (string, error) {
	tags, err := b.modelHashtags(ctx, topic, themeText)
	if err != nil {
		fmt.Fprintf(b.log, "warning: model hashtag generation failed (%v), using rule-based hashtags\n", err)
		return b.rules.HashtagsFor(topic, themeText), nil
	}
	return tags, nil
}

func (b *ModelBackend) modelHashtags(ctx context.Context, topic, themeText string) (string, error) {
	prompt, err := renderPrompt(hashtagsPromptTmpl, promptData{Theme: themeText, Topic: topic})
	if err != nil {
		return "", fmt.Errorf("rendering hashtags prompt: %w", err)
	}

	text, err := b.client.Complete(ctx, CompletionRequest{
		Prompt:      prompt,
		MaxTokens:   100,
		Temperature: 0.6,
		TopP:        0.8,
		Stop:        []string{"</s>", "\n\n"},
	})
	if err != nil {
		return "", fmt.Errorf("completing: %w", err)
	}

	tags := hashtagPattern.FindAllString(text, -1)
	if len(tags) < b.minHashtags {
		return "", fmt.Errorf("parsed %d hashtags, need at least %d", len(tags), b.minHashtags)
	}
	if len(tags) > maxHashtags {
		tags = tags[:maxHashtags]
	}
	return strings.Join(tags, " "), nil
}

// extractTopics pulls the first JSON string array out of a completion
// and returns up to limit trimmed, non-empty entries.
func extractTopics(text string, limit int) []string {
	match := jsonArrayPattern.FindString(text)
	if match == "" {
		return nil
	}

	var raw []string
	if err := json.Unmarshal([]byte(match), &raw); err != nil {
		return nil
	}

	topics := make([]string, 0, limit)
	for _, t := range raw {
		if len(topics) == limit {
			break
		}
		if t = strings.TrimSpace(t); t != "" {
			topics = append(topics, t)
		}
	}
	return topics
}

// stripHashtagTokens drops every whitespace-delimited token that
// starts with "#". This also eats a legitimate word like "#1";
// retained as-is for compatibility with established output.
func stripHashtagTokens(text string) string {
	words := strings.Fields(text)
	kept := words[:0]
	for _, w := range words {
		if !strings.HasPrefix(w, "#") {
			kept = append(kept, w)
		}
	}
	return strings.Join(kept, " ")
}
