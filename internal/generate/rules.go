// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package generate produces day topics, captions, and hashtags for a
// brand theme. Two generators implement the same Backend contract: a
// rule-based one built on curated pools and templates, and a
// model-backed one that calls a text-completion service and falls back
// to the rules whenever a response misses its acceptance threshold.
package generate

import (
	"fmt"
	"strings"

	"github.com/pdiddy/content-planner/internal/theme"
)

// maxHashtags caps the number of tokens in a hashtag line.
const maxHashtags = 5

// maxTopicTokenLen drops over-long CamelCase topic hashtags.
const maxTopicTokenLen = 20

// captionTemplates are the caption pool. Argument 1 is the topic,
// argument 2 the lower-cased theme, argument 3 the theme with spaces
// removed.
var captionTemplates = []string{
	"💡 %[1]s: Your %[2]s game-changer! Ready to level up? Let's dive in! 🚀",
	"🌟 Today's spotlight: %[1]s. Small steps, big results in your %[2]s journey! ✨",
	"🔥 %[1]s - the secret sauce to crushing your %[2]s goals! Who's ready to try this? 💪",
	"✨ Transform your routine with %[1]s! Your future self will thank you 🙏 #%[3]s",
	"🎯 Focus Friday: %[1]s. Because consistency in %[2]s creates magic! ✨",
	"💪 %[1]s isn't just a tip - it's your pathway to %[2]s success! Let's go! 🚀",
	"🌱 Growing stronger every day with %[1]s. Your %[2]s journey matters! 💚",
	"⚡ Power up your %[2]s with %[1]s! Simple changes, powerful results 🔥",
	"🎉 Celebrating progress with %[1]s! Every step counts in your %[2]s story 📈",
	"🧠 Smart strategy: %[1]s. Work smarter, not harder in your %[2]s journey! 💡",
	"🌈 Brighten your day with %[1]s! Making %[2]s fun and sustainable 😊",
	"⭐ Pro tip: %[1]s is your secret weapon for %[2]s success! Ready to shine? ✨",
}

// Rules is the rule-based generator. It is pure apart from the
// injected sampling source and never fails on valid input.
type Rules struct {
	rng Rand
}

// NewRules returns a rule-based generator drawing from rng.
func NewRules(rng Rand) *Rules {
	return &Rules{rng: rng}
}

// TopicsFor returns exactly days topics for themeText. A classified
// theme takes its category's curated list, cycled from the start when
// days exceeds the pool. An unclassified theme formats the generic
// base list as "{theme}: {base}". days <= 0 yields an empty slice;
// callers reject such requests before generation.
func (r *Rules) TopicsFor(themeText string, days int) []string {
	if days <= 0 {
		return nil
	}

	topics := make([]string, 0, days)
	if cat, ok := theme.Classify(themeText); ok {
		pool := cat.Topics()
		for i := 0; i < days; i++ {
			topics = append(topics, pool[i%len(pool)])
		}
		return topics
	}

	for i := 0; i < days; i++ {
		base := theme.GenericTopics[i%len(theme.GenericTopics)]
		topics = append(topics, fmt.Sprintf("%s: %s", themeText, base))
	}
	return topics
}

// CaptionFor picks one caption template uniformly and interpolates the
// topic and theme. The result is never empty.
func (r *Rules) CaptionFor(topic, themeText string) string {
	tmpl := captionTemplates[r.rng.Intn(len(captionTemplates))]
	return fmt.Sprintf(tmpl, topic, strings.ToLower(themeText), strings.ReplaceAll(themeText, " ", ""))
}

// HashtagsFor assembles a space-joined "#" token line for one topic:
// the theme token, a CamelCase topic token, two sampled category
// tokens when the theme classifies, and two sampled generic tokens.
// Tokens are deduplicated in first-occurrence order, tokens with a
// body of 2 characters or fewer are dropped, and the line is capped at
// five tokens — so theme and topic tokens outrank sampled ones when
// the cap bites.
func (r *Rules) HashtagsFor(topic, themeText string) string {
	tags := []string{strings.Join(strings.Fields(themeText), "")}

	if t := camelTopic(topic); len(t) <= maxTopicTokenLen {
		tags = append(tags, t)
	}

	if cat, ok := theme.Classify(themeText); ok {
		tags = append(tags, sample(r.rng, cat.HashtagPool(), 2)...)
	}
	tags = append(tags, sample(r.rng, theme.GenericHashtags, 2)...)

	seen := make(map[string]bool, len(tags))
	line := make([]string, 0, maxHashtags)
	for _, tag := range tags {
		if tag == "" || len(tag) <= 2 || seen[tag] {
			continue
		}
		seen[tag] = true
		line = append(line, "#"+tag)
		if len(line) == maxHashtags {
			break
		}
	}
	return strings.Join(line, " ")
}

// camelTopic folds a topic into a single CamelCase token: hyphens
// become spaces, each word is capitalized (first rune upper, rest
// lower), words are concatenated.
func camelTopic(topic string) string {
	words := strings.Fields(strings.ReplaceAll(topic, "-", " "))
	var b strings.Builder
	for _, w := range words {
		runes := []rune(w)
		b.WriteString(strings.ToUpper(string(runes[0])))
		b.WriteString(strings.ToLower(string(runes[1:])))
	}
	return b.String()
}
