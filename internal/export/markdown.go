// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/yuin/goldmark"

	"github.com/pdiddy/content-planner/pkg/types"
)

// Markdown renders the plan as a readable calendar document: a title,
// then one section per day with topic, caption, and hashtags.
func Markdown(plan *types.Plan) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "# Content Calendar: %s\n\n", plan.Theme)
	fmt.Fprintf(&b, "%d days of content.\n\n", plan.Days)
	for _, e := range plan.Entries {
		fmt.Fprintf(&b, "## Day %d: %s\n\n", e.Day, e.Topic)
		fmt.Fprintf(&b, "%s\n\n", e.Caption)
		fmt.Fprintf(&b, "`%s`\n\n", e.Hashtags)
	}
	return []byte(b.String())
}

// MarkdownSink writes the Markdown calendar, optionally converted to a
// standalone HTML fragment.
type MarkdownSink struct {
	Path string

	// HTML converts the calendar to HTML before writing.
	HTML bool
}

// Save renders the calendar and writes it to Path.
func (s *MarkdownSink) Save(_ context.Context, plan *types.Plan) error {
	out := Markdown(plan)
	if s.HTML {
		var buf bytes.Buffer
		if err := goldmark.Convert(out, &buf); err != nil {
			return fmt.Errorf("rendering HTML: %w", err)
		}
		out = buf.Bytes()
	}
	if err := os.WriteFile(s.Path, out, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", s.Path, err)
	}
	return nil
}
