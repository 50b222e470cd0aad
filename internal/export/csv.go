// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package export serializes finished plans: the CSV calendar that is
// the primary output, a YAML dump of the full plan, and a Markdown
// calendar with optional HTML rendering. Each writer owns its file
// I/O and encoding; the pipeline only hands over the plan.
package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/pdiddy/content-planner/pkg/types"
)

// csvHeader is the fixed column order of the calendar file.
var csvHeader = []string{"Day", "Topic", "Caption", "Hashtags"}

// CSVSink writes the plan as a delimited calendar, one row per day.
type CSVSink struct {
	// Path is the output file; it is created or truncated on Save.
	Path string
}

// Save writes the header and one row per entry. An empty plan is
// refused rather than producing a header-only file.
func (s *CSVSink) Save(_ context.Context, plan *types.Plan) error {
	if len(plan.Entries) == 0 {
		return fmt.Errorf("writing %s: plan has no entries", s.Path)
	}

	f, err := os.Create(s.Path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", s.Path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, e := range plan.Entries {
		row := []string{strconv.Itoa(e.Day), e.Topic, e.Caption, e.Hashtags}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("writing day %d: %w", e.Day, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flushing %s: %w", s.Path, err)
	}
	return nil
}
