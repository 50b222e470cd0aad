// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"context"
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/content-planner/pkg/types"
)

// YAMLSink writes the full plan, topics included, as a YAML document.
type YAMLSink struct {
	Path string
}

// Save marshals the plan and writes it to Path.
func (s *YAMLSink) Save(_ context.Context, plan *types.Plan) error {
	data, err := yaml.Marshal(plan)
	if err != nil {
		return fmt.Errorf("marshaling plan: %w", err)
	}
	if err := os.WriteFile(s.Path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", s.Path, err)
	}
	return nil
}
