// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline runs the four-stage content generation state
// machine: Plan populates the day topics, Generate fills captions and
// hashtags per day, Format is a reserved normalization hook, and Save
// hands the finished plan to the persistence collaborators. Stages are
// strictly linear with no branching or re-entry; every run owns its
// state exclusively.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/content-planner/internal/generate"
	"github.com/pdiddy/content-planner/pkg/types"
)

// Stage names a position in the run. Transitions only ever move one
// step forward; Saved is the single terminal stage.
type Stage string

const (
	StageStart     Stage = "start"
	StagePlanned   Stage = "planned"
	StageGenerated Stage = "generated"
	StageFormatted Stage = "formatted"
	StageSaved     Stage = "saved"
)

// ErrInvalidRequest rejects a blank theme or non-positive day count
// before any stage runs.
var ErrInvalidRequest = errors.New("invalid request")

// ErrEmptyPlan reports a completed run that produced zero content
// entries. Callers decide whether to treat it as fatal.
var ErrEmptyPlan = errors.New("no content entries generated")

// Sink receives the finished plan during the Save stage. Persistence
// failures are the sink's concern; the pipeline's responsibility ends
// once a well-formed plan is handed over.
type Sink interface {
	Save(ctx context.Context, plan *types.Plan) error
}

// State is the mutable object threaded through one run. Stages only
// add fields; none removes or reorders what an earlier stage wrote.
type State struct {
	Theme   string
	Days    int
	Topics  []string
	Entries []types.ContentEntry
	Stage   Stage
}

// Pipeline executes runs against a fixed backend and sink set.
type Pipeline struct {
	backend generate.Backend
	sinks   []Sink
	log     io.Writer
}

// New builds a pipeline. logW may be nil to discard progress output;
// sinks may be empty, in which case Save is a no-op handoff.
func New(backend generate.Backend, logW io.Writer, sinks ...Sink) *Pipeline {
	if logW == nil {
		logW = io.Discard
	}
	return &Pipeline{backend: backend, sinks: sinks, log: logW}
}

// ValidateRequest enforces the entry preconditions: a theme that is
// non-empty after trimming and a day count of at least 1.
func ValidateRequest(req types.ThemeRequest) error {
	if strings.TrimSpace(req.Theme) == "" {
		return fmt.Errorf("%w: theme must not be blank", ErrInvalidRequest)
	}
	if req.Days < 1 {
		return fmt.Errorf("%w: days must be at least 1, got %d", ErrInvalidRequest, req.Days)
	}
	return nil
}

// Run drives one request through all four stages and returns the
// finished plan. Backend degradations never surface here; the only
// runtime errors are an invalid request, a sink failure, or the
// distinguishable empty-plan outcome.
func (p *Pipeline) Run(ctx context.Context, req types.ThemeRequest) (*types.Plan, error) {
	if err := ValidateRequest(req); err != nil {
		return nil, err
	}

	state := &State{Theme: req.Theme, Days: req.Days, Stage: StageStart}

	if err := p.plan(ctx, state); err != nil {
		return nil, err
	}
	fmt.Fprintf(p.log, "Planned %d day topics\n", len(state.Topics))

	if err := p.generate(ctx, state); err != nil {
		return nil, err
	}
	fmt.Fprintf(p.log, "Generated %d content entries\n", len(state.Entries))

	p.format(state)

	plan := &types.Plan{
		Theme:   state.Theme,
		Days:    state.Days,
		Topics:  state.Topics,
		Entries: state.Entries,
	}

	if err := p.save(ctx, state, plan); err != nil {
		return nil, err
	}
	return plan, nil
}

// plan moves Start -> Planned by populating the day topics. A topic
// count that differs from the requested days is a broken backend
// contract, not a runtime condition, and aborts the run.
func (p *Pipeline) plan(ctx context.Context, state *State) error {
	topics, err := p.backend.Topics(ctx, state.Theme, state.Days)
	if err != nil {
		return fmt.Errorf("planning topics: %w", err)
	}
	if len(topics) != state.Days {
		return fmt.Errorf("planning topics: backend returned %d topics for %d days", len(topics), state.Days)
	}
	state.Topics = topics
	state.Stage = StagePlanned
	return nil
}

// generate moves Planned -> Generated by filling one entry per topic,
// in order, with dense 1-based day numbers. Backend fallback happens
// inside the backend; no retries here.
func (p *Pipeline) generate(ctx context.Context, state *State) error {
	entries := make([]types.ContentEntry, 0, len(state.Topics))
	for i, topic := range state.Topics {
		caption, err := p.backend.Caption(ctx, topic, state.Theme)
		if err != nil {
			return fmt.Errorf("generating caption for day %d: %w", i+1, err)
		}
		hashtags, err := p.backend.Hashtags(ctx, topic, state.Theme)
		if err != nil {
			return fmt.Errorf("generating hashtags for day %d: %w", i+1, err)
		}
		entries = append(entries, types.ContentEntry{
			Day:      i + 1,
			Topic:    topic,
			Caption:  caption,
			Hashtags: hashtags,
		})
	}
	if len(entries) == 0 {
		return ErrEmptyPlan
	}
	state.Entries = entries
	state.Stage = StageGenerated
	return nil
}

// format moves Generated -> Formatted. Identity transform today;
// reserved for future normalization such as trimming or casing.
func (p *Pipeline) format(state *State) {
	state.Stage = StageFormatted
}

// save moves Formatted -> Saved by handing the plan to every sink.
func (p *Pipeline) save(ctx context.Context, state *State, plan *types.Plan) error {
	for _, sink := range p.sinks {
		if err := sink.Save(ctx, plan); err != nil {
			return fmt.Errorf("saving plan: %w", err)
		}
	}
	state.Stage = StageSaved
	return nil
}
