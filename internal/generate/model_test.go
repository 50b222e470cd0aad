// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package generate

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/pdiddy/content-planner/pkg/types"
)

// mockClient returns canned completions keyed on a prompt fragment, or
// a fixed error.
type mockClient struct {
	responses map[string]string
	err       error
	calls     int
}

func (m *mockClient) Complete(_ context.Context, req CompletionRequest) (string, error) {
	m.calls++
	if m.err != nil {
		return "", m.err
	}
	for fragment, resp := range m.responses {
		if strings.Contains(req.Prompt, fragment) {
			return resp, nil
		}
	}
	return "", nil
}

func testModelBackend(client CompletionClient) *ModelBackend {
	return NewModelBackend(client, NewRules(NewRand(1)), types.GenerateConfig{}, io.Discard)
}

func TestModelTopicsAccepted(t *testing.T) {
	client := &mockClient{responses: map[string]string{
		"content topics": `Here you go:
["Desk Workouts", "Protein Myths", "Five Minute Stretches", "Meal Prep Sunday", "Walking Meetings"]`,
	}}
	b := testModelBackend(client)

	topics, err := b.Topics(context.Background(), "Fitness for Busy Professionals", 5)
	if err != nil {
		t.Fatalf("Topics: %v", err)
	}
	want := []string{"Desk Workouts", "Protein Myths", "Five Minute Stretches", "Meal Prep Sunday", "Walking Meetings"}
	for i := range want {
		if topics[i] != want[i] {
			t.Errorf("topics[%d] = %q, want %q", i, topics[i], want[i])
		}
	}
}

func TestModelTopicsShortListCycles(t *testing.T) {
	// 3 of 5 requested clears the default half threshold; the list
	// cycles from its start to fill the remaining days.
	client := &mockClient{responses: map[string]string{
		"content topics": `["One", "Two", "Three"]`,
	}}
	b := testModelBackend(client)

	topics, err := b.Topics(context.Background(), "Fitness", 5)
	if err != nil {
		t.Fatalf("Topics: %v", err)
	}
	want := []string{"One", "Two", "Three", "One", "Two"}
	for i := range want {
		if topics[i] != want[i] {
			t.Errorf("topics[%d] = %q, want %q", i, topics[i], want[i])
		}
	}
}

func TestModelTopicsMalformedFallsBack(t *testing.T) {
	tests := []struct {
		name string
		resp string
	}{
		{"empty response", ""},
		{"no JSON array", "Topic 1, Topic 2, Topic 3"},
		{"invalid JSON", `["unterminated]`},
		{"below threshold", `["only one"]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &mockClient{responses: map[string]string{"content topics": tt.resp}}
			b := testModelBackend(client)

			topics, err := b.Topics(context.Background(), "Fitness for Busy Professionals", 5)
			if err != nil {
				t.Fatalf("Topics: %v", err)
			}
			if len(topics) != 5 {
				t.Fatalf("len(topics) = %d, want the full rule-based 5", len(topics))
			}
			// Full substitution, never a partial merge.
			want := NewRules(NewRand(1)).TopicsFor("Fitness for Busy Professionals", 5)
			for i := range want {
				if topics[i] != want[i] {
					t.Errorf("topics[%d] = %q, want rule-based %q", i, topics[i], want[i])
				}
			}
		})
	}
}

func TestModelTopicsServiceErrorFallsBack(t *testing.T) {
	client := &mockClient{err: errors.New("connection refused")}
	b := testModelBackend(client)

	topics, err := b.Topics(context.Background(), "Mental Health for Gen Z", 7)
	if err != nil {
		t.Fatalf("Topics: %v", err)
	}
	if len(topics) != 7 {
		t.Errorf("len(topics) = %d, want 7", len(topics))
	}
}

func TestModelCaption(t *testing.T) {
	tests := []struct {
		name      string
		resp      string
		wantModel string // empty means rule-based fallback expected
	}{
		{"accepted", "Start your morning strong with a desk stretch! 💪 Who's in?", "Start your morning strong with a desk stretch! 💪 Who's in?"},
		{"hashtags stripped", "Morning stretches are a game changer! #fitness #morning", "Morning stretches are a game changer!"},
		{"too short after stripping", "#one #two #n", ""},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &mockClient{responses: map[string]string{"caption": tt.resp}}
			b := testModelBackend(client)

			caption, err := b.Caption(context.Background(), "Office Stretches", "Fitness")
			if err != nil {
				t.Fatalf("Caption: %v", err)
			}
			if caption == "" {
				t.Fatal("caption is empty")
			}
			if tt.wantModel != "" && caption != tt.wantModel {
				t.Errorf("caption = %q, want %q", caption, tt.wantModel)
			}
			if tt.wantModel == "" && !strings.Contains(caption, "Office Stretches") {
				t.Errorf("fallback caption %q does not interpolate the topic", caption)
			}
		})
	}
}

func TestModelHashtags(t *testing.T) {
	tests := []struct {
		name      string
		resp      string
		wantModel string // empty means rule-based fallback expected
	}{
		{"five tags", "#FitLife #DeskJob #Stretch #Moveit #Health", "#FitLife #DeskJob #Stretch #Moveit #Health"},
		{"extra tags capped", "#One1 #Two2 #Three3 #Four4 #Five5 #Six6", "#One1 #Two2 #Three3 #Four4 #Five5"},
		{"three tags accepted", "sure: #FitLife #DeskJob #Stretch", "#FitLife #DeskJob #Stretch"},
		{"too few tags", "#Only #Two2", ""},
		{"no tags", "FitLife DeskJob Stretch", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &mockClient{responses: map[string]string{"hashtags": tt.resp}}
			b := testModelBackend(client)

			tags, err := b.Hashtags(context.Background(), "Office Stretches", "Fitness")
			if err != nil {
				t.Fatalf("Hashtags: %v", err)
			}
			if tt.wantModel != "" {
				if tags != tt.wantModel {
					t.Errorf("hashtags = %q, want %q", tags, tt.wantModel)
				}
				return
			}
			// Fallback keeps the rule-based shape.
			tokens := strings.Fields(tags)
			if len(tokens) < 1 || len(tokens) > 5 {
				t.Errorf("fallback hashtags = %q, want 1..5 tokens", tags)
			}
		})
	}
}

func TestModelThresholdsConfigurable(t *testing.T) {
	// A stricter ratio rejects a list the default would accept.
	client := &mockClient{responses: map[string]string{
		"content topics": `["One", "Two", "Three"]`,
	}}
	b := NewModelBackend(client, NewRules(NewRand(1)), types.GenerateConfig{TopicAcceptRatio: 0.9}, io.Discard)

	topics, err := b.Topics(context.Background(), "Fitness", 5)
	if err != nil {
		t.Fatalf("Topics: %v", err)
	}
	want := NewRules(NewRand(1)).TopicsFor("Fitness", 5)
	for i := range want {
		if topics[i] != want[i] {
			t.Errorf("topics[%d] = %q, want rule-based %q", i, topics[i], want[i])
		}
	}

	// A looser hashtag minimum accepts two tags.
	client = &mockClient{responses: map[string]string{"hashtags": "#Only1 #Two2"}}
	b = NewModelBackend(client, NewRules(NewRand(1)), types.GenerateConfig{MinHashtags: 2}, io.Discard)
	tags, err := b.Hashtags(context.Background(), "Office Stretches", "Fitness")
	if err != nil {
		t.Fatalf("Hashtags: %v", err)
	}
	if tags != "#Only1 #Two2" {
		t.Errorf("hashtags = %q, want the two accepted tags", tags)
	}
}

func TestExtractTopics(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		limit int
		want  int
	}{
		{"clean array", `["a", "b", "c"]`, 5, 3},
		{"array inside prose", `Sure! ["a", "b"] hope that helps`, 5, 2},
		{"limit applied", `["a", "b", "c", "d"]`, 2, 2},
		{"blank entries skipped", `["a", "  ", "b"]`, 5, 2},
		{"no array", "nothing here", 5, 0},
		{"not strings", `[1, 2, 3]`, 5, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractTopics(tt.text, tt.limit)
			if len(got) != tt.want {
				t.Errorf("extractTopics(%q) returned %d topics, want %d", tt.text, len(got), tt.want)
			}
		})
	}
}

func TestStripHashtagTokens(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"no tags here", "no tags here"},
		{"trailing #tag", "trailing"},
		{"#leading tag", "tag"},
		{"#all #tags", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := stripHashtagTokens(tt.in); got != tt.want {
			t.Errorf("stripHashtagTokens(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestBackendSelectorDowngrade(t *testing.T) {
	rules := NewRules(NewRand(1))

	// Model disabled: rule-based backend outright.
	b := NewBackend(types.GenerateConfig{}, rules, io.Discard)
	if b.Name() != "rule-based" {
		t.Errorf("Name() = %q, want rule-based", b.Name())
	}

	// Model enabled but unconfigured: construction fails and the
	// selector permanently downgrades.
	b = NewBackend(types.GenerateConfig{LLMConfig: types.LLMConfig{Enabled: true}}, rules, io.Discard)
	if b.Name() != "rule-based" {
		t.Errorf("Name() = %q, want rule-based after downgrade", b.Name())
	}

	// Fully configured: model-backed.
	cfg := types.GenerateConfig{LLMConfig: types.LLMConfig{Enabled: true, Model: "gpt-4o-mini", APIKey: "sk-test"}}
	b = NewBackend(cfg, rules, io.Discard)
	if b.Name() != "model-backed" {
		t.Errorf("Name() = %q, want model-backed", b.Name())
	}
}
