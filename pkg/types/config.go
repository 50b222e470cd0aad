// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// LLMConfig holds settings for the optional model-backed generator.
type LLMConfig struct {
	// Enabled turns the model-backed generator on. When false the
	// rule-based generator is used for every call.
	Enabled bool `json:"enabled" yaml:"enabled"`

	// Model is the completion model identifier (e.g. "gpt-4o-mini").
	Model string `json:"model" yaml:"model"`

	// APIKey authenticates against the completion service.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// BaseURL overrides the service endpoint. Pointing it at a local
	// OpenAI-compatible server keeps generation fully offline.
	BaseURL string `json:"base_url,omitempty" yaml:"base_url,omitempty"`
}

// GenerateConfig holds settings for the generation stage.
type GenerateConfig struct {
	LLMConfig `yaml:",inline"`

	// TopicAcceptRatio is the fraction of the requested day count that
	// must parse as valid topics before a model response is accepted
	// (default 0.5). Below the threshold the full rule-based sequence
	// substitutes; partial merges are never produced.
	TopicAcceptRatio float64 `json:"topic_accept_ratio" yaml:"topic_accept_ratio"`

	// MinHashtags is the minimum number of parsed hashtag tokens a
	// model response must contain to be accepted (default 3).
	MinHashtags int `json:"min_hashtags" yaml:"min_hashtags"`

	// Seed seeds the rule-based sampling source. Zero means seed from
	// the clock; any other value makes caption and hashtag selection
	// reproducible.
	Seed int64 `json:"seed,omitempty" yaml:"seed,omitempty"`
}

// HistoryConfig holds settings for the run history store.
type HistoryConfig struct {
	// DataDir is the directory holding the history database (default "data").
	DataDir string `json:"data_dir" yaml:"data_dir"`

	// MaxResults is the maximum number of runs a listing returns (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// OutputFormat selects the plan export format.
type OutputFormat string

const (
	OutputCSV      OutputFormat = "csv"
	OutputYAML     OutputFormat = "yaml"
	OutputMarkdown OutputFormat = "markdown"
	OutputHTML     OutputFormat = "html"
)
