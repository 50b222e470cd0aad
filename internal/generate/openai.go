// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package generate

import (
	"context"
	"errors"
	"fmt"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/pdiddy/content-planner/pkg/types"
)

// OpenAIClient implements CompletionClient over the chat completions
// API of any OpenAI-compatible endpoint. Setting a base URL points it
// at a local server, which keeps generation fully offline.
type OpenAIClient struct {
	model string
	opts  []option.RequestOption
}

// NewOpenAIClient validates the configuration and builds a client.
// A missing API key or model is a construction failure; the backend
// selector resolves it by downgrading to rule-based generation.
func NewOpenAIClient(cfg types.LLMConfig) (*OpenAIClient, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("completion api key missing; provide llm.api_key or .secrets/openai-api-key")
	}
	if cfg.Model == "" {
		return nil, errors.New("completion model is required")
	}
	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	return &OpenAIClient{model: cfg.Model, opts: opts}, nil
}

// Complete sends one prompt and returns the full response text.
func (c *OpenAIClient) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	client := openai.NewClient(c.opts...)

	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(req.Prompt),
		},
		MaxTokens:   openai.Int(int64(req.MaxTokens)),
		Temperature: openai.Float(req.Temperature),
		TopP:        openai.Float(req.TopP),
	}
	if len(req.Stop) > 0 {
		params.Stop = openai.ChatCompletionNewParamsStopUnion{OfStringArray: req.Stop}
	}

	resp, err := client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("completion request: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("completion response has no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
