// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/content-planner/internal/export"
	"github.com/pdiddy/content-planner/internal/generate"
	"github.com/pdiddy/content-planner/internal/history"
	"github.com/pdiddy/content-planner/internal/pipeline"
	"github.com/pdiddy/content-planner/pkg/types"
)

// previewDays is how many entries the console preview shows.
const previewDays = 3

var planCmd = &cobra.Command{
	Use:   "plan [theme]",
	Short: "Generate a content calendar for a brand theme",
	Long: `Plan runs the four-stage generation pipeline for the given theme and
day count, writes the calendar to the output file, records the run in
the local history, and prints a short preview.

With --use-llm every generation call goes through the configured
text-completion service; responses that fail their acceptance threshold
are replaced by rule-based output, so the calendar always comes back
complete.`,
	Args: cobra.ExactArgs(1),
	RunE: runPlan,
}

func init() {
	planCmd.Flags().Int("days", 30, "number of days to generate content for")
	planCmd.Flags().String("output", "content_calendar.csv", "output file path")
	planCmd.Flags().String("format", "csv", "output format: csv, yaml, markdown, or html")
	planCmd.Flags().Bool("use-llm", false, "route generation through the completion service")
	planCmd.Flags().String("model", "", "completion model identifier")
	planCmd.Flags().String("base-url", "", "completion service base URL (e.g. a local OpenAI-compatible server)")
	planCmd.Flags().Int64("seed", 0, "seed for reproducible rule-based sampling (0 = random)")
	planCmd.Flags().Bool("no-history", false, "skip recording the run in the history store")
	planCmd.Flags().String("data-dir", "data", "directory for the history database")

	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
	req := types.ThemeRequest{Theme: strings.TrimSpace(args[0])}
	req.Days, _ = cmd.Flags().GetInt("days")
	if err := pipeline.ValidateRequest(req); err != nil {
		return err
	}

	cfg := planConfig(cmd)
	ctx := context.Background()

	var rng generate.Rand
	if cfg.Seed != 0 {
		rng = generate.NewRand(cfg.Seed)
	} else {
		rng = generate.NewTimeRand()
	}

	backend := generate.NewBackend(cfg, generate.NewRules(rng), os.Stderr)
	fmt.Fprintf(os.Stderr, "Generating %d-day content plan for theme: %s (%s)\n", req.Days, req.Theme, backend.Name())

	sinks, cleanup, err := planSinks(cmd, backend.Name())
	if err != nil {
		return err
	}
	defer cleanup()

	plan, err := pipeline.New(backend, os.Stderr, sinks...).Run(ctx, req)
	if err != nil {
		return err
	}

	printPreview(plan)
	output, _ := cmd.Flags().GetString("output")
	fmt.Printf("\nFull content plan saved to %s\n", output)
	return nil
}

// planConfig resolves the generation settings from flags, config file,
// and loaded secrets, in that precedence order.
func planConfig(cmd *cobra.Command) types.GenerateConfig {
	useLLM, _ := cmd.Flags().GetBool("use-llm")
	model, _ := cmd.Flags().GetString("model")
	baseURL, _ := cmd.Flags().GetString("base-url")
	seed, _ := cmd.Flags().GetInt64("seed")

	viper.SetDefault("generate.topic_accept_ratio", 0.5)
	viper.SetDefault("generate.min_hashtags", 3)
	viper.SetDefault("llm.model", "gpt-4o-mini")

	if model == "" {
		model = viper.GetString("llm.model")
	}
	if baseURL == "" {
		baseURL = viper.GetString("llm.base_url")
	}

	return types.GenerateConfig{
		LLMConfig: types.LLMConfig{
			Enabled: useLLM,
			Model:   model,
			APIKey:  secretDefault("openai-api-key", viper.GetString("llm.api_key")),
			BaseURL: baseURL,
		},
		TopicAcceptRatio: viper.GetFloat64("generate.topic_accept_ratio"),
		MinHashtags:      viper.GetInt("generate.min_hashtags"),
		Seed:             seed,
	}
}

// planSinks assembles the Save-stage collaborators: the chosen export
// writer plus, unless disabled, the history store.
func planSinks(cmd *cobra.Command, backendName string) ([]pipeline.Sink, func(), error) {
	output, _ := cmd.Flags().GetString("output")
	format, _ := cmd.Flags().GetString("format")

	var sinks []pipeline.Sink
	switch types.OutputFormat(format) {
	case types.OutputCSV:
		sinks = append(sinks, &export.CSVSink{Path: output})
	case types.OutputYAML:
		sinks = append(sinks, &export.YAMLSink{Path: output})
	case types.OutputMarkdown:
		sinks = append(sinks, &export.MarkdownSink{Path: output})
	case types.OutputHTML:
		sinks = append(sinks, &export.MarkdownSink{Path: output, HTML: true})
	default:
		return nil, nil, fmt.Errorf("unknown output format %q", format)
	}

	cleanup := func() {}
	if noHistory, _ := cmd.Flags().GetBool("no-history"); !noHistory {
		dataDir, _ := cmd.Flags().GetString("data-dir")
		store, err := history.NewStore(types.HistoryConfig{DataDir: dataDir})
		if err != nil {
			return nil, nil, err
		}
		sinks = append(sinks, store.SinkFor(backendName))
		cleanup = func() { store.Close() }
	}
	return sinks, cleanup, nil
}

func printPreview(plan *types.Plan) {
	fmt.Println("Successfully generated content plan!")
	fmt.Printf("Preview of the first %d days:\n", previewDays)
	fmt.Println(strings.Repeat("-", 50))
	for _, e := range plan.Entries {
		if e.Day > previewDays {
			break
		}
		fmt.Printf("Day %d: %s\n", e.Day, e.Topic)
		fmt.Printf("Caption: %s\n", e.Caption)
		fmt.Printf("Hashtags: %s\n", e.Hashtags)
		fmt.Println(strings.Repeat("-", 50))
	}
}
