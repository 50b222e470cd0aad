// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the content-planner CLI.
// The pipeline does the generation work; the CLI owns argument
// parsing, console output, and file naming.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/content-planner/internal/secrets"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds API keys loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// secretDefault returns fallback if set, otherwise the secret value
// for key if one was loaded.
func secretDefault(key, fallback string) string {
	if fallback != "" {
		return fallback
	}
	if v, ok := loadedSecrets[key]; ok {
		return v
	}
	return ""
}

// rootCmd is the base command for the content-planner CLI.
var rootCmd = &cobra.Command{
	Use:   "content-planner",
	Short: "Generate multi-day social media content calendars",
	Long: `content-planner turns a free-text brand theme into a multi-day content
calendar: one topic, caption, and hashtag set per day.

Generation is rule-based by default, drawing on curated topic and
hashtag pools per theme category. With --use-llm the plan command routes
each generation call through a text-completion service and falls back
to the rule-based output whenever the model underdelivers.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./content-planner.yaml or ~/.config/content-planner/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("content-planner")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "content-planner"))
		}
	}

	viper.SetEnvPrefix("CONTENT_PLANNER")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
