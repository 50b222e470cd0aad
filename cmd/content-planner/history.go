// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/content-planner/internal/export"
	"github.com/pdiddy/content-planner/internal/history"
	"github.com/pdiddy/content-planner/pkg/types"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List and inspect past content plan runs",
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored runs, newest first",
	RunE:  runHistoryList,
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	store, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	records, err := store.List(context.Background())
	if err != nil {
		return err
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	}

	if len(records) == 0 {
		fmt.Println("No stored plans.")
		return nil
	}
	fmt.Fprintf(os.Stdout, "%-26s  %-30s  %-5s  %-12s  %s\n", "ID", "Theme", "Days", "Backend", "Created")
	for _, r := range records {
		theme := r.Theme
		if len(theme) > 30 {
			theme = theme[:27] + "..."
		}
		fmt.Fprintf(os.Stdout, "%-26s  %-30s  %-5d  %-12s  %s\n",
			r.ID, theme, r.Days, r.Backend, r.CreatedAt.Format(time.DateTime))
	}
	return nil
}

var historyShowCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Print one stored plan as a Markdown calendar",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	store, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	plan, rec, err := store.Get(context.Background(), args[0])
	if err != nil {
		return err
	}

	fmt.Printf("Run %s (%s backend, %s)\n\n", rec.ID, rec.Backend, rec.CreatedAt.Format(time.DateTime))
	os.Stdout.Write(export.Markdown(plan))
	return nil
}

func openStore(cmd *cobra.Command) (*history.Store, error) {
	dataDir, _ := cmd.Flags().GetString("data-dir")
	if dataDir == "" {
		dataDir = viper.GetString("history.data_dir")
	}
	return history.NewStore(types.HistoryConfig{
		DataDir:    dataDir,
		MaxResults: viper.GetInt("history.max_results"),
	})
}

func init() {
	historyListCmd.Flags().Bool("json", false, "output records as JSON")
	historyCmd.PersistentFlags().String("data-dir", "data", "directory for the history database")

	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyShowCmd)
	rootCmd.AddCommand(historyCmd)
}
