// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/DylanDDeng/pdf-reader/internal/history"
	"github.com/DylanDDeng/pdf-reader/pkg/types"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent import outcomes",
	Long: `History lists recent import outcomes recorded in the local SQLite
database, newest first. Recording is enabled by setting history.db_path
in the config file or PDF_READER_HISTORY_DB_PATH in the environment.`,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().Int("limit", 20, "maximum number of entries to show")

	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg := types.HistoryConfig{DBPath: viper.GetString("history.db_path")}
	if cfg.DBPath == "" {
		return fmt.Errorf("import history is not configured (set history.db_path)")
	}

	limit, _ := cmd.Flags().GetInt("limit")

	store, err := history.NewStore(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening import history: %w", err)
	}
	defer store.Close()

	entries, err := store.Recent(context.Background(), limit)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(entries)
}
