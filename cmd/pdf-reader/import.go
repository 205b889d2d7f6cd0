// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/DylanDDeng/pdf-reader/internal/arxiv"
	"github.com/DylanDDeng/pdf-reader/internal/history"
	"github.com/DylanDDeng/pdf-reader/internal/importer"
	"github.com/DylanDDeng/pdf-reader/pkg/types"
)

const defaultUserAgent = "pdf-reader/0.1 arXiv importer"

var importCmd = &cobra.Command{
	Use:   "import [identifiers...]",
	Short: "Download arXiv papers into the local library",
	Long: `Import resolves arXiv identifiers (bare IDs or abs/pdf URLs) through
the arXiv metadata API, downloads the PDF, and writes a metadata sidecar
next to it. A paper whose file already exists is skipped, never
overwritten. Each outcome is printed as a JSON object.`,
	RunE: runImport,
}

func init() {
	importCmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 45s)")
	importCmd.Flags().String("target-dir", "", "directory to download into")
	importCmd.Flags().String("conflict-policy", "", "what to do when the file exists (skip)")

	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("provide one or more arXiv identifiers or URLs")
	}

	timeout, _ := cmd.Flags().GetDuration("timeout")
	if timeout == 0 {
		timeout = arxiv.DefaultTimeout
	}
	targetDir, _ := cmd.Flags().GetString("target-dir")
	if targetDir == "" {
		targetDir = viper.GetString("import.target_dir")
	}
	policy, _ := cmd.Flags().GetString("conflict-policy")
	if policy == "" {
		policy = viper.GetString("import.conflict_policy")
	}

	cfg := types.ImportConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   timeout,
			UserAgent: defaultUserAgent,
		},
		TargetDir:      targetDir,
		ConflictPolicy: policy,
	}

	client := &http.Client{Timeout: cfg.Timeout}
	feed := arxiv.NewClient(client, cfg.HTTPConfig)
	imp := importer.New(feed, client, cfg, slog.Default())

	var store *history.Store
	if dbPath := viper.GetString("history.db_path"); dbPath != "" {
		var err error
		store, err = history.NewStore(dbPath)
		if err != nil {
			return fmt.Errorf("opening import history: %w", err)
		}
		defer store.Close()
	}

	ctx := context.Background()
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")

	failed := 0
	for _, input := range args {
		out := imp.Import(ctx, input, targetDir, policy)
		if err := enc.Encode(out); err != nil {
			return err
		}
		if store != nil {
			if err := store.Record(ctx, input, out); err != nil {
				slog.Warn("recording import history", "error", err)
			}
		}
		if !out.Downloaded() && out.Reason != importer.ReasonFileExists {
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d paper(s) failed to import", failed)
	}
	return nil
}
