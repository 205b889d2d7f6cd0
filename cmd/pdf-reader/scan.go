// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/DylanDDeng/pdf-reader/internal/library"
)

var scanCmd = &cobra.Command{
	Use:   "scan [directory]",
	Short: "List PDF files in a directory",
	Long: `Scan lists the PDF files in a directory, sorted by name. With
--recursive it descends into subdirectories; --max-depth bounds the
descent. Unreadable entries are reported alongside the listing rather
than aborting the scan.`,
	Args: cobra.ExactArgs(1),
	RunE: runScan,
}

func init() {
	scanCmd.Flags().Bool("recursive", false, "descend into subdirectories")
	scanCmd.Flags().Int("max-depth", 0, "maximum directory depth when recursive (0 = unlimited)")
	scanCmd.Flags().String("format", "json", "output format: json or yaml")

	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	recursive, _ := cmd.Flags().GetBool("recursive")
	maxDepth, _ := cmd.Flags().GetInt("max-depth")
	format, _ := cmd.Flags().GetString("format")

	result, err := library.ScanPDFs(args[0], recursive, maxDepth)
	if err != nil {
		return err
	}

	switch format {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	case "yaml":
		out, err := yaml.Marshal(result)
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(out)
		return err
	default:
		return fmt.Errorf("unknown format %q (expected json or yaml)", format)
	}
}
