// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/DylanDDeng/pdf-reader/internal/library"
)

var statCmd = &cobra.Command{
	Use:   "stat [path]",
	Short: "Print metadata for a single file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		info, err := library.Stat(args[0])
		if err != nil {
			return err
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(info)
	},
}

var existsCmd = &cobra.Command{
	Use:   "exists [paths...]",
	Short: "Check which of the given paths exist",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		checks := library.VerifyExist(args)
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(checks)
	},
}

var renameCmd = &cobra.Command{
	Use:   "rename [path] [new-name]",
	Short: "Rename a file in place, preserving its extension",
	Long: `Rename gives a file a new base name in its current directory. The
original extension is kept regardless of the name supplied, and an
existing destination is never overwritten.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		newPath, err := library.Rename(args[0], args[1])
		if err != nil {
			return err
		}
		fmt.Println(newPath)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statCmd)
	rootCmd.AddCommand(existsCmd)
	rootCmd.AddCommand(renameCmd)
}
