// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the pdf-reader CLI. It exposes
// the arXiv import pipeline and the local library operations (scan,
// stat, rename, watch, history) as subcommands.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/DylanDDeng/pdf-reader/internal/logging"
	"github.com/DylanDDeng/pdf-reader/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the pdf-reader CLI.
var rootCmd = &cobra.Command{
	Use:   "pdf-reader",
	Short: "Acquire arXiv papers and manage a local PDF library",
	Long: `pdf-reader downloads papers from arXiv into a local library and keeps
metadata sidecars alongside them. It accepts bare arXiv identifiers or
abs/pdf page URLs, resolves the latest version through the arXiv API,
and names files from the sanitized paper title.

Library operations are subcommands: scan lists PDFs in a directory,
watch reports newly created PDFs, and stat/exists/rename inspect and
manage individual files.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logging.Setup(types.LoggerConfig{
			Level:  viper.GetString("logger.level"),
			Format: viper.GetString("logger.format"),
		})
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./pdf-reader.yaml or ~/.config/pdf-reader/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("pdf-reader")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "pdf-reader"))
		}
	}

	viper.SetEnvPrefix("PDF_READER")
	viper.AutomaticEnv()

	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.format", "logfmt")
	viper.SetDefault("import.target_dir", "papers")
	viper.SetDefault("import.conflict_policy", "skip")
	viper.SetDefault("history.db_path", "")

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
