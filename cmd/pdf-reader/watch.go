// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/DylanDDeng/pdf-reader/internal/watch"
	"github.com/DylanDDeng/pdf-reader/pkg/types"
)

var watchCmd = &cobra.Command{
	Use:   "watch [directory]",
	Short: "Report PDFs created in a directory",
	Long: `Watch monitors a directory and prints a JSON event for every PDF
created in it until interrupted. With --recursive, subdirectories are
monitored too, including ones created while the watch is running.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().Bool("recursive", false, "watch subdirectories as well")

	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg := types.WatchConfig{Recursive: viper.GetBool("watch.recursive")}
	if cmd.Flags().Changed("recursive") {
		cfg.Recursive, _ = cmd.Flags().GetBool("recursive")
	}

	enc := json.NewEncoder(os.Stdout)
	reg := watch.NewRegistry(func(ev watch.Event) {
		if err := enc.Encode(ev); err != nil {
			slog.Warn("writing watch event", "error", err)
		}
	}, slog.Default())

	id, err := reg.Start(args[0], cfg.Recursive)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Watching %s (session %s), Ctrl-C to stop\n", args[0], id)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig

	return reg.Stop(id)
}
