// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package logging configures the process-wide structured logger used
// for operator diagnostics.
package logging

import (
	"log/slog"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/DylanDDeng/pdf-reader/pkg/types"
)

// Setup builds the slog logger backing all diagnostics and installs it
// as the process default. Diagnostics never travel in import outcomes;
// this is the only channel for underlying error detail.
func Setup(cfg types.LoggerConfig) *slog.Logger {
	var formatter log.Formatter
	switch cfg.Format {
	case "json":
		formatter = log.JSONFormatter
	case "text":
		formatter = log.TextFormatter
	default:
		formatter = log.LogfmtFormatter
	}

	level := log.InfoLevel
	switch cfg.Level {
	case "debug":
		level = log.DebugLevel
	case "warn":
		level = log.WarnLevel
	case "error":
		level = log.ErrorLevel
	}

	handler := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Prefix:          "pdf-reader",
		Formatter:       formatter,
		Level:           level,
	})

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}
