package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "pdf-reader/0.1 arXiv importer").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// ImportConfig holds settings for the arXiv import stage.
type ImportConfig struct {
	HTTPConfig `yaml:",inline"`

	// TargetDir is the directory that receives downloaded PDFs and
	// their metadata sidecars. Created on demand.
	TargetDir string `json:"target_dir" yaml:"target_dir"`

	// ConflictPolicy controls what happens when the target PDF already
	// exists. Only "skip" is supported.
	ConflictPolicy string `json:"conflict_policy" yaml:"conflict_policy"`
}

// WatchConfig holds settings for folder watch sessions.
type WatchConfig struct {
	// Recursive controls whether subdirectories are watched too.
	Recursive bool `json:"recursive" yaml:"recursive"`
}

// HistoryConfig holds settings for the import history store.
type HistoryConfig struct {
	// DBPath is the SQLite database file recording import outcomes.
	DBPath string `json:"db_path" yaml:"db_path"`
}

// LoggerConfig holds settings for operator-facing diagnostics.
type LoggerConfig struct {
	// Level is one of "debug", "info", "warn", "error".
	Level string `json:"level" yaml:"level"`

	// Format is one of "text", "json", "logfmt".
	Format string `json:"format" yaml:"format"`
}
