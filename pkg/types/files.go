// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// FileInfo describes one PDF found by a directory scan.
type FileInfo struct {
	Name string `json:"name" yaml:"name"`
	Path string `json:"path" yaml:"path"`
	Size int64  `json:"size" yaml:"size"`
}

// ScanResult summarizes a directory scan. Per-file metadata failures are
// accumulated in Errors rather than aborting the scan.
type ScanResult struct {
	Files      []FileInfo `json:"files" yaml:"files"`
	TotalCount int        `json:"total_count" yaml:"total_count"`
	ErrorCount int        `json:"error_count" yaml:"error_count"`
	Errors     []string   `json:"errors" yaml:"errors"`
}

// FileStat holds metadata for a single file.
type FileStat struct {
	Name string `json:"name" yaml:"name"`
	Path string `json:"path" yaml:"path"`
	Size int64  `json:"size" yaml:"size"`

	// Modified is the modification time in seconds since the epoch,
	// zero when unavailable.
	Modified int64 `json:"modified,omitempty" yaml:"modified,omitempty"`
}

// ExistCheck pairs a path with whether it currently exists.
type ExistCheck struct {
	Path   string `json:"path" yaml:"path"`
	Exists bool   `json:"exists" yaml:"exists"`
}
