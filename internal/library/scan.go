// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package library provides the local-file side of the PDF library:
// directory scanning, file metadata, existence checks, and renames.
package library

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/DylanDDeng/pdf-reader/pkg/types"
)

// ScanPDFs enumerates the PDF files under dir. Non-recursive scans stop
// at the directory itself; recursive scans descend at most maxDepth
// levels (unlimited when maxDepth < 1). Per-file metadata failures are
// accumulated in the result instead of aborting the scan. Files are
// sorted by name, case-insensitively.
func ScanPDFs(dir string, recursive bool, maxDepth int) (*types.ScanResult, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("directory does not exist: %s", dir)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("path is not a directory: %s", dir)
	}

	depth := maxDepth
	if !recursive {
		depth = 1
	}

	result := &types.ScanResult{
		Files:  []types.FileInfo{},
		Errors: []string{},
	}

	root := filepath.Clean(dir)
	filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			// Unreadable entries are skipped, not fatal.
			return nil
		}
		if d.IsDir() {
			if path != root && depth > 0 && entryDepth(root, path) >= depth {
				return fs.SkipDir
			}
			return nil
		}
		if !strings.EqualFold(filepath.Ext(path), ".pdf") {
			return nil
		}
		fi, err := d.Info()
		if err != nil {
			result.ErrorCount++
			result.Errors = append(result.Errors,
				fmt.Sprintf("failed to read metadata for %s: %v", path, err))
			return nil
		}
		result.Files = append(result.Files, types.FileInfo{
			Name: d.Name(),
			Path: path,
			Size: fi.Size(),
		})
		return nil
	})

	sort.Slice(result.Files, func(i, j int) bool {
		return strings.ToLower(result.Files[i].Name) < strings.ToLower(result.Files[j].Name)
	})
	result.TotalCount = len(result.Files)
	return result, nil
}

// entryDepth returns how many levels below root the path sits
// (0 for root itself, 1 for direct children).
func entryDepth(root, path string) int {
	rel, err := filepath.Rel(root, path)
	if err != nil || rel == "." {
		return 0
	}
	return strings.Count(rel, string(filepath.Separator)) + 1
}
