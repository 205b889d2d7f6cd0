// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package library

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/DylanDDeng/pdf-reader/pkg/types"
)

// Stat returns name, size, and modification time for a single file.
func Stat(path string) (*types.FileStat, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("file does not exist: %s", path)
	}

	return &types.FileStat{
		Name:     filepath.Base(path),
		Path:     path,
		Size:     info.Size(),
		Modified: info.ModTime().Unix(),
	}, nil
}

// VerifyExist reports, for each path, whether it currently exists.
// Input order is preserved.
func VerifyExist(paths []string) []types.ExistCheck {
	checks := make([]types.ExistCheck, 0, len(paths))
	for _, p := range paths {
		_, err := os.Stat(p)
		checks = append(checks, types.ExistCheck{Path: p, Exists: err == nil})
	}
	return checks
}

// Rename renames the file at oldPath to newName within the same
// directory, preserving the original extension. It fails if the source
// is missing or not a regular file, or if the destination already
// exists. Returns the new path.
func Rename(oldPath, newName string) (string, error) {
	info, err := os.Stat(oldPath)
	if err != nil {
		return "", fmt.Errorf("file does not exist: %s", oldPath)
	}
	if !info.Mode().IsRegular() {
		return "", fmt.Errorf("path is not a file: %s", oldPath)
	}

	newFilename := newName
	if ext := filepath.Ext(oldPath); ext != "" {
		newFilename = newName + ext
	}
	newPath := filepath.Join(filepath.Dir(oldPath), newFilename)

	if _, err := os.Stat(newPath); err == nil {
		return "", fmt.Errorf("a file named %q already exists in this location", newFilename)
	}

	if err := os.Rename(oldPath, newPath); err != nil {
		return "", fmt.Errorf("renaming file: %w", err)
	}
	return newPath, nil
}
