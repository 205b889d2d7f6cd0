// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package library

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePDF(t *testing.T, dir, name string, size int) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, make([]byte, size), 0o644))
	return path
}

func TestScanPDFsFlat(t *testing.T) {
	dir := t.TempDir()
	writePDF(t, dir, "beta.pdf", 10)
	writePDF(t, dir, "Alpha.PDF", 20)
	writePDF(t, dir, "gamma.pdf", 30)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))

	result, err := ScanPDFs(dir, false, 0)
	require.NoError(t, err)

	require.Equal(t, 3, result.TotalCount)
	assert.Equal(t, 0, result.ErrorCount)
	assert.Empty(t, result.Errors)

	// Sorted case-insensitively by name; extension matching ignores case.
	assert.Equal(t, "Alpha.PDF", result.Files[0].Name)
	assert.Equal(t, "beta.pdf", result.Files[1].Name)
	assert.Equal(t, "gamma.pdf", result.Files[2].Name)
	assert.Equal(t, int64(20), result.Files[0].Size)
}

func TestScanPDFsNonRecursiveStopsAtRoot(t *testing.T) {
	dir := t.TempDir()
	writePDF(t, dir, "top.pdf", 1)
	writePDF(t, dir, filepath.Join("sub", "nested.pdf"), 1)

	result, err := ScanPDFs(dir, false, 10)
	require.NoError(t, err)

	require.Equal(t, 1, result.TotalCount)
	assert.Equal(t, "top.pdf", result.Files[0].Name)
}

func TestScanPDFsRecursiveDepth(t *testing.T) {
	dir := t.TempDir()
	writePDF(t, dir, "d1.pdf", 1)
	writePDF(t, dir, filepath.Join("a", "d2.pdf"), 1)
	writePDF(t, dir, filepath.Join("a", "b", "d3.pdf"), 1)

	result, err := ScanPDFs(dir, true, 2)
	require.NoError(t, err)

	require.Equal(t, 2, result.TotalCount)
	assert.Equal(t, "d1.pdf", result.Files[0].Name)
	assert.Equal(t, "d2.pdf", result.Files[1].Name)

	// maxDepth < 1 means unlimited.
	result, err = ScanPDFs(dir, true, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, result.TotalCount)
}

func TestScanPDFsErrors(t *testing.T) {
	t.Run("missing directory", func(t *testing.T) {
		_, err := ScanPDFs(filepath.Join(t.TempDir(), "nope"), false, 0)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "does not exist")
	})

	t.Run("path is a file", func(t *testing.T) {
		path := writePDF(t, t.TempDir(), "file.pdf", 1)
		_, err := ScanPDFs(path, false, 0)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not a directory")
	})
}

func TestScanPDFsEmptyDirectory(t *testing.T) {
	result, err := ScanPDFs(t.TempDir(), true, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, result.TotalCount)
	assert.NotNil(t, result.Files)
}
