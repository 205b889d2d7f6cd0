// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package history

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DylanDDeng/pdf-reader/internal/importer"
	"github.com/DylanDDeng/pdf-reader/pkg/types"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(filepath.Join(t.TempDir(), "history", "imports.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRecordAndRecent(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	downloaded := importer.Outcome{
		Status:       importer.StatusDownloaded,
		PDFPath:      "/papers/1706.03762v7_Attention.pdf",
		PDFSize:      1234,
		MetadataPath: "/papers/1706.03762v7_Attention.metadata.json",
		Paper: &types.Paper{
			ArxivID: "1706.03762",
			Version: 7,
			Title:   "Attention Is All You Need",
		},
	}
	require.NoError(t, s.Record(ctx, "1706.03762", downloaded))

	skipped := importer.Outcome{
		Status: importer.StatusSkipped,
		Reason: importer.ReasonInvalidLink,
	}
	require.NoError(t, s.Record(ctx, "not-an-id", skipped))

	entries, err := s.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// Newest first.
	assert.Equal(t, "not-an-id", entries[0].Input)
	assert.Equal(t, importer.StatusSkipped, entries[0].Status)
	assert.Equal(t, string(importer.ReasonInvalidLink), entries[0].Reason)
	assert.Empty(t, entries[0].ArxivID)

	assert.Equal(t, "1706.03762", entries[1].Input)
	assert.Equal(t, importer.StatusDownloaded, entries[1].Status)
	assert.Equal(t, "1706.03762", entries[1].ArxivID)
	assert.Equal(t, 7, entries[1].Version)
	assert.Equal(t, "Attention Is All You Need", entries[1].Title)
	assert.Equal(t, int64(1234), entries[1].PDFSize)
	assert.NotEmpty(t, entries[1].ImportedAt)
}

func TestRecentLimit(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, s.Record(ctx, "2301.07041", importer.Outcome{
			Status: importer.StatusSkipped,
			Reason: importer.ReasonFileExists,
		}))
	}

	entries, err := s.Recent(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, entries, 3)

	// Non-positive limit falls back to the default.
	entries, err = s.Recent(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, entries, 5)
}

func TestRecentEmpty(t *testing.T) {
	s := testStore(t)
	entries, err := s.Recent(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestStoreReopens(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "imports.db")

	s, err := NewStore(dbPath)
	require.NoError(t, err)
	require.NoError(t, s.Record(context.Background(), "2301.07041", importer.Outcome{
		Status: importer.StatusSkipped,
		Reason: importer.ReasonPaperNotFound,
	}))
	require.NoError(t, s.Close())

	s2, err := NewStore(dbPath)
	require.NoError(t, err)
	defer s2.Close()

	entries, err := s2.Recent(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, string(importer.ReasonPaperNotFound), entries[0].Reason)
}
