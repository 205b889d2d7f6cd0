// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history persists import outcomes in a local SQLite database
// so past imports can be listed. The import pipeline itself never reads
// it; only the CLI surface does.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/DylanDDeng/pdf-reader/internal/importer"
)

// Store manages the import history SQLite database.
type Store struct {
	db *sql.DB
}

// Entry is one recorded import attempt.
type Entry struct {
	Input        string `json:"input"`
	ArxivID      string `json:"arxiv_id,omitempty"`
	Version      int    `json:"version,omitempty"`
	Title        string `json:"title,omitempty"`
	Status       string `json:"status"`
	Reason       string `json:"reason,omitempty"`
	PDFPath      string `json:"pdf_path,omitempty"`
	PDFSize      int64  `json:"pdf_size,omitempty"`
	MetadataPath string `json:"metadata_path,omitempty"`
	ImportedAt   string `json:"imported_at"`
}

// NewStore opens or creates the history database at dbPath, creating
// parent directories and the schema as needed.
func NewStore(dbPath string) (*Store, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating history directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS imports (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			input TEXT NOT NULL,
			arxiv_id TEXT,
			version INTEGER,
			title TEXT,
			status TEXT NOT NULL,
			reason TEXT,
			pdf_path TEXT,
			pdf_size INTEGER,
			metadata_path TEXT,
			imported_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_imports_arxiv_id ON imports(arxiv_id)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Record appends one import outcome for the given user input.
func (s *Store) Record(ctx context.Context, input string, out importer.Outcome) error {
	var arxivID, title string
	var version int
	if out.Paper != nil {
		arxivID = out.Paper.ArxivID
		version = out.Paper.Version
		title = out.Paper.Title
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO imports
			(input, arxiv_id, version, title, status, reason, pdf_path, pdf_size, metadata_path, imported_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		input, arxivID, version, title, out.Status, string(out.Reason),
		out.PDFPath, out.PDFSize, out.MetadataPath,
		time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("recording import: %w", err)
	}
	return nil
}

// Recent returns the most recent entries, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT input, arxiv_id, version, title, status, reason, pdf_path, pdf_size, metadata_path, imported_at
		 FROM imports ORDER BY rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying history: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.Input, &e.ArxivID, &e.Version, &e.Title, &e.Status,
			&e.Reason, &e.PDFPath, &e.PDFSize, &e.MetadataPath, &e.ImportedAt); err != nil {
			return nil, fmt.Errorf("scanning history row: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
