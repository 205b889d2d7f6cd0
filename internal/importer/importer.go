// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package importer orchestrates the arXiv import pipeline: identifier
// parsing, metadata resolution, PDF download, and artifact persistence.
// Every failure path resolves to a Skipped outcome with a machine-readable
// reason; the pipeline never surfaces an error to the caller.
package importer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/DylanDDeng/pdf-reader/internal/arxiv"
	"github.com/DylanDDeng/pdf-reader/pkg/types"
)

// Outcome status values.
const (
	StatusDownloaded = "downloaded"
	StatusSkipped    = "skipped"
)

// PolicySkip is the only supported conflict policy: an existing PDF at
// the computed path short-circuits the import.
const PolicySkip = "skip"

// SkipReason is the closed set of machine-readable failure reasons
// carried by a skipped outcome.
type SkipReason string

const (
	ReasonInvalidConflictPolicy SkipReason = "invalid_conflict_policy"
	ReasonInvalidLink           SkipReason = "invalid_link"
	ReasonWriteFailed           SkipReason = "write_failed"
	ReasonNetworkError          SkipReason = "network_error"
	ReasonPaperNotFound         SkipReason = "paper_not_found"
	ReasonFileExists            SkipReason = "file_exists"
)

// Outcome is the tagged result of one import call. Paper is populated
// whenever metadata resolution succeeded, even when a later stage failed,
// so callers can display what was going to be imported.
type Outcome struct {
	Status       string       `json:"status"`
	Reason       SkipReason   `json:"reason,omitempty"`
	PDFPath      string       `json:"pdf_path,omitempty"`
	PDFSize      int64        `json:"pdf_size,omitempty"`
	MetadataPath string       `json:"metadata_path,omitempty"`
	Paper        *types.Paper `json:"paper,omitempty"`
}

// Downloaded reports whether the import completed successfully.
func (o Outcome) Downloaded() bool { return o.Status == StatusDownloaded }

// MetadataFetcher resolves paper metadata for a base identifier.
// *arxiv.Client satisfies it.
type MetadataFetcher interface {
	FetchMetadata(ctx context.Context, baseID string) (*types.Paper, error)
}

// Importer runs the import pipeline. Each call is an independent
// sequential operation; nothing is shared between calls, so concurrent
// imports of distinct identifiers race freely. The skip policy's
// check-then-write sequence is deliberately not atomic (single-user
// tool; last writer wins).
type Importer struct {
	feed   MetadataFetcher
	client *http.Client
	cfg    types.ImportConfig
	log    *slog.Logger
}

// New returns an importer that resolves metadata through feed and
// downloads PDFs through client.
func New(feed MetadataFetcher, client *http.Client, cfg types.ImportConfig, logger *slog.Logger) *Importer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Importer{feed: feed, client: client, cfg: cfg, log: logger}
}

func skipped(reason SkipReason, paper *types.Paper) Outcome {
	return Outcome{Status: StatusSkipped, Reason: reason, Paper: paper}
}

// Import resolves input to a paper version, downloads its PDF into
// targetDir, and writes a metadata sidecar next to it. The conflict
// policy is validated before any I/O happens.
func (imp *Importer) Import(ctx context.Context, input, targetDir, conflictPolicy string) Outcome {
	if conflictPolicy != PolicySkip {
		return skipped(ReasonInvalidConflictPolicy, nil)
	}

	id, ok := arxiv.ParseID(input)
	if !ok {
		return skipped(ReasonInvalidLink, nil)
	}

	if strings.TrimSpace(targetDir) == "" {
		return skipped(ReasonWriteFailed, nil)
	}
	info, err := os.Stat(targetDir)
	switch {
	case err != nil && os.IsNotExist(err):
		if mkErr := os.MkdirAll(targetDir, 0o755); mkErr != nil {
			imp.log.Error("creating target directory", "dir", targetDir, "error", mkErr)
			return skipped(ReasonWriteFailed, nil)
		}
	case err != nil:
		imp.log.Error("reading target directory", "dir", targetDir, "error", err)
		return skipped(ReasonWriteFailed, nil)
	case !info.IsDir():
		imp.log.Error("target path is not a directory", "dir", targetDir)
		return skipped(ReasonWriteFailed, nil)
	}

	paper, err := imp.feed.FetchMetadata(ctx, id.Base)
	if err != nil {
		if errors.Is(err, arxiv.ErrNotFound) {
			imp.log.Warn("paper not found in feed", "id", id.Base, "error", err)
			return skipped(ReasonPaperNotFound, nil)
		}
		imp.log.Error("fetching arXiv metadata", "id", id.Base, "error", err)
		return skipped(ReasonNetworkError, nil)
	}

	// Effective version: a caller-requested version wins over the feed's
	// resolved latest, and is never less than 1.
	version := paper.Version
	if id.Version > 0 {
		version = id.Version
	}
	if version < 1 {
		version = 1
	}
	if version != paper.Version {
		// A placeholder title names the version it was built for.
		if paper.Title == arxiv.FallbackTitle(id.Base, paper.Version) {
			paper.Title = arxiv.FallbackTitle(id.Base, version)
		}
		paper.Version = version
		paper.AbsURL = arxiv.AbsURL(id.Base, version)
		paper.PDFURL = arxiv.PDFURL(id.Base, version)
	}

	stem := paper.FileStem() + "_" + arxiv.SanitizeTitle(paper.Title)
	pdfPath := filepath.Join(targetDir, stem+".pdf")
	metadataPath := filepath.Join(targetDir, stem+".metadata.json")

	if _, statErr := os.Stat(pdfPath); statErr == nil {
		out := skipped(ReasonFileExists, paper)
		out.PDFPath = pdfPath
		if _, metaErr := os.Stat(metadataPath); metaErr == nil {
			out.MetadataPath = metadataPath
		}
		return out
	}

	pdfBytes, reason := imp.downloadPDF(ctx, paper.PDFURL)
	if reason != "" {
		return skipped(reason, paper)
	}

	if err := os.WriteFile(pdfPath, pdfBytes, 0o644); err != nil {
		imp.log.Error("writing PDF", "path", pdfPath, "error", err)
		return skipped(ReasonWriteFailed, paper)
	}

	if err := writeSidecar(metadataPath, paper, pdfPath); err != nil {
		imp.log.Error("writing metadata sidecar", "path", metadataPath, "error", err)
		return skipped(ReasonWriteFailed, paper)
	}

	return Outcome{
		Status:       StatusDownloaded,
		PDFPath:      pdfPath,
		PDFSize:      int64(len(pdfBytes)),
		MetadataPath: metadataPath,
		Paper:        paper,
	}
}

// downloadPDF issues the single PDF GET. A 404 maps to paper_not_found;
// every other failure maps to network_error.
func (imp *Importer) downloadPDF(ctx context.Context, pdfURL string) ([]byte, SkipReason) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pdfURL, nil)
	if err != nil {
		imp.log.Error("creating PDF request", "url", pdfURL, "error", err)
		return nil, ReasonNetworkError
	}
	req.Header.Set("User-Agent", imp.cfg.UserAgent)
	req.Header.Set("Accept", "application/pdf")

	resp, err := imp.client.Do(req)
	if err != nil {
		imp.log.Error("downloading PDF", "url", pdfURL, "error", err)
		return nil, ReasonNetworkError
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		imp.log.Warn("PDF not found", "url", pdfURL)
		return nil, ReasonPaperNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		imp.log.Error("PDF download failed", "url", pdfURL, "status", resp.StatusCode)
		return nil, ReasonNetworkError
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		imp.log.Error("reading PDF body", "url", pdfURL, "error", err)
		return nil, ReasonNetworkError
	}
	return body, ""
}

// sidecar is the stable metadata JSON schema written next to the PDF.
type sidecar struct {
	Source       string   `json:"source"`
	ArxivID      string   `json:"arxiv_id"`
	Version      int      `json:"version"`
	Title        string   `json:"title"`
	Authors      []string `json:"authors"`
	Summary      string   `json:"summary"`
	Published    string   `json:"published"`
	Updated      string   `json:"updated"`
	AbsURL       string   `json:"abs_url"`
	PDFURL       string   `json:"pdf_url"`
	DownloadedAt string   `json:"downloaded_at"`
	PDFPath      string   `json:"pdf_path"`
}

func writeSidecar(path string, paper *types.Paper, pdfPath string) error {
	authors := paper.Authors
	if authors == nil {
		authors = []string{}
	}
	doc := sidecar{
		Source:       "arxiv",
		ArxivID:      paper.ArxivID,
		Version:      paper.Version,
		Title:        paper.Title,
		Authors:      authors,
		Summary:      paper.Summary,
		Published:    paper.Published,
		Updated:      paper.Updated,
		AbsURL:       paper.AbsURL,
		PDFURL:       paper.PDFURL,
		DownloadedAt: unixTimestamp(),
		PDFPath:      pdfPath,
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling metadata: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// unixTimestamp returns seconds since the epoch as a decimal string,
// "0" when the clock reads before the epoch.
func unixTimestamp() string {
	secs := time.Now().Unix()
	if secs < 0 {
		return "0"
	}
	return strconv.FormatInt(secs, 10)
}
