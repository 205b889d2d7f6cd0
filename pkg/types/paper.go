// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the shared data model for the pdf-reader backend.
package types

import (
	"fmt"
	"strings"
)

// Paper holds the resolved metadata record for one arXiv paper version.
// It is built from a single feed entry and never mutated afterwards.
type Paper struct {
	// ArxivID is the canonical lowercased base identifier
	// (e.g. "2301.07041" or "cond-mat/9709123").
	ArxivID string `json:"arxiv_id" yaml:"arxiv_id"`

	// Version is the resolved paper version, always >= 1.
	Version int `json:"version" yaml:"version"`

	// Title is the whitespace-compacted paper title.
	Title string `json:"title" yaml:"title"`

	// Authors lists author names in feed order, empty names dropped.
	Authors []string `json:"authors" yaml:"authors"`

	// Summary is the whitespace-compacted abstract.
	Summary string `json:"summary" yaml:"summary"`

	// Published and Updated are the feed timestamps, verbatim.
	Published string `json:"published" yaml:"published"`
	Updated   string `json:"updated" yaml:"updated"`

	// AbsURL and PDFURL are derived from ArxivID and Version rather than
	// copied from the feed, so their shape is always canonical.
	AbsURL string `json:"abs_url" yaml:"abs_url"`
	PDFURL string `json:"pdf_url" yaml:"pdf_url"`
}

// VersionedID returns the identifier with its version suffix
// (e.g. "2301.07041v2").
func (p Paper) VersionedID() string {
	return fmt.Sprintf("%sv%d", p.ArxivID, p.Version)
}

// FileStem returns the versioned identifier made safe for use as a
// filename component (legacy identifiers contain a slash).
func (p Paper) FileStem() string {
	return strings.ReplaceAll(p.VersionedID(), "/", "_")
}
