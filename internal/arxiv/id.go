// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package arxiv resolves arXiv identifiers and fetches paper metadata
// from the export API.
package arxiv

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"
)

// ID is a parsed arXiv identifier. Version is 0 when the input carried
// no explicit "vN" suffix and the caller must resolve the latest version
// via the feed.
type ID struct {
	Base    string
	Version int
}

// idPattern matches the two accepted identifier grammars, optionally
// suffixed with "vN": legacy "cond-mat/9709123" (archive name, slash,
// seven digits) and modern "2301.07041" (four digits, dot, 4-5 digits).
var idPattern = regexp.MustCompile(`^([A-Za-z.\-]+/[0-9]{7}|[0-9]{4}\.[0-9]{4,5})(?:v([0-9]+))?$`)

// ParseID normalizes free-form user input into a canonical identifier.
// It accepts bare identifiers and arxiv.org abs/pdf URLs. Parsing is
// exact-match rather than best-effort extraction: any other URL host,
// path shape, or identifier body reports false.
func ParseID(input string) (ID, bool) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return ID{}, false
	}

	if u, err := url.Parse(trimmed); err == nil && u.IsAbs() {
		host := strings.ToLower(u.Host)
		if host != "arxiv.org" && host != "www.arxiv.org" {
			return ID{}, false
		}
		path := strings.Trim(u.Path, "/")
		if candidate, ok := strings.CutPrefix(path, "abs/"); ok {
			return parsePlain(candidate)
		}
		if candidate, ok := strings.CutPrefix(path, "pdf/"); ok {
			return parsePlain(strings.TrimSuffix(candidate, ".pdf"))
		}
		return ID{}, false
	}

	return parsePlain(trimmed)
}

// parsePlain matches a bare identifier against the accepted grammars.
// The base is lowercased. An unparseable version suffix (overflow) is
// treated as unspecified.
func parsePlain(value string) (ID, bool) {
	m := idPattern.FindStringSubmatch(strings.TrimSpace(value))
	if m == nil {
		return ID{}, false
	}
	id := ID{Base: strings.ToLower(m[1])}
	if m[2] != "" {
		if v, err := strconv.Atoi(m[2]); err == nil {
			id.Version = v
		}
	}
	return id, true
}
