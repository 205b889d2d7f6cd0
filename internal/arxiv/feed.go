// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package arxiv

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/DylanDDeng/pdf-reader/pkg/types"
)

// Endpoints for the arXiv API and download hosts. Declared as vars so
// tests can substitute httptest servers.
var (
	apiBase = "https://export.arxiv.org/api/query"
	absBase = "https://arxiv.org/abs/"
	pdfBase = "https://arxiv.org/pdf/"
)

// DefaultTimeout is the fixed timeout for importer HTTP calls.
const DefaultTimeout = 45 * time.Second

// ErrNotFound reports that the feed had no entry for the identifier, or
// that the feed body was not a decodable feed at all.
var ErrNotFound = errors.New("paper not found")

// Client queries the arXiv export API for paper metadata.
type Client struct {
	HTTPClient *http.Client
	UserAgent  string
}

// NewClient returns a client using the given HTTP client and the
// User-Agent from cfg.
func NewClient(httpClient *http.Client, cfg types.HTTPConfig) *Client {
	return &Client{HTTPClient: httpClient, UserAgent: cfg.UserAgent}
}

// Atom feed structures. Only the fields the importer needs are decoded.
type feed struct {
	Entries []entry `xml:"entry"`
}

type entry struct {
	ID        string      `xml:"id"`
	Title     string      `xml:"title"`
	Summary   string      `xml:"summary"`
	Published string      `xml:"published"`
	Updated   string      `xml:"updated"`
	Authors   []author    `xml:"author"`
	Links     []entryLink `xml:"link"`
}

type author struct {
	Name string `xml:"name"`
}

type entryLink struct {
	Href string `xml:"href,attr"`
}

// FetchMetadata issues one GET against the export API for baseID and
// returns the paper described by the first feed entry, resolved to the
// feed's latest known version. Transport failures, non-2xx statuses, and
// body read failures surface as plain errors; a feed that decodes to
// zero entries or fails to decode at all wraps ErrNotFound.
func (c *Client) FetchMetadata(ctx context.Context, baseID string) (*types.Paper, error) {
	apiURL := fmt.Sprintf("%s?id_list=%s", apiBase, baseID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.UserAgent)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("arXiv API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("arXiv API returned HTTP %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading arXiv API response: %w", err)
	}

	var f feed
	if err := xml.Unmarshal(body, &f); err != nil {
		return nil, fmt.Errorf("%w: parsing feed: %v", ErrNotFound, err)
	}
	if len(f.Entries) == 0 {
		return nil, ErrNotFound
	}

	return buildPaper(baseID, f.Entries[0]), nil
}

// buildPaper assembles a Paper record from the head feed entry.
func buildPaper(baseID string, e entry) *types.Paper {
	latest := resolveLatestVersion(baseID, e)

	title := CompactText(e.Title)
	if title == "" {
		title = FallbackTitle(baseID, latest)
	}

	var authors []string
	for _, a := range e.Authors {
		if name := CompactText(a.Name); name != "" {
			authors = append(authors, name)
		}
	}

	return &types.Paper{
		ArxivID:   baseID,
		Version:   latest,
		Title:     title,
		Authors:   authors,
		Summary:   CompactText(e.Summary),
		Published: e.Published,
		Updated:   e.Updated,
		AbsURL:    AbsURL(baseID, latest),
		PDFURL:    PDFURL(baseID, latest),
	}
}

// resolveLatestVersion determines the latest version the feed knows for
// baseID. The feed encodes the version redundantly and neither place is
// guaranteed present: the entry's own <id> URL is consulted first, then
// the link hrefs in order, stopping at the first match. Defaults to 1.
func resolveLatestVersion(baseID string, e entry) int {
	if id, ok := ParseID(e.ID); ok && id.Base == baseID && id.Version > 0 {
		return id.Version
	}
	for _, l := range e.Links {
		if id, ok := ParseID(l.Href); ok && id.Base == baseID && id.Version > 0 {
			return id.Version
		}
	}
	return 1
}

// FallbackTitle names a paper version whose feed entry carries no
// usable title.
func FallbackTitle(baseID string, version int) string {
	return fmt.Sprintf("arXiv %sv%d", baseID, version)
}

// AbsURL returns the canonical abstract page URL for a paper version.
func AbsURL(baseID string, version int) string {
	return fmt.Sprintf("%s%sv%d", absBase, baseID, version)
}

// PDFURL returns the canonical PDF download URL for a paper version.
func PDFURL(baseID string, version int) string {
	return fmt.Sprintf("%s%sv%d.pdf", pdfBase, baseID, version)
}
