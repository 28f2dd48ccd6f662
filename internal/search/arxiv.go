// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package search queries the arXiv API and returns papers that pass the
// category and year filter, newest submissions first.
package search

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/pdiddy/alcu-explorer/pkg/types"
)

// arxivAPIBase is the arXiv search endpoint. Declared as a var so tests
// can substitute an httptest server.
var arxivAPIBase = "https://export.arxiv.org/api/query"

// abstractLimit caps abstracts at 200 runes. Longer abstracts are cut
// and marked with an ellipsis.
const abstractLimit = 200

// Client queries the arXiv API.
type Client struct {
	http      *http.Client
	limiter   *rate.Limiter
	pageSize  int
	userAgent string
}

// NewClient builds a Client from cfg. PageDelay throttles consecutive
// page fetches; a zero delay disables the throttle.
func NewClient(cfg types.SearchConfig) *Client {
	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = 25
	}
	return &Client{
		http:      &http.Client{Timeout: cfg.Timeout},
		limiter:   rate.NewLimiter(rate.Every(cfg.PageDelay), 1),
		pageSize:  pageSize,
		userAgent: cfg.UserAgent,
	}
}

// Search pages through arXiv results sorted by submission date descending,
// applying the query's filter inline, until q.MaxResults matches are
// collected or the feed is exhausted. Any HTTP or parse error aborts the
// whole search; no partial result set is returned.
func (c *Client) Search(ctx context.Context, q Query) ([]types.Paper, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	var papers []types.Paper
	for start := 0; ; start += c.pageSize {
		feed, err := c.fetchPage(ctx, q, start)
		if err != nil {
			return nil, err
		}
		if len(feed.Entries) == 0 {
			break
		}

		for _, entry := range feed.Entries {
			p, ok := paperFromEntry(entry)
			if !ok {
				continue
			}
			if !q.Matches(p.Categories, p.Year) {
				continue
			}
			papers = append(papers, p)
			if len(papers) >= q.MaxResults {
				return papers, nil
			}
		}

		if start+len(feed.Entries) >= feed.TotalResults {
			break
		}
	}
	return papers, nil
}

// fetchPage retrieves one page of raw results from the arXiv API.
func (c *Client) fetchPage(ctx context.Context, q Query, start int) (*arxivFeed, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s?search_query=%s&start=%d&max_results=%d&sortBy=submittedDate&sortOrder=descending",
		arxivAPIBase, buildSearchQuery(q.Text), start, c.pageSize)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("arXiv API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("arXiv API returned HTTP %d", resp.StatusCode)
	}

	var feed arxivFeed
	if err := xml.NewDecoder(resp.Body).Decode(&feed); err != nil {
		return nil, fmt.Errorf("parsing arXiv response: %w", err)
	}
	return &feed, nil
}

// buildSearchQuery constructs the search_query parameter from free text.
func buildSearchQuery(text string) string {
	return "all:" + strings.Join(strings.Fields(text), "+")
}

// arXiv Atom feed XML structures.
type arxivFeed struct {
	TotalResults int          `xml:"totalResults"`
	Entries      []arxivEntry `xml:"entry"`
}

type arxivEntry struct {
	ID         string          `xml:"id"`
	Title      string          `xml:"title"`
	Summary    string          `xml:"summary"`
	Published  string          `xml:"published"`
	Categories []arxivCategory `xml:"category"`
	Links      []arxivLink     `xml:"link"`
}

type arxivCategory struct {
	Term string `xml:"term,attr"`
}

type arxivLink struct {
	Href  string `xml:"href,attr"`
	Title string `xml:"title,attr"`
}

// paperFromEntry converts a raw Atom entry into a Paper. Entries whose ID
// or published date cannot be parsed are dropped.
func paperFromEntry(entry arxivEntry) (types.Paper, bool) {
	id := extractArxivID(entry.ID)
	if id == "" {
		return types.Paper{}, false
	}

	published, err := time.Parse(time.RFC3339, entry.Published)
	if err != nil {
		return types.Paper{}, false
	}

	categories := make([]string, 0, len(entry.Categories))
	for _, c := range entry.Categories {
		categories = append(categories, c.Term)
	}

	var pdfURL string
	for _, l := range entry.Links {
		if l.Title == "pdf" {
			pdfURL = l.Href
			break
		}
	}

	return types.Paper{
		ID:             id,
		Title:          strings.TrimSpace(entry.Title),
		Year:           published.Year(),
		Categories:     categories,
		Abstract:       truncateAbstract(strings.TrimSpace(entry.Summary)),
		PDFURL:         pdfURL,
		DownloadStatus: types.StatusNotDownloaded,
	}, true
}

// extractArxivID pulls the identifier from the entry's <id> URL
// (e.g. "http://arxiv.org/abs/2301.07041v1" -> "2301.07041v1"). The
// version suffix is kept as reported so file names stay unique per run.
func extractArxivID(idURL string) string {
	const prefix = "/abs/"
	idx := strings.Index(idURL, prefix)
	if idx < 0 {
		return ""
	}
	return idURL[idx+len(prefix):]
}

// truncateAbstract cuts the abstract to abstractLimit runes, appending an
// ellipsis marker when anything was dropped.
func truncateAbstract(s string) string {
	runes := []rune(s)
	if len(runes) <= abstractLimit {
		return s
	}
	return string(runes[:abstractLimit]) + "..."
}
