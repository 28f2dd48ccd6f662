// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package download retrieves paper PDFs sequentially and reports a
// per-record status string. A failed download never aborts the run.
package download

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"golang.org/x/time/rate"

	"github.com/pdiddy/alcu-explorer/pkg/types"
)

// ProgressFunc reports download progress after each attempt: (1, 5),
// (2, 5), ...
type ProgressFunc func(done, total int)

// Fetcher downloads PDFs into a fixed output directory.
type Fetcher struct {
	http      *http.Client
	limiter   *rate.Limiter
	dir       string
	userAgent string
}

// NewFetcher creates the output directory (idempotently) and returns a
// Fetcher. The configured delay throttles consecutive downloads; a zero
// delay disables the throttle.
func NewFetcher(cfg types.DownloadConfig) (*Fetcher, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating download directory %s: %w", cfg.Dir, err)
	}
	return &Fetcher{
		http:      &http.Client{Timeout: cfg.Timeout},
		limiter:   rate.NewLimiter(rate.Every(cfg.Delay), 1),
		dir:       cfg.Dir,
		userAgent: cfg.UserAgent,
	}, nil
}

// Dir returns the output directory.
func (f *Fetcher) Dir() string { return f.dir }

// Fetch downloads pdfURL to <dir>/<id>.pdf and returns the resulting
// status string. Failures are reported in the status, never as an error,
// so one bad record does not halt the remaining downloads.
func (f *Fetcher) Fetch(ctx context.Context, pdfURL, id string) string {
	if pdfURL == "" {
		return types.StatusNoPDFURL
	}
	if err := f.limiter.Wait(ctx); err != nil {
		return types.FailedStatus(err)
	}

	size, err := f.download(ctx, pdfURL, filepath.Join(f.dir, id+".pdf"))
	if err != nil {
		return types.FailedStatus(err)
	}
	return types.DownloadedStatus(size)
}

// download fetches url to destPath via a temporary file, renaming on
// success so a partial transfer never leaves a truncated PDF behind.
func (f *Fetcher) download(ctx context.Context, url, destPath string) (int64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "application/pdf")

	resp, err := f.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("HTTP request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("HTTP %d from %s", resp.StatusCode, url)
	}

	tmpFile, err := os.CreateTemp(f.dir, ".download-*.tmp")
	if err != nil {
		return 0, fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	size, copyErr := io.Copy(tmpFile, resp.Body)
	closeErr := tmpFile.Close()
	if copyErr != nil {
		os.Remove(tmpPath)
		return 0, fmt.Errorf("writing download: %w", copyErr)
	}
	if closeErr != nil {
		os.Remove(tmpPath)
		return 0, fmt.Errorf("closing temp file: %w", closeErr)
	}

	if err := os.Rename(tmpPath, destPath); err != nil {
		os.Remove(tmpPath)
		return 0, fmt.Errorf("renaming temp file: %w", err)
	}
	return size, nil
}

// FetchAll downloads every paper in order, strictly sequentially, setting
// each DownloadStatus and invoking progress after each attempt. It
// returns the number of successful downloads.
func (f *Fetcher) FetchAll(ctx context.Context, papers []types.Paper, progress ProgressFunc) int {
	succeeded := 0
	for i := range papers {
		status := f.Fetch(ctx, papers[i].PDFURL, papers[i].ID)
		papers[i].DownloadStatus = status
		if types.IsDownloaded(status) {
			succeeded++
		}
		if progress != nil {
			progress(i+1, len(papers))
		}
	}
	return succeeded
}
