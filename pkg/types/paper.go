// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the explorer pipeline.
package types

import (
	"fmt"
	"strings"
)

// Download status values. A Paper always carries one of these, or a
// "Downloaded (...)" / "Failed: ..." string produced by the helpers below.
const (
	StatusNotDownloaded = "Not downloaded"
	StatusNoPDFURL      = "No PDF URL"
)

// Paper holds the metadata and download outcome for one discovered publication.
type Paper struct {
	// ID is the arXiv identifier extracted from the entry URL
	// (e.g. "2301.07041v1"). Unique within a single result set.
	ID string `json:"id" yaml:"id"`

	// Title is the paper title as returned by the source.
	Title string `json:"title" yaml:"title"`

	// Year is the publication year taken from the entry's published date.
	Year int `json:"year" yaml:"year"`

	// Categories lists the subject category tags in source order.
	Categories []string `json:"categories" yaml:"categories"`

	// Abstract is the entry summary, truncated for display.
	Abstract string `json:"abstract" yaml:"abstract"`

	// PDFURL is the direct download link. Empty means no retrievable file.
	PDFURL string `json:"pdf_url,omitempty" yaml:"pdf_url,omitempty"`

	// DownloadStatus records the outcome of the download attempt. It is the
	// only field that mutates after construction.
	DownloadStatus string `json:"download_status" yaml:"download_status"`
}

// DownloadedStatus formats the success status for a stored file of the
// given size in bytes, e.g. "Downloaded (341.2 KB)".
func DownloadedStatus(size int64) string {
	return fmt.Sprintf("Downloaded (%.1f KB)", float64(size)/1024)
}

// FailedStatus formats the per-record failure status.
func FailedStatus(err error) string {
	return "Failed: " + err.Error()
}

// IsDownloaded reports whether status records a successful download.
func IsDownloaded(status string) bool {
	return strings.HasPrefix(status, "Downloaded (")
}
