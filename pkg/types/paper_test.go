// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"errors"
	"testing"
)

func TestDownloadedStatus(t *testing.T) {
	tests := []struct {
		size int64
		want string
	}{
		{1024, "Downloaded (1.0 KB)"},
		{349389, "Downloaded (341.2 KB)"},
		{512, "Downloaded (0.5 KB)"},
		{0, "Downloaded (0.0 KB)"},
	}
	for _, tt := range tests {
		if got := DownloadedStatus(tt.size); got != tt.want {
			t.Errorf("DownloadedStatus(%d) = %q, want %q", tt.size, got, tt.want)
		}
	}
}

func TestFailedStatus(t *testing.T) {
	got := FailedStatus(errors.New("connection refused"))
	if got != "Failed: connection refused" {
		t.Errorf("FailedStatus() = %q", got)
	}
}

func TestIsDownloaded(t *testing.T) {
	tests := []struct {
		status string
		want   bool
	}{
		{"Downloaded (341.2 KB)", true},
		{"Downloaded (0.0 KB)", true},
		{StatusNotDownloaded, false},
		{StatusNoPDFURL, false},
		{"Failed: HTTP 404", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsDownloaded(tt.status); got != tt.want {
			t.Errorf("IsDownloaded(%q) = %v, want %v", tt.status, got, tt.want)
		}
	}
}
