package tui

import (
	"strings"
	"testing"

	"github.com/pdiddy/alcu-explorer/pkg/types"
)

func TestSummaryLine(t *testing.T) {
	papers := []types.Paper{
		{DownloadStatus: "Downloaded (12.3 KB)"},
		{DownloadStatus: "Failed: HTTP 404"},
		{DownloadStatus: types.StatusNoPDFURL},
	}
	got := summaryLine(papers)
	if !strings.HasPrefix(got, "3 papers found, 1 PDFs downloaded successfully.") {
		t.Errorf("summaryLine() = %q", got)
	}
	if !strings.Contains(got, "failed") {
		t.Errorf("partial failure should be flagged: %q", got)
	}

	all := []types.Paper{{DownloadStatus: "Downloaded (1.0 KB)"}}
	if got := summaryLine(all); got != "1 papers found, 1 PDFs downloaded successfully." {
		t.Errorf("summaryLine() = %q", got)
	}
}

func TestRenderTableShowsRecords(t *testing.T) {
	papers := []types.Paper{
		{ID: "2301.00001v1", Title: "Laser welding of Al-Cu joints", Year: 2023,
			DownloadStatus: "Downloaded (12.3 KB)"},
		{ID: "2301.00002v1", Title: "Second paper", Year: 2022,
			DownloadStatus: types.StatusNoPDFURL},
	}
	out := renderTable(papers, 0, 100, 10)

	for _, want := range []string{"2301.00001v1", "Laser welding of Al-Cu joints", "2023", "download_status"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q", want)
		}
	}
	if !strings.Contains(out, "> ") {
		t.Error("table missing cursor marker")
	}
}

func TestTruncateCell(t *testing.T) {
	tests := []struct {
		input string
		n     int
		want  string
	}{
		{"short", 10, "short"},
		{"a very long title indeed", 10, "a very ..."},
		{"abc", 3, "abc"},
		{"abcd", 3, "abc"},
	}
	for _, tt := range tests {
		if got := truncateCell(tt.input, tt.n); got != tt.want {
			t.Errorf("truncateCell(%q, %d) = %q, want %q", tt.input, tt.n, got, tt.want)
		}
	}
}

func TestWrap(t *testing.T) {
	lines := wrap("one two three four five six seven eight", 15)
	for _, l := range lines {
		if len([]rune(l)) > 15 {
			t.Errorf("line %q exceeds width", l)
		}
	}
	if strings.Join(lines, " ") != "one two three four five six seven eight" {
		t.Errorf("wrap lost words: %v", lines)
	}
}
