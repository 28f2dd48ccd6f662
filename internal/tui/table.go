package tui

import (
	"fmt"
	"strings"

	"github.com/pdiddy/alcu-explorer/pkg/types"
)

// noResultsMessage is shown when a search matched nothing.
const noResultsMessage = "No papers found matching your criteria."

// broadeningSuggestions helps the researcher widen a search that came up
// empty.
var broadeningSuggestions = []string{
	"Broaden the query (e.g. try 'laser welding aluminum copper' or 'Al-Cu welding').",
	"Add more categories (e.g. 'physics.optics' for laser-related papers).",
	"Expand the year range (e.g. 2010-2025).",
	"Increase the maximum number of papers.",
}

func renderNoResults() string {
	var b strings.Builder
	b.WriteString("  " + errorStyle.Render(noResultsMessage) + "\n\n")
	b.WriteString("  " + labelStyle.Render("Suggestions to find more papers:") + "\n")
	for _, s := range broadeningSuggestions {
		b.WriteString("    - " + dimStyle.Render(s) + "\n")
	}
	return b.String()
}

// summaryLine reports the run outcome beneath the table.
func summaryLine(papers []types.Paper) string {
	downloaded := 0
	for _, p := range papers {
		if types.IsDownloaded(p.DownloadStatus) {
			downloaded++
		}
	}
	line := fmt.Sprintf("%d papers found, %d PDFs downloaded successfully.", len(papers), downloaded)
	if downloaded < len(papers) {
		line += " Some PDFs failed to download; check the status column."
	}
	return line
}

// renderTable renders the finalized records as a fixed-width table with a
// cursor. It is a pure display operation.
func renderTable(papers []types.Paper, cursor, width, height int) string {
	idW, yearW, statusW := 16, 4, 22
	titleW := width - idW - yearW - statusW - 12
	if titleW < 16 {
		titleW = 16
	}

	var b strings.Builder
	header := fmt.Sprintf("  %-*s  %-*s  %-*s  %-*s",
		idW, "id", titleW, "title", yearW, "year", statusW, "download_status")
	b.WriteString(tableHeaderStyle.Render(header) + "\n")
	b.WriteString("  " + dimStyle.Render(strings.Repeat("-", idW+titleW+yearW+statusW+6)) + "\n")

	rows := height - 2
	if rows < 1 {
		rows = 1
	}
	start := 0
	if cursor >= rows {
		start = cursor - rows + 1
	}
	end := start + rows
	if end > len(papers) {
		end = len(papers)
	}

	for i := start; i < end; i++ {
		p := papers[i]
		marker := "  "
		if i == cursor {
			marker = "> "
		}
		row := fmt.Sprintf("%s%-*s  %-*s  %-*d  %-*s",
			marker, idW, truncateCell(p.ID, idW), titleW, truncateCell(p.Title, titleW),
			yearW, p.Year, statusW, truncateCell(p.DownloadStatus, statusW))
		if i == cursor {
			row = rowSelectedStyle.Render(row)
		}
		b.WriteString(row + "\n")
	}
	return b.String()
}

// renderDetail shows the selected record's categories and abstract below
// the table.
func renderDetail(p types.Paper, width int) string {
	var b strings.Builder
	b.WriteString("  " + successStyle.Render(strings.Join(p.Categories, ", ")) + "\n")
	for _, line := range wrap(p.Abstract, width-4) {
		b.WriteString("  " + labelStyle.Render(line) + "\n")
	}
	return b.String()
}

func truncateCell(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 3 {
		return string(runes[:n])
	}
	return string(runes[:n-3]) + "..."
}

// wrap breaks s into lines no longer than width runes, on word boundaries.
func wrap(s string, width int) []string {
	if width < 10 {
		width = 10
	}
	words := strings.Fields(s)
	var lines []string
	var cur string
	for _, w := range words {
		if cur == "" {
			cur = w
			continue
		}
		if len([]rune(cur))+1+len([]rune(w)) > width {
			lines = append(lines, cur)
			cur = w
			continue
		}
		cur += " " + w
	}
	if cur != "" {
		lines = append(lines, cur)
	}
	return lines
}
