// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package export serializes the finalized result table.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/alcu-explorer/pkg/types"
)

// Artifact names offered to the user after a run.
const (
	CSVName  = "alcu_papers_metadata.csv"
	YAMLName = "alcu_papers_metadata.yaml"
)

// csvHeader is the fixed column set of the CSV export. The PDF URL is
// deliberately excluded.
var csvHeader = []string{"id", "title", "year", "categories", "abstract", "download_status"}

// CSV renders papers as comma-separated text with a header row, one row
// per record.
func CSV(papers []types.Paper) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("writing CSV header: %w", err)
	}
	for _, p := range papers {
		row := []string{
			p.ID,
			p.Title,
			strconv.Itoa(p.Year),
			strings.Join(p.Categories, ", "),
			p.Abstract,
			p.DownloadStatus,
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("writing CSV row for %s: %w", p.ID, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flushing CSV: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteCSV writes the CSV export to path.
func WriteCSV(path string, papers []types.Paper) error {
	data, err := CSV(papers)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// exportEntry mirrors the CSV columns for the YAML export.
type exportEntry struct {
	ID             string   `yaml:"id"`
	Title          string   `yaml:"title"`
	Year           int      `yaml:"year"`
	Categories     []string `yaml:"categories"`
	Abstract       string   `yaml:"abstract"`
	DownloadStatus string   `yaml:"download_status"`
}

// WriteYAML writes the same records as the CSV export to a YAML file.
func WriteYAML(path string, papers []types.Paper) error {
	entries := make([]exportEntry, len(papers))
	for i, p := range papers {
		entries[i] = exportEntry{
			ID:             p.ID,
			Title:          p.Title,
			Year:           p.Year,
			Categories:     p.Categories,
			Abstract:       p.Abstract,
			DownloadStatus: p.DownloadStatus,
		}
	}
	data, err := yaml.Marshal(entries)
	if err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
