package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "alcu-explorer/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// SearchConfig holds settings for the search stage.
type SearchConfig struct {
	HTTPConfig `yaml:",inline"`

	// PageSize is the number of raw results fetched per arXiv API page.
	PageSize int `json:"page_size" yaml:"page_size"`

	// PageDelay is the courtesy delay between consecutive page fetches.
	PageDelay time.Duration `json:"page_delay" yaml:"page_delay"`
}

// DownloadConfig holds settings for the PDF download stage.
type DownloadConfig struct {
	HTTPConfig `yaml:",inline"`

	// Delay is the courtesy delay between consecutive downloads (default 100ms).
	Delay time.Duration `json:"delay" yaml:"delay"`

	// Dir is the directory that receives one <id>.pdf per downloaded record.
	Dir string `json:"dir" yaml:"dir"`
}
