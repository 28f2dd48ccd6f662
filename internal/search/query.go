// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import "fmt"

// DefaultQuery is the preset search used when the researcher picks the
// default query option.
const DefaultQuery = "aluminum copper dissimilar welding process parameters"

// SuggestedQueries is the picklist of alternative searches offered in the
// query form.
var SuggestedQueries = []string{
	"laser welding aluminum copper",
	"Al-Cu dissimilar welding",
	"multimaterial welding Al-Cu",
	"laser welding process parameters",
}

// CategoryVocabulary is the fixed set of arXiv categories the explorer
// filters on. The first two are selected by default.
var CategoryVocabulary = []string{
	"cond-mat.mtrl-sci",
	"physics.app-ph",
	"physics.optics",
	"cond-mat.other",
}

// DefaultCategoryCount is how many leading entries of CategoryVocabulary
// start out selected in the form.
const DefaultCategoryCount = 2

// Query holds the search parameters collected from the form.
type Query struct {
	// Text is the free-text query string.
	Text string

	// Categories is the set of category tags a paper must intersect.
	Categories []string

	// StartYear and EndYear bound the publication year, inclusive.
	StartYear int
	EndYear   int

	// MaxResults caps the number of filtered matches collected. It bounds
	// retained records, not raw results fetched.
	MaxResults int
}

// Validate checks the query before any network request is made. A
// violation here never reaches the arXiv API.
func (q Query) Validate() error {
	if q.Text == "" {
		return fmt.Errorf("query must not be empty")
	}
	if len(q.Categories) == 0 {
		return fmt.Errorf("select at least one category")
	}
	if q.StartYear > q.EndYear {
		return fmt.Errorf("start year %d must not exceed end year %d", q.StartYear, q.EndYear)
	}
	if q.MaxResults < 1 {
		return fmt.Errorf("max results must be at least 1")
	}
	return nil
}

// Matches reports whether a candidate with the given category tags and
// publication year passes the filter: the tags must intersect the query's
// category set and the year must fall within the inclusive range.
func (q Query) Matches(categories []string, year int) bool {
	if year < q.StartYear || year > q.EndYear {
		return false
	}
	for _, c := range categories {
		for _, want := range q.Categories {
			if c == want {
				return true
			}
		}
	}
	return false
}
