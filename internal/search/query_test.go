// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import "testing"

func validQuery() Query {
	return Query{
		Text:       DefaultQuery,
		Categories: []string{"cond-mat.mtrl-sci"},
		StartYear:  2015,
		EndYear:    2024,
		MaxResults: 10,
	}
}

func TestQueryValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Query)
		wantErr bool
	}{
		{"valid", func(q *Query) {}, false},
		{"empty text", func(q *Query) { q.Text = "" }, true},
		{"no categories", func(q *Query) { q.Categories = nil }, true},
		{"inverted years", func(q *Query) { q.StartYear = 2024; q.EndYear = 2015 }, true},
		{"equal years", func(q *Query) { q.StartYear = 2020; q.EndYear = 2020 }, false},
		{"zero max results", func(q *Query) { q.MaxResults = 0 }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := validQuery()
			tt.mutate(&q)
			err := q.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestQueryMatches(t *testing.T) {
	q := Query{
		Categories: []string{"cond-mat.mtrl-sci", "physics.app-ph"},
		StartYear:  2015,
		EndYear:    2024,
	}

	tests := []struct {
		name       string
		categories []string
		year       int
		want       bool
	}{
		{"category and year match", []string{"cond-mat.mtrl-sci"}, 2020, true},
		{"second category matches", []string{"physics.optics", "physics.app-ph"}, 2018, true},
		{"no category overlap", []string{"cs.LG", "math.NA"}, 2020, false},
		{"year too early", []string{"cond-mat.mtrl-sci"}, 2014, false},
		{"year too late", []string{"cond-mat.mtrl-sci"}, 2025, false},
		{"boundary start year", []string{"physics.app-ph"}, 2015, true},
		{"boundary end year", []string{"physics.app-ph"}, 2024, true},
		{"no categories on entry", nil, 2020, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := q.Matches(tt.categories, tt.year); got != tt.want {
				t.Errorf("Matches(%v, %d) = %v, want %v", tt.categories, tt.year, got, tt.want)
			}
		})
	}
}

func TestCategoryVocabularyFixed(t *testing.T) {
	if len(CategoryVocabulary) != 4 {
		t.Fatalf("len(CategoryVocabulary) = %d, want 4", len(CategoryVocabulary))
	}
	if DefaultCategoryCount >= len(CategoryVocabulary) {
		t.Errorf("DefaultCategoryCount = %d, must leave optional categories", DefaultCategoryCount)
	}
}
