package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pdiddy/alcu-explorer/internal/search"
)

type queryMode int

const (
	queryDefault queryMode = iota
	queryCustom
	querySuggested
)

var queryModeLabels = []string{"Default", "Custom", "Suggested"}

type formField int

const (
	fieldQueryMode formField = iota
	fieldQuery
	fieldCategories
	fieldMaxResults
	fieldStartYear
	fieldEndYear
	fieldCount
)

// Bounds on the numeric form controls, matching the fixed ranges the
// explorer has always offered.
const (
	minResults = 1
	maxResults = 50
	minYear    = 1900
)

// form holds the interactive search controls. All pipeline parameters are
// supplied here at run time; there are no flags or files for them.
type form struct {
	focus formField

	queryMode    queryMode
	customInput  textinput.Model
	suggestedIdx int

	selected  []bool // parallel to search.CategoryVocabulary
	catCursor int

	maxCount  int
	startYear int
	endYear   int
}

func newForm() form {
	ti := textinput.New()
	ti.Placeholder = "aluminum copper dissimilar welding"
	ti.CharLimit = 120
	ti.Width = 48

	selected := make([]bool, len(search.CategoryVocabulary))
	for i := 0; i < search.DefaultCategoryCount && i < len(selected); i++ {
		selected[i] = true
	}

	return form{
		customInput: ti,
		selected:    selected,
		maxCount:    10,
		startYear:   2015,
		endYear:     time.Now().Year(),
	}
}

// queryText returns the free-text query for the current query mode.
func (f form) queryText() string {
	switch f.queryMode {
	case queryCustom:
		return strings.TrimSpace(f.customInput.Value())
	case querySuggested:
		return search.SuggestedQueries[f.suggestedIdx]
	default:
		return search.DefaultQuery
	}
}

// categories returns the selected category tags in vocabulary order.
func (f form) categories() []string {
	var out []string
	for i, on := range f.selected {
		if on {
			out = append(out, search.CategoryVocabulary[i])
		}
	}
	return out
}

// buildQuery assembles the search.Query from the current control values.
func (f form) buildQuery() search.Query {
	return search.Query{
		Text:       f.queryText(),
		Categories: f.categories(),
		StartYear:  f.startYear,
		EndYear:    f.endYear,
		MaxResults: f.maxCount,
	}
}

func (f *form) setFocus(field formField) {
	f.focus = field
	if f.focus == fieldQuery && f.queryMode == queryCustom {
		f.customInput.Focus()
	} else {
		f.customInput.Blur()
	}
}

// editingText reports whether keystrokes currently go to the custom query
// input rather than the form navigation.
func (f form) editingText() bool {
	return f.focus == fieldQuery && f.queryMode == queryCustom
}

func (f *form) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "tab", "down":
		f.setFocus((f.focus + 1) % fieldCount)
		if f.editingText() {
			return textinput.Blink
		}
		return nil
	case "shift+tab", "up":
		f.setFocus((f.focus + fieldCount - 1) % fieldCount)
		if f.editingText() {
			return textinput.Blink
		}
		return nil
	}

	if f.editingText() {
		var cmd tea.Cmd
		f.customInput, cmd = f.customInput.Update(msg)
		return cmd
	}

	switch msg.String() {
	case "left", "h":
		f.adjust(-1)
	case "right", "l":
		f.adjust(1)
	case " ":
		if f.focus == fieldCategories {
			f.selected[f.catCursor] = !f.selected[f.catCursor]
		}
	}
	return nil
}

// adjust applies a left/right step to the focused control.
func (f *form) adjust(delta int) {
	switch f.focus {
	case fieldQueryMode:
		f.queryMode = queryMode((int(f.queryMode) + delta + len(queryModeLabels)) % len(queryModeLabels))
		f.setFocus(f.focus)
	case fieldQuery:
		if f.queryMode == querySuggested {
			n := len(search.SuggestedQueries)
			f.suggestedIdx = (f.suggestedIdx + delta + n) % n
		}
	case fieldCategories:
		f.catCursor = clamp(f.catCursor+delta, 0, len(f.selected)-1)
	case fieldMaxResults:
		f.maxCount = clamp(f.maxCount+delta, minResults, maxResults)
	case fieldStartYear:
		f.startYear = clamp(f.startYear+delta, minYear, time.Now().Year())
	case fieldEndYear:
		f.endYear = clamp(f.endYear+delta, minYear, time.Now().Year())
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func (f form) view() string {
	var b strings.Builder

	b.WriteString(f.row(fieldQueryMode, "Query type", "< "+queryModeLabels[f.queryMode]+" >"))

	switch f.queryMode {
	case queryCustom:
		b.WriteString(f.row(fieldQuery, "Custom query", f.customInput.View()))
	case querySuggested:
		b.WriteString(f.row(fieldQuery, "Suggested query", "< "+search.SuggestedQueries[f.suggestedIdx]+" >"))
	default:
		b.WriteString(f.row(fieldQuery, "Query", dimStyle.Render(search.DefaultQuery)))
	}

	var cats []string
	for i, name := range search.CategoryVocabulary {
		box := "[ ]"
		if f.selected[i] {
			box = "[x]"
		}
		item := box + " " + name
		if f.focus == fieldCategories && i == f.catCursor {
			item = rowSelectedStyle.Render(item)
		}
		cats = append(cats, item)
	}
	b.WriteString(f.row(fieldCategories, "Categories", strings.Join(cats, "  ")))

	b.WriteString(f.row(fieldMaxResults, "Max papers", fmt.Sprintf("< %d >", f.maxCount)))
	b.WriteString(f.row(fieldStartYear, "Start year", fmt.Sprintf("< %d >", f.startYear)))
	b.WriteString(f.row(fieldEndYear, "End year", fmt.Sprintf("< %d >", f.endYear)))

	return b.String()
}

func (f form) row(field formField, label, value string) string {
	style := labelStyle
	if f.focus == field {
		style = labelFocusedStyle
	}
	return fmt.Sprintf("  %s  %s\n", style.Render(fmt.Sprintf("%-16s", label)), valueStyle.Render(value))
}
