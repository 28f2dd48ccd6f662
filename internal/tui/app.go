// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package tui is the interactive surface of the explorer: a form that
// collects the search parameters, a progress view for the sequential
// downloads, and the final result table with export.
package tui

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pdiddy/alcu-explorer/internal/download"
	"github.com/pdiddy/alcu-explorer/internal/export"
	"github.com/pdiddy/alcu-explorer/internal/search"
	"github.com/pdiddy/alcu-explorer/pkg/types"
)

const appTitle = "Al-Cu Dissimilar Welding Parameters Explorer (arXiv)"

type mode int

const (
	modeForm mode = iota
	modeSearching
	modeDownloading
	modeTable
)

// RunOpts holds the ambient configuration for launching the TUI. All
// search parameters are collected interactively.
type RunOpts struct {
	Search    types.SearchConfig
	Download  types.DownloadConfig
	ExportDir string
}

type App struct {
	opts    RunOpts
	client  *search.Client
	fetcher *download.Fetcher

	mode mode
	form form

	papers    []types.Paper
	done      int
	succeeded int
	cursor    int

	spinner  spinner.Model
	progress progress.Model

	width  int
	height int

	errText string
	notice  string
}

func NewApp(opts RunOpts) *App {
	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = spinnerStyle

	return &App{
		opts:     opts,
		client:   search.NewClient(opts.Search),
		form:     newForm(),
		spinner:  sp,
		progress: progress.New(progress.WithDefaultGradient()),
	}
}

func (a *App) Init() tea.Cmd {
	return nil
}

// searchCmd runs the whole search (all pages) off the UI loop.
func (a *App) searchCmd(q search.Query) tea.Cmd {
	client := a.client
	return func() tea.Msg {
		papers, err := client.Search(context.Background(), q)
		if err != nil {
			return searchErrMsg{err: err}
		}
		return searchDoneMsg{papers: papers}
	}
}

// downloadCmd fetches exactly one PDF. The next record is only attempted
// after this command's message is processed, keeping downloads sequential.
func (a *App) downloadCmd(index int) tea.Cmd {
	fetcher := a.fetcher
	p := a.papers[index]
	return func() tea.Msg {
		status := fetcher.Fetch(context.Background(), p.PDFURL, p.ID)
		return downloadStepMsg{index: index, status: status}
	}
}

func (a *App) exportCmd(name string, write func(string, []types.Paper) error) tea.Cmd {
	papers := a.papers
	path := filepath.Join(a.opts.ExportDir, name)
	return func() tea.Msg {
		return exportDoneMsg{path: path, err: write(path, papers)}
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.progress.Width = min(msg.Width-8, 60)
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case searchDoneMsg:
		return a.startDownloads(msg.papers)

	case searchErrMsg:
		a.errText = "Error querying arXiv: " + msg.err.Error()
		a.mode = modeForm
		return a, nil

	case downloadStepMsg:
		a.papers[msg.index].DownloadStatus = msg.status
		a.done++
		if types.IsDownloaded(msg.status) {
			a.succeeded++
		}
		if a.done < len(a.papers) {
			return a, a.downloadCmd(a.done)
		}
		a.mode = modeTable
		return a, nil

	case exportDoneMsg:
		if msg.err != nil {
			a.notice = errorStyle.Render("Export failed: " + msg.err.Error())
		} else {
			a.notice = successStyle.Render("Exported " + msg.path)
		}
		return a, nil

	case spinner.TickMsg:
		if a.mode == modeSearching {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil
	}

	// Cursor blink and other control messages for the custom query input.
	if a.mode == modeForm {
		var cmd tea.Cmd
		a.form.customInput, cmd = a.form.customInput.Update(msg)
		return a, cmd
	}
	return a, nil
}

// startDownloads moves from Searching to Downloading, or straight to the
// table when the search matched nothing.
func (a *App) startDownloads(papers []types.Paper) (tea.Model, tea.Cmd) {
	a.papers = papers
	a.done, a.succeeded, a.cursor = 0, 0, 0

	if len(papers) == 0 {
		a.mode = modeTable
		return a, nil
	}

	fetcher, err := download.NewFetcher(a.opts.Download)
	if err != nil {
		a.errText = err.Error()
		a.mode = modeForm
		return a, nil
	}
	a.fetcher = fetcher
	a.mode = modeDownloading
	return a, a.downloadCmd(0)
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return a, tea.Quit
	}

	switch a.mode {
	case modeForm:
		return a.handleFormKey(msg)
	case modeTable:
		return a.handleTableKey(msg)
	}
	// Searching and downloading block until complete.
	return a, nil
}

func (a *App) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return a, tea.Quit
	case "enter":
		q := a.form.buildQuery()
		if err := q.Validate(); err != nil {
			a.errText = err.Error()
			return a, nil
		}
		a.errText = ""
		a.notice = ""
		a.mode = modeSearching
		return a, tea.Batch(a.spinner.Tick, a.searchCmd(q))
	}
	return a, a.form.handleKey(msg)
}

func (a *App) handleTableKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "n":
		a.mode = modeForm
		a.errText = ""
		a.notice = ""
		return a, nil
	case "j", "down":
		if a.cursor < len(a.papers)-1 {
			a.cursor++
		}
		return a, nil
	case "k", "up":
		if a.cursor > 0 {
			a.cursor--
		}
		return a, nil
	case "s":
		if len(a.papers) > 0 {
			return a, a.exportCmd(export.CSVName, export.WriteCSV)
		}
		return a, nil
	case "y":
		if len(a.papers) > 0 {
			return a, a.exportCmd(export.YAMLName, export.WriteYAML)
		}
		return a, nil
	}
	return a, nil
}

func (a *App) View() string {
	header := headerStyle.Render(appTitle)

	var body string
	var hints string
	switch a.mode {
	case modeForm:
		body = a.form.view()
		if a.errText != "" {
			body += "\n  " + errorStyle.Render(a.errText) + "\n"
		}
		hints = "tab/shift+tab move · left/right adjust · space toggle · enter search · esc quit"

	case modeSearching:
		body = "\n  " + a.spinner.View() + " Querying arXiv...\n"
		hints = "ctrl+c quit"

	case modeDownloading:
		pct := float64(a.done) / float64(len(a.papers))
		body = fmt.Sprintf("\n  Downloading PDFs (%d/%d)\n\n  %s\n",
			a.done, len(a.papers), a.progress.ViewAs(pct))
		hints = "ctrl+c quit"

	case modeTable:
		body = a.tableView()
		if len(a.papers) == 0 {
			hints = "n new search · q quit"
		} else {
			hints = "j/k move · s export CSV · y export YAML · n new search · q quit"
		}
	}

	view := lipgloss.JoinVertical(lipgloss.Left, header, "", body, "", hintStyle.Render(hints))
	return view
}

func (a *App) tableView() string {
	if len(a.papers) == 0 {
		return renderNoResults()
	}

	width := a.width
	if width <= 0 {
		width = 100
	}
	tableHeight := a.height - 12
	if tableHeight < 5 {
		tableHeight = 5
	}

	body := renderTable(a.papers, a.cursor, width, tableHeight)
	body += "\n" + renderDetail(a.papers[a.cursor], width)
	body += "\n  " + successStyle.Render(summaryLine(a.papers))
	if a.notice != "" {
		body += "\n  " + a.notice
	}
	return body
}

// Run starts the explorer TUI and blocks until the user quits.
func Run(opts RunOpts) error {
	p := tea.NewProgram(NewApp(opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
