package tui

import "github.com/pdiddy/alcu-explorer/pkg/types"

type searchDoneMsg struct {
	papers []types.Paper
}

type searchErrMsg struct {
	err error
}

// downloadStepMsg reports one completed download attempt. Attempts are
// chained one command at a time so downloads stay strictly sequential.
type downloadStepMsg struct {
	index  int
	status string
}

type exportDoneMsg struct {
	path string
	err  error
}
