package tui

import "github.com/trackinhq/trackin/internal/model"

// Data loading messages.
type refreshDoneMsg struct{}

type summaryLoadedMsg struct {
	err     error
	summary model.DashboardSummary
}

type businessesLoadedMsg struct {
	err        error
	businesses []model.Business
}

// storeChangedMsg is pushed into the program whenever the record store
// finishes a background refresh, debounced searches included.
type storeChangedMsg struct{}

// actionDoneMsg signals that a mutation finished. The banner carries the
// outcome; err is kept for logging only.
type actionDoneMsg struct {
	err error
}

// errorMsg surfaces an unexpected failure.
type errorMsg struct {
	err error
}
