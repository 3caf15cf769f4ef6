package tui

import "github.com/mmcdole/watchlist/internal/domain"

// Message types for the TUI

// QuerySettledMsg signals that the debounce quiet period elapsed for a query
type QuerySettledMsg struct {
	Query string
}

// QueryCanceledMsg signals that a pending query was superseded before settling
type QueryCanceledMsg struct{}

// SearchResultsMsg carries the aggregated results of one issued lookup
type SearchResultsMsg struct {
	Seq     uint64
	Query   string
	Results []domain.SearchResult
}

// StatusMsg sets a temporary status message
type StatusMsg struct {
	Message string
	IsError bool
}

// ClearStatusMsg clears the status bar message
type ClearStatusMsg struct{}

// ExportDoneMsg signals a completed export
type ExportDoneMsg struct {
	Path string
	Err  error
}

// ImportDoneMsg signals a completed import
type ImportDoneMsg struct {
	Count int
	Err   error
}
