package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/watchlist/internal/search"
	"github.com/mmcdole/watchlist/internal/watchlist"
)

// Command factories for async operations

// WaitForSettleCmd blocks until the debounced query settles or is superseded
func WaitForSettleCmd(ch <-chan string) tea.Cmd {
	return func() tea.Msg {
		query, ok := <-ch
		if !ok {
			return QueryCanceledMsg{}
		}
		return QuerySettledMsg{Query: query}
	}
}

// SearchCmd issues the aggregated provider lookup for a settled query
func SearchCmd(agg *search.Aggregator, query string, seq uint64) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		results := agg.Search(ctx, query)
		return SearchResultsMsg{Seq: seq, Query: query, Results: results}
	}
}

// ExportCmd writes the list to an export file
func ExportCmd(svc *watchlist.Service, path string) tea.Cmd {
	return func() tea.Msg {
		err := svc.ExportFile(path)
		return ExportDoneMsg{Path: path, Err: err}
	}
}

// ImportCmd replaces the list from an import file
func ImportCmd(svc *watchlist.Service, path string) tea.Cmd {
	return func() tea.Msg {
		if err := svc.ImportFile(path); err != nil {
			return ImportDoneMsg{Err: err}
		}
		return ImportDoneMsg{Count: svc.Len()}
	}
}

// ClearStatusCmd returns a command that clears status after a delay
func ClearStatusCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}
