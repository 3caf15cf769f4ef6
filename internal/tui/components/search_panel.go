package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/watchlist/internal/domain"
	"github.com/mmcdole/watchlist/internal/tui/styles"
)

// SearchState tracks where a search panel is in its lifecycle. "No results"
// is explicitly distinct from "not yet searched" and from "loading".
type SearchState int

const (
	SearchIdle SearchState = iota // Nothing searched yet
	SearchLoading
	SearchNoResults
	SearchResults
)

// SearchPanel is the provider search modal: a query input over a bounded
// result list. It only collects and displays; issuing lookups and adding
// selections stay with the caller.
type SearchPanel struct {
	input   textinput.Model
	results []domain.SearchResult
	state   SearchState
	cursor  int
	visible bool
	width   int
	height  int
}

// NewSearchPanel creates the provider search component
func NewSearchPanel() SearchPanel {
	ti := textinput.New()
	ti.Placeholder = "Search movies & TV shows..."
	ti.CharLimit = 100
	ti.Width = 40
	ti.Prompt = "🔍 "

	return SearchPanel{input: ti}
}

// Show makes the panel visible and focuses the input
func (p *SearchPanel) Show() {
	p.visible = true
	p.input.Focus()
	p.input.SetValue("")
	p.results = nil
	p.state = SearchIdle
	p.cursor = 0
}

// Hide hides the panel
func (p *SearchPanel) Hide() {
	p.visible = false
	p.input.Blur()
}

// IsVisible returns true if the panel is visible
func (p SearchPanel) IsVisible() bool {
	return p.visible
}

// Query returns the current query text
func (p SearchPanel) Query() string {
	return p.input.Value()
}

// SetLoading marks a lookup as in flight
func (p *SearchPanel) SetLoading() {
	p.state = SearchLoading
}

// Reset discards results for a query too short to search
func (p *SearchPanel) Reset() {
	p.results = nil
	p.state = SearchIdle
	p.cursor = 0
}

// SetResults replaces the result set for the latest settled query
func (p *SearchPanel) SetResults(results []domain.SearchResult) {
	p.results = results
	p.cursor = 0
	if len(results) == 0 {
		p.state = SearchNoResults
	} else {
		p.state = SearchResults
	}
}

// State returns the panel's search lifecycle state
func (p SearchPanel) State() SearchState {
	return p.state
}

// Selected returns the result under the cursor
func (p SearchPanel) Selected() (domain.SearchResult, bool) {
	if p.state != SearchResults || p.cursor >= len(p.results) {
		return domain.SearchResult{}, false
	}
	return p.results[p.cursor], true
}

// SetSize updates the component dimensions
func (p *SearchPanel) SetSize(width, height int) {
	p.width = width
	p.height = height
	p.input.Width = min(width-12, 60)
}

// CursorUp moves the selection up
func (p *SearchPanel) CursorUp() {
	if p.cursor > 0 {
		p.cursor--
	}
}

// CursorDown moves the selection down
func (p *SearchPanel) CursorDown() {
	if p.cursor < len(p.results)-1 {
		p.cursor++
	}
}

// Update passes messages to the text input
func (p SearchPanel) Update(msg tea.Msg) (SearchPanel, tea.Cmd) {
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return p, cmd
}

// View renders the panel as a centered modal
func (p SearchPanel) View() string {
	if !p.visible {
		return ""
	}

	modalWidth := p.width * 2 / 3
	if modalWidth < 44 {
		modalWidth = 44
	}
	if modalWidth > 72 {
		modalWidth = 72
	}

	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render("Add from search"))
	b.WriteString("\n\n")
	b.WriteString(p.input.View())
	b.WriteString("\n\n")

	switch p.state {
	case SearchIdle:
		b.WriteString(styles.DimStyle.Render("Type at least 2 characters to search"))
	case SearchLoading:
		b.WriteString(styles.DimStyle.Render("Searching..."))
	case SearchNoResults:
		b.WriteString(styles.DimStyle.Render("No matches found"))
	case SearchResults:
		p.renderResults(&b, modalWidth)
	}

	content := lipgloss.NewStyle().
		Width(modalWidth - 4).
		Render(b.String())

	modal := styles.ModalStyle.
		Width(modalWidth).
		Render(content)

	return lipgloss.Place(p.width, p.height, lipgloss.Center, lipgloss.Center, modal)
}

func (p SearchPanel) renderResults(b *strings.Builder, modalWidth int) {
	for i, result := range p.results {
		badge := "MOV"
		if result.Type == domain.MediaTypeTV {
			badge = "TV "
		}

		title := result.Title
		if result.Year != "" {
			title += " (" + result.Year + ")"
		}
		title = styles.Truncate(title, modalWidth-12)

		line := styles.BadgeStyle.Render(badge) + " "
		if i == p.cursor {
			line += styles.SelectedItemStyle.Render(title)
		} else {
			line += styles.NormalItemStyle.Render(title)
		}

		b.WriteString(line)
		b.WriteString("\n")
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
