package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/watchlist/internal/domain"
	"github.com/mmcdole/watchlist/internal/tui/styles"
)

// View renders the application
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	if m.searchPanel.IsVisible() {
		return m.overlay(m.searchPanel.View())
	}
	if m.form.IsVisible() {
		return m.overlay(m.form.View())
	}
	if m.state == StateHelp {
		return m.overlay(m.helpView())
	}
	if m.state == StateConfirmDelete {
		return m.overlay(m.confirmView())
	}

	header := m.headerView()
	columns := m.columnsView()
	detail := m.detailView()
	footer := m.footerView()

	return lipgloss.JoinVertical(lipgloss.Left, header, columns, detail, footer)
}

func (m Model) overlay(content string) string {
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m Model) headerView() string {
	title := styles.TitleStyle.Render("Watchlist")
	count := styles.DimStyle.Render(fmt.Sprintf("%d items", m.svc.Len()))

	filter := ""
	if m.typeFilter != TypeFilterAll {
		filter = styles.BadgeStyle.Render(strings.ToUpper(m.typeFilter))
	}
	if m.titleFilter != "" {
		filter += " " + styles.AccentStyle.Render("/"+m.titleFilter)
	}

	left := title + "  " + count
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(filter) - 2
	if gap < 1 {
		gap = 1
	}
	return " " + left + strings.Repeat(" ", gap) + filter
}

func (m Model) columnsView() string {
	colWidth := m.width/len(domain.Categories) - 2
	if colWidth < 16 {
		colWidth = 16
	}
	colHeight := m.height - 7
	if colHeight < 4 {
		colHeight = 4
	}

	cols := make([]string, 0, len(domain.Categories))
	for i, cat := range domain.Categories {
		cols = append(cols, m.columnView(cat, i == m.activeCat, colWidth, colHeight))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}

func (m Model) columnView(cat domain.Category, active bool, width, height int) string {
	items := m.columnItems(cat)

	title := styles.SubtitleStyle.Render(cat.Display())
	countLine := styles.DimStyle.Render(fmt.Sprintf("%d", len(items)))
	header := title + " " + countLine

	// Window of rows scrolled to keep the cursor visible
	rows := height - 2
	if rows < 1 {
		rows = 1
	}
	start := 0
	cursor := m.cursors[cat]
	if active && cursor >= rows {
		start = cursor - rows + 1
	}
	end := start + rows
	if end > len(items) {
		end = len(items)
	}

	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\n")
	if len(items) == 0 {
		b.WriteString(styles.DimStyle.Render("  (empty)"))
	}
	for i := start; i < end; i++ {
		b.WriteString("\n")
		b.WriteString(m.itemLine(items[i], active && i == cursor, width-2))
	}

	border := styles.InactiveBorder
	if active {
		border = styles.ActiveBorder
	}
	return border.Width(width).Height(height).Render(b.String())
}

func (m Model) itemLine(item domain.WatchlistItem, selected bool, width int) string {
	badge := "MOV"
	if item.Type == domain.MediaTypeTV {
		badge = "TV "
	}
	score := ""
	if item.Rated() {
		score = fmt.Sprintf(" ★%d", item.Score)
	}

	label := styles.Truncate(item.Title, width-len(badge)-len(score)-3)
	line := fmt.Sprintf("%s %s%s", badge, label, score)
	if selected {
		return styles.SelectedItemStyle.Render("▸ " + line)
	}
	return styles.NormalItemStyle.Render("  " + line)
}

func (m Model) detailView() string {
	item, ok := m.selectedItem()
	if !ok {
		return " "
	}
	parts := []string{
		styles.AccentStyle.Render(item.Title),
		item.Type.Display(),
	}
	if item.Rated() {
		parts = append(parts, fmt.Sprintf("★%d/%d", item.Score, domain.MaxScore))
	}
	if item.Notes != "" {
		parts = append(parts, styles.DimStyle.Render(styles.Truncate(item.Notes, m.width/2)))
	}
	if m.cfg.UI.ShowPosters && item.Poster != "" && item.Poster != domain.PlaceholderPoster {
		parts = append(parts, styles.DimStyle.Render(styles.Truncate(item.Poster, m.width/3)))
	}
	return " " + strings.Join(parts, "  ·  ")
}

func (m Model) footerView() string {
	switch m.state {
	case StateFiltering:
		return " " + m.filterInput.View()
	case StateImportPrompt:
		return " " + m.importInput.View()
	}

	if m.status != "" {
		if m.statusErr {
			return " " + styles.ErrorStyle.Render(m.status)
		}
		return " " + styles.SuccessStyle.Render(m.status)
	}

	hints := "s search · a add · e edit · d delete · [/] move · / filter · t type · ? help · q quit"
	return " " + styles.DimStyle.Render(hints)
}

func (m Model) confirmView() string {
	body := fmt.Sprintf("Delete %q?\n\n%s",
		m.pendingDelete.Title,
		styles.DimStyle.Render("y confirm · n cancel"))
	return styles.ModalStyle.Render(body)
}

func (m Model) helpView() string {
	lines := []string{
		styles.TitleStyle.Render("Keys"),
		"",
		"  h/l, tab    switch category",
		"  k/j         move cursor",
		"  enter, e    edit item",
		"  s           search providers",
		"  a           add manually",
		"  d           delete item",
		"  [ / ]       move item between categories",
		"  /           filter by title",
		"  t           cycle type filter",
		"  E           export watchlist.json",
		"  I           import from file",
		"  q           quit",
		"",
		styles.DimStyle.Render("press any key to close"),
	}
	return styles.ModalStyle.Render(strings.Join(lines, "\n"))
}
