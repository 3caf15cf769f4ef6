package tui

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/watchlist/internal/adapter"
	"github.com/mmcdole/watchlist/internal/domain"
	"github.com/mmcdole/watchlist/internal/search"
	"github.com/mmcdole/watchlist/internal/tui/components"
	"github.com/mmcdole/watchlist/internal/watchlist"
)

// ApplicationState represents the current state of the application
type ApplicationState int

const (
	StateBrowsing ApplicationState = iota
	StateSearching
	StateForm
	StateFiltering
	StateImportPrompt
	StateConfirmDelete
	StateHelp
)

const statusTimeout = 4 * time.Second

// Model is the main Bubble Tea model for the application
type Model struct {
	svc *watchlist.Service
	agg *search.Aggregator
	deb *search.Debouncer
	cfg *adapter.Config

	keys   KeyMap
	logger *slog.Logger

	state     ApplicationState
	activeCat int                     // Index into domain.Categories
	cursors   map[domain.Category]int // Per-column cursor positions

	typeFilter  string // "all", "movie" or "tv"
	titleFilter string
	filterInput textinput.Model
	importInput textinput.Model

	searchPanel components.SearchPanel
	form        components.ItemForm

	pendingDelete domain.WatchlistItem

	status    string
	statusErr bool
	width     int
	height    int
}

// NewModel creates the application model
func NewModel(svc *watchlist.Service, agg *search.Aggregator, deb *search.Debouncer, cfg *adapter.Config, logger *slog.Logger) Model {
	if logger == nil {
		logger = slog.Default()
	}

	fi := textinput.New()
	fi.Prompt = "/ "
	fi.CharLimit = 60

	ii := textinput.New()
	ii.Prompt = "import path: "
	ii.Placeholder = watchlist.ExportFileName
	ii.CharLimit = 200

	return Model{
		svc:         svc,
		agg:         agg,
		deb:         deb,
		cfg:         cfg,
		keys:        DefaultKeyMap(),
		logger:      logger,
		cursors:     make(map[domain.Category]int),
		typeFilter:  TypeFilterAll,
		filterInput: fi,
		importInput: ii,
		searchPanel: components.NewSearchPanel(),
		form:        components.NewItemForm(),
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.searchPanel.SetSize(msg.Width, msg.Height)
		m.form.SetSize(msg.Width, msg.Height)
		return m, nil

	case QuerySettledMsg:
		if !search.Searchable(msg.Query) {
			return m, nil
		}
		seq := m.agg.Next()
		m.searchPanel.SetLoading()
		return m, SearchCmd(m.agg, msg.Query, seq)

	case QueryCanceledMsg:
		return m, nil

	case SearchResultsMsg:
		// Discard results of any lookup superseded by a newer settled query
		if m.agg.Stale(msg.Seq) {
			m.logger.Debug("discarding stale search results", "query", msg.Query)
			return m, nil
		}
		if m.state == StateSearching {
			m.searchPanel.SetResults(msg.Results)
		}
		return m, nil

	case ExportDoneMsg:
		if msg.Err != nil {
			return m.withStatus("Export failed: "+msg.Err.Error(), true)
		}
		return m.withStatus("Exported to "+msg.Path, false)

	case ImportDoneMsg:
		if msg.Err != nil {
			if errors.Is(msg.Err, domain.ErrInvalidImport) {
				return m.withStatus("Invalid JSON file", true)
			}
			return m.withStatus("Import failed: "+msg.Err.Error(), true)
		}
		m.cursors = make(map[domain.Category]int)
		return m.withStatus(fmt.Sprintf("Imported %d items", msg.Count), false)

	case StatusMsg:
		return m.withStatus(msg.Message, msg.IsError)

	case ClearStatusMsg:
		m.status = ""
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	// Everything else (cursor blinks and the like) goes to the focused input
	var cmd tea.Cmd
	switch m.state {
	case StateSearching:
		m.searchPanel, cmd = m.searchPanel.Update(msg)
	case StateForm:
		m.form, cmd = m.form.UpdateFocused(msg)
	case StateFiltering:
		m.filterInput, cmd = m.filterInput.Update(msg)
	case StateImportPrompt:
		m.importInput, cmd = m.importInput.Update(msg)
	}
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.state {
	case StateSearching:
		return m.handleSearchKey(msg)
	case StateForm:
		return m.handleFormKey(msg)
	case StateFiltering:
		return m.handleFilterKey(msg)
	case StateImportPrompt:
		return m.handleImportKey(msg)
	case StateConfirmDelete:
		return m.handleConfirmKey(msg)
	case StateHelp:
		m.state = StateBrowsing
		return m, nil
	}
	return m.handleBrowseKey(msg)
}

func (m Model) handleBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.deb.Stop()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.state = StateHelp
		return m, nil

	case key.Matches(msg, m.keys.Left):
		m.activeCat = (m.activeCat + len(domain.Categories) - 1) % len(domain.Categories)
		return m, nil

	case key.Matches(msg, m.keys.Right):
		m.activeCat = (m.activeCat + 1) % len(domain.Categories)
		return m, nil

	case key.Matches(msg, m.keys.Up):
		cat := m.activeCategory()
		if m.cursors[cat] > 0 {
			m.cursors[cat]--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		cat := m.activeCategory()
		if m.cursors[cat] < len(m.columnItems(cat))-1 {
			m.cursors[cat]++
		}
		return m, nil

	case key.Matches(msg, m.keys.Search):
		m.state = StateSearching
		m.searchPanel.Show()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.AddManual):
		m.state = StateForm
		m.form.ShowAdd()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Edit), key.Matches(msg, m.keys.Enter):
		item, ok := m.selectedItem()
		if !ok {
			return m, nil
		}
		m.state = StateForm
		m.form.ShowEdit(item)
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Delete):
		item, ok := m.selectedItem()
		if !ok {
			return m, nil
		}
		m.pendingDelete = item
		m.state = StateConfirmDelete
		return m, nil

	case key.Matches(msg, m.keys.MoveNext):
		return m.moveSelected(func(c domain.Category) domain.Category { return c.Next() })

	case key.Matches(msg, m.keys.MovePrev):
		return m.moveSelected(func(c domain.Category) domain.Category { return c.Prev() })

	case key.Matches(msg, m.keys.Filter):
		m.state = StateFiltering
		m.filterInput.SetValue(m.titleFilter)
		m.filterInput.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.CycleType):
		switch m.typeFilter {
		case TypeFilterAll:
			m.typeFilter = string(domain.MediaTypeMovie)
		case string(domain.MediaTypeMovie):
			m.typeFilter = string(domain.MediaTypeTV)
		default:
			m.typeFilter = TypeFilterAll
		}
		m.clampCursors()
		return m, nil

	case key.Matches(msg, m.keys.Export):
		path := filepath.Join(m.cfg.Storage.ExportPath, watchlist.ExportFileName)
		return m, ExportCmd(m.svc, path)

	case key.Matches(msg, m.keys.Import):
		m.state = StateImportPrompt
		m.importInput.SetValue("")
		m.importInput.Focus()
		return m, textinput.Blink
	}

	return m, nil
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.deb.Stop()
		m.searchPanel.Hide()
		m.state = StateBrowsing
		return m, nil

	case key.Matches(msg, m.keys.Enter):
		result, ok := m.searchPanel.Selected()
		if !ok {
			return m, nil
		}
		m.searchPanel.Hide()
		m.state = StateBrowsing
		return m.addEntry(result.Entry(domain.CategoryPlanning))

	case msg.String() == "down":
		m.searchPanel.CursorDown()
		return m, nil

	case msg.String() == "up":
		m.searchPanel.CursorUp()
		return m, nil
	}

	// Everything else edits the query
	var cmd tea.Cmd
	m.searchPanel, cmd = m.searchPanel.Update(msg)

	query := m.searchPanel.Query()
	if !search.Searchable(query) {
		m.deb.Stop()
		m.searchPanel.Reset()
		return m, cmd
	}

	// Each keystroke cancels the pending quiet period and arms a new one
	ch := m.deb.Schedule(query)
	return m, tea.Batch(cmd, WaitForSettleCmd(ch))
}

func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.form.Hide()
		m.state = StateBrowsing
		return m, nil

	case msg.String() == "tab", msg.String() == "down":
		m.form.NextField()
		return m, nil

	case msg.String() == "shift+tab", msg.String() == "up":
		m.form.PrevField()
		return m, nil

	case key.Matches(msg, m.keys.Enter):
		if m.form.Editing() {
			id := m.form.ItemID()
			m.form.Hide()
			m.state = StateBrowsing
			return m.applyUpdate(id, m.form.Changes())
		}
		entry := m.form.Entry()
		if entry.Title == "" {
			return m.withStatus("Title cannot be empty", true)
		}
		m.form.Hide()
		m.state = StateBrowsing
		return m.addEntry(entry)
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.UpdateFocused(msg)
	return m, cmd
}

func (m Model) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.titleFilter = ""
		m.filterInput.Blur()
		m.state = StateBrowsing
		m.clampCursors()
		return m, nil

	case key.Matches(msg, m.keys.Enter):
		m.filterInput.Blur()
		m.state = StateBrowsing
		return m, nil
	}

	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	m.titleFilter = m.filterInput.Value()
	m.clampCursors()
	return m, cmd
}

func (m Model) handleImportKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.importInput.Blur()
		m.state = StateBrowsing
		return m, nil

	case key.Matches(msg, m.keys.Enter):
		path := strings.TrimSpace(m.importInput.Value())
		m.importInput.Blur()
		m.state = StateBrowsing
		if path == "" {
			return m, nil
		}
		return m, ImportCmd(m.svc, path)
	}

	var cmd tea.Cmd
	m.importInput, cmd = m.importInput.Update(msg)
	return m, cmd
}

func (m Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		item := m.pendingDelete
		m.pendingDelete = domain.WatchlistItem{}
		m.state = StateBrowsing
		if err := m.svc.Delete(item.ID); err != nil && !isPersistWarning(err) {
			return m.withStatus("Delete failed: "+err.Error(), true)
		}
		m.clampCursors()
		return m.withStatus("Deleted "+item.Title, false)

	case key.Matches(msg, m.keys.Deny):
		m.pendingDelete = domain.WatchlistItem{}
		m.state = StateBrowsing
		return m, nil
	}
	return m, nil
}

// addEntry adds a new item, treating a persistence failure as a non-fatal
// warning: the item is in the list either way.
func (m Model) addEntry(entry domain.NewEntry) (tea.Model, tea.Cmd) {
	item, err := m.svc.Add(entry)
	if err != nil && !isPersistWarning(err) {
		return m.withStatus("Add failed: "+err.Error(), true)
	}
	if isPersistWarning(err) {
		return m.withStatus("Added "+item.Title+" (save to disk failed)", true)
	}
	return m.withStatus("Added "+item.Title, false)
}

func (m Model) applyUpdate(id string, upd domain.ItemUpdate) (tea.Model, tea.Cmd) {
	item, err := m.svc.Update(id, upd)
	if err != nil && !isPersistWarning(err) {
		return m.withStatus("Update failed: "+err.Error(), true)
	}
	if isPersistWarning(err) {
		return m.withStatus("Updated "+item.Title+" (save to disk failed)", true)
	}
	return m.withStatus("Updated "+item.Title, false)
}

// moveSelected moves the selected item to an adjacent category: the whole
// drag gesture reduced to a single category mutation.
func (m Model) moveSelected(step func(domain.Category) domain.Category) (tea.Model, tea.Cmd) {
	item, ok := m.selectedItem()
	if !ok {
		return m, nil
	}
	target := step(item.Category)
	moved, err := m.svc.Move(item.ID, target)
	if err != nil && !isPersistWarning(err) {
		return m.withStatus("Move failed: "+err.Error(), true)
	}
	m.clampCursors()
	return m.withStatus(fmt.Sprintf("Moved %s to %s", moved.Title, target.Display()), false)
}

func (m Model) withStatus(text string, isErr bool) (tea.Model, tea.Cmd) {
	m.status = text
	m.statusErr = isErr
	return m, ClearStatusCmd(statusTimeout)
}

func isPersistWarning(err error) bool {
	var warn *domain.PersistWarning
	return errors.As(err, &warn)
}

func (m Model) activeCategory() domain.Category {
	return domain.Categories[m.activeCat]
}

// columnItems returns the visible items for one category column
func (m Model) columnItems(cat domain.Category) []domain.WatchlistItem {
	return visibleItems(m.svc.ByCategory(cat), m.typeFilter, m.titleFilter)
}

func (m Model) selectedItem() (domain.WatchlistItem, bool) {
	cat := m.activeCategory()
	items := m.columnItems(cat)
	cursor := m.cursors[cat]
	if cursor >= len(items) {
		return domain.WatchlistItem{}, false
	}
	return items[cursor], true
}

// clampCursors keeps every column cursor inside its visible item range
func (m *Model) clampCursors() {
	for _, cat := range domain.Categories {
		count := len(m.columnItems(cat))
		if m.cursors[cat] >= count {
			if count == 0 {
				m.cursors[cat] = 0
			} else {
				m.cursors[cat] = count - 1
			}
		}
	}
}
