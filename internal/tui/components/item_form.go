package components

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/watchlist/internal/domain"
	"github.com/mmcdole/watchlist/internal/tui/styles"
)

// Form field indices
const (
	fieldTitle = iota
	fieldPoster
	fieldType
	fieldCategory
	fieldScore
	fieldNotes
	fieldCount
)

var fieldLabels = [fieldCount]string{
	"Title",
	"Poster URL",
	"Type (movie/tv)",
	"Category",
	"Score (0-10, 0 = unrated)",
	"Notes",
}

// ItemForm is the add/edit modal for a watchlist item. In edit mode the
// media type is fixed at creation and cannot be changed.
type ItemForm struct {
	inputs  [fieldCount]textinput.Model
	focus   int
	visible bool
	editing bool
	itemID  string
	width   int
	height  int
}

// NewItemForm creates the add/edit form component
func NewItemForm() ItemForm {
	var f ItemForm
	for i := range f.inputs {
		ti := textinput.New()
		ti.CharLimit = 300
		ti.Width = 48
		ti.Prompt = "> "
		f.inputs[i] = ti
	}
	return f
}

// ShowAdd opens the form blank for a manual entry
func (f *ItemForm) ShowAdd() {
	f.visible = true
	f.editing = false
	f.itemID = ""
	for i := range f.inputs {
		f.inputs[i].SetValue("")
	}
	f.inputs[fieldType].SetValue(string(domain.MediaTypeMovie))
	f.inputs[fieldCategory].SetValue(string(domain.CategoryPlanning))
	f.setFocus(fieldTitle)
}

// ShowEdit opens the form pre-filled with an existing item
func (f *ItemForm) ShowEdit(item domain.WatchlistItem) {
	f.visible = true
	f.editing = true
	f.itemID = item.ID
	f.inputs[fieldTitle].SetValue(item.Title)
	f.inputs[fieldPoster].SetValue(item.Poster)
	f.inputs[fieldType].SetValue(string(item.Type))
	f.inputs[fieldCategory].SetValue(string(item.Category))
	f.inputs[fieldScore].SetValue(strconv.Itoa(item.Score))
	f.inputs[fieldNotes].SetValue(item.Notes)
	f.setFocus(fieldTitle)
}

// Hide closes the form
func (f *ItemForm) Hide() {
	f.visible = false
	for i := range f.inputs {
		f.inputs[i].Blur()
	}
}

// IsVisible returns true if the form is open
func (f ItemForm) IsVisible() bool {
	return f.visible
}

// Editing returns true in edit mode, false in add mode
func (f ItemForm) Editing() bool {
	return f.editing
}

// ItemID returns the id of the item being edited
func (f ItemForm) ItemID() string {
	return f.itemID
}

// NextField advances focus, skipping the locked type field when editing
func (f *ItemForm) NextField() {
	next := (f.focus + 1) % fieldCount
	if f.editing && next == fieldType {
		next++
	}
	f.setFocus(next)
}

// PrevField moves focus back, skipping the locked type field when editing
func (f *ItemForm) PrevField() {
	prev := (f.focus + fieldCount - 1) % fieldCount
	if f.editing && prev == fieldType {
		prev--
	}
	f.setFocus(prev)
}

func (f *ItemForm) setFocus(idx int) {
	f.focus = idx
	for i := range f.inputs {
		if i == idx {
			f.inputs[i].Focus()
		} else {
			f.inputs[i].Blur()
		}
	}
}

// Entry assembles the creation payload from the form (add mode).
// Blank posters fall back to the placeholder.
func (f ItemForm) Entry() domain.NewEntry {
	poster := strings.TrimSpace(f.inputs[fieldPoster].Value())
	if poster == "" {
		poster = domain.PlaceholderPoster
	}
	return domain.NewEntry{
		Title:    strings.TrimSpace(f.inputs[fieldTitle].Value()),
		Type:     domain.MediaType(strings.TrimSpace(f.inputs[fieldType].Value())),
		Poster:   poster,
		Category: domain.Category(strings.TrimSpace(f.inputs[fieldCategory].Value())),
		Score:    f.score(),
		Notes:    f.inputs[fieldNotes].Value(),
	}
}

// Changes assembles the partial merge from the form (edit mode)
func (f ItemForm) Changes() domain.ItemUpdate {
	title := strings.TrimSpace(f.inputs[fieldTitle].Value())
	poster := strings.TrimSpace(f.inputs[fieldPoster].Value())
	category := domain.Category(strings.TrimSpace(f.inputs[fieldCategory].Value()))
	score := f.score()
	notes := f.inputs[fieldNotes].Value()
	return domain.ItemUpdate{
		Title:    &title,
		Poster:   &poster,
		Category: &category,
		Score:    &score,
		Notes:    &notes,
	}
}

func (f ItemForm) score() int {
	n, err := strconv.Atoi(strings.TrimSpace(f.inputs[fieldScore].Value()))
	if err != nil {
		return 0
	}
	return n
}

// SetSize updates the component dimensions
func (f *ItemForm) SetSize(width, height int) {
	f.width = width
	f.height = height
}

// UpdateFocused passes a message to the focused input
func (f ItemForm) UpdateFocused(msg tea.Msg) (ItemForm, tea.Cmd) {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f, cmd
}

// View renders the form as a centered modal
func (f ItemForm) View() string {
	if !f.visible {
		return ""
	}

	var b strings.Builder
	if f.editing {
		b.WriteString(styles.TitleStyle.Render("Edit item"))
	} else {
		b.WriteString(styles.TitleStyle.Render("Add manually"))
	}
	b.WriteString("\n\n")

	for i := range f.inputs {
		if f.editing && i == fieldType {
			b.WriteString(styles.DimStyle.Render(fieldLabels[i]))
			b.WriteString("\n")
			b.WriteString(styles.DimStyle.Render("  " + f.inputs[i].Value() + " (fixed)"))
			b.WriteString("\n")
			continue
		}
		label := fieldLabels[i]
		if i == f.focus {
			b.WriteString(styles.AccentStyle.Render(label))
		} else {
			b.WriteString(styles.SubtitleStyle.Render(label))
		}
		b.WriteString("\n")
		b.WriteString(f.inputs[i].View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.DimStyle.Render("tab/shift+tab fields · enter save · esc cancel"))

	modal := styles.ModalStyle.Width(58).Render(b.String())
	return lipgloss.Place(f.width, f.height, lipgloss.Center, lipgloss.Center, modal)
}
