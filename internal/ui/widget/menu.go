package widget

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/atomicstack/bookshelf/internal/logging/events"
	"github.com/atomicstack/bookshelf/internal/menu"
	"github.com/atomicstack/bookshelf/internal/ui/state"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const indicator = "▌"

// Menu highlights one of a fixed set of labels. Up and Down wrap around; Enter
// commits the highlighted entry.
type Menu struct {
	prompt   string
	list     *state.List
	filter   bool
	selected int
	pageSize int
	keys     KeyMap
}

// NewMenu builds a navigator over labels with the first entry highlighted.
func NewMenu(prompt string, labels []string) *Menu {
	items := make([]menu.Item, len(labels))
	for i, label := range labels {
		items[i] = menu.Item{ID: strconv.Itoa(i), Label: label}
	}
	return NewMenuItems(prompt, items)
}

// NewMenuItems builds a navigator over items whose IDs must be unique.
func NewMenuItems(prompt string, items []menu.Item) *Menu {
	return &Menu{
		prompt:   prompt,
		list:     state.NewList(prompt, items),
		selected: -1,
		keys:     DefaultKeyMap,
	}
}

// EnableFilter lets printable keys narrow the entries with a fuzzy query.
func (m *Menu) EnableFilter() {
	m.filter = true
}

// Update applies a single key press.
func (m *Menu) Update(msg tea.KeyMsg) Status {
	l := m.list
	switch {
	case key.Matches(msg, m.keys.Up):
		if l.MoveCursorUp() {
			events.UI.MenuCursor(m.prompt, l.Cursor)
		}
	case key.Matches(msg, m.keys.Down):
		if l.MoveCursorDown() {
			events.UI.MenuCursor(m.prompt, l.Cursor)
		}
	case key.Matches(msg, m.keys.PageUp):
		l.MoveCursorPageUp(m.pageHint())
	case key.Matches(msg, m.keys.PageDown):
		l.MoveCursorPageDown(m.pageHint())
	case key.Matches(msg, m.keys.Home):
		l.MoveCursorHome()
	case key.Matches(msg, m.keys.End):
		l.MoveCursorEnd()
	case key.Matches(msg, m.keys.Select):
		item, ok := l.Current()
		if !ok {
			return Editing
		}
		m.selected = l.FullIndexOf(item.ID)
		events.UI.MenuEnter(item.ID, item.Label)
		return Committed
	case m.filter && key.Matches(msg, m.keys.Cancel):
		if l.ClearFilter() {
			events.Filter.Cleared(m.prompt)
		}
	case m.filter && key.Matches(msg, m.keys.Backspace):
		if l.DeleteFilterRuneBackward() {
			events.Filter.Backspace(m.prompt, l.Filter)
		}
	case m.filter && key.Matches(msg, m.keys.DeleteWord):
		if l.DeleteFilterWordBackward() {
			events.Filter.Backspace(m.prompt, l.Filter)
		}
	case m.filter && filterable(msg):
		if l.InsertFilterText(string(msg.Runes)) {
			events.Filter.Append(m.prompt, l.Filter)
		}
	}
	return Editing
}

// defaultPageSize applies until the first View call reports the real height.
const defaultPageSize = 10

func (m *Menu) pageHint() int {
	if m.pageSize > 0 {
		return m.pageSize
	}
	return defaultPageSize
}

// Selected returns the committed index into the original labels, or -1.
func (m *Menu) Selected() int {
	return m.selected
}

// Cursor returns the highlighted position among the visible entries.
func (m *Menu) Cursor() int {
	return m.list.Cursor
}

// Current returns the highlighted entry.
func (m *Menu) Current() (menu.Item, bool) {
	return m.list.Current()
}

// Filter returns the active filter query.
func (m *Menu) Filter() string {
	return m.list.Filter
}

// Prompt returns the title drawn above the entries.
func (m *Menu) Prompt() string {
	return m.prompt
}

// View renders the prompt and up to height-1 entries around the cursor. A
// non-positive height draws every entry.
func (m *Menu) View(height int) string {
	l := m.list
	lines := make([]string, 0, len(l.Items)+2)
	lines = append(lines, styles.Header.Render(m.prompt))
	visible := height - 1
	if m.filter {
		visible--
	}
	if height > 0 && visible < 1 {
		visible = 1
	}
	if height <= 0 {
		visible = 0
	}
	m.pageSize = visible
	start, end := l.Window(visible)
	if len(l.Items) == 0 {
		msg := "(no entries)"
		if l.Filter != "" {
			msg = fmt.Sprintf("No matches for %q", l.Filter)
		}
		lines = append(lines, styles.Info.Render(msg))
	}
	for i := start; i < end; i++ {
		lines = append(lines, m.itemLine(l.Items[i].Label, i == l.Cursor))
	}
	if m.filter {
		lines = append(lines, m.filterLine())
	}
	return strings.Join(lines, "\n")
}

func (m *Menu) itemLine(label string, highlighted bool) string {
	if highlighted {
		return styles.SelectedItemIndicator.Render(indicator) + styles.SelectedItem.Render(" "+label)
	}
	return styles.ItemIndicator.Render(indicator) + styles.Item.Render(" "+label)
}

func (m *Menu) filterLine() string {
	prompt := styles.FilterPrompt.Render("» ")
	if m.list.Filter == "" {
		return prompt + styles.FilterPlaceholder.Render("type to filter")
	}
	return prompt + styles.Filter.Render(m.list.Filter)
}

func filterable(msg tea.KeyMsg) bool {
	if msg.Alt || len(msg.Runes) == 0 {
		return false
	}
	if msg.Type != tea.KeyRunes && msg.Type != tea.KeySpace {
		return false
	}
	for _, r := range msg.Runes {
		if unicode.IsControl(r) {
			return false
		}
	}
	return true
}
