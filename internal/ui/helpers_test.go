package ui

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/atomicstack/bookshelf/internal/catalog"
	"github.com/atomicstack/bookshelf/internal/logging"
	tea "github.com/charmbracelet/bubbletea"
)

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyCtrlC = tea.KeyMsg{Type: tea.KeyCtrlC}
)

func testLimits() catalog.Limits {
	return catalog.Limits{Capacity: 10, MaxName: 20, MaxPages: 1500, MaxPrice: 100000}
}

func newTestHarness(t *testing.T, opts Options) *Harness {
	t.Helper()
	logging.Configure(filepath.Join(t.TempDir(), "ui.log"))
	t.Cleanup(func() { logging.Configure("") })
	return NewHarness(NewModel(context.Background(), catalog.New(testLimits()), opts))
}

// chooseMenu highlights the main menu entry titled label and presses enter.
func chooseMenu(t *testing.T, h *Harness, label string) {
	t.Helper()
	m := h.Model()
	if m.Mode() != ModeMenu {
		t.Fatalf("expected main menu, got %v", m.Mode())
	}
	for i := 0; i < len(m.registry.Items()); i++ {
		if item, ok := m.menu.Current(); ok && item.Label == label {
			h.Send(keyEnter)
			return
		}
		h.Send(keyDown)
	}
	t.Fatalf("menu entry %q not found", label)
}

// enterNumber types digits and commits them.
func enterNumber(h *Harness, digits string) {
	h.Type(digits)
	h.Send(keyEnter)
}

func enterText(h *Harness, text string) {
	h.Type(text)
	h.Send(keyEnter)
}

func putBook(t *testing.T, h *Harness, index int, name string, pages, price int) {
	t.Helper()
	if err := h.Model().Store().Put(index, catalog.Book{Name: name, Pages: pages, Price: price}); err != nil {
		t.Fatalf("put: %v", err)
	}
}

func windowSize(width, height int) tea.WindowSizeMsg {
	return tea.WindowSizeMsg{Width: width, Height: height}
}
