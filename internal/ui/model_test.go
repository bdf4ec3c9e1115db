package ui

import (
	"context"
	"strings"
	"testing"

	"github.com/atomicstack/bookshelf/internal/catalog"
	"github.com/atomicstack/bookshelf/internal/menu"
)

func TestNewModelStartsOnMainMenu(t *testing.T) {
	m := NewModel(context.Background(), nil, Options{})
	if m.Mode() != ModeMenu {
		t.Fatalf("expected menu mode, got %v", m.Mode())
	}
	if m.Store().Len() != catalog.DefaultCapacity {
		t.Fatalf("expected default capacity, got %d", m.Store().Len())
	}
	item, ok := m.menu.Current()
	if !ok || item.ID != menu.KindInputBook.ID() {
		t.Fatalf("expected first entry highlighted, got %#v", item)
	}
}

func TestMenuHeaderRoot(t *testing.T) {
	m := NewModel(context.Background(), nil, Options{})
	if got := m.menuHeader(); got != defaultRootTitle {
		t.Fatalf("expected %q, got %q", defaultRootTitle, got)
	}
}

func TestMenuHeaderShowsAction(t *testing.T) {
	h := newTestHarness(t, Options{})
	chooseMenu(t, h, "Output book data")
	want := "main menu→output book data"
	if got := h.Model().menuHeader(); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
	if !strings.Contains(h.View(), "Enter book id: ") {
		t.Fatalf("expected id prompt, got:\n%s", h.View())
	}
}

func TestFixedSizeOverridesResize(t *testing.T) {
	h := newTestHarness(t, Options{Width: 60})
	h.Send(windowSize(100, 30))
	m := h.Model()
	if m.width != 60 {
		t.Fatalf("expected fixed width 60, got %d", m.width)
	}
	if m.height != 30 {
		t.Fatalf("expected height 30, got %d", m.height)
	}
}

func TestCtrlCQuitsFromAnyScreen(t *testing.T) {
	h := newTestHarness(t, Options{})
	chooseMenu(t, h, "Input book data")
	h.Type("4")
	h.Send(keyCtrlC)
	if !h.Quit() {
		t.Fatalf("expected quit")
	}
}

func TestExitQuits(t *testing.T) {
	h := newTestHarness(t, Options{})
	chooseMenu(t, h, "Exit")
	if !h.Quit() {
		t.Fatalf("expected exit to quit")
	}
}
