package widget

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

var bookMenu = []string{"Input", "Output", "Sort", "Print", "Write", "Read", "Exit"}

func TestMenuWrapsUpFromFirst(t *testing.T) {
	m := NewMenu("Main menu", bookMenu)
	m.Update(keyUp)
	if m.Cursor() != len(bookMenu)-1 {
		t.Fatalf("expected cursor %d, got %d", len(bookMenu)-1, m.Cursor())
	}
	if status := m.Update(keyEnter); status != Committed {
		t.Fatalf("expected committed, got %v", status)
	}
	if m.Selected() != 6 {
		t.Fatalf("expected 6, got %d", m.Selected())
	}
}

func TestMenuWrapsDownFromLast(t *testing.T) {
	m := NewMenu("Main menu", bookMenu)
	for i := 0; i < len(bookMenu); i++ {
		m.Update(keyDown)
	}
	if m.Cursor() != 0 {
		t.Fatalf("expected wrap to 0, got %d", m.Cursor())
	}
}

func TestMenuSelectedBeforeCommit(t *testing.T) {
	m := NewMenu("Main menu", bookMenu)
	if m.Selected() != -1 {
		t.Fatalf("expected -1 before commit, got %d", m.Selected())
	}
	m.Update(keyDown)
	m.Update(keyDown)
	m.Update(keyEnter)
	if m.Selected() != 2 {
		t.Fatalf("expected 2, got %d", m.Selected())
	}
}

func TestMenuIgnoresOtherKeysWithoutFilter(t *testing.T) {
	m := NewMenu("Main menu", bookMenu)
	m.Update(keyDown)
	for _, msg := range []string{"q", "x", "1"} {
		if status := m.Update(runes(msg)); status != Editing {
			t.Fatalf("expected editing for %q, got %v", msg, status)
		}
	}
	m.Update(keyEsc)
	if m.Cursor() != 1 {
		t.Fatalf("expected cursor 1, got %d", m.Cursor())
	}
	if m.Filter() != "" {
		t.Fatalf("expected no filter, got %q", m.Filter())
	}
}

func TestMenuHomeEnd(t *testing.T) {
	m := NewMenu("Main menu", bookMenu)
	m.Update(keyEnd)
	if m.Cursor() != 6 {
		t.Fatalf("expected 6, got %d", m.Cursor())
	}
	m.Update(keyHome)
	if m.Cursor() != 0 {
		t.Fatalf("expected 0, got %d", m.Cursor())
	}
}

func TestMenuPageDownUsesRenderedHeight(t *testing.T) {
	m := NewMenu("Main menu", bookMenu)
	m.View(4)
	m.Update(keyPgDown)
	if m.Cursor() != 3 {
		t.Fatalf("expected 3, got %d", m.Cursor())
	}
}

func TestMenuFilterResolvesOriginalIndex(t *testing.T) {
	m := NewMenu("Select file", []string{"../", "alpha.csv", "beta.csv", "Save", "New file", "Exit"})
	m.EnableFilter()
	typeEach(m, "beta")
	if m.Filter() != "beta" {
		t.Fatalf("expected filter beta, got %q", m.Filter())
	}
	if status := m.Update(keyEnter); status != Committed {
		t.Fatalf("expected committed, got %v", status)
	}
	if m.Selected() != 2 {
		t.Fatalf("expected original index 2, got %d", m.Selected())
	}
}

func TestMenuFilterBackspaceAndClear(t *testing.T) {
	m := NewMenu("Select file", []string{"alpha", "beta"})
	m.EnableFilter()
	typeEach(m, "zz")
	if _, ok := m.Current(); ok {
		t.Fatalf("expected no matches")
	}
	if status := m.Update(keyEnter); status != Editing {
		t.Fatalf("expected enter with no matches to be ignored, got %v", status)
	}
	m.Update(keyBackspace)
	if m.Filter() != "z" {
		t.Fatalf("expected z, got %q", m.Filter())
	}
	m.Update(keyEsc)
	if m.Filter() != "" {
		t.Fatalf("expected cleared filter, got %q", m.Filter())
	}
	if _, ok := m.Current(); !ok {
		t.Fatalf("expected entries after clearing filter")
	}
}

func TestMenuFilterDeleteWord(t *testing.T) {
	m := NewMenu("Select file", []string{"books new", "books old"})
	m.EnableFilter()
	typeEach(m, "books")
	m.Update(keySpace)
	typeEach(m, "ol")
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlW})
	if m.Filter() != "books " {
		t.Fatalf("expected trailing word removed, got %q", m.Filter())
	}
}

func TestMenuViewScrollsToCursor(t *testing.T) {
	labels := make([]string, 20)
	for i := range labels {
		labels[i] = strings.Repeat("x", i+1)
	}
	m := NewMenu("Long", labels)
	m.Update(keyUp)
	view := m.View(5)
	lines := strings.Split(view, "\n")
	if len(lines) != 5 {
		t.Fatalf("expected 5 lines, got %d: %q", len(lines), view)
	}
	if !strings.Contains(lines[4], strings.Repeat("x", 20)) {
		t.Fatalf("expected last entry to be visible, got %q", lines[4])
	}
}

func TestMenuViewShowsPromptAndEntries(t *testing.T) {
	m := NewMenu("Main menu", bookMenu)
	view := m.View(0)
	for _, want := range append([]string{"Main menu"}, bookMenu...) {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in view %q", want, view)
		}
	}
}
