package ui

import (
	"strings"
	"testing"

	"github.com/atomicstack/bookshelf/internal/catalog"
)

func slot(t *testing.T, h *Harness, index int) catalog.Book {
	t.Helper()
	b, err := h.Model().Store().Get(index)
	if err != nil {
		t.Fatalf("get %d: %v", index, err)
	}
	return b
}

func TestInputBookStoresAfterLastField(t *testing.T) {
	h := newTestHarness(t, Options{})
	chooseMenu(t, h, "Input book data")
	enterNumber(h, "3")
	enterText(h, "Dune")
	enterNumber(h, "412")
	if !slot(t, h, 3).IsEmpty() {
		t.Fatalf("expected slot 3 to stay empty until the price is committed")
	}
	enterNumber(h, "25")

	if h.Model().Mode() != ModeNotice {
		t.Fatalf("expected notice, got %v", h.Model().Mode())
	}
	if !strings.Contains(h.View(), "Book data entered") {
		t.Fatalf("expected success notice, got:\n%s", h.View())
	}
	want := catalog.Book{Name: "Dune", Pages: 412, Price: 25}
	if got := slot(t, h, 3); got != want {
		t.Fatalf("expected %#v, got %#v", want, got)
	}
	h.Send(keyEnter)
	if h.Model().Mode() != ModeMenu {
		t.Fatalf("expected menu after notice, got %v", h.Model().Mode())
	}
}

func TestInputBookCancelLeavesSlotUntouched(t *testing.T) {
	h := newTestHarness(t, Options{})
	putBook(t, h, 2, "Emma", 300, 9)
	chooseMenu(t, h, "Input book data")
	enterNumber(h, "2")
	enterText(h, "Replacement")
	h.Type("10")
	h.Send(keyEsc)

	if h.Model().Mode() != ModeMenu {
		t.Fatalf("expected menu after cancel, got %v", h.Model().Mode())
	}
	want := catalog.Book{Name: "Emma", Pages: 300, Price: 9}
	if got := slot(t, h, 2); got != want {
		t.Fatalf("expected %#v, got %#v", want, got)
	}
}

func TestInputBookRejectsOutOfRangeIndex(t *testing.T) {
	h := newTestHarness(t, Options{})
	chooseMenu(t, h, "Input book data")
	enterNumber(h, "99")
	if h.Model().Mode() != ModeNumber {
		t.Fatalf("expected to stay on the index prompt, got %v", h.Model().Mode())
	}
	if !strings.Contains(h.View(), "Number is too big") {
		t.Fatalf("expected validation message, got:\n%s", h.View())
	}
	h.Send(keyEnter)
	if !strings.Contains(h.View(), "Number is too big") {
		t.Fatalf("expected value to be kept after a rejected commit, got:\n%s", h.View())
	}
}

func TestInputBookRejectsBlankName(t *testing.T) {
	h := newTestHarness(t, Options{})
	chooseMenu(t, h, "Input book data")
	enterNumber(h, "1")
	enterText(h, "   ")
	if h.Model().Mode() != ModeText {
		t.Fatalf("expected to stay on the name prompt, got %v", h.Model().Mode())
	}
	if !strings.Contains(h.View(), "Input cannot be empty.") {
		t.Fatalf("expected empty-name message, got:\n%s", h.View())
	}
}

func TestInputBookPagesBounds(t *testing.T) {
	h := newTestHarness(t, Options{})
	chooseMenu(t, h, "Input book data")
	enterNumber(h, "1")
	enterText(h, "Tiny")
	h.Send(keyEnter)
	if !strings.Contains(h.View(), "Number is too small") {
		t.Fatalf("expected zero pages to be rejected, got:\n%s", h.View())
	}
}

func TestInputBookNormalizesName(t *testing.T) {
	h := newTestHarness(t, Options{})
	chooseMenu(t, h, "Input book data")
	enterNumber(h, "0")
	enterText(h, " café ")
	enterNumber(h, "10")
	enterNumber(h, "0")
	if got := slot(t, h, 0).Name; got != "café" {
		t.Fatalf("expected composed name, got %q", got)
	}
}

func TestOutputBookShowsFields(t *testing.T) {
	h := newTestHarness(t, Options{})
	putBook(t, h, 4, "Emma", 300, 9)
	chooseMenu(t, h, "Output book data")
	enterNumber(h, "4")
	view := h.View()
	for _, want := range []string{"Name:", "Emma", "Pages:", "300", "Price:", "9"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in view:\n%s", want, view)
		}
	}
	h.Send(keyEnter)
	if h.Model().Mode() != ModeMenu {
		t.Fatalf("expected menu, got %v", h.Model().Mode())
	}
}

func TestOutputBookEmptySlot(t *testing.T) {
	h := newTestHarness(t, Options{})
	chooseMenu(t, h, "Output book data")
	enterNumber(h, "7")
	if !strings.Contains(h.View(), "Slot 7 is empty") {
		t.Fatalf("expected empty slot notice, got:\n%s", h.View())
	}
}

func TestSortBooksOrdersByPrice(t *testing.T) {
	h := newTestHarness(t, Options{})
	putBook(t, h, 5, "Costly", 10, 50)
	putBook(t, h, 1, "Cheap", 10, 5)
	putBook(t, h, 8, "Middle", 10, 20)
	chooseMenu(t, h, "Sort books by price")
	if !strings.Contains(h.View(), "Books sorted") {
		t.Fatalf("expected sorted notice, got:\n%s", h.View())
	}
	names := []string{slot(t, h, 0).Name, slot(t, h, 1).Name, slot(t, h, 2).Name}
	want := []string{"Cheap", "Middle", "Costly"}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, names)
		}
	}
	if !slot(t, h, 3).IsEmpty() {
		t.Fatalf("expected empty slots after the sorted books")
	}
}

func TestPrintAllBooksShowsTable(t *testing.T) {
	h := newTestHarness(t, Options{})
	putBook(t, h, 0, "Dune", 412, 25)
	putBook(t, h, 6, "Emma", 300, 9)
	chooseMenu(t, h, "Print all books")
	if h.Model().Mode() != ModeTable {
		t.Fatalf("expected table, got %v", h.Model().Mode())
	}
	view := h.View()
	for _, want := range []string{"Index", "Name", "Pages", "Price", "Dune", "Emma", "┌", "┘"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in view:\n%s", want, view)
		}
	}
	h.Send(keyEnter)
	if h.Model().Mode() != ModeMenu {
		t.Fatalf("expected menu, got %v", h.Model().Mode())
	}
}

func TestPrintAllBooksShowsLongNamesInFull(t *testing.T) {
	h := newTestHarness(t, Options{})
	name := strings.Repeat("n", testLimits().MaxName)
	putBook(t, h, 2, name, 10, 1)
	chooseMenu(t, h, "Print all books")
	view := h.View()
	if !strings.Contains(view, name) {
		t.Fatalf("expected full name %q in view:\n%s", name, view)
	}
	if strings.Contains(view, "…") {
		t.Fatalf("expected no truncation in view:\n%s", view)
	}
}

func TestPrintAllBooksEmptyStore(t *testing.T) {
	h := newTestHarness(t, Options{})
	chooseMenu(t, h, "Print all books")
	if !strings.Contains(h.View(), noEntriesMessage) {
		t.Fatalf("expected empty message, got:\n%s", h.View())
	}
}

func TestMenuKeepsHighlightAfterAction(t *testing.T) {
	h := newTestHarness(t, Options{})
	chooseMenu(t, h, "Sort books by price")
	h.Send(keyEnter)
	item, ok := h.Model().menu.Current()
	if !ok || item.Label != "Sort books by price" {
		t.Fatalf("expected highlight to stay on sort, got %#v", item)
	}
}

func TestMenuWrapsFromTop(t *testing.T) {
	h := newTestHarness(t, Options{})
	h.Send(keyUp)
	item, _ := h.Model().menu.Current()
	if item.Label != "Exit" {
		t.Fatalf("expected wrap to Exit, got %q", item.Label)
	}
}
