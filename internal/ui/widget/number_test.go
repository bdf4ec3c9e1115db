package widget

import (
	"strconv"
	"strings"
	"testing"

	"github.com/atomicstack/bookshelf/internal/catalog"
)

func TestNumberInputCommitsTypedDigits(t *testing.T) {
	n := NewNumberInput("Enter index: ", 0, 299)
	typeEach(n, "123")
	if got := n.Value(); got != 123 {
		t.Fatalf("expected 123, got %d", got)
	}
	if status := n.Update(keyEnter); status != Committed {
		t.Fatalf("expected committed, got %v", status)
	}
	if n.Validation() != "" {
		t.Fatalf("expected no validation message, got %q", n.Validation())
	}
}

func TestNumberInputTooBigThenBackspace(t *testing.T) {
	n := NewNumberInput("Enter index: ", 0, 299)
	typeEach(n, "3000")
	if status := n.Update(keyEnter); status != Editing {
		t.Fatalf("expected editing after out of range commit, got %v", status)
	}
	if n.Validation() != "Number is too big" {
		t.Fatalf("unexpected validation %q", n.Validation())
	}
	if n.Value() != 3000 {
		t.Fatalf("expected value to be kept, got %d", n.Value())
	}
	n.Update(keyBackspace)
	if n.Validation() != "" {
		t.Fatalf("expected backspace to clear validation, got %q", n.Validation())
	}
	n.Update(keyBackspace)
	if n.Value() != 30 {
		t.Fatalf("expected 30, got %d", n.Value())
	}
	if status := n.Update(keyEnter); status != Committed {
		t.Fatalf("expected committed, got %v", status)
	}
	if n.Value() != 30 {
		t.Fatalf("expected 30, got %d", n.Value())
	}
}

func TestNumberInputTooSmall(t *testing.T) {
	n := NewNumberInput("Enter pages: ", 1, 1500)
	if status := n.Update(keyEnter); status != Editing {
		t.Fatalf("expected editing, got %v", status)
	}
	if n.Validation() != "Number is too small" {
		t.Fatalf("unexpected validation %q", n.Validation())
	}
	if !strings.Contains(n.View(), "Number is too small") {
		t.Fatalf("expected view to show validation, got %q", n.View())
	}
}

func TestNumberInputBackspaceOnZero(t *testing.T) {
	n := NewNumberInput("n: ", 0, 10)
	n.Update(keyBackspace)
	if n.Value() != 0 {
		t.Fatalf("expected 0, got %d", n.Value())
	}
}

func TestNumberInputIgnoresOtherKeys(t *testing.T) {
	n := NewNumberInput("n: ", 0, 10)
	typeEach(n, "4")
	n.Update(runes("x"))
	n.Update(keyUp)
	n.Update(keySpace)
	n.Update(runes("1a"))
	if n.Value() != 4 {
		t.Fatalf("expected 4, got %d", n.Value())
	}
}

func TestNumberInputCancel(t *testing.T) {
	n := NewNumberInput("n: ", 0, 10)
	typeEach(n, "7")
	if status := n.Update(keyEsc); status != Cancelled {
		t.Fatalf("expected cancelled, got %v", status)
	}
}

func TestNumberInputSaturates(t *testing.T) {
	n := NewNumberInput("n: ", 0, 10)
	typeEach(n, strings.Repeat("9", 30))
	if n.Value() != maxAccumulator {
		t.Fatalf("expected saturation at %d, got %d", maxAccumulator, n.Value())
	}
	n.Update(keyEnter)
	if n.Validation() != "Number is too big" {
		t.Fatalf("unexpected validation %q", n.Validation())
	}
}

func TestNumberInputViewShowsPromptAndValue(t *testing.T) {
	n := NewNumberInput("Enter price: ", 0, 100000)
	typeEach(n, "250")
	view := n.View()
	if !strings.Contains(view, "Enter price: ") || !strings.Contains(view, "250") {
		t.Fatalf("unexpected view %q", view)
	}
}

func TestNumberInputReachesLargestLimit(t *testing.T) {
	n := NewNumberInput("n: ", 0, catalog.MaxFieldValue)
	typeEach(n, strconv.Itoa(catalog.MaxFieldValue))
	if status := n.Update(keyEnter); status != Committed {
		t.Fatalf("expected the largest valid limit to commit, got %v (%q)", status, n.Validation())
	}
	if n.Value() != catalog.MaxFieldValue {
		t.Fatalf("expected %d, got %d", catalog.MaxFieldValue, n.Value())
	}
}
