package command

import (
	"errors"
	"testing"

	"github.com/atomicstack/bookshelf/internal/menu"
)

func TestExecuteRunsHandlerImmediately(t *testing.T) {
	calls := 0
	bus := New()
	cmd := bus.Execute(Request{ID: "book:sort", Label: "Sort", Handler: func() menu.ActionResult {
		calls++
		return menu.ActionResult{Kind: menu.KindSortByPrice, Info: "Books sorted"}
	}})
	if calls != 1 {
		t.Fatalf("expected handler to run during Execute, got %d calls", calls)
	}
	if cmd == nil {
		t.Fatalf("expected command")
	}
	result, ok := cmd().(menu.ActionResult)
	if !ok {
		t.Fatalf("expected ActionResult message")
	}
	if result.Info != "Books sorted" {
		t.Fatalf("unexpected info %q", result.Info)
	}
	if calls != 1 {
		t.Fatalf("expected command not to rerun handler, got %d calls", calls)
	}
}

func TestExecuteDeliversErrors(t *testing.T) {
	bus := New()
	boom := errors.New("boom")
	cmd := bus.Execute(Request{ID: "file:write", Handler: func() menu.ActionResult {
		return menu.ActionResult{Err: boom}
	}})
	result := cmd().(menu.ActionResult)
	if !errors.Is(result.Err, boom) {
		t.Fatalf("expected boom, got %v", result.Err)
	}
}

func TestExecuteNilHandlerAndNoOp(t *testing.T) {
	bus := New()
	if cmd := bus.Execute(Request{ID: "none"}); cmd != nil {
		t.Fatalf("expected nil command for nil handler")
	}
	if cmd := bus.Execute(Request{ID: "noop", Handler: func() menu.ActionResult { return menu.ActionResult{} }}); cmd != nil {
		t.Fatalf("expected nil command for empty result")
	}
}
