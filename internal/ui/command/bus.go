package command

import (
	"fmt"

	"github.com/atomicstack/bookshelf/internal/logging/events"
	"github.com/atomicstack/bookshelf/internal/menu"
	tea "github.com/charmbracelet/bubbletea"
)

// Handler performs a menu action against the catalog.
type Handler func() menu.ActionResult

// Request encapsulates an action invocation.
type Request struct {
	ID      string
	Label   string
	Handler Handler
}

// Bus coordinates the execution of menu actions.
type Bus struct{}

// New initialises a command bus instance.
func New() *Bus {
	return &Bus{}
}

// Execute runs the handler immediately, so the catalog is only touched from
// the caller's goroutine, and returns a command that delivers the result.
func (b *Bus) Execute(req Request) tea.Cmd {
	events.Command.Queue(req.ID, req.Label)
	if req.Handler == nil {
		events.Command.Skip(req.ID, req.Label)
		return nil
	}
	result := req.Handler()
	if result.Info == "" && result.Err == nil {
		events.Command.NoOp(req.ID, req.Label)
		return nil
	}
	events.Command.Result(req.ID, req.Label, fmt.Sprintf("%T", result))
	return func() tea.Msg {
		return result
	}
}
