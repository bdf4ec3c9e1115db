// Package widget holds the keyboard-driven editors used by the book catalog
// screens: a numeric field, a bounded text field, and a wrapping menu.
//
// Each widget consumes one tea.KeyMsg per Update call and reports a Status.
// Widgets never block and never touch the terminal; the owning model renders
// their View output and decides what to do once a widget leaves Editing.
package widget

import "github.com/atomicstack/bookshelf/internal/theme"

// Status reports the state of a widget after it consumed a key.
type Status int

const (
	Editing Status = iota
	Committed
	Cancelled
)

func (s Status) String() string {
	switch s {
	case Editing:
		return "editing"
	case Committed:
		return "committed"
	case Cancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

var styles = theme.Default()
