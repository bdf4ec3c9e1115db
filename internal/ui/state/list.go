package state

import (
	"github.com/atomicstack/bookshelf/internal/menu"
)

// List encapsulates navigator state such as cursor position, filter, and viewport.
type List struct {
	Title          string
	Items          []menu.Item
	Full           []menu.Item
	Filter         string
	FilterCursor   int
	Cursor         int
	LastCursor     int
	ViewportOffset int
}

// NewList constructs a List with the cursor on the first item.
func NewList(title string, items []menu.Item) *List {
	l := &List{
		Title:      title,
		LastCursor: -1,
	}
	l.UpdateItems(items)
	l.Cursor = 0
	return l
}

// IndexOf returns the index of id among the visible items.
func (l *List) IndexOf(id string) int {
	return indexOf(l.Items, id)
}

// FullIndexOf returns the index of id among all items regardless of the filter.
func (l *List) FullIndexOf(id string) int {
	return indexOf(l.Full, id)
}

// Current returns the highlighted item.
func (l *List) Current() (menu.Item, bool) {
	if l.Cursor < 0 || l.Cursor >= len(l.Items) {
		return menu.Item{}, false
	}
	return l.Items[l.Cursor], true
}

// UpdateItems replaces the item set, re-applying the filter and keeping the
// viewport where possible.
func (l *List) UpdateItems(items []menu.Item) {
	prevOffset := l.ViewportOffset
	l.Full = CloneItems(items)
	l.applyFilter()
	if len(l.Items) == 0 {
		l.ViewportOffset = 0
		return
	}
	if prevOffset < 0 {
		prevOffset = 0
	}
	if prevOffset > len(l.Items)-1 {
		l.ViewportOffset = 0
		return
	}
	l.ViewportOffset = prevOffset
}

func indexOf(items []menu.Item, id string) int {
	if id == "" {
		return -1
	}
	for i, item := range items {
		if item.ID == id {
			return i
		}
	}
	return -1
}
