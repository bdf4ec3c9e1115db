package ui

import (
	"fmt"
	"strconv"

	"github.com/atomicstack/bookshelf/internal/catalog"
	"github.com/atomicstack/bookshelf/internal/format/table"
	"github.com/atomicstack/bookshelf/internal/logging/events"
	"github.com/atomicstack/bookshelf/internal/menu"
	"github.com/atomicstack/bookshelf/internal/ui/command"
	"github.com/atomicstack/bookshelf/internal/ui/widget"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	promptBookIndex = "Enter book index: "
	promptBookName  = "Enter book name: "
	promptBookPages = "Enter book pages: "
	promptBookPrice = "Enter book price: "
	promptBookID    = "Enter book id: "
)

type draftStep int

const (
	stepIndex draftStep = iota
	stepName
	stepPages
	stepPrice
)

// bookDraft collects the fields of a book until the price is committed.
type bookDraft struct {
	step  draftStep
	index int
	book  catalog.Book
}

func (m *Model) startNumber(prompt string, min, max int) {
	m.number = widget.NewNumberInput(prompt, min, max)
	m.setMode(ModeNumber)
}

func (m *Model) startText(prompt string, maxLen int) {
	m.text = widget.NewTextInput(prompt, maxLen)
	m.setMode(ModeText)
}

func (m *Model) handleNumberKey(msg tea.KeyMsg) tea.Cmd {
	if m.number == nil || m.action == nil {
		m.returnToMenu()
		return nil
	}
	switch m.number.Update(msg) {
	case widget.Cancelled:
		m.returnToMenu()
	case widget.Committed:
		value := m.number.Value()
		m.number = nil
		switch m.action.Kind {
		case menu.KindInputBook:
			return m.advanceDraft(value)
		case menu.KindOutputBook:
			m.showBook(value)
		default:
			m.returnToMenu()
		}
	}
	return nil
}

func (m *Model) handleTextKey(msg tea.KeyMsg) tea.Cmd {
	if m.text == nil || m.draft == nil {
		m.returnToMenu()
		return nil
	}
	switch m.text.Update(msg) {
	case widget.Cancelled:
		m.returnToMenu()
	case widget.Committed:
		limits := m.store.Limits()
		name := catalog.NormalizeName(m.text.Value(), limits.MaxName)
		if name == "" {
			m.text.RejectEmpty()
			return nil
		}
		m.text = nil
		m.draft.book.Name = name
		m.draft.step = stepPages
		m.startNumber(promptBookPages, catalog.MinPages, limits.MaxPages)
	}
	return nil
}

func (m *Model) advanceDraft(value int) tea.Cmd {
	d := m.draft
	if d == nil {
		m.returnToMenu()
		return nil
	}
	limits := m.store.Limits()
	switch d.step {
	case stepIndex:
		d.index = value
		d.step = stepName
		m.startText(promptBookName, limits.MaxName)
	case stepPages:
		d.book.Pages = value
		d.step = stepPrice
		m.startNumber(promptBookPrice, catalog.MinPrice, limits.MaxPrice)
	case stepPrice:
		d.book.Price = value
		m.draft = nil
		opt := m.action
		return m.bus.Execute(command.Request{
			ID:    opt.Kind.ID(),
			Label: opt.Title,
			Handler: func() menu.ActionResult {
				return m.putBook(d.index, d.book)
			},
		})
	default:
		m.returnToMenu()
	}
	return nil
}

// showBook displays a single slot, or notes that it is empty.
func (m *Model) showBook(index int) {
	book, err := m.store.Get(index)
	if err != nil {
		m.showNotice(noticeError, err.Error())
		return
	}
	events.Store.Get(index, book.IsEmpty())
	if book.IsEmpty() {
		m.showNotice(noticeInfo, fmt.Sprintf("Slot %d is empty", index))
		return
	}
	lines := table.Format([][]string{
		{"Name:", book.Name},
		{"Pages:", strconv.Itoa(book.Pages)},
		{"Price:", strconv.Itoa(book.Price)},
	}, nil)
	m.showNotice(noticeInfo, lines...)
}
