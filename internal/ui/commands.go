package ui

import (
	"fmt"

	"github.com/atomicstack/bookshelf/internal/catalog"
	"github.com/atomicstack/bookshelf/internal/logging"
	"github.com/atomicstack/bookshelf/internal/logging/events"
	"github.com/atomicstack/bookshelf/internal/menu"
	"github.com/atomicstack/bookshelf/internal/persist"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	infoBookEntered = "Book data entered"
	infoSorted      = "Books sorted"
	infoWritten     = "File written"
	infoRead        = "File read"
)

func (m *Model) handleActionResultMsg(msg tea.Msg) tea.Cmd {
	result, ok := msg.(menu.ActionResult)
	if !ok {
		return nil
	}
	if result.Err != nil {
		logging.Error(result.Err)
		events.Action.Error(result.Err)
		m.forceClearInfo()
		m.showNotice(noticeError, result.Err.Error())
		return nil
	}
	events.Action.Success(result.Info)
	if result.Detail != "" && m.verbose {
		m.setInfo(result.Detail)
	} else {
		m.forceClearInfo()
	}
	m.showNotice(noticeSuccess, result.Info)
	return nil
}

func (m *Model) putBook(index int, b catalog.Book) menu.ActionResult {
	if err := m.store.Limits().CheckBook(b); err != nil {
		return menu.ActionResult{Kind: menu.KindInputBook, Err: fmt.Errorf("store book %d: %w", index, err)}
	}
	if err := m.store.Put(index, b); err != nil {
		return menu.ActionResult{Kind: menu.KindInputBook, Err: fmt.Errorf("store book %d: %w", index, err)}
	}
	events.Store.Put(index, b.Name, b.Pages, b.Price)
	return menu.ActionResult{
		Kind:   menu.KindInputBook,
		Info:   infoBookEntered,
		Detail: fmt.Sprintf("Stored %q in slot %d", b.Name, index),
	}
}

func (m *Model) sortBooks() menu.ActionResult {
	m.store.SortByPrice()
	count := m.store.Count()
	events.Store.Sort(count)
	return menu.ActionResult{
		Kind:   menu.KindSortByPrice,
		Info:   infoSorted,
		Detail: fmt.Sprintf("Sorted %d books by price", count),
	}
}

func (m *Model) writeFile(path string) menu.ActionResult {
	if err := persist.WriteFile(m.ctx, path, m.store); err != nil {
		return menu.ActionResult{Kind: menu.KindWriteFile, Err: err}
	}
	count := m.store.Count()
	format := persist.FormatFor(path)
	events.Persist.Write(path, format.String(), count)
	return menu.ActionResult{
		Kind:   menu.KindWriteFile,
		Info:   infoWritten,
		Detail: fmt.Sprintf("Wrote %d books to %s (%s)", count, path, format),
	}
}

func (m *Model) readFile(path string) menu.ActionResult {
	n, err := persist.ReadFile(m.ctx, path, m.store)
	if err != nil {
		return menu.ActionResult{Kind: menu.KindReadFile, Err: err}
	}
	format := persist.FormatFor(path)
	events.Persist.Read(path, format.String(), n)
	return menu.ActionResult{
		Kind:   menu.KindReadFile,
		Info:   infoRead,
		Detail: fmt.Sprintf("Read %d books from %s (%s)", n, path, format),
	}
}
