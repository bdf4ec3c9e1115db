package ui

import (
	"github.com/atomicstack/bookshelf/internal/logging/events"
	"github.com/atomicstack/bookshelf/internal/menu"
	"github.com/atomicstack/bookshelf/internal/ui/command"
	"github.com/atomicstack/bookshelf/internal/ui/picker"
	"github.com/atomicstack/bookshelf/internal/ui/widget"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	m.clearInfo()
	if key.Matches(keyMsg, m.keys.Quit) {
		events.App.Exit("interrupt")
		return tea.Quit
	}
	switch m.mode {
	case ModeNumber:
		return m.handleNumberKey(keyMsg)
	case ModeText:
		return m.handleTextKey(keyMsg)
	case ModePicker:
		return m.handlePickerKey(keyMsg)
	case ModeNotice:
		return m.handleNoticeKey(keyMsg)
	case ModeTable:
		return m.handleTableKey(keyMsg)
	default:
		return m.handleMenuKey(keyMsg)
	}
}

func (m *Model) handleMenuKey(msg tea.KeyMsg) tea.Cmd {
	if m.menu.Update(msg) != widget.Committed {
		return nil
	}
	item, ok := m.menu.Current()
	if !ok {
		return nil
	}
	opt, ok := m.registry.Find(item.ID)
	if !ok {
		return nil
	}
	return m.startAction(opt)
}

// startAction opens the first screen of the chosen action, or runs it
// directly when it needs no input.
func (m *Model) startAction(opt menu.Option) tea.Cmd {
	m.action = &opt
	m.forceClearInfo()
	switch opt.Kind {
	case menu.KindInputBook:
		m.draft = &bookDraft{}
		m.startNumber(promptBookIndex, 0, m.store.Len()-1)
	case menu.KindOutputBook:
		m.startNumber(promptBookID, 0, m.store.Len()-1)
	case menu.KindSortByPrice:
		return m.bus.Execute(command.Request{ID: opt.Kind.ID(), Label: opt.Title, Handler: m.sortBooks})
	case menu.KindPrintAll:
		m.openTable()
	case menu.KindWriteFile, menu.KindReadFile:
		m.picker = picker.New(m.startDir)
		m.setMode(ModePicker)
	case menu.KindExit:
		events.App.Exit("menu")
		return tea.Quit
	}
	return nil
}

func (m *Model) handlePickerKey(msg tea.KeyMsg) tea.Cmd {
	if m.picker == nil || m.action == nil {
		m.returnToMenu()
		return nil
	}
	switch m.picker.Update(msg) {
	case widget.Cancelled:
		m.returnToMenu()
	case widget.Committed:
		path := m.picker.Path()
		opt := *m.action
		m.picker = nil
		handler := func() menu.ActionResult { return m.readFile(path) }
		if opt.Kind == menu.KindWriteFile {
			handler = func() menu.ActionResult { return m.writeFile(path) }
		}
		return m.bus.Execute(command.Request{ID: opt.Kind.ID(), Label: path, Handler: handler})
	}
	return nil
}

func (m *Model) handleTableKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keys.Select, m.keys.Cancel) {
		m.returnToMenu()
		return nil
	}
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return cmd
}

// returnToMenu drops every per-action screen and shows the main menu again
// with the previous highlight.
func (m *Model) returnToMenu() {
	m.action = nil
	m.number = nil
	m.text = nil
	m.picker = nil
	m.draft = nil
	m.notice = nil
	m.setMode(ModeMenu)
}
