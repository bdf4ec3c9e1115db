package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type noticeKind int

const (
	noticeInfo noticeKind = iota
	noticeSuccess
	noticeError
)

// notice is a message screen that stays up until the user presses Enter.
type notice struct {
	kind  noticeKind
	lines []string
}

func (n *notice) style() *lipgloss.Style {
	switch n.kind {
	case noticeSuccess:
		return styles.Success
	case noticeError:
		return styles.Error
	default:
		return styles.Info
	}
}

func (m *Model) showNotice(kind noticeKind, lines ...string) {
	m.number = nil
	m.text = nil
	m.picker = nil
	m.draft = nil
	m.notice = &notice{kind: kind, lines: lines}
	m.setMode(ModeNotice)
}

func (m *Model) handleNoticeKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keys.Select, m.keys.Cancel) {
		m.returnToMenu()
	}
	return nil
}
