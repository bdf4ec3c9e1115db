package widget

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/atomicstack/bookshelf/internal/logging/events"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	msgEmpty   = "Input cannot be empty."
	msgTooLong = "Input is too long."
)

// TextInput edits a single line of at most maxLen runes. Committing an empty
// value is refused.
type TextInput struct {
	prompt     string
	maxLen     int
	input      textinput.Model
	validation string
	keys       KeyMap
}

// NewTextInput returns a focused, empty editor.
func NewTextInput(prompt string, maxLen int) *TextInput {
	if maxLen < 1 {
		maxLen = 1
	}
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = maxLen
	ti.Cursor.SetMode(cursor.CursorStatic)
	if styles.Value != nil {
		ti.TextStyle = *styles.Value
	}
	if styles.Cursor != nil {
		ti.Cursor.Style = *styles.Cursor
	}
	ti.Focus()
	return &TextInput{
		prompt: prompt,
		maxLen: maxLen,
		input:  ti,
		keys:   DefaultKeyMap,
	}
}

// Update applies a single key press.
func (t *TextInput) Update(msg tea.KeyMsg) Status {
	switch {
	case key.Matches(msg, t.keys.Select):
		if t.input.Value() == "" {
			t.validation = msgEmpty
			events.Input.Reject(t.prompt, events.InputReasonEmpty)
			return Editing
		}
		t.validation = ""
		events.Input.Commit(t.prompt, t.input.Value())
		return Committed
	case key.Matches(msg, t.keys.Cancel):
		events.Input.Cancel(t.prompt)
		return Cancelled
	case key.Matches(msg, t.keys.Backspace):
		t.validation = ""
		t.input, _ = t.input.Update(msg)
		return Editing
	}
	if !printable(msg) {
		return Editing
	}
	if utf8.RuneCountInString(t.input.Value()) >= t.maxLen {
		t.validation = msgTooLong
		events.Input.Reject(t.prompt, events.InputReasonTooLong)
		return Editing
	}
	t.validation = ""
	t.input, _ = t.input.Update(msg)
	return Editing
}

// RejectEmpty refuses a committed value that turned out to be blank after
// normalisation, leaving the editor active with the empty-input message.
func (t *TextInput) RejectEmpty() {
	t.input.SetValue("")
	t.validation = msgEmpty
	events.Input.Reject(t.prompt, events.InputReasonEmpty)
}

// Value returns the text entered so far.
func (t *TextInput) Value() string {
	return t.input.Value()
}

// Validation returns the message produced by the last refused key.
func (t *TextInput) Validation() string {
	return t.validation
}

// Prompt returns the label drawn before the value.
func (t *TextInput) Prompt() string {
	return t.prompt
}

// View renders the prompt, the text with its cursor, and the validation line.
func (t *TextInput) View() string {
	var b strings.Builder
	b.WriteString(styles.Prompt.Render(t.prompt))
	b.WriteString(t.input.View())
	b.WriteString("\n")
	if t.validation != "" {
		b.WriteString(styles.Error.Render(t.validation))
	}
	return b.String()
}

func printable(msg tea.KeyMsg) bool {
	if msg.Alt {
		return false
	}
	switch msg.Type {
	case tea.KeySpace:
		return true
	case tea.KeyRunes:
	default:
		return false
	}
	if len(msg.Runes) == 0 {
		return false
	}
	for _, r := range msg.Runes {
		if !unicode.IsPrint(r) {
			return false
		}
	}
	return true
}
