package widget

import (
	"strconv"
	"strings"

	"github.com/atomicstack/bookshelf/internal/catalog"
	"github.com/atomicstack/bookshelf/internal/logging/events"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// maxAccumulator caps the typed value so long digit runs cannot overflow.
const maxAccumulator = catalog.MaxFieldValue

const (
	msgTooSmall = "Number is too small"
	msgTooBig   = "Number is too big"
)

// NumberInput edits a non-negative integer that must fall within [min, max]
// when committed. Values outside the range are accepted while typing.
type NumberInput struct {
	prompt     string
	min        int
	max        int
	value      int
	validation string
	keys       KeyMap
}

// NewNumberInput returns an editor starting at zero.
func NewNumberInput(prompt string, min, max int) *NumberInput {
	return &NumberInput{
		prompt: prompt,
		min:    min,
		max:    max,
		keys:   DefaultKeyMap,
	}
}

// Update applies a single key press.
func (n *NumberInput) Update(msg tea.KeyMsg) Status {
	switch {
	case key.Matches(msg, n.keys.Select):
		switch {
		case n.value < n.min:
			n.validation = msgTooSmall
			events.Input.Reject(n.prompt, events.InputReasonTooSmall)
		case n.value > n.max:
			n.validation = msgTooBig
			events.Input.Reject(n.prompt, events.InputReasonTooBig)
		default:
			n.validation = ""
			events.Input.Commit(n.prompt, n.value)
			return Committed
		}
		return Editing
	case key.Matches(msg, n.keys.Cancel):
		events.Input.Cancel(n.prompt)
		return Cancelled
	case key.Matches(msg, n.keys.Backspace):
		n.validation = ""
		n.value /= 10
		return Editing
	}
	if msg.Type != tea.KeyRunes || msg.Alt || !allDigits(msg.Runes) {
		return Editing
	}
	n.validation = ""
	for _, r := range msg.Runes {
		n.appendDigit(int(r - '0'))
	}
	return Editing
}

func (n *NumberInput) appendDigit(d int) {
	if n.value > (maxAccumulator-d)/10 {
		n.value = maxAccumulator
		return
	}
	n.value = n.value*10 + d
}

// Value returns the accumulated number.
func (n *NumberInput) Value() int {
	return n.value
}

// Validation returns the message produced by the last rejected commit.
func (n *NumberInput) Validation() string {
	return n.validation
}

// Prompt returns the label drawn before the value.
func (n *NumberInput) Prompt() string {
	return n.prompt
}

// View renders the prompt, the current value, and the validation line.
func (n *NumberInput) View() string {
	var b strings.Builder
	b.WriteString(styles.Prompt.Render(n.prompt))
	b.WriteString(styles.Value.Render(strconv.Itoa(n.value)))
	b.WriteString("\n")
	if n.validation != "" {
		b.WriteString(styles.Error.Render(n.validation))
	}
	return b.String()
}

func allDigits(runes []rune) bool {
	if len(runes) == 0 {
		return false
	}
	for _, r := range runes {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
