package widget

import tea "github.com/charmbracelet/bubbletea"

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	keyEnter     = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc       = tea.KeyMsg{Type: tea.KeyEsc}
	keyBackspace = tea.KeyMsg{Type: tea.KeyBackspace}
	keyUp        = tea.KeyMsg{Type: tea.KeyUp}
	keyDown      = tea.KeyMsg{Type: tea.KeyDown}
	keyHome      = tea.KeyMsg{Type: tea.KeyHome}
	keyEnd       = tea.KeyMsg{Type: tea.KeyEnd}
	keyPgDown    = tea.KeyMsg{Type: tea.KeyPgDown}
	keySpace     = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
)

func typeEach[W interface{ Update(tea.KeyMsg) Status }](w W, s string) Status {
	status := Editing
	for _, r := range s {
		status = w.Update(runes(string(r)))
	}
	return status
}
