// Package picker implements a keyboard-driven directory browser that returns
// either a directory, an existing file, or a new file name inside the browsed
// directory.
package picker

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/atomicstack/bookshelf/internal/logging"
	"github.com/atomicstack/bookshelf/internal/logging/events"
	"github.com/atomicstack/bookshelf/internal/menu"
	"github.com/atomicstack/bookshelf/internal/theme"
	"github.com/atomicstack/bookshelf/internal/ui/widget"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

const (
	title           = "Select a file, or Save to use this directory"
	newFilePrompt   = "Enter new file name: "
	maxFileNameLen  = 255
	parentEntry     = ".."
	labelSave       = "Save"
	labelNewFile    = "New file"
	labelExit       = "Exit"
	entryIDPrefix   = "entry:"
	idSave          = "save"
	idNewFile       = "new"
	idExit          = "exit"
	defaultStartDir = "."
)

var styles = theme.Default()

type choiceKind int

const (
	choiceEntry choiceKind = iota
	choiceSave
	choiceNewFile
	choiceExit
)

type choice struct {
	kind  choiceKind
	name  string
	isDir bool
}

// Picker browses directories starting from a given path.
type Picker struct {
	dir      string
	resolved string
	choices  []choice
	menu     *widget.Menu
	naming   *widget.TextInput
	path     string
	err      error
}

// New lists startDir, falling back to the working directory when empty.
func New(startDir string) *Picker {
	if strings.TrimSpace(startDir) == "" {
		startDir = defaultStartDir
	}
	p := &Picker{dir: startDir}
	p.load()
	return p
}

func (p *Picker) load() {
	p.err = nil
	p.choices = p.choices[:0]
	p.choices = append(p.choices, choice{kind: choiceEntry, name: parentEntry, isDir: true})

	entries, err := os.ReadDir(p.dir)
	if err != nil {
		p.fail(fmt.Errorf("list %s: %w", p.dir, err))
	}
	for _, entry := range entries {
		if entry.Name() == "." || entry.Name() == parentEntry {
			continue
		}
		p.choices = append(p.choices, choice{
			kind:  choiceEntry,
			name:  entry.Name(),
			isDir: isDir(p.dir, entry),
		})
	}
	p.choices = append(p.choices,
		choice{kind: choiceSave},
		choice{kind: choiceNewFile},
		choice{kind: choiceExit},
	)

	resolved, rerr := resolve(p.dir)
	if rerr != nil {
		p.fail(rerr)
		resolved = ""
	}
	p.resolved = resolved

	items := make([]menu.Item, len(p.choices))
	for i, c := range p.choices {
		items[i] = c.item()
	}
	p.menu = widget.NewMenuItems(title, items)
	p.menu.EnableFilter()
	events.Picker.List(p.dir, len(entries))
}

func (p *Picker) fail(err error) {
	if p.err == nil {
		p.err = err
	}
	logging.Error(err)
	events.Picker.Error(p.dir, err)
}

func isDir(dir string, entry fs.DirEntry) bool {
	if entry.Type()&fs.ModeSymlink == 0 {
		return entry.IsDir()
	}
	info, err := os.Stat(filepath.Join(dir, entry.Name()))
	if err != nil {
		return false
	}
	return info.IsDir()
}

func resolve(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", path, err)
	}
	clean, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", path, err)
	}
	return clean, nil
}

func (c choice) item() menu.Item {
	switch c.kind {
	case choiceSave:
		return menu.Item{ID: idSave, Label: labelSave}
	case choiceNewFile:
		return menu.Item{ID: idNewFile, Label: labelNewFile}
	case choiceExit:
		return menu.Item{ID: idExit, Label: labelExit}
	}
	label := ansi.Strip(c.name)
	if c.isDir {
		label += string(filepath.Separator)
	}
	return menu.Item{ID: entryIDPrefix + c.name, Label: label}
}

// Update applies a single key press. Committed means Path holds the chosen
// location; Cancelled means the user picked Exit.
func (p *Picker) Update(msg tea.KeyMsg) widget.Status {
	if p.naming != nil {
		return p.updateNaming(msg)
	}
	if p.menu.Update(msg) != widget.Committed {
		return widget.Editing
	}
	idx := p.menu.Selected()
	if idx < 0 || idx >= len(p.choices) {
		return widget.Editing
	}
	c := p.choices[idx]
	switch c.kind {
	case choiceSave:
		return p.choose(p.dir, labelSave)
	case choiceNewFile:
		p.naming = widget.NewTextInput(newFilePrompt, maxFileNameLen)
		return widget.Editing
	case choiceExit:
		p.path = ""
		events.Picker.Cancel(p.dir)
		return widget.Cancelled
	}
	target := filepath.Join(p.dir, c.name)
	if !c.isDir {
		return p.choose(target, "file")
	}
	p.dir = target
	events.Picker.Enter(p.dir)
	p.load()
	return widget.Editing
}

func (p *Picker) updateNaming(msg tea.KeyMsg) widget.Status {
	switch p.naming.Update(msg) {
	case widget.Cancelled:
		p.naming = nil
	case widget.Committed:
		name := p.naming.Value()
		p.naming = nil
		dir, err := resolve(p.dir)
		if err != nil {
			p.fail(err)
			return widget.Editing
		}
		p.path = filepath.Join(dir, name)
		events.Picker.Choose(p.path, labelNewFile)
		return widget.Committed
	}
	return widget.Editing
}

func (p *Picker) choose(target, via string) widget.Status {
	resolved, err := resolve(target)
	if err != nil {
		p.err = nil
		p.fail(err)
		return widget.Editing
	}
	p.path = resolved
	events.Picker.Choose(p.path, via)
	return widget.Committed
}

// Path returns the chosen location after a commit.
func (p *Picker) Path() string {
	return p.path
}

// Dir returns the directory currently listed.
func (p *Picker) Dir() string {
	return p.dir
}

// Err returns the most recent listing or resolve failure.
func (p *Picker) Err() error {
	return p.err
}

// Labels returns the entries in display order, synthetic options included.
func (p *Picker) Labels() []string {
	labels := make([]string, len(p.choices))
	for i, c := range p.choices {
		labels[i] = c.item().Label
	}
	return labels
}

// Naming reports whether the new file name editor is active.
func (p *Picker) Naming() bool {
	return p.naming != nil
}

// View renders the listing, or the file name editor when active.
func (p *Picker) View(height int) string {
	if p.naming != nil {
		return p.naming.View()
	}
	reserved := 1
	if p.err != nil {
		reserved++
	}
	lines := []string{styles.Info.Render(p.location())}
	lines = append(lines, p.menu.View(height-reserved))
	if p.err != nil {
		lines = append(lines, styles.Error.Render(p.err.Error()))
	}
	return strings.Join(lines, "\n")
}

func (p *Picker) location() string {
	if p.resolved != "" {
		return p.resolved
	}
	return p.dir
}
