package ui

import (
	"context"
	"reflect"
	"strings"
	"time"

	"github.com/atomicstack/bookshelf/internal/catalog"
	"github.com/atomicstack/bookshelf/internal/logging/events"
	"github.com/atomicstack/bookshelf/internal/menu"
	"github.com/atomicstack/bookshelf/internal/theme"
	"github.com/atomicstack/bookshelf/internal/ui/command"
	"github.com/atomicstack/bookshelf/internal/ui/picker"
	"github.com/atomicstack/bookshelf/internal/ui/widget"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

type Mode int

const (
	ModeMenu Mode = iota
	ModeNumber
	ModeText
	ModePicker
	ModeNotice
	ModeTable
)

func (m Mode) String() string {
	switch m {
	case ModeMenu:
		return "menu"
	case ModeNumber:
		return "number"
	case ModeText:
		return "text"
	case ModePicker:
		return "picker"
	case ModeNotice:
		return "notice"
	case ModeTable:
		return "table"
	default:
		return "unknown"
	}
}

const (
	menuHeaderSeparator = "→"
	defaultRootTitle    = "main menu"
	mainMenuPrompt      = "Use arrow keys to navigate. Enter to select."
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Options configures a Model.
type Options struct {
	StartDir   string
	Width      int
	Height     int
	ShowFooter bool
	Verbose    bool
}

// Model implements the Bubble Tea model for the book catalog.
type Model struct {
	ctx      context.Context
	store    *catalog.Store
	startDir string

	mode   Mode
	action *menu.Option
	menu   *widget.Menu
	number *widget.NumberInput
	text   *widget.TextInput
	picker *picker.Picker
	draft  *bookDraft
	notice *notice
	table  viewport.Model
	help   help.Model
	keys   widget.KeyMap

	tableLines int

	infoMsg     string
	infoExpire  time.Time
	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	verbose     bool

	handlers map[reflect.Type]msgHandler

	registry *menu.Registry
	bus      *command.Bus
}

// NewModel initialises the UI with the main menu over store.
func NewModel(ctx context.Context, store *catalog.Store, opts Options) *Model {
	if ctx == nil {
		ctx = context.Background()
	}
	if store == nil {
		store = catalog.New(catalog.DefaultLimits())
	}
	registry := menu.BuildRegistry()
	m := &Model{
		ctx:        ctx,
		store:      store,
		startDir:   opts.StartDir,
		registry:   registry,
		bus:        command.New(),
		keys:       widget.DefaultKeyMap,
		help:       help.New(),
		showFooter: opts.ShowFooter,
		verbose:    opts.Verbose,
		mode:       ModeMenu,
	}
	m.menu = widget.NewMenuItems(mainMenuPrompt, registry.Items())
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	m.help.Width = m.width
	m.table = viewport.New(m.width, 0)
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	return m, nil
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(menu.ActionResult{}): m.handleActionResultMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

// Store exposes the catalog the model edits.
func (m *Model) Store() *catalog.Store {
	return m.store
}

// Mode reports the active screen.
func (m *Model) Mode() Mode {
	return m.mode
}

func (m *Model) setMode(mode Mode) {
	if m.mode == mode {
		return
	}
	events.UI.Screen(m.mode.String(), mode.String())
	m.mode = mode
}

func (m *Model) menuHeader() string {
	segments := []string{defaultRootTitle}
	if m.action != nil && m.mode != ModeMenu {
		segments = append(segments, strings.ToLower(m.action.Title))
	}
	return strings.Join(segments, menuHeaderSeparator)
}
