package ui

import (
	"reflect"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Beinsezii/linch/internal/catalog"
	"github.com/Beinsezii/linch/internal/commit"
	"github.com/Beinsezii/linch/internal/theme"
	"github.com/Beinsezii/linch/internal/ui/command"
	"github.com/Beinsezii/linch/internal/ui/state"
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Options configure one launcher session.
type Options struct {
	Prompt       string
	Width        int
	Height       int
	ShowFooter   bool
	Verbose      bool
	ExitUnfocus  bool
	AllowCustom  bool
	CacheEnabled bool
}

// Model implements the Bubble Tea model for the launcher grid.
type Model struct {
	grid      *state.Grid
	committer *commit.Committer
	bus       *command.Bus

	prompt       string
	errMsg       string
	infoMsg      string
	infoExpire   time.Time
	width        int
	height       int
	fixedWidth   bool
	fixedHeight  bool
	showFooter   bool
	verbose      bool
	exitUnfocus  bool
	allowCustom  bool
	cacheEnabled bool

	focusSeen  bool
	committing bool

	result       catalog.Entry
	resultCustom bool

	filterCursor      cursor.Model
	filterCursorDirty bool

	handlers map[reflect.Type]msgHandler
}

// NewModel initialises the UI state over a prepared session grid.
func NewModel(grid *state.Grid, committer *commit.Committer, opts Options) *Model {
	m := &Model{
		grid:         grid,
		committer:    committer,
		bus:          command.New(),
		prompt:       opts.Prompt,
		showFooter:   opts.ShowFooter,
		verbose:      opts.Verbose,
		exitUnfocus:  opts.ExitUnfocus,
		allowCustom:  opts.AllowCustom,
		cacheEnabled: opts.CacheEnabled,
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	c := cursor.New()
	if styles.Cursor != nil {
		c.Style = *styles.Cursor
	}
	if styles.Input != nil {
		c.TextStyle = *styles.Input
	}
	c.SetChar(" ")
	m.filterCursor = c
	m.registerHandlers()
	return m
}

// Result returns the committed entry, nil when the session was
// cancelled or the commit resolved nothing.
func (m *Model) Result() catalog.Entry { return m.result }

// ResultIsCustom reports whether the result is a synthesized free-text
// entry rather than a catalog item.
func (m *Model) ResultIsCustom() bool { return m.resultCustom }

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return m.filterCursor.Focus()
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if cmd := m.updateFilterCursorModel(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.MouseMsg{}):      m.handleMouseMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(tea.FocusMsg{}):      m.handleFocusMsg,
		reflect.TypeOf(tea.BlurMsg{}):       m.handleBlurMsg,
		reflect.TypeOf(commitResultMsg{}):   m.handleCommitResultMsg,
		reflect.TypeOf(deleteResultMsg{}):   m.handleDeleteResultMsg,
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

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if m.filterCursorDirty {
		m.filterCursorDirty = false
		m.filterCursor.Blink = false
		if cmd := m.filterCursor.BlinkCmd(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = time.Now().Add(5 * time.Second)
}

func (m *Model) forceClearInfo() {
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.forceClearInfo()
	}
	return m.infoMsg
}
