package ui

import (
	"unicode"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Beinsezii/linch/internal/logging/events"
)

func (m *Model) updateFilterCursorModel(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.filterCursor, cmd = m.filterCursor.Update(msg)
	return cmd
}

func (m *Model) noteFilterCursorChange(before int) {
	if before != m.grid.InputCursorPos() {
		m.filterCursorDirty = true
	}
}

// noteFilterChange clears transient messages after an edit and traces
// the recompiled state.
func (m *Model) noteFilterChange(before int) {
	m.noteFilterCursorChange(before)
	m.forceClearInfo()
	m.errMsg = ""
	events.Filter.Compile(m.grid.Input, m.grid.PatternValid())
}

// handleTextInput owns every key that edits the input line or moves its
// caret. Typed runes always reach the input; the horizontal arrows only
// while the input holds focus.
func (m *Model) handleTextInput(msg tea.KeyMsg) bool {
	g := m.grid
	switch msg.String() {
	case "ctrl+u":
		before := g.InputCursorPos()
		if !g.ClearInput() {
			return false
		}
		m.noteFilterChange(before)
		events.Filter.Cleared()
		return true
	case "ctrl+w":
		before := g.InputCursorPos()
		if !g.DeleteInputWordBackward() {
			return false
		}
		m.noteFilterChange(before)
		events.Filter.WordBackspace(g.Input)
		return true
	case "ctrl+a":
		before := g.InputCursorPos()
		if !g.MoveInputCursorStart() {
			return false
		}
		m.noteFilterCursorChange(before)
		events.Filter.Cursor(g.InputCursor)
		return true
	case "ctrl+e":
		before := g.InputCursorPos()
		if !g.MoveInputCursorEnd() {
			return false
		}
		m.noteFilterCursorChange(before)
		events.Filter.Cursor(g.InputCursor)
		return true
	case "alt+b":
		before := g.InputCursorPos()
		if !g.MoveInputCursorWordBackward() {
			return false
		}
		m.noteFilterCursorChange(before)
		events.Filter.CursorWord(g.InputCursor)
		return true
	case "alt+f":
		before := g.InputCursorPos()
		if !g.MoveInputCursorWordForward() {
			return false
		}
		m.noteFilterCursorChange(before)
		events.Filter.CursorWord(g.InputCursor)
		return true
	}
	switch msg.Type {
	case tea.KeyBackspace, tea.KeyCtrlH:
		before := g.InputCursorPos()
		if !g.DeleteInputRuneBackward() {
			return false
		}
		m.noteFilterChange(before)
		events.Filter.Backspace(g.Input)
		return true
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) == 0 {
			return false
		}
		for _, r := range msg.Runes {
			if unicode.IsControl(r) {
				return false
			}
		}
		return m.appendToInput(string(msg.Runes))
	case tea.KeySpace:
		return m.appendToInput(" ")
	case tea.KeyLeft:
		if !g.InputFocused {
			return false
		}
		before := g.InputCursorPos()
		if !g.MoveInputCursorRuneBackward() {
			return false
		}
		m.noteFilterCursorChange(before)
		events.Filter.Cursor(g.InputCursor)
		return true
	case tea.KeyRight:
		if !g.InputFocused {
			return false
		}
		before := g.InputCursorPos()
		if !g.MoveInputCursorRuneForward() {
			return false
		}
		m.noteFilterCursorChange(before)
		events.Filter.Cursor(g.InputCursor)
		return true
	}
	return false
}

func (m *Model) appendToInput(text string) bool {
	if text == "" {
		return false
	}
	before := m.grid.InputCursorPos()
	if !m.grid.InsertInputText(text) {
		return false
	}
	m.noteFilterChange(before)
	events.Filter.Append(m.grid.Input)
	return true
}

// inputLine renders the prompt, typed input, and caret. The prompt
// marker dims while the grid owns the arrow keys.
func (m *Model) inputLine() string {
	render := func(style *lipgloss.Style, value string) string {
		if style == nil || value == "" {
			return value
		}
		return style.Render(value)
	}
	if styles.Cursor != nil {
		m.filterCursor.Style = *styles.Cursor
	}
	if styles.Input != nil {
		m.filterCursor.TextStyle = *styles.Input
	} else {
		m.filterCursor.TextStyle = lipgloss.Style{}
	}
	promptStyle := styles.InputPrompt
	if !m.grid.InputFocused {
		promptStyle = styles.InputPromptBlurred
	}
	prompt := render(promptStyle, "» ")

	text := m.grid.Input
	if text == "" {
		placeholder := m.prompt
		runes := []rune(placeholder)
		var caretRune, rest string
		if len(runes) > 0 {
			caretRune = string(runes[0])
			rest = string(runes[1:])
		}
		if styles.InputPlaceholder != nil {
			m.filterCursor.TextStyle = *styles.InputPlaceholder
		}
		caret := m.renderFilterCursor(caretRune)
		return prompt + caret + render(styles.InputPlaceholder, rest)
	}

	runes := []rune(text)
	pos := m.grid.InputCursorPos()
	before := render(styles.Input, string(runes[:pos]))
	caretRune := " "
	if pos < len(runes) {
		caretRune = string(runes[pos])
	}
	caret := m.renderFilterCursor(caretRune)
	var after string
	if pos < len(runes) {
		after = render(styles.Input, string(runes[pos+1:]))
	}
	return prompt + before + caret + after
}

func (m *Model) renderFilterCursor(char string) string {
	if char == "" {
		char = " "
	}
	m.filterCursor.SetChar(char)

	base := m.filterCursor.TextStyle.Inline(true)
	if m.filterCursor.Blink {
		return base.Render(char)
	}
	if styles.Cursor != nil {
		cursorStyle := styles.Cursor.Inline(true)
		return base.Inherit(cursorStyle).Blink(false).Render(char)
	}
	return base.Reverse(true).Render(char)
}
