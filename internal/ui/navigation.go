package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	gridfmt "github.com/Beinsezii/linch/internal/format/grid"
	"github.com/Beinsezii/linch/internal/logging/events"
)

// gridTop is the number of rows above the grid: the input line and the
// status line. Mouse hits are translated relative to it.
const gridTop = 2

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch keyMsg.String() {
	case "ctrl+c", "esc":
		events.App.Cancel("key")
		m.result = nil
		return tea.Quit
	case "enter":
		return m.commitSelection()
	case "tab":
		m.grid.ToggleFocus()
		events.UI.Focus(m.grid.InputFocused)
		return nil
	case "delete":
		return m.deleteSelection()
	}
	if m.handleTextInput(keyMsg) {
		return nil
	}
	switch keyMsg.String() {
	case "up":
		if !m.grid.InputFocused && m.grid.MoveUp() {
			events.UI.Cursor(m.grid.Cursor, m.grid.Scroll)
		}
	case "down":
		if !m.grid.InputFocused && m.grid.MoveDown() {
			events.UI.Cursor(m.grid.Cursor, m.grid.Scroll)
		}
	case "left":
		if !m.grid.InputFocused && m.grid.MoveLeft() {
			events.UI.Cursor(m.grid.Cursor, m.grid.Scroll)
		}
	case "right":
		if !m.grid.InputFocused && m.grid.MoveRight() {
			events.UI.Cursor(m.grid.Cursor, m.grid.Scroll)
		}
	case "pgup":
		if m.grid.ScrollUp() {
			events.UI.Scroll(m.grid.Scroll)
		}
	case "pgdown":
		if m.grid.ScrollDown() {
			events.UI.Scroll(m.grid.Scroll)
		}
	}
	return nil
}

func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	ev, ok := msg.(tea.MouseMsg)
	if !ok {
		return nil
	}
	switch ev.Button {
	case tea.MouseButtonWheelUp:
		if m.grid.ScrollUp() {
			events.UI.Scroll(m.grid.Scroll)
		}
	case tea.MouseButtonWheelDown:
		if m.grid.ScrollDown() {
			events.UI.Scroll(m.grid.Scroll)
		}
	case tea.MouseButtonLeft:
		if ev.Action != tea.MouseActionPress {
			return nil
		}
		cell, ok := m.cellAt(ev.X, ev.Y)
		if !ok {
			return nil
		}
		if cell == m.grid.Cursor {
			return m.commitSelection()
		}
		if m.grid.SelectCell(cell) {
			events.UI.Cursor(m.grid.Cursor, m.grid.Scroll)
		}
	}
	return nil
}

// cellAt translates terminal coordinates into a page cell index, false
// when the position falls outside the grid or inside a column gap.
func (m *Model) cellAt(x, y int) (int, bool) {
	row := y - gridTop
	if row < 0 || row >= m.grid.Rows {
		return 0, false
	}
	cellW := m.cellWidth()
	stride := cellW + gridfmt.GapWidth()
	col := x / stride
	if col < 0 || col >= m.grid.Columns {
		return 0, false
	}
	if x-col*stride >= cellW {
		return 0, false
	}
	return row + m.grid.Rows*col, true
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	return nil
}

func (m *Model) handleFocusMsg(tea.Msg) tea.Cmd {
	m.focusSeen = true
	return nil
}

func (m *Model) handleBlurMsg(tea.Msg) tea.Cmd {
	if m.exitUnfocus && m.focusSeen {
		events.App.Cancel("unfocus")
		m.result = nil
		return tea.Quit
	}
	return nil
}
