package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Beinsezii/linch/internal/ui/state"
)

func TestTypingResetsCursorAndScroll(t *testing.T) {
	names := make([]string, 10)
	for i := range names {
		names[i] = string(rune('a' + i))
	}
	m := newTestModel(t, Options{}, 2, 2, state.MatchPattern, names...)

	m.handleKeyMsg(tea.KeyMsg{Type: tea.KeyPgDown})
	m.handleKeyMsg(tea.KeyMsg{Type: tea.KeyDown})
	if m.grid.Scroll == 0 && m.grid.Cursor == 0 {
		t.Fatal("expected a displaced view before typing")
	}

	m.handleKeyMsg(keyRunes("a"))
	if m.grid.Input != "a" {
		t.Fatalf("expected input %q, got %q", "a", m.grid.Input)
	}
	if m.grid.Cursor != 0 || m.grid.Scroll != 0 {
		t.Fatalf("expected view reset to origin, got cursor %d scroll %d", m.grid.Cursor, m.grid.Scroll)
	}
}

func TestBackspaceRemovesRuneBeforeCaret(t *testing.T) {
	m := newTestModel(t, Options{}, 2, 2, state.MatchPattern, "alpha")
	m.handleKeyMsg(keyRunes("ab"))
	m.handleKeyMsg(tea.KeyMsg{Type: tea.KeyBackspace})
	if m.grid.Input != "a" {
		t.Fatalf("expected input %q, got %q", "a", m.grid.Input)
	}
	m.handleKeyMsg(tea.KeyMsg{Type: tea.KeyBackspace})
	if m.grid.Input != "" {
		t.Fatalf("expected empty input, got %q", m.grid.Input)
	}
	// Backspace on an empty input is a no-op, not an error.
	m.handleKeyMsg(tea.KeyMsg{Type: tea.KeyBackspace})
	if m.grid.Input != "" {
		t.Fatalf("expected input to stay empty, got %q", m.grid.Input)
	}
}

func TestControlUClearsInput(t *testing.T) {
	m := newTestModel(t, Options{}, 2, 2, state.MatchPattern, "alpha")
	m.handleKeyMsg(keyRunes("alp"))
	m.handleKeyMsg(tea.KeyMsg{Type: tea.KeyCtrlU})
	if m.grid.Input != "" {
		t.Fatalf("expected cleared input, got %q", m.grid.Input)
	}
}

func TestControlWDeletesWordBackward(t *testing.T) {
	m := newTestModel(t, Options{}, 2, 2, state.MatchPattern, "alpha")
	m.handleKeyMsg(keyRunes("foo"))
	m.handleKeyMsg(tea.KeyMsg{Type: tea.KeySpace})
	m.handleKeyMsg(keyRunes("bar"))
	m.handleKeyMsg(tea.KeyMsg{Type: tea.KeyCtrlW})
	if m.grid.Input != "foo " {
		t.Fatalf("expected %q, got %q", "foo ", m.grid.Input)
	}
}

func TestCaretArrowsRequireInputFocus(t *testing.T) {
	m := newTestModel(t, Options{}, 2, 2, state.MatchPattern, "alpha", "beta")
	m.handleKeyMsg(keyRunes("ab"))
	if pos := m.grid.InputCursorPos(); pos != 2 {
		t.Fatalf("expected caret at 2 after typing, got %d", pos)
	}

	m.handleKeyMsg(tea.KeyMsg{Type: tea.KeyLeft})
	if pos := m.grid.InputCursorPos(); pos != 2 {
		t.Fatalf("expected caret untouched while grid owns arrows, got %d", pos)
	}

	m.handleKeyMsg(tea.KeyMsg{Type: tea.KeyTab})
	m.handleKeyMsg(tea.KeyMsg{Type: tea.KeyLeft})
	if pos := m.grid.InputCursorPos(); pos != 1 {
		t.Fatalf("expected caret at 1 after focused left, got %d", pos)
	}

	m.handleKeyMsg(keyRunes("c"))
	if m.grid.Input != "acb" {
		t.Fatalf("expected caret insertion to yield %q, got %q", "acb", m.grid.Input)
	}
}

func TestAltAndControlRunesDoNotReachInput(t *testing.T) {
	m := newTestModel(t, Options{}, 2, 2, state.MatchPattern, "alpha")
	m.handleKeyMsg(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x"), Alt: true})
	if m.grid.Input != "" {
		t.Fatalf("expected alt-modified rune dropped, got %q", m.grid.Input)
	}
	m.handleKeyMsg(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{0x07}})
	if m.grid.Input != "" {
		t.Fatalf("expected control rune dropped, got %q", m.grid.Input)
	}
}

func TestInputLineShowsTypedText(t *testing.T) {
	m := newTestModel(t, Options{Prompt: "Run"}, 2, 2, state.MatchPattern, "alpha")
	line := m.inputLine()
	if !strings.Contains(line, "»") {
		t.Fatalf("expected prompt marker in %q", line)
	}
	if !strings.Contains(line, "Run") {
		t.Fatalf("expected placeholder in empty input line %q", line)
	}

	m.handleKeyMsg(keyRunes("alp"))
	line = m.inputLine()
	if strings.Contains(line, "Run") {
		t.Fatalf("expected placeholder hidden once text exists, got %q", line)
	}
	if !strings.Contains(line, "alp") {
		t.Fatalf("expected typed text in %q", line)
	}
}

func TestEditClearsTransientMessages(t *testing.T) {
	m := newTestModel(t, Options{}, 2, 2, state.MatchPattern, "alpha")
	m.errMsg = "stale"
	m.setInfo("also stale")
	m.handleKeyMsg(keyRunes("a"))
	if m.errMsg != "" {
		t.Fatalf("expected error cleared on edit, got %q", m.errMsg)
	}
	if m.currentInfo() != "" {
		t.Fatalf("expected info cleared on edit, got %q", m.currentInfo())
	}
}
