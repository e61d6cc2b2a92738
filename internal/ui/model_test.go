package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Beinsezii/linch/internal/catalog"
	"github.com/Beinsezii/linch/internal/commit"
	"github.com/Beinsezii/linch/internal/frecency"
	"github.com/Beinsezii/linch/internal/ui/state"
)

func testEntries(names ...string) []catalog.Entry {
	entries := make([]catalog.Entry, len(names))
	for i, n := range names {
		entries[i] = catalog.LineEntry(n)
	}
	return entries
}

func newTestModel(t *testing.T, opts Options, rows, maxColumns int, mode state.MatchMode, names ...string) *Model {
	t.Helper()
	grid := state.NewGrid(testEntries(names...), rows, maxColumns, mode)
	store := frecency.NewStoreAt("", t.TempDir())
	return NewModel(grid, commit.New(store), opts)
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewModelStartsWithoutResult(t *testing.T) {
	m := newTestModel(t, Options{}, 2, 2, state.MatchPattern, "alpha", "beta")
	if m.Result() != nil {
		t.Fatalf("expected no result before commit, got %v", m.Result())
	}
	if m.ResultIsCustom() {
		t.Fatal("expected no custom flag before commit")
	}
}

func TestHandlerRegistryRoutesKeyMessages(t *testing.T) {
	m := newTestModel(t, Options{}, 2, 2, state.MatchPattern, "alpha", "beta", "gamma")
	handler := m.handlerFor(tea.KeyMsg{Type: tea.KeyDown})
	if handler == nil {
		t.Fatal("expected a handler for key messages")
	}
	handler(tea.KeyMsg{Type: tea.KeyDown})
	if m.grid.Cursor != 1 {
		t.Fatalf("expected cursor 1 after down, got %d", m.grid.Cursor)
	}
}

func TestHandlerRegistryIgnoresUnknownMessages(t *testing.T) {
	m := newTestModel(t, Options{}, 2, 2, state.MatchPattern, "alpha")
	type strayMsg struct{}
	if handler := m.handlerFor(strayMsg{}); handler != nil {
		t.Fatal("expected no handler for unknown message type")
	}
}

func TestWindowSizeMsgRespectsFixedDimensions(t *testing.T) {
	m := newTestModel(t, Options{Width: 80}, 2, 2, state.MatchPattern, "alpha")
	m.handleWindowSizeMsg(tea.WindowSizeMsg{Width: 40, Height: 12})
	if m.width != 80 {
		t.Fatalf("expected fixed width kept, got %d", m.width)
	}
	if m.height != 12 {
		t.Fatalf("expected height adopted, got %d", m.height)
	}
}
