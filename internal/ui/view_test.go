package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Beinsezii/linch/internal/ui/state"
)

func TestViewRendersGridEntries(t *testing.T) {
	m := newTestModel(t, Options{Width: 40}, 2, 2, state.MatchPattern, "alpha", "beta", "gamma", "delta")
	view := m.View()
	for _, name := range []string{"alpha", "beta", "gamma", "delta"} {
		if !strings.Contains(view, name) {
			t.Fatalf("expected %q in view:\n%s", name, view)
		}
	}
}

func TestViewReportsNoMatches(t *testing.T) {
	m := newTestModel(t, Options{}, 2, 2, state.MatchPattern, "alpha", "beta")
	m.grid.SetInput("zzz", 3)
	view := m.View()
	if !strings.Contains(view, `No matches for "zzz"`) {
		t.Fatalf("expected no-match message in view:\n%s", view)
	}
	if strings.Contains(view, "alpha") {
		t.Fatalf("expected entries hidden when nothing matches:\n%s", view)
	}
}

func TestViewReportsEmptyCatalog(t *testing.T) {
	m := newTestModel(t, Options{}, 2, 2, state.MatchPattern)
	if view := m.View(); !strings.Contains(view, "(no entries)") {
		t.Fatalf("expected empty-catalog message in view:\n%s", view)
	}
}

func TestStatusLineFlagsInvalidPattern(t *testing.T) {
	m := newTestModel(t, Options{}, 2, 2, state.MatchPattern, "alpha")
	m.grid.SetInput("[", 1)
	line := m.statusLine()
	if !strings.Contains(line.text, "invalid pattern") {
		t.Fatalf("expected degraded-pattern notice, got %q", line.text)
	}

	// An error outranks the pattern notice.
	m.errMsg = "boom"
	line = m.statusLine()
	if !strings.Contains(line.text, "boom") {
		t.Fatalf("expected error to win the status line, got %q", line.text)
	}
}

func TestViewFooterCountsFilteredEntries(t *testing.T) {
	m := newTestModel(t, Options{ShowFooter: true}, 2, 2, state.MatchPattern, "alpha", "beta", "gamma")
	if view := m.View(); !strings.Contains(view, "3/3") {
		t.Fatalf("expected 3/3 counter in view:\n%s", view)
	}
	m.grid.SetInput("al", 2)
	if view := m.View(); !strings.Contains(view, "1/3") {
		t.Fatalf("expected 1/3 counter after filtering:\n%s", view)
	}
}

func TestViewHonoursHeightLimit(t *testing.T) {
	m := newTestModel(t, Options{Height: 3}, 4, 2, state.MatchPattern, "a", "b", "c", "d", "e", "f", "g", "h")
	view := m.View()
	lines := strings.Split(view, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d:\n%s", len(lines), view)
	}
	if !strings.Contains(lines[len(lines)-1], "…") {
		t.Fatalf("expected ellipsis on the trimmed last line, got %q", lines[len(lines)-1])
	}
}

func TestCellWidthFallsBackWhenUnsized(t *testing.T) {
	m := newTestModel(t, Options{}, 2, 2, state.MatchPattern, "alpha")
	if w := m.cellWidth(); w != defaultCellWidth {
		t.Fatalf("expected fallback width %d, got %d", defaultCellWidth, w)
	}
	m.handleWindowSizeMsg(tea.WindowSizeMsg{Width: 52, Height: 20})
	if w := m.cellWidth(); w != 25 {
		t.Fatalf("expected derived width 25 at 52 columns, got %d", w)
	}
}
