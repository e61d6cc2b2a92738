// Package state models the navigation state of one launcher session: a
// ranked catalog, the typed input with its caret, and a cursor/scroll
// pair addressing a rows-by-columns window over the filtered view.
//
// Cells fill column-major: grid cell (row r, column c) shows filtered
// item r + rows*c of the current page. The cursor is always a cell
// index below rows*columns; the absolute filtered position is
// cursor + scroll*rows*columns.
package state

import (
	"regexp"

	"github.com/Beinsezii/linch/internal/catalog"
)

// Grid is the navigation state machine. Rows and Columns are fixed for
// the lifetime of a session; Columns is derived once from the unfiltered
// catalog size.
type Grid struct {
	entries []catalog.Entry

	Input        string
	InputCursor  int
	InputFocused bool

	Cursor int
	Scroll int

	Rows    int
	Columns int

	mode    MatchMode
	pattern *regexp.Regexp
}

// NewGrid builds a session grid over ranked entries. The column count is
// ceil(len(entries)/rows) clamped to [1, maxColumns]; rows and
// maxColumns below one are raised to one.
func NewGrid(entries []catalog.Entry, rows, maxColumns int, mode MatchMode) *Grid {
	if rows < 1 {
		rows = 1
	}
	if maxColumns < 1 {
		maxColumns = 1
	}
	columns := (len(entries) + rows - 1) / rows
	if columns < 1 {
		columns = 1
	}
	if columns > maxColumns {
		columns = maxColumns
	}
	return &Grid{
		entries: entries,
		Rows:    rows,
		Columns: columns,
		mode:    mode,
	}
}

// Entries returns the ranked, unfiltered catalog backing the grid.
func (g *Grid) Entries() []catalog.Entry { return g.entries }

// Mode returns the active match mode.
func (g *Grid) Mode() MatchMode { return g.mode }

// Area is the number of cells on one page.
func (g *Grid) Area() int { return g.Rows * g.Columns }

// visibleCount is the filtered length minus the cells scrolled past,
// floored at zero. Movement transitions read it before mutating.
func (g *Grid) visibleCount() int {
	count := g.FilteredLen() - g.Scroll*g.Area()
	if count < 0 {
		return 0
	}
	return count
}

// ReplaceEntries swaps in a re-ranked catalog after a frecency deletion.
// Rows and Columns keep their session values; the cursor and scroll are
// clamped into the re-derived filtered view.
func (g *Grid) ReplaceEntries(entries []catalog.Entry) {
	g.entries = entries
	g.clampView()
}

func (g *Grid) clampView() {
	length := g.FilteredLen()
	if length == 0 {
		g.Cursor = 0
		g.Scroll = 0
		return
	}
	area := g.Area()
	maxScroll := (length - 1) / area
	if g.Scroll > maxScroll {
		g.Scroll = maxScroll
	}
	limit := min(length-g.Scroll*area, area)
	if g.Cursor >= limit {
		g.Cursor = limit - 1
	}
	if g.Cursor < 0 {
		g.Cursor = 0
	}
}
