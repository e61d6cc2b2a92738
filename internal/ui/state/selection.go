package state

import "github.com/Beinsezii/linch/internal/catalog"

// AbsoluteIndex is the filtered-view position addressed by the cursor
// on the current page.
func (g *Grid) AbsoluteIndex() int {
	return g.Cursor + g.Scroll*g.Area()
}

// Selected resolves the entry under the cursor. The second result is
// false when the cursor addresses an empty cell, such as on an
// over-narrowed view.
func (g *Grid) Selected() (catalog.Entry, bool) {
	return g.FilteredAt(g.AbsoluteIndex())
}

// SelectCell places the cursor on a page cell, reporting whether the
// cell addressed a filtered entry. Out-of-page or empty cells leave the
// cursor alone.
func (g *Grid) SelectCell(cell int) bool {
	if cell < 0 || cell >= g.Area() {
		return false
	}
	if cell >= min(g.visibleCount(), g.Area()) {
		return false
	}
	g.Cursor = cell
	return true
}

// ToggleFocus flips arrow-key ownership between the input line and the
// grid. Typed runes reach the input either way.
func (g *Grid) ToggleFocus() {
	g.InputFocused = !g.InputFocused
}
