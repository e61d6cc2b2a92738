package state

// Movement works in cell coordinates. Every transition reads the
// visible count before mutating, so preconditions are checked against
// the state the user saw; methods report whether anything changed.

// MoveUp steps one cell up within the column. On a column top with
// pages above, the previous page scrolls in and the cursor lands on the
// bottom of the same column.
func (g *Grid) MoveUp() bool {
	if g.Cursor%g.Rows != 0 {
		g.Cursor--
		return true
	}
	if g.Scroll > 0 {
		g.Scroll--
		g.Cursor += g.Rows - 1
		return true
	}
	return false
}

// MoveDown steps one cell down within the column. On a column bottom
// with more items below the page, the next page scrolls in and the
// cursor lands on the top of the same column, clamped to the last item.
func (g *Grid) MoveDown() bool {
	count := g.visibleCount()
	if g.Cursor%g.Rows < g.Rows-1 && g.Cursor < count-1 {
		g.Cursor++
		return true
	}
	if g.Cursor%g.Rows == g.Rows-1 && count > g.Area() {
		g.Scroll++
		g.Cursor = min(g.Cursor+1-g.Rows, count-g.Area()-1)
		return true
	}
	return false
}

// MoveLeft steps one column left.
func (g *Grid) MoveLeft() bool {
	if g.Cursor >= g.Rows {
		g.Cursor -= g.Rows
		return true
	}
	return false
}

// MoveRight steps one column right while a populated cell exists there.
func (g *Grid) MoveRight() bool {
	limit := min(g.visibleCount(), g.Area())
	if g.Cursor+g.Rows < limit {
		g.Cursor += g.Rows
		return true
	}
	return false
}

// ScrollDown advances one page while items remain below the current
// one, clamping the cursor to the shrunken remainder.
func (g *Grid) ScrollDown() bool {
	count := g.visibleCount()
	if count <= g.Area() {
		return false
	}
	g.Scroll++
	g.Cursor = min(g.Cursor, count-g.Area()-1)
	return true
}

// ScrollUp backs up one page. The cursor keeps its cell: earlier pages
// are always fully populated.
func (g *Grid) ScrollUp() bool {
	if g.Scroll == 0 {
		return false
	}
	g.Scroll--
	return true
}
