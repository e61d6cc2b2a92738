package state

import "testing"

func TestMoveDownWithinColumnAndPageFlip(t *testing.T) {
	g := numberedGrid(2, 2, 10) // area 4, pages: 0-3, 4-7, 8-9

	if !g.MoveDown() {
		t.Fatal("expected move within column")
	}
	if g.Cursor != 1 || g.Scroll != 0 {
		t.Fatalf("expected cursor 1 on page 0, got cursor=%d scroll=%d", g.Cursor, g.Scroll)
	}

	// Column bottom with items below: flip to the next page, same column.
	if !g.MoveDown() {
		t.Fatal("expected page flip")
	}
	if g.Cursor != 0 || g.Scroll != 1 {
		t.Fatalf("expected cursor 0 on page 1, got cursor=%d scroll=%d", g.Cursor, g.Scroll)
	}
}

func TestMoveDownStopsAtLastItem(t *testing.T) {
	g := numberedGrid(2, 2, 3) // one page: cells 0,1,2

	g.Cursor = 2
	if g.MoveDown() {
		t.Fatal("expected no move past the last item")
	}
	if g.Cursor != 2 || g.Scroll != 0 {
		t.Fatalf("state changed on refused move: cursor=%d scroll=%d", g.Cursor, g.Scroll)
	}
}

func TestMoveDownClampsOnPartialLastPage(t *testing.T) {
	g := numberedGrid(2, 2, 5) // pages: 0-3, 4

	g.Cursor = 3 // bottom of column 1
	if !g.MoveDown() {
		t.Fatal("expected page flip from column bottom")
	}
	// count=5 > area=4; cursor = min(3+1-2, 5-4-1) = min(2, 0) = 0.
	if g.Scroll != 1 || g.Cursor != 0 {
		t.Fatalf("expected clamp onto the only remaining item, got cursor=%d scroll=%d", g.Cursor, g.Scroll)
	}
	if _, ok := g.Selected(); !ok {
		t.Fatal("expected cursor on a populated cell after flip")
	}
}

func TestMoveUpWithinColumnAndPageBack(t *testing.T) {
	g := numberedGrid(2, 2, 10)
	g.Scroll = 1
	g.Cursor = 0

	if !g.MoveUp() {
		t.Fatal("expected page back from column top")
	}
	if g.Scroll != 0 || g.Cursor != 1 {
		t.Fatalf("expected bottom of column 0 on page 0, got cursor=%d scroll=%d", g.Cursor, g.Scroll)
	}

	if !g.MoveUp() {
		t.Fatal("expected move within column")
	}
	if g.Cursor != 0 {
		t.Fatalf("expected cursor 0, got %d", g.Cursor)
	}

	if g.MoveUp() {
		t.Fatal("expected no move above the first item")
	}
}

func TestMoveAcrossColumns(t *testing.T) {
	g := numberedGrid(2, 2, 10)

	if !g.MoveRight() {
		t.Fatal("expected move right")
	}
	if g.Cursor != 2 {
		t.Fatalf("expected cursor 2, got %d", g.Cursor)
	}
	if g.MoveRight() {
		t.Fatal("expected no move past the last column")
	}
	if !g.MoveLeft() {
		t.Fatal("expected move left")
	}
	if g.Cursor != 0 {
		t.Fatalf("expected cursor 0, got %d", g.Cursor)
	}
	if g.MoveLeft() {
		t.Fatal("expected no move past the first column")
	}
}

func TestMoveRightRespectsPartialPage(t *testing.T) {
	g := numberedGrid(2, 2, 3) // cells 0,1,2: column 1 has a single item

	// Cell 3 is empty, so the bottom row refuses the move.
	g.Cursor = 1
	if g.MoveRight() {
		t.Fatalf("expected refusal onto the empty cell, cursor=%d", g.Cursor)
	}

	g.Cursor = 0
	if !g.MoveRight() {
		t.Fatal("expected move onto the populated cell")
	}
	if g.Cursor != 2 {
		t.Fatalf("expected cursor 2, got %d", g.Cursor)
	}
}

func TestScrollDownClampsCursor(t *testing.T) {
	g := numberedGrid(2, 2, 10)
	g.Scroll = 1
	g.Cursor = 3

	if !g.ScrollDown() {
		t.Fatal("expected scroll down")
	}
	// count was 6; cursor = min(3, 6-4-1) = 1.
	if g.Scroll != 2 || g.Cursor != 1 {
		t.Fatalf("expected scroll 2 cursor 1, got scroll=%d cursor=%d", g.Scroll, g.Cursor)
	}

	if g.ScrollDown() {
		t.Fatal("expected no scroll past the last page")
	}
}

func TestScrollUpKeepsCursorCell(t *testing.T) {
	g := numberedGrid(2, 2, 10)
	g.Scroll = 2
	g.Cursor = 1

	if !g.ScrollUp() {
		t.Fatal("expected scroll up")
	}
	if g.Scroll != 1 || g.Cursor != 1 {
		t.Fatalf("expected cursor cell kept, got scroll=%d cursor=%d", g.Scroll, g.Cursor)
	}

	g.Scroll = 0
	if g.ScrollUp() {
		t.Fatal("expected no scroll above the first page")
	}
}

func TestMovementOnEmptyViewIsInert(t *testing.T) {
	g := newTestGrid(2, 2, MatchLiteral, "alpha", "beta")
	g.SetInput("zzz", 3)

	for name, move := range map[string]func() bool{
		"up":          g.MoveUp,
		"down":        g.MoveDown,
		"left":        g.MoveLeft,
		"right":       g.MoveRight,
		"scroll down": g.ScrollDown,
		"scroll up":   g.ScrollUp,
	} {
		if move() {
			t.Fatalf("%s: expected refusal on empty view", name)
		}
		if g.Cursor != 0 || g.Scroll != 0 {
			t.Fatalf("%s: state drifted to cursor=%d scroll=%d", name, g.Cursor, g.Scroll)
		}
	}
}

// Every reachable state must keep the cursor inside the page and on a
// populated cell; exhaust short event sequences to check it.
func TestMovementSequencesStayInBounds(t *testing.T) {
	moves := []func(g *Grid) bool{
		(*Grid).MoveUp,
		(*Grid).MoveDown,
		(*Grid).MoveLeft,
		(*Grid).MoveRight,
		(*Grid).ScrollDown,
		(*Grid).ScrollUp,
	}

	for _, total := range []int{0, 1, 3, 4, 5, 9, 10} {
		g := numberedGrid(2, 2, total)
		// Depth-six walk over all move combinations, reusing one grid;
		// invariants must hold at every step regardless of history.
		var walk func(depth int)
		walk = func(depth int) {
			if depth == 0 {
				return
			}
			for _, move := range moves {
				saveCursor, saveScroll := g.Cursor, g.Scroll
				moved := move(g)
				if g.Cursor < 0 || g.Cursor >= g.Area() {
					t.Fatalf("total=%d: cursor %d escaped the page", total, g.Cursor)
				}
				if g.Scroll < 0 {
					t.Fatalf("total=%d: negative scroll %d", total, g.Scroll)
				}
				if total > 0 && moved {
					if _, ok := g.Selected(); !ok {
						t.Fatalf("total=%d: cursor=%d scroll=%d addresses an empty cell",
							total, g.Cursor, g.Scroll)
					}
				}
				walk(depth - 1)
				g.Cursor, g.Scroll = saveCursor, saveScroll
			}
		}
		walk(6)
	}
}
