// Package grid sizes text into the fixed-width cells of the result
// grid. Widths are display columns, not runes, so wide characters and
// combining marks line up.
package grid

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"
)

const gap = 2

// Cell fits text into exactly width display columns, truncating long
// text with an ellipsis tail and padding short text with spaces.
func Cell(text string, width int) string {
	if width <= 0 {
		return ""
	}
	if w := runewidth.StringWidth(text); w > width {
		text = truncate.StringWithTail(text, uint(width), "…")
	}
	if pad := width - runewidth.StringWidth(text); pad > 0 {
		text += strings.Repeat(" ", pad)
	}
	return text
}

// CellWidth splits a total width into equal cells separated by the
// standard gap. A non-positive total reports zero, meaning unsized.
func CellWidth(total, columns int) int {
	if total <= 0 || columns < 1 {
		return 0
	}
	w := (total - (columns-1)*gap) / columns
	if w < 1 {
		return 1
	}
	return w
}

// Gap is the fixed spacing between adjacent cells.
func Gap() string {
	return strings.Repeat(" ", gap)
}

// GapWidth reports the spacing between adjacent cells in columns.
func GapWidth() int { return gap }
