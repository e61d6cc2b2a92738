package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/Beinsezii/linch/internal/catalog"
	gridfmt "github.com/Beinsezii/linch/internal/format/grid"
)

// defaultCellWidth sizes grid cells before the first WindowSizeMsg
// arrives, or when no terminal width is known at all.
const defaultCellWidth = 24

type styledLine struct {
	text  string
	style *lipgloss.Style
	raw   bool // text contains ANSI escapes; skip style wrapping, use ANSI-aware truncation
}

// View implements tea.Model. Layout, top to bottom: input line, status
// line, the rows×columns grid, and an optional footer.
func (m *Model) View() string {
	lines := make([]styledLine, 0, m.grid.Rows+4)
	lines = append(lines, styledLine{text: m.inputLine(), raw: true})
	lines = append(lines, m.statusLine())

	if m.grid.FilteredLen() == 0 {
		msg := "(no entries)"
		if m.grid.Input != "" {
			msg = fmt.Sprintf("No matches for %q", m.grid.Input)
		}
		lines = append(lines, styledLine{text: msg, style: styles.Info})
	} else {
		page := m.grid.Page()
		cellW := m.cellWidth()
		for r := 0; r < m.grid.Rows; r++ {
			var b strings.Builder
			for c := 0; c < m.grid.Columns; c++ {
				if c > 0 {
					b.WriteString(gridfmt.Gap())
				}
				b.WriteString(m.renderCell(page, r+m.grid.Rows*c, cellW))
			}
			lines = append(lines, styledLine{text: b.String(), raw: true})
		}
	}

	if m.showFooter {
		lines = append(lines, styledLine{})
		counter := fmt.Sprintf("%d/%d", m.grid.FilteredLen(), len(m.grid.Entries()))
		hints := "arrows move  enter launch  tab focus  del forget  esc cancel"
		lines = append(lines, styledLine{text: counter + "  " + hints, style: styles.Footer})
	}

	lines = limitHeight(lines, m.height, m.width)
	lines = applyWidth(lines, m.width)
	return renderLines(lines)
}

// statusLine surfaces the most urgent transient state: an error, a
// degraded pattern, or an informational note.
func (m *Model) statusLine() styledLine {
	if m.errMsg != "" {
		return styledLine{text: fmt.Sprintf("Error: %s", m.errMsg), style: styles.Error}
	}
	if !m.grid.PatternValid() {
		return styledLine{text: "(invalid pattern; matching literal prefix)", style: styles.InputPlaceholder}
	}
	if info := m.currentInfo(); info != "" {
		return styledLine{text: info, style: styles.Info}
	}
	return styledLine{}
}

func (m *Model) cellWidth() int {
	if w := gridfmt.CellWidth(m.width, m.grid.Columns); w > 0 {
		return w
	}
	return defaultCellWidth
}

// renderCell draws one grid cell: an indicator bar plus the padded
// name, in the accent colors when the cursor sits on it.
func (m *Model) renderCell(page []catalog.Entry, idx, width int) string {
	if idx >= len(page) {
		return strings.Repeat(" ", width)
	}
	body := " " + gridfmt.Cell(page[idx].Name(), width-2)
	indicator := "▌"
	indicatorStyle := styles.ItemIndicator
	bodyStyle := styles.Item
	if idx == m.grid.Cursor {
		indicatorStyle = styles.SelectedItemIndicator
		bodyStyle = styles.SelectedItem
	}
	if indicatorStyle != nil {
		indicator = indicatorStyle.Render(indicator)
	}
	if bodyStyle != nil {
		body = bodyStyle.Render(body)
	}
	return indicator + body
}

func limitHeight(lines []styledLine, height, width int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []styledLine{{text: truncateText("…", width)}}
	}
	trimmed := make([]styledLine, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	trimmed = append(trimmed, styledLine{text: truncateText("…", width)})
	return trimmed
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			if w := lipgloss.Width(text); w > width {
				text = truncate.StringWithTail(text, uint(width-1), "…")
			}
		} else {
			text = truncateText(text, width)
		}
		result[i] = styledLine{text: text, style: line.style, raw: line.raw}
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		if !line.raw && line.style != nil {
			text = line.style.Render(text)
		}
		out[i] = text
	}
	return strings.Join(out, "\n")
}

func truncateText(text string, width int) string {
	if width <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= width {
		return text
	}
	if width == 1 {
		return string(runes[:1])
	}
	return string(runes[:width-1]) + "…"
}
