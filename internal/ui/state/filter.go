package state

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/Beinsezii/linch/internal/catalog"
)

// MatchMode selects how typed input narrows the catalog.
type MatchMode int

const (
	// MatchPattern treats the input as a case-insensitive regular
	// expression matching anywhere in the name.
	MatchPattern MatchMode = iota
	// MatchLiteral keeps the input verbatim as a case-sensitive name
	// prefix.
	MatchLiteral
	// MatchFuzzy applies a normalized case-folding fuzzy match.
	MatchFuzzy
)

// ParseMatchMode maps a configuration string onto a match mode. The
// empty string means the default pattern mode.
func ParseMatchMode(s string) (MatchMode, error) {
	switch s {
	case "", "pattern":
		return MatchPattern, nil
	case "literal":
		return MatchLiteral, nil
	case "fuzzy":
		return MatchFuzzy, nil
	}
	return MatchPattern, fmt.Errorf("unknown match mode %q", s)
}

func (m MatchMode) String() string {
	switch m {
	case MatchLiteral:
		return "literal"
	case MatchFuzzy:
		return "fuzzy"
	default:
		return "pattern"
	}
}

// SetInput replaces the typed input and caret, recompiles the matcher,
// and resets the cursor and scroll to the origin. Compilation happens
// once per input change; the filtered view itself stays lazy.
func (g *Grid) SetInput(input string, cursor int) {
	g.Input = input
	runes := []rune(input)
	if cursor < 0 {
		cursor = 0
	}
	if cursor > len(runes) {
		cursor = len(runes)
	}
	g.InputCursor = cursor
	g.compile()
	g.Cursor = 0
	g.Scroll = 0
}

// compile refreshes the pattern matcher. In pattern mode an input that
// fails to compile leaves the matcher unset, degrading matching to the
// literal prefix rule until the input changes to a valid pattern.
func (g *Grid) compile() {
	g.pattern = nil
	if g.mode != MatchPattern || g.Input == "" {
		return
	}
	re, err := regexp.Compile("(?i)" + g.Input)
	if err != nil {
		return
	}
	g.pattern = re
}

// PatternValid reports whether the current input is usable in pattern
// mode. Empty input and non-pattern modes are trivially valid.
func (g *Grid) PatternValid() bool {
	return g.mode != MatchPattern || g.Input == "" || g.pattern != nil
}

// matches applies the active mode to one catalog name.
func (g *Grid) matches(name string) bool {
	if g.Input == "" {
		return true
	}
	switch g.mode {
	case MatchLiteral:
		return strings.HasPrefix(name, g.Input)
	case MatchFuzzy:
		return fuzzy.MatchNormalizedFold(g.Input, name)
	default:
		if g.pattern != nil {
			return g.pattern.MatchString(name)
		}
		return strings.HasPrefix(name, g.Input)
	}
}

// FilteredLen counts the entries passing the active matcher.
func (g *Grid) FilteredLen() int {
	n := 0
	for _, e := range g.entries {
		if g.matches(e.Name()) {
			n++
		}
	}
	return n
}

// FilteredAt returns the nth entry of the filtered view.
func (g *Grid) FilteredAt(n int) (catalog.Entry, bool) {
	if n < 0 {
		return nil, false
	}
	for _, e := range g.entries {
		if !g.matches(e.Name()) {
			continue
		}
		if n == 0 {
			return e, true
		}
		n--
	}
	return nil, false
}

// Page returns the filtered entries visible on the current scroll page,
// at most Area of them.
func (g *Grid) Page() []catalog.Entry {
	skip := g.Scroll * g.Area()
	page := make([]catalog.Entry, 0, g.Area())
	for _, e := range g.entries {
		if !g.matches(e.Name()) {
			continue
		}
		if skip > 0 {
			skip--
			continue
		}
		page = append(page, e)
		if len(page) == g.Area() {
			break
		}
	}
	return page
}

// InputCursorPos returns the caret as a rune offset clamped into the
// current input.
func (g *Grid) InputCursorPos() int {
	runes := []rune(g.Input)
	if g.InputCursor < 0 {
		return 0
	}
	if g.InputCursor > len(runes) {
		return len(runes)
	}
	return g.InputCursor
}

// InsertInputText inserts text at the caret.
func (g *Grid) InsertInputText(text string) bool {
	insert := []rune(text)
	if len(insert) == 0 {
		return false
	}
	runes := []rune(g.Input)
	pos := g.InputCursorPos()
	updated := make([]rune, 0, len(runes)+len(insert))
	updated = append(updated, runes[:pos]...)
	updated = append(updated, insert...)
	updated = append(updated, runes[pos:]...)
	g.SetInput(string(updated), pos+len(insert))
	return true
}

// DeleteInputRuneBackward deletes the rune before the caret.
func (g *Grid) DeleteInputRuneBackward() bool {
	runes := []rune(g.Input)
	pos := g.InputCursorPos()
	if pos == 0 || len(runes) == 0 {
		return false
	}
	updated := append(runes[:pos-1], runes[pos:]...)
	g.SetInput(string(updated), pos-1)
	return true
}

// DeleteInputWordBackward deletes the word preceding the caret.
func (g *Grid) DeleteInputWordBackward() bool {
	runes := []rune(g.Input)
	pos := g.InputCursorPos()
	if pos == 0 || len(runes) == 0 {
		return false
	}
	i := pos
	for i > 0 && unicode.IsSpace(runes[i-1]) {
		i--
	}
	for i > 0 && !unicode.IsSpace(runes[i-1]) {
		i--
	}
	updated := append(runes[:i], runes[pos:]...)
	g.SetInput(string(updated), i)
	return true
}

// ClearInput drops the whole input.
func (g *Grid) ClearInput() bool {
	if g.Input == "" {
		return false
	}
	g.SetInput("", 0)
	return true
}

// MoveInputCursorStart moves the caret to the start.
func (g *Grid) MoveInputCursorStart() bool {
	if g.InputCursorPos() == 0 {
		return false
	}
	g.InputCursor = 0
	return true
}

// MoveInputCursorEnd moves the caret past the last rune.
func (g *Grid) MoveInputCursorEnd() bool {
	end := len([]rune(g.Input))
	if g.InputCursorPos() == end {
		return false
	}
	g.InputCursor = end
	return true
}

// MoveInputCursorRuneBackward moves the caret one rune left.
func (g *Grid) MoveInputCursorRuneBackward() bool {
	pos := g.InputCursorPos()
	if pos == 0 {
		return false
	}
	g.InputCursor = pos - 1
	return true
}

// MoveInputCursorRuneForward moves the caret one rune right.
func (g *Grid) MoveInputCursorRuneForward() bool {
	runes := []rune(g.Input)
	pos := g.InputCursorPos()
	if pos >= len(runes) {
		return false
	}
	g.InputCursor = pos + 1
	return true
}

// MoveInputCursorWordBackward moves the caret to the start of the
// previous word.
func (g *Grid) MoveInputCursorWordBackward() bool {
	runes := []rune(g.Input)
	pos := g.InputCursorPos()
	if pos == 0 || len(runes) == 0 {
		return false
	}
	i := pos
	for i > 0 && unicode.IsSpace(runes[i-1]) {
		i--
	}
	for i > 0 && !unicode.IsSpace(runes[i-1]) {
		i--
	}
	if i == pos {
		return false
	}
	g.InputCursor = i
	return true
}

// MoveInputCursorWordForward moves the caret past the end of the next
// word.
func (g *Grid) MoveInputCursorWordForward() bool {
	runes := []rune(g.Input)
	pos := g.InputCursorPos()
	if pos >= len(runes) {
		return false
	}
	i := pos
	for i < len(runes) && !unicode.IsSpace(runes[i]) {
		i++
	}
	for i < len(runes) && unicode.IsSpace(runes[i]) {
		i++
	}
	if i == pos {
		return false
	}
	g.InputCursor = i
	return true
}
