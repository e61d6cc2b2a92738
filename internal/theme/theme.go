package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Item                  *lipgloss.Style
	ItemIndicator         *lipgloss.Style
	SelectedItem          *lipgloss.Style
	SelectedItemIndicator *lipgloss.Style
	Error                 *lipgloss.Style
	Info                  *lipgloss.Style
	Footer                *lipgloss.Style
	Input                 *lipgloss.Style
	InputPrompt           *lipgloss.Style
	InputPromptBlurred    *lipgloss.Style
	InputPlaceholder      *lipgloss.Style
	Cursor                *lipgloss.Style
}

var defaultStyles = Styles{
	Item: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	ItemIndicator: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	),
	SelectedItem: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true),
	),
	SelectedItemIndicator: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Background(lipgloss.Color("238")),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Info: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	Input: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	InputPrompt: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	),
	InputPromptBlurred: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	InputPlaceholder: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	Cursor: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("33")).Blink(true),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

// Apply overrides the default palette in place. fg recolors regular
// text, bg recolors text drawn over the accent, and accent recolors
// the prompt, cursor, and highlighted-cell background. Empty values
// keep the defaults; values are hex or ANSI-256 color strings.
func Apply(fg, bg, accent string) {
	if fg != "" {
		c := lipgloss.Color(fg)
		foreground(defaultStyles.Item, c)
		foreground(defaultStyles.Info, c)
		foreground(defaultStyles.Input, c)
		foreground(defaultStyles.Footer, c)
	}
	if bg != "" {
		c := lipgloss.Color(bg)
		foreground(defaultStyles.SelectedItem, c)
		foreground(defaultStyles.Cursor, c)
	}
	if accent != "" {
		c := lipgloss.Color(accent)
		background(defaultStyles.SelectedItem, c)
		background(defaultStyles.SelectedItemIndicator, c)
		background(defaultStyles.Cursor, c)
		foreground(defaultStyles.InputPrompt, c)
	}
}

func foreground(style *lipgloss.Style, c lipgloss.Color) {
	if style != nil {
		*style = style.Foreground(c)
	}
}

func background(style *lipgloss.Style, c lipgloss.Color) {
	if style != nil {
		*style = style.Background(c)
	}
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
