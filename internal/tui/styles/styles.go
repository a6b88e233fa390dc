package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Color palette
var (
	Amber     = lipgloss.Color("#E5A00D")
	DimGray   = lipgloss.Color("#6B7280")
	LightGray = lipgloss.Color("#9CA3AF")
	White     = lipgloss.Color("#F9FAFB")
)

// Borders
var (
	PanelBorder = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(DimGray)
)

// Text styles
var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(Amber).
			Bold(true)

	// EmphasisStyle marks the selected row, column headings and field labels
	EmphasisStyle = lipgloss.NewStyle().
			Foreground(White).
			Bold(true)

	NormalStyle = lipgloss.NewStyle().
			Foreground(LightGray)

	DimStyle = lipgloss.NewStyle().
			Foreground(DimGray).
			Faint(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EF4444"))
)

// Help styles
var (
	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(Amber)

	HelpDescStyle = lipgloss.NewStyle().
			Foreground(DimGray)
)

// Helper functions

// PadRight appends spaces to s until it is width cells wide. Strings already
// at or past width are returned unchanged.
func PadRight(s string, width int) string {
	return s + Spaces(width-lipgloss.Width(s))
}

// Spaces returns n spaces, or "" for n <= 0
func Spaces(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}

// Clip cuts a possibly styled line to width cells
func Clip(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(s, width, "")
}

// Place renders text at column x of a line that is width cells wide
func Place(text string, x, width int) string {
	if x < 0 {
		x = 0
	}
	line := Clip(Spaces(x)+text, width)
	return PadRight(line, width)
}
