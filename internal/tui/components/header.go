package components

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/reel/internal/tui/styles"
)

// Header draws a fixed title centred on the screen
type Header struct {
	title  string
	region Region
	center int
}

// NewHeader creates a header for the given title
func NewHeader(title string) Header {
	return Header{title: title}
}

// SetRegion assigns the header's region. The centre column is computed here
// against the full screen width, not per frame.
func (h *Header) SetRegion(r Region, screenWidth int) {
	h.region = r
	h.center = screenWidth/2 - lipgloss.Width(h.title)/2
}

// Center returns the column the title starts at
func (h Header) Center() int {
	return h.center
}

// View renders the header region
func (h Header) View() string {
	c := newCanvas(h.region.Width, h.region.Height)
	c.put(0, h.center-h.region.X, styles.HeaderStyle.Render(h.title))
	return c.String()
}
