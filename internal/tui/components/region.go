package components

import (
	"strings"

	"github.com/mmcdole/reel/internal/domain"
	"github.com/mmcdole/reel/internal/tui/styles"
)

// Region is a rectangular area of the screen assigned to one renderer.
// X and Y are the top-left corner in screen cells.
type Region struct {
	X, Y          int
	Width, Height int
}

// Empty reports whether the region has no drawable cells
func (r Region) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// MovieSource is the read side of the selection model. Renderers only read.
type MovieSource interface {
	List() []domain.Movie
	Selected() (int, bool)
	SelectedMovie() (domain.Movie, bool)
}

// canvas is a cleared block of width x height cells. Each row holds at
// most one piece of text; rows outside the block are dropped.
type canvas struct {
	width int
	rows  []string
}

func newCanvas(width, height int) *canvas {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	c := &canvas{width: width, rows: make([]string, height)}
	blank := styles.Spaces(width)
	for i := range c.rows {
		c.rows[i] = blank
	}
	return c
}

// put writes text at row y, column x, replacing the row
func (c *canvas) put(y, x int, text string) {
	if y < 0 || y >= len(c.rows) {
		return
	}
	c.rows[y] = styles.Place(text, x, c.width)
}

func (c *canvas) String() string {
	return strings.Join(c.rows, "\n")
}
