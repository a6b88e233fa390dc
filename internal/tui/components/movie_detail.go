package components

import (
	"strings"

	"github.com/mmcdole/reel/internal/domain"
	"github.com/mmcdole/reel/internal/tui/styles"
)

// Layout constants for the detail panel, in region rows/columns
const (
	posterHeight    = 10 // Poster occupies rows 1..posterHeight-1
	posterWidth     = 14
	posterLabel     = "### POSTER ###"
	detailFieldsRow = 12
	detailIndent    = 2
	detailMargin    = 4 // Description wraps at region width minus this
)

// MovieDetail draws a bordered panel with the selected movie's fields
type MovieDetail struct {
	model  MovieSource
	region Region
}

// NewMovieDetail creates a detail view over model
func NewMovieDetail(model MovieSource) MovieDetail {
	return MovieDetail{model: model}
}

// SetRegion assigns the panel's region
func (d *MovieDetail) SetRegion(r Region) {
	d.region = r
}

// View renders the panel. Content below the region is clipped.
func (d MovieDetail) View() string {
	style := styles.PanelBorder
	frameW, frameH := style.GetFrameSize()
	if d.region.Width < frameW || d.region.Height < frameH {
		return newCanvas(d.region.Width, d.region.Height).String()
	}

	// Interior coordinates are region coordinates shifted by the border
	c := newCanvas(d.region.Width-frameW, d.region.Height-frameH)
	if movie, ok := d.model.SelectedMovie(); ok {
		d.drawMovie(c, movie)
	}

	return style.
		Width(d.region.Width - frameW).
		Height(d.region.Height - frameH).
		Render(c.String())
}

func (d MovieDetail) drawMovie(c *canvas, movie domain.Movie) {
	put := func(y, x int, text string) {
		c.put(y-1, x-1, text)
	}

	posterX := d.region.Width/2 - posterWidth/2
	for y := 1; y < posterHeight; y++ {
		line := strings.Repeat("#", posterWidth)
		if y == posterHeight/2 {
			line = posterLabel
		}
		put(y, posterX, styles.DimStyle.Render(line))
	}

	fields := []struct {
		label string
		value string
	}{
		{"Title", movie.Title},
		{"Genre", movie.Genre},
		{"Release Date", movie.FormattedReleaseDate()},
		{"Age Rating", string(movie.AgeRating)},
	}

	y := detailFieldsRow
	for _, f := range fields {
		put(y, detailIndent, styles.EmphasisStyle.Render(f.label))
		put(y+1, detailIndent, f.value)
		y += 2
	}

	put(y, detailIndent, styles.EmphasisStyle.Render("Description"))
	for _, chunk := range chunkRunes(movie.Description, d.region.Width-detailMargin) {
		y++
		put(y, detailIndent, chunk)
	}
}

// chunkRunes splits s into pieces of size runes, ignoring word boundaries
func chunkRunes(s string, size int) []string {
	if size <= 0 || s == "" {
		return nil
	}
	runes := []rune(s)
	chunks := make([]string, 0, len(runes)/size+1)
	for i := 0; i < len(runes); i += size {
		end := min(i+size, len(runes))
		chunks = append(chunks, string(runes[i:end]))
	}
	return chunks
}
