package components

import (
	"github.com/mmcdole/reel/internal/tui/styles"
)

// Layout constants for the movie list
const (
	listHeaderRow = 1
	listFirstRow  = 2 // Row of the first movie
	listIndent    = 2
)

// movieRow is one line of the list: the title column is padded to the
// configured width, genre and premier date follow without alignment.
type movieRow struct {
	Title   string
	Genre   string
	Premier string
}

// MovieList draws the catalog as rows, emphasizing the selected one.
// Rows that do not fit the region are not drawn.
type MovieList struct {
	model      MovieSource
	region     Region
	titleWidth int
}

// NewMovieList creates a list view over model
func NewMovieList(model MovieSource, titleWidth int) MovieList {
	return MovieList{model: model, titleWidth: titleWidth}
}

// SetRegion assigns the list's region
func (l *MovieList) SetRegion(r Region) {
	l.region = r
}

// View renders the list region
func (l MovieList) View() string {
	c := newCanvas(l.region.Width, l.region.Height)

	heading := l.formatRow(movieRow{Title: "Title", Genre: "Genre", Premier: "Premier"})
	c.put(listHeaderRow, listIndent, styles.EmphasisStyle.Render(heading))

	selected, hasSelection := l.model.Selected()
	for idx, movie := range l.model.List() {
		if idx+listFirstRow >= l.region.Height-1 {
			break
		}

		row := l.formatRow(movieRow{
			Title:   movie.Title,
			Genre:   movie.Genre,
			Premier: movie.FormattedReleaseDate(),
		})

		style := styles.NormalStyle
		if hasSelection && idx == selected {
			style = styles.EmphasisStyle
		}
		c.put(idx+listFirstRow, listIndent, style.Render(row))
	}

	return c.String()
}

// formatRow pads the title to the title column width. A title longer than
// the column is not cut; the row is clipped at the region edge instead.
func (l MovieList) formatRow(r movieRow) string {
	return styles.PadRight(r.Title, l.titleWidth) + r.Genre + " " + r.Premier
}
