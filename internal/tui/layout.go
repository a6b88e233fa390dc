package tui

import "github.com/mmcdole/reel/internal/tui/components"

// Vertical layout: header line on top, help footer at the bottom
const (
	HeaderHeight = 1
	FooterHeight = 1
)

// screenLayout holds the regions assigned to each view
type screenLayout struct {
	screenWidth int
	header      components.Region
	list        components.Region
	detail      components.Region
	footer      components.Region
}

// calculateLayout splits a width x height terminal into regions. The last
// column is left unused.
func calculateLayout(width, height, detailWidth int) screenLayout {
	screenW := max(width-1, 0)
	bodyH := max(height-HeaderHeight-FooterHeight, 0)
	detailW := min(detailWidth, screenW)
	listW := screenW - detailW

	return screenLayout{
		screenWidth: screenW,
		header:      components.Region{X: 0, Y: 0, Width: screenW, Height: HeaderHeight},
		list:        components.Region{X: 0, Y: HeaderHeight, Width: listW, Height: bodyH},
		detail:      components.Region{X: listW, Y: HeaderHeight, Width: detailW, Height: bodyH},
		footer:      components.Region{X: 0, Y: HeaderHeight + bodyH, Width: screenW, Height: FooterHeight},
	}
}

// updateLayout assigns regions to every view based on the window size
func (m *Model) updateLayout() {
	if m.Width == 0 || m.Height == 0 {
		return
	}

	layout := calculateLayout(m.Width, m.Height, m.detailWidth)
	m.Header.SetRegion(layout.header, layout.screenWidth)
	m.List.SetRegion(layout.list)
	m.Detail.SetRegion(layout.detail)
	m.footer = layout.footer
	m.Help.Width = layout.footer.Width
}
