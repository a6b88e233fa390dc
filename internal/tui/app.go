package tui

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/reel/internal/catalog"
	"github.com/mmcdole/reel/internal/config"
	"github.com/mmcdole/reel/internal/tui/components"
	"github.com/mmcdole/reel/internal/tui/styles"
)

// Model is the main Bubble Tea model for the application. It wires the
// views to their regions and the controller to the selection model.
type Model struct {
	Ready bool

	// Shared selection model; views read it, the controller mutates it
	Selection  *catalog.Selection
	Controller *Controller

	// Views
	Header components.Header
	List   components.MovieList
	Detail components.MovieDetail
	Help   help.Model

	// Dimensions
	Width  int
	Height int

	detailWidth int
	footer      components.Region
	logger      *slog.Logger
	err         error
}

// NewModel creates a new application model
func NewModel(selection *catalog.Selection, cfg config.UIConfig, logger *slog.Logger) Model {
	h := help.New()
	h.Styles.ShortKey = styles.HelpKeyStyle
	h.Styles.ShortDesc = styles.HelpDescStyle
	h.Styles.ShortSeparator = styles.HelpDescStyle

	return Model{
		Selection:   selection,
		Controller:  NewController(selection, Keys, logger),
		Header:      components.NewHeader(cfg.Title),
		List:        components.NewMovieList(selection, cfg.TitleColumnWidth),
		Detail:      components.NewMovieDetail(selection),
		Help:        h,
		detailWidth: cfg.DetailWidth,
		logger:      logger,
	}
}

// Init initializes the application
func (m Model) Init() tea.Cmd {
	return nil
}

// Err returns the error that stopped the application, if any
func (m Model) Err() error {
	return m.err
}

// Update handles all messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Ready = true
		m.updateLayout()
		m.logger.Debug("window resized", "width", msg.Width, "height", msg.Height)
		return m, nil

	case tea.KeyMsg:
		if err := m.Controller.HandleKey(msg); err != nil {
			m.err = err
		}
		if m.Controller.State() == StateStopped {
			return m, tea.Quit
		}
		return m, nil
	}

	return m, nil
}

// View repaints every region
func (m Model) View() string {
	if !m.Ready {
		return "Loading..."
	}

	body := lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.List.View(),
		m.Detail.View(),
	)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.Header.View(),
		body,
		m.renderFooter(),
	)
}

// renderFooter renders the single-line key help, or the error that stopped
// the controller
func (m Model) renderFooter() string {
	text := m.Help.View(Keys)
	if m.err != nil {
		text = styles.ErrorStyle.Render(m.err.Error())
	}
	return styles.Place(text, 1, m.footer.Width)
}
