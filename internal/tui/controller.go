package tui

import (
	"fmt"
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/mmcdole/reel/internal/catalog"
)

// ControllerState is the input controller's run state
type ControllerState int

const (
	StateRunning ControllerState = iota
	StateStopped
)

func (s ControllerState) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateStopped:
		return "stopped"
	default:
		return fmt.Sprintf("ControllerState(%d)", int(s))
	}
}

// Controller maps key presses to selection model mutations. It is the
// model's only mutator.
type Controller struct {
	model  *catalog.Selection
	keys   KeyMap
	state  ControllerState
	logger *slog.Logger
}

// NewController creates a controller in the running state
func NewController(model *catalog.Selection, keys KeyMap, logger *slog.Logger) *Controller {
	return &Controller{
		model:  model,
		keys:   keys,
		state:  StateRunning,
		logger: logger,
	}
}

// State returns the current run state
func (c *Controller) State() ControllerState {
	return c.state
}

// HandleKey processes one key press. Unbound keys are no-ops. Keys received
// after the controller stopped are ignored. An error means the selection
// model's invariant was broken; the controller stops.
func (c *Controller) HandleKey(msg tea.KeyMsg) error {
	if c.state == StateStopped {
		return nil
	}

	switch {
	case key.Matches(msg, c.keys.Quit):
		c.logger.Debug("quit requested")
		c.state = StateStopped

	case key.Matches(msg, c.keys.Down):
		c.model.Next()
		c.logSelection("down")

	case key.Matches(msg, c.keys.Up):
		c.model.Prev()
		c.logSelection("up")

	case key.Matches(msg, c.keys.Delete):
		movie, err := c.model.DeleteSelected()
		if err != nil {
			c.logger.Error("selection invariant violated", "error", err)
			c.state = StateStopped
			return err
		}
		if movie.ID != uuid.Nil {
			c.logger.Info("deleted movie", "id", movie.ID, "title", movie.Title, "remaining", c.model.Len())
		}

	default:
		c.logger.Debug("unbound key", "key", msg.String())
	}

	return nil
}

func (c *Controller) logSelection(action string) {
	idx, ok := c.model.Selected()
	c.logger.Debug("selection moved", "action", action, "selected", idx, "has_selection", ok)
}
