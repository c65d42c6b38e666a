// Package input adapts presentation-layer events onto game actions. The
// controller owns the hover cache and nothing else; board data and legality
// rules stay in the game package.
package input

import (
	"github.com/charmbracelet/log"

	"github.com/lox/hexmines/hex"
	"github.com/lox/hexmines/internal/game"
)

// Controller translates hover updates and the two player actions into
// engine calls. Hover tracking is edge-triggered: SetHover compares against
// the previous value and reports only real changes, so a caller invoking it
// every cursor event does no redundant work.
type Controller struct {
	engine *game.Engine
	logger *log.Logger

	hover    hex.Hex
	hovering bool
}

// New creates a controller for the given engine.
func New(engine *game.Engine, logger *log.Logger) *Controller {
	return &Controller{
		engine: engine,
		logger: logger,
	}
}

// SetHover records the cell under the cursor and reports whether the hover
// changed. Coordinates outside the board clear the hover.
func (c *Controller) SetHover(h hex.Hex) bool {
	if !c.engine.State().Board().Contains(h) {
		return c.ClearHover()
	}
	if c.hovering && c.hover == h {
		return false
	}
	c.hover = h
	c.hovering = true
	return true
}

// ClearHover drops the current hover and reports whether one was set.
func (c *Controller) ClearHover() bool {
	changed := c.hovering
	c.hovering = false
	return changed
}

// Hover returns the currently hovered cell, if any.
func (c *Controller) Hover() (hex.Hex, bool) {
	return c.hover, c.hovering
}

// Primary reveals the hovered cell. Without a hover, or when the engine
// rejects the action, nothing changes and false is returned.
func (c *Controller) Primary() (game.RevealResult, bool) {
	if !c.hovering {
		return game.RevealResult{}, false
	}
	result, err := c.engine.Reveal(c.hover)
	if err != nil {
		c.logger.Debug("Primary action ignored", "cell", c.hover, "reason", err)
		return game.RevealResult{}, false
	}
	return result, true
}

// Secondary toggles the flag on the hovered cell. Without a hover, or when
// the engine rejects the action, nothing changes and false is returned.
func (c *Controller) Secondary() bool {
	if !c.hovering {
		return false
	}
	if _, err := c.engine.ToggleFlag(c.hover); err != nil {
		c.logger.Debug("Secondary action ignored", "cell", c.hover, "reason", err)
		return false
	}
	return true
}
