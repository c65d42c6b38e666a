package input

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/lox/hexmines/hex"
	"github.com/lox/hexmines/internal/game"
)

func mineAt(cells ...hex.Hex) game.MineRule {
	return func([]hex.Hex) []hex.Hex { return cells }
}

func newController(t *testing.T, rule game.MineRule) *Controller {
	t.Helper()
	board, err := game.Generate(2, rule)
	if err != nil {
		t.Fatal(err)
	}
	logger := log.New(io.Discard)
	return New(game.NewEngine(board, logger), logger)
}

func TestHoverEdgeTriggered(t *testing.T) {
	t.Parallel()

	c := newController(t, mineAt(hex.Origin))

	if !c.SetHover(hex.Hex{Q: 1, R: 0}) {
		t.Error("first hover should report a change")
	}
	if c.SetHover(hex.Hex{Q: 1, R: 0}) {
		t.Error("repeated hover should be a no-op")
	}
	if !c.SetHover(hex.Hex{Q: 0, R: 1}) {
		t.Error("moving the hover should report a change")
	}

	got, ok := c.Hover()
	if !ok || got != (hex.Hex{Q: 0, R: 1}) {
		t.Errorf("Hover() = %v, %v", got, ok)
	}
}

func TestHoverOutsideBoardClears(t *testing.T) {
	t.Parallel()

	c := newController(t, mineAt(hex.Origin))
	c.SetHover(hex.Origin)

	if !c.SetHover(hex.Hex{Q: 9, R: 9}) {
		t.Error("leaving the board should report a change")
	}
	if _, ok := c.Hover(); ok {
		t.Error("hover should be cleared outside the board")
	}
	if c.ClearHover() {
		t.Error("clearing an empty hover should be a no-op")
	}
}

func TestActionsWithoutHover(t *testing.T) {
	t.Parallel()

	c := newController(t, mineAt(hex.Origin))

	if _, acted := c.Primary(); acted {
		t.Error("primary action without hover should do nothing")
	}
	if c.Secondary() {
		t.Error("secondary action without hover should do nothing")
	}
}

func TestPrimaryReveals(t *testing.T) {
	t.Parallel()

	c := newController(t, mineAt(hex.Origin))
	c.SetHover(hex.Hex{Q: 1, R: 0})

	result, acted := c.Primary()
	if !acted {
		t.Fatal("expected the primary action to reveal")
	}
	if len(result.Revealed) != 1 || result.Revealed[0] != (hex.Hex{Q: 1, R: 0}) {
		t.Errorf("revealed %v, want just the hovered cell", result.Revealed)
	}

	// The cell is now uncovered; a second primary on it is rejected.
	if _, acted := c.Primary(); acted {
		t.Error("revealing an uncovered cell should be rejected")
	}
}

func TestSecondaryFlagsAndBlocksReveal(t *testing.T) {
	t.Parallel()

	c := newController(t, mineAt(hex.Origin))
	c.SetHover(hex.Hex{Q: 0, R: 1})

	if !c.Secondary() {
		t.Fatal("expected the secondary action to flag")
	}
	if _, acted := c.Primary(); acted {
		t.Error("revealing a flagged cell should be rejected")
	}
	if !c.Secondary() {
		t.Fatal("expected the secondary action to unflag")
	}
	if _, acted := c.Primary(); !acted {
		t.Error("reveal should succeed after unflagging")
	}
}
