package game

import (
	"github.com/charmbracelet/log"

	"github.com/lox/hexmines/hex"
)

// Engine drives a single game: it owns the state, logs player actions and
// publishes domain events so a presentation layer can observe transitions
// without polling. Rejected actions pass the state's error through
// untouched; the engine adds no legality rules of its own.
type Engine struct {
	state    *State
	logger   *log.Logger
	eventBus EventBus
}

// NewEngine creates an engine for the given board and publishes the
// game start event.
func NewEngine(board *Board, logger *log.Logger) *Engine {
	e := &Engine{
		state:    NewState(board),
		logger:   logger,
		eventBus: NewEventBus(),
	}
	e.eventBus.Publish(NewGameStartEvent(board))
	return e
}

// EventBus returns the event bus for subscribing to game events
func (e *Engine) EventBus() EventBus {
	return e.eventBus
}

// State returns the game state for read-only observation
func (e *Engine) State() *State {
	return e.state
}

// Reveal uncovers the cell at c, logging and publishing the result. The
// returned error is one of the state's rejection errors; nothing is
// published for a rejected action.
func (e *Engine) Reveal(c hex.Hex) (RevealResult, error) {
	result, err := e.state.Reveal(c)
	if err != nil {
		e.logger.Debug("Reveal rejected", "cell", c, "reason", err)
		return result, err
	}

	e.logger.Debug("Revealed",
		"cell", c,
		"cells", len(result.Revealed),
		"hitMine", result.HitMine,
		"covered", e.state.CoveredCount())
	e.eventBus.Publish(NewCellsRevealedEvent(c, result.Revealed, result.HitMine, e.state.CoveredCount()))

	if outcome := e.state.Outcome(); outcome != InProgress {
		e.logger.Info("Game over", "outcome", outcome)
		fatal := hex.Hex{}
		if result.HitMine {
			fatal = c
		}
		e.eventBus.Publish(NewGameOverEvent(outcome, fatal))
	}
	return result, nil
}

// ToggleFlag flips the flag on the cell at c, logging and publishing the
// result.
func (e *Engine) ToggleFlag(c hex.Hex) (bool, error) {
	flagged, err := e.state.ToggleFlag(c)
	if err != nil {
		e.logger.Debug("Flag rejected", "cell", c, "reason", err)
		return flagged, err
	}

	e.logger.Debug("Flag toggled", "cell", c, "flagged", flagged)
	e.eventBus.Publish(NewFlagToggledEvent(c, flagged, e.state.FlagCount()))
	return flagged, nil
}
