package game

import (
	"time"

	"github.com/lox/hexmines/hex"
)

// EventType represents a game event type with type safety
type EventType string

// EventType constants for game domain events
const (
	EventTypeGameStart     EventType = "game_start"
	EventTypeCellsRevealed EventType = "cells_revealed"
	EventTypeFlagToggled   EventType = "flag_toggled"
	EventTypeGameOver      EventType = "game_over"
)

// String returns the string representation of the event type
func (et EventType) String() string {
	return string(et)
}

// GameEvent represents any event that occurs during a game
type GameEvent interface {
	EventType() EventType
	Timestamp() time.Time
}

// GameStartEvent is published when a new game begins
type GameStartEvent struct {
	Radius    int
	CellCount int
	MineCount int
	timestamp time.Time
}

func (e GameStartEvent) EventType() EventType { return EventTypeGameStart }
func (e GameStartEvent) Timestamp() time.Time { return e.timestamp }

// NewGameStartEvent creates a new game start event
func NewGameStartEvent(board *Board) GameStartEvent {
	return GameStartEvent{
		Radius:    board.Radius,
		CellCount: board.CellCount(),
		MineCount: board.MineCount(),
		timestamp: time.Now(),
	}
}

// CellsRevealedEvent is published when a reveal action uncovers cells
type CellsRevealedEvent struct {
	Seed      hex.Hex
	Revealed  []hex.Hex
	HitMine   bool
	Remaining int // covered cells left after the reveal
	timestamp time.Time
}

func (e CellsRevealedEvent) EventType() EventType { return EventTypeCellsRevealed }
func (e CellsRevealedEvent) Timestamp() time.Time { return e.timestamp }

// NewCellsRevealedEvent creates a new cells revealed event
func NewCellsRevealedEvent(seed hex.Hex, revealed []hex.Hex, hitMine bool, remaining int) CellsRevealedEvent {
	cells := make([]hex.Hex, len(revealed))
	copy(cells, revealed)
	return CellsRevealedEvent{
		Seed:      seed,
		Revealed:  cells,
		HitMine:   hitMine,
		Remaining: remaining,
		timestamp: time.Now(),
	}
}

// FlagToggledEvent is published when a flag is placed or removed
type FlagToggledEvent struct {
	Cell      hex.Hex
	Flagged   bool
	FlagCount int
	timestamp time.Time
}

func (e FlagToggledEvent) EventType() EventType { return EventTypeFlagToggled }
func (e FlagToggledEvent) Timestamp() time.Time { return e.timestamp }

// NewFlagToggledEvent creates a new flag toggled event
func NewFlagToggledEvent(cell hex.Hex, flagged bool, flagCount int) FlagToggledEvent {
	return FlagToggledEvent{
		Cell:      cell,
		Flagged:   flagged,
		FlagCount: flagCount,
		timestamp: time.Now(),
	}
}

// GameOverEvent is published when the outcome becomes Won or Lost
type GameOverEvent struct {
	Outcome   Outcome
	FatalCell hex.Hex // the revealed mine when Outcome is Lost
	timestamp time.Time
}

func (e GameOverEvent) EventType() EventType { return EventTypeGameOver }
func (e GameOverEvent) Timestamp() time.Time { return e.timestamp }

// NewGameOverEvent creates a new game over event
func NewGameOverEvent(outcome Outcome, fatalCell hex.Hex) GameOverEvent {
	return GameOverEvent{
		Outcome:   outcome,
		FatalCell: fatalCell,
		timestamp: time.Now(),
	}
}

// EventSubscriber can subscribe to game events
type EventSubscriber interface {
	OnEvent(event GameEvent)
}

// EventBus manages event publishing and subscription
type EventBus interface {
	Subscribe(subscriber EventSubscriber)
	Unsubscribe(subscriber EventSubscriber)
	Publish(event GameEvent)
}

// SimpleEventBus is a basic in-memory event bus implementation
type SimpleEventBus struct {
	subscribers []EventSubscriber
}

// NewEventBus creates a new event bus
func NewEventBus() EventBus {
	return &SimpleEventBus{
		subscribers: make([]EventSubscriber, 0),
	}
}

// Subscribe adds a subscriber to receive events
func (bus *SimpleEventBus) Subscribe(subscriber EventSubscriber) {
	bus.subscribers = append(bus.subscribers, subscriber)
}

// Unsubscribe removes a subscriber from receiving events
func (bus *SimpleEventBus) Unsubscribe(subscriber EventSubscriber) {
	for i, sub := range bus.subscribers {
		if sub == subscriber {
			bus.subscribers = append(bus.subscribers[:i], bus.subscribers[i+1:]...)
			break
		}
	}
}

// Publish sends an event to all subscribers synchronously, in subscription
// order.
func (bus *SimpleEventBus) Publish(event GameEvent) {
	for _, subscriber := range bus.subscribers {
		subscriber.OnEvent(event)
	}
}
