// Package game implements the core logic of hexagonal minesweeper.
//
// The static half of a game is a Board: the hexagonal cell region, the mine
// set and the adjacency numbers, produced once by Generate and never
// mutated. The mutable half is a State: which cells are still covered and
// which are flagged, mutated only through Reveal and ToggleFlag.
//
// # Basic Usage
//
// Generate a board and play actions against its state:
//
//	rng := randutil.New(42)
//	board, err := game.Generate(5, game.RandomCount(rng, 12))
//	state := game.NewState(board)
//	result, err := state.Reveal(hex.Hex{Q: 1, R: 0})
//	if result.HitMine {
//	    // game lost; the caller decides when to stop accepting input
//	}
//
// # Engine and Events
//
// Engine wraps a State with logging and an EventBus so a presentation
// layer can observe reveals, flags and the game outcome without polling:
//
//	engine := game.NewEngine(board, logger)
//	engine.EventBus().Subscribe(subscriber)
//
// Win and loss are observations (State.Outcome), not enforced transitions;
// the state keeps applying its legality rules after the game is decided.
//
// # Mine placement
//
// Mine selection is an injected MineRule so distribution and difficulty are
// decoupled from generation. EveryKth gives reproducible fixed boards,
// RandomCount fair placement from an explicit *rand.Rand.
package game
