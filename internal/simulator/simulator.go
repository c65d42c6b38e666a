// Package simulator plays batches of games with a random reveal policy,
// mainly to sanity-check board generation and to gauge how punishing a
// radius/mine combination is.
package simulator

import (
	"context"
	"fmt"
	rand "math/rand/v2"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/lox/hexmines/hex"
	"github.com/lox/hexmines/internal/game"
	"github.com/lox/hexmines/internal/randutil"
	"github.com/lox/hexmines/internal/statistics"
)

// Config holds configuration for running simulations
type Config struct {
	Games   int
	Radius  int
	Mines   int
	Seed    int64
	Workers int
	Logger  *log.Logger
}

// Simulator runs batches of random-policy games
type Simulator struct {
	config Config
}

// New creates a new simulator with the given configuration
func New(config Config) *Simulator {
	if config.Workers <= 0 {
		config.Workers = 1
	}
	return &Simulator{config: config}
}

// Run executes the simulation and returns aggregate results. Games are
// split across workers; each game derives its own seed from the base seed
// and its index, so results are identical for a fixed configuration
// regardless of worker count.
func (s *Simulator) Run(ctx context.Context) (*statistics.Statistics, error) {
	if s.config.Games <= 0 {
		return nil, fmt.Errorf("games must be positive, got %d", s.config.Games)
	}
	if s.config.Mines >= 3*s.config.Radius*(s.config.Radius+1)+1 {
		return nil, fmt.Errorf("%d mines do not fit a radius-%d board", s.config.Mines, s.config.Radius)
	}

	g, ctx := errgroup.WithContext(ctx)
	results := make(chan *statistics.Statistics, s.config.Workers)

	gamesPerWorker := s.config.Games / s.config.Workers
	remainder := s.config.Games % s.config.Workers
	next := 0
	for w := 0; w < s.config.Workers; w++ {
		count := gamesPerWorker
		if w < remainder {
			count++
		}
		first := next
		next += count

		g.Go(func() error {
			stats := &statistics.Statistics{}
			for i := first; i < first+count; i++ {
				select {
				case <-ctx.Done():
					return ctx.Err()
				default:
				}
				gameSeed := randutil.Derive(s.config.Seed, i)
				result, err := s.playGame(gameSeed)
				if err != nil {
					return fmt.Errorf("game %d: %w", i, err)
				}
				stats.Add(result)
			}
			results <- stats
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	close(results)

	total := &statistics.Statistics{}
	for stats := range results {
		total.Merge(stats)
	}
	if err := total.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}

	s.config.Logger.Debug("Simulation complete",
		"games", total.Games,
		"winRate", total.WinRate(),
		"meanMoves", total.MeanMoves())
	return total, nil
}

// playGame runs one game to completion, revealing uniformly random covered
// cells until the board is won or a mine goes off.
func (s *Simulator) playGame(seed int64) (statistics.GameResult, error) {
	rng := randutil.New(seed)
	board, err := game.Generate(s.config.Radius, game.RandomCount(rng, s.config.Mines))
	if err != nil {
		return statistics.GameResult{}, err
	}
	state := game.NewState(board)

	moves := 0
	for state.Outcome() == game.InProgress {
		c := pickCovered(state, board, rng)
		if _, err := state.Reveal(c); err != nil {
			return statistics.GameResult{}, fmt.Errorf("reveal %v: %w", c, err)
		}
		moves++
	}

	return statistics.GameResult{
		Won:      state.Outcome() == game.Won,
		Moves:    moves,
		Revealed: board.CellCount() - state.CoveredCount(),
		Seed:     seed,
	}, nil
}

// pickCovered chooses a uniformly random covered cell. The policy never
// flags, so every covered cell is a legal reveal target.
func pickCovered(state *game.State, board *game.Board, rng *rand.Rand) hex.Hex {
	covered := make([]hex.Hex, 0, state.CoveredCount())
	for _, c := range hex.Region(board.Radius) {
		if state.IsCovered(c) {
			covered = append(covered, c)
		}
	}
	return covered[rng.IntN(len(covered))]
}
