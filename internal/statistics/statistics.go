// Package statistics aggregates results from simulated games.
package statistics

import "fmt"

// GameResult represents the outcome of a single simulated game
type GameResult struct {
	Won      bool
	Moves    int   // reveal actions taken
	Revealed int   // cells uncovered when the game ended
	Seed     int64 // RNG seed for this game (for replay)
}

// Statistics tracks aggregate results across simulated games
type Statistics struct {
	Games    int
	Wins     int
	Losses   int
	Moves    int // total reveal actions across all games
	Revealed int // total cells uncovered across all games
}

// Add records a single game result
func (s *Statistics) Add(r GameResult) {
	s.Games++
	if r.Won {
		s.Wins++
	} else {
		s.Losses++
	}
	s.Moves += r.Moves
	s.Revealed += r.Revealed
}

// Merge folds another accumulator into this one
func (s *Statistics) Merge(o *Statistics) {
	s.Games += o.Games
	s.Wins += o.Wins
	s.Losses += o.Losses
	s.Moves += o.Moves
	s.Revealed += o.Revealed
}

// WinRate returns the fraction of games won
func (s *Statistics) WinRate() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.Games)
}

// MeanMoves returns the average number of reveal actions per game
func (s *Statistics) MeanMoves() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.Moves) / float64(s.Games)
}

// MeanRevealed returns the average number of cells uncovered per game
func (s *Statistics) MeanRevealed() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.Revealed) / float64(s.Games)
}

// Validate checks internal consistency before results are reported
func (s *Statistics) Validate() error {
	if s.Games != s.Wins+s.Losses {
		return fmt.Errorf("games (%d) != wins (%d) + losses (%d)", s.Games, s.Wins, s.Losses)
	}
	if s.Moves < s.Games {
		return fmt.Errorf("fewer moves (%d) than games (%d): every game takes at least one reveal", s.Moves, s.Games)
	}
	return nil
}
