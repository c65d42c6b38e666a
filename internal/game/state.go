package game

import (
	"errors"
	"sort"

	"github.com/lox/hexmines/hex"
)

// Rejection errors for illegal player actions. None of them leave any state
// change behind; callers may surface them as feedback or ignore them.
var (
	ErrOutOfBounds = errors.New("coordinate is outside the board")
	ErrRevealed    = errors.New("cell is already revealed")
	ErrFlagged     = errors.New("cell is flagged")
)

// Outcome is the observable game result, derived from state rather than
// enforced by it. The state machine keeps accepting legal actions after the
// game is decided; stopping is the caller's policy.
type Outcome int

const (
	InProgress Outcome = iota
	Won
	Lost
)

func (o Outcome) String() string {
	switch o {
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "in progress"
	}
}

// State is the mutable half of a game: which cells are still covered and
// which of those the player has flagged. All mutation goes through Reveal
// and ToggleFlag.
type State struct {
	board   *Board
	covered map[hex.Hex]struct{}
	flagged map[hex.Hex]struct{}
	lost    bool
}

// NewState creates the starting state for a board: everything covered,
// nothing flagged.
func NewState(board *Board) *State {
	covered := make(map[hex.Hex]struct{}, len(board.Cells))
	for c := range board.Cells {
		covered[c] = struct{}{}
	}
	return &State{
		board:   board,
		covered: covered,
		flagged: make(map[hex.Hex]struct{}),
	}
}

// Board returns the static board this state plays on.
func (s *State) Board() *Board {
	return s.board
}

// RevealResult describes the effect of a successful Reveal.
type RevealResult struct {
	// Revealed lists the cells uncovered by this action in a stable
	// order. A single cell for numbered or mine reveals; the flood
	// region for blank reveals.
	Revealed []hex.Hex

	// HitMine is true when the revealed cell was a mine. The game is
	// lost; the caller decides whether to keep accepting input.
	HitMine bool
}

// Reveal uncovers the cell at c. Blank cells trigger the flood fill;
// flagged cells inside the flood region are left covered and flagged.
// Revealing a flagged cell is rejected: the player must unflag first.
func (s *State) Reveal(c hex.Hex) (RevealResult, error) {
	if !s.board.Contains(c) {
		return RevealResult{}, ErrOutOfBounds
	}
	if _, ok := s.covered[c]; !ok {
		return RevealResult{}, ErrRevealed
	}
	if _, ok := s.flagged[c]; ok {
		return RevealResult{}, ErrFlagged
	}

	if s.board.IsMine(c) {
		s.uncover(c)
		s.lost = true
		return RevealResult{Revealed: []hex.Hex{c}, HitMine: true}, nil
	}

	if _, numbered := s.board.Numbers[c]; numbered {
		s.uncover(c)
		return RevealResult{Revealed: []hex.Hex{c}}, nil
	}

	region := Flood(s.board, c)
	revealed := make([]hex.Hex, 0, len(region))
	for cell := range region {
		if _, ok := s.covered[cell]; !ok {
			continue
		}
		if _, ok := s.flagged[cell]; ok {
			continue
		}
		s.uncover(cell)
		revealed = append(revealed, cell)
	}
	sort.Slice(revealed, func(i, j int) bool {
		if revealed[i].R != revealed[j].R {
			return revealed[i].R < revealed[j].R
		}
		return revealed[i].Q < revealed[j].Q
	})
	return RevealResult{Revealed: revealed}, nil
}

func (s *State) uncover(c hex.Hex) {
	delete(s.covered, c)
	delete(s.flagged, c)
}

// ToggleFlag flips the flag on a covered cell and reports whether the cell
// is now flagged. Uncovered cells cannot be flagged.
func (s *State) ToggleFlag(c hex.Hex) (bool, error) {
	if !s.board.Contains(c) {
		return false, ErrOutOfBounds
	}
	if _, ok := s.covered[c]; !ok {
		return false, ErrRevealed
	}
	if _, ok := s.flagged[c]; ok {
		delete(s.flagged, c)
		return false, nil
	}
	s.flagged[c] = struct{}{}
	return true, nil
}

// Outcome derives the current game result: Lost once a mine has been
// revealed, Won once every non-mine cell is uncovered.
func (s *State) Outcome() Outcome {
	if s.lost {
		return Lost
	}
	if len(s.covered) == s.board.MineCount() {
		return Won
	}
	return InProgress
}

// IsCovered reports whether c has not been revealed yet. Coordinates
// outside the board report false.
func (s *State) IsCovered(c hex.Hex) bool {
	_, ok := s.covered[c]
	return ok
}

// IsFlagged reports whether c carries a flag.
func (s *State) IsFlagged(c hex.Hex) bool {
	_, ok := s.flagged[c]
	return ok
}

// CoveredCount returns how many cells are still covered.
func (s *State) CoveredCount() int {
	return len(s.covered)
}

// FlagCount returns how many flags are placed.
func (s *State) FlagCount() int {
	return len(s.flagged)
}

// MinesRemaining returns the mine count minus placed flags, the counter a
// renderer shows in the header. It can go negative when the player
// over-flags.
func (s *State) MinesRemaining() int {
	return s.board.MineCount() - len(s.flagged)
}

// CellView is the per-cell observation tuple a renderer needs to pick a
// glyph: visibility, flag, and the cell identity once uncovered. Identity
// fields are zero for covered cells so a renderer cannot leak them.
type CellView struct {
	Hex      hex.Hex
	Covered  bool
	Flagged  bool
	Mine     bool
	Adjacent int
}

// Cell returns the observation for c. The second return is false for
// coordinates outside the board.
func (s *State) Cell(c hex.Hex) (CellView, bool) {
	if !s.board.Contains(c) {
		return CellView{}, false
	}
	v := CellView{Hex: c}
	if _, ok := s.covered[c]; ok {
		v.Covered = true
		_, v.Flagged = s.flagged[c]
		return v, true
	}
	v.Mine = s.board.IsMine(c)
	v.Adjacent = s.board.Adjacent(c)
	return v, true
}
