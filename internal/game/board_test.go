package game

import (
	"testing"

	"github.com/lox/hexmines/hex"
	"github.com/lox/hexmines/internal/randutil"
)

// mineAt is a test rule that places mines at fixed coordinates.
func mineAt(cells ...hex.Hex) MineRule {
	return func([]hex.Hex) []hex.Hex { return cells }
}

func TestGenerateCellCount(t *testing.T) {
	t.Parallel()

	for radius := 0; radius <= 5; radius++ {
		board, err := Generate(radius, nil)
		if err != nil {
			t.Fatalf("Generate(%d): %v", radius, err)
		}
		want := 3*radius*(radius+1) + 1
		if board.CellCount() != want {
			t.Errorf("radius %d: %d cells, want %d", radius, board.CellCount(), want)
		}
		for c := range board.Cells {
			if c.Length() > radius {
				t.Errorf("radius %d: cell %v outside board", radius, c)
			}
		}
	}
}

func TestGenerateNegativeRadius(t *testing.T) {
	t.Parallel()

	if _, err := Generate(-1, nil); err == nil {
		t.Fatal("expected error for negative radius")
	}
}

func TestGenerateNumbersInvariants(t *testing.T) {
	t.Parallel()

	rng := randutil.New(7)
	board, err := Generate(4, RandomCount(rng, 15))
	if err != nil {
		t.Fatal(err)
	}

	if board.MineCount() != 15 {
		t.Errorf("expected 15 mines, got %d", board.MineCount())
	}

	for c, n := range board.Numbers {
		if board.IsMine(c) {
			t.Errorf("mine %v has a number", c)
		}
		if n < 1 || n > 6 {
			t.Errorf("cell %v has adjacency %d, want 1..6", c, n)
		}
		if !board.Contains(c) {
			t.Errorf("numbered cell %v outside board", c)
		}
	}

	// Every non-mine neighbor of a mine must be numbered.
	for m := range board.Mines {
		for _, n := range m.Neighbors() {
			if !board.Contains(n) || board.IsMine(n) {
				continue
			}
			if board.Adjacent(n) == 0 {
				t.Errorf("cell %v borders mine %v but has no number", n, m)
			}
		}
	}
}

func TestGenerateSingleMineAdjacency(t *testing.T) {
	t.Parallel()

	// One mine at (1,0) on a radius-1 board: the origin must read 1 and
	// must not be blank.
	board, err := Generate(1, mineAt(hex.Hex{Q: 1, R: 0}))
	if err != nil {
		t.Fatal(err)
	}

	if got := board.Adjacent(hex.Origin); got != 1 {
		t.Errorf("origin adjacency = %d, want 1", got)
	}

	state := NewState(board)
	result, err := state.Reveal(hex.Origin)
	if err != nil {
		t.Fatal(err)
	}
	if len(result.Revealed) != 1 || result.Revealed[0] != hex.Origin {
		t.Errorf("revealing a numbered origin uncovered %v, want just the origin", result.Revealed)
	}
}

func TestEveryKth(t *testing.T) {
	t.Parallel()

	board, err := Generate(3, EveryKth(5))
	if err != nil {
		t.Fatal(err)
	}

	// 37 cells, mines on enumeration indices 4, 9, ..., 34.
	if board.MineCount() != 7 {
		t.Errorf("expected 7 mines, got %d", board.MineCount())
	}

	cells := hex.Region(3)
	for i, c := range cells {
		want := (i+1)%5 == 0
		if board.IsMine(c) != want {
			t.Errorf("index %d (%v): mine = %v, want %v", i, c, board.IsMine(c), want)
		}
	}

	// The rule is deterministic: a second board is identical.
	again, err := Generate(3, EveryKth(5))
	if err != nil {
		t.Fatal(err)
	}
	for c := range board.Mines {
		if !again.IsMine(c) {
			t.Errorf("second generation lost mine at %v", c)
		}
	}
}

func TestEveryKthDegenerate(t *testing.T) {
	t.Parallel()

	board, err := Generate(2, EveryKth(0))
	if err != nil {
		t.Fatal(err)
	}
	if board.MineCount() != 0 {
		t.Errorf("EveryKth(0) placed %d mines, want none", board.MineCount())
	}
}

func TestRandomCountDeterministicPerSeed(t *testing.T) {
	t.Parallel()

	a, err := Generate(4, RandomCount(randutil.New(42), 10))
	if err != nil {
		t.Fatal(err)
	}
	b, err := Generate(4, RandomCount(randutil.New(42), 10))
	if err != nil {
		t.Fatal(err)
	}

	if a.MineCount() != 10 || b.MineCount() != 10 {
		t.Fatalf("mine counts = %d, %d; want 10", a.MineCount(), b.MineCount())
	}
	for c := range a.Mines {
		if !b.IsMine(c) {
			t.Errorf("boards differ at %v for identical seeds", c)
		}
	}
}

func TestRandomCountClamped(t *testing.T) {
	t.Parallel()

	board, err := Generate(1, RandomCount(randutil.New(1), 100))
	if err != nil {
		t.Fatal(err)
	}
	if board.MineCount() != board.CellCount() {
		t.Errorf("expected every cell mined, got %d of %d", board.MineCount(), board.CellCount())
	}
	if len(board.Numbers) != 0 {
		t.Errorf("all-mine board should have no numbers, got %d", len(board.Numbers))
	}
}

func TestGenerateDiscardsOutOfBoundsMines(t *testing.T) {
	t.Parallel()

	board, err := Generate(1, mineAt(hex.Hex{Q: 5, R: 5}, hex.Hex{Q: 0, R: 1}))
	if err != nil {
		t.Fatal(err)
	}
	if board.MineCount() != 1 {
		t.Errorf("expected 1 mine after discarding out-of-bounds, got %d", board.MineCount())
	}
	if !board.IsMine(hex.Hex{Q: 0, R: 1}) {
		t.Error("in-bounds mine missing")
	}
}
