package game

import (
	"testing"

	"github.com/lox/hexmines/hex"
)

func TestFloodMineFreeBoard(t *testing.T) {
	t.Parallel()

	board, err := Generate(3, nil)
	if err != nil {
		t.Fatal(err)
	}

	// With no mines there is no boundary: any seed floods everything.
	for _, seed := range []hex.Hex{hex.Origin, {Q: 3, R: 0}, {Q: -1, R: -2}} {
		region := Flood(board, seed)
		if len(region) != board.CellCount() {
			t.Errorf("flood from %v covered %d cells, want %d", seed, len(region), board.CellCount())
		}
	}
}

func TestFloodStopsAtNumbers(t *testing.T) {
	t.Parallel()

	// Single mine at the center of a radius-2 board. The inner ring is
	// all numbered; a flood seeded on the blank outer ring must include
	// that boundary but never the mine.
	board, err := Generate(2, mineAt(hex.Origin))
	if err != nil {
		t.Fatal(err)
	}

	seed := hex.Hex{Q: 2, R: 0}
	region := Flood(board, seed)

	if _, ok := region[hex.Origin]; ok {
		t.Error("flood included the mine")
	}
	if _, ok := region[seed]; !ok {
		t.Error("flood missing its own seed")
	}

	// Everything except the mine is reachable: 18 outer blanks plus the
	// 6-cell numbered boundary.
	if want := board.CellCount() - 1; len(region) != want {
		t.Errorf("flood covered %d cells, want %d", len(region), want)
	}
	for _, n := range hex.Origin.Neighbors() {
		if _, ok := region[n]; !ok {
			t.Errorf("numbered boundary cell %v missing from flood", n)
		}
	}
}

func TestFloodNeverLeavesBoard(t *testing.T) {
	t.Parallel()

	board, err := Generate(2, nil)
	if err != nil {
		t.Fatal(err)
	}
	for c := range Flood(board, hex.Hex{Q: -2, R: 0}) {
		if c.Length() > board.Radius {
			t.Errorf("flood included out-of-board cell %v", c)
		}
	}
}

func TestFloodDeterministic(t *testing.T) {
	t.Parallel()

	board, err := Generate(3, EveryKth(6))
	if err != nil {
		t.Fatal(err)
	}

	// Pick a blank seed.
	var seed hex.Hex
	found := false
	for _, c := range hex.Region(3) {
		if !board.IsMine(c) && board.Adjacent(c) == 0 {
			seed, found = c, true
			break
		}
	}
	if !found {
		t.Skip("no blank cell on this board")
	}

	first := Flood(board, seed)
	second := Flood(board, seed)
	if len(first) != len(second) {
		t.Fatalf("flood sizes differ: %d vs %d", len(first), len(second))
	}
	for c := range first {
		if _, ok := second[c]; !ok {
			t.Errorf("second flood missing %v", c)
		}
	}
	for c := range first {
		if board.IsMine(c) {
			t.Errorf("flood from blank seed included mine %v", c)
		}
	}
}
