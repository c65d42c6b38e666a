package game

import (
	"fmt"
	rand "math/rand/v2"

	"github.com/lox/hexmines/hex"
)

// Board is the static half of a game: the cell region, the mine set and the
// adjacency numbers. It is computed once by Generate and never mutated.
type Board struct {
	Radius int

	// Cells is the set of valid coordinates, every hex within Radius of
	// the origin.
	Cells map[hex.Hex]struct{}

	// Mines is the subset of Cells selected by the mine rule.
	Mines map[hex.Hex]struct{}

	// Numbers maps each non-mine cell to its count of adjacent mines.
	// Cells with zero adjacent mines are absent; values are always 1..6.
	Numbers map[hex.Hex]int
}

// MineRule selects the mine set from the enumerated cells. The slice is in
// hex.Region order; implementations must not mutate it. Returned
// coordinates outside the cell set are discarded by Generate.
type MineRule func(cells []hex.Hex) []hex.Hex

// EveryKth marks every k-th enumerated cell as a mine, a deterministic
// placeholder rule useful for reproducing fixed boards in tests. The first
// mine lands on enumeration index k-1, so the first cells of the region
// stay clear for k > 1.
func EveryKth(k int) MineRule {
	return func(cells []hex.Hex) []hex.Hex {
		if k <= 0 {
			return nil
		}
		var mines []hex.Hex
		for i := k - 1; i < len(cells); i += k {
			mines = append(mines, cells[i])
		}
		return mines
	}
}

// RandomCount places n mines uniformly at random using the provided RNG.
// If n exceeds the number of cells every cell becomes a mine.
func RandomCount(rng *rand.Rand, n int) MineRule {
	return func(cells []hex.Hex) []hex.Hex {
		if n <= 0 {
			return nil
		}
		if n > len(cells) {
			n = len(cells)
		}
		// Fisher-Yates prefix: shuffle a copy, take the first n.
		shuffled := make([]hex.Hex, len(cells))
		copy(shuffled, cells)
		rng.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})
		return shuffled[:n]
	}
}

// Generate builds the board for a hexagonal region of the given radius and
// applies rule to choose the mines. A nil rule produces a mine-free board.
func Generate(radius int, rule MineRule) (*Board, error) {
	if radius < 0 {
		return nil, fmt.Errorf("radius must be non-negative, got %d", radius)
	}

	enumerated := hex.Region(radius)
	cells := make(map[hex.Hex]struct{}, len(enumerated))
	for _, c := range enumerated {
		cells[c] = struct{}{}
	}

	mines := make(map[hex.Hex]struct{})
	if rule != nil {
		for _, m := range rule(enumerated) {
			if _, ok := cells[m]; ok {
				mines[m] = struct{}{}
			}
		}
	}

	// Accumulate adjacency counts around each mine, then strip entries
	// that are themselves mines. Zero-count cells never enter the map.
	numbers := make(map[hex.Hex]int)
	for m := range mines {
		for _, n := range m.Neighbors() {
			if _, ok := cells[n]; ok {
				numbers[n]++
			}
		}
	}
	for m := range mines {
		delete(numbers, m)
	}

	return &Board{
		Radius:  radius,
		Cells:   cells,
		Mines:   mines,
		Numbers: numbers,
	}, nil
}

// Contains reports whether c is a valid board cell.
func (b *Board) Contains(c hex.Hex) bool {
	return c.Length() <= b.Radius
}

// IsMine reports whether c holds a mine.
func (b *Board) IsMine(c hex.Hex) bool {
	_, ok := b.Mines[c]
	return ok
}

// Adjacent returns the adjacent-mine count for c; zero for blank cells and
// for mines.
func (b *Board) Adjacent(c hex.Hex) int {
	return b.Numbers[c]
}

// CellCount returns the number of cells on the board.
func (b *Board) CellCount() int {
	return len(b.Cells)
}

// MineCount returns the number of mines on the board.
func (b *Board) MineCount() int {
	return len(b.Mines)
}
