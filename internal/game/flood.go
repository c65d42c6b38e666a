package game

import "github.com/lox/hexmines/hex"

// Flood returns the set of cells uncovered by revealing a blank cell at
// seed: the connected blank region plus its boundary of numbered cells.
//
// The expansion is breadth-first over the blank subgraph, rebuilding the
// frontier each step. Membership insertion into visited doubles as the
// test-and-set that guarantees each cell is considered once. Numbered cells
// join the result but are never expanded, which is what stops the flood at
// a number boundary; mines are never reached because every mine is fenced
// by numbered cells.
//
// Flood is a pure function of (b, seed): re-running it against the same
// board yields the identical set. The result always contains seed and
// never a cell outside the board.
func Flood(b *Board, seed hex.Hex) map[hex.Hex]struct{} {
	visited := map[hex.Hex]struct{}{seed: {}}
	frontier := []hex.Hex{seed}

	for len(frontier) > 0 {
		var next []hex.Hex
		for _, c := range frontier {
			for _, n := range c.Neighbors() {
				if !b.Contains(n) {
					continue
				}
				if _, seen := visited[n]; seen {
					continue
				}
				visited[n] = struct{}{}
				if _, numbered := b.Numbers[n]; numbered {
					continue
				}
				next = append(next, n)
			}
		}
		frontier = next
	}

	return visited
}
