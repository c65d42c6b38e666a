// Package hex provides axial coordinates and region math for a pointy-top
// hexagonal grid.
//
// A coordinate is a (q, r) pair; the implied cube coordinate is
// (q, r, -q-r). Hex is a comparable value type and is used directly as a
// map and set key throughout the game packages.
package hex

import "fmt"

// Hex is an axial coordinate on a pointy-top hexagonal grid.
type Hex struct {
	Q, R int
}

// Origin is the center of the grid.
var Origin = Hex{0, 0}

// directions are the six unit neighbor offsets, counter-clockwise from east.
var directions = [6]Hex{
	{1, 0}, {1, -1}, {0, -1},
	{-1, 0}, {-1, 1}, {0, 1},
}

// Add returns the component-wise sum of two coordinates.
func (h Hex) Add(o Hex) Hex {
	return Hex{h.Q + o.Q, h.R + o.R}
}

// Neighbors returns the ring of six cells around h. The order is fixed but
// carries no meaning.
func (h Hex) Neighbors() [6]Hex {
	var out [6]Hex
	for i, d := range directions {
		out[i] = h.Add(d)
	}
	return out
}

// Length returns the distance from the origin in hex steps:
// max(|q|, |r|, |q+r|). A coordinate lies within a hexagonal region of
// radius R exactly when Length() <= R.
func (h Hex) Length() int {
	return max(abs(h.Q), abs(h.R), abs(h.Q+h.R))
}

func (h Hex) String() string {
	return fmt.Sprintf("(%d,%d)", h.Q, h.R)
}

// Region enumerates every coordinate with Length() <= radius. The order is
// deterministic: rows by ascending r, then ascending q within each row.
// The result has 3*radius*(radius+1)+1 elements. A negative radius yields
// an empty slice.
func Region(radius int) []Hex {
	if radius < 0 {
		return nil
	}
	cells := make([]Hex, 0, 3*radius*(radius+1)+1)
	for r := -radius; r <= radius; r++ {
		lo := max(-radius, -radius-r)
		hi := min(radius, radius-r)
		for q := lo; q <= hi; q++ {
			cells = append(cells, Hex{q, r})
		}
	}
	return cells
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
