package hex

// cellWidth is the number of terminal columns a cell glyph occupies.
const cellWidth = 2

// Layout maps hexes of a radius-R region onto a character grid and back.
// Pointy-top orientation: each r row is one terminal line, and odd rows are
// shifted half a cell pitch, which on a character grid becomes a fixed
// column offset. The inverse mapping is what a presentation layer uses to
// resolve a cursor position to a cell.
type Layout struct {
	Radius int
}

// ScreenPos returns the top-left terminal column and row of the glyph for h.
// Coordinates outside the region still map consistently; callers bound-check
// with HexAt or Hex.Length.
func (l Layout) ScreenPos(h Hex) (x, y int) {
	// Doubled-width columns keep the half-cell row shift integral.
	dcol := 2*h.Q + h.R
	return (dcol + 2*l.Radius) * cellWidth, h.R + l.Radius
}

// HexAt resolves a terminal position to the cell whose glyph covers it.
// Positions in the gaps between glyphs or outside the region resolve to
// false, which callers treat as "no hover".
func (l Layout) HexAt(x, y int) (Hex, bool) {
	if x < 0 || y < 0 || y >= l.Rows() {
		return Hex{}, false
	}
	r := y - l.Radius
	dcol := x/cellWidth - 2*l.Radius
	if (dcol-r)%2 != 0 {
		return Hex{}, false
	}
	h := Hex{Q: (dcol - r) / 2, R: r}
	if h.Length() > l.Radius {
		return Hex{}, false
	}
	return h, true
}

// Cols returns the width of the rendered board in terminal columns.
func (l Layout) Cols() int {
	return 4*l.Radius*cellWidth + cellWidth
}

// Rows returns the height of the rendered board in terminal rows.
func (l Layout) Rows() int {
	return 2*l.Radius + 1
}
