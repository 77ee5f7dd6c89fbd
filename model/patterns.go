package model

import "github.com/pkg/errors"

// Pattern is a rectangle of cell states, rows first
type Pattern [][]bool

var (
	// Block is a 2x2 still life
	Block = Pattern{
		{true, true},
		{true, true},
	}

	// Beehive is a 4x3 still life
	Beehive = Pattern{
		{false, true, true, false},
		{true, false, false, true},
		{false, true, true, false},
	}

	// Blinker is a period-2 oscillator in its horizontal phase
	Blinker = Pattern{
		{true, true, true},
	}

	// Glider moves one cell down-right every four generations
	Glider = Pattern{
		{false, true, false},
		{false, false, true},
		{true, true, true},
	}
)

// Stamp writes the pattern with its top-left corner at (startX, startY).
// Parts of the pattern that fall off the grid are dropped.
func (g *Grid) Stamp(startX, startY int, p Pattern) {
	for y, row := range p {
		for x, alive := range row {
			px, py := startX+x, startY+y
			if !g.InBounds(px, py) {
				continue
			}
			state := Dead
			if alive {
				state = Alive
			}
			g.cells[g.IndexOf(px, py)].State = state
		}
	}
}

// ParseGrid builds a grid from rows of '#' (alive) and '.' (dead). All rows
// must have the same length.
func ParseGrid(rows ...string) (*Grid, error) {
	height := len(rows)
	width := 0
	if height > 0 {
		width = len(rows[0])
	}
	g, err := NewGrid(width, height)
	if err != nil {
		return nil, err
	}
	for y, row := range rows {
		if len(row) != width {
			return nil, errors.Wrapf(ErrInvalidDimensions, "[ParseGrid] row %d has %d cells, want %d", y, len(row), width)
		}
		for x, r := range row {
			if r == '#' {
				g.cells[g.IndexOf(x, y)].State = Alive
			}
		}
	}
	return g, nil
}
