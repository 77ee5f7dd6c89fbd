package model

import (
	"crypto/md5"
	"fmt"
	"math/rand/v2"

	"github.com/pkg/errors"
)

var (
	// ErrOutOfRange is returned for any cell index outside the grid
	ErrOutOfRange = errors.New("cell index out of range")
	// ErrInvalidDimensions is returned when a grid would have no cells
	ErrInvalidDimensions = errors.New("grid dimensions must be positive")
)

// Grid is a fixed-size bounded board. Cells are stored in row-major order
// and a cell's index is always x + y*width.
type Grid struct {
	width  int
	height int
	cells  []Cell
}

// NewGrid creates a grid with every cell dead
func NewGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimensions, "[NewGrid] got %dx%d", width, height)
	}
	g := &Grid{}
	g.Reset(width, height)
	return g, nil
}

// NewRandomGrid creates a grid where each cell is independently alive with
// probability 0.5, drawn from rng in index order
func NewRandomGrid(width, height int, rng *rand.Rand) (*Grid, error) {
	g, err := NewGrid(width, height)
	if err != nil {
		return nil, err
	}
	g.Randomize(rng, 0.5)
	return g, nil
}

// GetWidth returns the width of the grid
func (g *Grid) GetWidth() int {
	return g.width
}

// GetHeight returns the height of the grid
func (g *Grid) GetHeight() int {
	return g.height
}

// Len returns the number of cells
func (g *Grid) Len() int {
	return len(g.cells)
}

// Reset resizes the grid, rebuilding every position and killing every cell
func (g *Grid) Reset(width, height int) {
	g.width = width
	g.height = height

	n := width * height
	if cap(g.cells) < n {
		g.cells = make([]Cell, n)
	}
	g.cells = g.cells[:n]
	for i := range g.cells {
		g.cells[i] = Cell{Position: g.PositionOf(i)}
	}
}

// Clear kills all cells, leaving positions untouched
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i].State = Dead
	}
}

// IndexOf maps a coordinate to its cell index. Coordinates are not wrapped
// or clamped; callers check InBounds first.
func (g *Grid) IndexOf(x, y int) int {
	return x + y*g.width
}

// PositionOf is the inverse of IndexOf
func (g *Grid) PositionOf(index int) Position {
	return Position{X: index % g.width, Y: index / g.width}
}

// InBounds reports whether (x, y) lies strictly inside the grid
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Get returns the state of the cell at index
func (g *Grid) Get(index int) (CellState, error) {
	if index < 0 || index >= len(g.cells) {
		return Dead, errors.Wrapf(ErrOutOfRange, "[Grid.Get] index %d, cells %d", index, len(g.cells))
	}
	return g.cells[index].State, nil
}

// Set changes the state of the cell at index
func (g *Grid) Set(index int, state CellState) error {
	if index < 0 || index >= len(g.cells) {
		return errors.Wrapf(ErrOutOfRange, "[Grid.Set] index %d, cells %d", index, len(g.cells))
	}
	g.cells[index].State = state
	return nil
}

// IsAlive returns whether the cell at (x, y) is alive; off-grid is dead
func (g *Grid) IsAlive(x, y int) bool {
	if !g.InBounds(x, y) {
		return false
	}
	return g.cells[g.IndexOf(x, y)].State == Alive
}

// Cells returns a copy of every cell in index order
func (g *Grid) Cells() []Cell {
	out := make([]Cell, len(g.cells))
	copy(out, g.cells)
	return out
}

// Clone returns an independent copy of the grid
func (g *Grid) Clone() *Grid {
	return &Grid{
		width:  g.width,
		height: g.height,
		cells:  g.Cells(),
	}
}

// CopyFrom overwrites g with the dimensions and states of src
func (g *Grid) CopyFrom(src *Grid) {
	g.Reset(src.width, src.height)
	copy(g.cells, src.cells)
}

// Equal reports whether both grids have the same dimensions and states
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.width != other.width || g.height != other.height {
		return false
	}
	for i := range g.cells {
		if g.cells[i].State != other.cells[i].State {
			return false
		}
	}
	return true
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for _, c := range g.cells {
		if c.State == Alive {
			count++
		}
	}
	return
}

// Hash returns an MD5 hash of the grid state in index order
func (g *Grid) Hash() string {
	h := md5.New()
	fmt.Fprintf(h, "%dx%d:", g.width, g.height)
	buf := make([]byte, len(g.cells))
	for i, c := range g.cells {
		buf[i] = byte(c.State)
	}
	h.Write(buf)
	return fmt.Sprintf("%x", h.Sum(nil))
}

// Randomize sets each cell alive with the given probability
func (g *Grid) Randomize(rng *rand.Rand, density float64) {
	for i := range g.cells {
		if rng.Float64() < density {
			g.cells[i].State = Alive
		} else {
			g.cells[i].State = Dead
		}
	}
}

// String renders the grid as rows of '#' and '.'
func (g *Grid) String() string {
	buf := make([]byte, 0, (g.width+1)*g.height)
	for i, c := range g.cells {
		if c.State == Alive {
			buf = append(buf, '#')
		} else {
			buf = append(buf, '.')
		}
		if (i+1)%g.width == 0 {
			buf = append(buf, '\n')
		}
	}
	return string(buf)
}
