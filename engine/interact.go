package engine

import (
	"math"

	"github.com/sheikhrachel/go-gol-sim/model"
)

// Paint sets the cell at (x, y) alive. Coordinates off the grid are
// ignored and Paint reports false.
func Paint(g *model.Grid, x, y int) bool {
	return setAt(g, x, y, model.Alive)
}

// Erase sets the cell at (x, y) dead, with the same bounds policy as Paint
func Erase(g *model.Grid, x, y int) bool {
	return setAt(g, x, y, model.Dead)
}

func setAt(g *model.Grid, x, y int, state model.CellState) bool {
	if !g.InBounds(x, y) {
		return false
	}
	return g.Set(g.IndexOf(x, y), state) == nil
}

// TogglePause returns the flipped pause flag
func TogglePause(paused bool) bool {
	return !paused
}

// Scale returns the pixel size of a square cell when gridWidth cells span
// renderWidth pixels
func Scale(renderWidth, gridWidth int) float64 {
	return float64(renderWidth) / float64(gridWidth)
}

// PointerToCell converts a pointer position in pixels to grid coordinates.
// The result may be off the grid; Paint and Erase ignore such coordinates.
func PointerToCell(px, py, scale float64) (x, y int) {
	return int(math.Floor(px / scale)), int(math.Floor(py / scale))
}
