package rules

import "github.com/sheikhrachel/go-gol-sim/model"

// Neighbors are the eight offsets around a cell
var Neighbors = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

Conway's Game of Life rules: (alive && neighbors == 2) || neighbors == 3
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	return (alive && neighbors == 2) || neighbors == 3
}

// LiveNeighbors counts the alive neighbors of the cell at index. Neighbors
// off the grid edge are not counted; there is no wraparound.
func LiveNeighbors(g *model.Grid, index int) (count int) {
	pos := g.PositionOf(index)
	for _, off := range Neighbors {
		nx, ny := pos.X+off[0], pos.Y+off[1]
		if !g.InBounds(nx, ny) {
			continue
		}
		if g.IsAlive(nx, ny) {
			count++
		}
	}
	return
}

// NextState returns the state the cell at index will have next generation.
// It only reads g, so it may run concurrently for any set of indices.
func NextState(g *model.Grid, index int) model.CellState {
	pos := g.PositionOf(index)
	if ApplyConwayRules(LiveNeighbors(g, index), g.IsAlive(pos.X, pos.Y)) {
		return model.Alive
	}
	return model.Dead
}
