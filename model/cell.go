package model

// CellState is the state of a single cell
type CellState uint8

const (
	Dead CellState = iota
	Alive
)

func (s CellState) String() string {
	if s == Alive {
		return "alive"
	}
	return "dead"
}

// Position is a cell's fixed coordinate on the grid
type Position struct {
	X, Y int
}

// Cell pairs a fixed position with its current state
type Cell struct {
	Position Position
	State    CellState
}
