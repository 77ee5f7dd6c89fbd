package engine

// Command is a user action applied to a Simulation between ticks
type Command interface {
	apply(s *Simulation)
}

// SetAlive paints the cell at (X, Y)
type SetAlive struct {
	X, Y int
}

func (c SetAlive) apply(s *Simulation) {
	Paint(s.grid, c.X, c.Y)
}

// SetDead erases the cell at (X, Y)
type SetDead struct {
	X, Y int
}

func (c SetDead) apply(s *Simulation) {
	Erase(s.grid, c.X, c.Y)
}

// TogglePauseCommand flips the simulation's pause flag
type TogglePauseCommand struct{}

func (TogglePauseCommand) apply(s *Simulation) {
	s.paused = TogglePause(s.paused)
}
