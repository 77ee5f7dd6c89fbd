package engine

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-sim/model"
	"github.com/sheikhrachel/go-gol-sim/utils"
)

// historySize is how many recent generations are remembered for
// stagnation detection
const historySize = 3

// TickResult describes what a single Tick did
type TickResult struct {
	Generation int
	Population int
	Paused     bool
	Stepped    bool
	Applied    int // commands applied before the step
	Stagnant   bool
}

// Simulation owns the live grid and the pause flag. Commands may be
// submitted from any goroutine; they are queued and applied by Tick before
// the next step, never while a step is running.
type Simulation struct {
	mu         sync.RWMutex
	grid       *model.Grid
	paused     bool
	generation int
	opts       stepOptions
	stats      *utils.Stats
	history    []string
	stagnant   bool
	lastTick   time.Time

	queueMu sync.Mutex
	queue   []Command
}

// NewSimulation creates a simulation over a random grid built from cfg
func NewSimulation(cfg utils.Config) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "[NewSimulation]")
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	grid, err := model.NewRandomGrid(cfg.Width, cfg.Height, model.NewRNG(seed))
	if err != nil {
		return nil, errors.Wrap(err, "[NewSimulation]")
	}

	opts := []StepOption{WithWorkers(cfg.Workers)}
	if cfg.UseMemoryPool {
		opts = append(opts, WithPool(model.NewGridPool()))
	}

	return NewSimulationFromGrid(grid, opts...), nil
}

// NewSimulationFromGrid creates a simulation that takes ownership of grid
func NewSimulationFromGrid(grid *model.Grid, opts ...StepOption) *Simulation {
	s := &Simulation{
		grid:     grid,
		opts:     newStepOptions(opts),
		stats:    utils.NewStats(),
		lastTick: time.Now(),
	}
	s.recordHistory()
	return s
}

// Submit queues a command for the next Tick
func (s *Simulation) Submit(cmd Command) {
	s.queueMu.Lock()
	defer s.queueMu.Unlock()
	s.queue = append(s.queue, cmd)
}

func (s *Simulation) drain() []Command {
	s.queueMu.Lock()
	defer s.queueMu.Unlock()
	cmds := s.queue
	s.queue = nil
	return cmds
}

// Tick applies queued commands in submission order, then advances the grid
// one generation unless paused.
func (s *Simulation) Tick() (TickResult, error) {
	cmds := s.drain()

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, cmd := range cmds {
		cmd.apply(s)
	}

	res := TickResult{Paused: s.paused, Applied: len(cmds)}

	next, err := step(s.grid, s.paused, s.opts)
	if err != nil {
		return res, errors.Wrapf(err, "[Simulation.Tick] generation %d", s.generation)
	}

	if next != s.grid {
		model.GridToPool(s.grid, s.opts.pool)
		s.grid = next
		s.generation++
		res.Stepped = true

		now := time.Now()
		s.stats.Update(s.generation, s.grid.CountLivingCells(), now.Sub(s.lastTick))
		s.lastTick = now
	}
	// Commands change the grid outside the rules, so earlier generations
	// no longer say anything about a cycle
	if len(cmds) > 0 {
		s.history = nil
	}
	if res.Stepped || len(cmds) > 0 {
		s.recordHistory()
	}

	res.Generation = s.generation
	res.Population = s.grid.CountLivingCells()
	res.Stagnant = s.stagnant
	return res, nil
}

func (s *Simulation) recordHistory() {
	h := s.grid.Hash()
	s.stagnant = slices.Contains(s.history, h)
	s.history = append(s.history, h)
	if len(s.history) > historySize {
		s.history = s.history[1:]
	}
}

// Run ticks at a fixed rate until ctx is done. After each tick onTick, if
// set, receives the result and a snapshot of the new grid.
func (s *Simulation) Run(ctx context.Context, ticksPerSecond int, onTick func(TickResult, *model.Grid)) error {
	if ticksPerSecond <= 0 {
		return errors.Wrapf(utils.ErrInvalidConfig, "[Simulation.Run] ticks per second %d", ticksPerSecond)
	}

	ticker := time.NewTicker(time.Second / time.Duration(ticksPerSecond))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			res, err := s.Tick()
			if err != nil {
				return err
			}
			if onTick != nil {
				onTick(res, s.Snapshot())
			}
		}
	}
}

// Snapshot returns a copy of the current grid that later ticks and commands
// never touch
func (s *Simulation) Snapshot() *model.Grid {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.grid.Clone()
}

// Paused reports the current pause flag
func (s *Simulation) Paused() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.paused
}

// Generation returns the number of steps taken so far
func (s *Simulation) Generation() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.generation
}

// Stagnant reports whether the grid repeats one of the last few generations
func (s *Simulation) Stagnant() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stagnant
}

// Stats returns a copy of the runtime statistics
func (s *Simulation) Stats() utils.Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return *s.stats
}
