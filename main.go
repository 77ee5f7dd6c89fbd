package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-sim/engine"
	"github.com/sheikhrachel/go-gol-sim/model"
	"github.com/sheikhrachel/go-gol-sim/utils"
)

func main() {
	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig("config.json")
	if err != nil {
		fmt.Printf("Using default configuration (%v)\n", err)
		config = utils.DefaultConfig()
	}

	sim, err := engine.NewSimulation(config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%+v\n", err)
		os.Exit(1)
	}
	displayGameInfo(config, sim)

	if err = run(config, sim); err != nil {
		fmt.Fprintf(os.Stderr, "%+v\n", err)
		os.Exit(1)
	}
	displayFinalStats(sim)
}

// run drives the simulation on a terminal screen until the user quits or
// the process is interrupted
func run(config utils.Config, sim *engine.Simulation) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "[run] failed to create screen")
	}
	if err = screen.Init(); err != nil {
		return errors.Wrap(err, "[run] failed to initialize screen")
	}
	defer screen.Fini()
	screen.EnableMouse()

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	renderer := model.NewTerminalRenderer(screen)
	renderer.Clear()
	drawFrame(renderer, config, engine.TickResult{Generation: sim.Generation()}, sim.Snapshot(), sim.Stats())

	go pollInput(screen, renderer, sim, stop)

	err = sim.Run(ctx, config.TicksPerSecond, func(res engine.TickResult, snapshot *model.Grid) {
		drawFrame(renderer, config, res, snapshot, sim.Stats())
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// pollInput turns terminal events into simulation commands. It returns once
// the screen is finalized.
func pollInput(screen tcell.Screen, renderer *model.TerminalRenderer, sim *engine.Simulation, quit func()) {
	for {
		switch ev := screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC, ev.Rune() == 'q':
				quit()
			case ev.Rune() == 'p', ev.Rune() == 'P':
				sim.Submit(engine.TogglePauseCommand{})
			}
		case *tcell.EventMouse:
			x, y := renderer.CellAt(ev.Position())
			switch {
			case ev.Buttons()&tcell.ButtonPrimary != 0:
				sim.Submit(engine.SetAlive{X: x, Y: y})
			case ev.Buttons()&tcell.ButtonSecondary != 0:
				sim.Submit(engine.SetDead{X: x, Y: y})
			}
		}
	}
}
