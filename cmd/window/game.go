//go:build ebiten

package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/sheikhrachel/go-gol-sim/engine"
	"github.com/sheikhrachel/go-gol-sim/model"
	"github.com/sheikhrachel/go-gol-sim/utils"
)

// game adapts a Simulation to the ebiten.Game interface. ebiten calls
// Update once per tick, so each Update submits input and advances one
// generation.
type game struct {
	sim    *engine.Simulation
	cfg    utils.Config
	scale  float64
	frame  *model.Grid
	canvas *ebiten.Image
	pixels []byte

	onColor  color.Color
	offColor color.Color
}

func newGame(sim *engine.Simulation, cfg utils.Config) *game {
	return &game{
		sim:      sim,
		cfg:      cfg,
		scale:    engine.Scale(cfg.WindowSize.Width, cfg.Width),
		frame:    sim.Snapshot(),
		canvas:   ebiten.NewImage(cfg.Width, cfg.Height),
		pixels:   make([]byte, cfg.Width*cfg.Height*4),
		onColor:  color.White,
		offColor: color.Black,
	}
}

// Update handles input and advances the simulation
func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustReleased(ebiten.KeyP) {
		g.sim.Submit(engine.TogglePauseCommand{})
	}

	cx, cy := ebiten.CursorPosition()
	x, y := engine.PointerToCell(float64(cx), float64(cy), g.scale)
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		g.sim.Submit(engine.SetAlive{X: x, Y: y})
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) {
		g.sim.Submit(engine.SetDead{X: x, Y: y})
	}

	if _, err := g.sim.Tick(); err != nil {
		return err
	}
	g.frame = g.sim.Snapshot()
	return nil
}

// Draw renders the latest snapshot, one pixel per cell scaled up
func (g *game) Draw(screen *ebiten.Image) {
	fillPixels(g.pixels, g.frame.Cells(), g.onColor, g.offColor)
	g.canvas.WritePixels(g.pixels)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(g.scale, g.scale)
	screen.DrawImage(g.canvas, op)
}

// Layout returns the logical screen size
func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.WindowSize.Width, g.cfg.WindowSize.Height
}
