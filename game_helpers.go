package main

import (
	"fmt"
	"time"

	"github.com/sheikhrachel/go-gol-sim/engine"
	"github.com/sheikhrachel/go-gol-sim/model"
	"github.com/sheikhrachel/go-gol-sim/utils"
)

// displayGameInfo shows the initial game information
func displayGameInfo(config utils.Config, sim *engine.Simulation) {
	snapshot := sim.Snapshot()
	fmt.Printf("Grid: %dx%d | Initial living cells: %d | %d ticks/sec\n",
		snapshot.GetWidth(), snapshot.GetHeight(), snapshot.CountLivingCells(), config.TicksPerSecond)
	fmt.Println("Left click paints, right click erases, P pauses, Q quits")
	time.Sleep(time.Second)
}

// drawFrame renders one snapshot and the status lines beneath it
func drawFrame(
	renderer *model.TerminalRenderer,
	config utils.Config,
	res engine.TickResult,
	snapshot *model.Grid,
	stats utils.Stats,
) {
	renderer.Display(snapshot)

	status := "Active"
	switch {
	case res.Paused:
		status = "Paused"
	case snapshot.CountLivingCells() == 0:
		status = "Extinct"
	case res.Stagnant:
		status = "Stagnant"
	}

	row := snapshot.GetHeight()
	renderer.Status(row, fmt.Sprintf("%s | Gen: %d | Living: %d | Status: %s",
		config.Title, res.Generation, snapshot.CountLivingCells(), status))
	renderer.Status(row+1, fmt.Sprintf("Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs",
		stats.GenerationsPerSecond, stats.AveragePopulation, time.Since(stats.StartTime).Seconds()))
	renderer.Show()
}

// displayFinalStats prints a summary after the screen is released
func displayFinalStats(sim *engine.Simulation) {
	stats := sim.Stats()
	fmt.Printf("Final stats: %d generations in %.1f seconds\n",
		stats.TotalGenerations, time.Since(stats.StartTime).Seconds())
	fmt.Printf("Average: %.1f gen/sec, %.1f avg population\n",
		stats.GenerationsPerSecond, stats.AveragePopulation)
}
