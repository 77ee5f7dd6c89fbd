package utils

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"
)

// ErrInvalidConfig is returned by Validate
var ErrInvalidConfig = errors.New("invalid configuration")

// WindowSize is the render surface size in pixels
type WindowSize struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Config holds the configuration for the simulation and its front ends
type Config struct {
	Title          string     `json:"title"`
	WindowSize     WindowSize `json:"window_size"`
	Width          int        `json:"width"`
	Height         int        `json:"height"`
	TicksPerSecond int        `json:"ticks_per_second"`
	Seed           int64      `json:"seed"`    // 0 seeds from the clock
	Workers        int        `json:"workers"` // 0 uses one per CPU
	UseMemoryPool  bool       `json:"use_memory_pool"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Title:          "Game of Life",
		WindowSize:     WindowSize{Width: 800, Height: 800},
		Width:          100,
		Height:         100,
		TicksPerSecond: 20,
		UseMemoryPool:  true,
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	if err = config.Validate(); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] file: %+v", filename)
	}

	return config, nil
}

// Validate checks the values the simulation consumes at construction
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return errors.Wrapf(ErrInvalidConfig, "grid size must be positive, got %dx%d", c.Width, c.Height)
	case c.TicksPerSecond <= 0:
		return errors.Wrapf(ErrInvalidConfig, "ticks_per_second must be positive, got %d", c.TicksPerSecond)
	case c.Workers < 0:
		return errors.Wrapf(ErrInvalidConfig, "workers must not be negative, got %d", c.Workers)
	}
	return nil
}

// Scale returns the pixel size of one cell, assuming square cells
func (c Config) Scale() float64 {
	return float64(c.WindowSize.Width) / float64(c.Width)
}
