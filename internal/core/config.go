package core

import (
	"flag"
	"fmt"
	"time"
)

// Init modes for the starting grid.
const (
	InitRandom = "random"
	InitNoise  = "noise"
)

// Config holds the startup parameters for the simulation.
type Config struct {
	WindowW int
	WindowH int
	Cols    int
	Rows    int

	LiveProbability float64
	TickInterval    time.Duration
	TPS             int
	Seed            int64

	SavePath string

	Init           string
	NoiseScale     float64
	NoiseThreshold float64
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		WindowW:         900,
		WindowH:         600,
		Cols:            40,
		Rows:            30,
		LiveProbability: 0.2,
		TickInterval:    800 * time.Millisecond,
		TPS:             10,
		Seed:            0,
		SavePath:        "saved_game_state.gol",
		Init:            InitRandom,
		NoiseScale:      0.1,
		NoiseThreshold:  0.2,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.WindowW, "width", c.WindowW, "window width in pixels")
	fs.IntVar(&c.WindowH, "height", c.WindowH, "window height in pixels")
	fs.IntVar(&c.Cols, "cols", c.Cols, "grid columns")
	fs.IntVar(&c.Rows, "rows", c.Rows, "grid rows")
	fs.Float64Var(&c.LiveProbability, "p", c.LiveProbability, "initial live probability")
	fs.DurationVar(&c.TickInterval, "tick", c.TickInterval, "generation tick interval")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frame rate cap (ticks per second)")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "random seed (0 uses current time)")
	fs.StringVar(&c.SavePath, "save", c.SavePath, "path of the save file")
	fs.StringVar(&c.Init, "init", c.Init, "initial pattern: random or noise")
	fs.Float64Var(&c.NoiseScale, "noise-scale", c.NoiseScale, "perlin noise frequency for -init noise")
	fs.Float64Var(&c.NoiseThreshold, "noise-threshold", c.NoiseThreshold, "perlin noise live threshold for -init noise")
}

// Validate rejects configurations the simulation cannot run with. It is
// called once before the loop starts; failures are fatal.
func (c Config) Validate() error {
	if c.Cols <= 0 || c.Rows <= 0 {
		return fmt.Errorf("grid dimensions must be positive, got %dx%d", c.Cols, c.Rows)
	}
	if c.WindowW < c.Cols || c.WindowH < c.Rows {
		return fmt.Errorf("window %dx%d too small for a %dx%d grid", c.WindowW, c.WindowH, c.Cols, c.Rows)
	}
	if c.LiveProbability < 0 || c.LiveProbability > 1 {
		return fmt.Errorf("live probability must be in [0,1], got %g", c.LiveProbability)
	}
	if c.TickInterval <= 0 {
		return fmt.Errorf("tick interval must be positive, got %s", c.TickInterval)
	}
	if c.TPS <= 0 {
		return fmt.Errorf("tps must be positive, got %d", c.TPS)
	}
	if c.Init != InitRandom && c.Init != InitNoise {
		return fmt.Errorf("unknown init mode %q", c.Init)
	}
	return nil
}

// CellSize returns the pixel dimensions of one cell.
func (c Config) CellSize() (w, h int) {
	return c.WindowW / c.Cols, c.WindowH / c.Rows
}
