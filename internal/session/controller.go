package session

import (
	"errors"
	"fmt"
	"log"
	"time"

	"golife/internal/core"
	"golife/internal/sim"
	"golife/internal/snapshot"
)

// Controller owns the grid, the tick clock and the save store, and applies
// translated input commands. It runs on the main loop thread only; nothing
// here is safe for concurrent use.
type Controller struct {
	grid  *core.Grid
	clock *core.TickClock
	store snapshot.Store

	showingInstructions bool
	quit                bool
	generation          int
	status              string
}

// New builds a controller from a validated configuration. The starting grid
// is seeded per cfg.Init; a zero seed falls back to the current time.
func New(cfg core.Config) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	g, err := core.NewGrid(cfg.Cols, cfg.Rows)
	if err != nil {
		return nil, err
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	switch cfg.Init {
	case core.InitNoise:
		sim.FillNoise(g, seed, cfg.NoiseScale, cfg.NoiseThreshold)
	default:
		sim.Randomize(g, seed, cfg.LiveProbability)
	}
	return &Controller{
		grid:                g,
		clock:               core.NewTickClock(cfg.TickInterval),
		store:               snapshot.Store{Path: cfg.SavePath},
		showingInstructions: true,
	}, nil
}

// Grid exposes the current generation for rendering.
func (c *Controller) Grid() *core.Grid { return c.grid }

// Paused reports the clock state.
func (c *Controller) Paused() bool { return c.clock.Paused() }

// Generation returns the number of generations computed so far.
func (c *Controller) Generation() int { return c.generation }

// ShowingInstructions reports whether the startup instructions gate is up.
func (c *Controller) ShowingInstructions() bool { return c.showingInstructions }

// ShouldQuit reports whether a Quit command has been received.
func (c *Controller) ShouldQuit() bool { return c.quit }

// Status returns the most recent user-facing message, usually about a
// failed load.
func (c *Controller) Status() string { return c.status }

// Frame runs one loop iteration: every queued command is applied in order,
// then the clock may advance one generation. The automatic tick keeps
// running while the instructions are up; interaction does not.
func (c *Controller) Frame(cmds []Command) {
	for _, cmd := range cmds {
		c.apply(cmd)
	}
	if c.clock.Due() {
		c.advance()
	}
}

func (c *Controller) apply(cmd Command) {
	if c.showingInstructions {
		switch cmd.Kind {
		case Proceed:
			c.showingInstructions = false
		case Quit:
			c.quit = true
		}
		return
	}

	switch cmd.Kind {
	case ToggleCell:
		if err := c.grid.Toggle(cmd.X, cmd.Y); err != nil {
			// Translation clamps to grid bounds, so this is a bug upstream.
			log.Printf("toggle: %v", err)
		}
	case Advance:
		// Deliberately does not touch the clock: the next automatic
		// tick still fires on its original schedule.
		c.advance()
	case TogglePause:
		c.clock.TogglePause()
	case Save:
		if err := c.store.Save(c.grid); err != nil {
			log.Printf("save: %v", err)
			c.status = "save failed"
			return
		}
		c.status = fmt.Sprintf("saved to %s", c.store.Path)
	case Load:
		c.load()
	case Proceed:
		// Already past the instructions; nothing to do.
	case Quit:
		c.quit = true
	}
}

func (c *Controller) advance() {
	c.grid = sim.Next(c.grid)
	c.generation++
}

func (c *Controller) load() {
	g, err := c.store.Load()
	switch {
	case errors.Is(err, snapshot.ErrNotFound):
		c.status = "no saved game to load"
		return
	case errors.Is(err, snapshot.ErrCorrupt):
		log.Printf("load: %v", err)
		c.status = "save file is corrupt"
		return
	case err != nil:
		log.Printf("load: %v", err)
		c.status = "load failed"
		return
	}
	// The window layout is fixed at startup, so a snapshot of another
	// size cannot be displayed.
	if g.Cols != c.grid.Cols || g.Rows != c.grid.Rows {
		c.status = fmt.Sprintf("saved grid is %dx%d, need %dx%d", g.Cols, g.Rows, c.grid.Cols, c.grid.Rows)
		return
	}
	c.grid = g
	c.generation = 0
	c.status = fmt.Sprintf("loaded %s", c.store.Path)
}
