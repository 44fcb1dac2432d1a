package core

import (
	"errors"
	"fmt"
)

// ErrOutOfBounds is returned when a cell coordinate lies outside the grid.
var ErrOutOfBounds = errors.New("cell coordinate out of bounds")

// Grid stores a 2D board of live/dead cells in row-major order. Cell values
// are 0 (dead) or 1 (live). Dimensions are fixed for the grid's lifetime.
type Grid struct {
	Cols, Rows int
	cells      []uint8
}

// NewGrid allocates an all-dead grid with the given dimensions.
func NewGrid(cols, rows int) (*Grid, error) {
	if cols <= 0 || rows <= 0 {
		return nil, fmt.Errorf("grid dimensions must be positive, got %dx%d", cols, rows)
	}
	return &Grid{Cols: cols, Rows: rows, cells: make([]uint8, cols*rows)}, nil
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid) Cells() []uint8 { return g.cells }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.Cols + x }

// Wrap applies toroidal wrapping to the provided coordinates. It is meant
// for neighbor lookups; direct cell access does not wrap.
func (g *Grid) Wrap(x, y int) (int, int) {
	x = (x%g.Cols + g.Cols) % g.Cols
	y = (y%g.Rows + g.Rows) % g.Rows
	return x, y
}

// InBounds reports whether (x, y) addresses a cell without wrapping.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Cols && y >= 0 && y < g.Rows
}

// Alive reads a cell. Out-of-range coordinates are an error, never wrapped.
func (g *Grid) Alive(x, y int) (bool, error) {
	if !g.InBounds(x, y) {
		return false, fmt.Errorf("read (%d,%d): %w", x, y, ErrOutOfBounds)
	}
	return g.cells[g.Index(x, y)] == 1, nil
}

// Set writes a cell.
func (g *Grid) Set(x, y int, alive bool) error {
	if !g.InBounds(x, y) {
		return fmt.Errorf("set (%d,%d): %w", x, y, ErrOutOfBounds)
	}
	v := uint8(0)
	if alive {
		v = 1
	}
	g.cells[g.Index(x, y)] = v
	return nil
}

// Toggle flips a single cell between live and dead.
func (g *Grid) Toggle(x, y int) error {
	if !g.InBounds(x, y) {
		return fmt.Errorf("toggle (%d,%d): %w", x, y, ErrOutOfBounds)
	}
	g.cells[g.Index(x, y)] ^= 1
	return nil
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	dup := &Grid{Cols: g.Cols, Rows: g.Rows, cells: make([]uint8, len(g.cells))}
	copy(dup.cells, g.cells)
	return dup
}

// Equal reports whether two grids have identical dimensions and cells.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.Cols != other.Cols || g.Rows != other.Rows {
		return false
	}
	for i, c := range g.cells {
		if c != other.cells[i] {
			return false
		}
	}
	return true
}

// Population counts the live cells.
func (g *Grid) Population() int {
	n := 0
	for _, c := range g.cells {
		if c != 0 {
			n++
		}
	}
	return n
}

// Clear kills every cell.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = 0
	}
}
