package sim

import (
	"golife/internal/core"
)

// Next computes one generation of Conway's Game of Life on a toroidal grid.
// The result is a freshly allocated grid so no cell's update can observe a
// neighbor already updated within the same generation. Next is pure: same
// input grid, same output grid.
func Next(g *core.Grid) *core.Grid {
	out, _ := core.NewGrid(g.Cols, g.Rows)
	cur := g.Cells()
	nxt := out.Cells()
	cols, rows := g.Cols, g.Rows

	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			neighbors := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					nx, ny := g.Wrap(x+dx, y+dy)
					neighbors += int(cur[ny*cols+nx])
				}
			}
			idx := y*cols + x
			alive := cur[idx] == 1
			if (alive && (neighbors == 2 || neighbors == 3)) || (!alive && neighbors == 3) {
				nxt[idx] = 1
			}
		}
	}
	return out
}
