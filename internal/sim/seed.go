package sim

import (
	"github.com/aquilax/go-perlin"

	"golife/internal/core"
)

// Perlin generator shape; alpha/beta/n follow the library's recommended
// smooth-noise settings.
const (
	perlinAlpha = 2.0
	perlinBeta  = 2.0
	perlinN     = 3
)

// Randomize fills the grid with independent Bernoulli cells, each live with
// probability p. Deterministic for a given seed.
func Randomize(g *core.Grid, seed int64, p float64) {
	rng := core.NewRNG(seed).Source()
	core.FillBernoulli(rng, g.Cells(), p)
}

// FillNoise seeds the grid from a Perlin noise field: a cell is live where
// the noise value at its (scaled) coordinates exceeds the threshold. Produces
// clustered starting colonies instead of uniform static.
func FillNoise(g *core.Grid, seed int64, scale, threshold float64) {
	noise := perlin.NewPerlin(perlinAlpha, perlinBeta, perlinN, seed)
	cells := g.Cells()
	for y := 0; y < g.Rows; y++ {
		for x := 0; x < g.Cols; x++ {
			v := noise.Noise2D(float64(x)*scale, float64(y)*scale)
			idx := y*g.Cols + x
			cells[idx] = 0
			if v > threshold {
				cells[idx] = 1
			}
		}
	}
}
