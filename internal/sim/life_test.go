package sim

import (
	"testing"

	"golife/internal/core"
)

func mustGrid(t *testing.T, cols, rows int) *core.Grid {
	t.Helper()
	g, err := core.NewGrid(cols, rows)
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func set(t *testing.T, g *core.Grid, pts ...[2]int) {
	t.Helper()
	for _, p := range pts {
		if err := g.Set(p[0], p[1], true); err != nil {
			t.Fatal(err)
		}
	}
}

func assertLive(t *testing.T, g *core.Grid, expects map[[2]int]bool) {
	t.Helper()
	for y := 0; y < g.Rows; y++ {
		for x := 0; x < g.Cols; x++ {
			alive, err := g.Alive(x, y)
			if err != nil {
				t.Fatal(err)
			}
			if alive != expects[[2]int{x, y}] {
				t.Fatalf("cell (%d,%d) alive=%v, expected %v", x, y, alive, expects[[2]int{x, y}])
			}
		}
	}
}

func TestAllDeadStaysDead(t *testing.T) {
	g := mustGrid(t, 8, 8)
	next := Next(g)
	if next.Population() != 0 {
		t.Fatalf("an all-dead grid must stay dead, got %d live cells", next.Population())
	}
}

func TestLoneCellDies(t *testing.T) {
	g := mustGrid(t, 8, 8)
	set(t, g, [2]int{4, 4})
	next := Next(g)
	if next.Population() != 0 {
		t.Fatalf("an isolated cell must die, got %d live cells", next.Population())
	}
}

func TestBlockIsStillLife(t *testing.T) {
	g := mustGrid(t, 6, 6)
	set(t, g, [2]int{2, 2}, [2]int{3, 2}, [2]int{2, 3}, [2]int{3, 3})
	next := Next(g)
	if !next.Equal(g) {
		t.Fatal("a 2x2 block must be unchanged by one generation")
	}
}

func TestBlinkerOscillation(t *testing.T) {
	g := mustGrid(t, 5, 5)
	set(t, g, [2]int{2, 1}, [2]int{2, 2}, [2]int{2, 3})

	next := Next(g)
	assertLive(t, next, map[[2]int]bool{
		{1, 2}: true,
		{2, 2}: true,
		{3, 2}: true,
	})

	again := Next(next)
	if !again.Equal(g) {
		t.Fatal("a blinker must return to its original phase after two generations")
	}
}

func TestToroidalCornerNeighbors(t *testing.T) {
	// A corner cell and its diagonal opposite are adjacent on a torus.
	// Three live cells clustered around the wrap seam give (0,0) two
	// neighbors, so it survives.
	g := mustGrid(t, 6, 6)
	set(t, g, [2]int{0, 0}, [2]int{5, 5}, [2]int{5, 0})

	next := Next(g)
	alive, err := next.Alive(0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if !alive {
		t.Fatal("cell (0,0) must count (5,5) and (5,0) as neighbors and survive")
	}
}

func TestNextDoesNotMutateInput(t *testing.T) {
	g := mustGrid(t, 5, 5)
	set(t, g, [2]int{2, 1}, [2]int{2, 2}, [2]int{2, 3})
	before := g.Clone()

	Next(g)
	if !g.Equal(before) {
		t.Fatal("Next must not mutate its input grid")
	}
}

func TestNextIsDeterministic(t *testing.T) {
	g := mustGrid(t, 16, 16)
	Randomize(g, 123, 0.3)
	if !Next(g).Equal(Next(g)) {
		t.Fatal("same input grid must produce the same output grid")
	}
}

func TestRandomizeDeterministicPerSeed(t *testing.T) {
	a := mustGrid(t, 12, 12)
	b := mustGrid(t, 12, 12)
	Randomize(a, 42, 0.2)
	Randomize(b, 42, 0.2)
	if !a.Equal(b) {
		t.Fatal("Randomize with the same seed must produce identical grids")
	}

	c := mustGrid(t, 12, 12)
	Randomize(c, 43, 0.2)
	if a.Equal(c) {
		t.Fatal("different seeds should produce different grids")
	}
}

func TestFillNoiseDeterministicPerSeed(t *testing.T) {
	a := mustGrid(t, 24, 24)
	b := mustGrid(t, 24, 24)
	FillNoise(a, 7, 0.1, 0.2)
	FillNoise(b, 7, 0.1, 0.2)
	if !a.Equal(b) {
		t.Fatal("FillNoise with the same seed must produce identical grids")
	}
}
