// life-bench runs the simulation headless: seed a grid, advance a fixed
// number of generations, print population statistics, and optionally write
// the final state as a snapshot.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"golife/internal/core"
	"golife/internal/sim"
	"golife/internal/snapshot"
)

func main() {
	cols := flag.Int("cols", 128, "grid columns")
	rows := flag.Int("rows", 128, "grid rows")
	p := flag.Float64("p", 0.2, "initial live probability")
	seed := flag.Int64("seed", 42, "random seed")
	generations := flag.Int("n", 1000, "generations to compute")
	every := flag.Int("every", 100, "print population every N generations (0 disables)")
	out := flag.String("out", "", "write the final grid to this snapshot file")
	flag.Parse()

	if *cols <= 0 || *rows <= 0 {
		log.Fatalf("grid dimensions must be positive, got %dx%d", *cols, *rows)
	}
	if *p < 0 || *p > 1 {
		log.Fatalf("live probability must be in [0,1], got %g", *p)
	}

	g, err := core.NewGrid(*cols, *rows)
	if err != nil {
		log.Fatal(err)
	}
	sim.Randomize(g, *seed, *p)

	fmt.Printf("%dx%d grid, seed %d, initial population %d\n", *cols, *rows, *seed, g.Population())

	start := time.Now()
	for i := 1; i <= *generations; i++ {
		g = sim.Next(g)
		if *every > 0 && i%*every == 0 {
			fmt.Printf("gen %6d  population %6d\n", i, g.Population())
		}
	}
	elapsed := time.Since(start)

	fmt.Printf("computed %d generations in %s (%.0f gen/s), final population %d\n",
		*generations, elapsed.Round(time.Millisecond),
		float64(*generations)/elapsed.Seconds(), g.Population())

	if *out != "" {
		if err := (snapshot.Store{Path: *out}).Save(g); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("wrote %s\n", *out)
	}
}
