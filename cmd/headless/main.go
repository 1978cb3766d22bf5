// Command headless runs a scenario for a fixed number of steps without a
// display and prints the resulting body states.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/kepler27b/planets/scenario"
	"github.com/kepler27b/planets/sim"
)

func main() {
	scenarioPath := flag.String("scenario", scenario.DefaultName, "scenario file (yaml)")
	steps := flag.Int("steps", 100, "number of physics steps to run")
	flag.Parse()

	sc, err := scenario.Load(*scenarioPath)
	if err != nil {
		log.Fatal(err)
	}

	store := sim.NewStore()
	for _, b := range sc.Build() {
		store.Add(b)
	}

	for i := 0; i < *steps; i++ {
		store.Step()
	}

	fmt.Printf("scenario %q: %d bodies after %d steps\n", sc.Name, store.Len(), *steps)
	for i, b := range store.Bodies() {
		fmt.Printf("  body %d: pos=(%.6g, %.6g) vel=(%.6g, %.6g) mass=%g radius=%g trail=%d\n",
			i, b.Pos.X, b.Pos.Y, b.Vel.X, b.Vel.Y, b.Mass, b.Radius, len(b.History))
	}
}
