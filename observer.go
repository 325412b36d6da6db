package layout

import "time"

// PassStats summarises one propagation pass.
type PassStats struct {
	Nodes      int
	Levels     int
	Containers int
	Hidden     int
	Duration   time.Duration
}

// Observer receives instrumentation from a Solver.
// Calls happen synchronously on the solving goroutine.
type Observer interface {
	ObservePass(stats PassStats)
	// ObservePlacement is called once per container step with the layout
	// kind and the number of children it placed.
	ObservePlacement(kind string, placed int)
}

type nopObserver struct{}

func (nopObserver) ObservePass(PassStats)         {}
func (nopObserver) ObservePlacement(string, int) {}
