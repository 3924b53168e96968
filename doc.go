// Package acs implements the Ant Colony System (ACS) metaheuristic for the
// shortest-Hamiltonian-path problem over a fixed set of cities with pairwise
// travel costs.
//
// The engine models a single colony of agents ("ants") that construct open
// tours over a distance matrix. Each construction step applies the ACS
// decision rule - greedy intensification below the q0 threshold,
// probabilistic diversification above it - and deposits local pheromone on
// the traversed edge; each finished generation reinforces the edges of the
// all-time best tour.
//
//	d, _ := matrix.NewDenseFromRows([][]float64{
//	    {0, 2, 9, 10},
//	    {1, 0, 6, 4},
//	    {15, 7, 0, 8},
//	    {6, 3, 12, 0},
//	})
//	colony, err := acs.New(4, 0, d, acs.WithSeed(42))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for i := 0; i < 100; i++ {
//	    if _, err = colony.RunGeneration(); err != nil {
//	        log.Fatal(err)
//	    }
//	}
//	tour, cost := colony.Best()
//
// Design highlights:
//   - Deterministic: the RandomSource is injected and seedable; identical
//     seeds yield identical runs. No time-based randomness anywhere.
//   - Strict sentinels: all failures are package-level errors matched via
//     errors.Is; a single invalid state aborts the run (no retries).
//   - Observable: every intermediate value (candidate scores, drawn random
//     values, per-edge pheromone before/after) is surfaced through optional
//     Hooks, never through engine state.
//   - Single-threaded on purpose: later agents must see earlier agents'
//     local deposits within a generation.
//
// Subpackages:
//
//	matrix/ - dense float64 matrix primitives
//	config/ - TOML run configuration
//	report/ - human-readable trace sink consuming the engine's Hooks
//	cmd/acs - command-line driver
package acs
