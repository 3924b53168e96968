// Package acs - sentinel error set and result types.
// This file defines ONLY package-level sentinel errors and the small result
// structs shared across the engine. All operations MUST return these
// sentinels and tests MUST check them via errors.Is. No routine panics on
// user input; panics are reserved for programmer errors in option
// constructors.
package acs

import "errors"

// Sentinel errors returned by the engine. Every message is prefixed with
// "acs: ..." for consistency and to allow easy grepping across logs.
var (
	// ErrNilDistances indicates that a nil distance matrix was supplied.
	ErrNilDistances = errors.New("acs: distance matrix is nil")

	// ErrInvalidDistance indicates a non-positive or non-finite off-diagonal
	// distance, which would make visibility undefined. Fatal at construction.
	ErrInvalidDistance = errors.New("acs: non-positive or non-finite off-diagonal distance")

	// ErrInvalidTour indicates a malformed tour passed to cost computation:
	// fewer than 2 entries or an out-of-range city index.
	ErrInvalidTour = errors.New("acs: malformed tour")

	// ErrInvalidCost indicates that a NaN surfaced in a score or cost
	// comparison. NaN is propagated as an error, never silently ordered.
	ErrInvalidCost = errors.New("acs: NaN in score or cost")

	// ErrNoCandidateCities indicates that a selection step found no unvisited
	// city. The construction loop guard prevents this; treat as an internal
	// invariant violation.
	ErrNoCandidateCities = errors.New("acs: no candidate cities")

	// ErrEmptyBestTour indicates a global pheromone update was requested
	// before any best tour was recorded.
	ErrEmptyBestTour = errors.New("acs: no best tour recorded")

	// ErrDegenerateDistribution indicates the diversification weight mass is
	// zero or non-finite, so no probability distribution can be formed.
	ErrDegenerateDistribution = errors.New("acs: degenerate selection distribution")

	// ErrBadCoefficient indicates a heuristic coefficient outside its
	// documented domain (rho/q0/phi in [0,1]; alpha/beta/q/tau0 >= 0).
	ErrBadCoefficient = errors.New("acs: coefficient out of range")

	// ErrBadColonySize indicates a non-positive number of agents.
	ErrBadColonySize = errors.New("acs: colony size must be >= 1")

	// ErrStartOutOfRange indicates the configured initial city index is not
	// within [0, N).
	ErrStartOutOfRange = errors.New("acs: initial city out of range")
)

// AntResult is the outcome of one agent within a generation: the constructed
// tour (an open Hamiltonian path anchored at the configured initial city)
// and its open-path cost.
type AntResult struct {
	// Tour is the sequence of city indices, length N, starting at the
	// configured initial city, each city appearing exactly once. No closing
	// edge back to the start is implied.
	Tour []int

	// Cost is the sum of consecutive edge distances along Tour.
	Cost float64
}
