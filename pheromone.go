// Package acs - the mutable pheromone field and its two update rules.
//
// The field owns the N×N pheromone matrix for the whole run. It is mutated
// in place and never replaced: TourBuilder applies the local deposit on each
// traversed edge, the Colony applies the global evaporation/reinforcement
// once per generation. The diagonal is 0 by construction and both update
// rules skip i==j, so it stays exactly 0 forever.
//
// Update rules:
//
//	local:  tau[u][v] = (1-phi)*tau[u][v] + phi*tau0
//	global: tau[r][c] = (1-rho)*tau[r][c] + rho*(q/bestCost)  (best-tour edges)
//	        tau[r][c] unchanged                               (all other edges)
//
// The global rule deliberately restricts evaporation to the edges of the
// best-known tour; every other entry is left untouched across generations.
//
// Concurrency: single-writer, no concurrent readers. The field is owned by
// one Colony and all mutation is sequential by design (later ants must see
// earlier ants' local deposits).
package acs

import (
	"math"

	"github.com/katalvlaran/acs/matrix"
)

// Field is the pheromone state of one run plus the coefficients its update
// rules need. Construct with NewField; the zero value is unusable.
type Field struct {
	n    int       // matrix order
	tau  []float64 // row-major N×N pheromone values; diagonal always 0
	tau0 float64   // initial/baseline pheromone level
	phi  float64   // local decay coefficient in [0,1]
	rho  float64   // global evaporation/reinforcement coefficient in [0,1]
	q    float64   // constant reward scale
}

// NewField allocates an order-n pheromone field with every off-diagonal
// entry set to tau0 and the diagonal at 0.
//
// Contract:
//   - n >= 2; tau0 >= 0, q >= 0; phi and rho in [0,1].
//
// Errors: matrix.ErrInvalidDimensions, ErrBadCoefficient.
//
// Complexity: O(n^2) time and memory.
func NewField(n int, tau0, phi, rho, q float64) (*Field, error) {
	if n < 2 {
		return nil, matrix.ErrInvalidDimensions
	}
	if tau0 < 0 || math.IsNaN(tau0) || math.IsInf(tau0, 0) {
		return nil, ErrBadCoefficient
	}
	if phi < 0 || phi > 1 || math.IsNaN(phi) {
		return nil, ErrBadCoefficient
	}
	if rho < 0 || rho > 1 || math.IsNaN(rho) {
		return nil, ErrBadCoefficient
	}
	if q < 0 || math.IsNaN(q) || math.IsInf(q, 0) {
		return nil, ErrBadCoefficient
	}

	f := &Field{
		n:    n,
		tau:  make([]float64, n*n),
		tau0: tau0,
		phi:  phi,
		rho:  rho,
		q:    q,
	}

	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				continue // diagonal stays 0
			}
			f.tau[i*n+j] = tau0
		}
	}

	return f, nil
}

// Order returns the matrix order N.
// Complexity: O(1).
func (f *Field) Order() int {
	return f.n
}

// At returns the pheromone level of the directed edge u -> v.
// Returns matrix.ErrOutOfRange for indices outside [0, N).
// Complexity: O(1).
func (f *Field) At(u, v int) (float64, error) {
	if u < 0 || u >= f.n || v < 0 || v >= f.n {
		return 0, matrix.ErrOutOfRange
	}

	return f.tau[u*f.n+v], nil
}

// at is the unchecked hot-path read; callers guarantee range.
func (f *Field) at(u, v int) float64 {
	return f.tau[u*f.n+v]
}

// Matrix returns an independent snapshot of the current pheromone values.
// Complexity: O(n^2).
func (f *Field) Matrix() *matrix.Dense {
	snap, _ := matrix.NewDense(f.n, f.n) // n >= 2 by construction

	var i, j int
	for i = 0; i < f.n; i++ {
		for j = 0; j < f.n; j++ {
			_ = snap.Set(i, j, f.tau[i*f.n+j])
		}
	}

	return snap
}

// LocalUpdate applies the local deposit to the directed edge u -> v using
// the value present at read time (read-modify-write, never batched):
//
//	tau[u][v] = (1-phi)*tau[u][v] + phi*tau0
//
// It returns the before/after pair for tracing.
//
// Errors: matrix.ErrOutOfRange (index outside [0,N)), ErrInvalidTour
// (u == v; such an edge can only come from a malformed tour).
//
// Complexity: O(1).
func (f *Field) LocalUpdate(u, v int) (PheromoneUpdate, error) {
	if u < 0 || u >= f.n || v < 0 || v >= f.n {
		return PheromoneUpdate{}, matrix.ErrOutOfRange
	}
	if u == v {
		return PheromoneUpdate{}, ErrInvalidTour
	}

	idx := u*f.n + v
	before := f.tau[idx]
	after := (1-f.phi)*before + f.phi*f.tau0
	f.tau[idx] = after

	return PheromoneUpdate{From: u, To: v, Before: before, After: after}, nil
}

// GlobalUpdate applies the per-generation evaporation/reinforcement using
// the all-time best tour. For every ordered pair (r,c), r != c:
//
//	on a best-tour edge: tau[r][c] = (1-rho)*tau[r][c] + rho*(q/bestCost)
//	otherwise:           tau[r][c] unchanged
//
// onEdge, when non-nil, is invoked for every ordered off-diagonal pair in
// row-major order (touched or not) so a trace sink can render the full
// matrix sweep.
//
// Errors: ErrEmptyBestTour (no best tour recorded yet), ErrInvalidTour
// (best references an out-of-range index or has fewer than 2 entries),
// ErrInvalidCost (bestCost is not finite and positive).
//
// Complexity: O(n^2) time, O(n^2) space for the edge membership mask.
func (f *Field) GlobalUpdate(best []int, bestCost float64, onEdge func(PheromoneUpdate)) error {
	if len(best) == 0 {
		return ErrEmptyBestTour
	}
	if len(best) < 2 {
		return ErrInvalidTour
	}
	if bestCost <= 0 || math.IsNaN(bestCost) || math.IsInf(bestCost, 0) {
		return ErrInvalidCost
	}

	// Mark the N-1 consecutive directed edges of the best tour.
	onBest := make([]bool, f.n*f.n)
	var (
		i    int
		u, v int
	)
	for i = 0; i < len(best)-1; i++ {
		u = best[i]
		v = best[i+1]
		if u < 0 || u >= f.n || v < 0 || v >= f.n || u == v {
			return ErrInvalidTour
		}
		onBest[u*f.n+v] = true
	}

	// Full row-major sweep; only best-tour edges change.
	deposit := f.rho * (f.q / bestCost)
	var (
		r, c   int
		idx    int
		before float64
		after  float64
	)
	for r = 0; r < f.n; r++ {
		for c = 0; c < f.n; c++ {
			if r == c {
				continue
			}
			idx = r*f.n + c
			before = f.tau[idx]
			after = before
			if onBest[idx] {
				after = (1-f.rho)*before + deposit
				f.tau[idx] = after
			}
			if onEdge != nil {
				onEdge(PheromoneUpdate{From: r, To: c, Before: before, After: after, OnBest: onBest[idx]})
			}
		}
	}

	return nil
}
