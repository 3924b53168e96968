// Package acs - cost model: visibility derivation and tour cost.
//
// This file is the pure, stateless half of the engine. Visibility is the
// elementwise reciprocal of distance; tour cost is the open-path sum of
// consecutive edge distances (no wrap-around edge back to the start).
//
// Design:
//   - Strict sentinels from types.go on any invalid input.
//   - The diagonal of the distance matrix is never read; its visibility
//     counterpart is left 0 and is never read either.
//   - Stable summation: costs are rounded to 1e-9 to avoid cross-platform
//     FP noise.
package acs

import (
	"math"

	"github.com/katalvlaran/acs/matrix"
)

// roundScale controls final cost stabilization precision (1e-9).
// Avoids tiny FP drifts across platforms/opt levels without affecting
// which tour compares as best.
const roundScale = 1e9

// NewVisibility derives the visibility matrix from dist:
// visibility[i][j] = 1/dist[i][j] for i != j; the diagonal stays 0.
//
// Contract:
//   - dist must be square of order n >= 2.
//   - Every off-diagonal entry must be finite and strictly positive; a zero
//     or negative distance would yield an undefined (infinite) visibility
//     and is rejected with ErrInvalidDistance.
//
// Errors: ErrNilDistances, matrix.ErrNonSquare, matrix.ErrInvalidDimensions,
// ErrInvalidDistance.
//
// Complexity: O(n^2) time and memory.
func NewVisibility(dist matrix.Matrix) (*matrix.Dense, error) {
	n, err := squareOrder(dist)
	if err != nil {
		return nil, err
	}

	vis, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}

	var (
		i, j int
		d    float64
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			// The diagonal is never read for cost or decision purposes;
			// leave its visibility at 0.
			if i == j {
				continue
			}
			d, err = dist.At(i, j)
			if err != nil {
				return nil, err
			}
			if d <= 0 || math.IsNaN(d) || math.IsInf(d, 0) {
				return nil, ErrInvalidDistance
			}
			if err = vis.Set(i, j, 1/d); err != nil {
				return nil, err
			}
		}
	}

	return vis, nil
}

// TourCost sums the distances of consecutive edges along tour (open path:
// no edge from the last city back to the first).
//
// Contract:
//   - tour must have at least 2 entries, each within [0, n).
//   - dist must be square.
//
// Errors: ErrNilDistances, matrix.ErrNonSquare, ErrInvalidTour,
// ErrInvalidCost (NaN surfaced in the sum).
//
// Complexity: O(len(tour)) time, O(1) extra space.
func TourCost(dist matrix.Matrix, tour []int) (float64, error) {
	n, err := squareOrder(dist)
	if err != nil {
		return 0, err
	}
	if len(tour) < 2 {
		return 0, ErrInvalidTour
	}

	var (
		sum  float64
		i    int
		u, v int
		w    float64
		last = len(tour) - 1
	)
	for i = 0; i < last; i++ {
		u = tour[i]
		v = tour[i+1]
		if u < 0 || u >= n || v < 0 || v >= n {
			return 0, ErrInvalidTour
		}
		w, err = dist.At(u, v)
		if err != nil {
			return 0, ErrInvalidTour
		}
		if math.IsNaN(w) {
			return 0, ErrInvalidCost
		}
		sum += w
	}
	if math.IsNaN(sum) {
		return 0, ErrInvalidCost
	}

	return round1e9(sum), nil
}

// squareOrder verifies dist is a non-nil square matrix of order >= 2 and
// returns the order.
//
// Complexity: O(1).
func squareOrder(dist matrix.Matrix) (int, error) {
	if dist == nil {
		return 0, ErrNilDistances
	}
	n := dist.Rows()
	if n != dist.Cols() {
		return 0, matrix.ErrNonSquare
	}
	if n < 2 {
		return 0, matrix.ErrInvalidDimensions
	}

	return n, nil
}

// round1e9 returns x rounded to 1e-9 absolute precision.
// This keeps costs stable across platforms without affecting which tour
// wins a strict comparison.
//
// Complexity: O(1).
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}
