// Package acs_test provides lightweight testing helpers shared across
// *_test.go files in this package. The helpers are intentionally minimal,
// stdlib-only, and avoid duplicating engine functionality.
package acs_test

import (
	"testing"

	"github.com/katalvlaran/acs/matrix"
)

// -----------------------------------------------------------------------------
// Constants - single source of truth for test knobs
// -----------------------------------------------------------------------------

const (
	// seedDet is a deterministic seed for RNG-based tests.
	seedDet = int64(42)

	// startCity is the canonical initial city used across tests.
	startCity = 0

	// floatTol absorbs FP noise when comparing update arithmetic.
	floatTol = 1e-12
)

// sym4 is the 4-city symmetric instance used by the greedy-construction
// scenario: with equal pheromone, visibility alone orders the candidates.
func sym4() [][]float64 {
	return [][]float64{
		{0, 2, 9, 10},
		{2, 0, 6, 4},
		{9, 6, 0, 8},
		{10, 4, 8, 0},
	}
}

// asym4 is the directed variant of the same instance (independent
// lower-triangle entries); the greedy tour is identical but its open-path
// cost reads the directed entries.
func asym4() [][]float64 {
	return [][]float64{
		{0, 2, 9, 10},
		{1, 0, 6, 4},
		{15, 7, 0, 8},
		{6, 3, 12, 0},
	}
}

// cities10 is a 10-city instance exercised by the integration tests.
func cities10() [][]float64 {
	return [][]float64{
		{0, 12, 3, 23, 1, 5, 23, 56, 12, 11},
		{12, 0, 9, 18, 3, 41, 45, 5, 41, 27},
		{3, 9, 0, 89, 56, 21, 12, 48, 14, 29},
		{23, 18, 89, 0, 87, 46, 75, 17, 50, 42},
		{1, 3, 56, 87, 0, 55, 22, 86, 14, 33},
		{5, 41, 21, 46, 55, 0, 21, 76, 54, 81},
		{23, 45, 12, 75, 22, 21, 0, 11, 57, 48},
		{56, 5, 48, 17, 86, 76, 11, 0, 63, 24},
		{12, 41, 14, 50, 14, 54, 57, 63, 0, 9},
		{11, 27, 29, 42, 33, 81, 48, 24, 9, 0},
	}
}

// mustDense ingests rows into a Dense or fails the test.
func mustDense(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	d, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		t.Fatalf("NewDenseFromRows error: %v", err)
	}

	return d
}

// assertTourShape verifies the permutation invariant: length n, anchored at
// start, every city exactly once.
func assertTourShape(t *testing.T, tour []int, n, start int) {
	t.Helper()
	if len(tour) != n {
		t.Fatalf("tour length = %d, want %d (tour %v)", len(tour), n, tour)
	}
	if tour[0] != start {
		t.Fatalf("tour starts at %d, want %d (tour %v)", tour[0], start, tour)
	}
	seen := make([]bool, n)
	for _, v := range tour {
		if v < 0 || v >= n {
			t.Fatalf("tour references out-of-range city %d (tour %v)", v, tour)
		}
		if seen[v] {
			t.Fatalf("tour repeats city %d (tour %v)", v, tour)
		}
		seen[v] = true
	}
}

// scriptSource replays a fixed sequence of draws, failing the test when the
// engine consumes more values than scripted. It pins down exact decision
// boundaries without math/rand in the loop.
type scriptSource struct {
	t    *testing.T
	vals []float64
	i    int
}

func newScriptSource(t *testing.T, vals ...float64) *scriptSource {
	t.Helper()

	return &scriptSource{t: t, vals: vals}
}

func (s *scriptSource) Float64() float64 {
	if s.i >= len(s.vals) {
		s.t.Fatalf("scriptSource exhausted after %d draws", len(s.vals))
	}
	v := s.vals[s.i]
	s.i++

	return v
}

// eq reports |a-b| <= floatTol.
func eq(a, b float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}

	return d <= floatTol
}
