// Package acs - the Colony orchestrator.
//
// A Colony owns every piece of run state: the immutable distance and
// visibility matrices, the mutable pheromone field, the single random
// stream, and the all-time best tour. One call to RunGeneration builds one
// tour per agent (sequentially, in agent order), scores them, updates the
// running best, and finishes with the global pheromone update driven by the
// all-time best tour. The caller drives repeated generations and consumes
// the returned per-agent results.
//
// Concurrency: a Colony is single-threaded by design. Agents within a
// generation must observe the pheromone field as mutated by earlier agents'
// local deposits; do not parallelize without redefining that ordering.
package acs

import (
	"math"

	"github.com/katalvlaran/acs/matrix"
)

// Colony runs the single-colony Ant Colony System over a fixed set of
// cities. Construct with New; the zero value is unusable.
type Colony struct {
	n     int // number of cities
	size  int // agents per generation
	start int // configured initial city of every tour

	opts Options

	dist    *matrix.Dense // private copy of the distance matrix
	vis     *matrix.Dense // derived visibility matrix (reciprocal distances)
	field   *Field        // mutable pheromone state, owned for the whole run
	builder tourBuilder

	best     []int   // all-time best tour; nil until the first generation
	bestCost float64 // +Inf until the first generation
	gen      int     // completed-generation counter (0-based next index)
}

// New builds a Colony over dist with size agents per generation, every tour
// anchored at initialCity.
//
// Contract:
//   - dist must be square of order n >= 2 with finite, strictly positive
//     off-diagonal entries (the diagonal is never read).
//   - size >= 1; initialCity in [0, n).
//   - opts are applied over DefaultOptions(); coefficient domains are
//     validated here, once.
//
// The distance matrix is copied; later caller-side mutation of dist does
// not affect the run.
//
// Errors: ErrBadColonySize, ErrBadCoefficient, ErrStartOutOfRange,
// ErrNilDistances, ErrInvalidDistance, matrix.ErrNonSquare,
// matrix.ErrInvalidDimensions.
//
// Complexity: O(n^2) time and memory.
func New(size, initialCity int, dist matrix.Matrix, opts ...Option) (*Colony, error) {
	if size < 1 {
		return nil, ErrBadColonySize
	}

	o := gatherOptions(opts...)
	if err := validateOptions(o); err != nil {
		return nil, err
	}

	// Visibility derivation doubles as full distance validation.
	vis, err := NewVisibility(dist)
	if err != nil {
		return nil, err
	}
	n := vis.Rows()

	if err = validateStart(n, initialCity); err != nil {
		return nil, err
	}

	field, err := NewField(n, o.InitialPheromone, o.Phi, o.Rho, o.Q)
	if err != nil {
		return nil, err
	}

	distCopy, err := copyDense(dist, n)
	if err != nil {
		return nil, err
	}

	c := &Colony{
		n:        n,
		size:     size,
		start:    initialCity,
		opts:     o,
		dist:     distCopy,
		vis:      vis,
		field:    field,
		bestCost: math.Inf(1),
	}
	c.builder = tourBuilder{
		n:     n,
		vis:   linearize(vis),
		field: field,
		alpha: o.Alpha,
		beta:  o.Beta,
		q0:    o.Q0,
		rand:  o.Rand,
		hooks: &c.opts.Hooks,
	}

	return c, nil
}

// RunGeneration executes one full generation: one tour per agent in agent
// order, scoring, best-tour bookkeeping, then the global pheromone update
// using the (possibly just-updated) all-time best tour.
//
// The returned slice holds one (Tour, Cost) pair per agent, in agent order;
// the tours are freshly allocated and owned by the caller.
//
// Errors: construction/scoring failures from the builder and cost model
// (internal invariant violations given a validated Colony). Any error
// aborts the run; there are no partial-failure semantics.
//
// Complexity: O(size*n^2) time.
func (c *Colony) RunGeneration() ([]AntResult, error) {
	h := &c.opts.Hooks
	h.emitGenerationStart(c.gen, cloneDense(c.vis), c.field.Matrix())

	results := make([]AntResult, 0, c.size)

	var (
		ant     int
		genBest = -1
		tour    []int
		cost    float64
		err     error
	)
	for ant = 0; ant < c.size; ant++ {
		tour, err = c.builder.buildTour(ant, c.start)
		if err != nil {
			return nil, err
		}
		cost, err = TourCost(c.dist, tour)
		if err != nil {
			return nil, err
		}
		h.emitAntDone(ant, copyTour(tour), cost)

		results = append(results, AntResult{Tour: tour, Cost: cost})
		if genBest < 0 || cost < results[genBest].Cost {
			genBest = ant
		}

		// Strict improvement replaces the all-time best.
		if cost < c.bestCost {
			c.best = copyTour(tour)
			c.bestCost = cost
			h.emitBestImproved(c.gen, copyTour(tour), cost)
		}
	}

	h.emitGenerationBest(c.gen, copyTour(results[genBest].Tour), results[genBest].Cost)

	if err = c.field.GlobalUpdate(c.best, c.bestCost, h.OnGlobalUpdate); err != nil {
		return nil, err
	}
	c.gen++

	return results, nil
}

// Order returns the number of cities N.
func (c *Colony) Order() int {
	return c.n
}

// Size returns the number of agents per generation.
func (c *Colony) Size() int {
	return c.size
}

// Generation returns the number of completed generations.
func (c *Colony) Generation() int {
	return c.gen
}

// Distances returns an independent copy of the distance matrix.
// Complexity: O(n^2).
func (c *Colony) Distances() *matrix.Dense {
	return cloneDense(c.dist)
}

// Visibility returns an independent copy of the derived visibility matrix.
// Complexity: O(n^2).
func (c *Colony) Visibility() *matrix.Dense {
	return cloneDense(c.vis)
}

// Pheromones returns an independent snapshot of the current pheromone
// matrix. Complexity: O(n^2).
func (c *Colony) Pheromones() *matrix.Dense {
	return c.field.Matrix()
}

// Best returns a copy of the all-time best tour and its cost. Before the
// first completed generation the tour is nil and the cost is +Inf.
func (c *Colony) Best() ([]int, float64) {
	return copyTour(c.best), c.bestCost
}

// copyTour returns an independent copy of tour (nil stays nil).
// Complexity: O(n).
func copyTour(tour []int) []int {
	if tour == nil {
		return nil
	}
	out := make([]int, len(tour))
	copy(out, tour)

	return out
}

// copyDense copies an arbitrary Matrix of order n into a fresh Dense.
// Complexity: O(n^2).
func copyDense(m matrix.Matrix, n int) (*matrix.Dense, error) {
	out, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}

	var (
		i, j int
		v    float64
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return nil, err
			}
			if err = out.Set(i, j, v); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}

// cloneDense is the infallible Dense-to-Dense copy used by accessors.
func cloneDense(d *matrix.Dense) *matrix.Dense {
	return d.Clone().(*matrix.Dense)
}

// linearize flattens a Dense into a row-major slice for hot-path reads.
// Complexity: O(n^2).
func linearize(d *matrix.Dense) []float64 {
	var (
		n   = d.Rows()
		out = make([]float64, n*n)
		i   int
		row []float64
	)
	for i = 0; i < n; i++ {
		row, _ = d.Row(i) // i is in range by construction
		copy(out[i*n:(i+1)*n], row)
	}

	return out
}
