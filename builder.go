// Package acs - tour construction for a single agent.
//
// A tourBuilder walks one agent through the per-step ACS decision rule until
// every city has been visited: draw q ~ U[0,1); q <= q0 exploits the best
// known edge (intensification), otherwise the agent explores by roulette
// over the pseudo-random-proportional distribution (diversification). Each
// committed edge immediately receives the local pheromone deposit, so later
// agents of the same generation observe it.
//
// Both selection rules are pure with respect to engine state: they read the
// pheromone field and the visibility matrix, pick a city, and surface their
// intermediate values through the observation hooks only.
//
// Complexity: O(n) per step, O(n^2) per tour; O(n) extra space per tour.
package acs

import "math"

// tourBuilder carries the per-run inputs tour construction needs. One
// builder serves all agents of a Colony; it holds no per-agent state.
type tourBuilder struct {
	n     int          // number of cities
	vis   []float64    // row-major visibility, linearized for hot-path reads
	field *Field       // shared mutable pheromone state
	alpha float64      // pheromone exponent (diversification)
	beta  float64      // visibility exponent (both branches)
	q0    float64      // exploitation threshold
	rand  RandomSource // single logical stream for the whole run
	hooks *Hooks       // observation callbacks, may be all-nil
}

// buildTour constructs one complete tour for agent ant, starting at start.
// The returned slice is freshly allocated: length n, a permutation of
// 0..n-1 anchored at start.
//
// Errors: ErrNoCandidateCities, ErrDegenerateDistribution, ErrInvalidCost
// (all internal invariant violations given validated inputs), plus any
// failure of the local pheromone update.
func (b *tourBuilder) buildTour(ant, start int) ([]int, error) {
	// Start: the visited sequence begins with the configured initial city.
	visited := make([]int, 1, b.n)
	visited[0] = start
	seen := make([]bool, b.n)
	seen[start] = true

	var (
		curr   int
		q      float64
		chosen int
		err    error
	)

	// Selecting: repeat the threshold dispatch until the tour is complete.
	for len(visited) < b.n {
		curr = visited[len(visited)-1]
		q = b.rand.Float64()

		if q <= b.q0 {
			chosen, err = b.selectIntensified(ant, curr, seen, q)
		} else {
			chosen, err = b.selectDiversified(ant, curr, seen, q)
		}
		if err != nil {
			return nil, err
		}

		visited = append(visited, chosen)
		seen[chosen] = true

		// Local deposit on the committed edge, at read time.
		up, uerr := b.field.LocalUpdate(curr, chosen)
		if uerr != nil {
			return nil, uerr
		}
		b.hooks.emitLocalUpdate(ant, up)
	}

	// Done: visited holds all n cities exactly once.
	return visited, nil
}

// selectIntensified performs the greedy exploitation branch: among unvisited
// cities it maximizes
//
//	score(c) = pheromone[curr][c] * visibility[curr][c]^beta
//
// Ties break toward the lowest city index (ascending scan, strict
// greater-than), which keeps the choice deterministic.
//
// Errors: ErrNoCandidateCities (empty candidate set), ErrInvalidCost
// (NaN score).
func (b *tourBuilder) selectIntensified(ant, curr int, seen []bool, q float64) (int, error) {
	var (
		cands     []Candidate
		bestCity  = -1
		bestScore = math.Inf(-1)
		c         int
		ph        float64
		visPow    float64
		score     float64
	)

	for c = 0; c < b.n; c++ {
		if seen[c] {
			continue
		}
		ph = b.field.at(curr, c)
		visPow = math.Pow(b.vis[curr*b.n+c], b.beta)
		score = ph * visPow
		if math.IsNaN(score) {
			return 0, ErrInvalidCost
		}

		cands = append(cands, Candidate{City: c, Pheromone: ph, Visibility: visPow, Score: score})
		if score > bestScore {
			bestScore = score
			bestCity = c
		}
	}

	if bestCity < 0 {
		return 0, ErrNoCandidateCities
	}

	b.hooks.emitStep(StepEvent{
		Ant:        ant,
		From:       curr,
		Chosen:     bestCity,
		Branch:     BranchIntensify,
		Q:          q,
		Candidates: cands,
	})

	return bestCity, nil
}

// selectDiversified performs the probabilistic exploration branch
// (pseudo-random-proportional rule): unvisited cities are weighted by
//
//	w(c) = pheromone[curr][c]^alpha * visibility[curr][c]^beta
//
// and one is drawn by cumulative roulette: iterate candidates in ascending
// city order, accumulate each candidate's normalized probability, and pick
// the first city at which the running sum reaches the drawn r. The last
// candidate is always selected if rounding keeps the sum below r.
//
// Errors: ErrNoCandidateCities (empty candidate set),
// ErrDegenerateDistribution (zero or non-finite weight mass),
// ErrInvalidCost (NaN weight).
func (b *tourBuilder) selectDiversified(ant, curr int, seen []bool, q float64) (int, error) {
	var (
		cands  []Candidate
		sum    float64
		c      int
		phPow  float64
		visPow float64
		w      float64
	)

	for c = 0; c < b.n; c++ {
		if seen[c] {
			continue
		}
		phPow = math.Pow(b.field.at(curr, c), b.alpha)
		visPow = math.Pow(b.vis[curr*b.n+c], b.beta)
		w = phPow * visPow
		if math.IsNaN(w) {
			return 0, ErrInvalidCost
		}

		cands = append(cands, Candidate{City: c, Pheromone: phPow, Visibility: visPow, Score: w})
		sum += w
	}

	if len(cands) == 0 {
		return 0, ErrNoCandidateCities
	}
	if sum <= 0 || math.IsNaN(sum) || math.IsInf(sum, 0) {
		return 0, ErrDegenerateDistribution
	}

	var i int
	for i = range cands {
		cands[i].Probability = cands[i].Score / sum
	}

	r := b.rand.Float64()

	// Cumulative-roulette scan; the last candidate guards FP rounding.
	chosen := cands[len(cands)-1].City
	var acc float64
	for i = range cands {
		acc += cands[i].Probability
		if acc >= r {
			chosen = cands[i].City
			break
		}
	}

	b.hooks.emitStep(StepEvent{
		Ant:        ant,
		From:       curr,
		Chosen:     chosen,
		Branch:     BranchDiversify,
		Q:          q,
		R:          r,
		Candidates: cands,
	})

	return chosen, nil
}
