// Package acs - observation hooks for tracing a run.
//
// The engine exposes its intermediate values (candidate scores, drawn random
// numbers, pheromone before/after values) through optional callbacks, never
// through side effects on engine state. All hook fields may be left nil; the
// engine nil-checks before every emission and its behavior is identical with
// or without observers attached.
package acs

import "github.com/katalvlaran/acs/matrix"

// Branch identifies which decision rule produced a construction step.
type Branch int

const (
	// BranchIntensify is the greedy, score-maximizing branch (q <= q0).
	BranchIntensify Branch = iota

	// BranchDiversify is the probabilistic roulette branch (q > q0).
	BranchDiversify
)

// String returns a short human-readable branch name.
func (b Branch) String() string {
	if b == BranchIntensify {
		return "intensify"
	}

	return "diversify"
}

// Candidate carries the per-candidate intermediate values of one selection
// step. Probability is only meaningful for BranchDiversify (0 otherwise).
type Candidate struct {
	City        int     // candidate city index
	Pheromone   float64 // raw (intensify) or alpha-powered (diversify) pheromone term
	Visibility  float64 // beta-powered visibility term
	Score       float64 // product of the two terms
	Probability float64 // normalized weight; diversification only
}

// StepEvent describes one committed construction step of one agent.
type StepEvent struct {
	Ant        int         // agent index within the generation
	From       int         // city the agent moved from
	Chosen     int         // city the agent committed to
	Branch     Branch      // decision rule taken
	Q          float64     // drawn threshold value q ~ U[0,1)
	R          float64     // drawn roulette value; diversification only
	Candidates []Candidate // per-candidate trace values, ascending city order
}

// PheromoneUpdate describes a single read-modify-write of one directed edge
// of the pheromone field.
type PheromoneUpdate struct {
	From   int     // edge tail
	To     int     // edge head
	Before float64 // value read before the update
	After  float64 // value written back
	OnBest bool    // global update only: edge lies on the best tour
}

// Hooks bundles the optional observation callbacks of a run. The zero value
// is fully silent.
type Hooks struct {
	// OnGenerationStart fires before any agent of generation gen (0-based)
	// starts building. The matrices are snapshots; mutating them does not
	// affect the run.
	OnGenerationStart func(gen int, visibility, pheromones *matrix.Dense)

	// OnStep fires after an agent commits to a step, before the local
	// pheromone update of the traversed edge.
	OnStep func(ev StepEvent)

	// OnLocalUpdate fires after the local deposit on a traversed edge.
	OnLocalUpdate func(ant int, up PheromoneUpdate)

	// OnAntDone fires once an agent's tour is complete and scored. The tour
	// slice is a copy owned by the callback.
	OnAntDone func(ant int, tour []int, cost float64)

	// OnGenerationBest fires after all agents of a generation are scored,
	// with the minimum-cost tour of that generation.
	OnGenerationBest func(gen int, tour []int, cost float64)

	// OnGlobalUpdate fires once per ordered off-diagonal pair during the
	// global update, including untouched (non-best-tour) edges.
	OnGlobalUpdate func(up PheromoneUpdate)

	// OnBestImproved fires whenever the all-time best tour is replaced.
	OnBestImproved func(gen int, tour []int, cost float64)
}

// emitGenerationStart nil-checks and fires OnGenerationStart.
func (h *Hooks) emitGenerationStart(gen int, vis, tau *matrix.Dense) {
	if h.OnGenerationStart != nil {
		h.OnGenerationStart(gen, vis, tau)
	}
}

// emitStep nil-checks and fires OnStep.
func (h *Hooks) emitStep(ev StepEvent) {
	if h.OnStep != nil {
		h.OnStep(ev)
	}
}

// emitLocalUpdate nil-checks and fires OnLocalUpdate.
func (h *Hooks) emitLocalUpdate(ant int, up PheromoneUpdate) {
	if h.OnLocalUpdate != nil {
		h.OnLocalUpdate(ant, up)
	}
}

// emitAntDone nil-checks and fires OnAntDone.
func (h *Hooks) emitAntDone(ant int, tour []int, cost float64) {
	if h.OnAntDone != nil {
		h.OnAntDone(ant, tour, cost)
	}
}

// emitGenerationBest nil-checks and fires OnGenerationBest.
func (h *Hooks) emitGenerationBest(gen int, tour []int, cost float64) {
	if h.OnGenerationBest != nil {
		h.OnGenerationBest(gen, tour, cost)
	}
}

// emitGlobalUpdate nil-checks and fires OnGlobalUpdate.
func (h *Hooks) emitGlobalUpdate(up PheromoneUpdate) {
	if h.OnGlobalUpdate != nil {
		h.OnGlobalUpdate(up)
	}
}

// emitBestImproved nil-checks and fires OnBestImproved.
func (h *Hooks) emitBestImproved(gen int, tour []int, cost float64) {
	if h.OnBestImproved != nil {
		h.OnBestImproved(gen, tour, cost)
	}
}
