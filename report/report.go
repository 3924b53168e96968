// Package report renders a human-readable trace of an acs run: a parameter
// table, per-generation matrix snapshots, every construction decision of
// every agent, and the pheromone sweep of each global update.
//
// The Sink subscribes to the engine through acs.Hooks and streams text to an
// io.Writer as events arrive; it never buffers a whole run. Hook callbacks
// cannot return errors, so the sink latches the first write error and turns
// all further rendering into no-ops; callers check Err when the run is done.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/pterm/pterm"

	"github.com/katalvlaran/acs"
	"github.com/katalvlaran/acs/matrix"
)

// matrixPrecision is the number of decimals in matrix snapshots and trace
// values.
const matrixPrecision = 6

// Params is the run configuration echoed at the top of a report.
type Params struct {
	Ants             int
	Generations      int
	InitialCity      int
	Seed             int64
	Alpha            float64
	Beta             float64
	Rho              float64
	Q                float64
	Q0               float64
	Phi              float64
	InitialPheromone float64
}

// Sink streams a run trace to w. Construct with New, register Hooks() on the
// colony, then call WriteFinal and Err after the run.
type Sink struct {
	w      io.Writer
	labels []string

	ant int // agent currently being traced; -1 between agents
	err error
}

// New returns a Sink writing to w. labels, when non-empty, supplies one
// display name per city; otherwise cities render as letters A, B, C, ...
func New(w io.Writer, labels []string) *Sink {
	return &Sink{w: w, labels: labels, ant: -1}
}

// Err returns the first write error the sink encountered, or nil.
func (s *Sink) Err() error {
	return s.err
}

// Label returns the display name of city i.
func (s *Sink) Label(i int) string {
	return Label(i, s.labels)
}

// Label returns the display name of city i: names[i] when provided, letters
// A, B, C, ... otherwise.
func Label(i int, names []string) string {
	if i >= 0 && i < len(names) {
		return names[i]
	}

	return cityLetter(i)
}

// Path renders a tour as "A -> B -> D -> C" using Label for each city.
func Path(tour []int, names []string) string {
	parts := make([]string, len(tour))
	for i, city := range tour {
		parts[i] = Label(city, names)
	}

	return strings.Join(parts, " -> ")
}

// WriteParams renders the boxed parameter table that opens a report.
func (s *Sink) WriteParams(p Params) error {
	rows := pterm.TableData{
		{"Number of ants", fmt.Sprintf("%d", p.Ants)},
		{"Number of generations", fmt.Sprintf("%d", p.Generations)},
		{"Initial city", s.Label(p.InitialCity)},
		{"Seed", fmt.Sprintf("%d", p.Seed)},
		{"alpha", trim(p.Alpha)},
		{"beta", trim(p.Beta)},
		{"rho", trim(p.Rho)},
		{"Q", trim(p.Q)},
		{"q0", trim(p.Q0)},
		{"phi", trim(p.Phi)},
		{"Initial pheromone", trim(p.InitialPheromone)},
	}

	table, err := pterm.DefaultTable.WithBoxed().WithData(rows).Srender()
	if err != nil {
		return fmt.Errorf("report: render parameter table: %w", err)
	}

	s.printf("Parameters\n%s\n\n", table)

	return s.err
}

// Hooks returns the callback set that feeds this sink. Register it on the
// colony via acs.WithHooks.
func (s *Sink) Hooks() acs.Hooks {
	return acs.Hooks{
		OnGenerationStart: s.generationStart,
		OnStep:            s.step,
		OnLocalUpdate:     s.localUpdate,
		OnAntDone:         s.antDone,
		OnGenerationBest:  s.generationBest,
		OnGlobalUpdate:    s.globalUpdate,
		OnBestImproved:    s.bestImproved,
	}
}

// WriteFinal renders the closing global-best section.
func (s *Sink) WriteFinal(tour []int, cost float64) error {
	s.printf("\nGlobal best path: %s with cost %s\n", s.path(tour), trim(cost))

	return s.err
}

func (s *Sink) generationStart(gen int, vis, tau *matrix.Dense) {
	s.printf("------------------------------------\n")
	s.printf("Generation %d\n\n", gen+1)
	s.printf("Visibility matrix:\n%s\n", s.renderMatrix(vis))
	s.printf("Pheromone matrix:\n%s\n", s.renderMatrix(tau))
	s.ant = -1
}

func (s *Sink) step(ev acs.StepEvent) {
	if ev.Ant != s.ant {
		s.ant = ev.Ant
		s.printf("Ant %d\n", ev.Ant+1)
		s.printf("Initial city: %s\n", s.Label(ev.From))
	}

	s.printf("q value: %s\n", trim(ev.Q))
	if ev.Branch == acs.BranchIntensify {
		s.printf("Step by intensification\n")
		for _, c := range ev.Candidates {
			s.printf("%s -> %s: tau = %s, eta^beta = %s, tau * eta^beta = %s\n",
				s.Label(ev.From), s.Label(c.City), trim(c.Pheromone), trim(c.Visibility), trim(c.Score))
		}
	} else {
		s.printf("Step by diversification\n")
		var sum float64
		for _, c := range ev.Candidates {
			sum += c.Score
			s.printf("%s -> %s: tau^alpha = %s, eta^beta = %s, product = %s\n",
				s.Label(ev.From), s.Label(c.City), trim(c.Pheromone), trim(c.Visibility), trim(c.Score))
		}
		s.printf("Sum: %s\n", trim(sum))
		for _, c := range ev.Candidates {
			s.printf("%s -> %s: prob = %s\n", s.Label(ev.From), s.Label(c.City), trim(c.Probability))
		}
		s.printf("Random number: %s\n", trim(ev.R))
	}
	s.printf("Next city: %s\n", s.Label(ev.Chosen))
}

func (s *Sink) localUpdate(_ int, up acs.PheromoneUpdate) {
	s.printf("Pheromone update on arc %s -> %s: %s -> %s\n\n",
		s.Label(up.From), s.Label(up.To), trim(up.Before), trim(up.After))
}

func (s *Sink) antDone(ant int, tour []int, cost float64) {
	s.printf("Ant %d path: %s (cost: %s)\n-----\n\n", ant+1, s.path(tour), trim(cost))
}

func (s *Sink) generationBest(_ int, tour []int, cost float64) {
	s.printf("Best path this generation: %s with cost %s\n\n", s.path(tour), trim(cost))
}

func (s *Sink) globalUpdate(up acs.PheromoneUpdate) {
	marker := ""
	if up.OnBest {
		marker = " (best edge)"
	}
	s.printf("%s -> %s: pheromone = %s -> %s%s\n",
		s.Label(up.From), s.Label(up.To), trim(up.Before), trim(up.After), marker)
}

func (s *Sink) bestImproved(gen int, tour []int, cost float64) {
	s.printf("New global best in generation %d: %s with cost %s\n", gen+1, s.path(tour), trim(cost))
}

// path renders a tour using the sink's label set.
func (s *Sink) path(tour []int) string {
	return Path(tour, s.labels)
}

// renderMatrix formats a square matrix with row and column labels.
func (s *Sink) renderMatrix(m *matrix.Dense) string {
	var (
		b     strings.Builder
		n     = m.Rows()
		width = matrixPrecision + 4
		i, j  int
	)

	b.WriteString(strings.Repeat(" ", 4))
	for j = 0; j < n; j++ {
		fmt.Fprintf(&b, "%*s", width, s.Label(j))
	}
	b.WriteByte('\n')

	for i = 0; i < n; i++ {
		fmt.Fprintf(&b, "%-4s", s.Label(i))
		for j = 0; j < n; j++ {
			v, _ := m.At(i, j) // indices are in range by construction
			fmt.Fprintf(&b, "%*.*f", width, matrixPrecision, v)
		}
		b.WriteByte('\n')
	}

	return b.String()
}

// printf writes through the latched-error gate.
func (s *Sink) printf(format string, args ...any) {
	if s.err != nil {
		return
	}
	_, s.err = fmt.Fprintf(s.w, format, args...)
}

// trim renders a float compactly, without trailing zeros.
func trim(v float64) string {
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.*f", matrixPrecision, v), "0"), ".")
}

// cityLetter converts an index into spreadsheet-style letters: A..Z, then
// AA, AB, ...
func cityLetter(i int) string {
	if i < 0 {
		return "?"
	}

	var b []byte
	for {
		b = append([]byte{byte('A' + i%26)}, b...)
		i = i/26 - 1
		if i < 0 {
			break
		}
	}

	return string(b)
}
