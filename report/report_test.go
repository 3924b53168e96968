package report_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/acs"
	"github.com/katalvlaran/acs/matrix"
	"github.com/katalvlaran/acs/report"
)

func demoMatrix(t *testing.T) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows([][]float64{
		{0, 2, 9, 10},
		{2, 0, 6, 4},
		{9, 6, 0, 8},
		{10, 4, 8, 0},
	})
	require.NoError(t, err)

	return m
}

func TestSink_FullRunTrace(t *testing.T) {
	var buf bytes.Buffer
	sink := report.New(&buf, nil)

	require.NoError(t, sink.WriteParams(report.Params{
		Ants:             1,
		Generations:      2,
		InitialCity:      0,
		Alpha:            1,
		Beta:             1,
		Rho:              0.5,
		Q:                1,
		Q0:               1,
		Phi:              0.5,
		InitialPheromone: 0.1,
	}))

	colony, err := acs.New(1, 0, demoMatrix(t),
		acs.WithQ0(1), acs.WithHooks(sink.Hooks()))
	require.NoError(t, err)

	for gen := 0; gen < 2; gen++ {
		_, rerr := colony.RunGeneration()
		require.NoError(t, rerr)
	}

	tour, cost := colony.Best()
	require.NoError(t, sink.WriteFinal(tour, cost))
	require.NoError(t, sink.Err())

	out := buf.String()

	// Parameter table.
	require.Contains(t, out, "Parameters")
	require.Contains(t, out, "Number of ants")
	require.Contains(t, out, "Initial city")

	// Generation sections with matrix snapshots.
	require.Contains(t, out, "Generation 1")
	require.Contains(t, out, "Generation 2")
	require.Contains(t, out, "Visibility matrix:")
	require.Contains(t, out, "Pheromone matrix:")

	// Greedy construction trace: 0 -> 1 -> 3 -> 2 rendered as letters.
	require.Contains(t, out, "Ant 1")
	require.Contains(t, out, "Initial city: A")
	require.Contains(t, out, "Step by intensification")
	require.Contains(t, out, "Next city: B")
	require.Contains(t, out, "Pheromone update on arc A -> B")
	require.Contains(t, out, "Ant 1 path: A -> B -> D -> C (cost: 14)")

	// Per-generation and global summaries.
	require.Contains(t, out, "Best path this generation: A -> B -> D -> C with cost 14")
	require.Contains(t, out, "New global best in generation 1")
	require.Contains(t, out, "(best edge)")
	require.Contains(t, out, "Global best path: A -> B -> D -> C with cost 14")

	// Generation 2 finds no strict improvement.
	require.NotContains(t, out, "New global best in generation 2")
}

func TestSink_DiversificationTrace(t *testing.T) {
	var buf bytes.Buffer
	sink := report.New(&buf, nil)

	colony, err := acs.New(1, 0, demoMatrix(t),
		acs.WithQ0(0), acs.WithSeed(42), acs.WithHooks(sink.Hooks()))
	require.NoError(t, err)
	_, err = colony.RunGeneration()
	require.NoError(t, err)

	out := buf.String()
	require.Contains(t, out, "Step by diversification")
	require.Contains(t, out, "Sum:")
	require.Contains(t, out, "prob =")
	require.Contains(t, out, "Random number:")
}

func TestSink_CustomLabels(t *testing.T) {
	var buf bytes.Buffer
	sink := report.New(&buf, []string{"Lima", "Quito", "Bogota", "Caracas"})

	colony, err := acs.New(1, 0, demoMatrix(t),
		acs.WithQ0(1), acs.WithHooks(sink.Hooks()))
	require.NoError(t, err)
	_, err = colony.RunGeneration()
	require.NoError(t, err)

	out := buf.String()
	require.Contains(t, out, "Ant 1 path: Lima -> Quito -> Caracas -> Bogota")
	require.NotContains(t, out, "Next city: B")
}

func TestSink_LetterLabels(t *testing.T) {
	sink := report.New(&bytes.Buffer{}, nil)

	require.Equal(t, "A", sink.Label(0))
	require.Equal(t, "Z", sink.Label(25))
	require.Equal(t, "AA", sink.Label(26))
	require.Equal(t, "AB", sink.Label(27))
	require.Equal(t, "BA", sink.Label(52))
}

// failWriter errors after the first n bytes to exercise error latching.
type failWriter struct {
	budget int
}

var errDiskFull = errors.New("disk full")

func (f *failWriter) Write(p []byte) (int, error) {
	if f.budget <= 0 {
		return 0, errDiskFull
	}
	f.budget -= len(p)

	return len(p), nil
}

func TestSink_LatchesFirstWriteError(t *testing.T) {
	sink := report.New(&failWriter{budget: 64}, nil)

	colony, err := acs.New(1, 0, demoMatrix(t),
		acs.WithQ0(1), acs.WithHooks(sink.Hooks()))
	require.NoError(t, err)

	// The run itself must not fail because the report writer does.
	_, err = colony.RunGeneration()
	require.NoError(t, err)

	require.ErrorIs(t, sink.Err(), errDiskFull)
	require.ErrorIs(t, sink.WriteFinal([]int{0, 1}, 2), errDiskFull)
}

func TestSink_MatrixSnapshotShape(t *testing.T) {
	var buf bytes.Buffer
	sink := report.New(&buf, nil)

	colony, err := acs.New(1, 0, demoMatrix(t),
		acs.WithQ0(1), acs.WithHooks(sink.Hooks()))
	require.NoError(t, err)
	_, err = colony.RunGeneration()
	require.NoError(t, err)

	// The visibility snapshot row for city A carries 1/2 = 0.5.
	var visBlock string
	out := buf.String()
	start := strings.Index(out, "Visibility matrix:")
	require.GreaterOrEqual(t, start, 0)
	visBlock = out[start:]
	require.Contains(t, visBlock, "0.500000")
	require.Contains(t, visBlock, "0.111111")
}
