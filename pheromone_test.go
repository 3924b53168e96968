// Package acs_test exercises the pheromone field: initialization and the
// exact arithmetic of the local and global update rules.
package acs_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/acs"
	"github.com/katalvlaran/acs/matrix"
)

func TestNewField_Initialization(t *testing.T) {
	const (
		n    = 4
		tau0 = 0.3
	)
	f, err := acs.NewField(n, tau0, 0.5, 0.5, 1)
	if err != nil {
		t.Fatalf("NewField error: %v", err)
	}
	if f.Order() != n {
		t.Fatalf("Order = %d, want %d", f.Order(), n)
	}

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v, aerr := f.At(i, j)
			if aerr != nil {
				t.Fatalf("At(%d,%d) error: %v", i, j, aerr)
			}
			want := tau0
			if i == j {
				want = 0
			}
			if v != want {
				t.Fatalf("tau[%d][%d] = %v, want %v", i, j, v, want)
			}
		}
	}
}

func TestNewField_Rejections(t *testing.T) {
	if _, err := acs.NewField(1, 0.1, 0.5, 0.5, 1); !errors.Is(err, matrix.ErrInvalidDimensions) {
		t.Fatalf("n=1: err = %v, want matrix.ErrInvalidDimensions", err)
	}

	for name, args := range map[string][4]float64{
		"negative tau0": {-0.1, 0.5, 0.5, 1},
		"phi > 1":       {0.1, 1.5, 0.5, 1},
		"phi < 0":       {0.1, -0.5, 0.5, 1},
		"rho > 1":       {0.1, 0.5, 2, 1},
		"negative q":    {0.1, 0.5, 0.5, -1},
		"NaN tau0":      {math.NaN(), 0.5, 0.5, 1},
	} {
		_, err := acs.NewField(3, args[0], args[1], args[2], args[3])
		if !errors.Is(err, acs.ErrBadCoefficient) {
			t.Fatalf("%s: err = %v, want ErrBadCoefficient", name, err)
		}
	}
}

// globalThenLocal builds the one perturbed-field scenario shared by the
// update tests: n=3, tau0=0.5, phi=0.25, rho=0.2, q=8, best tour [0,1,2]
// with cost 4, so deposit = rho*q/cost = 0.4 and best-tour edges move from
// 0.5 to (1-0.2)*0.5 + 0.4 = 0.8.
func globalThenLocal(t *testing.T) *acs.Field {
	t.Helper()
	f, err := acs.NewField(3, 0.5, 0.25, 0.2, 8)
	if err != nil {
		t.Fatalf("NewField error: %v", err)
	}
	if err = f.GlobalUpdate([]int{0, 1, 2}, 4, nil); err != nil {
		t.Fatalf("GlobalUpdate error: %v", err)
	}

	return f
}

func TestGlobalUpdate_BestEdgesOnly(t *testing.T) {
	f := globalThenLocal(t)

	onBest := map[[2]int]bool{{0, 1}: true, {1, 2}: true}
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			v, err := f.At(r, c)
			if err != nil {
				t.Fatalf("At(%d,%d) error: %v", r, c, err)
			}
			switch {
			case r == c:
				if v != 0 {
					t.Fatalf("diagonal tau[%d][%d] = %v, want 0", r, c, v)
				}
			case onBest[[2]int{r, c}]:
				if !eq(v, 0.8) {
					t.Fatalf("best edge tau[%d][%d] = %v, want 0.8", r, c, v)
				}
			default:
				// Off-tour edges keep their value bit-for-bit: no evaporation.
				if v != 0.5 {
					t.Fatalf("off-tour tau[%d][%d] = %v, want exactly 0.5", r, c, v)
				}
			}
		}
	}
}

func TestGlobalUpdate_EmitsEveryOrderedPair(t *testing.T) {
	f := globalThenLocal(t)

	var events []acs.PheromoneUpdate
	err := f.GlobalUpdate([]int{0, 1, 2}, 4, func(up acs.PheromoneUpdate) {
		events = append(events, up)
	})
	if err != nil {
		t.Fatalf("GlobalUpdate error: %v", err)
	}

	// n^2 - n ordered off-diagonal pairs, row-major.
	if len(events) != 6 {
		t.Fatalf("got %d events, want 6", len(events))
	}
	for _, ev := range events {
		if ev.From == ev.To {
			t.Fatalf("diagonal event emitted: %+v", ev)
		}
		if ev.OnBest {
			want := (1-0.2)*ev.Before + 0.4
			if !eq(ev.After, want) {
				t.Fatalf("best edge %d->%d: after = %v, want %v", ev.From, ev.To, ev.After, want)
			}
		} else if ev.After != ev.Before {
			t.Fatalf("untouched edge %d->%d changed: %v -> %v", ev.From, ev.To, ev.Before, ev.After)
		}
	}
}

func TestLocalUpdate_Formula(t *testing.T) {
	f := globalThenLocal(t)

	// Edge (0,1) sits at 0.8 after the global update; one local deposit
	// decays it toward tau0: (1-0.25)*0.8 + 0.25*0.5 = 0.725.
	up, err := f.LocalUpdate(0, 1)
	if err != nil {
		t.Fatalf("LocalUpdate error: %v", err)
	}
	if !eq(up.Before, 0.8) || !eq(up.After, 0.725) {
		t.Fatalf("update = %+v, want before 0.8 after 0.725", up)
	}

	v, err := f.At(0, 1)
	if err != nil {
		t.Fatalf("At error: %v", err)
	}
	if !eq(v, 0.725) {
		t.Fatalf("tau[0][1] = %v, want 0.725", v)
	}
}

func TestLocalUpdate_Tau0IsFixedPoint(t *testing.T) {
	f, err := acs.NewField(3, 0.4, 0.7, 0.5, 1)
	if err != nil {
		t.Fatalf("NewField error: %v", err)
	}

	// At t == tau0 the rule is a fixed point for any phi.
	up, err := f.LocalUpdate(2, 0)
	if err != nil {
		t.Fatalf("LocalUpdate error: %v", err)
	}
	if !eq(up.Before, 0.4) || !eq(up.After, 0.4) {
		t.Fatalf("update = %+v, want 0.4 -> 0.4", up)
	}
}

func TestLocalUpdate_Rejections(t *testing.T) {
	f, err := acs.NewField(3, 0.1, 0.5, 0.5, 1)
	if err != nil {
		t.Fatalf("NewField error: %v", err)
	}

	if _, err = f.LocalUpdate(0, 3); !errors.Is(err, matrix.ErrOutOfRange) {
		t.Fatalf("out of range: err = %v, want matrix.ErrOutOfRange", err)
	}
	if _, err = f.LocalUpdate(-1, 0); !errors.Is(err, matrix.ErrOutOfRange) {
		t.Fatalf("negative: err = %v, want matrix.ErrOutOfRange", err)
	}
	if _, err = f.LocalUpdate(1, 1); !errors.Is(err, acs.ErrInvalidTour) {
		t.Fatalf("diagonal: err = %v, want ErrInvalidTour", err)
	}
}

func TestGlobalUpdate_Rejections(t *testing.T) {
	f, err := acs.NewField(3, 0.1, 0.5, 0.5, 1)
	if err != nil {
		t.Fatalf("NewField error: %v", err)
	}

	if err = f.GlobalUpdate(nil, 1, nil); !errors.Is(err, acs.ErrEmptyBestTour) {
		t.Fatalf("nil best: err = %v, want ErrEmptyBestTour", err)
	}
	if err = f.GlobalUpdate([]int{}, 1, nil); !errors.Is(err, acs.ErrEmptyBestTour) {
		t.Fatalf("empty best: err = %v, want ErrEmptyBestTour", err)
	}
	if err = f.GlobalUpdate([]int{2}, 1, nil); !errors.Is(err, acs.ErrInvalidTour) {
		t.Fatalf("single-city best: err = %v, want ErrInvalidTour", err)
	}
	if err = f.GlobalUpdate([]int{0, 5}, 1, nil); !errors.Is(err, acs.ErrInvalidTour) {
		t.Fatalf("out-of-range best: err = %v, want ErrInvalidTour", err)
	}
	if err = f.GlobalUpdate([]int{0, 1, 2}, 0, nil); !errors.Is(err, acs.ErrInvalidCost) {
		t.Fatalf("zero cost: err = %v, want ErrInvalidCost", err)
	}
	if err = f.GlobalUpdate([]int{0, 1, 2}, math.NaN(), nil); !errors.Is(err, acs.ErrInvalidCost) {
		t.Fatalf("NaN cost: err = %v, want ErrInvalidCost", err)
	}
}

func TestField_MatrixIsASnapshot(t *testing.T) {
	f, err := acs.NewField(3, 0.5, 0.25, 0.2, 8)
	if err != nil {
		t.Fatalf("NewField error: %v", err)
	}

	snap := f.Matrix()
	if err = f.GlobalUpdate([]int{0, 1, 2}, 4, nil); err != nil {
		t.Fatalf("GlobalUpdate error: %v", err)
	}

	v, err := snap.At(0, 1)
	if err != nil {
		t.Fatalf("At error: %v", err)
	}
	if v != 0.5 {
		t.Fatalf("snapshot observed a later update: tau[0][1] = %v, want 0.5", v)
	}
}
