// Package acs - validation utilities shared by the engine entry points.
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input - only sentinel errors from
//     types.go (or the matrix package's sentinels for shape problems).
//   - Validation happens once, when the Colony is built; hot paths trust it.
package acs

import "math"

// validateOptions checks the internal consistency of Options without
// referencing matrices. Value domains:
//
//	alpha, beta        >= 0, finite
//	rho, q0, phi       in [0,1]
//	q, tau0            >= 0, finite
//
// Complexity: O(1).
func validateOptions(o Options) error {
	if badExponent(o.Alpha) || badExponent(o.Beta) {
		return ErrBadCoefficient
	}
	if badUnit(o.Rho) || badUnit(o.Q0) || badUnit(o.Phi) {
		return ErrBadCoefficient
	}
	if badExponent(o.Q) || badExponent(o.InitialPheromone) {
		return ErrBadCoefficient
	}

	return nil
}

// badExponent reports whether x falls outside [0, +finite).
func badExponent(x float64) bool {
	return x < 0 || math.IsNaN(x) || math.IsInf(x, 0)
}

// badUnit reports whether x falls outside the closed unit interval.
func badUnit(x float64) bool {
	return x < 0 || x > 1 || math.IsNaN(x)
}

// validateStart checks the configured initial city against the matrix order.
//
// Complexity: O(1).
func validateStart(n, start int) error {
	if start < 0 || start >= n {
		return ErrStartOutOfRange
	}

	return nil
}
