// SPDX-License-Identifier: MIT

// Package matrix provides the dense float64 matrix primitives used by the
// ant-colony solver: the Matrix interface and its row-major Dense
// implementation, plus the package's sentinel error set.
//
// The solver stores three square matrices of the same order N — distances,
// visibility and pheromone — and reads/writes them on hot paths; Dense keeps
// elements in a flat slice for cache friendliness and O(1) indexed access.
//
// Conventions:
//   - All errors are package-level sentinels matched via errors.Is.
//   - Public indexers (At/Set) return ErrOutOfRange instead of panicking.
//   - Clone returns a deep, independent copy.
package matrix
