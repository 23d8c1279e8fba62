// SPDX-License-Identifier: MIT

// Package matrix provides a small dense float64 matrix and the Gaussian
// elimination kernel used to characterise the real solutions of A·x = b.
//
// The package provides:
//
//   - Dense: row-major storage behind the Matrix interface (At/Set/Clone).
//   - Reduce: column-by-column elimination with partial pivoting. Columns
//     without a pivot whose magnitude exceeds the tolerance become free
//     variables; the result (Echelon) reports rank, pivot and free columns.
//   - Echelon.BackSubstitute: values of the basic variables for any
//     assignment of the free ones, reused for the particular solution
//     (all free = 0) and for every null-space basis vector (one free = 1).
//
// Numeric policy is a single tolerance (WithEpsilon, DefaultEpsilon). It
// decides both "structurally zero pivot" and "residual row is consistent",
// and callers reuse Epsilon() for their own integrality checks so one number
// governs the whole pipeline.
//
// For exact results over the rationals use package linsys instead; this
// package trades exactness for speed on puzzle-sized systems.
package matrix
