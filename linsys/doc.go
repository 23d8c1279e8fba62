// SPDX-License-Identifier: MIT

// Package linsys reduces integer linear systems A·x = b exactly over the
// rationals (math/big.Rat) and exposes their solution set as a particular
// solution plus a null-space basis.
//
// The reduction follows the same column-by-column rule as matrix.Reduce
// (partial pivoting on the largest magnitude, columns without a pivot become
// free variables) but continues to reduced row echelon form, so no tolerance
// is ever needed: a zero pivot is exactly zero and a residual is exactly
// non-zero.
//
// Echelon.Affine converts every variable into an integer affine form
//
//	Den_j · x_j = Const_j + Σ_k Coef_j[k] · t_k
//
// over the free-variable values t, which lets integer searches test
// integrality and sign with int64 arithmetic only.
package linsys
