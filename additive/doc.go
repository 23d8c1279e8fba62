// SPDX-License-Identifier: MIT

// Package additive finds the fewest total presses that drive every counter
// to its exact target when each press adds 1 to the counters a button affects.
//
// With A the counters×buttons 0/1 incidence matrix and b the targets, Solve
// looks for the non-negative integer x minimizing Σx subject to A·x = b.
//
// Pipeline:
//
//  1. Split: buttons and counters fall into independent blocks (connected
//     components of the button/counter incidence). Blocks are solved alone
//     and their costs add up.
//  2. Reduce: Gaussian elimination of each block, exactly over the
//     rationals (package linsys, default) or in float64 with one tolerance
//     (package matrix, WithArithmetic(Float)).
//  3. Parametrize: every real solution is particular + Σ t_k·basis_k, one t_k
//     per free column. Because basis_k is 1 at its own free column and 0 at
//     the other free columns, t_k is exactly the press count of that button.
//  4. Search: depth-first branch-and-bound over integer t. With the default
//     ButtonCap bound t_k ranges over [0, min target of the counters that
//     button touches], which covers every feasible solution. Branches are cut
//     when some basic variable can no longer reach ≥ 0 or when the affine cost
//     lower bound cannot beat the incumbent.
//
// Exhaustive is an independent reference solver (direct enumeration of
// press counts) used to cross-check Solve in tests.
//
// No feasible x yields ErrInfeasible, which wraps effect.ErrNoSolution.
package additive
