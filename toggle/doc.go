// SPDX-License-Identifier: MIT

// Package toggle finds the fewest buttons whose XOR reaches a light pattern.
//
// Under toggle semantics pressing a button twice cancels out, so a solution
// is a subset of the catalog. Two exact strategies are provided:
//
//   - Exhaustive: enumerate all 2^k subsets, keep the minimum popcount.
//     Complexity O(k·2^k). This is the reference oracle.
//   - MeetInTheMiddle: tabulate every XOR of the left half with its cheapest
//     subset, then scan the right half looking up target^right.
//     Complexity O(k·2^(k/2)) time and O(2^(k/2)) memory. Default.
//
// Both return the same minimum cost; when several subsets tie, either may be
// returned as the witness. A pattern no subset reaches yields ErrUnsatisfiable,
// which wraps effect.ErrNoSolution.
package toggle
