// SPDX-License-Identifier: MIT

// Package factory solves a whole input of machines under both semantics and
// sums the results: Part1 is the total of toggle minima, Part2 the total of
// additive minima.
//
// Machines are independent, so each one is handed to a worker of an
// internal pool. Results are stored by machine index and the totals are
// reduced only after every worker has finished, which keeps the Report
// identical for any worker count.
//
// By default an unsolvable machine fails the run with ErrUnsolved.
// WithSkipUnsolved keeps going, leaves such machines out of the totals and
// lists them in Report.Unsolved.
package factory
