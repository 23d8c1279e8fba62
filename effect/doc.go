// SPDX-License-Identifier: MIT

// Package effect holds the shared data model of the button-combination
// solvers: buttons, toggle patterns, additive targets, puzzle instances
// and solutions.
//
// A Button affects a set of indices. Under Toggle semantics pressing it
// flips those bits of a fixed-width Pattern and a button is used at most
// once. Under Additive semantics pressing it adds 1 to each affected
// counter and a button may be pressed any non-negative number of times.
//
// The package carries no search logic. It validates shapes, converts
// buttons into masks or incidence matrices, and re-checks candidate
// solutions (VerifyToggle, VerifyAdditive) so every solver and every test
// shares one definition of "reproduces the target".
//
// Values are immutable once built; instances may be shared freely between
// goroutines.
package effect
