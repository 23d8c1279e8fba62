// SPDX-License-Identifier: MIT

package effect

import "errors"

// Every message is prefixed with "effect: ..." so log lines stay greppable.
// Callers match with errors.Is; wrap with fmt.Errorf("ctx: %w", ErrX) when
// context is needed.
var (
	// ErrNoSolution is the umbrella outcome "no combination reaches the target".
	// Solver packages wrap it (toggle.ErrUnsatisfiable, additive.ErrInfeasible),
	// so errors.Is(err, ErrNoSolution) covers both modes.
	ErrNoSolution = errors.New("effect: no combination reaches the target")

	// ErrIndexOutOfRange is returned when a button references a negative index
	// or an index outside the pattern width / counter count.
	ErrIndexOutOfRange = errors.New("effect: index out of range")

	// ErrWidthTooLarge is returned when a toggle pattern exceeds MaxWidth bits.
	ErrWidthTooLarge = errors.New("effect: pattern width exceeds 64 bits")

	// ErrBadPattern is returned by ParsePattern for characters other than '.' and '#'.
	ErrBadPattern = errors.New("effect: invalid pattern character")

	// ErrNegativeTarget is returned when an additive target is below zero.
	ErrNegativeTarget = errors.New("effect: negative target")

	// ErrUnknownSemantics is returned for a Semantics value outside Toggle/Additive.
	ErrUnknownSemantics = errors.New("effect: unknown semantics")

	// ErrPressLength signals a presses vector whose length differs from the button count.
	ErrPressLength = errors.New("effect: presses length does not match buttons")

	// ErrNegativePress signals a negative multiplicity (or >1 under toggle semantics).
	ErrNegativePress = errors.New("effect: invalid press multiplicity")

	// ErrTargetMismatch signals that applying the presses does not reproduce the target.
	ErrTargetMismatch = errors.New("effect: presses do not reproduce the target")

	// ErrCostMismatch signals that Solution.Cost differs from the sum of presses.
	ErrCostMismatch = errors.New("effect: cost does not match presses")
)
