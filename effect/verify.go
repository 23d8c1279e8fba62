// SPDX-License-Identifier: MIT

package effect

import "fmt"

// VerifyToggle re-applies a toggle solution and checks it bit-for-bit.
func VerifyToggle(p Pattern, buttons []Button, s Solution) error {
	if len(s.Presses) != len(buttons) {
		return ErrPressLength
	}
	var acc uint64
	cost := 0
	for j, x := range s.Presses {
		if x < 0 || x > 1 {
			return fmt.Errorf("button %d pressed %d times: %w", j, x, ErrNegativePress)
		}
		if x == 1 {
			acc ^= buttons[j].Mask()
			cost++
		}
	}
	if acc != p.Bits {
		return fmt.Errorf("got %b, want %b: %w", acc, p.Bits, ErrTargetMismatch)
	}
	if cost != s.Cost {
		return fmt.Errorf("presses sum to %d, cost %d: %w", cost, s.Cost, ErrCostMismatch)
	}

	return nil
}

// VerifyAdditive re-applies an additive solution and checks it count-for-count.
func VerifyAdditive(targets []int, buttons []Button, s Solution) error {
	if len(s.Presses) != len(buttons) {
		return ErrPressLength
	}
	got := make([]int, len(targets))
	cost := 0
	for j, x := range s.Presses {
		if x < 0 {
			return fmt.Errorf("button %d pressed %d times: %w", j, x, ErrNegativePress)
		}
		cost += x
		for _, i := range buttons[j].Indices {
			if i >= len(targets) {
				return fmt.Errorf("button %d: index %d: %w", j, i, ErrIndexOutOfRange)
			}
			got[i] += x
		}
	}
	for i := range targets {
		if got[i] != targets[i] {
			return fmt.Errorf("counter %d: got %d, want %d: %w", i, got[i], targets[i], ErrTargetMismatch)
		}
	}
	if cost != s.Cost {
		return fmt.Errorf("presses sum to %d, cost %d: %w", cost, s.Cost, ErrCostMismatch)
	}

	return nil
}
