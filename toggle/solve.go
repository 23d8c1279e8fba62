// SPDX-License-Identifier: MIT

package toggle

import (
	"fmt"
	"math/bits"

	"github.com/katalvlaran/presswork/effect"
)

// Solve returns the minimum-size subset of buttons whose XOR equals target.
//
// The instance is validated first (button indices must lie inside the
// pattern width). The witness in Solution.Presses is 0/1 per button and
// Solution.Cost is the number of buttons used.
//
// Errors:
//   - ErrUnsatisfiable when no subset reaches target.
//   - ErrTooManyButtons when len(buttons) exceeds the strategy limit.
//   - effect validation sentinels for malformed instances.
func Solve(target effect.Pattern, buttons []effect.Button, opts ...Option) (effect.Solution, error) {
	o := gatherOptions(opts)

	in := effect.Instance{Semantics: effect.Toggle, Pattern: target, Buttons: buttons}
	if err := in.Validate(); err != nil {
		return effect.Solution{}, fmt.Errorf("toggle: %w", err)
	}

	masks := effect.Masks(buttons)
	var (
		sel uint64
		ok  bool
	)
	switch o.Strategy {
	case Exhaustive:
		limit := min(o.MaxButtons, ExhaustiveMaxButtons)
		if len(masks) > limit {
			return effect.Solution{}, fmt.Errorf("%d buttons, limit %d: %w", len(masks), limit, ErrTooManyButtons)
		}
		sel, ok = exhaustive(target.Bits, masks)
	case MeetInTheMiddle:
		if len(masks) > o.MaxButtons {
			return effect.Solution{}, fmt.Errorf("%d buttons, limit %d: %w", len(masks), o.MaxButtons, ErrTooManyButtons)
		}
		sel, ok = meetInTheMiddle(target.Bits, masks)
	default:
		return effect.Solution{}, ErrUnsupportedStrategy
	}
	if !ok {
		return effect.Solution{}, ErrUnsatisfiable
	}

	return selection(sel, len(masks)), nil
}

// Cost is a convenience wrapper returning only the minimum button count.
func Cost(target effect.Pattern, buttons []effect.Button, opts ...Option) (int, error) {
	s, err := Solve(target, buttons, opts...)
	if err != nil {
		return 0, err
	}

	return s.Cost, nil
}

// selection expands a subset selector into a press vector.
func selection(sel uint64, k int) effect.Solution {
	presses := make([]int, k)
	for j := 0; j < k; j++ {
		if sel&(1<<uint(j)) != 0 {
			presses[j] = 1
		}
	}

	return effect.Solution{Presses: presses, Cost: bits.OnesCount64(sel)}
}

// exhaustive walks every selector 0..2^k-1. The running XOR is updated in
// Gray-code order so each step costs O(1).
func exhaustive(target uint64, masks []uint64) (uint64, bool) {
	k := len(masks)
	var (
		best     uint64
		bestCost = k + 1
		acc      uint64
		gray     uint64
	)
	total := uint64(1) << uint(k)
	for i := uint64(0); i < total; i++ {
		if i > 0 {
			// bit flipped between gray(i-1) and gray(i)
			j := bits.TrailingZeros64(i)
			gray ^= 1 << uint(j)
			acc ^= masks[j]
		}
		if acc != target {
			continue
		}
		if c := bits.OnesCount64(gray); c < bestCost {
			best, bestCost = gray, c
		}
	}

	return best, bestCost <= k
}

// meetInTheMiddle splits masks into lo=[0,h) and hi=[h,k).
func meetInTheMiddle(target uint64, masks []uint64) (uint64, bool) {
	k := len(masks)
	h := k / 2
	left := tabulate(masks[:h])

	var (
		best     uint64
		bestCost = k + 1
		acc      uint64
		gray     uint64
	)
	right := masks[h:]
	total := uint64(1) << uint(len(right))
	for i := uint64(0); i < total; i++ {
		if i > 0 {
			j := bits.TrailingZeros64(i)
			gray ^= 1 << uint(j)
			acc ^= right[j]
		}
		l, ok := left[target^acc]
		if !ok {
			continue
		}
		if c := bits.OnesCount64(l) + bits.OnesCount64(gray); c < bestCost {
			best, bestCost = l|gray<<uint(h), c
		}
	}

	return best, bestCost <= k
}

// tabulate maps every reachable XOR of masks to its cheapest selector.
func tabulate(masks []uint64) map[uint64]uint64 {
	total := uint64(1) << uint(len(masks))
	table := make(map[uint64]uint64, total)
	var acc, gray uint64
	for i := uint64(0); i < total; i++ {
		if i > 0 {
			j := bits.TrailingZeros64(i)
			gray ^= 1 << uint(j)
			acc ^= masks[j]
		}
		prev, seen := table[acc]
		if !seen || bits.OnesCount64(gray) < bits.OnesCount64(prev) {
			table[acc] = gray
		}
	}

	return table
}
