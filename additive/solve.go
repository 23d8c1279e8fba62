// SPDX-License-Identifier: MIT

package additive

import (
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/presswork/effect"
)

// Solve returns the minimum total presses reproducing targets exactly.
//
// Solution.Presses is aligned with buttons; Solution.Cost is their sum.
//
// Errors:
//   - ErrInfeasible when no non-negative integer combination exists.
//   - ErrTooManyFree when a block exceeds Options.MaxFree free variables.
//   - effect validation sentinels for malformed instances.
func Solve(targets []int, buttons []effect.Button, opts ...Option) (effect.Solution, error) {
	o := gatherOptions(opts)
	switch o.Bound {
	case ButtonCap, TargetSpan:
	default:
		return effect.Solution{}, ErrUnsupportedBound
	}

	in := effect.Instance{Semantics: effect.Additive, Targets: targets, Buttons: buttons}
	if err := in.Validate(); err != nil {
		return effect.Solution{}, fmt.Errorf("additive: %w", err)
	}

	span := int64(0)
	for _, v := range targets {
		span = max(span, int64(v))
	}
	span++

	blocks := whole(len(targets), len(buttons))
	if o.Split {
		blocks = split(len(targets), buttons)
	}

	sol := effect.Solution{Presses: make([]int, len(buttons))}
	for bi, b := range blocks {
		x, err := solveBlock(b, targets, buttons, span, o)
		if err != nil {
			return effect.Solution{}, fmt.Errorf("block %d (counters %v): %w", bi, b.counters, err)
		}
		for c, j := range b.buttons {
			sol.Presses[j] = int(x[c])
			sol.Cost += int(x[c])
		}
	}

	return sol, nil
}

// Cost is a convenience wrapper returning only the minimum total presses.
func Cost(targets []int, buttons []effect.Button, opts ...Option) (int, error) {
	s, err := Solve(targets, buttons, opts...)
	if err != nil {
		return 0, err
	}

	return s.Cost, nil
}

// solveBlock returns the press vector of one block, aligned with b.buttons.
func solveBlock(b block, targets []int, buttons []effect.Button, span int64, o Options) ([]int64, error) {
	if len(b.buttons) == 0 {
		// Counters nobody can move must already sit at zero.
		for _, i := range b.counters {
			if targets[i] != 0 {
				return nil, ErrInfeasible
			}
		}
		return nil, nil
	}

	t, a := b.local(targets, buttons)
	l, err := newLattice(a, t, len(b.buttons), o)
	if errors.Is(err, errNoRealSolution) {
		return nil, ErrInfeasible
	}
	if err != nil {
		return nil, err
	}
	if len(l.free) > o.MaxFree {
		return nil, fmt.Errorf("%d free, limit %d: %w", len(l.free), o.MaxFree, ErrTooManyFree)
	}

	lo := make([]int64, len(l.free))
	hi := make([]int64, len(l.free))
	for k, col := range l.free {
		switch o.Bound {
		case ButtonCap:
			hi[k] = buttonCap(a, t, col)
		case TargetSpan:
			lo[k], hi[k] = -span, span
		}
	}

	x, _, ok := newSearch(l, lo, hi).run()
	if !ok {
		return nil, ErrInfeasible
	}

	return slices.Clone(x), nil
}

// buttonCap is the largest press count of column col that keeps every
// counter it affects within its target. A button touching no counter is
// capped at 0: pressing it only adds cost.
func buttonCap(a [][]int, t []int, col int) int64 {
	limit := int64(-1)
	for i := range a {
		if a[i][col] == 0 {
			continue
		}
		if limit < 0 || int64(t[i]) < limit {
			limit = int64(t[i])
		}
	}

	return max(limit, 0)
}
