// SPDX-License-Identifier: MIT

package additive

import (
	"fmt"

	"github.com/katalvlaran/presswork/effect"
)

// Exhaustive is the reference solver: it enumerates press counts button by
// button, each within [0, min target of its counters], tracking remaining
// targets. It shares no code with the elimination pipeline.
//
// Pruning: a remaining target below zero, a counter whose last affecting
// button has been fixed while it is still non-zero, and partial cost ≥ best.
// Worst case O(Π (cap_j+1)); keep it to small instances.
func Exhaustive(targets []int, buttons []effect.Button) (effect.Solution, error) {
	in := effect.Instance{Semantics: effect.Additive, Targets: targets, Buttons: buttons}
	if err := in.Validate(); err != nil {
		return effect.Solution{}, fmt.Errorf("additive: %w", err)
	}

	last := make([]int, len(targets))
	for i := range last {
		last[i] = -1
	}
	for j, b := range buttons {
		for _, i := range b.Indices {
			last[i] = j
		}
	}
	for i, t := range targets {
		if last[i] < 0 && t != 0 {
			return effect.Solution{}, ErrInfeasible
		}
	}

	closes := make([][]int, len(buttons)) // counters whose last button is j
	for i, j := range last {
		if j >= 0 {
			closes[j] = append(closes[j], i)
		}
	}

	var (
		remain  = append([]int(nil), targets...)
		presses = make([]int, len(buttons))
		best    = -1
		bestX   []int
	)
	var dfs func(j, cost int)
	dfs = func(j, cost int) {
		if best >= 0 && cost >= best {
			return
		}
		if j == len(buttons) {
			best = cost
			bestX = append(bestX[:0], presses...)
			return
		}
		idx := buttons[j].Indices
		limit := -1
		for _, i := range idx {
			if limit < 0 || remain[i] < limit {
				limit = remain[i]
			}
		}
		if limit < 0 {
			limit = 0
		}
		for v := limit; v >= 0; v-- {
			for _, i := range idx {
				remain[i] -= v
			}
			ok := true
			for _, i := range closes[j] {
				if remain[i] != 0 {
					ok = false
					break
				}
			}
			if ok {
				presses[j] = v
				dfs(j+1, cost+v)
			}
			for _, i := range idx {
				remain[i] += v
			}
		}
		presses[j] = 0
	}
	dfs(0, 0)

	if best < 0 {
		return effect.Solution{}, ErrInfeasible
	}

	return effect.Solution{Presses: bestX, Cost: best}, nil
}
