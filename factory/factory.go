// SPDX-License-Identifier: MIT

package factory

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/presswork/additive"
	"github.com/katalvlaran/presswork/effect"
	"github.com/katalvlaran/presswork/internal/workers"
	"github.com/katalvlaran/presswork/notation"
	"github.com/katalvlaran/presswork/toggle"
)

// ErrUnsolved is returned in strict mode when a machine has no solution
// under one of the semantics.
var ErrUnsolved = errors.New("factory: machine unsolved")

// Outcome is the result of one machine under one semantics.
type Outcome struct {
	Cost   int
	Solved bool
	Err    error
}

// MachineResult pairs the two outcomes of a machine.
type MachineResult struct {
	Line     int
	Toggle   Outcome
	Additive Outcome
}

// Unsolved names a machine left out of the totals.
type Unsolved struct {
	Line      int
	Semantics effect.Semantics
	Err       error
}

// Report holds the totals and the per-machine breakdown, in input order.
type Report struct {
	Part1    int
	Part2    int
	Machines []MachineResult
	Unsolved []Unsolved
}

// Run solves every machine and sums the minima.
//
// Errors:
//   - ctx.Err() when ctx ends before every machine was handed out.
//   - ErrUnsolved (strict mode) wrapping the solver error of the first
//     unsolved machine in input order.
//   - Solver errors other than "no solution" (limits, malformed input) are
//     always fatal, skip mode included.
func Run(ctx context.Context, machines []notation.Machine, opts ...Option) (Report, error) {
	o := gatherOptions(opts)
	log := o.Logger

	results := make([]MachineResult, len(machines))
	pool := workers.New(o.Workers)
	log.WithFields(logrus.Fields{"machines": len(machines), "workers": pool.Size()}).Debug("run started")

	var wg sync.WaitGroup
	for i := range machines {
		i := i
		wg.Add(1)
		err := pool.Submit(ctx, func() {
			defer wg.Done()
			results[i] = solveMachine(machines[i], o)
		})
		if err != nil {
			wg.Done()
			wg.Wait()
			pool.Close()
			return Report{}, fmt.Errorf("factory: submit line %d: %w", machines[i].Line, err)
		}
	}
	wg.Wait()
	pool.Close()

	rep := Report{Machines: results}
	for _, r := range results {
		if err := rep.add(r, effect.Toggle, r.Toggle, o); err != nil {
			return Report{}, err
		}
		if err := rep.add(r, effect.Additive, r.Additive, o); err != nil {
			return Report{}, err
		}
	}
	log.WithFields(logrus.Fields{
		"part1":    rep.Part1,
		"part2":    rep.Part2,
		"unsolved": len(rep.Unsolved),
	}).Info("run finished")

	return rep, nil
}

// add folds one outcome into the report.
func (rep *Report) add(r MachineResult, sem effect.Semantics, out Outcome, o Options) error {
	if out.Solved {
		if sem == effect.Toggle {
			rep.Part1 += out.Cost
		} else {
			rep.Part2 += out.Cost
		}
		return nil
	}
	if !errors.Is(out.Err, effect.ErrNoSolution) {
		return fmt.Errorf("factory: line %d %s: %w", r.Line, sem, out.Err)
	}
	if !o.SkipUnsolved {
		return fmt.Errorf("line %d %s: %w: %w", r.Line, sem, ErrUnsolved, out.Err)
	}
	o.Logger.WithFields(logrus.Fields{
		"line":      r.Line,
		"semantics": sem.String(),
	}).WithError(out.Err).Warn("machine skipped")
	rep.Unsolved = append(rep.Unsolved, Unsolved{Line: r.Line, Semantics: sem, Err: out.Err})

	return nil
}

func solveMachine(m notation.Machine, o Options) MachineResult {
	start := time.Now()
	r := MachineResult{Line: m.Line}

	if s, err := toggle.Solve(m.Lights, m.Buttons, o.Toggle...); err != nil {
		r.Toggle.Err = err
	} else {
		r.Toggle = Outcome{Cost: s.Cost, Solved: true}
	}
	if s, err := additive.Solve(m.Joltage, m.Buttons, o.Additive...); err != nil {
		r.Additive.Err = err
	} else {
		r.Additive = Outcome{Cost: s.Cost, Solved: true}
	}

	o.Logger.WithFields(logrus.Fields{
		"line":     m.Line,
		"buttons":  len(m.Buttons),
		"toggle":   r.Toggle.Cost,
		"additive": r.Additive.Cost,
		"elapsed":  time.Since(start),
	}).Debug("machine done")

	return r
}
