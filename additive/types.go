// SPDX-License-Identifier: MIT

package additive

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/presswork/effect"
	"github.com/katalvlaran/presswork/matrix"
)

var (
	// ErrInfeasible is returned when no non-negative integer press vector hits the targets.
	ErrInfeasible = fmt.Errorf("additive: infeasible: %w", effect.ErrNoSolution)

	// ErrTooManyFree is returned when a block has more free variables than Options.MaxFree.
	ErrTooManyFree = errors.New("additive: too many free variables")

	// ErrUnsupportedArithmetic is returned for an Arithmetic outside the known set.
	ErrUnsupportedArithmetic = errors.New("additive: unsupported arithmetic")

	// ErrUnsupportedBound is returned for a Bound outside the known set.
	ErrUnsupportedBound = errors.New("additive: unsupported bound policy")
)

// Arithmetic selects the reducer.
type Arithmetic int

const (
	// Exact reduces over big.Rat and checks leaves with int64 arithmetic (default).
	Exact Arithmetic = iota
	// Float reduces in float64 and checks leaves against Options.Epsilon.
	Float
)

// String implements fmt.Stringer.
func (a Arithmetic) String() string {
	switch a {
	case Exact:
		return "exact"
	case Float:
		return "float"
	default:
		return fmt.Sprintf("Arithmetic(%d)", int(a))
	}
}

// Bound selects the range searched for each free variable.
type Bound int

const (
	// ButtonCap: t_k ∈ [0, min target over the counters button k affects] (default).
	ButtonCap Bound = iota
	// TargetSpan: t_k ∈ [-M, M] with M = max target of the instance + 1.
	TargetSpan
)

// String implements fmt.Stringer.
func (b Bound) String() string {
	switch b {
	case ButtonCap:
		return "button-cap"
	case TargetSpan:
		return "target-span"
	default:
		return fmt.Sprintf("Bound(%d)", int(b))
	}
}

const (
	// DefaultMaxFree caps the free variables searched per block.
	DefaultMaxFree = 10

	// DefaultEpsilon is the single tolerance of the Float pipeline.
	DefaultEpsilon = matrix.DefaultEpsilon

	// pruneSlack absorbs float error in the pruning bounds; leaves are always
	// re-checked, so a looser slack only costs time.
	pruneSlack = 1e-6

	panicMaxFreeInvalid = "additive: WithMaxFree: limit must be ≥ 0"
	panicEpsilonInvalid = "additive: WithEpsilon: eps must be finite, non-negative"
)

// Options configures Solve.
type Options struct {
	Arithmetic Arithmetic
	Bound      Bound
	Epsilon    float64
	MaxFree    int
	Split      bool
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		Arithmetic: Exact,
		Bound:      ButtonCap,
		Epsilon:    DefaultEpsilon,
		MaxFree:    DefaultMaxFree,
		Split:      true,
	}
}

// WithArithmetic selects the reducer.
func WithArithmetic(a Arithmetic) Option {
	return func(o *Options) { o.Arithmetic = a }
}

// WithBound selects the free-variable range policy.
func WithBound(b Bound) Option {
	return func(o *Options) { o.Bound = b }
}

// WithEpsilon sets the Float tolerance. Panics on negative or non-finite eps.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.Epsilon = eps }
}

// WithMaxFree overrides the per-block free-variable limit. Panics when k < 0.
func WithMaxFree(k int) Option {
	if k < 0 {
		panic(panicMaxFreeInvalid)
	}

	return func(o *Options) { o.MaxFree = k }
}

// WithoutSplit solves the whole instance as a single block.
func WithoutSplit() Option {
	return func(o *Options) { o.Split = false }
}

func gatherOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
