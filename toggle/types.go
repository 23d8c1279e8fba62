// SPDX-License-Identifier: MIT

package toggle

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/presswork/effect"
)

var (
	// ErrUnsatisfiable is returned when no subset of buttons reaches the pattern.
	ErrUnsatisfiable = fmt.Errorf("toggle: unsatisfiable: %w", effect.ErrNoSolution)

	// ErrTooManyButtons is returned when the catalog exceeds Options.MaxButtons.
	ErrTooManyButtons = errors.New("toggle: too many buttons for exact search")

	// ErrUnsupportedStrategy is returned for a Strategy outside the known set.
	ErrUnsupportedStrategy = errors.New("toggle: unsupported strategy")
)

// Strategy selects the search algorithm.
type Strategy int

const (
	// MeetInTheMiddle splits the catalog in two halves (default).
	MeetInTheMiddle Strategy = iota
	// Exhaustive enumerates every subset.
	Exhaustive
)

// String implements fmt.Stringer.
func (s Strategy) String() string {
	switch s {
	case MeetInTheMiddle:
		return "meet-in-the-middle"
	case Exhaustive:
		return "exhaustive"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

const (
	// DefaultMaxButtons caps meet-in-the-middle at 2^20 table entries per half.
	DefaultMaxButtons = 40

	// ExhaustiveMaxButtons caps the oracle at 2^24 subsets.
	ExhaustiveMaxButtons = 24

	panicMaxButtonsInvalid = "toggle: WithMaxButtons: limit must be in [0, 62]"
)

// Options configures Solve.
type Options struct {
	Strategy   Strategy
	MaxButtons int
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{Strategy: MeetInTheMiddle, MaxButtons: DefaultMaxButtons}
}

// WithStrategy selects the search algorithm.
func WithStrategy(s Strategy) Option {
	return func(o *Options) { o.Strategy = s }
}

// WithMaxButtons overrides the catalog size limit. Panics outside [0, 62].
func WithMaxButtons(k int) Option {
	if k < 0 || k > 62 {
		panic(panicMaxButtonsInvalid)
	}

	return func(o *Options) { o.MaxButtons = k }
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
