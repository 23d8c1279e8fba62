// SPDX-License-Identifier: MIT

package factory

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/presswork/additive"
	"github.com/katalvlaran/presswork/toggle"
)

// Options configures Run.
type Options struct {
	Workers      int // ≤ 0 means runtime.NumCPU()
	Logger       *logrus.Logger
	SkipUnsolved bool
	Toggle       []toggle.Option
	Additive     []additive.Option
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns strict, silent defaults.
func DefaultOptions() Options {
	return Options{Logger: discard()}
}

// WithWorkers sets the pool size.
func WithWorkers(n int) Option {
	return func(o *Options) { o.Workers = n }
}

// WithLogger routes per-machine logging to l. A nil logger is ignored.
func WithLogger(l *logrus.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithSkipUnsolved tolerates unsolvable machines.
func WithSkipUnsolved() Option {
	return func(o *Options) { o.SkipUnsolved = true }
}

// WithToggleOptions forwards opts to every toggle.Solve call.
func WithToggleOptions(opts ...toggle.Option) Option {
	return func(o *Options) { o.Toggle = append(o.Toggle, opts...) }
}

// WithAdditiveOptions forwards opts to every additive.Solve call.
func WithAdditiveOptions(opts ...additive.Option) Option {
	return func(o *Options) { o.Additive = append(o.Additive, opts...) }
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

func discard() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return l
}
