// SPDX-License-Identifier: MIT

// Command presswork reads machine descriptions and prints the fewest button
// presses needed under toggle semantics (Part 1) and additive semantics
// (Part 2), summed over every machine.
//
// Usage:
//
//	presswork [-input input.txt] [-workers N] [-skip-unsolved] [-float] [-v]
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/presswork/additive"
	"github.com/katalvlaran/presswork/factory"
	"github.com/katalvlaran/presswork/notation"
)

var log = logrus.New()

var (
	input        = flag.String("input", "input.txt", "machine description file")
	workerCount  = flag.Int("workers", 0, "parallel workers (0 = one per CPU)")
	skipUnsolved = flag.Bool("skip-unsolved", false, "leave unsolvable machines out of the totals instead of failing")
	useFloat     = flag.Bool("float", false, "reduce additive systems in float64 instead of exact rationals")
	verbose      = flag.Bool("v", false, "debug logging")
)

func main() {
	flag.Parse()
	log.SetOutput(os.Stderr)
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rep, err := run(ctx)
	if err != nil {
		log.WithError(err).WithField("input", *input).Fatal("presswork failed")
	}
	report(os.Stdout, rep)
}

func run(ctx context.Context) (factory.Report, error) {
	f, err := os.Open(*input)
	if err != nil {
		return factory.Report{}, err
	}
	defer f.Close()

	machines, err := notation.Parse(f)
	if err != nil {
		return factory.Report{}, fmt.Errorf("%s: %w", *input, err)
	}
	log.WithField("machines", len(machines)).Debug("input parsed")

	opts := []factory.Option{factory.WithWorkers(*workerCount), factory.WithLogger(log)}
	if *skipUnsolved {
		opts = append(opts, factory.WithSkipUnsolved())
	}
	if *useFloat {
		opts = append(opts, factory.WithAdditiveOptions(additive.WithArithmetic(additive.Float)))
	}

	return factory.Run(ctx, machines, opts...)
}

func report(w io.Writer, rep factory.Report) {
	fmt.Fprintf(w, "Part 1: %d\n", rep.Part1)
	fmt.Fprintf(w, "Part 2: %d\n", rep.Part2)
}
