package additive_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/presswork/additive"
	"github.com/katalvlaran/presswork/effect"
)

// ExampleSolve drives counters {3,5,4,7} with the fewest presses.
func ExampleSolve() {
	buttons := []effect.Button{
		effect.MustButton(0, 3),
		effect.MustButton(1, 1, 3),
		effect.MustButton(2, 2),
		effect.MustButton(3, 2, 3),
		effect.MustButton(4, 0, 2),
		effect.MustButton(5, 0, 1),
	}
	sol, err := additive.Solve([]int{3, 5, 4, 7}, buttons)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("presses:", sol.Cost)
	// Output:
	// presses: 10
}

// ExampleSolve_infeasible shows the explicit no-solution outcome.
func ExampleSolve_infeasible() {
	buttons := []effect.Button{effect.MustButton(0, 0, 1)}
	_, err := additive.Solve([]int{1, 0}, buttons)
	fmt.Println(errors.Is(err, effect.ErrNoSolution))
	// Output:
	// true
}
