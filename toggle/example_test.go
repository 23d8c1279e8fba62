package toggle_test

import (
	"fmt"

	"github.com/katalvlaran/presswork/effect"
	"github.com/katalvlaran/presswork/toggle"
)

// ExampleSolve lights the ".##." pattern with the fewest presses.
func ExampleSolve() {
	p, _ := effect.ParsePattern(".##.")
	buttons := []effect.Button{
		effect.MustButton(0, 3),
		effect.MustButton(1, 1, 3),
		effect.MustButton(2, 2),
		effect.MustButton(3, 2, 3),
		effect.MustButton(4, 0, 2),
		effect.MustButton(5, 0, 1),
	}
	sol, err := toggle.Solve(p, buttons)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("presses:", sol.Cost)
	// Output:
	// presses: 2
}
