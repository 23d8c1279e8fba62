// Package presswork finds the cheapest way to drive a machine to its target
// by pressing buttons, where each button touches a fixed set of positions.
//
// 🚀 What is presswork?
//
//	A small library and command that solves the same button catalog under
//	two semantics:
//		• Toggle: a press flips lights; the answer is the smallest subset of
//		  buttons whose XOR equals the light pattern.
//		• Additive: a press adds one to every counter it touches; the answer
//		  is the non-negative integer press vector of least total that hits
//		  every counter target exactly.
//
// Under the hood the work is split across these packages:
//
//	effect/    - Button, Pattern, Instance, Solution types and witness checks
//	toggle/    - subset search: exhaustive oracle and meet-in-the-middle
//	matrix/    - float64 Dense matrices and Gaussian elimination with an epsilon policy
//	linsys/    - exact rational reduction (math/big) and integer affine forms
//	additive/  - component split, parametrisation and branch-and-bound over free variables
//	notation/  - parser for "[.##.] (3) (1,3) {3,5,4,7}" lines
//	factory/   - per-machine fan-out on a worker pool and the two totals
//	cmd/presswork - command-line driver printing "Part 1" and "Part 2"
//
// Quick example:
//
//	ms, _ := notation.Parse(f)
//	rep, err := factory.Run(ctx, ms, factory.WithWorkers(4))
//	fmt.Println(rep.Part1, rep.Part2)
//
// A machine that cannot reach its target is reported with an error wrapping
// effect.ErrNoSolution, never with a sentinel number.
package presswork
