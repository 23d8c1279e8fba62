package additive_test

import (
	"fmt"
	"math/rand"
	"os"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/katalvlaran/presswork/additive"
	"github.com/katalvlaran/presswork/effect"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// scenario mirrors one entry of testdata/scenarios.yaml.
type scenario struct {
	Name    string  `yaml:"name"`
	Targets []int   `yaml:"targets"`
	Buttons [][]int `yaml:"buttons"`
	Want    int     `yaml:"want"`
}

func loadScenarios(t *testing.T) []scenario {
	t.Helper()
	raw, err := os.ReadFile("testdata/scenarios.yaml")
	require.NoError(t, err)
	var out []scenario
	require.NoError(t, yaml.Unmarshal(raw, &out))
	require.NotEmpty(t, out)

	return out
}

func mkButtons(idx [][]int) []effect.Button {
	out := make([]effect.Button, len(idx))
	for j, ii := range idx {
		out[j] = effect.MustButton(j, ii...)
	}

	return out
}

// variants lists every option combination Solve must agree on.
var variants = []struct {
	name string
	opts []additive.Option
}{
	{"exact", nil},
	{"float", []additive.Option{additive.WithArithmetic(additive.Float)}},
	{"exact-nosplit", []additive.Option{additive.WithoutSplit()}},
	{"float-nosplit", []additive.Option{additive.WithArithmetic(additive.Float), additive.WithoutSplit()}},
	{"target-span", []additive.Option{additive.WithBound(additive.TargetSpan)}},
}

// TestSolve_Scenarios runs every fixture under every variant plus the oracle.
func TestSolve_Scenarios(t *testing.T) {
	for _, sc := range loadScenarios(t) {
		buttons := mkButtons(sc.Buttons)
		for _, v := range variants {
			t.Run(sc.Name+"/"+v.name, func(t *testing.T) {
				sol, err := additive.Solve(sc.Targets, buttons, v.opts...)
				if sc.Want < 0 {
					require.ErrorIs(t, err, additive.ErrInfeasible)
					require.ErrorIs(t, err, effect.ErrNoSolution)
					return
				}
				require.NoError(t, err)
				require.Equal(t, sc.Want, sol.Cost)
				require.NoError(t, effect.VerifyAdditive(sc.Targets, buttons, sol))
			})
		}
		t.Run(sc.Name+"/exhaustive", func(t *testing.T) {
			sol, err := additive.Exhaustive(sc.Targets, buttons)
			if sc.Want < 0 {
				require.ErrorIs(t, err, additive.ErrInfeasible)
				return
			}
			require.NoError(t, err)
			require.Equal(t, sc.Want, sol.Cost)
			require.NoError(t, effect.VerifyAdditive(sc.Targets, buttons, sol))
		})
	}
}

// randomInstance builds a feasible-by-construction instance about half the
// time (targets from a hidden press vector) and a random one otherwise.
func randomInstance(rng *rand.Rand) ([]int, []effect.Button) {
	m := 1 + rng.Intn(5)
	k := rng.Intn(7)
	buttons := make([]effect.Button, k)
	for j := range buttons {
		var idx []int
		for i := 0; i < m; i++ {
			if rng.Intn(2) == 0 {
				idx = append(idx, i)
			}
		}
		buttons[j] = effect.MustButton(j, idx...)
	}
	targets := make([]int, m)
	if rng.Intn(2) == 0 {
		for _, b := range buttons {
			x := rng.Intn(4)
			for _, i := range b.Indices {
				targets[i] += x
			}
		}
	} else {
		for i := range targets {
			targets[i] = rng.Intn(7)
		}
	}

	return targets, buttons
}

// TestSolve_MatchesExhaustive cross-checks every variant against the oracle.
func TestSolve_MatchesExhaustive(t *testing.T) {
	rng := rand.New(rand.NewSource(2025))
	for iter := 0; iter < 300; iter++ {
		targets, buttons := randomInstance(rng)
		want, wantErr := additive.Exhaustive(targets, buttons)
		for _, v := range variants {
			got, err := additive.Solve(targets, buttons, v.opts...)
			msg := fmt.Sprintf("iter %d %s\n%s", iter, v.name, spew.Sdump(targets, buttons))
			if wantErr != nil {
				require.ErrorIs(t, wantErr, additive.ErrInfeasible, msg)
				require.ErrorIs(t, err, additive.ErrInfeasible, msg)
				continue
			}
			require.NoError(t, err, msg)
			require.Equal(t, want.Cost, got.Cost, msg)
			require.NoError(t, effect.VerifyAdditive(targets, buttons, got), msg)
		}
	}
}

// TestSolve_Idempotent re-solves the same instance.
func TestSolve_Idempotent(t *testing.T) {
	targets := []int{7, 5, 12, 7, 2}
	buttons := mkButtons([][]int{{0, 2, 3, 4}, {2, 3}, {0, 4}, {0, 1, 2}, {1, 2, 3, 4}})
	a, err := additive.Solve(targets, buttons)
	require.NoError(t, err)
	b, err := additive.Solve(targets, buttons)
	require.NoError(t, err)
	require.Equal(t, a, b)

	c, err := additive.Cost(targets, buttons)
	require.NoError(t, err)
	require.Equal(t, a.Cost, c)
}

// TestSolve_Guards covers option and input sentinels.
func TestSolve_Guards(t *testing.T) {
	buttons := mkButtons([][]int{{0}, {1}, {0, 1}})
	targets := []int{3, 5}

	_, err := additive.Solve(targets, buttons, additive.WithMaxFree(0))
	require.ErrorIs(t, err, additive.ErrTooManyFree)

	_, err = additive.Solve(targets, buttons, additive.WithArithmetic(additive.Arithmetic(5)))
	require.ErrorIs(t, err, additive.ErrUnsupportedArithmetic)

	_, err = additive.Solve(targets, buttons, additive.WithBound(additive.Bound(5)))
	require.ErrorIs(t, err, additive.ErrUnsupportedBound)

	_, err = additive.Solve([]int{1}, buttons)
	require.ErrorIs(t, err, effect.ErrIndexOutOfRange)

	_, err = additive.Solve([]int{-1, 0}, buttons)
	require.ErrorIs(t, err, effect.ErrNegativeTarget)

	_, err = additive.Exhaustive([]int{-1, 0}, buttons)
	require.ErrorIs(t, err, effect.ErrNegativeTarget)

	require.Panics(t, func() { additive.WithMaxFree(-1) })
	require.Panics(t, func() { additive.WithEpsilon(-1) })
	require.Equal(t, "float", additive.Float.String())
	require.Equal(t, "target-span", additive.TargetSpan.String())
}
