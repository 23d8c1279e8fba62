package linsys_test

import (
	"math/big"
	"testing"

	"github.com/katalvlaran/presswork/linsys"
	"github.com/stretchr/testify/require"
)

func rats(vs ...int64) []*big.Rat {
	out := make([]*big.Rat, len(vs))
	for i, v := range vs {
		out[i] = big.NewRat(v, 1)
	}

	return out
}

func ratStrings(xs []*big.Rat) []string {
	out := make([]string, len(xs))
	for i, x := range xs {
		out[i] = x.RatString()
	}

	return out
}

// TestReduce_Unique solves a square system whose solution needs fractions mid-way.
func TestReduce_Unique(t *testing.T) {
	sys := linsys.System{
		A: [][]int{
			{1, 1, 0},
			{0, 1, 1},
			{1, 0, 1},
		},
		B:    []int{3, 5, 4},
		Cols: 3,
	}
	e, err := sys.Reduce()
	require.NoError(t, err)
	require.Equal(t, 3, e.Rank())
	require.Empty(t, e.Free())
	require.Equal(t, []string{"1", "2", "3"}, ratStrings(e.Particular()))
}

// TestReduce_HalfIntegral: a 0/1 system whose unique real solution is 1/2 everywhere.
func TestReduce_HalfIntegral(t *testing.T) {
	sys := linsys.System{
		A: [][]int{
			{1, 1, 0},
			{0, 1, 1},
			{1, 0, 1},
		},
		B:    []int{1, 1, 1},
		Cols: 3,
	}
	e, err := sys.Reduce()
	require.NoError(t, err)
	require.Equal(t, []string{"1/2", "1/2", "1/2"}, ratStrings(e.Particular()))

	aff, err := e.Affine()
	require.NoError(t, err)
	for _, a := range aff {
		require.Equal(t, int64(2), a.Den)
		require.Equal(t, int64(1), a.Const)
		_, ok := a.Value(nil)
		require.False(t, ok)
	}
}

// TestReduce_NullSpace checks particular + basis for buttons (0), (1), (0,1).
func TestReduce_NullSpace(t *testing.T) {
	sys := linsys.System{
		A:    [][]int{{1, 0, 1}, {0, 1, 1}},
		B:    []int{3, 5},
		Cols: 3,
	}
	e, err := sys.Reduce()
	require.NoError(t, err)
	require.Equal(t, []int{0, 1}, e.Pivots())
	require.Equal(t, []int{2}, e.Free())
	require.Equal(t, []string{"3", "5", "0"}, ratStrings(e.Particular()))

	basis := e.NullBasis()
	require.Len(t, basis, 1)
	require.Equal(t, []string{"-1", "-1", "1"}, ratStrings(basis[0]))

	x, err := e.BackSubstitute(rats(3))
	require.NoError(t, err)
	require.Equal(t, []string{"0", "2", "3"}, ratStrings(x))

	_, err = e.BackSubstitute(rats(1, 2))
	require.ErrorIs(t, err, linsys.ErrFreeLength)

	aff, err := e.Affine()
	require.NoError(t, err)
	require.Len(t, aff, 3)
	require.Equal(t, linsys.Affine{Den: 1, Const: 3, Coef: []int64{-1}}, aff[0])
	require.Equal(t, linsys.Affine{Den: 1, Const: 5, Coef: []int64{-1}}, aff[1])
	require.Equal(t, linsys.Affine{Den: 1, Const: 0, Coef: []int64{1}}, aff[2])

	v, ok := aff[1].Value([]int64{3})
	require.True(t, ok)
	require.Equal(t, int64(2), v)
}

// TestReduce_Inconsistent: one button moving two counters cannot produce {1, 0}.
func TestReduce_Inconsistent(t *testing.T) {
	_, err := linsys.System{A: [][]int{{1}, {1}}, B: []int{1, 0}, Cols: 1}.Reduce()
	require.ErrorIs(t, err, linsys.ErrInconsistent)
}

// TestReduce_Shapes covers empty systems and shape errors.
func TestReduce_Shapes(t *testing.T) {
	e, err := linsys.System{Cols: 2}.Reduce()
	require.NoError(t, err)
	require.Equal(t, 0, e.Rank())
	require.Equal(t, []int{0, 1}, e.Free())
	require.Equal(t, 2, e.Cols())

	e, err = linsys.System{A: [][]int{{}, {}}, B: []int{0, 0}}.Reduce()
	require.NoError(t, err)
	require.Empty(t, e.Particular())

	_, err = linsys.System{A: [][]int{{}}, B: []int{1}}.Reduce()
	require.ErrorIs(t, err, linsys.ErrInconsistent)

	_, err = linsys.System{A: [][]int{{1, 0}, {1}}, B: []int{1, 1}, Cols: 2}.Reduce()
	require.ErrorIs(t, err, linsys.ErrShape)

	_, err = linsys.System{A: [][]int{{1}}, B: nil, Cols: 1}.Reduce()
	require.ErrorIs(t, err, linsys.ErrShape)
}

// TestReduce_MatchesDefinition: every basis vector is homogeneous and the
// particular solution satisfies the system, on a wide rank-deficient system.
func TestReduce_MatchesDefinition(t *testing.T) {
	a := [][]int{
		{1, 0, 1, 1, 0},
		{0, 1, 1, 0, 1},
		{1, 1, 0, 1, 1},
		{1, 1, 2, 1, 1}, // row0 + row1
	}
	b := []int{7, 5, 12, 12}
	e, err := linsys.System{A: a, B: b, Cols: 5}.Reduce()
	require.NoError(t, err)
	require.Equal(t, 3, e.Rank())

	check := func(x []*big.Rat, rhs []int) {
		for i, row := range a {
			s := new(big.Rat)
			for j, v := range row {
				s.Add(s, new(big.Rat).Mul(big.NewRat(int64(v), 1), x[j]))
			}
			require.Zero(t, s.Cmp(big.NewRat(int64(rhs[i]), 1)), "row %d", i)
		}
	}
	check(e.Particular(), b)
	zero := make([]int, len(b))
	for _, v := range e.NullBasis() {
		check(v, zero)
	}
}
