// SPDX-License-Identifier: MIT

package additive

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/presswork/linsys"
	"github.com/katalvlaran/presswork/matrix"
)

// lattice is the solution set of one block: x = origin + Σ t_k·basis[k].
// origin and basis are float images used only for pruning; leaf decides
// integrality and sign authoritatively and fills x.
type lattice struct {
	n      int
	free   []int
	origin []float64
	basis  [][]float64
	leaf   func(t, x []int64) bool
}

// errNoRealSolution marks a block whose reduction is already inconsistent.
var errNoRealSolution = errors.New("additive: no real solution")

// newLattice reduces A·x = b with the requested arithmetic.
func newLattice(a [][]int, b []int, cols int, o Options) (*lattice, error) {
	switch o.Arithmetic {
	case Exact:
		return exactLattice(a, b, cols)
	case Float:
		return floatLattice(a, b, cols, o.Epsilon)
	default:
		return nil, ErrUnsupportedArithmetic
	}
}

func exactLattice(a [][]int, b []int, cols int) (*lattice, error) {
	e, err := linsys.System{A: a, B: b, Cols: cols}.Reduce()
	if errors.Is(err, linsys.ErrInconsistent) {
		return nil, errNoRealSolution
	}
	if err != nil {
		return nil, fmt.Errorf("additive: %w", err)
	}
	aff, err := e.Affine()
	if err != nil {
		return nil, fmt.Errorf("additive: %w", err)
	}

	l := &lattice{n: cols, free: e.Free()}
	l.origin = make([]float64, cols)
	for j, v := range e.Particular() {
		l.origin[j], _ = v.Float64()
	}
	for _, vec := range e.NullBasis() {
		row := make([]float64, cols)
		for j, v := range vec {
			row[j], _ = v.Float64()
		}
		l.basis = append(l.basis, row)
	}
	l.leaf = func(t, x []int64) bool {
		for j := range aff {
			num := aff[j].Eval(t)
			if num < 0 || num%aff[j].Den != 0 {
				return false
			}
			x[j] = num / aff[j].Den
		}
		return true
	}

	return l, nil
}

func floatLattice(a [][]int, b []int, cols int, eps float64) (*lattice, error) {
	m, err := matrix.NewFromInts(a)
	if err != nil {
		return nil, fmt.Errorf("additive: %w", err)
	}
	if len(a) == 0 {
		// NewFromInts cannot infer the width of an empty table.
		if m, err = matrix.NewDense(0, cols); err != nil {
			return nil, fmt.Errorf("additive: %w", err)
		}
	}
	rhs := make([]float64, len(b))
	for i, v := range b {
		rhs[i] = float64(v)
	}
	e, err := matrix.Reduce(m, rhs, matrix.WithEpsilon(eps))
	if errors.Is(err, matrix.ErrInconsistent) {
		return nil, errNoRealSolution
	}
	if err != nil {
		return nil, fmt.Errorf("additive: %w", err)
	}

	l := &lattice{n: cols, free: e.Free(), origin: e.Particular(), basis: e.NullBasis()}
	l.leaf = func(t, x []int64) bool {
		for j := 0; j < cols; j++ {
			v := l.origin[j]
			for k, tk := range t {
				v += float64(tk) * l.basis[k][j]
			}
			if v < -eps {
				return false
			}
			r := math.Round(v)
			if math.Abs(v-r) > eps {
				return false
			}
			x[j] = int64(r)
		}
		return true
	}

	return l, nil
}
