// SPDX-License-Identifier: MIT

package linsys

import (
	"fmt"
	"math/big"
)

// System is an integer linear system A·x = B with Cols unknowns.
// Cols is explicit so a system with no equations still knows its width.
type System struct {
	A    [][]int
	B    []int
	Cols int
}

// Echelon is the reduced row echelon form of a System.
type Echelon struct {
	rows   [][]*big.Rat // rank×Cols, pivot entries are 1 and pivot columns are unit vectors
	rhs    []*big.Rat   // rank
	pivots []int        // pivot column of row r, strictly increasing
	free   []int        // non-pivot columns, ascending
	cols   int
}

// Reduce brings the system to reduced row echelon form.
//
// For each column c in order the row (at or below the current one) with the
// largest |A[i,c]| is chosen; an all-zero column becomes free. The pivot row
// is scaled to 1 and c is cleared from every other row. Rows left without a
// pivot must have a zero right-hand side, otherwise ErrInconsistent.
//
// Complexity: O(m·n·min(m,n)) rational operations.
func (s System) Reduce() (*Echelon, error) {
	m, n := len(s.A), s.Cols
	if len(s.B) != m || n < 0 {
		return nil, fmt.Errorf("linsys: %d rows, %d targets, %d cols: %w", m, len(s.B), n, ErrShape)
	}

	work := make([][]*big.Rat, m)
	rhs := make([]*big.Rat, m)
	for i, row := range s.A {
		if len(row) != n {
			return nil, fmt.Errorf("linsys: row %d has %d columns, want %d: %w", i, len(row), n, ErrShape)
		}
		work[i] = make([]*big.Rat, n)
		for j, v := range row {
			work[i][j] = big.NewRat(int64(v), 1)
		}
		rhs[i] = big.NewRat(int64(s.B[i]), 1)
	}

	e := &Echelon{cols: n}
	var (
		row      int
		factor   = new(big.Rat)
		tmp      = new(big.Rat)
		best     = new(big.Rat)
		mag      = new(big.Rat)
		pivotRow int
	)
	for col := 0; col < n; col++ {
		if row == m {
			e.free = append(e.free, col)
			continue
		}

		pivotRow = -1
		best.SetInt64(0)
		for i := row; i < m; i++ {
			mag.Abs(work[i][col])
			if mag.Cmp(best) > 0 {
				pivotRow = i
				best.Set(mag)
			}
		}
		if pivotRow < 0 {
			e.free = append(e.free, col)
			continue
		}
		work[row], work[pivotRow] = work[pivotRow], work[row]
		rhs[row], rhs[pivotRow] = rhs[pivotRow], rhs[row]

		// scale pivot row to a leading 1
		factor.Inv(work[row][col])
		for j := col; j < n; j++ {
			work[row][j].Mul(work[row][j], factor)
		}
		rhs[row].Mul(rhs[row], factor)

		for i := 0; i < m; i++ {
			if i == row || work[i][col].Sign() == 0 {
				continue
			}
			factor.Set(work[i][col])
			for j := col; j < n; j++ {
				tmp.Mul(factor, work[row][j])
				work[i][j].Sub(work[i][j], tmp)
			}
			tmp.Mul(factor, rhs[row])
			rhs[i].Sub(rhs[i], tmp)
		}

		e.pivots = append(e.pivots, col)
		row++
	}

	for i := row; i < m; i++ {
		if rhs[i].Sign() != 0 {
			return nil, fmt.Errorf("linsys: row %d reduces to 0 = %s: %w", i, rhs[i].RatString(), ErrInconsistent)
		}
	}
	e.rows = work[:row]
	e.rhs = rhs[:row]

	return e, nil
}

// Rank returns the number of pivots.
func (e *Echelon) Rank() int { return len(e.pivots) }

// Cols returns the number of unknowns.
func (e *Echelon) Cols() int { return e.cols }

// Pivots returns a copy of the pivot columns in row order.
func (e *Echelon) Pivots() []int { return append([]int(nil), e.pivots...) }

// Free returns a copy of the free columns in ascending order.
func (e *Echelon) Free() []int { return append([]int(nil), e.free...) }

// BackSubstitute returns x for the given free values (aligned with Free()).
// In reduced form each basic variable depends on free variables only:
// x[p_r] = rhs_r − Σ_k U[r, f_k]·free[k].
func (e *Echelon) BackSubstitute(free []*big.Rat) ([]*big.Rat, error) {
	if len(free) != len(e.free) {
		return nil, fmt.Errorf("linsys: got %d free values, want %d: %w", len(free), len(e.free), ErrFreeLength)
	}

	return e.substitute(free, false), nil
}

// Particular returns the solution with every free variable at zero.
func (e *Echelon) Particular() []*big.Rat {
	zero := make([]*big.Rat, len(e.free))
	for k := range zero {
		zero[k] = new(big.Rat)
	}

	return e.substitute(zero, false)
}

// NullBasis returns one homogeneous solution per free variable: that free
// variable at 1, the others at 0.
func (e *Echelon) NullBasis() [][]*big.Rat {
	basis := make([][]*big.Rat, len(e.free))
	unit := make([]*big.Rat, len(e.free))
	for k := range unit {
		unit[k] = new(big.Rat)
	}
	for k := range e.free {
		unit[k].SetInt64(1)
		basis[k] = e.substitute(unit, true)
		unit[k].SetInt64(0)
	}

	return basis
}

func (e *Echelon) substitute(free []*big.Rat, homogeneous bool) []*big.Rat {
	x := make([]*big.Rat, e.cols)
	for j := range x {
		x[j] = new(big.Rat)
	}
	for k, col := range e.free {
		x[col].Set(free[k])
	}
	tmp := new(big.Rat)
	for r, p := range e.pivots {
		if !homogeneous {
			x[p].Set(e.rhs[r])
		}
		for k, col := range e.free {
			if free[k].Sign() == 0 {
				continue
			}
			tmp.Mul(e.rows[r][col], free[k])
			x[p].Sub(x[p], tmp)
		}
	}

	return x
}
