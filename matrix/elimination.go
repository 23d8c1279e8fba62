// SPDX-License-Identifier: MIT
// Package matrix: Gaussian elimination with partial pivoting.
//
// Purpose:
//   - Reduce A·x = b (A is m×n, b has length m) to upper echelon form.
//   - Report rank, the ordered pivot columns and the free columns.
//   - Provide back substitution for any assignment of the free variables.
//
// Determinism:
//   - Fixed column order 0..n-1; ties in pivot magnitude keep the lowest row.

package matrix

import (
	"fmt"
	"math"
)

const (
	opReduce          = "Reduce"
	opBackSubstitute  = "BackSubstitute"
	zeroSum           = 0.0
	noPivotCandidate  = -1
	unitFreeComponent = 1.0
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Echelon is the reduced form of A·x = b produced by Reduce.
// Rows 0..Rank()-1 carry pivots at Pivots()[r]; the remaining rows are
// numerically zero. The value is immutable after Reduce returns.
type Echelon struct {
	u      *Dense    // reduced coefficients (m×n)
	rhs    []float64 // reduced right-hand side (m)
	pivots []int     // pivot column of row r, strictly increasing
	free   []int     // non-pivot columns, ascending
	eps    float64
}

// Reduce performs column-by-column Gaussian elimination with partial pivoting.
//
// Implementation:
//   - Stage 1: Validate A non-nil, len(b) == Rows(A), b finite; copy A and b.
//   - Stage 2: For each column c, pick the row ≥ r with the largest |A[i,c]|.
//     If that magnitude is ≤ eps the column is skipped (free variable);
//     otherwise swap it into row r, eliminate below, record c as a pivot, r++.
//   - Stage 3: Rows r..m-1 are numerically zero; any |b[i]| > eps there means
//     the system is inconsistent.
//
// Returns:
//   - *Echelon on success.
//   - ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf on malformed input.
//   - ErrInconsistent when no real solution exists.
//
// Complexity:
//   - Time O(m·n·min(m,n)), Space O(m·n) for the working copy.
func Reduce(a Matrix, b []float64, opts ...Option) (*Echelon, error) {
	o := gatherOptions(opts...)

	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opReduce, err)
	}
	if err := ValidateVecLen(b, a.Rows()); err != nil {
		return nil, matrixErrorf(opReduce, err)
	}
	if err := ValidateFinite(b); err != nil {
		return nil, matrixErrorf(opReduce, err)
	}

	u, err := denseCopy(a)
	if err != nil {
		return nil, matrixErrorf(opReduce, err)
	}
	rhs := append([]float64(nil), b...)

	m, n := u.r, u.c
	e := &Echelon{u: u, rhs: rhs, eps: o.eps}

	var (
		row, col, i, k int
		best, mag, f   float64
		pivotRow       int
		base, pbase    int
	)
	for col = 0; col < n; col++ {
		if row == m {
			e.free = append(e.free, col)
			continue
		}

		// Partial pivoting: largest magnitude in the remaining rows.
		pivotRow, best = noPivotCandidate, 0
		for i = row; i < m; i++ {
			mag = math.Abs(u.data[i*n+col])
			if mag > best {
				pivotRow, best = i, mag
			}
		}
		if pivotRow == noPivotCandidate || best <= o.eps {
			e.free = append(e.free, col)
			continue
		}

		u.swapRows(pivotRow, row)
		rhs[pivotRow], rhs[row] = rhs[row], rhs[pivotRow]

		// Eliminate column col from every row below the pivot.
		pbase = row * n
		for i = row + 1; i < m; i++ {
			base = i * n
			f = u.data[base+col] / u.data[pbase+col]
			if f == 0 {
				continue
			}
			for k = col; k < n; k++ {
				u.data[base+k] -= f * u.data[pbase+k]
			}
			u.data[base+col] = 0 // exact zero below the pivot
			rhs[i] -= f * rhs[row]
		}

		e.pivots = append(e.pivots, col)
		row++
	}

	for i = row; i < m; i++ {
		if math.Abs(rhs[i]) > o.eps {
			return nil, matrixErrorf(opReduce, fmt.Errorf("row %d residual %g: %w", i, rhs[i], ErrInconsistent))
		}
	}

	return e, nil
}

// denseCopy materializes any Matrix into a fresh *Dense.
func denseCopy(a Matrix) (*Dense, error) {
	if d, ok := a.(*Dense); ok {
		return d.Clone().(*Dense), nil
	}
	out, err := NewDense(a.Rows(), a.Cols())
	if err != nil {
		return nil, err
	}
	var v float64
	for i := 0; i < out.r; i++ {
		for j := 0; j < out.c; j++ {
			if v, err = a.At(i, j); err != nil {
				return nil, err
			}
			if isNonFinite(v) {
				return nil, denseErrorf("At", i, j, ErrNaNInf)
			}
			out.data[i*out.c+j] = v
		}
	}

	return out, nil
}

// Rank returns the number of pivots found.
func (e *Echelon) Rank() int { return len(e.pivots) }

// Cols returns the number of unknowns n.
func (e *Echelon) Cols() int { return e.u.c }

// Epsilon returns the tolerance the reduction ran with.
func (e *Echelon) Epsilon() float64 { return e.eps }

// Pivots returns a copy of the pivot columns in row order.
func (e *Echelon) Pivots() []int { return append([]int(nil), e.pivots...) }

// Free returns a copy of the free (non-pivot) columns in ascending order.
func (e *Echelon) Free() []int { return append([]int(nil), e.free...) }

// BackSubstitute returns the full solution x of A·x = b for the given values
// of the free variables (aligned with Free()).
//
// Implementation:
//   - Stage 1: place free values into x.
//   - Stage 2: for r = Rank-1 … 0, x[p_r] = (b_r − Σ_{j>p_r} U[r,j]·x[j]) / U[r,p_r].
//
// Complexity: O(rank·n).
func (e *Echelon) BackSubstitute(free []float64) ([]float64, error) {
	if err := ValidateVecLen(free, len(e.free)); err != nil {
		return nil, matrixErrorf(opBackSubstitute, err)
	}
	if err := ValidateFinite(free); err != nil {
		return nil, matrixErrorf(opBackSubstitute, err)
	}

	return e.substitute(free, false), nil
}

// Particular returns the solution with every free variable set to zero.
func (e *Echelon) Particular() []float64 {
	return e.substitute(make([]float64, len(e.free)), false)
}

// NullBasis returns one vector per free variable (aligned with Free()):
// the homogeneous solution with that free variable at 1 and the others at 0.
// Every solution of A·x = b is Particular() + Σ t_f·NullBasis()[f].
func (e *Echelon) NullBasis() [][]float64 {
	basis := make([][]float64, len(e.free))
	unit := make([]float64, len(e.free))
	for f := range e.free {
		unit[f] = unitFreeComponent
		basis[f] = e.substitute(unit, true)
		unit[f] = 0
	}

	return basis
}

// substitute runs back substitution; homogeneous drops the right-hand side.
func (e *Echelon) substitute(free []float64, homogeneous bool) []float64 {
	n := e.u.c
	x := make([]float64, n)
	for f, col := range e.free {
		x[col] = free[f]
	}

	var (
		r, j, p int
		sum     float64
		base    int
	)
	for r = len(e.pivots) - 1; r >= 0; r-- {
		p = e.pivots[r]
		base = r * n
		sum = zeroSum
		if !homogeneous {
			sum = e.rhs[r]
		}
		for j = p + 1; j < n; j++ {
			sum -= e.u.data[base+j] * x[j]
		}
		x[p] = sum / e.u.data[base+p]
	}

	return x
}
