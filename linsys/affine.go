// SPDX-License-Identifier: MIT

package linsys

import (
	"fmt"
	"math/big"
)

// Affine is the integer form Den·x = Const + Σ_k Coef[k]·t_k of one variable,
// where t is the vector of free-variable values aligned with Echelon.Free().
// Den is always positive.
type Affine struct {
	Den   int64
	Const int64
	Coef  []int64
}

// Eval returns the numerator Const + Σ Coef[k]·t[k].
func (a Affine) Eval(t []int64) int64 {
	v := a.Const
	for k, c := range a.Coef {
		v += c * t[k]
	}

	return v
}

// Value returns x for t and whether it is an integer.
func (a Affine) Value(t []int64) (int64, bool) {
	num := a.Eval(t)
	if num%a.Den != 0 {
		return 0, false
	}

	return num / a.Den, true
}

// Affine returns the integer affine form of every variable (length Cols()).
// A free variable f_k maps to 1·x = 0 + t_k. A basic variable p_r maps to
// its row scaled by the lcm of the row's denominators.
//
// Errors: ErrOverflow when a scaled value does not fit in int64.
func (e *Echelon) Affine() ([]Affine, error) {
	nf := len(e.free)
	out := make([]Affine, e.cols)
	for k, col := range e.free {
		coef := make([]int64, nf)
		coef[k] = 1
		out[col] = Affine{Den: 1, Coef: coef}
	}

	den := new(big.Int)
	scaled := new(big.Rat)
	for r, p := range e.pivots {
		den.SetInt64(1)
		lcm(den, e.rhs[r].Denom())
		for _, col := range e.free {
			lcm(den, e.rows[r][col].Denom())
		}
		if !den.IsInt64() {
			return nil, fmt.Errorf("linsys: row %d denominator: %w", r, ErrOverflow)
		}
		scale := new(big.Rat).SetInt(den)

		a := Affine{Den: den.Int64(), Coef: make([]int64, nf)}
		scaled.Mul(e.rhs[r], scale)
		c, err := ratInt64(scaled)
		if err != nil {
			return nil, fmt.Errorf("linsys: row %d constant: %w", r, err)
		}
		a.Const = c
		for k, col := range e.free {
			scaled.Mul(e.rows[r][col], scale)
			scaled.Neg(scaled)
			if a.Coef[k], err = ratInt64(scaled); err != nil {
				return nil, fmt.Errorf("linsys: row %d coefficient %d: %w", r, k, err)
			}
		}
		out[p] = a
	}

	return out, nil
}

// lcm sets acc = lcm(acc, d) for positive d.
func lcm(acc, d *big.Int) {
	if d.Cmp(big.NewInt(1)) == 0 {
		return
	}
	g := new(big.Int).GCD(nil, nil, acc, d)
	acc.Mul(acc, new(big.Int).Quo(d, g))
}

func ratInt64(r *big.Rat) (int64, error) {
	if !r.IsInt() || !r.Num().IsInt64() {
		return 0, ErrOverflow
	}

	return r.Num().Int64(), nil
}
