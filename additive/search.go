// SPDX-License-Identifier: MIT

package additive

import "math"

// search is a depth-first branch-and-bound over the free variables of a lattice.
//
// State per depth d (free variables 0..d-1 fixed):
//   - partial[d][j] = origin_j + Σ_{k<d} t_k·basis[k][j]
//   - reach[d][j]   = Σ_{k≥d} max(basis[k][j]·lo_k, basis[k][j]·hi_k)
//     (largest value the unfixed variables can still add to x_j)
//   - costLB[d]     = Σ_{k≥d} min(w_k·lo_k, w_k·hi_k), w_k = Σ_j basis[k][j]
//
// A node is cut when partial+reach < 0 for some j, or when the cost lower
// bound cannot improve on the incumbent by at least one press.
type search struct {
	l      *lattice
	lo, hi []int64

	partial [][]float64
	reach   [][]float64
	w       []float64
	costLB  []float64
	costAt  []float64 // Σ origin + Σ_{k<d} w_k t_k

	t, x  []int64
	found bool
	best  int64
	bestX []int64
	nodes int
}

func newSearch(l *lattice, lo, hi []int64) *search {
	nf, n := len(l.free), l.n
	s := &search{
		l: l, lo: lo, hi: hi,
		partial: make([][]float64, nf+1),
		reach:   make([][]float64, nf+1),
		w:       make([]float64, nf),
		costLB:  make([]float64, nf+1),
		costAt:  make([]float64, nf+1),
		t:       make([]int64, nf),
		x:       make([]int64, n),
	}
	for d := range s.partial {
		s.partial[d] = make([]float64, n)
		s.reach[d] = make([]float64, n)
	}
	copy(s.partial[0], l.origin)
	for _, v := range l.origin {
		s.costAt[0] += v
	}
	for k := range l.basis {
		for _, v := range l.basis[k] {
			s.w[k] += v
		}
	}
	for d := nf - 1; d >= 0; d-- {
		lo, hi := float64(lo[d]), float64(hi[d])
		for j := 0; j < n; j++ {
			c := l.basis[d][j]
			s.reach[d][j] = s.reach[d+1][j] + math.Max(c*lo, c*hi)
		}
		s.costLB[d] = s.costLB[d+1] + math.Min(s.w[d]*lo, s.w[d]*hi)
	}

	return s
}

// run explores the whole tree and reports the best press vector.
func (s *search) run() ([]int64, int64, bool) {
	s.dfs(0)

	return s.bestX, s.best, s.found
}

func (s *search) dfs(d int) {
	s.nodes++
	if s.prune(d) {
		return
	}
	if d == len(s.t) {
		s.leaf()
		return
	}

	// Walk toward cheaper values first so a good incumbent appears early.
	step, from, to := int64(1), s.lo[d], s.hi[d]
	if s.w[d] < 0 {
		step, from, to = -1, s.hi[d], s.lo[d]
	}
	next, cur := s.partial[d+1], s.partial[d]
	basis := s.l.basis[d]
	for v := from; ; v += step {
		s.t[d] = v
		fv := float64(v)
		for j := range next {
			next[j] = cur[j] + fv*basis[j]
		}
		s.costAt[d+1] = s.costAt[d] + fv*s.w[d]
		s.dfs(d + 1)
		if v == to {
			break
		}
	}
}

func (s *search) prune(d int) bool {
	for j, v := range s.partial[d] {
		if v+s.reach[d][j] < -pruneSlack {
			return true
		}
	}
	if s.found && s.costAt[d]+s.costLB[d] > float64(s.best)-1+pruneSlack {
		return true
	}

	return false
}

func (s *search) leaf() {
	if !s.l.leaf(s.t, s.x) {
		return
	}
	var cost int64
	for _, v := range s.x {
		cost += v
	}
	if !s.found || cost < s.best {
		s.found, s.best = true, cost
		s.bestX = append(s.bestX[:0], s.x...)
	}
}
