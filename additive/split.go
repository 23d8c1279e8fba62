// SPDX-License-Identifier: MIT

package additive

import "github.com/katalvlaran/presswork/effect"

// block is one independent sub-instance. counters and buttons hold indices
// into the parent instance; the local problem renumbers counters 0..len-1.
type block struct {
	counters []int
	buttons  []int
}

// split groups counters and buttons into connected components of the
// incidence graph with a disjoint set (path halving, union by rank).
// Blocks are ordered by their smallest counter, then button-only blocks.
func split(counters int, buttons []effect.Button) []block {
	n := counters + len(buttons)
	parent := make([]int, n)
	rank := make([]int, n)
	for v := range parent {
		parent[v] = v
	}
	find := func(u int) int {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}
		return u
	}
	union := func(u, v int) {
		ru, rv := find(u), find(v)
		if ru == rv {
			return
		}
		if rank[ru] < rank[rv] {
			ru, rv = rv, ru
		}
		parent[rv] = ru
		if rank[ru] == rank[rv] {
			rank[ru]++
		}
	}

	for j, b := range buttons {
		for _, i := range b.Indices {
			union(i, counters+j)
		}
	}

	index := make(map[int]int)
	var blocks []block
	get := func(root int) *block {
		k, ok := index[root]
		if !ok {
			k = len(blocks)
			index[root] = k
			blocks = append(blocks, block{})
		}
		return &blocks[k]
	}
	for i := 0; i < counters; i++ {
		b := get(find(i))
		b.counters = append(b.counters, i)
	}
	for j := range buttons {
		b := get(find(counters + j))
		b.buttons = append(b.buttons, j)
	}

	return blocks
}

// whole returns the trivial single block covering the full instance.
func whole(counters, buttons int) []block {
	b := block{counters: make([]int, counters), buttons: make([]int, buttons)}
	for i := range b.counters {
		b.counters[i] = i
	}
	for j := range b.buttons {
		b.buttons[j] = j
	}

	return []block{b}
}

// local builds the block's renumbered targets and incidence matrix.
func (b block) local(targets []int, buttons []effect.Button) ([]int, [][]int) {
	pos := make(map[int]int, len(b.counters))
	t := make([]int, len(b.counters))
	for k, i := range b.counters {
		pos[i] = k
		t[k] = targets[i]
	}
	a := make([][]int, len(b.counters))
	for k := range a {
		a[k] = make([]int, len(b.buttons))
	}
	for c, j := range b.buttons {
		for _, i := range buttons[j].Indices {
			if k, ok := pos[i]; ok {
				a[k][c] = 1
			}
		}
	}

	return t, a
}
