package search_test

import (
	"iter"

	"github.com/katalvlaran/lvsearch/search"
)

// countingSpace wraps a space and counts Expand calls per state.
type countingSpace[S comparable, A any] struct {
	inner search.Space[S, A]
	calls map[S]int
}

func newCounting[S comparable, A any](inner search.Space[S, A]) *countingSpace[S, A] {
	return &countingSpace[S, A]{inner: inner, calls: make(map[S]int)}
}

func (c *countingSpace[S, A]) Expand(state S) search.Cursor[S, A] {
	c.calls[state]++
	return c.inner.Expand(state)
}

func (c *countingSpace[S, A]) total() int {
	n := 0
	for _, v := range c.calls {
		n += v
	}

	return n
}

// adjacency is a tiny int graph: state → ordered successors, action = target.
type adjacency map[int][]int

func (g adjacency) Expand(state int) search.Cursor[int, int] {
	ts := make([]search.Transition[int, int], 0, len(g[state]))
	for _, to := range g[state] {
		ts = append(ts, search.Transition[int, int]{Action: to, State: to})
	}

	return search.Transitions(ts...)
}

// naturals is the infinite chain n → n+1.
func naturals() search.Space[int, string] {
	return search.SpaceFunc[int, string](func(n int) search.Cursor[int, string] {
		return search.Transitions(search.Transition[int, string]{Action: "inc", State: n + 1})
	})
}

// infiniteFan yields, from every state n, the unbounded children
// n+1, n+2, ... labelled 0, 1, ...
func infiniteFan() search.Space[int, int] {
	return search.SpaceFunc[int, int](func(n int) search.Cursor[int, int] {
		return search.FromSeq[int, int](func(yield func(int, int) bool) {
			for k := 0; ; k++ {
				if !yield(k, n+k+1) {
					return
				}
			}
		})
	})
}

// stopTracker counts how many pulled sequences were released.
type stopTracker struct {
	started, stopped int
}

// space is a complete tree in heap numbering: n has children
// n*fanout+1 .. n*fanout+fanout, all below limit.
func (s *stopTracker) space(fanout, limit int) search.Space[int, int] {
	return search.SpaceFunc[int, int](func(n int) search.Cursor[int, int] {
		s.started++
		var seq iter.Seq2[int, int] = func(yield func(int, int) bool) {
			defer func() { s.stopped++ }()
			for k := 0; k < fanout && n*fanout+k+1 < limit; k++ {
				if !yield(k, n*fanout+k+1) {
					return
				}
			}
		}

		return search.FromSeq(seq)
	})
}
