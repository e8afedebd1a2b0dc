// Package treespace provides small binary-choice state spaces used by the
// search examples, tests and the lvsearch benchmark.
//
//   - Tree: a bounded complete binary tree over uint64 states. Level d holds
//     states 2^d-1 .. 2^(d+1)-2; Left adds 2^d and Right adds 2^(d+1).
//     States at level MaxDepth have no successors.
//   - ChoiceTree: the two-level tree 0 → {1, 2}, 1 → {3, 4}; every other
//     state is terminal.
package treespace

import (
	"math/bits"

	"github.com/katalvlaran/lvsearch/search"
)

// Dir is a binary choice.
type Dir uint8

const (
	Left Dir = iota
	Right
)

// String implements fmt.Stringer.
func (d Dir) String() string {
	switch d {
	case Left:
		return "Left"
	case Right:
		return "Right"
	default:
		return "Dir(?)"
	}
}

// DefaultMaxDepth is the depth of the benchmark tree (2^17-1 states).
const DefaultMaxDepth = 16

// maxSupportedDepth keeps 1<<(MaxDepth+1) inside uint64.
const maxSupportedDepth = 62

// Tree is a bounded binary tree space. The zero value is a single leaf.
type Tree struct {
	MaxDepth uint
}

// Default returns the benchmark tree of depth DefaultMaxDepth.
func Default() Tree {
	return Tree{MaxDepth: DefaultMaxDepth}
}

// Size returns the number of states in t.
func (t Tree) Size() uint64 {
	return t.limit() - 1
}

func (t Tree) limit() uint64 {
	d := t.MaxDepth
	if d > maxSupportedDepth {
		d = maxSupportedDepth
	}

	return uint64(1) << (d + 1)
}

// Children returns the successors of state, ok == false for a leaf or for
// a state outside the tree.
func (t Tree) Children(state uint64) (left, right uint64, ok bool) {
	if state >= t.Size() {
		return 0, 0, false
	}
	offset := nextPowerOfTwo(state + 2)
	if offset >= t.limit() {
		return 0, 0, false
	}

	return state + offset/2, state + offset, true
}

// Expand implements search.Space.
func (t Tree) Expand(state uint64) search.Cursor[uint64, Dir] {
	left, right, ok := t.Children(state)
	if !ok {
		return search.Empty[uint64, Dir]()
	}

	return search.Transitions(
		search.Transition[uint64, Dir]{Action: Left, State: left},
		search.Transition[uint64, Dir]{Action: Right, State: right},
	)
}

// Depth returns the level of state in the unbounded numbering.
func Depth(state uint64) int {
	return bits.Len64(state+1) - 1
}

// nextPowerOfTwo returns the smallest power of two >= x (x >= 1).
func nextPowerOfTwo(x uint64) uint64 {
	if x <= 1 {
		return 1
	}

	return uint64(1) << bits.Len64(x-1)
}

// ChoiceTree is the two-level scenario space: 0 leads to 1 (Left) and
// 2 (Right), 1 leads to 3 (Left) and 4 (Right), all other states are
// terminal.
type ChoiceTree struct{}

// Expand implements search.Space.
func (ChoiceTree) Expand(state int) search.Cursor[int, Dir] {
	switch state {
	case 0:
		return search.Transitions(
			search.Transition[int, Dir]{Action: Left, State: 1},
			search.Transition[int, Dir]{Action: Right, State: 2},
		)
	case 1:
		return search.Transitions(
			search.Transition[int, Dir]{Action: Left, State: 3},
			search.Transition[int, Dir]{Action: Right, State: 4},
		)
	default:
		return search.Empty[int, Dir]()
	}
}
