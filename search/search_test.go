package search_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsearch/search"
	"github.com/katalvlaran/lvsearch/treespace"
)

func TestSearch_ChoiceTree(t *testing.T) {
	L, R := treespace.Left, treespace.Right
	cases := []struct {
		name  string
		start int
		goal  int
		want  []treespace.Dir
		found bool
	}{
		{"StartIsGoal", 0, 0, []treespace.Dir{}, true},
		{"Left", 0, 1, []treespace.Dir{L}, true},
		{"Right", 0, 2, []treespace.Dir{R}, true},
		{"LeftLeft", 0, 3, []treespace.Dir{L, L}, true},
		{"LeftRight", 0, 4, []treespace.Dir{L, R}, true},
		{"TerminalStartIsGoal", 2, 2, []treespace.Dir{}, true},
		{"OutOfDomainStart", 5, 0, nil, false},
		{"UnreachableFromLeaf", 2, 0, nil, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path, ok := search.Search[int, treespace.Dir](treespace.ChoiceTree{}, tc.start, search.Equal(tc.goal))
			assert.Equal(t, tc.found, ok)
			assert.Equal(t, tc.want, path)
		})
	}
}

func TestSearch_StartIsGoal_NoExpansion(t *testing.T) {
	space := newCounting[int, treespace.Dir](treespace.ChoiceTree{})
	path, ok := search.Search[int, treespace.Dir](space, 0, search.Equal(0))
	require.True(t, ok)
	assert.NotNil(t, path, "empty path must be non-nil")
	assert.Empty(t, path)
	assert.Zero(t, space.total(), "no state may be expanded")
}

func TestSearch_SelfLoopTerminates(t *testing.T) {
	space := adjacency{0: {0}}
	path, ok := search.Search[int, int](space, 0, search.Equal(1))
	assert.False(t, ok)
	assert.Nil(t, path)
}

func TestSearch_CycleTerminates(t *testing.T) {
	space := newCounting[int, int](adjacency{0: {1}, 1: {2}, 2: {0, 3}, 3: {1}})
	_, ok := search.Search[int, int](space, 0, search.Equal(99))
	assert.False(t, ok)
	for s, n := range space.calls {
		assert.Equal(t, 1, n, "state %d expanded more than once", s)
	}
	assert.Len(t, space.calls, 4)
}

func TestSearch_FirstBranchPreference(t *testing.T) {
	// 0 reaches 3 both through 1 (first) and directly (second).
	space := adjacency{0: {1, 3}, 1: {2}, 2: {3}}
	path, ok := search.Search[int, int](space, 0, search.Equal(3))
	require.True(t, ok)
	assert.Equal(t, []int{1, 2, 3}, path, "depth-first order, not shortest")
}

func TestSearch_VisitedStatesAreSkipped(t *testing.T) {
	// 2 is discovered under 1, so the later 0→2 edge is ignored and the
	// subtree of 2 is not explored twice.
	space := newCounting[int, int](adjacency{0: {1, 2}, 1: {2}, 2: {4}})
	path, ok := search.Search[int, int](space, 0, search.Equal(4))
	require.True(t, ok)
	assert.Equal(t, []int{1, 2, 4}, path)
	assert.Equal(t, 1, space.calls[2])
}

func TestSearch_InfiniteChain(t *testing.T) {
	path, ok := search.Search(naturals(), 0, search.Equal(10))
	require.True(t, ok)
	assert.Len(t, path, 10)
}

func TestSearch_InfiniteFanout(t *testing.T) {
	// the leftmost branch 0→1→2→… hits 5 after five moves
	path, ok := search.Search(infiniteFan(), 0, search.Equal(5))
	require.True(t, ok)
	assert.Equal(t, []int{0, 0, 0, 0, 0}, path)
}

func TestSearch_PathIsSnapshot(t *testing.T) {
	space := adjacency{0: {1}, 1: {2}}
	first, ok := search.Search[int, int](space, 0, search.Equal(2))
	require.True(t, ok)
	first[0] = 42

	second, ok := search.Search[int, int](space, 0, search.Equal(2))
	require.True(t, ok)
	assert.Equal(t, []int{1, 2}, second)
}

func TestSearch_NilArguments(t *testing.T) {
	path, ok := search.Search[int, int](nil, 0, search.Equal(0))
	assert.False(t, ok)
	assert.Nil(t, path)

	_, err := search.Run[int, int](adjacency{}, 0, nil)
	assert.ErrorIs(t, err, search.ErrNilGoal)
	_, err = search.Run[int, int](nil, 0, search.Equal(0))
	assert.ErrorIs(t, err, search.ErrNilSpace)
}

func TestSearch_NilCursorIsTerminal(t *testing.T) {
	space := search.SpaceFunc[int, int](func(int) search.Cursor[int, int] { return nil })
	_, ok := search.Search[int, int](space, 0, search.Equal(1))
	assert.False(t, ok)
}

func TestRun_Stats(t *testing.T) {
	res, err := search.Run[int, treespace.Dir](treespace.ChoiceTree{}, 0, search.Equal(2))
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, []treespace.Dir{treespace.Right}, res.Path)
	// 0, 1, 3, 4 then 2
	assert.Equal(t, 5, res.Visited)
	// 0, 1, 3, 4 are expanded; 2 is the goal
	assert.Equal(t, 4, res.Expanded)
	// 3, 4 and 1 are exhausted
	assert.Equal(t, 3, res.Backtracks)
	assert.Equal(t, 2, res.MaxDepth)
}

func TestRun_NotFoundStats(t *testing.T) {
	res, err := search.Run[int, treespace.Dir](treespace.ChoiceTree{}, 0, search.Equal(7))
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Nil(t, res.Path)
	assert.Equal(t, 5, res.Visited)
	assert.Equal(t, 5, res.Expanded)
	assert.Equal(t, 5, res.Backtracks, "every record is popped, the root included")
}

func TestRun_MaxDepth(t *testing.T) {
	res, err := search.Run[int, treespace.Dir](treespace.ChoiceTree{}, 0, search.Equal(3), search.WithMaxDepth(1))
	require.NoError(t, err)
	assert.False(t, res.Found, "3 lies at depth 2")
	assert.Equal(t, 1, res.Expanded, "only the root is expanded")

	res, err = search.Run[int, treespace.Dir](treespace.ChoiceTree{}, 0, search.Equal(2), search.WithMaxDepth(1))
	require.NoError(t, err)
	assert.True(t, res.Found, "states at the limit are still goal-tested")

	res, err = search.Run[int, treespace.Dir](treespace.ChoiceTree{}, 0, search.Equal(1), search.WithMaxDepth(0))
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Zero(t, res.Expanded)
}

func TestRun_MaxDepthRevisitsShallowerPath(t *testing.T) {
	// 3 is met first at depth 2 via 1, where it cannot be expanded;
	// the direct edge 0 → 3 must still lead to 4 within the limit.
	g := adjacency{0: {1, 3}, 1: {3}, 3: {4}}
	res, err := search.Run[int, int](g, 0, search.Equal(4), search.WithMaxDepth(2))
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, []int{3, 4}, res.Path)
	assert.Equal(t, 4, res.Visited, "re-reaching 3 does not count it twice")

	res, err = search.Run[int, int](g, 0, search.Equal(4), search.WithMaxDepth(1))
	require.NoError(t, err)
	assert.False(t, res.Found)
}

func TestRun_MaxDepthBoundsInfiniteSpace(t *testing.T) {
	res, err := search.Run(naturals(), 0, search.Equal(-1), search.WithMaxDepth(50))
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Equal(t, 50, res.MaxDepth)
	assert.Equal(t, 51, res.Visited)
}

func TestRun_MaxVisited(t *testing.T) {
	res, err := search.Run(naturals(), 0, search.Equal(-1), search.WithMaxVisited(100))
	assert.ErrorIs(t, err, search.ErrVisitLimit)
	require.NotNil(t, res)
	assert.False(t, res.Found)
	assert.Equal(t, 101, res.Visited)
}

func TestRun_OptionViolation(t *testing.T) {
	_, err := search.Run[int, int](adjacency{}, 0, search.Equal(0), search.WithMaxDepth(-1))
	assert.ErrorIs(t, err, search.ErrOptionViolation)
	_, err = search.Run[int, int](adjacency{}, 0, search.Equal(0), search.WithMaxVisited(0))
	assert.ErrorIs(t, err, search.ErrOptionViolation)
}

func TestRun_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := search.Run(naturals(), 0, search.Equal(-1), search.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, res)
	assert.False(t, res.Found)
}

func TestRun_CancelFromHook(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	res, err := search.Run(naturals(), 0, search.Equal(-1),
		search.WithContext(ctx),
		search.WithOnDescend(func(depth int) error {
			if depth == 20 {
				cancel()
			}
			return nil
		}),
	)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 20, res.MaxDepth)
}

func TestRun_Hooks(t *testing.T) {
	var descents, backtracks []int
	_, err := search.Run[int, treespace.Dir](treespace.ChoiceTree{}, 0, search.Equal(2),
		search.WithOnDescend(func(depth int) error {
			descents = append(descents, depth)
			return nil
		}),
		search.WithOnBacktrack(func(depth int) {
			backtracks = append(backtracks, depth)
		}),
	)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 2}, descents)
	assert.Equal(t, []int{1, 1, 0}, backtracks)
}

func TestRun_DescendHookError(t *testing.T) {
	stop := errors.New("stop here")
	res, err := search.Run[int, treespace.Dir](treespace.ChoiceTree{}, 0, search.Equal(4),
		search.WithOnDescend(func(depth int) error {
			if depth == 1 {
				return stop
			}
			return nil
		}),
	)
	assert.ErrorIs(t, err, stop)
	assert.ErrorContains(t, err, "OnDescend hook at depth 1")
	assert.False(t, res.Found)
}

func TestRun_StopsPulledCursors(t *testing.T) {
	var tr stopTracker
	// ternary tree 0; 1..3; 4..12
	res, err := search.Run(tr.space(3, 13), 0, search.Equal(5))
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Equal(t, []int{0, 1}, res.Path)
	assert.Equal(t, tr.started, tr.stopped, "every cursor is released")

	tr = stopTracker{}
	_, err = search.Run(tr.space(3, 1000), 0, search.Equal(-1), search.WithMaxDepth(3))
	require.NoError(t, err)
	assert.Equal(t, tr.started, tr.stopped)
}

func TestFingerprinted_CollisionPrunes(t *testing.T) {
	space := adjacency{0: {1, 2}, 1: {3}}
	path, ok := search.Search[int, int](space, 0, search.Equal(2))
	require.True(t, ok)
	assert.Equal(t, []int{2}, path)

	// parity fingerprint: 2 collides with the start state 0
	parity := search.Fingerprinted[int, int](space, func(s int) uint64 { return uint64(s % 2) })
	_, ok = search.Search(parity, 0, search.Equal(2))
	assert.False(t, ok, "a colliding state is treated as visited")
}

func TestFingerprinted_NilFuncKeepsExact(t *testing.T) {
	space := adjacency{0: {1, 2}}
	same := search.Fingerprinted[int, int](space, nil)
	_, ok := same.(search.Fingerprinter[int])
	assert.False(t, ok)
}

func TestHash(t *testing.T) {
	assert.Equal(t, search.HashString("abc"), search.HashBytes([]byte("abc")))
	assert.NotEqual(t, search.HashString("abc"), search.HashString("abd"))
}
