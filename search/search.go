// Package search implements iterative depth-first search over lazy spaces.
// It keeps an explicit stack of cursors, one per state on the current path,
// and a parallel slice of actions, so deep spaces never hit recursion limits
// and a partially expanded state is resumed exactly where it was left.
package search

import (
	"fmt"
	"slices"
)

// walker encapsulates the state of one traversal.
type walker[S comparable, A any] struct {
	space    Space[S, A]    // borrowed, never mutated
	goal     Goal[S]        // borrowed
	opts     Options        // resolved options
	frontier []Cursor[S, A] // one pending cursor per state on the path
	path     []A            // len(path) == len(frontier)-1 while descending
	visited  visitedSet[S]  // discovered states
	res      *Result[A]     // result collector
}

// Search looks for a path from start to a state satisfying goal.
// It returns the actions of the first such path in depth-first order and
// true, or nil and false when every reachable state was explored without
// success. An empty, non-nil path means start itself satisfies goal.
//
// Search never gives up on its own: a space with infinitely many distinct
// reachable states and no goal on the way does not terminate. Use Run with
// WithMaxDepth, WithMaxVisited or WithContext to bound the traversal.
func Search[S comparable, A any](space Space[S, A], start S, goal Goal[S]) ([]A, bool) {
	res, err := Run(space, start, goal)
	if err != nil || !res.Found {
		return nil, false
	}

	return res.Path, true
}

// Run is Search with options and traversal statistics.
// On error the returned Result, when non-nil, holds the statistics gathered
// so far and Found is false.
func Run[S comparable, A any](space Space[S, A], start S, goal Goal[S], opts ...Option) (*Result[A], error) {
	// 1. Validate inputs
	if space == nil {
		return nil, ErrNilSpace
	}
	if goal == nil {
		return nil, ErrNilGoal
	}

	// 2. Apply options
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	res := &Result[A]{}
	if err := o.Ctx.Err(); err != nil {
		return res, err
	}

	// 3. Start already satisfies the goal: nothing is expanded
	res.Visited = 1
	if goal.IsGoal(start) {
		res.Path = []A{}
		res.Found = true

		return res, nil
	}

	// 4. Seed the frontier with the start state
	w := &walker[S, A]{
		space:   space,
		goal:    goal,
		opts:    o,
		visited: newVisitedSet(space),
		res:     res,
	}
	w.visited.visit(start, 0)
	if o.MaxDepth == 0 {
		return res, nil
	}
	if err := w.descend(start); err != nil {
		w.release()
		return res, err
	}

	// 5. Walk
	if err := w.loop(); err != nil {
		w.release()
		return res, err
	}

	return res, nil
}

// loop pulls transitions from the deepest cursor until the goal is found,
// the frontier empties, or the traversal is aborted.
func (w *walker[S, A]) loop() error {
	done := w.opts.Ctx.Done()
	for len(w.frontier) > 0 {
		// cancellation check (once per iteration)
		select {
		case <-done:
			return w.opts.Ctx.Err()
		default:
		}

		t, ok := w.frontier[len(w.frontier)-1].Next()
		if !ok {
			w.backtrack()
			continue
		}

		// already discovered: skipped, unless a depth limit is set and this
		// path reaches the state with more depth budget left than before
		if !w.visited.visit(t.State, w.depthOf(len(w.path)+1)) {
			continue
		}
		w.res.Visited = w.visited.len()
		if w.opts.MaxVisited > 0 && w.res.Visited > w.opts.MaxVisited {
			return fmt.Errorf("%w: %d states", ErrVisitLimit, w.opts.MaxVisited)
		}

		w.path = append(w.path, t.Action)
		if len(w.path) > w.res.MaxDepth {
			w.res.MaxDepth = len(w.path)
		}

		if w.goal.IsGoal(t.State) {
			w.res.Path = slices.Clone(w.path)
			w.res.Found = true
			w.release()

			return nil
		}

		// depth limit: the state is a leaf, undo the move and try siblings
		if w.opts.MaxDepth >= 0 && len(w.path) >= w.opts.MaxDepth {
			w.path = w.path[:len(w.path)-1]
			continue
		}

		if err := w.descend(t.State); err != nil {
			return err
		}
	}

	return nil
}

// depthOf is the key the visited set compares states by. Without a depth
// limit every discovery counts as depth 0, so a state is explored once.
func (w *walker[S, A]) depthOf(depth int) int {
	if w.opts.MaxDepth < 0 {
		return 0
	}

	return depth
}

// descend pushes the expansion cursor of state onto the frontier.
func (w *walker[S, A]) descend(state S) error {
	c := w.space.Expand(state)
	w.res.Expanded++
	if c == nil {
		c = Empty[S, A]()
	}
	w.frontier = append(w.frontier, c)

	if w.opts.OnDescend != nil {
		if err := w.opts.OnDescend(len(w.path)); err != nil {
			return fmt.Errorf("search: OnDescend hook at depth %d: %w", len(w.path), err)
		}
	}

	return nil
}

// backtrack pops the exhausted top record and the move that led to it.
func (w *walker[S, A]) backtrack() {
	top := len(w.frontier) - 1
	stopCursor(w.frontier[top])
	w.frontier[top] = nil
	w.frontier = w.frontier[:top]
	if len(w.path) > 0 {
		w.path = w.path[:len(w.path)-1]
	}
	w.res.Backtracks++

	if w.opts.OnBacktrack != nil {
		w.opts.OnBacktrack(len(w.path))
	}
}

// release stops every cursor still on the frontier.
func (w *walker[S, A]) release() {
	for i := len(w.frontier) - 1; i >= 0; i-- {
		stopCursor(w.frontier[i])
		w.frontier[i] = nil
	}
	w.frontier = w.frontier[:0]
}
