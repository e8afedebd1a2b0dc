package search

import "fmt"

// Replay applies path to start through the space's own transitions and
// returns the state reached. Each action is matched against the transitions
// offered by the current state, first match wins, which mirrors how Search
// built the path.
//
// Replay returns ErrActionNotFound, along with the last state reached, when
// an action is not offered. It does not terminate if a state offers an
// infinite sequence that never contains the requested action.
func Replay[S comparable, A comparable](space Space[S, A], start S, path []A) (S, error) {
	if space == nil {
		return start, ErrNilSpace
	}

	state := start
	for i, action := range path {
		c := space.Expand(state)
		if c == nil {
			return state, fmt.Errorf("%w: step %d from %v", ErrActionNotFound, i, state)
		}
		next, ok := follow(c, action)
		stopCursor(c)
		if !ok {
			return state, fmt.Errorf("%w: step %d from %v", ErrActionNotFound, i, state)
		}
		state = next
	}

	return state, nil
}

// follow returns the state reached by the first transition labelled action.
func follow[S comparable, A comparable](c Cursor[S, A], action A) (S, bool) {
	for {
		t, ok := c.Next()
		if !ok {
			var zero S
			return zero, false
		}
		if t.Action == action {
			return t.State, true
		}
	}
}
