package search

import "sync"

// Equal returns a Goal satisfied only by states equal to target.
func Equal[S comparable](target S) Goal[S] {
	return GoalFunc[S](func(state S) bool {
		return state == target
	})
}

// Recorder is a Goal that remembers every state it was asked about, in the
// order asked. Wrapped around the goal of a search it reproduces the exact
// evaluation order of the engine: the start state first, then every newly
// discovered state in discovery order.
//
// Recorder is safe for concurrent use, although interleaved searches sharing
// one Recorder produce an interleaved record.
type Recorder[S comparable] struct {
	goal Goal[S]

	mu   sync.Mutex
	seen []S
}

// NewRecorder wraps goal. A nil goal is treated as "never satisfied",
// which is handy to force a full traversal of the reachable set.
func NewRecorder[S comparable](goal Goal[S]) *Recorder[S] {
	return &Recorder[S]{goal: goal}
}

// IsGoal records state and delegates to the wrapped goal.
func (r *Recorder[S]) IsGoal(state S) bool {
	r.mu.Lock()
	r.seen = append(r.seen, state)
	r.mu.Unlock()

	if r.goal == nil {
		return false
	}

	return r.goal.IsGoal(state)
}

// Seen returns a copy of the recorded states in evaluation order.
func (r *Recorder[S]) Seen() []S {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]S, len(r.seen))
	copy(out, r.seen)

	return out
}

// Len returns the number of recorded evaluations.
func (r *Recorder[S]) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.seen)
}

// Reset clears the record so the Recorder can be reused.
func (r *Recorder[S]) Reset() {
	r.mu.Lock()
	r.seen = nil
	r.mu.Unlock()
}
