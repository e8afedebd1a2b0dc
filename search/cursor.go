package search

import "iter"

// sliceCursor walks a pre-built slice of transitions.
type sliceCursor[S comparable, A any] struct {
	items []Transition[S, A]
	pos   int
}

// Transitions returns a Cursor over ts, in order.
// The slice is not copied; callers must not modify it while the cursor is live.
func Transitions[S comparable, A any](ts ...Transition[S, A]) Cursor[S, A] {
	return &sliceCursor[S, A]{items: ts}
}

// Empty returns a Cursor with no transitions (a terminal state).
func Empty[S comparable, A any]() Cursor[S, A] {
	return &sliceCursor[S, A]{}
}

func (c *sliceCursor[S, A]) Next() (Transition[S, A], bool) {
	if c.pos >= len(c.items) {
		var zero Transition[S, A]
		return zero, false
	}
	t := c.items[c.pos]
	c.pos++

	return t, true
}

// CursorFunc adapts a generator function to the Cursor interface.
// The function must keep returning ok == false once exhausted.
type CursorFunc[S comparable, A any] func() (Transition[S, A], bool)

// Next calls f().
func (f CursorFunc[S, A]) Next() (Transition[S, A], bool) {
	return f()
}

// seqCursor pulls from a range-over-func sequence.
type seqCursor[S comparable, A any] struct {
	next func() (A, S, bool)
	stop func()
	done bool
}

// FromSeq turns a push-style sequence of (action, state) pairs into a
// Cursor. The sequence is pulled lazily with iter.Pull2; the search stops it
// as soon as the cursor is no longer needed.
func FromSeq[S comparable, A any](seq iter.Seq2[A, S]) Cursor[S, A] {
	next, stop := iter.Pull2(seq)

	return &seqCursor[S, A]{next: next, stop: stop}
}

func (c *seqCursor[S, A]) Next() (Transition[S, A], bool) {
	if c.done {
		var zero Transition[S, A]
		return zero, false
	}
	a, s, ok := c.next()
	if !ok {
		c.Stop()
		var zero Transition[S, A]
		return zero, false
	}

	return Transition[S, A]{Action: a, State: s}, true
}

// Stop releases the underlying pulled sequence. It is safe to call twice.
func (c *seqCursor[S, A]) Stop() {
	if c.done {
		return
	}
	c.done = true
	c.stop()
}

// stopper is implemented by cursors holding resources.
type stopper interface {
	Stop()
}

// stopCursor releases c if it holds resources.
func stopCursor[S comparable, A any](c Cursor[S, A]) {
	if s, ok := c.(stopper); ok {
		s.Stop()
	}
}
