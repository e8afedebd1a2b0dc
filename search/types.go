// Package search defines the capability interfaces, options and result
// types for depth-first search over lazy state spaces.
package search

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrNilSpace is returned when a nil Space is passed to Run or Replay.
	ErrNilSpace = errors.New("search: space is nil")

	// ErrNilGoal is returned when a nil Goal is passed to Run.
	ErrNilGoal = errors.New("search: goal is nil")

	// ErrOptionViolation is returned when an invalid Option was supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrVisitLimit indicates that the WithMaxVisited budget was exhausted
	// before the goal was found or the space was exhausted.
	ErrVisitLimit = errors.New("search: visited state limit reached")

	// ErrActionNotFound is returned by Replay when an action of the path is
	// not offered by the expansion of the state it is applied to.
	ErrActionNotFound = errors.New("search: action not offered by state")
)

// Transition is a single step of a space: taking Action from the expanded
// state leads to State.
type Transition[S comparable, A any] struct {
	Action A
	State  S
}

// Cursor is a pull-based, possibly infinite sequence of transitions.
// Next returns the next transition, or ok == false once the sequence is
// exhausted. After exhaustion Next keeps returning ok == false.
//
// A Cursor that also has a Stop() method is stopped when the search no
// longer needs it (exhausted, goal found, or aborted).
type Cursor[S comparable, A any] interface {
	Next() (t Transition[S, A], ok bool)
}

// Space expands a state into its outgoing transitions.
// Expand is called at most once per distinct discovered state and must not
// mutate shared data when the space is used by concurrent searches.
type Space[S comparable, A any] interface {
	Expand(state S) Cursor[S, A]
}

// SpaceFunc adapts an ordinary function to the Space interface.
type SpaceFunc[S comparable, A any] func(state S) Cursor[S, A]

// Expand calls f(state).
func (f SpaceFunc[S, A]) Expand(state S) Cursor[S, A] {
	return f(state)
}

// Goal reports whether a state satisfies the search objective.
type Goal[S comparable] interface {
	IsGoal(state S) bool
}

// GoalFunc adapts an ordinary predicate to the Goal interface.
type GoalFunc[S comparable] func(state S) bool

// IsGoal calls f(state).
func (f GoalFunc[S]) IsGoal(state S) bool {
	return f(state)
}

// Option configures optional behavior of Run.
// Invalid values are recorded and surfaced as ErrOptionViolation by Run.
type Option func(*Options)

// Options holds the tunables of a Run call.
type Options struct {
	// Ctx allows cancellation or deadlines; defaults to context.Background().
	// It is checked once per loop iteration.
	Ctx context.Context

	// MaxDepth, if non-negative, stops expansion of states whose path length
	// equals MaxDepth. Those states are still goal-tested. A state reached
	// again by a shorter path is explored again from that depth, so every
	// path of length <= MaxDepth is covered. Default is -1.
	MaxDepth int

	// MaxVisited, if positive, bounds the number of discovered states
	// (start included). Exceeding it aborts with ErrVisitLimit. Default is 0.
	MaxVisited int

	// OnDescend, if non-nil, is invoked after a new frontier record is pushed
	// with the new path length. Returning an error aborts the search.
	OnDescend func(depth int) error

	// OnBacktrack, if non-nil, is invoked after an exhausted frontier record
	// is popped, with the path length after the pop.
	OnBacktrack func(depth int)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - Background context
//   - no depth limit (MaxDepth = -1)
//   - no visit budget (MaxVisited = 0)
//   - no hooks
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		MaxDepth:   -1,
		MaxVisited: 0,
	}
}

// WithContext sets the Context used for cancellation.
// Passing a nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth bounds the search depth. States at depth d are goal-tested
// but never expanded, so a depth of 0 only tests the start state.
// A state first met near the limit and later by a shorter path is explored
// again, which keeps the bounded search complete up to depth d.
//
//	d >= 0: limit to depth d
//	d < 0:  invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithMaxVisited bounds the number of discovered states.
// n must be positive, otherwise Run returns ErrOptionViolation.
func WithMaxVisited(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: MaxVisited must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxVisited = n
	}
}

// WithOnDescend installs fn as a hook called after each descent.
func WithOnDescend(fn func(depth int) error) Option {
	return func(o *Options) {
		o.OnDescend = fn
	}
}

// WithOnBacktrack installs fn as a hook called after each backtrack.
func WithOnBacktrack(fn func(depth int)) Option {
	return func(o *Options) {
		o.OnBacktrack = fn
	}
}

// Result captures the outcome of a Run call.
type Result[A any] struct {
	// Path holds the actions from the start state to the goal state.
	// It is nil when Found is false and empty (non-nil) when the start
	// state is itself a goal.
	Path []A

	// Found reports whether a goal state was reached.
	Found bool

	// Visited counts discovered states, the start state included.
	Visited int

	// Expanded counts calls to Space.Expand.
	Expanded int

	// Backtracks counts popped frontier records.
	Backtracks int

	// MaxDepth is the longest path length reached during the traversal.
	MaxDepth int
}
