// Package search implements a lazy, iterative depth-first search over
// abstract state spaces that may be infinite or cyclic.
//
// What:
//
//   - Space: a caller-supplied capability that expands a state into a
//     Cursor over its outgoing (Action, State) transitions, on demand.
//   - Goal: a caller-supplied predicate over states (Equal, GoalFunc,
//     Recorder).
//   - Search / Run: an explicit-stack depth-first walk that pulls one
//     transition at a time from the deepest cursor, never re-expands an
//     already discovered state, and returns the actions leading from the
//     start state to the first goal state it meets.
//
// Why:
//   - The full state graph is never materialized; memory is bounded by
//     path depth times per-cursor state plus the visited set.
//   - Very wide or infinite transition sequences are fine, only one
//     pending transition per depth is held at a time.
//   - Cycles terminate: revisits are checked before descending.
//
// Ordering:
//
//	Transitions are tried in the order the space yields them, and the whole
//	subtree under transition i is exhausted before transition i+1 is pulled.
//	For a deterministic space the returned path is therefore the
//	lexicographically first action sequence (by per-node order) that reaches
//	a goal while respecting revisit avoidance. It is not necessarily the
//	shortest one.
//
// Visited set:
//
//	States are deduplicated by exact equality (map keys). A space that also
//	implements Fingerprinter, for instance one wrapped with Fingerprinted,
//	is deduplicated by a 64-bit fingerprint instead. That trades memory for
//	a collision risk: two distinct states with the same fingerprint are
//	treated as one, which may prune a valid path.
//
// Complexity:
//
//   - Time:   O(V + T) for V discovered states and T pulled transitions.
//   - Memory: O(V) for the visited set, O(D) cursors and actions for depth D.
//
// Errors (Run only):
//
//   - ErrNilSpace, ErrNilGoal     invalid arguments
//   - ErrOptionViolation          invalid Option value
//   - ErrVisitLimit               WithMaxVisited budget exceeded
//   - context.Canceled, ...       WithContext cancellation
//   - hook errors                 propagated from OnDescend
//
// A single call is single-threaded and owns its frontier, path and visited
// set. Several searches may share a Space concurrently only when Expand is
// free of side effects.
package search
