package search

// visitedSet remembers discovered states for one traversal, together with
// the shallowest depth each one was reached at.
type visitedSet[S comparable] interface {
	// visit marks s as discovered at depth and reports whether it must be
	// explored: either s is new, or it was only seen deeper than depth.
	visit(s S, depth int) bool
	len() int
}

// exactSet deduplicates by state equality.
type exactSet[S comparable] map[S]int

func (v exactSet[S]) visit(s S, depth int) bool {
	if d, ok := v[s]; ok && d <= depth {
		return false
	}
	v[s] = depth

	return true
}

func (v exactSet[S]) len() int { return len(v) }

// hashedSet deduplicates by a 64-bit fingerprint. Distinct states sharing a
// fingerprint collapse into one entry.
type hashedSet[S comparable] struct {
	fp   func(S) uint64
	seen map[uint64]int
}

func (v *hashedSet[S]) visit(s S, depth int) bool {
	h := v.fp(s)
	if d, ok := v.seen[h]; ok && d <= depth {
		return false
	}
	v.seen[h] = depth

	return true
}

func (v *hashedSet[S]) len() int { return len(v.seen) }

// newVisitedSet picks the fingerprint set when space asks for it.
func newVisitedSet[S comparable, A any](space Space[S, A]) visitedSet[S] {
	if f, ok := space.(Fingerprinter[S]); ok {
		return &hashedSet[S]{fp: f.Fingerprint, seen: make(map[uint64]int)}
	}

	return make(exactSet[S])
}
