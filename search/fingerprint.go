package search

import "github.com/cespare/xxhash/v2"

// Fingerprinter is implemented by spaces that want their states deduplicated
// by a 64-bit fingerprint rather than by equality. This keeps the visited set
// small for large states, at the price of silently pruning a state whose
// fingerprint collides with an earlier one.
type Fingerprinter[S comparable] interface {
	Fingerprint(state S) uint64
}

type fingerprinted[S comparable, A any] struct {
	Space[S, A]
	fn func(S) uint64
}

func (f fingerprinted[S, A]) Fingerprint(state S) uint64 {
	return f.fn(state)
}

// Fingerprinted returns space with fn installed as its Fingerprinter.
// A nil fn returns space unchanged.
func Fingerprinted[S comparable, A any](space Space[S, A], fn func(S) uint64) Space[S, A] {
	if fn == nil {
		return space
	}

	return fingerprinted[S, A]{Space: space, fn: fn}
}

// HashString returns the xxHash64 digest of s.
func HashString(s string) uint64 {
	return xxhash.Sum64String(s)
}

// HashBytes returns the xxHash64 digest of b.
func HashBytes(b []byte) uint64 {
	return xxhash.Sum64(b)
}
