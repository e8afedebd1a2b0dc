package search_test

import (
	"testing"

	"github.com/katalvlaran/lvsearch/builder"
	"github.com/katalvlaran/lvsearch/search"
	"github.com/katalvlaran/lvsearch/treespace"
)

// BenchmarkSearch_BinaryTree searches the depth-16 tree for state 2, the
// right child of the root: the whole left subtree (2^16-1 states) is
// explored first.
func BenchmarkSearch_BinaryTree(b *testing.B) {
	tree := treespace.Default()
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = search.Search[uint64, treespace.Dir](tree, 0, search.Equal[uint64](2))
	}
}

// BenchmarkSearch_BinaryTreeFingerprinted is the same walk with an
// identity fingerprint set.
func BenchmarkSearch_BinaryTreeFingerprinted(b *testing.B) {
	var tree search.Space[uint64, treespace.Dir] = treespace.Default()
	space := search.Fingerprinted(tree, func(s uint64) uint64 { return s })
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = search.Search(space, 0, search.Equal[uint64](2))
	}
}

// BenchmarkSearch_Chain10000 walks a directed chain of 10,000 vertices.
func BenchmarkSearch_Chain10000(b *testing.B) {
	const n = 10000
	g, err := builder.BuildGraph(nil, nil, builder.Path(n))
	if err != nil {
		b.Fatal(err)
	}
	space := g.Space()
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = search.Search(space, "0", search.Equal("9999"))
	}
}
