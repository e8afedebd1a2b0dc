// Package core provides a small, thread-safe in-memory Graph that doubles as
// a search.Space.
//
// The Graph G = (V,E) supports:
//
//   - Directed (default) vs. undirected edges (WithDirected)
//   - Self-loops (WithLoops)
//   - Parallel edges / multi-graphs (WithMultiEdges)
//   - Edge IDs generated in order ("e1", "e2", …); an undirected edge and its
//     mirror share one ID
//   - One sync.RWMutex guarding vertices, adjacency and counters
//
// Iteration order is insertion order: Vertices() lists vertices in the order
// they were added, Neighbors() lists a vertex's outgoing edges in the order
// they were linked. Graph.Space() inherits that order, which makes
// depth-first results reproducible for a given construction sequence.
//
// Space() snapshots a vertex's adjacency under the read lock when the vertex
// is expanded, so many searches may run over one graph concurrently. Edges
// added while a search runs are seen only by vertices expanded afterwards.
//
// Errors:
//
//	ErrEmptyVertexID       — empty vertex ID
//	ErrVertexNotFound      — lookup of an unknown vertex
//	ErrLoopNotAllowed      — self-loop without WithLoops
//	ErrMultiEdgeNotAllowed — parallel edge without WithMultiEdges
package core
