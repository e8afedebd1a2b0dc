// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Graph/Edge types, sentinel errors and construction options.
// Concurrency:
//   - A single sync.RWMutex guards vertices, adjacency and counters.
//   - Reads (HasVertex, Neighbors, Space().Expand) take the read lock only.
// Determinism:
//   - Vertices() and Neighbors() follow insertion order; edge IDs are "e1", "e2", ...

package core

import (
	"errors"
	"sync"
)

// Sentinel errors returned by Graph methods. Branch with errors.Is.
var (
	// ErrEmptyVertexID indicates that a vertex ID is the empty string.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates a lookup of an unknown vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLoopNotAllowed indicates a self-loop on a graph built without WithLoops.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge on a graph built
	// without WithMultiEdges.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Edge is one traversable link. In undirected graphs every edge is stored
// twice, once per orientation, sharing the same ID.
// Edge values are comparable and serve as search actions.
type Edge struct {
	ID   string
	From string
	To   string
}

// GraphOption configures a Graph at construction time.
type GraphOption func(g *Graph)

// WithDirected sets whether new edges are one-way (default true).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithLoops permits self-loops (from == to).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// WithMultiEdges permits several edges between the same ordered pair.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// Graph is an adjacency-list graph with string vertex IDs.
// Outgoing edges keep their insertion order, which is the order in which a
// search over Space() tries them.
type Graph struct {
	mu sync.RWMutex

	directed   bool // edges are one-way
	allowLoops bool // allow self-loops
	allowMulti bool // allow parallel edges

	nextEdgeID uint64              // last issued edge number
	edgeCount  int                 // logical edges (a mirrored pair counts once)
	order      []string            // vertex IDs in insertion order
	vertices   map[string]struct{} // vertex set
	adjacency  map[string][]Edge   // vertex ID → outgoing edges, insertion order
	links      map[string]map[string]int
}

// NewGraph creates an empty directed graph and applies opts in order.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		directed:  true,
		vertices:  make(map[string]struct{}),
		adjacency: make(map[string][]Edge),
		links:     make(map[string]map[string]int),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
