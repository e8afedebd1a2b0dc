// SPDX-License-Identifier: MIT
//
// File: methods.go
// Role: Vertex and edge lifecycle plus read-only queries.
// Concurrency:
//   - Mutations under the write lock, queries under the read lock.

package core

import "strconv"

// edgeIDPrefix keeps IDs human-readable ("e1", "e2", ...).
const edgeIDPrefix = 'e'

// AddVertex inserts id if absent. Adding an existing vertex is a no-op.
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.addVertexLocked(id)

	return nil
}

func (g *Graph) addVertexLocked(id string) {
	if _, ok := g.vertices[id]; ok {
		return
	}
	g.vertices[id] = struct{}{}
	g.order = append(g.order, id)
}

// HasVertex reports whether id exists.
func (g *Graph) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// AddEdge links from → to, creating missing endpoints, and returns the new
// edge ID. Undirected graphs also store the mirrored orientation.
//
// Steps:
//  1. Validate IDs and the loop policy.
//  2. Lock, ensure endpoints, check the multi-edge policy.
//  3. Issue the next ID and append to the adjacency of from (and to).
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string) (string, error) {
	// 1) Input validation
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}

	// 2) Insert under lock
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.allowMulti && (g.links[from][to] > 0 || (!g.directed && g.links[to][from] > 0)) {
		return "", ErrMultiEdgeNotAllowed
	}
	g.addVertexLocked(from)
	g.addVertexLocked(to)

	// 3) Issue ID and link adjacency
	g.nextEdgeID++
	eid := string(strconv.AppendUint([]byte{edgeIDPrefix}, g.nextEdgeID, 10))

	g.link(Edge{ID: eid, From: from, To: to})
	if !g.directed && from != to {
		g.link(Edge{ID: eid, From: to, To: from})
	}
	g.edgeCount++

	return eid, nil
}

// link appends e to the adjacency of e.From. Caller holds the write lock.
func (g *Graph) link(e Edge) {
	g.adjacency[e.From] = append(g.adjacency[e.From], e)
	inner, ok := g.links[e.From]
	if !ok {
		inner = make(map[string]int)
		g.links[e.From] = inner
	}
	inner[e.To]++
}

// HasEdge reports whether an edge from → to exists (either orientation in
// undirected graphs).
func (g *Graph) HasEdge(from, to string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.links[from][to] > 0
}

// Neighbors returns a copy of the outgoing edges of id in insertion order.
func (g *Graph) Neighbors(id string) ([]Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.mu.RLock()
	defer g.mu.RUnlock()
	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}
	out := make([]Edge, len(g.adjacency[id]))
	copy(out, g.adjacency[id])

	return out, nil
}

// Vertices returns vertex IDs in insertion order.
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]string, len(g.order))
	copy(out, g.order)

	return out
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.order)
}

// EdgeCount returns the number of logical edges (mirrors count once).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// Directed reports whether edges are one-way.
func (g *Graph) Directed() bool {
	return g.directed
}

// Looped reports whether self-loops are permitted.
func (g *Graph) Looped() bool {
	return g.allowLoops
}
