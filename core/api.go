// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: search.Space facade over Graph.
// AI-HINT (file):
//   - Actions are Edge values; replaying a path follows Edge.To.
//   - Unknown vertices expand to an empty cursor, so out-of-domain starts
//     simply yield "no path".

package core

import "github.com/katalvlaran/lvsearch/search"

// Space returns g as a search space over vertex IDs with Edge actions.
// Expand snapshots the adjacency of a vertex under the read lock and then
// walks it lazily without holding any lock; edges added later are not seen
// by a cursor already handed out.
func (g *Graph) Space() search.Space[string, Edge] {
	return search.SpaceFunc[string, Edge](g.expand)
}

func (g *Graph) expand(id string) search.Cursor[string, Edge] {
	g.mu.RLock()
	edges := g.adjacency[id]
	g.mu.RUnlock()

	// adjacency slices are append-only, the prefix we captured never changes
	edges = edges[:len(edges):len(edges)]
	pos := 0

	return search.CursorFunc[string, Edge](func() (search.Transition[string, Edge], bool) {
		if pos >= len(edges) {
			return search.Transition[string, Edge]{}, false
		}
		e := edges[pos]
		pos++

		return search.Transition[string, Edge]{Action: e, State: e.To}, true
	})
}
