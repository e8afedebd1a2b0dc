// SPDX-License-Identifier: MIT
// Package: lvsearch/builder
//
// impl_complete.go - Complete(n): every admissible pair linked.
// Directed: ordered pairs (i,j), i≠j. Undirected: unordered pairs i<j.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor for the complete graph K_n.
// Complexity: O(n²).
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		if err := addVertices(g, cfg, methodComplete, n); err != nil {
			return err
		}
		directed := g.Directed()
		for i := 0; i < n; i++ {
			j := 0
			if !directed {
				j = i + 1
			}
			for ; j < n; j++ {
				if i == j {
					continue
				}
				if err := addEdge(g, cfg, methodComplete, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
