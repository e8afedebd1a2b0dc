// SPDX-License-Identifier: MIT
// Package: lvsearch/builder
//
// impl_star.go - Star(n): hub idFn(0) linked to leaves idFn(1..n-1).
// Directed graphs get both spokes (hub→leaf, leaf→hub).

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/core"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor for a star of n vertices.
// Complexity: O(n).
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		if err := addVertices(g, cfg, methodStar, n); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := addEdge(g, cfg, methodStar, 0, i); err != nil {
				return err
			}
			if g.Directed() {
				if err := addEdge(g, cfg, methodStar, i, 0); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
