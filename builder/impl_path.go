// SPDX-License-Identifier: MIT
// Package: lvsearch/builder
//
// impl_path.go - Path(n): 0 → 1 → … → n-1.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor for a simple path of n vertices.
// Complexity: O(n).
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		if err := addVertices(g, cfg, methodPath, n); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := addEdge(g, cfg, methodPath, i-1, i); err != nil {
				return err
			}
		}

		return nil
	}
}
