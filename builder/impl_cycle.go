// SPDX-License-Identifier: MIT
// Package: lvsearch/builder
//
// impl_cycle.go - Cycle(n): 0 → 1 → … → n-1 → 0.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor for a ring of n vertices.
// Complexity: O(n).
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		if err := addVertices(g, cfg, methodCycle, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := addEdge(g, cfg, methodCycle, i, (i+1)%n); err != nil {
				return err
			}
		}

		return nil
	}
}
