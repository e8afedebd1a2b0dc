// SPDX-License-Identifier: MIT
// Package: lvsearch/builder
//
// impl_binary_tree.go - BinaryTree(depth): complete binary tree in heap
// numbering, vertex i links to 2i+1 then 2i+2.
//
// Contract:
//   - depth ≥ 1 (else ErrTooFewVertices); 2^(depth+1)-1 vertices.
//   - Left child edge is always added before the right one, so a search
//     tries the left subtree first.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/core"
)

const (
	methodBinaryTree   = "BinaryTree"
	minBinaryTreeDepth = 1
	maxBinaryTreeDepth = 24
)

// BinaryTree returns a Constructor for a complete binary tree of the given
// depth (root at depth 0).
// Complexity: O(2^depth).
func BinaryTree(depth int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if depth < minBinaryTreeDepth {
			return fmt.Errorf("%s: depth=%d < min=%d: %w", methodBinaryTree, depth, minBinaryTreeDepth, ErrTooFewVertices)
		}
		if depth > maxBinaryTreeDepth {
			return fmt.Errorf("%s: depth=%d > max=%d: %w", methodBinaryTree, depth, maxBinaryTreeDepth, ErrConstructFailed)
		}
		n := (1 << (depth + 1)) - 1
		if err := addVertices(g, cfg, methodBinaryTree, n); err != nil {
			return err
		}
		for i := 0; 2*i+2 < n; i++ {
			if err := addEdge(g, cfg, methodBinaryTree, i, 2*i+1); err != nil {
				return err
			}
			if err := addEdge(g, cfg, methodBinaryTree, i, 2*i+2); err != nil {
				return err
			}
		}

		return nil
	}
}
