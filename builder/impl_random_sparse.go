// SPDX-License-Identifier: MIT
// Package: lvsearch/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Model:
//   - Erdős–Rényi-like generator: include each admissible edge independently with prob p.
//   - Undirected: iterate unordered pairs {i,j} with i<j.
//   - Directed: iterate ordered pairs (i,j); allow self-loops iff g.Looped()==true.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//
// Determinism:
//   - Stable edge-trial order: for each i asc, j asc (undirected uses j>i).
//   - Identical graphs for a fixed seed, hence identical search paths.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples a random graph over n
// vertices with independent edge probability p.
// Complexity: O(n²) Bernoulli trials.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) Validate parameters early
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		// 2) Vertices in ascending index order
		if err := addVertices(g, cfg, methodRandomSparse, n); err != nil {
			return err
		}

		// 3) Bernoulli trials in a stable order
		loops := g.Looped()
		directed := g.Directed()
		for i := 0; i < n; i++ {
			j := 0
			if !directed {
				j = i + 1
			}
			for ; j < n; j++ {
				if i == j && !loops {
					continue
				}
				if !trial(cfg, p) {
					continue
				}
				if err := addEdge(g, cfg, methodRandomSparse, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// trial reports whether an edge is kept; p ∈ {0,1} never touches the RNG.
func trial(cfg builderConfig, p float64) bool {
	switch {
	case p <= probMin:
		return false
	case p >= probMax:
		return true
	default:
		return cfg.rng.Float64() < p
	}
}
