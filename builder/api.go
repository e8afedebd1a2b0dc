// SPDX-License-Identifier: MIT
// Package: lvsearch/builder
//
// api.go - public entry point for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(gopts, bopts, cons...).
//   - Functional options resolve into an immutable builderConfig.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate parameters first and return wrapped
// sentinel errors, never panics.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with gopts, resolves the builder
// configuration from bopts and applies all constructors in order.
// The first constructor error is returned wrapped as "BuildGraph: %w".
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// addVertices inserts idFn(0..n-1) in ascending order.
func addVertices(g *core.Graph, cfg builderConfig, method string, n int) error {
	for i := 0; i < n; i++ {
		id := cfg.idFn(i)
		if err := g.AddVertex(id); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", method, id, err)
		}
	}

	return nil
}

// addEdge links idFn(i) → idFn(j) with method context on failure.
func addEdge(g *core.Graph, cfg builderConfig, method string, i, j int) error {
	u, v := cfg.idFn(i), cfg.idFn(j)
	if _, err := g.AddEdge(u, v); err != nil {
		return fmt.Errorf("%s: AddEdge(%s→%s): %w", method, u, v, err)
	}

	return nil
}
