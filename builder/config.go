// SPDX-License-Identifier: MIT
// Package: lvsearch/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • idFn = DefaultIDFn ("0","1","2",...)
//   • rng  = nil         (pure/deterministic unless seeded)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// Vertex ID strategy: index -> ID.
	idFn IDFn
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
}

// newBuilderConfig applies opts over the defaults, last one wins.
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn: DefaultIDFn,
		rng:  nil,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
