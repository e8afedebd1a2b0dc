// SPDX-License-Identifier: MIT
// Package: lvsearch/builder
//
// options.go — functional options for the builder package.
//
// Contract:
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import "math/rand"

// BuilderOption customizes builderConfig before construction begins.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the vertex ID generator: idx -> string.
// Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithRand provides an explicit RNG for stochastic constructors.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed installs a new *rand.Rand seeded with seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}
