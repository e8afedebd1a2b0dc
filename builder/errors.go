// SPDX-License-Identifier: MIT
// Package: lvsearch/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only package-level sentinels are exposed; branch with errors.Is.
//   • Constructors attach context with %w ("Path: n=1 < min=2: ...").
//   • Constructors never panic; option constructors may (programmer error).

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter is below the minimum of
// the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor ran without an
// RNG (use WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a construction failure that is not a
// parameter error, such as a nil constructor.
var ErrConstructFailed = errors.New("builder: construction failed")
