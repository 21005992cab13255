// SPDX-License-Identifier: MIT
// Package: algoviz/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with %w.
//   • Constructors never panic; validation panics are confined to
//     option constructor functions (WithX...).

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter is smaller than the
// allowed minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates that a probability value is outside the
// closed interval [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor requires a non-nil
// *rand.Rand in the resolved builderConfig (WithSeed/WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that construction could not proceed, e.g. a
// nil constructor or a nil target graph.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrBadSize indicates an invalid length for array datasets (n < 1).
var ErrBadSize = errors.New("builder: invalid size/length")

// ErrInvalidRange indicates an empty value range (lo ≥ hi) for array datasets.
var ErrInvalidRange = errors.New("builder: invalid value range")
