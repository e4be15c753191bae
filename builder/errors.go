// SPDX-License-Identifier: MIT
// Package: pathfinder/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context using `%w`.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, rows, cols) is
// smaller than the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1], or an
// inverted probability range.
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor ran without an
// RNG (set WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrBadEdgeList indicates a malformed EdgeList string.
var ErrBadEdgeList = errors.New("builder: malformed edge list")

// ErrConstructFailed indicates a structural failure while assembling a
// graph (nil constructor, core rejection of a vertex or edge).
var ErrConstructFailed = errors.New("builder: construction failed")
