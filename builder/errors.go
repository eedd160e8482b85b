// SPDX-License-Identifier: MIT
// Package: dijkstar/builder
//
// errors.go - sentinel errors for the builder package.
//
// Callers branch with errors.Is(err, ErrX); implementations attach context via %w.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, rows, cols) is smaller
// than the allowed minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor requires an RNG
// (WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that construction could not proceed, e.g. a nil
// constructor was passed to BuildGraph.
var ErrConstructFailed = errors.New("builder: construction failed")
