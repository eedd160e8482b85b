// SPDX-License-Identifier: MIT
// Package: dijkstar/builder
//
// api.go - public entry-point for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: constructors never panic; they return sentinel errors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/dijkstar/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate parameters before touching g and
// return sentinel errors rather than panicking.
type Constructor func(g *core.Graph[string], cfg builderConfig) error

// BuildGraph creates an empty graph, resolves the builder configuration from
// bopts, and applies all constructors in order. The first constructor error
// is wrapped with "BuildGraph: %w" and returned.
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: Σ cost of each constructor.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph[string], error) {
	g := core.NewGraph[string]()
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

// link adds u→v, plus v→u unless the configuration is one-way.
// Each direction draws its own weight.
func link(g *core.Graph[string], cfg builderConfig, u, v string) {
	g.AddEdge(u, v, cfg.weightFn(cfg.rng))
	if !cfg.oneWay {
		g.AddEdge(v, u, cfg.weightFn(cfg.rng))
	}
}
