// SPDX-License-Identifier: MIT
// Package: dijkstar/builder
//
// impl_path.go - linear and radial topologies: Path, Cycle, Star.
//
// Vertices are emitted in index order 0..n-1 and named by cfg.idFn.

package builder

import (
	"fmt"

	"github.com/katalvlaran/dijkstar/core"
)

const (
	methodPath  = "Path"
	methodCycle = "Cycle"
	methodStar  = "Star"

	minPathNodes  = 2
	minCycleNodes = 3
	minStarNodes  = 2
)

// Path links n vertices in a chain: 0-1, 1-2, ..., (n-2)-(n-1).
// Requires n ≥ 2.
func Path(n int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < %d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		addVertices(g, cfg, n)
		for i := 0; i < n-1; i++ {
			link(g, cfg, cfg.idFn(i), cfg.idFn(i+1))
		}

		return nil
	}
}

// Cycle is Path(n) closed by an extra link (n-1)-0. Requires n ≥ 3.
func Cycle(n int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < %d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		addVertices(g, cfg, n)
		for i := 0; i < n; i++ {
			link(g, cfg, cfg.idFn(i), cfg.idFn((i+1)%n))
		}

		return nil
	}
}

// Star links the hub (index 0) to each of the n-1 leaves. Requires n ≥ 2.
func Star(n int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < %d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		addVertices(g, cfg, n)
		hub := cfg.idFn(0)
		for i := 1; i < n; i++ {
			link(g, cfg, hub, cfg.idFn(i))
		}

		return nil
	}
}

func addVertices(g *core.Graph[string], cfg builderConfig, n int) {
	for i := 0; i < n; i++ {
		g.AddNode(cfg.idFn(i))
	}
}
