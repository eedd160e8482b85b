package builder

import (
	"fmt"

	"github.com/katalvlaran/dijkstar/core"
)

const (
	methodRandomSparse   = "RandomSparse"
	minRandomSparseNodes = 1
)

// RandomSparse builds an Erdős–Rényi style graph over n vertices: each
// ordered pair (i, j), i ≠ j, receives an edge i→j independently with
// probability p. Links here are always one-directional; the one-way option
// does not apply.
//
// p == 0 yields isolated vertices and p == 1 a complete digraph; neither
// needs an RNG. Any 0 < p < 1 requires WithSeed or WithRand.
//
// Complexity: O(n²) trials.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if n < minRandomSparseNodes {
			return fmt.Errorf("%s: n=%d < %d: %w", methodRandomSparse, n, minRandomSparseNodes, ErrTooFewVertices)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("%s: p=%g: %w", methodRandomSparse, p, ErrInvalidProbability)
		}
		if p > 0 && p < 1 && cfg.rng == nil {
			return fmt.Errorf("%s: p=%g: %w", methodRandomSparse, p, ErrNeedRandSource)
		}

		addVertices(g, cfg, n)
		if p == 0 {
			return nil
		}
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				if p < 1 && cfg.rng.Float64() >= p {
					continue
				}
				g.AddEdge(cfg.idFn(i), cfg.idFn(j), cfg.weightFn(cfg.rng))
			}
		}

		return nil
	}
}
