package builder

import (
	"fmt"

	"github.com/katalvlaran/dijkstar/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete links every unordered pair {i, j}, i < j, of n vertices.
// One-way mode keeps only i→j, which yields a DAG. Requires n ≥ 1.
func Complete(n int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < %d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		addVertices(g, cfg, n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				link(g, cfg, cfg.idFn(i), cfg.idFn(j))
			}
		}

		return nil
	}
}
