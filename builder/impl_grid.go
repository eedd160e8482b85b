// SPDX-License-Identifier: MIT
// Package: dijkstar/builder
//
// impl_grid.go - 4-neighbour rectangular lattice.
//
// Vertex IDs are "r,c" (zero-based row and column); cfg.idFn is not used.
// Emission is row-major: right neighbour first, then the one below.

package builder

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/dijkstar/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// GridID returns the vertex ID used by Grid for cell (r, c).
func GridID(r, c int) string {
	return strconv.Itoa(r) + "," + strconv.Itoa(c)
}

// Grid builds a rows×cols lattice with links between orthogonal neighbours.
// Requires rows ≥ 1 and cols ≥ 1.
//
// Complexity: O(rows*cols) vertices and links.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (min %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				g.AddNode(GridID(r, c))
			}
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					link(g, cfg, GridID(r, c), GridID(r, c+1))
				}
				if r+1 < rows {
					link(g, cfg, GridID(r, c), GridID(r+1, c))
				}
			}
		}

		return nil
	}
}
