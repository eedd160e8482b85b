// File: methods_clone.go
// Role: Cloning and clearing graph instances.
// Concurrency:
//   - Clone only reads the source graph; the result shares no maps with it.

package core

import "maps"

// Clone returns a deep copy of the Graph: nodes, edges and the incoming index.
//
// Complexity: O(V+E).
func (g *Graph[N]) Clone() *Graph[N] {
	clone := &Graph[N]{
		out:       make(map[N]map[N]float64, len(g.out)),
		in:        make(map[N]map[N]float64, len(g.in)),
		edgeCount: g.edgeCount,
	}
	for n, outs := range g.out {
		clone.out[n] = maps.Clone(outs)
	}
	for n, ins := range g.in {
		clone.in[n] = maps.Clone(ins)
	}

	return clone
}

// Clear removes every node and edge, leaving an empty graph ready for reuse.
// Complexity: O(1) (old maps are left to the GC).
func (g *Graph[N]) Clear() {
	g.out = make(map[N]map[N]float64)
	g.in = make(map[N]map[N]float64)
	g.edgeCount = 0
}
