// File: methods_adjacent.go
// Role: Neighborhood APIs: Outgoing/Incoming (copies) and OutEdges/InEdges (iterators).
// Policy:
//   - Outgoing/Incoming on an unregistered node return ErrNodeNotFound.
//   - OutEdges/InEdges on an unregistered node yield nothing.
//   - Returned maps are independent copies; mutating them does not touch the graph.

package core

import (
	"iter"
	"maps"
)

// Outgoing returns a copy of the neighbor→weight mapping for edges leaving n.
//
// Returns:
//   - map[N]float64: empty (non-nil) if n has no outgoing edges.
//   - error: ErrNodeNotFound if n was never registered.
//
// Complexity: O(out-degree).
func (g *Graph[N]) Outgoing(n N) (map[N]float64, error) {
	outs, ok := g.out[n]
	if !ok {
		return nil, ErrNodeNotFound
	}

	return maps.Clone(outs), nil
}

// Incoming returns a copy of the predecessor→weight mapping for edges ending at n,
// served from the incrementally maintained incoming index.
//
// Returns:
//   - map[N]float64: empty (non-nil) if nothing points at n.
//   - error: ErrNodeNotFound if n was never registered.
//
// Complexity: O(in-degree).
func (g *Graph[N]) Incoming(n N) (map[N]float64, error) {
	ins, ok := g.in[n]
	if !ok {
		return nil, ErrNodeNotFound
	}

	return maps.Clone(ins), nil
}

// OutEdges yields (neighbor, weight) for each edge leaving n without copying.
// It implements Adjacency.
func (g *Graph[N]) OutEdges(n N) iter.Seq2[N, float64] {
	return maps.All(g.out[n]) // nil map for unknown n yields nothing
}

// InEdges yields (predecessor, weight) for each edge ending at n without copying.
func (g *Graph[N]) InEdges(n N) iter.Seq2[N, float64] {
	return maps.All(g.in[n])
}

// OutDegree returns the number of edges leaving n (0 for unknown nodes).
func (g *Graph[N]) OutDegree(n N) int { return len(g.out[n]) }

// InDegree returns the number of edges ending at n (0 for unknown nodes).
func (g *Graph[N]) InDegree(n N) int { return len(g.in[n]) }
