// File: methods_vertices.go
// Role: Node lifecycle & queries.
//
// Determinism:
//   - Nodes() and NodeIDs() follow map iteration order; callers that need a
//     stable order must sort (node types are not required to be ordered).
//
// Concurrency:
//   - No internal locking; see doc.go.
package core

import (
	"iter"
	"maps"
	"slices"
)

// AddNode registers n with no outgoing edges if it is absent.
//
// Behavior highlights:
//   - Idempotent: adding an existing node is a no-op and keeps its edges.
//
// Complexity:
//   - Time O(1) amortized, Space O(1).
func (g *Graph[N]) AddNode(n N) {
	if _, ok := g.out[n]; ok {
		return
	}
	g.out[n] = make(map[N]float64)
	g.in[n] = make(map[N]float64)
}

// HasNode reports whether n was registered, explicitly or as an edge endpoint.
// Complexity: O(1).
func (g *Graph[N]) HasNode(n N) bool {
	_, ok := g.out[n]

	return ok
}

// RemoveNode deletes n and every edge incident to it.
//
// Implementation:
//   - Stage 1: Reject unknown nodes (ErrNodeNotFound).
//   - Stage 2: Drop n from the incoming index of each of its successors.
//   - Stage 3: Drop n from the forward map of each of its predecessors.
//   - Stage 4: Delete both buckets of n.
//
// Complexity:
//   - Time O(deg(n)), Space O(1).
func (g *Graph[N]) RemoveNode(n N) error {
	outs, ok := g.out[n]
	if !ok {
		return ErrNodeNotFound
	}

	var v N
	for v = range outs {
		delete(g.in[v], n)
		g.edgeCount--
	}
	var u N
	for u = range g.in[n] { // a self-loop was already dropped from in[n] above
		delete(g.out[u], n)
		g.edgeCount--
	}

	delete(g.out, n)
	delete(g.in, n)

	return nil
}

// Nodes returns an iterator over every known node, in unspecified order.
//
// Notes:
//   - Mutating the graph while ranging over the iterator is not supported.
func (g *Graph[N]) Nodes() iter.Seq[N] {
	return maps.Keys(g.out)
}

// NodeIDs returns a freshly allocated slice holding every known node.
// Complexity: O(V).
func (g *Graph[N]) NodeIDs() []N {
	return slices.Collect(maps.Keys(g.out))
}

// NodeCount returns the number of known nodes.
// Complexity: O(1).
func (g *Graph[N]) NodeCount() int {
	return len(g.out)
}
