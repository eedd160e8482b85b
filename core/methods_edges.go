// SPDX-License-Identifier: MIT

// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/SetOutgoing/RemoveEdge/HasEdge/Edge/Edges/EdgeCount.
// Invariants:
//   - out[u][v] == in[v][u] for every stored edge.
//   - Both endpoints of a stored edge are registered nodes.
// Concurrency:
//   - No internal locking; see doc.go.

package core

import "iter"

// AddEdge inserts or overwrites the directed edge u→v with weight w.
//
// Steps:
//  1. Ensure u and v exist (AddNode).
//  2. Count the pair if it is new.
//  3. Write out[u][v] and mirror into in[v][u].
//
// Weights are stored as given; negative values are not rejected.
// Complexity: O(1) amortized.
func (g *Graph[N]) AddEdge(u, v N, w float64) {
	g.AddNode(u)
	g.AddNode(v)

	if _, exists := g.out[u][v]; !exists {
		g.edgeCount++
	}
	g.out[u][v] = w
	g.in[v][u] = w
}

// SetOutgoing replaces every outgoing edge of n with the given neighbor→weight
// mapping. n is created if absent; a nil or empty mapping leaves n with no
// outgoing edges. The incoming index of former and new targets is updated.
//
// Complexity: O(old out-degree + len(edges)).
func (g *Graph[N]) SetOutgoing(n N, edges map[N]float64) {
	g.AddNode(n)

	var v N
	for v = range g.out[n] {
		delete(g.in[v], n)
		g.edgeCount--
	}
	g.out[n] = make(map[N]float64, len(edges))

	var w float64
	for v, w = range edges {
		g.AddEdge(n, v, w)
	}
}

// RemoveEdge deletes the edge u→v.
// Returns ErrEdgeNotFound if no such edge exists. Endpoints stay registered.
// Complexity: O(1).
func (g *Graph[N]) RemoveEdge(u, v N) error {
	if _, ok := g.out[u][v]; !ok {
		return ErrEdgeNotFound
	}
	delete(g.out[u], v)
	delete(g.in[v], u)
	g.edgeCount--

	return nil
}

// HasEdge reports whether the edge u→v exists.
// Complexity: O(1).
func (g *Graph[N]) HasEdge(u, v N) bool {
	_, ok := g.out[u][v]

	return ok
}

// Edge returns the weight of u→v, or ErrEdgeNotFound.
// Complexity: O(1).
func (g *Graph[N]) Edge(u, v N) (float64, error) {
	w, ok := g.out[u][v]
	if !ok {
		return 0, ErrEdgeNotFound
	}

	return w, nil
}

// Edges returns an iterator over every edge, in unspecified order.
// Complexity: O(V+E) to exhaust.
func (g *Graph[N]) Edges() iter.Seq[Edge[N]] {
	return func(yield func(Edge[N]) bool) {
		for u, outs := range g.out {
			for v, w := range outs {
				if !yield(Edge[N]{From: u, To: v, Weight: w}) {
					return
				}
			}
		}
	}
}

// EdgeCount returns the number of distinct directed edges.
// Complexity: O(1).
func (g *Graph[N]) EdgeCount() int {
	return g.edgeCount
}
