// SPDX-License-Identifier: MIT

// File: view.go
// Role: Non-mutating graph views: the annex overlay used by one search call.
// Policy:
//   - Annex edges shadow base edges for the same ordered pair; they never merge weights.
//   - Nodes present only in the annex expose exactly their annex edges.
//   - Nil base or nil annex behave as empty graphs.
//   - Neither graph is copied or written.

package core

import "iter"

// Overlay is a read-only composition of a base graph and an annex graph.
// It is intended to live for the duration of a single query.
type Overlay[N comparable] struct {
	base  *Graph[N]
	annex *Graph[N]
}

// NewOverlay composes base and annex into an effective adjacency view.
// Complexity: O(1); no edges are copied.
func NewOverlay[N comparable](base, annex *Graph[N]) *Overlay[N] {
	return &Overlay[N]{base: base, annex: annex}
}

// OutEdges yields the effective outgoing edges of n: every annex edge of n,
// followed by every base edge of n whose target the annex does not define.
// It implements Adjacency.
//
// Complexity: O(base out-degree + annex out-degree) per full iteration.
func (o *Overlay[N]) OutEdges(n N) iter.Seq2[N, float64] {
	return func(yield func(N, float64) bool) {
		var annexOut map[N]float64
		if o.annex != nil {
			annexOut = o.annex.out[n]
		}
		for v, w := range annexOut {
			if !yield(v, w) {
				return
			}
		}
		if o.base == nil {
			return
		}
		for v, w := range o.base.out[n] {
			if _, shadowed := annexOut[v]; shadowed {
				continue
			}
			if !yield(v, w) {
				return
			}
		}
	}
}

// Outgoing materializes the effective neighbor→weight mapping of n.
// Unlike Graph.Outgoing it never fails: a node unknown to both graphs
// yields an empty map.
func (o *Overlay[N]) Outgoing(n N) map[N]float64 {
	out := make(map[N]float64)
	for v, w := range o.OutEdges(n) {
		out[v] = w
	}

	return out
}

// HasNode reports whether n is known to the base or the annex.
func (o *Overlay[N]) HasNode(n N) bool {
	return (o.base != nil && o.base.HasNode(n)) || (o.annex != nil && o.annex.HasNode(n))
}
