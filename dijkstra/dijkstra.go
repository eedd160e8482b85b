// SPDX-License-Identifier: MIT

// Package dijkstra implements a generalized Dijkstra / label-correcting search
// over a core.Graph optionally composed with an annex overlay.
//
// Complexity (non-negative effective costs):
//
//   - Time:  O((V + E) log V)
//   - Each relaxation may push one heap entry (up to E pushes).
//   - Each heap operation costs O(log N), N ≤ V + E.
//   - Space: O(V + E)
//   - O(V) for the predecessor map.
//   - O(E) worst-case heap entries under lazy decrease-key.
//
// Notes on implementation choices:
//
//   - Lazy decrease-key: improved nodes are pushed again; stale entries are
//     recognized by a per-node sequence stamp and dropped when popped.
//   - Label-correcting: a node whose total improves after its expansion is
//     expanded again, so adjusters that read the previous edge stay consistent.
//   - Equal priorities pop in push order (FIFO), giving a consistent tie-break.
//   - Weights are not validated. With negative effective costs the result is
//     not guaranteed optimal, and a negative cycle keeps the search running.
package dijkstra

import (
	"container/heap"

	"github.com/katalvlaran/dijkstar/core"
)

// SingleSourceShortestPaths explores everything reachable from source and
// returns the predecessor record of each reached node.
//
// Returns:
//
//   - PredecessorMap: keys are exactly the reachable nodes; the source maps to
//     a record with Root == true. An unknown source yields a map holding only
//     the source itself.
//
// Options customization:
//
//   - WithAnnex(a): search the overlay of g and a instead of g alone.
//   - WithCostAdjuster(h): add h.AdjustCost(...) to every edge cost.
//   - WithCostFunc(f): use f(...) instead of the raw edge weight.
//
// A nil g is treated as an empty graph.
func SingleSourceShortestPaths[N comparable](g *core.Graph[N], source N, opts ...Option[N]) PredecessorMap[N] {
	// 1) Build Options
	cfg := DefaultOptions[N]()
	var opt Option[N]
	for _, opt = range opts {
		opt(&cfg)
	}

	// 2) Pick the adjacency view: plain graph or overlay.
	var adj core.Adjacency[N]
	if cfg.Annex != nil || g == nil {
		adj = core.NewOverlay(g, cfg.Annex)
	} else {
		adj = g
	}

	// 3) Run.
	r := newRunner(adj, cfg, source)
	r.process()

	return r.preds
}

// runner holds the mutable state for a single search execution.
type runner[N comparable] struct {
	adj     core.Adjacency[N] // effective adjacency; read-only
	options Options[N]        // cost hooks
	source  N                 // search root
	preds   PredecessorMap[N] // node → best known record
	stamp   map[N]uint64      // node → seq of the heap entry matching preds[node]
	seq     uint64            // monotonically increasing push counter
	pq      nodePQ[N]         // min-heap ordered by (cost, seq)
}

// newRunner seeds the predecessor map and the frontier with the source at cost 0.
func newRunner[N comparable](adj core.Adjacency[N], cfg Options[N], source N) *runner[N] {
	r := &runner[N]{
		adj:     adj,
		options: cfg,
		source:  source,
		preds:   make(PredecessorMap[N]),
		stamp:   make(map[N]uint64),
	}
	r.preds[source] = Predecessor[N]{Root: true}
	heap.Init(&r.pq)
	r.push(source, 0)

	return r
}

// push stamps node with a fresh sequence number and queues it at cost.
func (r *runner[N]) push(node N, cost float64) {
	r.seq++
	r.stamp[node] = r.seq
	heap.Push(&r.pq, &nodeItem[N]{id: node, cost: cost, seq: r.seq})
}

// process drains the frontier. Entries whose stamp no longer matches the
// node's current record are stale and skipped.
func (r *runner[N]) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem[N])
		if r.stamp[item.id] != item.seq {
			continue
		}
		r.relax(item.id)
	}
}

// relax examines every effective out-edge of u and records strict improvements.
func (r *runner[N]) relax(u N) {
	from := r.preds[u]
	t := Transition[N]{
		From:       u,
		PrevWeight: from.Weight,
		HasPrev:    !from.Root,
	}

	var candidate float64
	for v, w := range r.adj.OutEdges(u) {
		// The source keeps its root record.
		if v == r.source {
			continue
		}

		t.To = v
		t.Weight = w
		step := r.cost(t)
		candidate = from.Total + step

		if known, seen := r.preds[v]; seen && candidate >= known.Total {
			continue
		}

		r.preds[v] = Predecessor[N]{Node: u, Weight: w, Cost: step, Total: candidate}
		r.push(v, candidate)
	}
}

// cost returns the effective cost of the transition: base cost plus adjustment.
func (r *runner[N]) cost(t Transition[N]) float64 {
	c := t.Weight
	if r.options.Cost != nil {
		c = r.options.Cost(t)
	}
	if r.options.Adjuster != nil {
		c += r.options.Adjuster.AdjustCost(t)
	}

	return c
}

// nodeItem is a frontier entry: a node, the total it was queued with and its push sequence.
type nodeItem[N comparable] struct {
	id   N
	cost float64
	seq  uint64
}

// nodePQ is a min-heap of *nodeItem ordered by cost, then by seq (FIFO on ties).
type nodePQ[N comparable] []*nodeItem[N]

// Len returns the number of items in the heap.
func (pq nodePQ[N]) Len() int { return len(pq) }

// Less orders by cost ascending, then by push order.
func (pq nodePQ[N]) Less(i, j int) bool {
	if pq[i].cost != pq[j].cost {
		return pq[i].cost < pq[j].cost
	}

	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq nodePQ[N]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap. x must be a *nodeItem.
func (pq *nodePQ[N]) Push(x any) { *pq = append(*pq, x.(*nodeItem[N])) }

// Pop removes and returns the last element; heap.Pop has already moved the minimum there.
func (pq *nodePQ[N]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
