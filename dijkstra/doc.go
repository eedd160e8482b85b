// Package dijkstra computes least-cost paths on a directed, weighted core.Graph.
//
// Overview:
//
//   - SingleSourceShortestPaths explores everything reachable from a source and
//     returns a PredecessorMap: for each reached node, the previous node, the
//     weight of the edge used, its effective cost and the cumulative cost.
//   - FindPath runs the same search and extracts one source→destination Path
//     (nodes, edge weights, effective costs, total).
//   - ExtractShortestPath rebuilds a Path from an existing PredecessorMap, so one
//     search can serve many destinations.
//
// Key features:
//
//   - Annex overlay: WithAnnex(a) composes a second graph over the base one for a
//     single query. Annex edges shadow base edges for the same ordered pair and
//     add new ones otherwise. Neither graph is mutated.
//   - Cost adjustment: WithCostAdjuster(h) adds h.AdjustCost(t) to each edge,
//     where t carries the edge being relaxed and the weight of the edge used to
//     reach its tail. This models turn penalties and other state-dependent costs.
//   - Base cost override: WithCostFunc(f) replaces the raw weight with f(t).
//   - Label-correcting: a node improved after expansion is expanded again.
//
// Optimality:
//
//   - Guaranteed when every effective cost (base + adjustment) is non-negative
//     and the adjustment is consistent along path order. The adjuster is a cost
//     modifier, not an A* goal-distance heuristic.
//   - Negative weights are not rejected; results are then best-effort.
//
// Error handling (sentinel errors):
//
//   - ErrNoPath: the destination is unknown to the composed graph or not
//     reachable from the source. Returned as *NoPathError, which names the
//     destination and matches ErrNoPath via errors.Is.
//
// API reference:
//
//	func FindPath[N comparable](
//	    g *core.Graph[N], source, destination N,
//	    opts ...Option[N],
//	) (Path[N], error)
//
//	func SingleSourceShortestPaths[N comparable](
//	    g *core.Graph[N], source N,
//	    opts ...Option[N],
//	) PredecessorMap[N]
//
// Degenerate cases:
//
//   - source == destination: Path{Nodes: [source]}, empty Weights/Costs, Total 0,
//     even if source is unknown.
//   - unknown source: treated as an isolated node reached at cost 0.
//
// Thread safety:
//
//   - A query only reads the graphs. Mutating a graph during a query is a caller
//     error; synchronize externally if graphs are shared.
package dijkstra
