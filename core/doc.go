// Package core provides the directed, weighted Graph used by the dijkstar
// shortest-path engine, together with a non-mutating overlay view.
//
// The Graph G = (V,E) is generic over its node identifier type:
//
//   - Nodes are any comparable value (strings, ints, small structs, opaque tokens).
//     The engine only hashes and compares them for equality; it never orders them.
//   - Edges are directed and carry a float64 weight.
//   - At most one edge exists per ordered pair (from, to); AddEdge on an
//     existing pair overwrites its weight.
//   - An incoming-edge index is maintained incrementally on every mutation,
//     so Incoming(v) is O(in-degree) instead of a full scan.
//
// Storage layout:
//
//	out[from][to] = weight   // forward adjacency
//	in[to][from]  = weight   // incoming index, mirror of out
//
// Invariant: for every (u,v,w) in out, in[v][u] == w, and every node that
// appears anywhere has an (possibly empty) bucket in both maps.
//
// Overlay:
//
//	NewOverlay(base, annex) composes two graphs for a single query. Annex edges
//	shadow base edges for the same ordered pair and extend the base otherwise.
//	Neither graph is copied or mutated.
//
// Unknown nodes:
//
//	Outgoing, Incoming and RemoveNode return ErrNodeNotFound for a node that was
//	never registered. The iterator surface (OutEdges, InEdges) yields nothing for
//	unknown nodes instead; the search engine relies on that.
//
// Concurrency:
//
//	Graph carries no internal lock. Mutating a Graph while a query reads it is a
//	caller error; synchronize externally (see internal/server for an example).
//
// Complexity:
//
//	AddNode, AddEdge, RemoveEdge, HasEdge, Edge: O(1) amortized.
//	RemoveNode: O(deg(v)).
//	Outgoing/Incoming: O(deg(v)) (result is a copy).
//	NodeCount/EdgeCount: O(1).
package core
