// Package core defines the generic Graph type, its sentinel errors and the
// Adjacency contract consumed by the search engine.
//
// Errors:
//
//	ErrNodeNotFound - requested node was never registered.
//	ErrEdgeNotFound - requested ordered pair has no edge.
package core

import (
	"errors"
	"iter"
)

// Sentinel errors for core graph operations.
var (
	// ErrNodeNotFound indicates an operation referenced a node that was never registered.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeNotFound indicates an operation referenced a (from, to) pair with no edge.
	ErrEdgeNotFound = errors.New("core: edge not found")
)

// Edge is a read-only snapshot of one directed edge.
type Edge[N comparable] struct {
	// From is the source node.
	From N

	// To is the destination node.
	To N

	// Weight is the cost of traversing From→To.
	Weight float64
}

// Adjacency is the read surface the search engine walks.
// Both *Graph and *Overlay satisfy it.
type Adjacency[N comparable] interface {
	// OutEdges yields (neighbor, weight) for every edge leaving n.
	// Unknown nodes yield nothing.
	OutEdges(n N) iter.Seq2[N, float64]
}

// Graph is a directed, weighted graph keyed by comparable node identifiers.
//
// out holds forward adjacency, in mirrors it as the incoming index.
// edgeCount tracks the number of distinct ordered pairs.
type Graph[N comparable] struct {
	out       map[N]map[N]float64 // from → to → weight
	in        map[N]map[N]float64 // to → from → weight
	edgeCount int
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph[N comparable]() *Graph[N] {
	return &Graph[N]{
		out: make(map[N]map[N]float64),
		in:  make(map[N]map[N]float64),
	}
}
