// Package dijkstra defines the result types, cost hooks and configuration
// options of the shortest-path engine.
//
// Options:
//
//	– WithAnnex:        overlay graph composed with the base graph for one query.
//	– WithCostAdjuster: per-edge additive cost modifier, sees the previous edge.
//	– WithCostFunc:     replaces the base cost of an edge (default: its weight).
//
// Errors (sentinel):
//
//	– ErrNoPath       destination unknown or unreachable (wrapped by *NoPathError).
//	– ErrBrokenChain  predecessor links loop or dangle before the source.
package dijkstra

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/dijkstar/core"
)

// ErrNoPath indicates that the destination has no predecessor record after the
// search: it is either absent from the composed graph or unreachable from the source.
var ErrNoPath = errors.New("dijkstra: no path")

// ErrBrokenChain indicates a predecessor map whose links from the destination
// never reach the root record: a link is missing or the links form a cycle.
// Maps produced by a search on non-negative costs never trigger it.
var ErrBrokenChain = errors.New("dijkstra: predecessor chain does not reach the source")

// NoPathError names the destination that could not be reached.
// errors.Is(err, ErrNoPath) holds for every *NoPathError.
type NoPathError[N comparable] struct {
	Source      N
	Destination N
}

// Error implements error.
func (e *NoPathError[N]) Error() string {
	return fmt.Sprintf("dijkstra: could not find a path from %v to %v", e.Source, e.Destination)
}

// Is reports whether target is ErrNoPath.
func (e *NoPathError[N]) Is(target error) bool { return target == ErrNoPath }

// Predecessor records how the best known path reaches a node.
//
//	Node   – previous node on the path (zero value for the source).
//	Weight – weight of the edge Node→this node.
//	Cost   – effective cost of that edge (base cost + adjustment).
//	Total  – cumulative effective cost from the source.
//	Root   – true only for the source entry, which has no predecessor.
type Predecessor[N comparable] struct {
	Node   N
	Weight float64
	Cost   float64
	Total  float64
	Root   bool
}

// PredecessorMap maps every node reached by a search to its Predecessor record.
// Keys are exactly the nodes reachable from the source, the source included.
type PredecessorMap[N comparable] map[N]Predecessor[N]

// Path is the result of a single-destination query.
//
//	Nodes   – source→destination inclusive.
//	Weights – raw edge weight per step (len(Nodes)-1 entries).
//	Costs   – effective cost per step; sums to Total.
//	Total   – cost of the whole path.
type Path[N comparable] struct {
	Nodes   []N
	Weights []float64
	Costs   []float64
	Total   float64
}

// Transition describes one relaxation attempt: the edge From→To being
// considered and the edge that was used to reach From.
// HasPrev is false when From is the source.
type Transition[N comparable] struct {
	From       N
	To         N
	Weight     float64
	PrevWeight float64
	HasPrev    bool
}

// CostAdjuster adds a path-dependent amount to the cost of an edge.
// Implementations must be pure: no graph mutation, no side effects.
type CostAdjuster[N comparable] interface {
	AdjustCost(t Transition[N]) float64
}

// CostAdjusterFunc adapts a plain function to CostAdjuster.
type CostAdjusterFunc[N comparable] func(t Transition[N]) float64

// AdjustCost calls f(t).
func (f CostAdjusterFunc[N]) AdjustCost(t Transition[N]) float64 { return f(t) }

// CostFunc computes the base cost of an edge. The default is t.Weight.
type CostFunc[N comparable] func(t Transition[N]) float64

// Options configures one search.
type Options[N comparable] struct {
	Annex    *core.Graph[N]  // overlay graph, nil for none
	Adjuster CostAdjuster[N] // additive modifier, nil for none
	Cost     CostFunc[N]     // base cost, nil for edge weight
}

// Option represents a functional option for configuring a search.
type Option[N comparable] func(*Options[N])

// WithAnnex composes annex over the base graph for this query only.
// Annex edges shadow base edges for the same ordered pair.
func WithAnnex[N comparable](annex *core.Graph[N]) Option[N] {
	return func(o *Options[N]) {
		o.Annex = annex
	}
}

// WithCostAdjuster installs an additive per-edge cost modifier.
func WithCostAdjuster[N comparable](a CostAdjuster[N]) Option[N] {
	return func(o *Options[N]) {
		o.Adjuster = a
	}
}

// WithCostFunc replaces the base cost of each edge (default: the edge weight).
// An adjuster, if any, is added on top of the value returned here.
func WithCostFunc[N comparable](f CostFunc[N]) Option[N] {
	return func(o *Options[N]) {
		o.Cost = f
	}
}

// DefaultOptions returns an Options with no annex and no cost hooks.
func DefaultOptions[N comparable]() Options[N] {
	return Options[N]{}
}
