package dijkstra

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/dijkstar/core"
)

// FindPath returns the least-cost path from source to destination.
//
// Behavior:
//
//   - source == destination: Path{Nodes: [source]} with zero Total, whatever g holds.
//   - destination unknown or unreachable: *NoPathError (errors.Is(err, ErrNoPath)).
//   - otherwise: the path rebuilt from the predecessor map of a full search.
//
// Options are the same as for SingleSourceShortestPaths.
func FindPath[N comparable](g *core.Graph[N], source, destination N, opts ...Option[N]) (Path[N], error) {
	if source == destination {
		return Path[N]{Nodes: []N{source}, Weights: []float64{}, Costs: []float64{}}, nil
	}

	preds := SingleSourceShortestPaths(g, source, opts...)

	return extract(preds, source, destination)
}

// ExtractShortestPath rebuilds the path to destination from a predecessor map
// produced by SingleSourceShortestPaths.
//
// Returns *NoPathError if destination has no record, and an error wrapping
// ErrBrokenChain if its links loop or dangle before the root. The map is not
// modified.
func ExtractShortestPath[N comparable](preds PredecessorMap[N], destination N) (Path[N], error) {
	var source N
	for n, p := range preds {
		if p.Root {
			source = n
			break
		}
	}

	return extract(preds, source, destination)
}

// extract walks predecessor links from destination back to the root record,
// then reverses the accumulated sequences into source→destination order.
func extract[N comparable](preds PredecessorMap[N], source, destination N) (Path[N], error) {
	last, ok := preds[destination]
	if !ok {
		return Path[N]{}, &NoPathError[N]{Source: source, Destination: destination}
	}

	path := Path[N]{
		Nodes:   []N{destination},
		Weights: []float64{},
		Costs:   []float64{},
		Total:   last.Total,
	}

	// Each step appends one node; a chain longer than the map is a cycle.
	rec := last
	for !rec.Root {
		if len(path.Nodes) >= len(preds) {
			return Path[N]{}, fmt.Errorf("%w: cycle on the way to %v", ErrBrokenChain, destination)
		}
		path.Nodes = append(path.Nodes, rec.Node)
		path.Weights = append(path.Weights, rec.Weight)
		path.Costs = append(path.Costs, rec.Cost)

		next, ok := preds[rec.Node]
		if !ok {
			return Path[N]{}, fmt.Errorf("%w: %v has no record", ErrBrokenChain, rec.Node)
		}
		rec = next
	}

	slices.Reverse(path.Nodes)
	slices.Reverse(path.Weights)
	slices.Reverse(path.Costs)

	return path, nil
}
