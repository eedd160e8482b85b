// Package dijkstra_test contains unit tests for the shortest-path engine:
// path extraction, annex overlay precedence, cost adjustment, degenerate
// queries and predecessor-map invariants.
package dijkstra_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dijkstar/core"
	"github.com/katalvlaran/dijkstar/dijkstra"
)

// ------------------------------------------------------------------------
// Fixtures
// ------------------------------------------------------------------------

// fromMap builds a graph from a nested node→neighbor→weight mapping.
func fromMap[N comparable](m map[N]map[N]float64) *core.Graph[N] {
	g := core.NewGraph[N]()
	for u, outs := range m {
		g.SetOutgoing(u, outs)
	}

	return g
}

// graph1 is a small numeric graph where 1→2→4 (3) beats 1→3→4 (4).
func graph1() *core.Graph[int] {
	return fromMap(map[int]map[int]float64{
		1: {2: 1, 3: 2},
		2: {1: 1, 4: 2, 5: 2},
		3: {4: 2},
		4: {2: 2, 3: 2, 5: 1},
		5: {2: 2, 4: 1},
	})
}

// graph2 is a 3x3 grid; "a"→"b" is expensive, so routes leave "a" through "d".
//
//	a b c
//	d e f
//	g h i
func graph2() *core.Graph[string] {
	return fromMap(map[string]map[string]float64{
		"a": {"b": 10, "d": 1},
		"b": {"a": 1, "c": 1, "e": 1},
		"c": {"b": 1, "f": 1},
		"d": {"a": 1, "e": 1, "g": 1},
		"e": {"b": 1, "d": 1, "f": 1, "h": 1},
		"f": {"c": 1, "e": 1, "i": 1},
		"g": {"d": 1, "h": 1},
		"h": {"e": 1, "g": 1, "i": 1},
		"i": {"f": 1, "h": 1},
	})
}

// graph3 has a cheap detour a→d→e→f→c around expensive direct edges,
// plus a node "g" that nothing reaches.
func graph3() *core.Graph[string] {
	g := fromMap(map[string]map[string]float64{
		"a": {"b": 10, "c": 100, "d": 1},
		"b": {"c": 10},
		"d": {"b": 1, "e": 1},
		"e": {"f": 1},
		"f": {"c": 1},
	})
	g.AddEdge("g", "b", 1)

	return g
}

// requireConsistent checks the structural properties every Path must satisfy.
func requireConsistent[N comparable](t *testing.T, g *core.Graph[N], p dijkstra.Path[N]) {
	t.Helper()
	require.Len(t, p.Weights, len(p.Nodes)-1)
	require.Len(t, p.Costs, len(p.Nodes)-1)

	var sum float64
	for i, c := range p.Costs {
		sum += c
		w, err := g.Edge(p.Nodes[i], p.Nodes[i+1])
		require.NoError(t, err, "step %d must follow a real edge", i)
		require.Equal(t, w, p.Weights[i])
	}
	require.InDelta(t, p.Total, sum, 1e-9, "total must equal the sum of step costs")
}

// ------------------------------------------------------------------------
// 1. Basic paths
// ------------------------------------------------------------------------

func TestFindPath_Graph1(t *testing.T) {
	g := graph1()
	p, err := dijkstra.FindPath(g, 1, 4)
	require.NoError(t, err)

	assert.Equal(t, []int{1, 2, 4}, p.Nodes)
	assert.Equal(t, []float64{1, 2}, p.Weights)
	assert.Equal(t, []float64{1, 2}, p.Costs)
	assert.Equal(t, 3.0, p.Total)
	requireConsistent(t, g, p)
}

func TestFindPath_GridTieBreak(t *testing.T) {
	// Several routes cost 4 (a-d-e-f-i, a-d-e-h-i, a-d-g-h-i); any is acceptable.
	g := graph2()
	p, err := dijkstra.FindPath(g, "a", "i")
	require.NoError(t, err)

	assert.Equal(t, 4.0, p.Total)
	require.Len(t, p.Nodes, 5)
	assert.Equal(t, "a", p.Nodes[0])
	assert.Equal(t, "d", p.Nodes[1])
	assert.Equal(t, "i", p.Nodes[4])
	requireConsistent(t, g, p)

	// Same graph, same query: same answer.
	again, err := dijkstra.FindPath(g, "a", "i")
	require.NoError(t, err)
	assert.Equal(t, p.Total, again.Total)
}

func TestFindPath_CheapDetour(t *testing.T) {
	g := graph3()
	p, err := dijkstra.FindPath(g, "a", "c")
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "d", "e", "f", "c"}, p.Nodes)
	assert.Equal(t, []float64{1, 1, 1, 1}, p.Weights)
	assert.Equal(t, []float64{1, 1, 1, 1}, p.Costs)
	assert.Equal(t, 4.0, p.Total)
}

// ------------------------------------------------------------------------
// 2. Unreachable / unknown destinations and degenerate queries
// ------------------------------------------------------------------------

func TestFindPath_Unreachable(t *testing.T) {
	_, err := dijkstra.FindPath(graph3(), "c", "a")
	require.ErrorIs(t, err, dijkstra.ErrNoPath)

	var npe *dijkstra.NoPathError[string]
	require.True(t, errors.As(err, &npe))
	assert.Equal(t, "a", npe.Destination)
	assert.Contains(t, npe.Error(), "a")
}

func TestFindPath_UnknownDestination(t *testing.T) {
	_, err := dijkstra.FindPath(graph3(), "a", "z")
	require.ErrorIs(t, err, dijkstra.ErrNoPath)
}

func TestFindPath_UnknownSource(t *testing.T) {
	_, err := dijkstra.FindPath(graph3(), "z", "a")
	require.ErrorIs(t, err, dijkstra.ErrNoPath)

	preds := dijkstra.SingleSourceShortestPaths(graph3(), "z")
	assert.Equal(t, dijkstra.PredecessorMap[string]{"z": {Root: true}}, preds)
}

func TestFindPath_SourceIsDestination(t *testing.T) {
	for _, s := range []int{1, 99} { // known and never registered
		p, err := dijkstra.FindPath(graph1(), s, s)
		require.NoError(t, err)
		assert.Equal(t, []int{s}, p.Nodes)
		assert.Empty(t, p.Weights)
		assert.Empty(t, p.Costs)
		assert.Zero(t, p.Total)
	}
}

func TestFindPath_NilGraph(t *testing.T) {
	_, err := dijkstra.FindPath[string](nil, "a", "b")
	require.ErrorIs(t, err, dijkstra.ErrNoPath)

	annex := core.NewGraph[string]()
	annex.AddEdge("a", "b", 2)
	p, err := dijkstra.FindPath[string](nil, "a", "b", dijkstra.WithAnnex(annex))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, p.Nodes)
	assert.Equal(t, 2.0, p.Total)
}

// ------------------------------------------------------------------------
// 3. Annex overlay
// ------------------------------------------------------------------------

func TestFindPath_AnnexShortensRoute(t *testing.T) {
	g := graph1()
	annex := fromMap(map[int]map[int]float64{1: {2: 1, 3: 0.5}})

	p, err := dijkstra.FindPath(g, 1, 4, dijkstra.WithAnnex(annex))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3, 4}, p.Nodes)
	assert.Equal(t, []float64{0.5, 2}, p.Weights)
	assert.Equal(t, []float64{0.5, 2}, p.Costs)
	assert.Equal(t, 2.5, p.Total)

	// Neither graph was touched.
	w, err := g.Edge(1, 3)
	require.NoError(t, err)
	assert.Equal(t, 2.0, w)
	assert.Equal(t, 2, annex.EdgeCount())

	// Without the annex the base answer is unchanged.
	p, err = dijkstra.FindPath(g, 1, 4)
	require.NoError(t, err)
	assert.Equal(t, 3.0, p.Total)
}

func TestFindPath_AnnexShadowsWithWorseWeight(t *testing.T) {
	// The annex raises 1→2 from 1 to 5; shadowing means the base weight is gone.
	annex := fromMap(map[int]map[int]float64{1: {2: 5}})

	p, err := dijkstra.FindPath(graph1(), 1, 4, dijkstra.WithAnnex(annex))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3, 4}, p.Nodes)
	assert.Equal(t, 4.0, p.Total)

	p, err = dijkstra.FindPath(graph1(), 1, 2, dijkstra.WithAnnex(annex))
	require.NoError(t, err)
	assert.Equal(t, []float64{5}, p.Weights)
}

func TestFindPath_AnnexOnlyNode(t *testing.T) {
	annex := core.NewGraph[int]()
	annex.AddEdge(100, 4, 0.1) // virtual start outside the base graph
	annex.AddEdge(5, 200, 0.2) // virtual end outside the base graph

	p, err := dijkstra.FindPath(graph1(), 100, 200, dijkstra.WithAnnex(annex))
	require.NoError(t, err)
	assert.Equal(t, []int{100, 4, 5, 200}, p.Nodes)
	assert.InDelta(t, 1.3, p.Total, 1e-9)
}

// ------------------------------------------------------------------------
// 4. Cost adjustment
// ------------------------------------------------------------------------

func TestFindPath_PathDependentAdjuster(t *testing.T) {
	// Entering node 2 costs (u+1); switching to an edge of different weight costs 1.
	adjust := dijkstra.CostAdjusterFunc[int](func(t dijkstra.Transition[int]) float64 {
		var cost float64
		if t.To == 2 {
			cost = float64(t.From + 1)
		}
		if !t.HasPrev || t.Weight != t.PrevWeight {
			cost++
		}

		return cost
	})

	p, err := dijkstra.FindPath(graph1(), 1, 4, dijkstra.WithCostAdjuster[int](adjust))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3, 4}, p.Nodes)
	assert.Equal(t, []float64{2, 2}, p.Weights)
	assert.Equal(t, []float64{3, 2}, p.Costs) // first edge pays the switch penalty
	assert.Equal(t, 5.0, p.Total)
}

// turnGraph has a short route that switches edge kinds and a longer straight one.
//
//	s→a(1) a→t(2)                 weight 3, one switch
//	s→b(1) b→c(1) c→d(1) d→t(1)   weight 4, no switch
func turnGraph() *core.Graph[string] {
	g := core.NewGraph[string]()
	g.AddEdge("s", "a", 1)
	g.AddEdge("a", "t", 2)
	g.AddEdge("s", "b", 1)
	g.AddEdge("b", "c", 1)
	g.AddEdge("c", "d", 1)
	g.AddEdge("d", "t", 1)

	return g
}

func TestFindPath_TurnPenalty(t *testing.T) {
	g := turnGraph()

	plain, err := dijkstra.FindPath(g, "s", "t")
	require.NoError(t, err)
	assert.Equal(t, []string{"s", "a", "t"}, plain.Nodes)
	assert.Equal(t, 3.0, plain.Total)

	p, err := dijkstra.FindPath(g, "s", "t", dijkstra.WithCostAdjuster(dijkstra.TurnPenalty[string](2)))
	require.NoError(t, err)
	assert.Equal(t, []string{"s", "b", "c", "d", "t"}, p.Nodes)
	assert.Equal(t, []float64{1, 1, 1, 1}, p.Weights)
	assert.Equal(t, []float64{3, 1, 1, 1}, p.Costs)
	assert.Equal(t, 6.0, p.Total)
	requireConsistent(t, g, p)
}

func TestFindPath_ChainAdjusters(t *testing.T) {
	flat := dijkstra.CostAdjusterFunc[string](func(dijkstra.Transition[string]) float64 { return 0.25 })
	chained := dijkstra.Chain[string](dijkstra.TurnPenalty[string](2), nil, flat)

	p, err := dijkstra.FindPath(turnGraph(), "s", "t", dijkstra.WithCostAdjuster(chained))
	require.NoError(t, err)
	assert.Equal(t, []float64{3.25, 1.25, 1.25, 1.25}, p.Costs)
	assert.Equal(t, 7.0, p.Total)
}

func TestFindPath_CostFunc(t *testing.T) {
	// Hop count: every edge costs 1 regardless of its weight.
	hops := dijkstra.CostFunc[string](func(dijkstra.Transition[string]) float64 { return 1 })

	p, err := dijkstra.FindPath(graph3(), "a", "c", dijkstra.WithCostFunc(hops))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "c"}, p.Nodes)
	assert.Equal(t, []float64{100}, p.Weights)
	assert.Equal(t, []float64{1}, p.Costs)
	assert.Equal(t, 1.0, p.Total)
}

func TestAdjuster_SeesPreviousEdge(t *testing.T) {
	g := core.NewGraph[string]()
	g.AddEdge("a", "b", 3)
	g.AddEdge("b", "c", 7)

	var seen []dijkstra.Transition[string]
	record := dijkstra.CostAdjusterFunc[string](func(t dijkstra.Transition[string]) float64 {
		seen = append(seen, t)
		return 0
	})
	dijkstra.SingleSourceShortestPaths(g, "a", dijkstra.WithCostAdjuster[string](record))

	require.Len(t, seen, 2)
	assert.Equal(t, dijkstra.Transition[string]{From: "a", To: "b", Weight: 3}, seen[0])
	assert.Equal(t, dijkstra.Transition[string]{From: "b", To: "c", Weight: 7, PrevWeight: 3, HasPrev: true}, seen[1])
}

func TestSearch_RelabelsAfterExpansion(t *testing.T) {
	// b is expanded at total 1, then improved to -5 through the negative edge c→b;
	// the label-correcting loop must expand b again and carry the gain to d.
	g := core.NewGraph[string]()
	g.AddEdge("a", "b", 1)
	g.AddEdge("a", "c", 5)
	g.AddEdge("c", "b", -10)
	g.AddEdge("b", "d", 1)

	p, err := dijkstra.FindPath(g, "a", "d")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "c", "b", "d"}, p.Nodes)
	assert.Equal(t, -4.0, p.Total)
}

// ------------------------------------------------------------------------
// 5. Predecessor map
// ------------------------------------------------------------------------

func TestSingleSourceShortestPaths_Graph3(t *testing.T) {
	preds := dijkstra.SingleSourceShortestPaths(graph3(), "a")

	expected := dijkstra.PredecessorMap[string]{
		"a": {Root: true},
		"d": {Node: "a", Weight: 1, Cost: 1, Total: 1},
		"b": {Node: "d", Weight: 1, Cost: 1, Total: 2},
		"e": {Node: "d", Weight: 1, Cost: 1, Total: 2},
		"f": {Node: "e", Weight: 1, Cost: 1, Total: 3},
		"c": {Node: "f", Weight: 1, Cost: 1, Total: 4},
	}
	assert.Equal(t, expected, preds)
	assert.NotContains(t, preds, "g", "g has no incoming edges")
}

func TestSingleSourceShortestPaths_ChainsTerminate(t *testing.T) {
	preds := dijkstra.SingleSourceShortestPaths(graph2(), "e")
	require.Len(t, preds, 9, "the grid is strongly connected")

	for n := range preds {
		steps := 0
		for rec := preds[n]; !rec.Root; rec = preds[rec.Node] {
			steps++
			require.LessOrEqual(t, steps, len(preds), "chain from %s cycles", n)
			require.Contains(t, preds, rec.Node)
		}
	}
}

func TestExtractShortestPath_Reuse(t *testing.T) {
	preds := dijkstra.SingleSourceShortestPaths(graph3(), "a")

	p, err := dijkstra.ExtractShortestPath(preds, "c")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "d", "e", "f", "c"}, p.Nodes)

	p, err = dijkstra.ExtractShortestPath(preds, "b")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "d", "b"}, p.Nodes)
	assert.Equal(t, 2.0, p.Total)

	p, err = dijkstra.ExtractShortestPath(preds, "a")
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, p.Nodes)
	assert.Zero(t, p.Total)

	_, err = dijkstra.ExtractShortestPath(preds, "g")
	assert.ErrorIs(t, err, dijkstra.ErrNoPath)
}

func TestExtractShortestPath_BrokenChain(t *testing.T) {
	cyclic := dijkstra.PredecessorMap[string]{
		"s": {Root: true},
		"a": {Node: "b", Weight: 1, Cost: 1, Total: 2},
		"b": {Node: "a", Weight: 1, Cost: 1, Total: 1},
	}
	_, err := dijkstra.ExtractShortestPath(cyclic, "a")
	assert.ErrorIs(t, err, dijkstra.ErrBrokenChain)
	assert.NotErrorIs(t, err, dijkstra.ErrNoPath)

	dangling := dijkstra.PredecessorMap[string]{
		"s": {Root: true},
		"a": {Node: "x", Weight: 1, Cost: 1, Total: 2},
	}
	_, err = dijkstra.ExtractShortestPath(dangling, "a")
	assert.ErrorIs(t, err, dijkstra.ErrBrokenChain)
}
