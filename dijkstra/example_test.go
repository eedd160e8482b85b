// Package dijkstra_test provides runnable examples for the path engine.
// Each example is checked via “go test -run Example”.
package dijkstra_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/dijkstar/core"
	"github.com/katalvlaran/dijkstar/dijkstra"
)

// ExampleFindPath finds the cheapest route on a small road map.
func ExampleFindPath() {
	// 1) Build a directed graph; AddEdge registers both endpoints.
	g := core.NewGraph[string]()
	g.AddEdge("home", "park", 1)
	g.AddEdge("park", "office", 2)
	g.AddEdge("home", "office", 5)

	// 2) Query one source/destination pair.
	p, err := dijkstra.FindPath(g, "home", "office")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(p.Nodes, p.Weights, p.Total)
	// Output:
	// [home park office] [1 2] 3
}

// ExampleFindPath_annex adds temporary edges for a single query.
// The base graph is left untouched.
func ExampleFindPath_annex() {
	g := core.NewGraph[int]()
	g.AddEdge(1, 2, 1)
	g.AddEdge(1, 3, 2)
	g.AddEdge(2, 4, 2)
	g.AddEdge(3, 4, 2)

	// The annex shadows 1→3 with a cheaper weight.
	annex := core.NewGraph[int]()
	annex.AddEdge(1, 3, 0.5)

	p, _ := dijkstra.FindPath(g, 1, 4, dijkstra.WithAnnex(annex))
	fmt.Println(p.Nodes, p.Total)

	w, _ := g.Edge(1, 3)
	fmt.Println("base 1→3:", w)
	// Output:
	// [1 3 4] 2.5
	// base 1→3: 2
}

// ExampleTurnPenalty prefers a straight route over a shorter one with a turn.
func ExampleTurnPenalty() {
	g := core.NewGraph[string]()
	g.AddEdge("s", "a", 1)
	g.AddEdge("a", "t", 2)
	g.AddEdge("s", "b", 1)
	g.AddEdge("b", "c", 1)
	g.AddEdge("c", "t", 1)

	p, _ := dijkstra.FindPath(g, "s", "t", dijkstra.WithCostAdjuster(dijkstra.TurnPenalty[string](2)))
	fmt.Println(p.Nodes, p.Weights, p.Costs, p.Total)
	// Output:
	// [s b c t] [1 1 1] [3 1 1] 5
}

// ExampleSingleSourceShortestPaths runs one search and extracts several paths.
func ExampleSingleSourceShortestPaths() {
	g := core.NewGraph[string]()
	g.AddEdge("a", "b", 1)
	g.AddEdge("b", "c", 1)
	g.AddEdge("a", "c", 5)
	g.AddNode("x")

	preds := dijkstra.SingleSourceShortestPaths(g, "a")
	for _, dest := range []string{"b", "c", "x"} {
		p, err := dijkstra.ExtractShortestPath(preds, dest)
		if errors.Is(err, dijkstra.ErrNoPath) {
			fmt.Println(dest, "unreachable")
			continue
		}
		fmt.Println(dest, p.Nodes, p.Total)
	}
	// Output:
	// b [a b] 1
	// c [a b c] 2
	// x unreachable
}
