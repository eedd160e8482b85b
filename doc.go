// Package dijkstar is a weighted-graph shortest-path engine.
//
// What is in the box?
//
//	• core/         generic directed graph with an incoming-edge index and
//	                a read-only annex overlay
//	• dijkstra/     single-source search, path extraction, annex edges and
//	                path-dependent cost adjusters (turn penalties)
//	• graphio/      nested-mapping graph files (YAML or JSON)
//	• builder/      deterministic synthetic graphs (path, grid, random, ...)
//	• cmd/dijkstar  CLI: path, paths, info, serve, generate
//
// Quick example:
//
//	g := core.NewGraph[string]()
//	g.AddEdge("a", "b", 1)
//	g.AddEdge("b", "c", 2)
//	g.AddEdge("a", "c", 5)
//
//	p, err := dijkstra.FindPath(g, "a", "c")
//	// p.Nodes == [a b c], p.Total == 3
//
// Graph file format:
//
//	a:
//	  b: 1
//	  c: 5
//	b:
//	  c: 2
//	c: {}
//
//	go install github.com/katalvlaran/dijkstar/cmd/dijkstar@latest
package dijkstar
