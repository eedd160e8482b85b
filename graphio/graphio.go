// SPDX-License-Identifier: MIT

// Package graphio reads and writes graphs as nested-mapping documents:
//
//	a:
//	  b: 1
//	  c: 2.5
//	b: {}
//
// Every top-level key is a node; its value maps neighbors to edge weights.
// A node with no outgoing edges is written as an empty mapping and may be
// read back from either an empty mapping or a null value. JSON documents of
// the same shape are accepted since YAML is a superset of JSON.
//
// Node identifiers are strings. Output is sorted by node so files diff cleanly.
package graphio

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/dijkstar/core"
)

// ErrInvalidDocument indicates the input parsed as YAML but is not a
// node→neighbor→weight mapping.
var ErrInvalidDocument = errors.New("graphio: invalid graph document")

// Read parses a graph document from r. An empty document yields an empty graph.
func Read(r io.Reader) (*core.Graph[string], error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return core.NewGraph[string](), nil
		}
		return nil, fmt.Errorf("graphio: decode: %w", err)
	}

	g := core.NewGraph[string]()
	if len(doc.Content) == 0 {
		return g, nil
	}

	root := doc.Content[0]
	if isNull(root) {
		return g, nil
	}
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: line %d: top level must be a mapping", ErrInvalidDocument, root.Line)
	}

	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i], root.Content[i+1]
		if key.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("%w: line %d: node id must be a scalar", ErrInvalidDocument, key.Line)
		}
		g.AddNode(key.Value)

		if isNull(value) {
			continue
		}
		if value.Kind != yaml.MappingNode {
			return nil, fmt.Errorf("%w: line %d: neighbors of %q must be a mapping", ErrInvalidDocument, value.Line, key.Value)
		}
		if err := readNeighbors(g, key.Value, value); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// readNeighbors adds u→v edges for every neighbor/weight pair of m.
func readNeighbors(g *core.Graph[string], u string, m *yaml.Node) error {
	for i := 0; i+1 < len(m.Content); i += 2 {
		key, value := m.Content[i], m.Content[i+1]
		if key.Kind != yaml.ScalarNode {
			return fmt.Errorf("%w: line %d: neighbor of %q must be a scalar", ErrInvalidDocument, key.Line, u)
		}
		if value.Kind != yaml.ScalarNode || isNull(value) {
			return fmt.Errorf("%w: line %d: edge %s→%s needs a numeric weight", ErrInvalidDocument, value.Line, u, key.Value)
		}

		var w float64
		if err := value.Decode(&w); err != nil {
			return fmt.Errorf("%w: line %d: edge %s→%s: %v", ErrInvalidDocument, value.Line, u, key.Value, err)
		}
		g.AddEdge(u, key.Value, w)
	}

	return nil
}

func isNull(n *yaml.Node) bool {
	return n.Kind == yaml.ScalarNode && n.Tag == "!!null"
}

// Write encodes g to w. Nodes and neighbors are emitted in sorted order.
func Write(w io.Writer, g *core.Graph[string]) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(ToMap(g)); err != nil {
		return fmt.Errorf("graphio: encode: %w", err)
	}

	return enc.Close()
}

// Load reads the graph stored at path.
func Load(path string) (*core.Graph[string], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graphio: open: %w", err)
	}
	defer f.Close()

	g, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

// Save writes g to path, creating or truncating the file.
func Save(path string, g *core.Graph[string]) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("graphio: create: %w", err)
	}
	if err = Write(f, g); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

// FromMap builds a graph from a node→neighbor→weight mapping.
// Keys with a nil or empty inner mapping become isolated nodes.
func FromMap[N comparable](m map[N]map[N]float64) *core.Graph[N] {
	g := core.NewGraph[N]()
	for u, outs := range m {
		g.SetOutgoing(u, outs)
	}

	return g
}

// ToMap returns a snapshot of g as a node→neighbor→weight mapping.
// Every node is present; nodes without outgoing edges map to an empty mapping.
// A nil g yields an empty mapping.
func ToMap[N comparable](g *core.Graph[N]) map[N]map[N]float64 {
	if g == nil {
		return map[N]map[N]float64{}
	}

	m := make(map[N]map[N]float64, g.NodeCount())
	for n := range g.Nodes() {
		outs, _ := g.Outgoing(n)
		m[n] = outs
	}

	return m
}
