package commands

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/dijkstar/dijkstra"
	"github.com/katalvlaran/dijkstar/graphio"
)

// pathResult is the yaml form of one path query.
type pathResult struct {
	Source      string    `yaml:"source"`
	Destination string    `yaml:"destination"`
	Nodes       []string  `yaml:"nodes"`
	Weights     []float64 `yaml:"weights"`
	Costs       []float64 `yaml:"costs"`
	Total       float64   `yaml:"total"`
}

// reachedNode is the yaml form of one predecessor record.
type reachedNode struct {
	Node   string  `yaml:"node"`
	Root   bool    `yaml:"root,omitempty"`
	Via    string  `yaml:"via"`
	Weight float64 `yaml:"weight"`
	Cost   float64 `yaml:"cost"`
	Total  float64 `yaml:"total"`
}

func newPathCmd(a *app) *cobra.Command {
	var annexFile string

	cmd := &cobra.Command{
		Use:   "path <graph-file> <source> <destination>",
		Short: "Find the least-cost path between two nodes",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := a.queryOptions(annexFile)
			if err != nil {
				return err
			}

			g, err := graphio.Load(args[0])
			if err != nil {
				return err
			}
			a.logger.Debug("Graph loaded", "file", args[0], "nodes", g.NodeCount(), "edges", g.EdgeCount())

			p, err := dijkstra.FindPath(g, args[1], args[2], opts...)
			if err != nil {
				return err
			}

			res := pathResult{
				Source:      args[1],
				Destination: args[2],
				Nodes:       p.Nodes,
				Weights:     p.Weights,
				Costs:       p.Costs,
				Total:       p.Total,
			}
			if a.output == "yaml" {
				return writeYAML(cmd.OutOrStdout(), res)
			}

			return writePathText(cmd.OutOrStdout(), res)
		},
	}

	cmd.Flags().StringVar(&annexFile, "annex", "", "Graph file whose edges overlay the base graph for this query")

	return cmd
}

func newPathsCmd(a *app) *cobra.Command {
	var annexFile string

	cmd := &cobra.Command{
		Use:   "paths <graph-file> <source>",
		Short: "List every node reachable from source with its least cost",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := a.queryOptions(annexFile)
			if err != nil {
				return err
			}

			g, err := graphio.Load(args[0])
			if err != nil {
				return err
			}

			preds := dijkstra.SingleSourceShortestPaths(g, args[1], opts...)
			reached := make([]reachedNode, 0, len(preds))
			for n, p := range preds {
				r := reachedNode{Node: n, Root: p.Root, Weight: p.Weight, Cost: p.Cost, Total: p.Total}
				if !p.Root {
					r.Via = p.Node
				}
				reached = append(reached, r)
			}
			slices.SortFunc(reached, func(x, y reachedNode) int {
				if c := cmp.Compare(x.Total, y.Total); c != 0 {
					return c
				}
				return cmp.Compare(x.Node, y.Node)
			})

			if a.output == "yaml" {
				return writeYAML(cmd.OutOrStdout(), reached)
			}

			return writeReachedText(cmd.OutOrStdout(), args[1], reached)
		},
	}

	cmd.Flags().StringVar(&annexFile, "annex", "", "Graph file whose edges overlay the base graph for this query")

	return cmd
}

// queryOptions turns the annex flag and the configured turn penalty into search options.
func (a *app) queryOptions(annexFile string) ([]dijkstra.Option[string], error) {
	var opts []dijkstra.Option[string]

	if annexFile != "" {
		annex, err := graphio.Load(annexFile)
		if err != nil {
			return nil, fmt.Errorf("annex: %w", err)
		}
		opts = append(opts, dijkstra.WithAnnex(annex))
	}
	if p := a.cfg.Graph.TurnPenalty; p > 0 {
		opts = append(opts, dijkstra.WithCostAdjuster(dijkstra.TurnPenalty[string](p)))
	}

	return opts, nil
}
