package commands

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/dijkstar/graphio"
)

// graphSummary is the yaml form of the info command.
type graphSummary struct {
	File      string   `yaml:"file"`
	NodeCount int      `yaml:"node_count"`
	EdgeCount int      `yaml:"edge_count"`
	Sources   []string `yaml:"sources"`
	Sinks     []string `yaml:"sinks"`
}

func newInfoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "info <graph-file>",
		Short: "Summarize a graph file",
		Long:  "Print node and edge counts, plus nodes without incoming (sources) or outgoing (sinks) edges.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := graphio.Load(args[0])
			if err != nil {
				return err
			}

			s := graphSummary{
				File:      args[0],
				NodeCount: g.NodeCount(),
				EdgeCount: g.EdgeCount(),
				Sources:   []string{},
				Sinks:     []string{},
			}
			for n := range g.Nodes() {
				if g.InDegree(n) == 0 {
					s.Sources = append(s.Sources, n)
				}
				if g.OutDegree(n) == 0 {
					s.Sinks = append(s.Sinks, n)
				}
			}
			slices.Sort(s.Sources)
			slices.Sort(s.Sinks)

			if a.output == "yaml" {
				return writeYAML(cmd.OutOrStdout(), s)
			}

			w := cmd.OutOrStdout()
			fmt.Fprintln(w, titleStyle.Render(s.File))
			fmt.Fprintf(w, "  nodes:   %d\n", s.NodeCount)
			fmt.Fprintf(w, "  edges:   %d\n", s.EdgeCount)
			fmt.Fprintf(w, "  sources: %v\n", s.Sources)
			_, err = fmt.Fprintf(w, "  sinks:   %v\n", s.Sinks)

			return err
		},
	}
}
