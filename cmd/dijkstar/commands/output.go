package commands

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00AFFF"))
	totalStyle = lipgloss.NewStyle().Bold(true)
)

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}

	return enc.Close()
}

func num(f float64) string { return strconv.FormatFloat(f, 'g', -1, 64) }

// writePathText prints the route on one line, then one row per edge.
func writePathText(w io.Writer, r pathResult) error {
	fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("Path %s → %s", r.Source, r.Destination)))
	fmt.Fprintf(w, "  %s\n", strings.Join(r.Nodes, " → "))

	if len(r.Weights) > 0 {
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "  edge\tweight\tcost")
		for i := range r.Weights {
			fmt.Fprintf(tw, "  %s → %s\t%s\t%s\n", r.Nodes[i], r.Nodes[i+1], num(r.Weights[i]), num(r.Costs[i]))
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintln(w, totalStyle.Render("Total: "+num(r.Total)))

	return err
}

// writeReachedText prints one row per reached node, cheapest first.
func writeReachedText(w io.Writer, source string, reached []reachedNode) error {
	fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("Reachable from %s: %d", source, len(reached))))

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "  node\ttotal\tvia")
	for _, r := range reached {
		via := r.Via
		switch {
		case r.Root:
			via = "-"
		case via == "" || via == "-":
			via = strconv.Quote(via)
		}
		fmt.Fprintf(tw, "  %s\t%s\t%s\n", r.Node, num(r.Total), via)
	}

	return tw.Flush()
}
