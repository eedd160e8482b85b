package commands

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/dijkstar/builder"
	"github.com/katalvlaran/dijkstar/graphio"
)

// generateFlags holds the knobs of the generate command.
type generateFlags struct {
	seed      int64
	minWeight int
	maxWeight int
	oneWay    bool
	letters   bool
	prob      float64
	file      string
}

func newGenerateCmd(a *app) *cobra.Command {
	var f generateFlags

	cmd := &cobra.Command{
		Use:   "generate <path|cycle|star|complete|grid|random> <size> [cols]",
		Short: "Write a synthetic graph document",
		Long: `Generate a graph of a well-known shape and print it as YAML.

  path N, cycle N, star N, complete N   N numbered nodes
  grid R C                              R×C lattice, nodes named "r,c"
  random N                              each ordered pair linked with --prob

Weights are whole numbers drawn from [--min-weight, --max-weight] with --seed.`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctor, err := topology(args, f.prob)
			if err != nil {
				return err
			}
			if f.minWeight < 0 || f.maxWeight < f.minWeight {
				return fmt.Errorf("weights: require 0 <= --min-weight <= --max-weight, got %d..%d", f.minWeight, f.maxWeight)
			}

			opts := []builder.BuilderOption{
				builder.WithSeed(f.seed),
				builder.WithWeightFn(builder.UniformIntWeightFn(f.minWeight, f.maxWeight)),
			}
			if f.oneWay {
				opts = append(opts, builder.WithOneWay())
			}
			if f.letters {
				opts = append(opts, builder.WithIDScheme(builder.ExcelColumnIDFn))
			}

			g, err := builder.BuildGraph(opts, ctor)
			if err != nil {
				return err
			}
			a.logger.Debug("Graph generated", "topology", args[0], "nodes", g.NodeCount(), "edges", g.EdgeCount())

			if f.file != "" {
				return graphio.Save(f.file, g)
			}

			return graphio.Write(cmd.OutOrStdout(), g)
		},
	}

	fs := cmd.Flags()
	fs.Int64Var(&f.seed, "seed", 1, "Random seed")
	fs.IntVar(&f.minWeight, "min-weight", 1, "Smallest edge weight")
	fs.IntVar(&f.maxWeight, "max-weight", 1, "Largest edge weight")
	fs.BoolVar(&f.oneWay, "one-way", false, "Emit one directed edge per link instead of a pair")
	fs.BoolVar(&f.letters, "letters", false, "Name nodes A, B, ... instead of 0, 1, ...")
	fs.Float64Var(&f.prob, "prob", 0.1, "Edge probability for random graphs")
	fs.StringVarP(&f.file, "file", "f", "", "Write to this file instead of stdout")

	return cmd
}

// topology maps positional arguments to a builder constructor.
func topology(args []string, prob float64) (builder.Constructor, error) {
	sizes := make([]int, 0, len(args)-1)
	for _, s := range args[1:] {
		n, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("size %q: %w", s, err)
		}
		sizes = append(sizes, n)
	}

	kind := args[0]
	if kind == "grid" {
		if len(sizes) != 2 {
			return nil, errors.New("grid needs <rows> <cols>")
		}
		return builder.Grid(sizes[0], sizes[1]), nil
	}
	if len(sizes) != 1 {
		return nil, fmt.Errorf("%s takes a single size", kind)
	}

	n := sizes[0]
	switch kind {
	case "path":
		return builder.Path(n), nil
	case "cycle":
		return builder.Cycle(n), nil
	case "star":
		return builder.Star(n), nil
	case "complete":
		return builder.Complete(n), nil
	case "random":
		return builder.RandomSparse(n, prob), nil
	default:
		return nil, fmt.Errorf("unknown topology %q", kind)
	}
}
