package dijkstra_test

import (
	"math"
	"math/rand"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dijkstar/builder"
	"github.com/katalvlaran/dijkstar/core"
	"github.com/katalvlaran/dijkstar/dijkstra"
)

// mergeEdges flattens base and annex into one from→to→weight table, annex
// weights replacing base weights for the same ordered pair.
func mergeEdges(base, annex *core.Graph[string]) map[string]map[string]float64 {
	eff := make(map[string]map[string]float64)
	add := func(g *core.Graph[string]) {
		for n := range g.Nodes() {
			if eff[n] == nil {
				eff[n] = make(map[string]float64)
			}
		}
		for e := range g.Edges() {
			eff[e.From][e.To] = e.Weight
		}
	}
	add(base)
	add(annex)

	return eff
}

// bellmanFord returns the least total from source to every node of eff;
// unreachable nodes are absent.
func bellmanFord(eff map[string]map[string]float64, source string) map[string]float64 {
	dist := map[string]float64{source: 0}
	for range len(eff) {
		changed := false
		for u, outs := range eff {
			du, ok := dist[u]
			if !ok {
				continue
			}
			for v, w := range outs {
				if dv, seen := dist[v]; !seen || du+w < dv {
					dist[v] = du + w
					changed = true
				}
			}
		}
		if !changed {
			break
		}
	}

	return dist
}

func TestSearch_MatchesBellmanFord(t *testing.T) {
	for seed := int64(1); seed <= 40; seed++ {
		t.Run("seed="+strconv.FormatInt(seed, 10), func(t *testing.T) {
			n := 12 + int(seed%9)
			base, err := builder.BuildGraph([]builder.BuilderOption{
				builder.WithSeed(seed),
				builder.WithWeightFn(builder.UniformIntWeightFn(0, 9)),
			}, builder.RandomSparse(n, 0.15))
			require.NoError(t, err)

			// Annex edges may shadow base edges or reach three annex-only nodes.
			rng := rand.New(rand.NewSource(seed * 7919))
			annex := core.NewGraph[string]()
			for range n {
				u, v := strconv.Itoa(rng.Intn(n+3)), strconv.Itoa(rng.Intn(n+3))
				if u != v {
					annex.AddEdge(u, v, float64(rng.Intn(10)))
				}
			}

			eff := mergeEdges(base, annex)
			want := bellmanFord(eff, "0")
			preds := dijkstra.SingleSourceShortestPaths(base, "0", dijkstra.WithAnnex(annex))

			require.Len(t, preds, len(want), "reached set must match")
			for node, total := range want {
				rec, ok := preds[node]
				require.True(t, ok, "%s is reachable", node)
				assert.InDelta(t, total, rec.Total, 1e-9, "total to %s", node)

				p, err := dijkstra.ExtractShortestPath(preds, node)
				require.NoError(t, err)
				require.Equal(t, "0", p.Nodes[0])
				require.Equal(t, node, p.Nodes[len(p.Nodes)-1])
				require.Len(t, p.Costs, len(p.Nodes)-1)

				var sum float64
				for i, c := range p.Costs {
					sum += c
					w, ok := eff[p.Nodes[i]][p.Nodes[i+1]]
					require.True(t, ok, "step %d must follow an overlay edge", i)
					assert.Equal(t, w, p.Weights[i], "weight of step %d", i)
				}
				assert.InDelta(t, p.Total, sum, 1e-9, "sum of costs to %s", node)
				assert.False(t, math.IsInf(p.Total, 0))
			}
		})
	}
}
