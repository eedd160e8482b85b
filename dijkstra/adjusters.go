// SPDX-License-Identifier: MIT

package dijkstra

// TurnPenalty returns an adjuster that charges penalty whenever the edge being
// relaxed has a different weight than the edge used to arrive, and on the first
// edge out of the source (there is no previous edge to continue).
//
// Edge weights double as edge "kinds" here: a route that keeps traversing
// same-weight edges is treated as going straight.
func TurnPenalty[N comparable](penalty float64) CostAdjuster[N] {
	return CostAdjusterFunc[N](func(t Transition[N]) float64 {
		if !t.HasPrev || t.Weight != t.PrevWeight {
			return penalty
		}

		return 0
	})
}

// Chain sums the adjustments of every non-nil adjuster in order.
func Chain[N comparable](adjusters ...CostAdjuster[N]) CostAdjuster[N] {
	return CostAdjusterFunc[N](func(t Transition[N]) float64 {
		var sum float64
		for _, a := range adjusters {
			if a != nil {
				sum += a.AdjustCost(t)
			}
		}

		return sum
	})
}
