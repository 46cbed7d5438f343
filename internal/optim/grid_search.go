// Package optim tunes driver parameters by exhaustive search over a
// parameter grid. Candidates are evaluated concurrently since every
// evaluation builds its own world.
package optim

import (
	"context"
	"math"
	"sync"
)

// Evaluate runs one candidate and returns its cost. Lower is better.
type Evaluate func(ctx context.Context, params map[string]float64) (float64, error)

type GridSearch struct {
	paramNames []string
	ranges     [][]float64
}

func NewGridSearch(params []string, ranges [][]float64) *GridSearch {
	return &GridSearch{paramNames: params, ranges: ranges}
}

// Search evaluates every grid point and returns the best parameters
// and their cost. Failed evaluations are skipped.
func (g *GridSearch) Search(ctx context.Context, evaluate Evaluate) (map[string]float64, float64, error) {
	candidates := g.expand(0, map[string]float64{})

	type outcome struct {
		params map[string]float64
		cost   float64
		err    error
	}
	outcomes := make([]outcome, len(candidates))

	var wg sync.WaitGroup
	for i, cand := range candidates {
		wg.Add(1)
		go func(idx int, params map[string]float64) {
			defer wg.Done()
			cost, err := evaluate(ctx, params)
			outcomes[idx] = outcome{params: params, cost: cost, err: err}
		}(i, cand)
	}
	wg.Wait()

	best := math.Inf(1)
	var bestParams map[string]float64
	for _, o := range outcomes {
		if o.err != nil {
			continue
		}
		if o.cost < best {
			best = o.cost
			bestParams = o.params
		}
	}

	return bestParams, best, ctx.Err()
}

func (g *GridSearch) expand(depth int, current map[string]float64) []map[string]float64 {
	if depth == len(g.paramNames) {
		copied := make(map[string]float64, len(current))
		for k, v := range current {
			copied[k] = v
		}
		return []map[string]float64{copied}
	}

	var out []map[string]float64
	for _, val := range g.ranges[depth] {
		current[g.paramNames[depth]] = val
		out = append(out, g.expand(depth+1, current)...)
	}
	delete(current, g.paramNames[depth])
	return out
}
