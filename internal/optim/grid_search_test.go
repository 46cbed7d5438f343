package optim

import (
	"context"
	"errors"
	"math"
	"testing"
)

func TestGridSearchFindsMinimum(t *testing.T) {
	g := NewGridSearch(
		[]string{"a", "b"},
		[][]float64{{-1, 0, 1, 2}, {-2, 0, 3}},
	)

	best, cost, err := g.Search(context.Background(), func(ctx context.Context, p map[string]float64) (float64, error) {
		// Minimum at a=1, b=0.
		return math.Pow(p["a"]-1, 2) + math.Pow(p["b"], 2), nil
	})
	if err != nil {
		t.Fatal(err)
	}

	if best["a"] != 1 || best["b"] != 0 {
		t.Errorf("best params = %v, want a=1 b=0", best)
	}
	if cost != 0 {
		t.Errorf("cost = %f, want 0", cost)
	}
}

func TestGridSearchSkipsFailures(t *testing.T) {
	g := NewGridSearch([]string{"a"}, [][]float64{{1, 2, 3}})

	best, cost, err := g.Search(context.Background(), func(ctx context.Context, p map[string]float64) (float64, error) {
		if p["a"] == 1 {
			return 0, errors.New("bad candidate")
		}
		return p["a"], nil
	})
	if err != nil {
		t.Fatal(err)
	}

	if best["a"] != 2 {
		t.Errorf("best a = %f, want 2 (failed candidate skipped)", best["a"])
	}
	if cost != 2 {
		t.Errorf("cost = %f, want 2", cost)
	}
}

func TestGridSearchAllFail(t *testing.T) {
	g := NewGridSearch([]string{"a"}, [][]float64{{1}})

	best, cost, err := g.Search(context.Background(), func(ctx context.Context, p map[string]float64) (float64, error) {
		return 0, errors.New("nope")
	})
	if err != nil {
		t.Fatal(err)
	}
	if best != nil {
		t.Errorf("best = %v, want nil", best)
	}
	if !math.IsInf(cost, 1) {
		t.Errorf("cost = %f, want +Inf", cost)
	}
}
