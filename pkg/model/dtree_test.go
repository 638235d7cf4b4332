package model

import (
	"errors"
	"math"
	"testing"
)

func TestDecisionTreeRegressorStepFunction(t *testing.T) {
	X := [][]float64{{1}, {2}, {3}, {4}, {5}, {6}}
	y := []float64{10, 10, 10, 20, 20, 20}

	tree := NewDecisionTreeRegressor(WithMaxDepth(1))
	if err := tree.Fit(X, y); err != nil {
		t.Fatalf("Fit failed: %v", err)
	}
	if tree.NodeCount() != 3 {
		t.Errorf("Expected 3 nodes, got %d", tree.NodeCount())
	}
	if tree.nodes[0].Threshold != 3.5 {
		t.Errorf("Expected threshold 3.5, got %f", tree.nodes[0].Threshold)
	}

	got := tree.Predict([][]float64{{0}, {3.4}, {3.6}, {100}})
	want := []float64{10, 10, 20, 20}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Prediction %d: expected %f, got %f", i, want[i], got[i])
		}
	}
}

func TestDecisionTreeRegressorPicksInformativeFeature(t *testing.T) {
	// feature 0 is noise, feature 1 separates the targets
	X := [][]float64{{5, 0}, {1, 0}, {4, 0}, {2, 1}, {3, 1}, {6, 1}}
	y := []float64{-1, -1, -1, 1, 1, 1}

	tree := NewDecisionTreeRegressor(WithMaxDepth(1))
	if err := tree.Fit(X, y); err != nil {
		t.Fatalf("Fit failed: %v", err)
	}
	if tree.nodes[0].Feature != 1 {
		t.Errorf("Expected split on feature 1, got %d", tree.nodes[0].Feature)
	}
}

func TestDecisionTreeRegressorRespectsDepthAndLeafSize(t *testing.T) {
	X := make([][]float64, 64)
	y := make([]float64, 64)
	for i := range X {
		X[i] = []float64{float64(i)}
		y[i] = math.Sin(float64(i) / 5)
	}

	tree := NewDecisionTreeRegressor(WithMaxDepth(3), WithMinSamplesLeaf(5))
	if err := tree.Fit(X, y); err != nil {
		t.Fatalf("Fit failed: %v", err)
	}
	if d := tree.Depth(); d > 3 {
		t.Errorf("Expected depth <= 3, got %d", d)
	}
	for _, n := range tree.nodes {
		if n.isLeaf() && n.N < 5 {
			t.Errorf("Leaf holds %d samples, below MinSamplesLeaf", n.N)
		}
	}
}

func TestDecisionTreeRegressorConstantTarget(t *testing.T) {
	X := [][]float64{{1}, {2}, {3}}
	y := []float64{4, 4, 4}

	tree := NewDecisionTreeRegressor()
	if err := tree.Fit(X, y); err != nil {
		t.Fatalf("Fit failed: %v", err)
	}
	if tree.NodeCount() != 1 {
		t.Errorf("Expected a single leaf, got %d nodes", tree.NodeCount())
	}
	if p := tree.Predict([][]float64{{9}})[0]; p != 4 {
		t.Errorf("Expected 4, got %f", p)
	}
}

func TestDecisionTreeRegressorRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		X    [][]float64
		y    []float64
		want error
	}{
		{"empty", nil, nil, ErrEmptyInput},
		{"length mismatch", [][]float64{{1}, {2}}, []float64{1}, ErrShapeMismatch},
		{"ragged", [][]float64{{1, 2}, {2}}, []float64{1, 2}, ErrRaggedInput},
		{"nan feature", [][]float64{{math.NaN()}, {2}}, []float64{1, 2}, ErrNonFinite},
		{"inf target", [][]float64{{1}, {2}}, []float64{1, math.Inf(1)}, ErrNonFinite},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewDecisionTreeRegressor().Fit(tt.X, tt.y)
			if !errors.Is(err, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestDecisionTreeRegressorSeedBreaksTies(t *testing.T) {
	// both columns are identical, so every split ties across features
	X := make([][]float64, 20)
	y := make([]float64, 20)
	for i := range X {
		X[i] = []float64{float64(i), float64(i)}
		y[i] = float64(i / 10)
	}

	seen := map[int]bool{}
	for seed := int64(0); seed < 20; seed++ {
		a := NewDecisionTreeRegressor(WithMaxDepth(1), WithRandomState(seed))
		b := NewDecisionTreeRegressor(WithMaxDepth(1), WithRandomState(seed))
		if err := a.Fit(X, y); err != nil {
			t.Fatalf("Fit failed: %v", err)
		}
		if err := b.Fit(X, y); err != nil {
			t.Fatalf("Fit failed: %v", err)
		}
		if a.nodes[0].Feature != b.nodes[0].Feature {
			t.Fatalf("Seed %d: same seed chose features %d and %d", seed, a.nodes[0].Feature, b.nodes[0].Feature)
		}
		if a.nodes[0].Threshold != 9.5 {
			t.Errorf("Seed %d: expected threshold 9.5, got %f", seed, a.nodes[0].Threshold)
		}
		seen[a.nodes[0].Feature] = true
	}
	if !seen[0] || !seen[1] {
		t.Errorf("Expected the seed to select either tied feature, saw %v", seen)
	}
}
