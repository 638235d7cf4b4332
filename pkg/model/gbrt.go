package model

import (
	"bytes"
	"encoding/gob"
	"fmt"
)

var (
	_ Model = (*GradientBoostingRegressor)(nil)
	_ Model = (*DecisionTreeRegressor)(nil)
)

// GradientBoostingRegressor fits an additive ensemble of shallow regression
// trees to the residuals of a squared-error loss.
type GradientBoostingRegressor struct {
	// Hyperparameters / options
	NEstimators     int
	LearningRate    float64
	MaxDepth        int
	MinSamplesSplit int
	MinSamplesLeaf  int
	RandomState     int64 // stage m seeds its tree with RandomState+m

	// Learned state
	Init  float64 // initial prediction, the training target mean
	Trees []*DecisionTreeRegressor
}

// BoostingOption configures a GradientBoostingRegressor.
type BoostingOption func(*GradientBoostingRegressor)

func WithNEstimators(n int) BoostingOption {
	return func(g *GradientBoostingRegressor) { g.NEstimators = n }
}
func WithLearningRate(lr float64) BoostingOption {
	return func(g *GradientBoostingRegressor) { g.LearningRate = lr }
}
func WithEstimatorDepth(d int) BoostingOption {
	return func(g *GradientBoostingRegressor) { g.MaxDepth = d }
}
func WithSeed(seed int64) BoostingOption {
	return func(g *GradientBoostingRegressor) { g.RandomState = seed }
}

// NewGradientBoostingRegressor returns a booster with sklearn's defaults:
// 100 estimators, learning rate 0.1, depth 3.
func NewGradientBoostingRegressor(opts ...BoostingOption) *GradientBoostingRegressor {
	g := &GradientBoostingRegressor{
		NEstimators:     100,
		LearningRate:    0.1,
		MaxDepth:        3,
		MinSamplesSplit: 2,
		MinSamplesLeaf:  1,
	}
	for _, o := range opts {
		o(g)
	}
	return g
}

// Fit runs NEstimators boosting stages. Each stage fits a tree to the current
// residuals y - F(x) and adds LearningRate times its prediction to F.
func (g *GradientBoostingRegressor) Fit(X [][]float64, y []float64) error {
	if _, err := validateXY(X, y, true); err != nil {
		return fmt.Errorf("gradient boosting: %w", err)
	}
	if g.NEstimators <= 0 {
		return fmt.Errorf("gradient boosting: n_estimators must be positive, got %d", g.NEstimators)
	}

	n := len(X)
	sum := 0.0
	for _, v := range y {
		sum += v
	}
	g.Init = sum / float64(n)

	F := make([]float64, n)
	for i := range F {
		F[i] = g.Init
	}
	residual := make([]float64, n)

	g.Trees = make([]*DecisionTreeRegressor, 0, g.NEstimators)
	for m := 0; m < g.NEstimators; m++ {
		for i := range residual {
			residual[i] = y[i] - F[i]
		}
		tree := NewDecisionTreeRegressor(
			WithMaxDepth(g.MaxDepth),
			WithMinSamplesSplit(g.MinSamplesSplit),
			WithMinSamplesLeaf(g.MinSamplesLeaf),
			WithRandomState(g.RandomState+int64(m)),
		)
		if err := tree.Fit(X, residual); err != nil {
			return fmt.Errorf("gradient boosting: stage %d: %w", m, err)
		}
		for i, v := range tree.Predict(X) {
			F[i] += g.LearningRate * v
		}
		g.Trees = append(g.Trees, tree)
	}
	return nil
}

// Predict sums the initial prediction and the shrunken stage outputs.
// An unfitted model predicts zero.
func (g *GradientBoostingRegressor) Predict(X [][]float64) []float64 {
	out := make([]float64, len(X))
	if len(g.Trees) == 0 {
		return out
	}
	for i := range out {
		out[i] = g.Init
	}
	for _, tree := range g.Trees {
		for i, x := range X {
			out[i] += g.LearningRate * tree.predictSingle(x)
		}
	}
	return out
}

// Fitted reports whether Fit has completed.
func (g *GradientBoostingRegressor) Fitted() bool { return len(g.Trees) > 0 }

// MarshalBinary implements encoding.BinaryMarshaler using gob. Trees encode
// themselves through DecisionTreeRegressor.MarshalBinary.
func (g *GradientBoostingRegressor) MarshalBinary() ([]byte, error) {
	if !g.Fitted() {
		return nil, ErrNotFitted
	}
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)
	for _, v := range []any{g.NEstimators, g.LearningRate, g.MaxDepth, g.MinSamplesSplit, g.MinSamplesLeaf, g.RandomState, g.Init, g.Trees} {
		if err := enc.Encode(v); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler using gob.
func (g *GradientBoostingRegressor) UnmarshalBinary(data []byte) error {
	dec := gob.NewDecoder(bytes.NewBuffer(data))
	for _, v := range []any{&g.NEstimators, &g.LearningRate, &g.MaxDepth, &g.MinSamplesSplit, &g.MinSamplesLeaf, &g.RandomState, &g.Init, &g.Trees} {
		if err := dec.Decode(v); err != nil {
			return err
		}
	}
	return nil
}
