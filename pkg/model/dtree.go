package model

import (
	"bytes"
	"encoding/gob"
	"math"
	"math/rand"
	"sort"
)

// ---------------------------
// Types & options
// ---------------------------

// DecisionTreeRegressor is a CART-style regression tree using squared error.
type DecisionTreeRegressor struct {
	// Hyperparameters / options
	MaxDepth        int   // maximum depth (root depth = 0). 0 => no limit
	MinSamplesSplit int   // minimum samples to attempt a split
	MinSamplesLeaf  int   // minimum samples required in each leaf
	RandomState     int64 // seed for the order features are visited at each node

	// internals: nodes[0] is the root
	nodes []treeNode
}

// treeNode is one node of the flattened tree. Left and Right are indices into
// the node slice, -1 for leaves.
type treeNode struct {
	Feature   int
	Threshold float64 // x <= Threshold => left
	Left      int
	Right     int
	Value     float64 // mean target of the samples reaching this node
	N         int
}

func (n treeNode) isLeaf() bool { return n.Left < 0 }

// TreeOption configures a DecisionTreeRegressor.
type TreeOption func(*DecisionTreeRegressor)

func WithMaxDepth(d int) TreeOption { return func(t *DecisionTreeRegressor) { t.MaxDepth = d } }
func WithMinSamplesSplit(n int) TreeOption {
	return func(t *DecisionTreeRegressor) { t.MinSamplesSplit = n }
}
func WithMinSamplesLeaf(n int) TreeOption {
	return func(t *DecisionTreeRegressor) { t.MinSamplesLeaf = n }
}
func WithRandomState(seed int64) TreeOption {
	return func(t *DecisionTreeRegressor) { t.RandomState = seed }
}

// NewDecisionTreeRegressor returns a regressor with sklearn-like defaults.
func NewDecisionTreeRegressor(opts ...TreeOption) *DecisionTreeRegressor {
	t := &DecisionTreeRegressor{
		MaxDepth:        0,
		MinSamplesSplit: 2,
		MinSamplesLeaf:  1,
		RandomState:     0,
	}
	for _, o := range opts {
		o(t)
	}
	return t
}

// ---------------------------
// Public API: Fit / Predict / Save/Load
// ---------------------------

// Fit grows the tree on X (n x p) and continuous targets y.
// X and y must be finite; impute missing values before fitting.
func (t *DecisionTreeRegressor) Fit(X [][]float64, y []float64) error {
	p, err := validateXY(X, y, true)
	if err != nil {
		return err
	}
	idx := make([]int, len(X))
	for i := range idx {
		idx[i] = i
	}
	rnd := rand.New(rand.NewSource(t.RandomState))
	t.nodes = t.nodes[:0]
	t.buildNode(X, y, idx, 0, p, rnd)
	return nil
}

// Predict returns the leaf value reached by each row of X.
func (t *DecisionTreeRegressor) Predict(X [][]float64) []float64 {
	out := make([]float64, len(X))
	for i := range X {
		out[i] = t.predictSingle(X[i])
	}
	return out
}

// NodeCount reports how many nodes the fitted tree holds.
func (t *DecisionTreeRegressor) NodeCount() int { return len(t.nodes) }

// Depth reports the depth of the deepest leaf (root only => 0).
func (t *DecisionTreeRegressor) Depth() int {
	if len(t.nodes) == 0 {
		return 0
	}
	var walk func(i, d int) int
	walk = func(i, d int) int {
		n := t.nodes[i]
		if n.isLeaf() {
			return d
		}
		return max(walk(n.Left, d+1), walk(n.Right, d+1))
	}
	return walk(0, 0)
}

// MarshalBinary implements encoding.BinaryMarshaler using gob.
func (t *DecisionTreeRegressor) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)
	if err := enc.Encode(t.MaxDepth); err != nil {
		return nil, err
	}
	if err := enc.Encode(t.MinSamplesSplit); err != nil {
		return nil, err
	}
	if err := enc.Encode(t.MinSamplesLeaf); err != nil {
		return nil, err
	}
	if err := enc.Encode(t.RandomState); err != nil {
		return nil, err
	}
	if err := enc.Encode(t.nodes); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler using gob.
func (t *DecisionTreeRegressor) UnmarshalBinary(data []byte) error {
	dec := gob.NewDecoder(bytes.NewBuffer(data))
	if err := dec.Decode(&t.MaxDepth); err != nil {
		return err
	}
	if err := dec.Decode(&t.MinSamplesSplit); err != nil {
		return err
	}
	if err := dec.Decode(&t.MinSamplesLeaf); err != nil {
		return err
	}
	if err := dec.Decode(&t.RandomState); err != nil {
		return err
	}
	return dec.Decode(&t.nodes)
}

// ---------------------------
// Internal builders & helpers
// ---------------------------

// splitResult holds the best split found for a single feature.
type splitResult struct {
	gain      float64
	feature   int
	threshold float64
}

// pair is a feature value and the sample index it belongs to.
type pair struct {
	v float64
	i int
}

func (t *DecisionTreeRegressor) buildNode(X [][]float64, y []float64, idx []int, depth, p int, rnd *rand.Rand) int {
	sum := 0.0
	for _, ii := range idx {
		sum += y[ii]
	}
	self := len(t.nodes)
	t.nodes = append(t.nodes, treeNode{Feature: -1, Left: -1, Right: -1, Value: sum / float64(len(idx)), N: len(idx)})

	if t.MinSamplesSplit > 0 && len(idx) < t.MinSamplesSplit {
		return self
	}
	if t.MaxDepth > 0 && depth >= t.MaxDepth {
		return self
	}
	if isConstant(y, idx) {
		return self
	}

	// Features are visited in a seeded random order; on equal gain the first
	// one visited keeps the split.
	best := splitResult{feature: -1}
	for _, f := range rnd.Perm(p) {
		r := t.findBestSplitForFeature(X, y, idx, f)
		if r.feature >= 0 && r.gain > best.gain {
			best = r
		}
	}
	if best.feature == -1 {
		return self
	}

	leftIdx := make([]int, 0, len(idx))
	rightIdx := make([]int, 0, len(idx))
	for _, ii := range idx {
		if X[ii][best.feature] <= best.threshold {
			leftIdx = append(leftIdx, ii)
		} else {
			rightIdx = append(rightIdx, ii)
		}
	}

	left := t.buildNode(X, y, leftIdx, depth+1, p, rnd)
	right := t.buildNode(X, y, rightIdx, depth+1, p, rnd)
	t.nodes[self].Feature = best.feature
	t.nodes[self].Threshold = best.threshold
	t.nodes[self].Left = left
	t.nodes[self].Right = right
	return self
}

// findBestSplitForFeature scans the sorted values of feature f and scores each
// threshold by Friedman's improvement nL*nR/n * (meanL-meanR)^2, normalised by n
// so the gain equals the reduction in node variance.
func (t *DecisionTreeRegressor) findBestSplitForFeature(X [][]float64, y []float64, idx []int, f int) splitResult {
	result := splitResult{feature: -1}

	vals := make([]pair, len(idx))
	total := 0.0
	for k, ii := range idx {
		vals[k] = pair{X[ii][f], ii}
		total += y[ii]
	}
	sort.SliceStable(vals, func(a, b int) bool { return vals[a].v < vals[b].v })

	n := float64(len(vals))
	minLeaf := max(t.MinSamplesLeaf, 1)
	sumLeft := 0.0
	for s := 1; s < len(vals); s++ {
		sumLeft += y[vals[s-1].i]
		if vals[s].v == vals[s-1].v {
			continue
		}
		if s < minLeaf || len(vals)-s < minLeaf {
			continue
		}
		nL := float64(s)
		nR := n - nL
		diff := sumLeft/nL - (total-sumLeft)/nR
		gain := nL * nR / n * diff * diff / n
		if gain > result.gain {
			result = splitResult{gain: gain, feature: f, threshold: (vals[s-1].v + vals[s].v) / 2.0}
		}
	}
	return result
}

func isConstant(y []float64, idx []int) bool {
	first := y[idx[0]]
	for _, ii := range idx[1:] {
		if y[ii] != first {
			return false
		}
	}
	return true
}

// ---------------------------
// Prediction helper
// ---------------------------

func (t *DecisionTreeRegressor) predictSingle(x []float64) float64 {
	if len(t.nodes) == 0 {
		return 0
	}
	node := t.nodes[0]
	for !node.isLeaf() {
		val := x[node.Feature]
		if math.IsNaN(val) {
			// missing: follow the branch that saw more training samples
			if t.nodes[node.Left].N >= t.nodes[node.Right].N {
				node = t.nodes[node.Left]
			} else {
				node = t.nodes[node.Right]
			}
			continue
		}
		if val <= node.Threshold {
			node = t.nodes[node.Left]
		} else {
			node = t.nodes[node.Right]
		}
	}
	return node.Value
}
