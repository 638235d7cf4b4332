package loader

import (
	"math"
	"math/rand"
)

// SplitIndices shuffles 0..n-1 with a seeded source and returns the train and
// test index sets. The test set holds ceil(n*testRatio) rows, as sklearn does.
func SplitIndices(n int, testRatio float64, seed int64) (train, test []int) {
	indices := rand.New(rand.NewSource(seed)).Perm(n)
	nTest := int(math.Ceil(float64(n) * testRatio))
	if nTest > n {
		nTest = n
	}
	return indices[nTest:], indices[:nTest]
}

// Take gathers the rows of X and Y at idx.
func Take(X [][]float64, Y []float64, idx []int) ([][]float64, []float64) {
	xs := make([][]float64, len(idx))
	ys := make([]float64, len(idx))
	for k, i := range idx {
		xs[k] = X[i]
		ys[k] = Y[i]
	}
	return xs, ys
}
