package stats

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// NaNMean returns the mean of the non-NaN values in x and how many there were.
// With no valid values the mean is NaN.
func NaNMean(x []float64) (float64, int) {
	valid := DropNaN(x)
	if len(valid) == 0 {
		return math.NaN(), 0
	}
	return stat.Mean(valid, nil), len(valid)
}

// DropNaN returns a copy of x without NaN entries.
func DropNaN(x []float64) []float64 {
	out := make([]float64, 0, len(x))
	for _, v := range x {
		if !math.IsNaN(v) {
			out = append(out, v)
		}
	}
	return out
}

// CountNaN returns the number of NaN entries in x.
func CountNaN(x []float64) int {
	return len(x) - len(DropNaN(x))
}

// MinMax returns the minimum and maximum values in the slice.
func MinMax(x []float64) (float64, float64) {
	if len(x) == 0 {
		return 0, 0
	}
	return floats.Min(x), floats.Max(x)
}
