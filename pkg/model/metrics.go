package model

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

func MSE(yTrue, yPred []float64) float64 {
	n := float64(len(yTrue))
	s := 0.0
	for i := range yTrue {
		d := yPred[i] - yTrue[i]
		s += d * d
	}
	return s / n
}

func MAE(yTrue, yPred []float64) float64 {
	n := float64(len(yTrue))
	s := 0.0
	for i := range yTrue {
		s += math.Abs(yPred[i] - yTrue[i])
	}
	return s / n
}

func RMSE(yTrue, yPred []float64) float64 { return math.Sqrt(MSE(yTrue, yPred)) }

// R2 is the coefficient of determination. It is NaN when yTrue is constant,
// including a single sample.
func R2(yTrue, yPred []float64) float64 {
	m := stat.Mean(yTrue, nil)
	ssTot := 0.0
	ssRes := 0.0
	for i := range yTrue {
		d := yTrue[i] - m
		ssTot += d * d
		r := yTrue[i] - yPred[i]
		ssRes += r * r
	}
	if ssTot == 0 {
		return math.NaN()
	}
	return 1 - ssRes/ssTot
}

// Residuals returns yTrue - yPred element-wise.
func Residuals(yTrue, yPred []float64) []float64 {
	out := make([]float64, len(yTrue))
	for i := range yTrue {
		out[i] = yTrue[i] - yPred[i]
	}
	return out
}

func isFinite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
