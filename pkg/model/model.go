package model

import "errors"

var (
	ErrEmptyInput    = errors.New("model: empty X")
	ErrShapeMismatch = errors.New("model: X and y length mismatch")
	ErrRaggedInput   = errors.New("model: inconsistent number of features in X rows")
	ErrNonFinite     = errors.New("model: input contains NaN or infinity")
	ErrNotFitted     = errors.New("model: not fitted")
)

// Model is a generic supervised regression interface.
type Model interface {
	Fit(X [][]float64, y []float64) error
	Predict(X [][]float64) []float64
}

// validateXY checks shapes and, when finite is set, rejects NaN/Inf anywhere in X or y.
// It returns the number of features.
func validateXY(X [][]float64, y []float64, finite bool) (int, error) {
	if len(X) == 0 {
		return 0, ErrEmptyInput
	}
	if len(y) != len(X) {
		return 0, ErrShapeMismatch
	}
	p := len(X[0])
	for i := range X {
		if len(X[i]) != p {
			return 0, ErrRaggedInput
		}
		if !finite {
			continue
		}
		for _, v := range X[i] {
			if !isFinite(v) {
				return 0, ErrNonFinite
			}
		}
		if !isFinite(y[i]) {
			return 0, ErrNonFinite
		}
	}
	return p, nil
}
