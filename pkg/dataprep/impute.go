package dataprep

import (
	"math"

	"github.com/BlackVenus2003/Jet-Engine-Performance-Prediction/pkg/stats"
)

// MeanImputer learns one mean per column and fills NaNs column by column.
// Rows are never dropped.
type MeanImputer struct {
	Means  []float64
	Filled []int // per-column count of values filled by the last Transform
}

func NewMeanImputer() *MeanImputer { return &MeanImputer{} }

// Fit computes the column means of X, ignoring NaN. Y is unused.
func (m *MeanImputer) Fit(X [][]float64, _ []float64) {
	m.Means = nil
	if len(X) == 0 {
		return
	}
	cols := len(X[0])
	m.Means = make([]float64, cols)
	col := make([]float64, len(X))
	for j := 0; j < cols; j++ {
		for i := range X {
			col[i] = X[i][j]
		}
		m.Means[j], _ = stats.NaNMean(col)
	}
}

// Transform returns a copy of X with each NaN replaced by its column mean.
func (m *MeanImputer) Transform(X [][]float64) [][]float64 {
	out := make([][]float64, len(X))
	m.Filled = make([]int, len(m.Means))
	for i, row := range X {
		r := append([]float64(nil), row...)
		for j := range r {
			if j < len(m.Means) && math.IsNaN(r[j]) {
				r[j] = m.Means[j]
				if !math.IsNaN(m.Means[j]) {
					m.Filled[j]++
				}
			}
		}
		out[i] = r
	}
	return out
}
