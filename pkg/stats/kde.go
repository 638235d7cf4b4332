package stats

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// GaussianKDE is a one-dimensional Gaussian kernel density estimate.
type GaussianKDE struct {
	Data      []float64
	Bandwidth float64
}

// NewGaussianKDE uses Scott's rule, h = sd * n^(-1/5), with the sample
// standard deviation. Bandwidth is zero when the data has no spread.
func NewGaussianKDE(x []float64) *GaussianKDE {
	data := append([]float64(nil), x...)
	return &GaussianKDE{Data: data, Bandwidth: ScottBandwidth(data)}
}

// ScottBandwidth returns sd * n^(-1/5), or 0 for fewer than two points.
func ScottBandwidth(x []float64) float64 {
	if len(x) < 2 {
		return 0
	}
	sd := stat.StdDev(x, nil)
	if math.IsNaN(sd) {
		return 0
	}
	return sd * math.Pow(float64(len(x)), -0.2)
}

// Density evaluates the estimate at v.
func (k *GaussianKDE) Density(v float64) float64 {
	if k.Bandwidth <= 0 || len(k.Data) == 0 {
		return 0
	}
	norm := 1 / (float64(len(k.Data)) * k.Bandwidth * math.Sqrt(2*math.Pi))
	s := 0.0
	for _, d := range k.Data {
		z := (v - d) / k.Bandwidth
		s += math.Exp(-0.5 * z * z)
	}
	return s * norm
}
