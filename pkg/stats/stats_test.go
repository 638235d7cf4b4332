package stats

import (
	"math"
	"testing"
)

func TestNaNMean(t *testing.T) {
	tests := []struct {
		name      string
		input     []float64
		wantMean  float64
		wantCount int
	}{
		{"no missing", []float64{1, 2, 3}, 2, 3},
		{"one missing", []float64{1, math.NaN(), 3}, 2, 2},
		{"all missing", []float64{math.NaN(), math.NaN()}, math.NaN(), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mean, n := NaNMean(tt.input)
			if n != tt.wantCount {
				t.Errorf("Expected count %d, got %d", tt.wantCount, n)
			}
			if math.IsNaN(tt.wantMean) {
				if !math.IsNaN(mean) {
					t.Errorf("Expected NaN, got %f", mean)
				}
				return
			}
			if math.Abs(mean-tt.wantMean) > 1e-12 {
				t.Errorf("Expected mean %f, got %f", tt.wantMean, mean)
			}
		})
	}
}

func TestCountNaN(t *testing.T) {
	if got := CountNaN([]float64{math.NaN(), 1, math.NaN()}); got != 2 {
		t.Errorf("Expected 2, got %d", got)
	}
}

func TestGaussianKDEIntegratesToOne(t *testing.T) {
	data := []float64{-1.2, -0.4, 0, 0.1, 0.3, 0.9, 1.5, 2.2}
	k := NewGaussianKDE(data)
	if k.Bandwidth <= 0 {
		t.Fatalf("Expected positive bandwidth, got %f", k.Bandwidth)
	}

	// trapezoid over a wide window
	lo, hi, steps := -10.0, 10.0, 4000
	dx := (hi - lo) / float64(steps)
	area := 0.0
	for i := 0; i <= steps; i++ {
		w := 1.0
		if i == 0 || i == steps {
			w = 0.5
		}
		area += w * k.Density(lo+float64(i)*dx)
	}
	area *= dx
	if math.Abs(area-1) > 1e-3 {
		t.Errorf("Expected density to integrate to 1, got %f", area)
	}
}

func TestGaussianKDEDegenerate(t *testing.T) {
	k := NewGaussianKDE([]float64{2, 2, 2})
	if k.Bandwidth != 0 {
		t.Errorf("Expected zero bandwidth, got %f", k.Bandwidth)
	}
	if d := k.Density(2); d != 0 {
		t.Errorf("Expected zero density, got %f", d)
	}
}
