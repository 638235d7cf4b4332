package plotting

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestSaveResidualHistogramWritesPNG(t *testing.T) {
	residuals := []float64{-1.5, -0.7, -0.2, 0, 0.1, 0.3, 0.4, 0.9, 1.1, 2.0}
	path := filepath.Join(t.TempDir(), "residuals_thrust.png")

	if err := SaveResidualHistogram(path, residuals, DefaultHistogramOptions("Residuals - thrust")); err != nil {
		t.Fatalf("SaveResidualHistogram failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Read plot failed: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("\x89PNG")) {
		t.Error("Output is not a PNG file")
	}
}

func TestSaveResidualHistogramEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.png")
	if err := SaveResidualHistogram(path, nil, DefaultHistogramOptions("x")); err == nil {
		t.Error("Expected error for empty residuals")
	}
}
