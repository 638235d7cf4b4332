package data

import (
	"fmt"
	"io"
	"os"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/BlackVenus2003/Jet-Engine-Performance-Prediction/pkg/pipeline"
)

// Frame is the numeric view of the clean dataset used for training. Feature
// rows may contain NaN; targets are kept as parsed.
type Frame struct {
	FeatureNames []string
	X            [][]float64
	Targets      map[string][]float64
}

// Rows returns the number of samples.
func (f *Frame) Rows() int { return len(f.X) }

// LoadCSV opens path and reads it with Load.
func LoadCSV(path string, schema pipeline.Schema) (*Frame, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open clean csv: %w", err)
	}
	defer file.Close()
	return Load(file, schema)
}

// Load reads a clean dataset and coerces every schema column to float64.
// Cells that are empty or not numeric become NaN. A schema column absent
// from the header is an error.
func Load(r io.Reader, schema pipeline.Schema) (*Frame, error) {
	df := dataframe.ReadCSV(r,
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
		dataframe.NaNValues([]string{"", "NA", "NaN", "nan"}),
	)
	if df.Err != nil {
		return nil, fmt.Errorf("read clean csv: %w", df.Err)
	}

	present := make(map[string]bool, df.Ncol())
	for _, name := range df.Names() {
		present[name] = true
	}
	for _, name := range schema.Columns() {
		if !present[name] {
			return nil, fmt.Errorf("clean csv: column %q not found", name)
		}
	}

	n := df.Nrow()
	frame := &Frame{
		FeatureNames: append([]string(nil), schema.FeatureNames...),
		X:            make([][]float64, n),
		Targets:      make(map[string][]float64, len(schema.TargetNames)),
	}
	cols := make([][]float64, len(schema.FeatureNames))
	for j, name := range schema.FeatureNames {
		cols[j] = df.Col(name).Float()
	}
	for i := 0; i < n; i++ {
		row := make([]float64, len(cols))
		for j := range cols {
			row[j] = cols[j][i]
		}
		frame.X[i] = row
	}
	for _, name := range schema.TargetNames {
		frame.Targets[name] = df.Col(name).Float()
	}
	return frame, nil
}
