package emissions

import (
	"context"
	"fmt"
	"strings"

	"github.com/BlackVenus2003/Jet-Engine-Performance-Prediction/pkg/logging"
	"github.com/BlackVenus2003/Jet-Engine-Performance-Prediction/pkg/stats"
)

// Options configures MakeDataset.
type Options struct {
	RawCSV      string
	CleanCSV    string
	ParquetPath string // empty disables the Parquet copy
}

// Result summarises one builder run.
type Result struct {
	RawRows      int
	Rows         int
	MissingYears int // raw rows whose test date did not parse
	DroppedFlows int // raw fuel-flow cells that were missing
	CleanCSV     string
	ParquetPath  string
}

// MakeDataset reads the raw CSV, reshapes it and writes the clean dataset.
// The output is a pure function of the input file.
func MakeDataset(ctx context.Context, opts Options) (*Result, error) {
	log := logging.FromContext(ctx)
	if strings.TrimSpace(opts.RawCSV) == "" {
		return nil, fmt.Errorf("raw csv path is required")
	}
	if strings.TrimSpace(opts.CleanCSV) == "" {
		return nil, fmt.Errorf("clean csv path is required")
	}

	raws, err := ReadRawFile(opts.RawCSV)
	if err != nil {
		return nil, err
	}
	log.Info("raw dataset loaded", "path", opts.RawCSV, "rows", len(raws))

	res := &Result{RawRows: len(raws), CleanCSV: opts.CleanCSV}
	for _, r := range raws {
		if !r.HasYear {
			res.MissingYears++
			log.Debug("unparseable test date", "engine", r.Engine, "value", r.TestDate)
		}
		res.DroppedFlows += stats.CountNaN(r.FuelFlow[:])
	}

	recs := Build(raws)
	res.Rows = len(recs)
	log.Info("reshaped to long form",
		"rows", res.Rows,
		"dropped_fuel_flows", res.DroppedFlows,
		"missing_years", res.MissingYears,
	)

	if err := WriteCSVFile(opts.CleanCSV, recs); err != nil {
		return nil, err
	}
	if opts.ParquetPath != "" {
		if err := WriteParquet(opts.ParquetPath, recs); err != nil {
			return nil, err
		}
		res.ParquetPath = opts.ParquetPath
		log.Info("parquet copy written", "path", opts.ParquetPath)
	}
	return res, nil
}
