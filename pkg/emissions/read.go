package emissions

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// nanValues are the raw cell contents treated as missing.
var nanValues = []string{"", "NA", "N/A", "NaN", "nan", "<nil>"}

// ReadRawFile opens path and reads it with ReadRaw.
func ReadRawFile(path string) ([]RawRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open raw csv: %w", err)
	}
	defer f.Close()
	return ReadRaw(f)
}

// ReadRaw loads the raw databank CSV, checks that the nine required columns
// exist, and returns one RawRecord per input row. Every cell is loaded as a
// string; numeric columns that do not parse become NaN. A file with a valid
// header and no data rows yields no records.
func ReadRaw(r io.Reader) ([]RawRecord, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read raw csv: %w", err)
	}
	header, hasRows, err := peekHeader(content)
	if err != nil {
		return nil, fmt.Errorf("read raw csv: %w", err)
	}
	if err := CheckSchema(header); err != nil {
		return nil, err
	}
	if !hasRows {
		return []RawRecord{}, nil
	}

	df := dataframe.ReadCSV(bytes.NewReader(content),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
		dataframe.NaNValues(nanValues),
	)
	if df.Err != nil {
		return nil, fmt.Errorf("read raw csv: %w", df.Err)
	}

	df = df.Select(rawNames())
	for _, c := range RawColumns {
		df = df.Rename(c.Name, c.Raw)
	}
	if df.Err != nil {
		return nil, fmt.Errorf("select raw columns: %w", df.Err)
	}

	n := df.Nrow()
	engine := df.Col(ColEngine)
	dates := df.Col(ColTestDate)
	bpr := numericColumn(df, ColBPR)
	opr := numericColumn(df, ColOPR)
	fmax := numericColumn(df, ColFMax)
	var flows [len(Modes)][]float64
	for m, mode := range Modes {
		flows[m] = numericColumn(df, mode.Column)
	}

	out := make([]RawRecord, n)
	for i := 0; i < n; i++ {
		rec := RawRecord{
			BPR:  bpr[i],
			OPR:  opr[i],
			FMax: fmax[i],
		}
		if e := engine.Elem(i); !e.IsNA() {
			rec.Engine = e.String()
		}
		if d := dates.Elem(i); !d.IsNA() {
			rec.TestDate = d.String()
		}
		rec.Year, rec.HasYear = ParseYear(rec.TestDate)
		for m := range Modes {
			rec.FuelFlow[m] = flows[m][i]
		}
		out[i] = rec
	}
	return out, nil
}

// peekHeader returns the first CSV record and whether any record follows it.
// The dataframe reader rejects header-only input, so this runs first.
func peekHeader(content []byte) ([]string, bool, error) {
	cr := csv.NewReader(bytes.NewReader(content))
	cr.FieldsPerRecord = -1
	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, false, errors.New("no header row")
		}
		return nil, false, err
	}
	_, err = cr.Read()
	switch {
	case errors.Is(err, io.EOF):
		return header, false, nil
	case err != nil:
		return nil, false, err
	}
	return header, true, nil
}

func numericColumn(df dataframe.DataFrame, name string) []float64 {
	recs := df.Col(name).Records()
	out := make([]float64, len(recs))
	for i, s := range recs {
		out[i] = parseFloat(s)
	}
	return out
}

// parseFloat coerces a cell to float64, returning NaN when it is not numeric.
func parseFloat(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return math.NaN()
	}
	return v
}
