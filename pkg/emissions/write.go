package emissions

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// WriteCSVFile writes records to path, creating the parent directory and
// replacing any existing file.
func WriteCSVFile(path string, recs []Record) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create clean csv: %w", err)
	}
	if err := WriteCSV(f, recs); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// WriteCSV writes the header and one line per record. Missing values are
// empty fields; infinities are written as inf/-inf.
func WriteCSV(w io.Writer, recs []Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	row := make([]string, len(Header))
	for i, r := range recs {
		row[0] = r.Engine
		row[1] = formatFloat(r.BPR)
		row[2] = formatFloat(r.OPR)
		row[3] = ""
		if r.HasYear {
			row[3] = strconv.Itoa(r.Year)
		}
		row[4] = formatFloat(r.ModePct)
		row[5] = formatFloat(r.ThrustKN)
		row[6] = formatFloat(r.FuelKgS)
		row[7] = formatFloat(r.TSFC)
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write row %d: %w", i, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// formatFloat prints the shortest representation that round-trips, always
// with a decimal point so the column reads back as floating point.
func formatFloat(v float64) string {
	switch {
	case math.IsNaN(v):
		return ""
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
