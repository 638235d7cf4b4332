package emissions

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestReadRaw(t *testing.T) {
	raws, err := ReadRaw(strings.NewReader(sampleRaw))
	if err != nil {
		t.Fatalf("ReadRaw failed: %v", err)
	}
	if len(raws) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(raws))
	}

	first := raws[0]
	if first.Engine != "CFM56-5B3/3" || first.BPR != 5.4 || first.OPR != 32.6 || first.FMax != 142.3 {
		t.Errorf("Unexpected first row %+v", first)
	}
	if first.FuelFlow != [4]float64{1.31, 1.07, 0.36, 0.12} {
		t.Errorf("Unexpected fuel flows %v", first.FuelFlow)
	}
	if !first.HasYear || first.Year != 2008 {
		t.Errorf("Expected year 2008, got %d (%v)", first.Year, first.HasYear)
	}
	if raws[2].HasYear {
		t.Errorf("Expected no year for %q, got %d", raws[2].TestDate, raws[2].Year)
	}
	if raws[2].Engine != "JT8D-217, C" {
		t.Errorf("Quoted engine id not preserved: %q", raws[2].Engine)
	}
	for m := 1; m < 4; m++ {
		if !math.IsNaN(raws[1].FuelFlow[m]) {
			t.Errorf("Expected NaN fuel flow at mode %d, got %f", m, raws[1].FuelFlow[m])
		}
	}
}

func TestReadRawMissingColumns(t *testing.T) {
	csv := "Engine Identification,B/P Ratio,Rated Thrust (kN)\nX,1,2\n"

	_, err := ReadRaw(strings.NewReader(csv))
	var schemaErr *SchemaError
	if !errors.As(err, &schemaErr) {
		t.Fatalf("Expected *SchemaError, got %v", err)
	}
	if len(schemaErr.Missing) != 6 {
		t.Errorf("Expected 6 missing columns, got %v", schemaErr.Missing)
	}
	if !strings.Contains(err.Error(), "Pressure Ratio") {
		t.Errorf("Error should name the missing column: %v", err)
	}
}

func TestReadRawHeaderOnly(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantErr   bool
		wantSchem bool
	}{
		{"header with newline", rawHeader, false, false},
		{"header without newline", strings.TrimSuffix(rawHeader, "\n"), false, false},
		{"header missing columns", "Engine Identification,B/P Ratio\n", true, true},
		{"empty input", "", true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raws, err := ReadRaw(strings.NewReader(tt.input))
			if (err != nil) != tt.wantErr {
				t.Fatalf("ReadRaw error = %v, wantErr %v", err, tt.wantErr)
			}
			var schemaErr *SchemaError
			if errors.As(err, &schemaErr) != tt.wantSchem {
				t.Errorf("Expected SchemaError %v, got %v", tt.wantSchem, err)
			}
			if !tt.wantErr && len(raws) != 0 {
				t.Errorf("Expected no records, got %d", len(raws))
			}
		})
	}
}

func TestReadRawFileMissing(t *testing.T) {
	if _, err := ReadRawFile("does/not/exist.csv"); err == nil {
		t.Error("Expected error for missing file")
	}
}
