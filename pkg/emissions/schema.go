package emissions

import (
	"fmt"
	"strings"
)

// Column maps a raw databank header to the short name used downstream.
type Column struct {
	Raw  string
	Name string
}

// Internal column names.
const (
	ColEngine   = "engine"
	ColBPR      = "BPR"
	ColOPR      = "OPR"
	ColTestDate = "test_date"
	ColFMax     = "F_max"
	ColFFTO     = "FF_TO"
	ColFF85     = "FF_85"
	ColFF30     = "FF_30"
	ColFF7      = "FF_7"
)

// RawColumns lists the nine raw columns the builder selects, in output order.
var RawColumns = []Column{
	{"Engine Identification", ColEngine},
	{"B/P Ratio", ColBPR},
	{"Pressure Ratio", ColOPR},
	{"Initial Test Date", ColTestDate},
	{"Rated Thrust (kN)", ColFMax},
	{"Fuel Flow T/O (kg/sec)", ColFFTO},
	{"Fuel Flow C/O (kg/sec)", ColFF85},
	{"Fuel Flow App (kg/sec)", ColFF30},
	{"Fuel Flow Idle (kg/sec)", ColFF7},
}

// SchemaError reports raw columns missing from the input header.
type SchemaError struct {
	Missing []string
}

func (e *SchemaError) Error() string {
	quoted := make([]string, len(e.Missing))
	for i, m := range e.Missing {
		quoted[i] = fmt.Sprintf("%q", m)
	}
	return fmt.Sprintf("schema: missing %d required column(s): %s", len(e.Missing), strings.Join(quoted, ", "))
}

// CheckSchema returns a *SchemaError naming every required raw column absent
// from header. Extra columns are allowed.
func CheckSchema(header []string) error {
	have := make(map[string]struct{}, len(header))
	for _, h := range header {
		have[h] = struct{}{}
	}
	var missing []string
	for _, c := range RawColumns {
		if _, ok := have[c.Raw]; !ok {
			missing = append(missing, c.Raw)
		}
	}
	if len(missing) > 0 {
		return &SchemaError{Missing: missing}
	}
	return nil
}

func rawNames() []string {
	out := make([]string, len(RawColumns))
	for i, c := range RawColumns {
		out[i] = c.Raw
	}
	return out
}
