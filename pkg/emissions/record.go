package emissions

// Mode is a standard LTO power setting: the raw fuel-flow column it is read
// from and the fraction of rated thrust it represents.
type Mode struct {
	Column string
	Pct    float64
}

// Modes are the four fixed power settings in reshape order.
var Modes = [4]Mode{
	{ColFFTO, 1.00}, // take-off
	{ColFF85, 0.85}, // climb-out
	{ColFF30, 0.30}, // approach
	{ColFF7, 0.07},  // idle
}

// IsModePct reports whether v is one of the four fixed mode fractions.
func IsModePct(v float64) bool {
	for _, m := range Modes {
		if m.Pct == v {
			return true
		}
	}
	return false
}

// RawRecord is one engine row after column selection. Missing numeric values
// are NaN. Year is parsed once from TestDate; HasYear is false when it did not parse.
type RawRecord struct {
	Engine   string
	BPR      float64
	OPR      float64
	TestDate string
	Year     int
	HasYear  bool
	FMax     float64
	FuelFlow [4]float64 // indexed like Modes
}

// Record is one engine x power-setting row of the clean dataset.
type Record struct {
	Engine   string
	BPR      float64
	OPR      float64
	Year     int
	HasYear  bool
	ModePct  float64
	ThrustKN float64
	FuelKgS  float64
	TSFC     float64
}

// Header is the fixed clean-dataset column order.
var Header = []string{"engine", "BPR", "OPR", "year", "mode_pct", "thrust_kN", "fuel_kg_s", "TSFC"}
