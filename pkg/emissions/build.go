package emissions

import "math"

// Build reshapes raw rows into long form. Rows are emitted mode by mode, in
// the order of Modes, and within a mode in input order. A row is emitted only
// when its fuel flow for that mode is present.
//
// thrust_kN = F_max * mode_pct and TSFC = fuel*3600 / (thrust_kN*1000).
// A zero thrust is not guarded and yields a non-finite TSFC.
func Build(raws []RawRecord) []Record {
	out := make([]Record, 0, len(raws)*len(Modes))
	for m, mode := range Modes {
		for _, r := range raws {
			fuel := r.FuelFlow[m]
			if math.IsNaN(fuel) {
				continue
			}
			thrust := r.FMax * mode.Pct
			out = append(out, Record{
				Engine:   r.Engine,
				BPR:      r.BPR,
				OPR:      r.OPR,
				Year:     r.Year,
				HasYear:  r.HasYear,
				ModePct:  mode.Pct,
				ThrustKN: thrust,
				FuelKgS:  fuel,
				TSFC:     TSFC(fuel, thrust),
			})
		}
	}
	return out
}

// TSFC converts fuel flow in kg/s and thrust in kN to kg/(N*h).
func TSFC(fuelKgS, thrustKN float64) float64 {
	return (fuelKgS * 3600) / (thrustKN * 1000)
}
