package catalog

// VoltageLevels lists the standard supply voltages per phase system.
type VoltageLevels struct {
	SinglePhase []float64 `json:"single_phase"`
	ThreePhase  []float64 `json:"three_phase"`
}

// StandardVoltageLevels returns the standard voltage presets.
func StandardVoltageLevels() VoltageLevels {
	return VoltageLevels{
		SinglePhase: []float64{230, 240},
		ThreePhase:  []float64{400, 415, 690, 1000, 3300, 6600, 11000, 33000},
	}
}
