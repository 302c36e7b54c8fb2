package report

import "cablesizer/core/sizing"

// Summary is the headline portion of a report.
type Summary struct {
	RecommendedSize    string  `json:"recommended_cable_size"`
	VoltageDropPercent float64 `json:"voltage_drop_percentage"`
	PowerLossWatts     float64 `json:"power_loss_watts"`
	Current            float64 `json:"current_amperes"`
	IsSafe             bool    `json:"is_safe"`
	SafetyFactor       float64 `json:"safety_factor"`
}

// Report is the full decision-support document for one scenario.
type Report struct {
	InputParameters      sizing.Input     `json:"input_parameters"`
	SizingResult         Summary          `json:"cable_sizing_result"`
	DetailedCalculations sizing.Breakdown `json:"detailed_calculations"`
	EconomicAnalysis     Economics        `json:"economic_analysis"`
	Recommendations      []string         `json:"recommendations"`
}

// Generate runs the sizing engine for the input and composes the report.
func Generate(eng *sizing.Engine, in sizing.Input) Report {
	in = in.WithDefaults()
	res := eng.Size(in)

	return Report{
		InputParameters: in,
		SizingResult: Summary{
			RecommendedSize:    res.RecommendedSize,
			VoltageDropPercent: res.VoltageDropPercent,
			PowerLossWatts:     res.PowerLossWatts,
			Current:            res.Current,
			IsSafe:             res.IsSafe,
			SafetyFactor:       res.SafetyFactor,
		},
		DetailedCalculations: res.Breakdown,
		EconomicAnalysis:     Estimate(res.Breakdown.CableSize, in.Distance, res.PowerLossWatts),
		Recommendations:      Advise(res),
	}
}
