// Package compare runs the sizing engine over a set of independent
// scenarios and aggregates the outcomes. Entries share no state; output
// order matches input order.
package compare

import "cablesizer/core/sizing"

// Scenario is one named parameter set for comparison.
type Scenario struct {
	// Name labels the scenario in output; optional
	Name string `json:"name,omitempty"`

	sizing.Input
}

// Item pairs a scenario with its sizing result. Scenario numbering is
// 1-based to match the input order as presented to users.
type Item struct {
	Scenario        int           `json:"scenario"`
	Name            string        `json:"name,omitempty"`
	InputParameters sizing.Input  `json:"input_parameters"`
	Result          sizing.Result `json:"result"`
}

// Summary aggregates a comparison run.
type Summary struct {
	TotalScenarios     int     `json:"total_scenarios"`
	SafeScenarios      int     `json:"safe_scenarios"`
	AverageVoltageDrop float64 `json:"average_voltage_drop"`
	TotalPowerLoss     float64 `json:"total_power_loss"`
}

// Comparison is the full output of a comparison run.
type Comparison struct {
	Results []Item  `json:"comparison_results"`
	Summary Summary `json:"summary"`
}

// Run sizes every scenario independently and aggregates the results.
func Run(eng *sizing.Engine, scenarios []Scenario) Comparison {
	items := make([]Item, 0, len(scenarios))

	safe := 0
	dropSum := 0.0
	lossSum := 0.0

	for i, sc := range scenarios {
		in := sc.Input.WithDefaults()
		res := eng.Size(in)

		if res.IsSafe {
			safe++
		}
		dropSum += res.VoltageDropPercent
		lossSum += res.PowerLossWatts

		items = append(items, Item{
			Scenario:        i + 1,
			Name:            sc.Name,
			InputParameters: in,
			Result:          res,
		})
	}

	avgDrop := 0.0
	if len(scenarios) > 0 {
		avgDrop = dropSum / float64(len(scenarios))
	}

	return Comparison{
		Results: items,
		Summary: Summary{
			TotalScenarios:     len(scenarios),
			SafeScenarios:      safe,
			AverageVoltageDrop: avgDrop,
			TotalPowerLoss:     lossSum,
		},
	}
}
