package compare

import (
	"math"
	"testing"

	"cablesizer/core/sizing"
)

func testScenarios() []Scenario {
	return []Scenario{
		{Name: "feeder-a", Input: sizing.Input{Voltage: 400, PowerKW: 10, PowerFactor: 0.8, Distance: 100}},
		{Name: "feeder-b", Input: sizing.Input{Voltage: 230, PowerKW: 3, PowerFactor: 0.9, Distance: 30, Phases: 1}},
		{Name: "overload", Input: sizing.Input{Voltage: 400, PowerKW: 500, PowerFactor: 0.8, Distance: 1000}},
	}
}

// TestOrderAndLengthPreserved proves output order matches input order and
// every scenario yields exactly one result.
func TestOrderAndLengthPreserved(t *testing.T) {
	scenarios := testScenarios()
	result := Run(sizing.NewDefault(), scenarios)

	if len(result.Results) != len(scenarios) {
		t.Fatalf("got %d results for %d scenarios", len(result.Results), len(scenarios))
	}
	for i, item := range result.Results {
		if item.Scenario != i+1 {
			t.Errorf("results[%d].Scenario = %d, want %d", i, item.Scenario, i+1)
		}
		if item.Name != scenarios[i].Name {
			t.Errorf("results[%d].Name = %s, want %s", i, item.Name, scenarios[i].Name)
		}
	}
}

// TestSummaryAggregates checks safe count, mean drop, and loss sum against
// the individual results.
func TestSummaryAggregates(t *testing.T) {
	eng := sizing.NewDefault()
	scenarios := testScenarios()
	result := Run(eng, scenarios)

	safe := 0
	dropSum := 0.0
	lossSum := 0.0
	for _, sc := range scenarios {
		res := eng.Size(sc.Input)
		if res.IsSafe {
			safe++
		}
		dropSum += res.VoltageDropPercent
		lossSum += res.PowerLossWatts
	}

	if result.Summary.TotalScenarios != 3 {
		t.Errorf("total = %d, want 3", result.Summary.TotalScenarios)
	}
	if result.Summary.SafeScenarios != safe {
		t.Errorf("safe = %d, want %d", result.Summary.SafeScenarios, safe)
	}
	if math.Abs(result.Summary.AverageVoltageDrop-dropSum/3) > 1e-9 {
		t.Errorf("average drop = %v, want %v", result.Summary.AverageVoltageDrop, dropSum/3)
	}
	if math.Abs(result.Summary.TotalPowerLoss-lossSum) > 1e-9 {
		t.Errorf("total loss = %v, want %v", result.Summary.TotalPowerLoss, lossSum)
	}

	// The overload scenario must be counted unsafe.
	if result.Summary.SafeScenarios != 2 {
		t.Errorf("safe = %d, want 2 (overload scenario is unsafe)", result.Summary.SafeScenarios)
	}
}

// TestEmptyRun proves zero scenarios produce an empty, zeroed comparison
// instead of dividing by zero.
func TestEmptyRun(t *testing.T) {
	result := Run(sizing.NewDefault(), nil)

	if len(result.Results) != 0 {
		t.Errorf("got %d results for empty input", len(result.Results))
	}
	if result.Summary.AverageVoltageDrop != 0 {
		t.Errorf("average drop = %v, want 0", result.Summary.AverageVoltageDrop)
	}
}

// TestScenariosIndependent proves per-entry results do not depend on
// neighbors: reordering the input reorders but does not change results.
func TestScenariosIndependent(t *testing.T) {
	eng := sizing.NewDefault()
	scenarios := testScenarios()

	forward := Run(eng, scenarios)

	reversed := []Scenario{scenarios[2], scenarios[1], scenarios[0]}
	backward := Run(eng, reversed)

	if forward.Results[0].Result.RecommendedSize != backward.Results[2].Result.RecommendedSize {
		t.Error("result changed when scenario order changed")
	}
	if forward.Summary.TotalPowerLoss != backward.Summary.TotalPowerLoss {
		t.Error("summary changed when scenario order changed")
	}
}
