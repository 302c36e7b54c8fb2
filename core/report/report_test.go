package report

import (
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"cablesizer/core/sizing"
)

func decimalsEqual(t *testing.T, got decimal.Decimal, want float64, label string) {
	t.Helper()
	if math.Abs(got.InexactFloat64()-want) > 1e-6 {
		t.Errorf("%s = %s, want %v", label, got, want)
	}
}

// TestCostModel checks the linear cost-per-meter model: base $2/m plus
// $0.10/m per mm².
func TestCostModel(t *testing.T) {
	decimalsEqual(t, CostPerMeter(1.5), 2.15, "cost/m for 1.5 mm²")
	decimalsEqual(t, CostPerMeter(4), 2.4, "cost/m for 4 mm²")
	decimalsEqual(t, CostPerMeter(400), 42.0, "cost/m for 400 mm²")
}

// TestEstimateEconomics checks the full economic estimate for the 4 mm²
// reference selection over 100 m with 450.195 W of loss.
func TestEstimateEconomics(t *testing.T) {
	eco := Estimate(4, 100, 450.1953125)

	decimalsEqual(t, eco.CostPerMeter, 2.4, "cost per meter")
	decimalsEqual(t, eco.TotalCost, 240, "total cost")
	// 450.195 W × 8760 h / 1000 = 3943.71 kWh
	decimalsEqual(t, eco.AnnualLossKWh, 3943.710938, "annual loss kWh")
	decimalsEqual(t, eco.AnnualLossCost, 394.371094, "annual loss cost")

	payback := float64(eco.PaybackYears)
	if math.Abs(payback-240/394.3710937) > 1e-6 {
		t.Errorf("payback = %v years, want ≈0.6086", payback)
	}
}

// TestPaybackInfinite proves zero savings yield an infinite payback,
// not an error, and that it marshals as a JSON string.
func TestPaybackInfinite(t *testing.T) {
	payback := Payback(decimal.NewFromInt(240), decimal.Zero)
	if !math.IsInf(float64(payback), 1) {
		t.Fatalf("payback with zero savings = %v, want +Inf", payback)
	}

	data, err := json.Marshal(payback)
	if err != nil {
		t.Fatalf("marshal infinite payback: %v", err)
	}
	if string(data) != `"Infinity"` {
		t.Fatalf("infinite payback marshals as %s", data)
	}

	finite := Payback(decimal.NewFromInt(240), decimal.NewFromInt(120))
	if float64(finite) != 2.0 {
		t.Errorf("payback = %v, want 2.0", finite)
	}
}

// TestAdvisoryRules exercises each threshold rule in isolation.
func TestAdvisoryRules(t *testing.T) {
	cases := []struct {
		name     string
		result   sizing.Result
		expected string
	}{
		{
			name:     "unsafe",
			result:   sizing.Result{IsSafe: false, VoltageDropPercent: 2, SafetyFactor: 2, PowerLossWatts: 100},
			expected: "may not be safe",
		},
		{
			name:     "high drop",
			result:   sizing.Result{IsSafe: true, VoltageDropPercent: 4.5, SafetyFactor: 2, PowerLossWatts: 100},
			expected: "reduce voltage drop",
		},
		{
			name:     "low safety factor",
			result:   sizing.Result{IsSafe: true, VoltageDropPercent: 2, SafetyFactor: 1.3, PowerLossWatts: 100},
			expected: "Safety factor is low",
		},
		{
			name:     "high loss",
			result:   sizing.Result{IsSafe: true, VoltageDropPercent: 2, SafetyFactor: 2, PowerLossWatts: 1500},
			expected: "High power loss",
		},
		{
			name:     "oversized",
			result:   sizing.Result{IsSafe: true, VoltageDropPercent: 0.5, SafetyFactor: 2, PowerLossWatts: 100},
			expected: "oversized",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			recs := Advise(tc.result)
			found := false
			for _, rec := range recs {
				if strings.Contains(rec, tc.expected) {
					found = true
				}
			}
			if !found {
				t.Errorf("advisories %v do not contain %q", recs, tc.expected)
			}
		})
	}
}

// TestAdvisoryRulesIndependent proves several rules can fire together and
// that a healthy result fires none.
func TestAdvisoryRulesIndependent(t *testing.T) {
	bad := sizing.Result{IsSafe: false, VoltageDropPercent: 6, SafetyFactor: 0.9, PowerLossWatts: 2000}
	if recs := Advise(bad); len(recs) != 4 {
		t.Errorf("got %d advisories for a degraded result, want 4: %v", len(recs), recs)
	}

	healthy := sizing.Result{IsSafe: true, VoltageDropPercent: 2, SafetyFactor: 2, PowerLossWatts: 500}
	if recs := Advise(healthy); len(recs) != 0 {
		t.Errorf("healthy result fired advisories: %v", recs)
	}
}

// TestGenerate composes a full report for the reference scenario.
func TestGenerate(t *testing.T) {
	rep := Generate(sizing.NewDefault(), sizing.Input{
		Voltage:     400,
		PowerKW:     10,
		PowerFactor: 0.8,
		Distance:    100,
	})

	if rep.SizingResult.RecommendedSize != "4 mm²" {
		t.Fatalf("recommended size = %s, want 4 mm²", rep.SizingResult.RecommendedSize)
	}
	if !rep.SizingResult.IsSafe {
		t.Error("reference scenario should be safe")
	}
	decimalsEqual(t, rep.EconomicAnalysis.TotalCost, 240, "total cost")

	// Drop is 3.60 % > 3 %, so the larger-cable advisory fires.
	if len(rep.Recommendations) == 0 {
		t.Fatal("expected at least one advisory")
	}

	// Defaults must be reflected in the echoed input parameters.
	if rep.InputParameters.Phases != 3 || rep.InputParameters.InstallationMethod != "air" {
		t.Errorf("input parameters missing defaults: %+v", rep.InputParameters)
	}
}
