package electrical

import (
	"math"
	"testing"
)

const tolerance = 1e-9

// TestThreePhaseCurrent checks the concrete reference scenario:
// 10 kW at 400 V, pf 0.8, three phase → ≈18.04 A.
func TestThreePhaseCurrent(t *testing.T) {
	current := LineCurrent(400, 10, 0.8, 3)

	expected := 10000 / (math.Sqrt(3) * 400 * 0.8)
	if math.Abs(current-expected) > tolerance {
		t.Fatalf("three-phase current = %v, want %v", current, expected)
	}
	if math.Abs(current-18.0422) > 0.001 {
		t.Fatalf("three-phase current = %v, want ≈18.042", current)
	}
}

// TestSinglePhaseCurrentRelation proves I_3phase × √3 == I_1phase for
// equal P, V, pf.
func TestSinglePhaseCurrentRelation(t *testing.T) {
	cases := []struct {
		voltage, power, pf float64
	}{
		{230, 5, 0.9},
		{400, 10, 0.8},
		{415, 75, 0.85},
		{690, 250, 0.95},
	}

	for _, tc := range cases {
		single := LineCurrent(tc.voltage, tc.power, tc.pf, 1)
		three := LineCurrent(tc.voltage, tc.power, tc.pf, 3)

		if math.Abs(three*math.Sqrt(3)-single) > 1e-6 {
			t.Errorf("V=%v P=%v pf=%v: I3·√3 = %v, want %v",
				tc.voltage, tc.power, tc.pf, three*math.Sqrt(3), single)
		}
	}
}

// TestCurrentPositive proves I > 0 whenever power > 0 and pf > 0.
func TestCurrentPositive(t *testing.T) {
	for _, phases := range []int{1, 3} {
		for _, power := range []float64{0.1, 1, 10, 1000} {
			if current := LineCurrent(400, power, 0.8, phases); current <= 0 {
				t.Errorf("phases=%d power=%v: current = %v, want > 0", phases, power, current)
			}
		}
	}
}

// TestVoltageDropFormulas checks both phase variants against hand-computed
// values.
func TestVoltageDropFormulas(t *testing.T) {
	// Single phase: Vd = 2·I·R·L/1000 = 2·10·7.41·100/1000 = 14.82
	single := VoltageDrop(10, 7.41, 100, 1)
	if math.Abs(single-14.82) > tolerance {
		t.Errorf("single-phase drop = %v, want 14.82", single)
	}

	// Three phase: Vd = √3·I·R·L/1000
	three := VoltageDrop(10, 7.41, 100, 3)
	expected := math.Sqrt(3) * 10 * 7.41 * 100 / 1000
	if math.Abs(three-expected) > tolerance {
		t.Errorf("three-phase drop = %v, want %v", three, expected)
	}
}

// TestPowerLossFormulas checks both phase variants.
func TestPowerLossFormulas(t *testing.T) {
	// Single phase: 2·I²·R·L/1000 = 2·100·7.41·100/1000 = 148.2
	single := PowerLoss(10, 7.41, 100, 1)
	if math.Abs(single-148.2) > tolerance {
		t.Errorf("single-phase loss = %v, want 148.2", single)
	}

	// Three phase: 3·I²·R·L/1000 = 3·100·7.41·100/1000 = 222.3
	three := PowerLoss(10, 7.41, 100, 3)
	if math.Abs(three-222.3) > tolerance {
		t.Errorf("three-phase loss = %v, want 222.3", three)
	}
}

// TestDistanceMonotonicity proves that increasing distance never decreases
// voltage drop or power loss at fixed resistance.
func TestDistanceMonotonicity(t *testing.T) {
	for _, phases := range []int{1, 3} {
		prevDrop := -1.0
		prevLoss := -1.0
		for _, distance := range []float64{1, 10, 50, 100, 500, 1000, 5000} {
			drop := VoltageDrop(18.04, 4.61, distance, phases)
			loss := PowerLoss(18.04, 4.61, distance, phases)

			if drop < prevDrop {
				t.Errorf("phases=%d: drop decreased from %v to %v at distance %v", phases, prevDrop, drop, distance)
			}
			if loss < prevLoss {
				t.Errorf("phases=%d: loss decreased from %v to %v at distance %v", phases, prevLoss, loss, distance)
			}
			prevDrop, prevLoss = drop, loss
		}
	}
}
