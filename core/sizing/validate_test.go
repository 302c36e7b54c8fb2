package sizing

import (
	"strings"
	"testing"
)

// TestZeroVoltageRejected proves the concrete scenario: voltage=0 must
// report "Voltage must be positive" and fail validation.
func TestZeroVoltageRejected(t *testing.T) {
	v := Validate(Input{Voltage: 0, PowerKW: 10, PowerFactor: 0.8, Distance: 100})

	if v.OK() {
		t.Fatal("zero voltage passed validation")
	}
	found := false
	for _, msg := range v.Errors {
		if msg == "Voltage must be positive" {
			found = true
		}
	}
	if !found {
		t.Fatalf("errors = %v, want to contain %q", v.Errors, "Voltage must be positive")
	}
}

// TestAllViolationsCollected proves validation reports every problem in
// one pass instead of failing fast.
func TestAllViolationsCollected(t *testing.T) {
	v := Validate(Input{Voltage: -1, PowerKW: 0, PowerFactor: 1.5, Distance: -5})

	if len(v.Errors) != 4 {
		t.Fatalf("got %d errors, want 4: %v", len(v.Errors), v.Errors)
	}
}

// TestLargeDistanceWarnsButProceeds proves the concrete scenario:
// distance=15000 yields a warning but the calculation still runs.
func TestLargeDistanceWarnsButProceeds(t *testing.T) {
	in := Input{Voltage: 400, PowerKW: 10, PowerFactor: 0.8, Distance: 15000}

	v := Validate(in)
	if !v.OK() {
		t.Fatalf("large distance rejected: %v", v.Errors)
	}
	if len(v.Warnings) != 1 || !strings.Contains(v.Warnings[0], ">10km") {
		t.Fatalf("warnings = %v, want one >10km warning", v.Warnings)
	}

	// The calculation must still produce a structured answer.
	res := NewDefault().Size(in)
	if res.RecommendedSize == "" {
		t.Fatal("no recommendation for warned-but-valid input")
	}
}

func TestPowerFactorBounds(t *testing.T) {
	base := Input{Voltage: 400, PowerKW: 10, Distance: 100}

	for _, pf := range []float64{0, -0.1, 1.01, 2} {
		in := base
		in.PowerFactor = pf
		if Validate(in).OK() {
			t.Errorf("power factor %v passed validation", pf)
		}
	}

	for _, pf := range []float64{0.01, 0.5, 0.8, 1.0} {
		in := base
		in.PowerFactor = pf
		if !Validate(in).OK() {
			t.Errorf("power factor %v failed validation", pf)
		}
	}
}

func TestValidationMessage(t *testing.T) {
	v := Validate(Input{Voltage: 0, PowerKW: 0, PowerFactor: 0.8, Distance: 100})

	msg := v.Message()
	if !strings.Contains(msg, "Voltage must be positive") || !strings.Contains(msg, "Power must be positive") {
		t.Fatalf("message = %q, want both violations", msg)
	}
}
