// Package electrical implements the exact physical relations between
// load, current, voltage drop, and resistive loss for single- and
// three-phase circuits.
package electrical

import "math"

// LineCurrent computes the line current in amperes for a load of powerKW
// kilowatts at the given supply voltage and power factor.
//
// Single phase: I = 1000·P / (V·pf)
// Three phase:  I = 1000·P / (√3·V·pf)
func LineCurrent(voltage, powerKW, powerFactor float64, phases int) float64 {
	if phases == 1 {
		return (powerKW * 1000) / (voltage * powerFactor)
	}
	return (powerKW * 1000) / (math.Sqrt(3) * voltage * powerFactor)
}

// VoltageDrop computes the voltage drop in volts over a run of distance
// meters of conductor with the given resistance in Ω/km.
//
// Single phase: Vd = 2·I·R·L / 1000  (round-trip conductor)
// Three phase:  Vd = √3·I·R·L / 1000 (line-to-line relation)
func VoltageDrop(current, resistance, distance float64, phases int) float64 {
	if phases == 1 {
		return 2 * current * resistance * distance / 1000
	}
	return math.Sqrt(3) * current * resistance * distance / 1000
}

// PowerLoss computes the resistive loss in watts over a run of distance
// meters of conductor with the given resistance in Ω/km.
//
// Single phase: Ploss = 2·I²·R·L / 1000
// Three phase:  Ploss = 3·I²·R·L / 1000
func PowerLoss(current, resistance, distance float64, phases int) float64 {
	if phases == 1 {
		return 2 * current * current * resistance * distance / 1000
	}
	return 3 * current * current * resistance * distance / 1000
}
