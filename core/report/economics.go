// Package report composes the full sizing report: the engine result plus
// a rough economic estimate and threshold-triggered advisories.
package report

import (
	"encoding/json"
	"math"

	"github.com/shopspring/decimal"
)

// Fixed economic model constants. The tariff is deliberately not
// configurable; see the advisory thresholds for the same policy.
var (
	// baseCostPerMeter is the cost floor for any cable, $/m
	baseCostPerMeter = decimal.NewFromFloat(2.0)

	// costPerSquareMM scales cost with cross-section, $/m per mm²
	costPerSquareMM = decimal.NewFromFloat(0.1)

	// energyTariff is the assumed price of lost energy, $/kWh
	energyTariff = decimal.NewFromFloat(0.1)

	// hoursPerYear assumes continuous operation
	hoursPerYear = decimal.NewFromInt(8760)
)

// PaybackPeriod is a payback duration in years. It marshals +Inf as the
// JSON string "Infinity", since JSON has no infinity literal.
type PaybackPeriod float64

// MarshalJSON implements json.Marshaler.
func (p PaybackPeriod) MarshalJSON() ([]byte, error) {
	if math.IsInf(float64(p), 1) {
		return []byte(`"Infinity"`), nil
	}
	return json.Marshal(float64(p))
}

// Economics is the rough economic estimate for a cable choice.
type Economics struct {
	// CostPerMeter is the estimated cable cost, $/m
	CostPerMeter decimal.Decimal `json:"cable_cost_per_meter"`

	// TotalCost is the cable cost over the full run
	TotalCost decimal.Decimal `json:"total_cable_cost"`

	// AnnualLossKWh is the yearly energy lost in the conductor
	AnnualLossKWh decimal.Decimal `json:"annual_power_loss_kwh"`

	// AnnualLossCost prices the yearly loss at the fixed tariff
	AnnualLossCost decimal.Decimal `json:"annual_loss_cost"`

	// PaybackYears is TotalCost over AnnualLossCost
	PaybackYears PaybackPeriod `json:"payback_period_years"`
}

// CostPerMeter estimates the cable cost per meter from its cross-section.
// A linear model: base cost plus a per-mm² increment.
func CostPerMeter(areaMM2 float64) decimal.Decimal {
	return baseCostPerMeter.Add(costPerSquareMM.Mul(decimal.NewFromFloat(areaMM2)))
}

// Payback computes the payback period in years, +Inf when the annual
// savings are not positive.
func Payback(initialCost, annualSavings decimal.Decimal) PaybackPeriod {
	if annualSavings.LessThanOrEqual(decimal.Zero) {
		return PaybackPeriod(math.Inf(1))
	}
	return PaybackPeriod(initialCost.Div(annualSavings).InexactFloat64())
}

// Estimate builds the economic analysis for a selected cable.
func Estimate(areaMM2, distance, powerLossWatts float64) Economics {
	costPerMeter := CostPerMeter(areaMM2)
	totalCost := costPerMeter.Mul(decimal.NewFromFloat(distance))

	annualLossKWh := decimal.NewFromFloat(powerLossWatts).
		Mul(hoursPerYear).
		Div(decimal.NewFromInt(1000))
	annualLossCost := annualLossKWh.Mul(energyTariff)

	return Economics{
		CostPerMeter:   costPerMeter,
		TotalCost:      totalCost,
		AnnualLossKWh:  annualLossKWh,
		AnnualLossCost: annualLossCost,
		PaybackYears:   Payback(totalCost, annualLossCost),
	}
}
