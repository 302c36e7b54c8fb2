package sizing

// Result is the outcome of one sizing calculation. It is constructed once
// per call and never mutated afterwards.
type Result struct {
	// RecommendedSize is the selected cross-section, e.g. "4 mm²".
	// Always drawn from the catalog; the engine never invents a size.
	RecommendedSize string `json:"recommended_cable_size"`

	// Current is the computed line current in amperes
	Current float64 `json:"current_amperes"`

	// VoltageDropVolts is the drop over the run at the actual current
	VoltageDropVolts float64 `json:"voltage_drop_volts"`

	// VoltageDropPercent is the drop as percent of supply voltage
	VoltageDropPercent float64 `json:"voltage_drop_percentage"`

	// PowerLossWatts is the resistive loss at the actual current
	PowerLossWatts float64 `json:"power_loss_watts"`

	// IsSafe is false when the recommendation fails either the ampacity
	// or the voltage drop constraint (e.g. the largest-size fallback)
	IsSafe bool `json:"is_safe"`

	// SafetyFactor is capacity of the selected cable over derated current
	SafetyFactor float64 `json:"safety_factor"`

	// Breakdown holds every intermediate quantity for audit
	Breakdown Breakdown `json:"details"`
}

// Breakdown records the intermediate quantities behind a Result.
type Breakdown struct {
	CalculatedCurrent  float64 `json:"calculated_current"`
	DeratedCurrent     float64 `json:"derated_current"`
	CableCapacity      float64 `json:"cable_current_capacity"`
	CableSize          float64 `json:"cable_size_mm2"`
	InstallationFactor float64 `json:"installation_factor"`
	TemperatureFactor  float64 `json:"temperature_factor"`
	TotalDerating      float64 `json:"total_derating"`
	VoltageDropVolts   float64 `json:"voltage_drop_volts"`
	VoltageDropPercent float64 `json:"voltage_drop_percentage"`
	PowerLossWatts     float64 `json:"power_loss_watts"`
	CableResistance    float64 `json:"cable_resistance"`
	Phases             int     `json:"phases"`
	InstallationMethod string  `json:"installation_method"`
	AmbientTemp        int     `json:"ambient_temperature"`
}
