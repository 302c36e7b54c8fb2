// Package sizing implements the cable size selection engine. Each
// calculation is a stateless, side-effect-free function of its input and
// the static reference tables; the engine is safe for concurrent use.
package sizing

import (
	"cablesizer/core/catalog"
	"cablesizer/core/electrical"
)

// AmpacityMargin is the fixed safety margin applied to the derated current
// when selecting against cable capacity.
const AmpacityMargin = 1.25

// Input is one sizing scenario. Zero-valued optional fields are replaced
// by conventional defaults (three phase, air, 30 °C, 5 % drop limit).
type Input struct {
	// Voltage is the supply voltage in volts
	Voltage float64 `json:"voltage"`

	// PowerKW is the load demand in kilowatts
	PowerKW float64 `json:"power_kw"`

	// PowerFactor is the load power factor, in (0, 1]
	PowerFactor float64 `json:"power_factor"`

	// Distance is the conductor run length in meters
	Distance float64 `json:"distance"`

	// VoltageDropLimit is the allowed drop in percent of supply voltage
	VoltageDropLimit float64 `json:"voltage_drop_limit,omitempty"`

	// Phases is the phase count, 1 or 3
	Phases int `json:"phases,omitempty"`

	// InstallationMethod is one of air, conduit, buried, tray
	InstallationMethod string `json:"installation_method,omitempty"`

	// AmbientTemp is the ambient temperature in °C
	AmbientTemp int `json:"ambient_temp,omitempty"`
}

// WithDefaults returns a copy of the input with unset optional fields
// replaced by the conventional defaults.
func (in Input) WithDefaults() Input {
	if in.VoltageDropLimit == 0 {
		in.VoltageDropLimit = 5.0
	}
	if in.Phases == 0 {
		in.Phases = 3
	}
	if in.InstallationMethod == "" {
		in.InstallationMethod = "air"
	}
	if in.AmbientTemp == 0 {
		in.AmbientTemp = 30
	}
	return in
}

// Engine selects cable sizes against the catalog and derating tables.
type Engine struct {
	catalog  *catalog.Catalog
	derating *catalog.Derating
}

// New creates an engine over the given reference tables.
func New(cat *catalog.Catalog, der *catalog.Derating) *Engine {
	return &Engine{catalog: cat, derating: der}
}

// NewDefault creates an engine over the standard built-in tables.
func NewDefault() *Engine {
	return New(catalog.NewStandard(), catalog.NewStandardDerating())
}

// Catalog returns the engine's cable catalog.
func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

// Derating returns the engine's derating tables.
func (e *Engine) Derating() *catalog.Derating {
	return e.derating
}

// Size selects the smallest catalog entry satisfying both the derated
// ampacity constraint and the voltage drop limit. When no entry qualifies
// it falls back to the largest available size; the result then carries
// IsSafe=false rather than an error, so the caller always gets a usable
// recommendation.
func (e *Engine) Size(in Input) Result {
	in = in.WithDefaults()

	current := electrical.LineCurrent(in.Voltage, in.PowerKW, in.PowerFactor, in.Phases)

	installationFactor := e.derating.InstallationFactor(in.InstallationMethod)
	temperatureFactor := e.derating.TemperatureFactor(in.AmbientTemp)
	totalDerating := installationFactor * temperatureFactor
	deratedCurrent := current / totalDerating

	// Scan ascending; stop at the first entry that satisfies both
	// constraints. Larger sizes are never preferred.
	var selected catalog.Entry
	found := false
	for _, entry := range e.catalog.Entries() {
		if entry.CurrentCapacity < deratedCurrent*AmpacityMargin {
			continue
		}
		drop := electrical.VoltageDrop(current, entry.Resistance, in.Distance, in.Phases)
		if (drop/in.Voltage)*100 <= in.VoltageDropLimit {
			selected = entry
			found = true
			break
		}
	}
	if !found {
		selected = e.catalog.Largest()
	}

	// Operating numbers use the actual current; the ampacity margin
	// applies only to selection.
	voltageDrop := electrical.VoltageDrop(current, selected.Resistance, in.Distance, in.Phases)
	powerLoss := electrical.PowerLoss(current, selected.Resistance, in.Distance, in.Phases)
	voltageDropPercent := (voltageDrop / in.Voltage) * 100

	isSafe := voltageDropPercent <= in.VoltageDropLimit &&
		selected.CurrentCapacity >= deratedCurrent*AmpacityMargin

	return Result{
		RecommendedSize:    selected.Size + " mm²",
		Current:            current,
		VoltageDropVolts:   voltageDrop,
		VoltageDropPercent: voltageDropPercent,
		PowerLossWatts:     powerLoss,
		IsSafe:             isSafe,
		SafetyFactor:       selected.CurrentCapacity / deratedCurrent,
		Breakdown: Breakdown{
			CalculatedCurrent:  current,
			DeratedCurrent:     deratedCurrent,
			CableCapacity:      selected.CurrentCapacity,
			CableSize:          selected.Area,
			InstallationFactor: installationFactor,
			TemperatureFactor:  temperatureFactor,
			TotalDerating:      totalDerating,
			VoltageDropVolts:   voltageDrop,
			VoltageDropPercent: voltageDropPercent,
			PowerLossWatts:     powerLoss,
			CableResistance:    selected.Resistance,
			Phases:             in.Phases,
			InstallationMethod: in.InstallationMethod,
			AmbientTemp:        in.AmbientTemp,
		},
	}
}
