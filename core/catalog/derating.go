package catalog

import "sort"

// Derating holds the installation-method and ambient-temperature factor
// tables. Lookups fail open: an unknown method or temperature yields a
// neutral factor of 1.0 so the calculation always proceeds.
type Derating struct {
	installation map[string]float64
	temperature  map[int]float64
}

// NewStandardDerating returns the built-in derating tables.
func NewStandardDerating() *Derating {
	return &Derating{
		installation: map[string]float64{
			"air":     1.0,
			"conduit": 0.8,
			"buried":  0.7,
			"tray":    0.9,
		},
		temperature: map[int]float64{
			30: 1.0,
			35: 0.94,
			40: 0.87,
			45: 0.79,
			50: 0.71,
			55: 0.61,
			60: 0.50,
		},
	}
}

// InstallationFactor returns the derating factor for an installation method.
func (d *Derating) InstallationFactor(method string) float64 {
	if f, ok := d.installation[method]; ok {
		return f
	}
	return 1.0
}

// TemperatureFactor returns the derating factor for an ambient temperature bin.
func (d *Derating) TemperatureFactor(tempC int) float64 {
	if f, ok := d.temperature[tempC]; ok {
		return f
	}
	return 1.0
}

// InstallationMethods returns the known methods in stable (sorted) order.
func (d *Derating) InstallationMethods() []string {
	methods := make([]string, 0, len(d.installation))
	for m := range d.installation {
		methods = append(methods, m)
	}
	sort.Strings(methods)
	return methods
}

// TemperatureBins returns the known temperature bins in ascending order.
func (d *Derating) TemperatureBins() []int {
	bins := make([]int, 0, len(d.temperature))
	for t := range d.temperature {
		bins = append(bins, t)
	}
	sort.Ints(bins)
	return bins
}

// TemperatureFactors returns a copy of the temperature table.
func (d *Derating) TemperatureFactors() map[int]float64 {
	out := make(map[int]float64, len(d.temperature))
	for t, f := range d.temperature {
		out[t] = f
	}
	return out
}

// InstallationFactors returns a copy of the installation table.
func (d *Derating) InstallationFactors() map[string]float64 {
	out := make(map[string]float64, len(d.installation))
	for m, f := range d.installation {
		out[m] = f
	}
	return out
}
