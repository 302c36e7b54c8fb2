// Package catalog holds the static reference data for cable sizing:
// the standard conductor table, derating factors, and voltage presets.
// All tables are immutable after construction and safe for concurrent reads.
package catalog

import "sort"

// Entry describes one standard conductor cross-section.
type Entry struct {
	// Size is the cross-section identifier, e.g. "2.5"
	Size string `json:"size"`

	// Area is the numeric cross-section in mm²
	Area float64 `json:"area_mm2"`

	// CurrentCapacity is the ampacity at reference conditions, in amperes
	CurrentCapacity float64 `json:"current_capacity"`

	// Resistance is the conductor resistance in Ω/km
	Resistance float64 `json:"resistance"`
}

// Catalog is an ordered, read-only table of standard cable sizes.
type Catalog struct {
	entries []Entry
	bySize  map[string]Entry
}

// New builds a catalog from the given entries, sorted ascending by area.
func New(entries []Entry) *Catalog {
	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Area < sorted[j].Area
	})

	bySize := make(map[string]Entry, len(sorted))
	for _, e := range sorted {
		bySize[e.Size] = e
	}

	return &Catalog{entries: sorted, bySize: bySize}
}

// NewStandard returns the built-in table of standard copper conductor sizes.
// Capacities and resistances are at reference conditions (30 °C, free air).
func NewStandard() *Catalog {
	return New([]Entry{
		{Size: "1.5", Area: 1.5, CurrentCapacity: 20, Resistance: 12.1},
		{Size: "2.5", Area: 2.5, CurrentCapacity: 27, Resistance: 7.41},
		{Size: "4", Area: 4, CurrentCapacity: 37, Resistance: 4.61},
		{Size: "6", Area: 6, CurrentCapacity: 47, Resistance: 3.08},
		{Size: "10", Area: 10, CurrentCapacity: 65, Resistance: 1.83},
		{Size: "16", Area: 16, CurrentCapacity: 85, Resistance: 1.15},
		{Size: "25", Area: 25, CurrentCapacity: 112, Resistance: 0.727},
		{Size: "35", Area: 35, CurrentCapacity: 138, Resistance: 0.524},
		{Size: "50", Area: 50, CurrentCapacity: 168, Resistance: 0.387},
		{Size: "70", Area: 70, CurrentCapacity: 213, Resistance: 0.268},
		{Size: "95", Area: 95, CurrentCapacity: 258, Resistance: 0.193},
		{Size: "120", Area: 120, CurrentCapacity: 299, Resistance: 0.153},
		{Size: "150", Area: 150, CurrentCapacity: 340, Resistance: 0.124},
		{Size: "185", Area: 185, CurrentCapacity: 384, Resistance: 0.099},
		{Size: "240", Area: 240, CurrentCapacity: 447, Resistance: 0.0754},
		{Size: "300", Area: 300, CurrentCapacity: 510, Resistance: 0.0601},
		{Size: "400", Area: 400, CurrentCapacity: 583, Resistance: 0.0470},
	})
}

// Entries returns the entries in ascending area order.
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Sizes returns the size identifiers in ascending area order.
func (c *Catalog) Sizes() []string {
	out := make([]string, len(c.entries))
	for i, e := range c.entries {
		out[i] = e.Size
	}
	return out
}

// Lookup returns the entry for a size identifier.
func (c *Catalog) Lookup(size string) (Entry, bool) {
	e, ok := c.bySize[size]
	return e, ok
}

// Largest returns the largest available size. Used as the fallback when
// no entry satisfies both the ampacity and the voltage drop constraint.
func (c *Catalog) Largest() Entry {
	return c.entries[len(c.entries)-1]
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}
