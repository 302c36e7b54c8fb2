// Package scenario parses HCL scenario files for batch comparison.
//
// A scenario file holds one block per parameter set:
//
//	scenario "feeder-a" {
//	  voltage      = 400
//	  power_kw     = 10
//	  power_factor = 0.8
//	  distance     = 100
//	}
//
// Optional attributes (voltage_drop_limit, phases, installation_method,
// ambient_temp) fall back to the engine defaults when omitted.
package scenario

import (
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"cablesizer/core/compare"
	"cablesizer/core/sizing"
	"cablesizer/internal/errors"
)

type scenarioFile struct {
	Scenarios []scenarioBlock `hcl:"scenario,block"`
}

type scenarioBlock struct {
	Name               string  `hcl:"name,label"`
	Voltage            float64 `hcl:"voltage"`
	PowerKW            float64 `hcl:"power_kw"`
	PowerFactor        float64 `hcl:"power_factor"`
	Distance           float64 `hcl:"distance"`
	VoltageDropLimit   float64 `hcl:"voltage_drop_limit,optional"`
	Phases             int     `hcl:"phases,optional"`
	InstallationMethod string  `hcl:"installation_method,optional"`
	AmbientTemp        int     `hcl:"ambient_temp,optional"`
}

// ParseFile reads scenarios from an HCL file on disk.
func ParseFile(path string) ([]compare.Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(errors.TypeParsing, err, "failed to read scenario file %s", path)
	}
	return Parse(data, path)
}

// Parse decodes scenarios from HCL source. The filename is used only
// for diagnostics.
func Parse(src []byte, filename string) ([]compare.Scenario, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, errors.Parsing("failed to parse scenario file", diags)
	}

	var parsed scenarioFile
	if diags := gohcl.DecodeBody(file.Body, nil, &parsed); diags.HasErrors() {
		return nil, errors.Parsing("failed to decode scenario blocks", diags)
	}

	scenarios := make([]compare.Scenario, 0, len(parsed.Scenarios))
	for _, b := range parsed.Scenarios {
		scenarios = append(scenarios, compare.Scenario{
			Name: b.Name,
			Input: sizing.Input{
				Voltage:            b.Voltage,
				PowerKW:            b.PowerKW,
				PowerFactor:        b.PowerFactor,
				Distance:           b.Distance,
				VoltageDropLimit:   b.VoltageDropLimit,
				Phases:             b.Phases,
				InstallationMethod: b.InstallationMethod,
				AmbientTemp:        b.AmbientTemp,
			},
		})
	}

	return scenarios, nil
}
