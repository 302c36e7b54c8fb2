package sizing

import "strings"

// Validation collects every problem with an input in one pass, instead of
// failing fast on the first violation. Errors reject the request; warnings
// do not stop the calculation.
type Validation struct {
	Errors   []string `json:"errors,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
}

// OK reports whether the input can be calculated.
func (v Validation) OK() bool {
	return len(v.Errors) == 0
}

// Message joins all errors into a single human-readable string.
func (v Validation) Message() string {
	return strings.Join(v.Errors, "; ")
}

// Validate checks an input for physically nonsensical parameters.
func Validate(in Input) Validation {
	var v Validation

	if in.Voltage <= 0 {
		v.Errors = append(v.Errors, "Voltage must be positive")
	}
	if in.PowerKW <= 0 {
		v.Errors = append(v.Errors, "Power must be positive")
	}
	if in.PowerFactor <= 0 || in.PowerFactor > 1 {
		v.Errors = append(v.Errors, "Power factor must be between 0 and 1")
	}
	if in.Distance <= 0 {
		v.Errors = append(v.Errors, "Distance must be positive")
	}
	if in.Distance > 10000 {
		v.Warnings = append(v.Warnings, "Distance seems too large (>10km). Please verify.")
	}

	return v
}
