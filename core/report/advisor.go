package report

import "cablesizer/core/sizing"

// Advise returns the free-text advisories triggered by a sizing result.
// The rules are independent and non-exclusive; zero or several may fire.
func Advise(res sizing.Result) []string {
	var recommendations []string

	if !res.IsSafe {
		recommendations = append(recommendations,
			"WARNING: Calculated configuration may not be safe. Consider larger cable size or shorter distance.")
	}

	if res.VoltageDropPercent > 3.0 {
		recommendations = append(recommendations,
			"Consider using a larger cable size to reduce voltage drop.")
	}

	if res.SafetyFactor < 1.5 {
		recommendations = append(recommendations,
			"Safety factor is low. Consider increasing cable size for better safety margin.")
	}

	if res.PowerLossWatts > 1000 {
		recommendations = append(recommendations,
			"High power loss detected. Consider using larger cable to improve efficiency.")
	}

	if res.VoltageDropPercent < 1.0 {
		recommendations = append(recommendations,
			"Cable size may be oversized. Consider smaller cable for cost optimization.")
	}

	return recommendations
}
