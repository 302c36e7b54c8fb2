// Package cmd - size command
package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"cablesizer/core/sizing"
	"cablesizer/internal/config"
)

var (
	voltage      float64
	powerKW      float64
	powerFactor  float64
	distance     float64
	dropLimit    float64
	phases       int
	method       string
	ambientTemp  int
	outputFormat string
)

// sizeCmd represents the size command
var sizeCmd = &cobra.Command{
	Use:   "size",
	Short: "Select a cable size for one load scenario",
	Long: `Select the smallest standard cable that satisfies both the derated
ampacity constraint and the voltage drop limit.

Examples:
  cablesizer size --voltage 400 --power 10 --pf 0.8 --distance 100
  cablesizer size --voltage 230 --power 5 --pf 0.9 --distance 40 --phases 1
  cablesizer size --voltage 400 --power 75 --pf 0.85 --distance 250 --method buried --temp 45`,
	RunE: runSize,
}

func init() {
	addScenarioFlags(sizeCmd)
	sizeCmd.Flags().StringVarP(&outputFormat, "format", "f", "cli", "output format (cli, json)")
}

func addScenarioFlags(cmd *cobra.Command) {
	defaults := config.Get().Engine

	cmd.Flags().Float64Var(&voltage, "voltage", defaults.DefaultVoltage, "supply voltage in volts")
	cmd.Flags().Float64Var(&powerKW, "power", 0, "load demand in kW")
	cmd.Flags().Float64Var(&powerFactor, "pf", 0.8, "power factor (0-1]")
	cmd.Flags().Float64Var(&distance, "distance", 0, "conductor run length in meters")
	cmd.Flags().Float64Var(&dropLimit, "limit", defaults.DefaultVoltageDropLimit, "voltage drop limit in percent")
	cmd.Flags().IntVar(&phases, "phases", defaults.DefaultPhases, "phase count (1 or 3)")
	cmd.Flags().StringVar(&method, "method", defaults.DefaultInstallationMethod, "installation method (air, conduit, buried, tray)")
	cmd.Flags().IntVar(&ambientTemp, "temp", defaults.DefaultAmbientTemp, "ambient temperature in °C")
}

func scenarioInput() sizing.Input {
	return sizing.Input{
		Voltage:            voltage,
		PowerKW:            powerKW,
		PowerFactor:        powerFactor,
		Distance:           distance,
		VoltageDropLimit:   dropLimit,
		Phases:             phases,
		InstallationMethod: method,
		AmbientTemp:        ambientTemp,
	}
}

// checkInput validates and prints problems; returns an error when the
// input cannot be calculated. Warnings are printed but do not stop.
func checkInput(in sizing.Input) error {
	validation := sizing.Validate(in)
	for _, warning := range validation.Warnings {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", warning)
	}
	if !validation.OK() {
		for _, msg := range validation.Errors {
			fmt.Fprintf(os.Stderr, "Error: %s\n", msg)
		}
		return fmt.Errorf("invalid input parameters")
	}
	return nil
}

func runSize(cmd *cobra.Command, args []string) error {
	in := scenarioInput()
	if err := checkInput(in); err != nil {
		return err
	}

	result := sizing.NewDefault().Size(in)

	if outputFormat == "json" {
		return json.NewEncoder(os.Stdout).Encode(result)
	}

	printResult(result)
	return nil
}

func printResult(result sizing.Result) {
	fmt.Println("┌──────────────────────────────────────────────────────────┐")
	fmt.Println("│                  CABLE SIZING RESULT                     │")
	fmt.Println("├──────────────────────────────────────────────────────────┤")
	fmt.Printf("│ %-30s %25s │\n", "Recommended size", result.RecommendedSize)
	fmt.Printf("│ %-30s %25s │\n", "Line current", fmt.Sprintf("%.2f A", result.Current))
	fmt.Printf("│ %-30s %25s │\n", "Voltage drop", fmt.Sprintf("%.2f V (%.2f%%)", result.VoltageDropVolts, result.VoltageDropPercent))
	fmt.Printf("│ %-30s %25s │\n", "Power loss", fmt.Sprintf("%.1f W", result.PowerLossWatts))
	fmt.Printf("│ %-30s %25s │\n", "Safety factor", fmt.Sprintf("%.2f", result.SafetyFactor))
	fmt.Printf("│ %-30s %25s │\n", "Safe", fmt.Sprintf("%t", result.IsSafe))
	fmt.Println("├──────────────────────────────────────────────────────────┤")
	fmt.Printf("│ %-30s %25s │\n", "Derated current", fmt.Sprintf("%.2f A", result.Breakdown.DeratedCurrent))
	fmt.Printf("│ %-30s %25s │\n", "Cable capacity", fmt.Sprintf("%.0f A", result.Breakdown.CableCapacity))
	fmt.Printf("│ %-30s %25s │\n", "Total derating", fmt.Sprintf("%.3f", result.Breakdown.TotalDerating))
	fmt.Println("└──────────────────────────────────────────────────────────┘")

	if !result.IsSafe {
		fmt.Println("\nWARNING: no catalog size satisfies all constraints; this is the best-effort fallback.")
	}
}
