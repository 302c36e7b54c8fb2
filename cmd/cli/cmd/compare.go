// Package cmd - compare command
package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"cablesizer/adapters/scenario"
	"cablesizer/core/compare"
	"cablesizer/core/sizing"
)

var compareFormat string

// compareCmd represents the compare command
var compareCmd = &cobra.Command{
	Use:   "compare [scenario-file]",
	Short: "Compare multiple sizing scenarios from an HCL file",
	Long: `Run the sizing engine over every scenario block in an HCL file and
print a comparison with summary statistics.

A scenario file looks like:

  scenario "feeder-a" {
    voltage      = 400
    power_kw     = 10
    power_factor = 0.8
    distance     = 100
  }

Examples:
  cablesizer compare scenarios.hcl
  cablesizer compare --format json scenarios.hcl`,
	Args: cobra.ExactArgs(1),
	RunE: runCompare,
}

func init() {
	compareCmd.Flags().StringVarP(&compareFormat, "format", "f", "cli", "output format (cli, json)")
}

func runCompare(cmd *cobra.Command, args []string) error {
	scenarios, err := scenario.ParseFile(args[0])
	if err != nil {
		return err
	}
	if len(scenarios) == 0 {
		fmt.Println("No scenarios found in file.")
		return nil
	}

	// Reject the whole file when any scenario is invalid; name every
	// problem so one pass fixes them all.
	invalid := false
	for i, sc := range scenarios {
		validation := sizing.Validate(sc.Input)
		for _, warning := range validation.Warnings {
			fmt.Fprintf(os.Stderr, "Warning: scenario %d (%s): %s\n", i+1, sc.Name, warning)
		}
		for _, msg := range validation.Errors {
			fmt.Fprintf(os.Stderr, "Error: scenario %d (%s): %s\n", i+1, sc.Name, msg)
			invalid = true
		}
	}
	if invalid {
		return fmt.Errorf("invalid scenarios in %s", args[0])
	}

	result := compare.Run(sizing.NewDefault(), scenarios)

	if compareFormat == "json" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	printComparison(result)
	return nil
}

func printComparison(result compare.Comparison) {
	fmt.Printf("%-4s %-16s %-10s %10s %10s %10s %6s\n",
		"#", "NAME", "SIZE", "CURRENT", "DROP %", "LOSS W", "SAFE")
	for _, item := range result.Results {
		fmt.Printf("%-4d %-16s %-10s %10.2f %10.2f %10.1f %6t\n",
			item.Scenario,
			item.Name,
			item.Result.RecommendedSize,
			item.Result.Current,
			item.Result.VoltageDropPercent,
			item.Result.PowerLossWatts,
			item.Result.IsSafe)
	}

	fmt.Printf("\n%d scenarios, %d safe, average drop %.2f%%, total loss %.1f W\n",
		result.Summary.TotalScenarios,
		result.Summary.SafeScenarios,
		result.Summary.AverageVoltageDrop,
		result.Summary.TotalPowerLoss)
}
