// Package cmd - report command
package cmd

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/spf13/cobra"

	"cablesizer/core/report"
	"cablesizer/core/sizing"
)

var reportFormat string

// reportCmd represents the report command
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate a full sizing report with economics and advisories",
	Long: `Generate a comprehensive report for one scenario: the sizing result,
the detailed calculation breakdown, a rough economic estimate, and
threshold-triggered recommendations.

Examples:
  cablesizer report --voltage 400 --power 10 --pf 0.8 --distance 100
  cablesizer report --format json --voltage 400 --power 75 --pf 0.85 --distance 250`,
	RunE: runReport,
}

func init() {
	addScenarioFlags(reportCmd)
	reportCmd.Flags().StringVarP(&reportFormat, "format", "f", "cli", "output format (cli, json)")
}

func runReport(cmd *cobra.Command, args []string) error {
	in := scenarioInput()
	if err := checkInput(in); err != nil {
		return err
	}

	rep := report.Generate(sizing.NewDefault(), in)

	if reportFormat == "json" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	}

	printResult(sizing.NewDefault().Size(in))

	fmt.Println("\nEconomic analysis:")
	fmt.Printf("  Cable cost:       $%s/m, $%s total\n",
		rep.EconomicAnalysis.CostPerMeter.StringFixed(2),
		rep.EconomicAnalysis.TotalCost.StringFixed(2))
	fmt.Printf("  Annual loss:      %s kWh ($%s)\n",
		rep.EconomicAnalysis.AnnualLossKWh.StringFixed(1),
		rep.EconomicAnalysis.AnnualLossCost.StringFixed(2))
	if math.IsInf(float64(rep.EconomicAnalysis.PaybackYears), 1) {
		fmt.Println("  Payback period:   n/a (no annual savings)")
	} else {
		fmt.Printf("  Payback period:   %.1f years\n", float64(rep.EconomicAnalysis.PaybackYears))
	}

	if len(rep.Recommendations) > 0 {
		fmt.Println("\nRecommendations:")
		for _, rec := range rep.Recommendations {
			fmt.Printf("  - %s\n", rec)
		}
	}

	return nil
}
