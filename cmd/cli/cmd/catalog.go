// Package cmd - catalog command
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"cablesizer/core/catalog"
)

// catalogCmd prints the reference tables
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Print the cable catalog and derating tables",
	Run: func(cmd *cobra.Command, args []string) {
		cat := catalog.NewStandard()
		der := catalog.NewStandardDerating()

		fmt.Printf("%-8s %12s %14s\n", "SIZE", "CAPACITY (A)", "RESISTANCE Ω/km")
		for _, entry := range cat.Entries() {
			fmt.Printf("%-8s %12.0f %14.4f\n", entry.Size+" mm²", entry.CurrentCapacity, entry.Resistance)
		}

		fmt.Println("\nInstallation factors:")
		for _, m := range der.InstallationMethods() {
			fmt.Printf("  %-8s %.2f\n", m, der.InstallationFactor(m))
		}

		fmt.Println("\nTemperature factors:")
		for _, t := range der.TemperatureBins() {
			fmt.Printf("  %d °C    %.2f\n", t, der.TemperatureFactor(t))
		}

		levels := catalog.StandardVoltageLevels()
		fmt.Println("\nVoltage levels:")
		fmt.Printf("  single phase: %v\n", levels.SinglePhase)
		fmt.Printf("  three phase:  %v\n", levels.ThreePhase)
	},
}
