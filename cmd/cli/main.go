// Package main - Entry point for the cablesizer CLI
package main

import (
	"os"

	"cablesizer/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
