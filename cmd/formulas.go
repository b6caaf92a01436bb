package cmd

import (
	"github.com/huangsam/ftracker/core"
	"github.com/huangsam/ftracker/internal/contract"
	"github.com/spf13/cobra"
)

// formulasCmd displays the formulas behind every workout type.
var formulasCmd = &cobra.Command{
	Use:   "formulas",
	Short: "Show how distance, speed and calories are computed.",
	Long: `Print the formulas and constants used for each workout type.

Nothing is computed; this is a reference for reading the reports.

Examples:
  # Human-readable formulas
  ftracker formulas

  # Constants as CSV
  ftracker formulas --output csv`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteFormulas(rootCtx, cfg, historyManager); err != nil {
			contract.LogFatal("Cannot display formulas", err)
		}
	},
}
