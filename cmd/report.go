package cmd

import (
	"github.com/huangsam/ftracker/core"
	"github.com/huangsam/ftracker/internal/contract"
	"github.com/spf13/cobra"
)

// reportCmd summarizes every configured sensor package.
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Summarize every configured sensor package.",
	Long: `Read the sensor packages from the config file and print one summary per workout.

Each package is an activity code with its positional readings:
- RUN: action, duration (h), weight (kg)
- WLK: action, duration (h), weight (kg), height (cm)
- SWM: action, duration (h), weight (kg), pool length (m), pool count

When no packages are configured, three sample packages are used.
The first invalid package stops the run and nothing is printed.

Examples:
  # Print the summary lines of the configured packages
  ftracker report

  # Show a table with effort labels
  ftracker report --output table

  # Track the run in a local history database
  ftracker report --history-backend sqlite

  # Export the reports to Parquet
  ftracker report --output parquet --output-file reports.parquet`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteReport(rootCtx, cfg, historyManager); err != nil {
			contract.LogFatal("Cannot run workout report", err)
		}
	},
}
