package cmd

import (
	"fmt"
	"strconv"

	"github.com/huangsam/ftracker/core"
	"github.com/huangsam/ftracker/internal/contract"
	"github.com/huangsam/ftracker/schema"
	"github.com/spf13/cobra"
)

// summarizeCmd summarizes one package given on the command line.
var summarizeCmd = &cobra.Command{
	Use:   "summarize CODE N...",
	Short: "Summarize one sensor package from positional arguments.",
	Long: `Summarize a single workout without touching the configured packages.

The first argument is the activity code (RUN, WLK or SWM). The remaining
arguments are the readings in the order the code expects them.

Examples:
  # 15000 steps in one hour at 75 kg
  ftracker summarize RUN 15000 1 75

  # Walking needs the height in cm
  ftracker summarize WLK 9000 1 75 180

  # Swimming needs the pool length (m) and pool count
  ftracker summarize SWM 720 1 80 25 40 --output json`,
	Args:    cobra.MinimumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, args []string) {
		pkg, err := parsePackageArgs(args)
		if err != nil {
			contract.LogFatal("Invalid package arguments", err)
		}
		if err := core.ExecuteSummarize(rootCtx, cfg, historyManager, pkg); err != nil {
			contract.LogFatal("Cannot summarize workout", err)
		}
	},
}

// parsePackageArgs builds a package from a code followed by numeric readings.
func parsePackageArgs(args []string) (schema.Package, error) {
	if len(args) == 0 {
		return schema.Package{}, fmt.Errorf("missing activity code")
	}
	data := make([]float64, 0, len(args)-1)
	for i, arg := range args[1:] {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return schema.Package{}, fmt.Errorf("reading %d (%q) is not a number: %w", i+1, arg, err)
		}
		data = append(data, v)
	}
	return schema.Package{Code: schema.WorkoutCode(args[0]), Data: data}, nil
}
