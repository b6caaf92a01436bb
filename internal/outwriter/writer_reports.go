package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/huangsam/ftracker/internal/contract"
	"github.com/huangsam/ftracker/internal/parquet"
	"github.com/huangsam/ftracker/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// writeJSONReports writes the reports with their effort label and rendered message.
func writeJSONReports(w io.Writer, reports []schema.Report) error {
	return writeJSON(w, schema.EnrichReports(reports))
}

// writeCSVReports writes the reports as CSV rows formatted with the configured precision.
func writeCSVReports(w io.Writer, reports []schema.Report, fmtFloat func(float64) string, intFmt string) error {
	header := []string{"seq", "code", "training_type", "duration_h", "distance_km", "speed_kmh", "calories", "effort"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, r := range reports {
			row := []string{
				fmt.Sprintf(intFmt, r.Seq),
				string(r.Code),
				r.TrainingType,
				fmtFloat(r.Duration),
				fmtFloat(r.Distance),
				fmtFloat(r.Speed),
				fmtFloat(r.Calories),
				string(schema.GetEffortLabel(r.Calories)),
			}
			if err := cw.Write(row); err != nil {
				return fmt.Errorf("failed to write CSV record: %w", err)
			}
		}
		return nil
	})
}

// writeTableReports renders the reports with the tablewriter API followed by a summary line.
func writeTableReports(w io.Writer, reports []schema.Report, cfg *contract.Config, fmtFloat func(float64) string, intFmt string) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"#", "Workout", "Duration (h)", "Distance (km)", "Speed (km/h)", "Calories", "Effort"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	labelWidth := GetMaxTableLabelWidth(cfg)
	var data [][]string
	var totalCalories, totalDistance float64
	for _, r := range reports {
		effort := string(schema.GetEffortLabel(r.Calories))
		if cfg.UseColors {
			effort = contract.GetColorEffort(r.Calories)
		}
		data = append(data, []string{
			fmt.Sprintf(intFmt, r.Seq+1),
			contract.TruncateLabel(r.TrainingType, labelWidth),
			fmtFloat(r.Duration),
			fmtFloat(r.Distance),
			fmtFloat(r.Speed),
			fmtFloat(r.Calories),
			effort,
		})
		totalCalories += r.Calories
		totalDistance += r.Distance
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Summarized %d workouts (total distance: %s km, total calories: %s)\n",
		len(reports), fmtFloat(totalDistance), fmtFloat(totalCalories))
	return err
}

// writeParquetReports encodes the reports as a Parquet file.
func writeParquetReports(w io.Writer, reports []schema.Report) error {
	return parquet.WriteWorkoutReports(w, parquet.ConvertReports(reports, time.Now()))
}
