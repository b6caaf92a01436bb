package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/huangsam/ftracker/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// writeTextFormulas displays formulas in human-readable text format.
func writeTextFormulas(w io.Writer, model *schema.FormulasRenderModel) error {
	title := "🏃 " + model.Title
	if _, err := fmt.Fprintf(w, "%s\n%s\n\n%s\n\n", title, strings.Repeat("=", len([]rune(title))+1), model.Description); err != nil {
		return err
	}

	for _, wf := range model.Workouts {
		lines := []string{
			fmt.Sprintf("%s (%s): %s", wf.Label, wf.Code, strings.Join(wf.Params, ", ")),
			fmt.Sprintf("   Distance:  %s", wf.Distance),
			fmt.Sprintf("   Speed:     %s", wf.MeanSpeed),
			fmt.Sprintf("   Calories:  %s", wf.Calories),
			fmt.Sprintf("   Constants: %s", formatConstants(wf.Constants)),
			"",
		}
		for _, line := range lines {
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
	}
	return nil
}

// formatConstants joins constants as name=value pairs.
func formatConstants(constants []schema.FormulaConstant) string {
	parts := make([]string, len(constants))
	for i, c := range constants {
		parts[i] = fmt.Sprintf("%s=%g", c.Name, c.Value)
	}
	return strings.Join(parts, ", ")
}

// writeCSVFormulas writes one row per constant so the coefficients stay machine-readable.
func writeCSVFormulas(w io.Writer, model *schema.FormulasRenderModel, fmtFloat func(float64) string) error {
	header := []string{"code", "label", "params", "calories_formula", "constant", "value"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, wf := range model.Workouts {
			for _, c := range wf.Constants {
				record := []string{
					string(wf.Code),
					wf.Label,
					strings.Join(wf.Params, "|"),
					wf.Calories,
					c.Name,
					fmtFloat(c.Value),
				}
				if err := cw.Write(record); err != nil {
					return fmt.Errorf("failed to write CSV record: %w", err)
				}
			}
		}
		return nil
	})
}

// writeTableFormulas renders the variant parameters and constants as a table.
func writeTableFormulas(w io.Writer, model *schema.FormulasRenderModel, fmtFloat func(float64) string) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Code", "Workout", "Params", "Constant", "Value"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignLeft
	})

	var data [][]string
	for _, wf := range model.Workouts {
		for _, c := range wf.Constants {
			data = append(data, []string{
				string(wf.Code),
				wf.Label,
				strings.Join(wf.Params, ", "),
				c.Name,
				fmtFloat(c.Value),
			})
		}
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}
