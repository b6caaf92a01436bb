package iocache

import (
	"errors"
	"fmt"
	"io"

	"github.com/huangsam/ftracker/internal/contract"
	"github.com/huangsam/ftracker/internal/parquet"
)

// Suffixes appended to the export base path.
const (
	runsExportSuffix    = ".report_runs.parquet"
	reportsExportSuffix = ".reports.parquet"
)

// ExportHistory writes every recorded run and report in store to two Parquet
// files derived from outputFile, and reports progress to w.
func ExportHistory(w io.Writer, store contract.HistoryStore, outputFile string) error {
	if outputFile == "" {
		return errors.New("--output-file is required for export command")
	}
	if store == nil {
		return errors.New("history store is not initialized")
	}

	status, err := store.GetStatus()
	if err != nil {
		return fmt.Errorf("failed to get history status: %w", err)
	}
	if status.TotalRuns == 0 {
		return errors.New("no report history found to export")
	}

	_, _ = fmt.Fprintf(w, "Exporting data from %s backend...\n", status.Backend)
	_, _ = fmt.Fprintf(w, "Total report runs: %d\n", status.TotalRuns)
	_, _ = fmt.Fprintf(w, "Total report records: %d\n", status.TotalReports)

	runs, err := store.ListRuns()
	if err != nil {
		return fmt.Errorf("failed to retrieve report runs: %w", err)
	}
	reports, err := store.ListReports()
	if err != nil {
		return fmt.Errorf("failed to retrieve reports: %w", err)
	}

	runsFile := outputFile + runsExportSuffix
	runRows := parquet.ConvertReportRunRecords(runs)
	if err := parquet.WriteReportRunsParquet(runRows, runsFile); err != nil {
		return fmt.Errorf("failed to write report runs: %w", err)
	}
	_, _ = fmt.Fprintf(w, "Exported %d report runs to: %s\n", len(runRows), runsFile)

	reportsFile := outputFile + reportsExportSuffix
	reportRows := parquet.ConvertReportRecords(reports)
	if err := parquet.WriteWorkoutReportsParquet(reportRows, reportsFile); err != nil {
		return fmt.Errorf("failed to write reports: %w", err)
	}
	_, _ = fmt.Fprintf(w, "Exported %d reports to: %s\n", len(reportRows), reportsFile)

	return nil
}
