// Package parquet provides data structures and functions for exporting ftracker
// workout summaries and report history to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/huangsam/ftracker/schema"
	"github.com/parquet-go/parquet-go"
)

// ReportRun represents a single report run with metadata.
// This struct maps to the ftracker_report_runs database table.
type ReportRun struct {
	// RunID is the unique identifier for this report run
	RunID int64 `parquet:"run_id,snappy"`

	// StartTime is when the run began (stored as TIMESTAMP with nanosecond precision)
	StartTime time.Time `parquet:"start_time,snappy"`

	// EndTime is when the run completed (nullable)
	EndTime *time.Time `parquet:"end_time,optional,snappy"`

	// RunDurationMs is the duration of the run in milliseconds (nullable)
	RunDurationMs *int32 `parquet:"run_duration_ms,optional,snappy"`

	// TotalReports is the number of packages summarized in this run
	TotalReports int32 `parquet:"total_reports,snappy"`

	// ConfigParams contains the JSON-encoded configuration parameters (nullable)
	ConfigParams *string `parquet:"config_params,optional,snappy"`
}

// WorkoutReport is one summarized package.
// This struct maps to the ftracker_reports database table.
type WorkoutReport struct {
	RunID        int64     `parquet:"run_id,snappy"`
	Seq          int32     `parquet:"seq,snappy"`
	WorkoutCode  string    `parquet:"workout_code,snappy,dict"`
	TrainingType string    `parquet:"training_type,snappy,dict"`
	Duration     float64   `parquet:"duration,snappy"` // hours
	Distance     float64   `parquet:"distance,snappy"` // km
	Speed        float64   `parquet:"speed,snappy"`    // km/h
	Calories     float64   `parquet:"calories,snappy"`
	Message      string    `parquet:"message,snappy"`
	RecordedAt   time.Time `parquet:"recorded_at,snappy"`
}

// WriteReportRunsParquet writes a slice of ReportRun structs to a Parquet file.
func WriteReportRunsParquet(data []ReportRun, outputPath string) error {
	return writeFile(data, outputPath)
}

// WriteWorkoutReportsParquet writes a slice of WorkoutReport structs to a Parquet file.
func WriteWorkoutReportsParquet(data []WorkoutReport, outputPath string) error {
	return writeFile(data, outputPath)
}

// WriteWorkoutReports writes WorkoutReport rows to an already open destination.
func WriteWorkoutReports(w io.Writer, data []WorkoutReport) error {
	return writeRows(w, data)
}

// writeFile creates outputPath and writes rows into it.
func writeFile[T any](data []T, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := writeRows(file, data); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}

// writeRows encodes rows with a schema derived from the struct tags of T.
func writeRows[T any](w io.Writer, data []T) error {
	writer := parquet.NewGenericWriter[T](w)
	if _, err := writer.Write(data); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize parquet file: %w", err)
	}
	return nil
}

// ConvertReportRunRecords converts schema.ReportRunRecord to ReportRun for Parquet export.
func ConvertReportRunRecords(records []schema.ReportRunRecord) []ReportRun {
	result := make([]ReportRun, len(records))
	for i, record := range records {
		result[i] = ReportRun{
			RunID:         record.RunID,
			StartTime:     record.StartTime,
			EndTime:       record.EndTime,
			RunDurationMs: record.RunDurationMs,
			TotalReports:  record.TotalReports,
			ConfigParams:  record.ConfigParams,
		}
	}
	return result
}

// ConvertReportRecords converts schema.ReportRecord to WorkoutReport for Parquet export.
func ConvertReportRecords(records []schema.ReportRecord) []WorkoutReport {
	result := make([]WorkoutReport, len(records))
	for i, record := range records {
		result[i] = WorkoutReport{
			RunID:        record.RunID,
			Seq:          record.Seq,
			WorkoutCode:  record.WorkoutCode,
			TrainingType: record.TrainingType,
			Duration:     record.Duration,
			Distance:     record.Distance,
			Speed:        record.Speed,
			Calories:     record.Calories,
			Message:      record.Message,
			RecordedAt:   record.RecordedAt,
		}
	}
	return result
}

// ConvertReports converts freshly computed reports to WorkoutReport rows.
// The rows carry run id 0 since they were never persisted.
func ConvertReports(reports []schema.Report, recordedAt time.Time) []WorkoutReport {
	result := make([]WorkoutReport, len(reports))
	for i, r := range reports {
		result[i] = WorkoutReport{
			Seq:          int32(r.Seq),
			WorkoutCode:  string(r.Code),
			TrainingType: r.TrainingType,
			Duration:     r.Duration,
			Distance:     r.Distance,
			Speed:        r.Speed,
			Calories:     r.Calories,
			Message:      r.Message(),
			RecordedAt:   recordedAt,
		}
	}
	return result
}
