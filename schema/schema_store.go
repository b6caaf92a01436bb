package schema

import "time"

// ReportRunRecord represents a row from the ftracker_report_runs table.
type ReportRunRecord struct {
	RunID         int64
	StartTime     time.Time
	EndTime       *time.Time
	RunDurationMs *int32
	TotalReports  int32
	ConfigParams  *string
}

// ReportRecord represents a row from the ftracker_reports table.
type ReportRecord struct {
	RunID        int64
	Seq          int32
	WorkoutCode  string
	TrainingType string
	Duration     float64
	Distance     float64
	Speed        float64
	Calories     float64
	Message      string
	RecordedAt   time.Time
}
