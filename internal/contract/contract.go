// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"time"

	"github.com/huangsam/ftracker/schema"
)

// HistoryManager defines the interface for accessing the report history store.
// This allows the history layer to be mocked for testing.
type HistoryManager interface {
	GetHistoryStore() HistoryStore
}

// HistoryStore defines the interface for tracking report runs and the summaries they produced.
type HistoryStore interface {
	// BeginRun creates a new report run and returns its unique ID
	BeginRun(startTime time.Time, configParams map[string]any) (int64, error)

	// RecordReport stores one computed summary for a run
	RecordReport(runID int64, report schema.Report) error

	// EndRun updates the run with completion data
	EndRun(runID int64, endTime time.Time, totalReports int) error

	// ListRuns returns all recorded runs, oldest first
	ListRuns() ([]schema.ReportRunRecord, error)

	// ListReports returns all recorded summaries, ordered by run and sequence
	ListReports() ([]schema.ReportRecord, error)

	// GetStatus returns status information about the history store
	GetStatus() (schema.HistoryStatus, error)

	// Close closes the underlying connection
	Close() error
}
