package iocache

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/huangsam/ftracker/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReport(seq int, code schema.WorkoutCode, label string, calories float64) schema.Report {
	return schema.Report{
		Seq:  seq,
		Code: code,
		InfoMessage: schema.InfoMessage{
			TrainingType: label,
			Duration:     1,
			Distance:     9.75,
			Speed:        9.75,
			Calories:     calories,
		},
	}
}

func TestHistoryStore_NoneBackend(t *testing.T) {
	store, err := NewHistoryStore(schema.NoneBackend, "")
	require.NoError(t, err)
	require.NotNil(t, store)

	runID, err := store.BeginRun(time.Now(), map[string]any{"test": "value"})
	assert.NoError(t, err)
	assert.Equal(t, int64(0), runID)

	assert.NoError(t, store.RecordReport(1, sampleReport(0, schema.RunningCode, schema.RunningLabel, 797.805)))
	assert.NoError(t, store.EndRun(1, time.Now(), 1))

	runs, err := store.ListRuns()
	assert.NoError(t, err)
	assert.Empty(t, runs)

	reports, err := store.ListReports()
	assert.NoError(t, err)
	assert.Empty(t, reports)

	status, err := store.GetStatus()
	assert.NoError(t, err)
	assert.Equal(t, "none", status.Backend)
	assert.False(t, status.Connected)

	assert.NoError(t, store.Close())
}

func TestHistoryStore_UnsupportedBackend(t *testing.T) {
	_, err := NewHistoryStore(schema.DatabaseBackend("oracle"), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported backend")
}

func TestHistoryStore_InvalidMySQLConnStr(t *testing.T) {
	_, err := NewHistoryStore(schema.MySQLBackend, "not a dsn")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid MySQL connection string")
}

func TestHistoryStore_SQLite(t *testing.T) {
	store, err := NewHistoryStore(schema.SQLiteBackend, ":memory:")
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	startTime := time.Now().Add(-time.Second)
	runID, err := store.BeginRun(startTime, map[string]any{"output": "text", "precision": 3})
	require.NoError(t, err)
	assert.Greater(t, runID, int64(0))

	reports := []schema.Report{
		sampleReport(0, schema.SwimmingCode, schema.SwimmingLabel, 336),
		sampleReport(1, schema.RunningCode, schema.RunningLabel, 797.805),
	}
	for _, r := range reports {
		require.NoError(t, store.RecordReport(runID, r))
	}
	require.NoError(t, store.EndRun(runID, time.Now(), len(reports)))

	t.Run("list runs", func(t *testing.T) {
		runs, err := store.ListRuns()
		require.NoError(t, err)
		require.Len(t, runs, 1)

		run := runs[0]
		assert.Equal(t, runID, run.RunID)
		assert.WithinDuration(t, startTime, run.StartTime, time.Millisecond)
		require.NotNil(t, run.EndTime)
		require.NotNil(t, run.RunDurationMs)
		assert.GreaterOrEqual(t, *run.RunDurationMs, int32(1000))
		assert.Equal(t, int32(2), run.TotalReports)
		require.NotNil(t, run.ConfigParams)

		var params map[string]any
		require.NoError(t, json.Unmarshal([]byte(*run.ConfigParams), &params))
		assert.Equal(t, "text", params["output"])
	})

	t.Run("list reports", func(t *testing.T) {
		got, err := store.ListReports()
		require.NoError(t, err)
		require.Len(t, got, 2)

		assert.Equal(t, int32(0), got[0].Seq)
		assert.Equal(t, "SWM", got[0].WorkoutCode)
		assert.Equal(t, "Swimming", got[0].TrainingType)
		assert.InDelta(t, 336.0, got[0].Calories, 1e-9)
		assert.Equal(t, reports[0].Message(), got[0].Message)
		assert.False(t, got[0].RecordedAt.IsZero())

		assert.Equal(t, "RUN", got[1].WorkoutCode)
	})

	t.Run("status", func(t *testing.T) {
		status, err := store.GetStatus()
		require.NoError(t, err)
		assert.Equal(t, "sqlite", status.Backend)
		assert.True(t, status.Connected)
		assert.Equal(t, 1, status.TotalRuns)
		assert.Equal(t, 2, status.TotalReports)
		assert.Equal(t, runID, status.LastRunID)
		assert.Equal(t, int64(1), status.TableSizes[reportRunsTable])
		assert.Equal(t, int64(2), status.TableSizes[reportsTable])
	})

	t.Run("duplicate seq rejected", func(t *testing.T) {
		err := store.RecordReport(runID, reports[0])
		assert.Error(t, err)
	})
}

func TestHistoryStore_EndRunUnknownID(t *testing.T) {
	store, err := NewHistoryStore(schema.SQLiteBackend, ":memory:")
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	err = store.EndRun(999, time.Now(), 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to get start_time for run 999")
}

func TestHistoryStore_EmptyStatus(t *testing.T) {
	store, err := NewHistoryStore(schema.SQLiteBackend, ":memory:")
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.Equal(t, 0, status.TotalRuns)
	assert.True(t, status.LastRunTime.IsZero())
	assert.Len(t, status.TableSizes, 2)
}

func TestExportHistory(t *testing.T) {
	store, err := NewHistoryStore(schema.SQLiteBackend, ":memory:")
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	var out bytes.Buffer
	base := filepath.Join(t.TempDir(), "history")

	t.Run("empty store", func(t *testing.T) {
		err := ExportHistory(&out, store, base)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no report history found")
	})

	t.Run("missing output file", func(t *testing.T) {
		err := ExportHistory(&out, store, "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "--output-file is required")
	})

	t.Run("with data", func(t *testing.T) {
		runID, err := store.BeginRun(time.Now(), nil)
		require.NoError(t, err)
		require.NoError(t, store.RecordReport(runID, sampleReport(0, schema.RunningCode, schema.RunningLabel, 797.805)))
		require.NoError(t, store.EndRun(runID, time.Now(), 1))

		out.Reset()
		require.NoError(t, ExportHistory(&out, store, base))
		assert.FileExists(t, base+runsExportSuffix)
		assert.FileExists(t, base+reportsExportSuffix)
		assert.Contains(t, out.String(), "Exported 1 report runs")
		assert.Contains(t, out.String(), "Exported 1 reports")
	})
}

func TestExportHistory_NilStore(t *testing.T) {
	err := ExportHistory(&bytes.Buffer{}, nil, "out")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not initialized")
}

func TestPrintHistoryStatus(t *testing.T) {
	t.Run("disconnected", func(t *testing.T) {
		var buf bytes.Buffer
		PrintHistoryStatus(&buf, schema.HistoryStatus{Backend: "none"})
		assert.Equal(t, "History Backend: none\nConnected: false\n", buf.String())
	})

	t.Run("connected with runs", func(t *testing.T) {
		var buf bytes.Buffer
		ts := time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC)
		PrintHistoryStatus(&buf, schema.HistoryStatus{
			Backend:       "sqlite",
			Connected:     true,
			TotalRuns:     2,
			TotalReports:  6,
			LastRunID:     2,
			LastRunTime:   ts,
			OldestRunTime: ts,
			TableSizes:    map[string]int64{reportsTable: 6, reportRunsTable: 2},
		})
		out := buf.String()
		assert.Contains(t, out, "Last Run: 2024-05-01 10:30:00")
		assert.Contains(t, out, "Total Reports: 6")
		// tables are printed in sorted order
		assert.Contains(t, out, "  ftracker_report_runs: 2 rows\n  ftracker_reports: 6 rows\n")
	})
}

func TestQuoteTableName(t *testing.T) {
	assert.Equal(t, "`t`", quoteTableName("t", schema.MySQLBackend))
	assert.Equal(t, `"t"`, quoteTableName("t", schema.PostgreSQLBackend))
	assert.Equal(t, `"t"`, quoteTableName("t", schema.SQLiteBackend))
}

func TestValidateTableName(t *testing.T) {
	assert.NoError(t, validateTableName("ftracker_reports"))
	assert.Error(t, validateTableName(""))
	assert.Error(t, validateTableName("reports; DROP TABLE x"))
	assert.Error(t, validateTableName("1reports"))
}

func TestPlaceholders(t *testing.T) {
	assert.Equal(t, []string{"$1", "$2", "$3"}, placeholders(3, schema.PostgreSQLBackend))
	assert.Equal(t, []string{"?", "?"}, placeholders(2, schema.MySQLBackend))
	assert.Equal(t, []string{"?"}, placeholders(1, schema.SQLiteBackend))
}
