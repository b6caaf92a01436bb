package iocache

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/huangsam/ftracker/internal/contract"
	"github.com/huangsam/ftracker/schema"
	_ "github.com/jackc/pgx/v5/stdlib" // PostgreSQL driver
	_ "modernc.org/sqlite"             // SQLite driver
)

// Table names for report history.
const (
	reportRunsTable = "ftracker_report_runs"
	reportsTable    = "ftracker_reports"
)

// HistoryTables lists the history tables in creation order.
var HistoryTables = []string{reportRunsTable, reportsTable}

// HistoryStoreImpl implements the HistoryStore interface.
type HistoryStoreImpl struct {
	db         *sql.DB
	backend    schema.DatabaseBackend
	driverName string
}

var _ contract.HistoryStore = &HistoryStoreImpl{} // Compile-time check

// driverFor returns the database/sql driver name registered for a backend.
func driverFor(backend schema.DatabaseBackend) (string, error) {
	switch backend {
	case schema.SQLiteBackend:
		return "sqlite", nil
	case schema.MySQLBackend:
		return "mysql", nil
	case schema.PostgreSQLBackend:
		return "pgx", nil
	default:
		return "", fmt.Errorf("unsupported backend: %s", backend)
	}
}

// resolveConnStr fills in backend defaults for a connection string.
// SQLite falls back to the home directory database file. MySQL always gets
// parseTime so DATETIME columns scan into time.Time.
func resolveConnStr(backend schema.DatabaseBackend, connStr string) (string, error) {
	switch backend {
	case schema.SQLiteBackend:
		if connStr == "" {
			return GetHistoryDBFilePath(), nil
		}
		return connStr, nil
	case schema.MySQLBackend:
		cfg, err := mysql.ParseDSN(connStr)
		if err != nil {
			return "", fmt.Errorf("invalid MySQL connection string: %w. Check format: user:password@tcp(host:port)/dbname", err)
		}
		cfg.ParseTime = true
		return cfg.FormatDSN(), nil
	default:
		return connStr, nil
	}
}

// openDB opens and pings the database for a backend.
func openDB(backend schema.DatabaseBackend, connStr string) (*sql.DB, string, error) {
	driverName, err := driverFor(backend)
	if err != nil {
		return nil, "", err
	}
	dsn, err := resolveConnStr(backend, connStr)
	if err != nil {
		return nil, "", err
	}

	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open %s database: %w", backend, err)
	}
	if backend == schema.SQLiteBackend {
		// Limit SQLite to a single open connection to avoid "database is locked" errors
		db.SetMaxOpenConns(1)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		var connDetail string
		switch backend {
		case schema.MySQLBackend:
			connDetail = "Check that MySQL is running and the connection string is correct. Ensure user/password are valid."
		case schema.PostgreSQLBackend:
			connDetail = "Check that PostgreSQL is running and the connection string is correct. Ensure user/password are valid."
		default:
			connDetail = "Check that the directory is writable."
		}
		return nil, "", fmt.Errorf("failed to connect to %s database: %w. %s", backend, err, connDetail)
	}
	return db, driverName, nil
}

// NewHistoryStore creates a new HistoryStore with the specified backend.
func NewHistoryStore(backend schema.DatabaseBackend, connStr string) (contract.HistoryStore, error) {
	if backend == schema.NoneBackend {
		// Return a no-op store for disabled tracking
		return &HistoryStoreImpl{backend: backend}, nil
	}

	db, driverName, err := openDB(backend, connStr)
	if err != nil {
		return nil, err
	}

	if err := createHistoryTables(db, backend); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create history tables: %w", err)
	}

	return &HistoryStoreImpl{
		db:         db,
		backend:    backend,
		driverName: driverName,
	}, nil
}

// createHistoryTables creates the history tables if they are missing.
func createHistoryTables(db *sql.DB, backend schema.DatabaseBackend) error {
	for _, table := range HistoryTables {
		if err := validateTableName(table); err != nil {
			return err
		}
		if _, err := db.Exec(getCreateTableQuery(table, backend)); err != nil {
			return fmt.Errorf("failed to create table %s: %w", table, err)
		}
	}
	return nil
}

// getCreateTableQuery returns the CREATE TABLE query for a history table.
func getCreateTableQuery(table string, backend schema.DatabaseBackend) string {
	quoted := quoteTableName(table, backend)
	if table == reportRunsTable {
		switch backend {
		case schema.MySQLBackend:
			return fmt.Sprintf(`
				CREATE TABLE IF NOT EXISTS %s (
					run_id BIGINT AUTO_INCREMENT PRIMARY KEY,
					start_time DATETIME(6) NOT NULL,
					end_time DATETIME(6),
					run_duration_ms INT,
					total_reports INT NOT NULL DEFAULT 0,
					config_params TEXT
				);
			`, quoted)
		case schema.PostgreSQLBackend:
			return fmt.Sprintf(`
				CREATE TABLE IF NOT EXISTS %s (
					run_id BIGSERIAL PRIMARY KEY,
					start_time TIMESTAMPTZ NOT NULL,
					end_time TIMESTAMPTZ,
					run_duration_ms INT,
					total_reports INT NOT NULL DEFAULT 0,
					config_params TEXT
				);
			`, quoted)
		default: // SQLite
			return fmt.Sprintf(`
				CREATE TABLE IF NOT EXISTS %s (
					run_id INTEGER PRIMARY KEY AUTOINCREMENT,
					start_time TEXT NOT NULL,
					end_time TEXT,
					run_duration_ms INTEGER,
					total_reports INTEGER NOT NULL DEFAULT 0,
					config_params TEXT
				);
			`, quoted)
		}
	}

	switch backend {
	case schema.MySQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				run_id BIGINT NOT NULL,
				seq INT NOT NULL,
				workout_code VARCHAR(8) NOT NULL,
				training_type VARCHAR(64) NOT NULL,
				duration DOUBLE NOT NULL,
				distance DOUBLE NOT NULL,
				speed DOUBLE NOT NULL,
				calories DOUBLE NOT NULL,
				message TEXT NOT NULL,
				recorded_at DATETIME(6) NOT NULL,
				PRIMARY KEY (run_id, seq)
			);
		`, quoted)
	case schema.PostgreSQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				run_id BIGINT NOT NULL,
				seq INT NOT NULL,
				workout_code TEXT NOT NULL,
				training_type TEXT NOT NULL,
				duration DOUBLE PRECISION NOT NULL,
				distance DOUBLE PRECISION NOT NULL,
				speed DOUBLE PRECISION NOT NULL,
				calories DOUBLE PRECISION NOT NULL,
				message TEXT NOT NULL,
				recorded_at TIMESTAMPTZ NOT NULL,
				PRIMARY KEY (run_id, seq)
			);
		`, quoted)
	default: // SQLite
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				run_id INTEGER NOT NULL,
				seq INTEGER NOT NULL,
				workout_code TEXT NOT NULL,
				training_type TEXT NOT NULL,
				duration REAL NOT NULL,
				distance REAL NOT NULL,
				speed REAL NOT NULL,
				calories REAL NOT NULL,
				message TEXT NOT NULL,
				recorded_at TEXT NOT NULL,
				PRIMARY KEY (run_id, seq)
			);
		`, quoted)
	}
}

// disabled reports whether history tracking is turned off for this store.
func (hs *HistoryStoreImpl) disabled() bool {
	return hs.backend == schema.NoneBackend || hs.db == nil
}

// BeginRun creates a new report run and returns its unique ID.
func (hs *HistoryStoreImpl) BeginRun(startTime time.Time, configParams map[string]any) (int64, error) {
	if hs.disabled() {
		return 0, nil
	}

	configJSON, err := json.Marshal(configParams)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal config params: %w", err)
	}

	quoted := quoteTableName(reportRunsTable, hs.backend)

	var runID int64
	switch hs.backend {
	case schema.PostgreSQLBackend:
		query := fmt.Sprintf(`INSERT INTO %s (start_time, config_params) VALUES ($1, $2) RETURNING run_id`, quoted)
		err = hs.db.QueryRow(query, startTime, string(configJSON)).Scan(&runID)
	default: // SQLite and MySQL
		query := fmt.Sprintf(`INSERT INTO %s (start_time, config_params) VALUES (?, ?)`, quoted)
		var result sql.Result
		result, err = hs.db.Exec(query, formatTime(startTime, hs.backend), string(configJSON))
		if err == nil {
			runID, err = result.LastInsertId()
		}
	}
	if err != nil {
		return 0, fmt.Errorf("failed to insert report run: %w", err)
	}

	return runID, nil
}

// RecordReport stores one computed summary for a run.
func (hs *HistoryStoreImpl) RecordReport(runID int64, report schema.Report) error {
	if hs.disabled() {
		return nil
	}

	ph := placeholders(10, hs.backend)
	query := fmt.Sprintf(`
		INSERT INTO %s (run_id, seq, workout_code, training_type, duration, distance,
		                speed, calories, message, recorded_at)
		VALUES (%s)
	`, quoteTableName(reportsTable, hs.backend), strings.Join(ph, ", "))

	_, err := hs.db.Exec(query,
		runID, report.Seq, string(report.Code), report.TrainingType,
		report.Duration, report.Distance, report.Speed, report.Calories,
		report.Message(), formatTime(time.Now(), hs.backend),
	)
	if err != nil {
		return fmt.Errorf("failed to insert report %d for run %d: %w", report.Seq, runID, err)
	}
	return nil
}

// EndRun updates the run with completion data.
func (hs *HistoryStoreImpl) EndRun(runID int64, endTime time.Time, totalReports int) error {
	if hs.disabled() {
		return nil
	}

	quoted := quoteTableName(reportRunsTable, hs.backend)
	ph := placeholders(4, hs.backend)

	row := hs.db.QueryRow(fmt.Sprintf(`SELECT start_time FROM %s WHERE run_id = %s`, quoted, ph[0]), runID)
	startTime, err := hs.scanTime(row)
	if err != nil {
		return fmt.Errorf("failed to get start_time for run %d: %w", runID, err)
	}

	durationMs := endTime.Sub(startTime).Milliseconds()

	updateQuery := fmt.Sprintf(`UPDATE %s SET end_time = %s, run_duration_ms = %s, total_reports = %s WHERE run_id = %s`,
		quoted, ph[0], ph[1], ph[2], ph[3])
	if _, err := hs.db.Exec(updateQuery, formatTime(endTime, hs.backend), durationMs, totalReports, runID); err != nil {
		return fmt.Errorf("failed to update report run: %w", err)
	}
	return nil
}

// scanTime reads a single timestamp column, handling the SQLite TEXT encoding.
func (hs *HistoryStoreImpl) scanTime(row *sql.Row) (time.Time, error) {
	if hs.backend == schema.SQLiteBackend {
		var s string
		if err := row.Scan(&s); err != nil {
			return time.Time{}, err
		}
		return parseTime(s)
	}
	var t time.Time
	err := row.Scan(&t)
	return t, err
}

// ListRuns retrieves all report runs from the store.
func (hs *HistoryStoreImpl) ListRuns() ([]schema.ReportRunRecord, error) {
	if hs.disabled() {
		return nil, nil
	}

	query := fmt.Sprintf("SELECT run_id, start_time, end_time, run_duration_ms, total_reports, config_params FROM %s ORDER BY run_id",
		quoteTableName(reportRunsTable, hs.backend))
	rows, err := hs.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query report runs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var results []schema.ReportRunRecord
	for rows.Next() {
		var record schema.ReportRunRecord

		switch hs.backend {
		case schema.SQLiteBackend:
			var startTimeStr string
			var endTimeStr *string
			if err := rows.Scan(&record.RunID, &startTimeStr, &endTimeStr, &record.RunDurationMs, &record.TotalReports, &record.ConfigParams); err != nil {
				return nil, fmt.Errorf("failed to scan report run: %w", err)
			}
			if record.StartTime, err = parseTime(startTimeStr); err != nil {
				return nil, fmt.Errorf("failed to parse start_time: %w", err)
			}
			if endTimeStr != nil {
				endTime, err := parseTime(*endTimeStr)
				if err != nil {
					return nil, fmt.Errorf("failed to parse end_time: %w", err)
				}
				record.EndTime = &endTime
			}
		default: // MySQL and PostgreSQL
			if err := rows.Scan(&record.RunID, &record.StartTime, &record.EndTime, &record.RunDurationMs, &record.TotalReports, &record.ConfigParams); err != nil {
				return nil, fmt.Errorf("failed to scan report run: %w", err)
			}
		}

		results = append(results, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating report runs: %w", err)
	}
	return results, nil
}

// ListReports retrieves all recorded summaries, ordered by run and sequence.
func (hs *HistoryStoreImpl) ListReports() ([]schema.ReportRecord, error) {
	if hs.disabled() {
		return nil, nil
	}

	query := fmt.Sprintf(`SELECT run_id, seq, workout_code, training_type, duration, distance,
		speed, calories, message, recorded_at
		FROM %s ORDER BY run_id, seq`, quoteTableName(reportsTable, hs.backend))
	rows, err := hs.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query reports: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var results []schema.ReportRecord
	for rows.Next() {
		var record schema.ReportRecord
		dest := []any{
			&record.RunID, &record.Seq, &record.WorkoutCode, &record.TrainingType,
			&record.Duration, &record.Distance, &record.Speed, &record.Calories, &record.Message,
		}

		switch hs.backend {
		case schema.SQLiteBackend:
			var recordedAtStr string
			if err := rows.Scan(append(dest, &recordedAtStr)...); err != nil {
				return nil, fmt.Errorf("failed to scan report: %w", err)
			}
			if record.RecordedAt, err = parseTime(recordedAtStr); err != nil {
				return nil, fmt.Errorf("failed to parse recorded_at: %w", err)
			}
		default: // MySQL and PostgreSQL
			if err := rows.Scan(append(dest, &record.RecordedAt)...); err != nil {
				return nil, fmt.Errorf("failed to scan report: %w", err)
			}
		}

		results = append(results, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating reports: %w", err)
	}
	return results, nil
}

// GetStatus returns status information about the history store.
func (hs *HistoryStoreImpl) GetStatus() (schema.HistoryStatus, error) {
	status := schema.HistoryStatus{
		Backend:    string(hs.backend),
		Connected:  hs.db != nil,
		TableSizes: make(map[string]int64),
	}

	if hs.disabled() {
		return status, nil
	}

	quotedRuns := quoteTableName(reportRunsTable, hs.backend)
	if err := hs.db.QueryRow(fmt.Sprintf("SELECT COUNT(*) FROM %s", quotedRuns)).Scan(&status.TotalRuns); err != nil {
		return status, fmt.Errorf("failed to get total runs: %w", err)
	}

	if status.TotalRuns > 0 {
		row := hs.db.QueryRow(fmt.Sprintf("SELECT run_id FROM %s ORDER BY run_id DESC LIMIT 1", quotedRuns))
		if err := row.Scan(&status.LastRunID); err != nil {
			return status, fmt.Errorf("failed to get last run id: %w", err)
		}

		var err error
		row = hs.db.QueryRow(fmt.Sprintf("SELECT start_time FROM %s ORDER BY run_id DESC LIMIT 1", quotedRuns))
		if status.LastRunTime, err = hs.scanTime(row); err != nil {
			return status, fmt.Errorf("failed to get last run time: %w", err)
		}

		row = hs.db.QueryRow(fmt.Sprintf("SELECT start_time FROM %s ORDER BY run_id ASC LIMIT 1", quotedRuns))
		if status.OldestRunTime, err = hs.scanTime(row); err != nil {
			return status, fmt.Errorf("failed to get oldest run time: %w", err)
		}
	}

	for _, table := range HistoryTables {
		var count int64
		row := hs.db.QueryRow(fmt.Sprintf("SELECT COUNT(*) FROM %s", quoteTableName(table, hs.backend)))
		if err := row.Scan(&count); err != nil {
			return status, fmt.Errorf("failed to get count for table %s: %w", table, err)
		}
		status.TableSizes[table] = count
	}
	status.TotalReports = int(status.TableSizes[reportsTable])

	return status, nil
}

// Close closes the underlying connection.
func (hs *HistoryStoreImpl) Close() error {
	if hs.db != nil {
		return hs.db.Close()
	}
	return nil
}
