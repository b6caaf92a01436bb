package cmd

import (
	"fmt"
	"os"

	"github.com/huangsam/ftracker/internal/contract"
	"github.com/huangsam/ftracker/internal/iocache"
	"github.com/huangsam/ftracker/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// historyConfigSetup resolves the history backend settings without opening the store.
// Clear and migrate work on the database directly, so they must not create tables first.
func historyConfigSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	// Get history-related config values
	backend, err := contract.ParseDatabaseBackend(viper.GetString("history-backend"))
	if err != nil {
		return err
	}
	connStr := viper.GetString("history-db-connect")

	// Basic validation for database backends
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	// For SQLite backend with empty connection string, use default path
	if backend == schema.SQLiteBackend && connStr == "" {
		connStr = contract.GetHistoryDBFilePath()
	}

	cfg.HistoryBackend = backend
	cfg.HistoryDBConnect = connStr
	cfg.OutputFile = viper.GetString("output-file")

	return nil
}

// historySetup loads the history config and opens the store.
func historySetup() error {
	if err := historyConfigSetup(); err != nil {
		return err
	}
	if err := iocache.InitHistory(cfg.HistoryBackend, cfg.HistoryDBConnect); err != nil {
		return fmt.Errorf("failed to initialize history: %w", err)
	}
	return nil
}

// historySetupWrapper wraps historySetup to provide PreRunE for history commands.
func historySetupWrapper(_ *cobra.Command, _ []string) error {
	return historySetup()
}

// historyConfigSetupWrapper wraps historyConfigSetup to provide PreRunE for clear and migrate.
func historyConfigSetupWrapper(_ *cobra.Command, _ []string) error {
	return historyConfigSetup()
}

// historyCmd focused on report history management.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Manage the report history store",
	Long: `Manage the history of report runs.

When a history backend is configured, every report run stores:
- Run metadata (timestamp, configuration, duration)
- One row per workout with its distance, speed and calories

Supported backends: SQLite, MySQL, PostgreSQL, or None (disabled, default)

Subcommands:
  status  - Show history statistics
  export  - Export data to Parquet
  clear   - Remove all history data
  migrate - Run database schema migrations

Examples:
  # Check history status
  ftracker history status --history-backend sqlite

  # Export for analysis in pandas/DuckDB
  ftracker history export --history-backend sqlite --output-file history`,
}

// historyClearCmd clears the history data.
var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all report history data",
	Long: `Delete all stored report runs and workout rows.

For SQLite: Deletes the database file
For MySQL/PostgreSQL: Drops the history tables

WARNING: This action cannot be undone. Consider exporting data first.

Examples:
  # Export before clearing
  ftracker history export --history-backend sqlite --output-file backup
  ftracker history clear --history-backend sqlite`,
	PreRunE: historyConfigSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := iocache.ClearHistory(cfg.HistoryBackend, cfg.HistoryDBConnect, cfg.HistoryDBConnect); err != nil {
			contract.LogFatal("Failed to clear history data", err)
		}
		fmt.Println("History data cleared successfully.")
	},
}

// historyStatusCmd shows history status.
var historyStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display history statistics and connection details",
	Long: `Show detailed information about the report history store.

Displays:
- Backend type and connection status
- Total number of runs and workout rows stored
- Last and oldest run timestamps
- Row counts per table

Examples:
  # Check history status
  ftracker history status --history-backend sqlite`,
	PreRunE: historySetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		status, err := iocache.Manager.GetHistoryStore().GetStatus()
		if err != nil {
			contract.LogFatal("Failed to get history status", err)
		}
		iocache.PrintHistoryStatus(os.Stdout, status)
	},
}

// historyExportCmd exports history data to Parquet files.
var historyExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export report history to Parquet",
	Long: `Export all stored history to Parquet format for use with analytics tools.

Exports two datasets next to the --output-file base path:
- <base>.report_runs.parquet - metadata about each report run
- <base>.reports.parquet     - one row per summarized workout

Requires: --output-file parameter

Examples:
  # Export all data
  ftracker history export --history-backend sqlite --output-file ftracker

  # Use with DuckDB for analysis
  duckdb -c "SELECT training_type, SUM(calories) FROM read_parquet('ftracker.reports.parquet') GROUP BY 1"`,
	PreRunE: historySetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := iocache.ExportHistory(os.Stdout, iocache.Manager.GetHistoryStore(), cfg.OutputFile); err != nil {
			contract.LogFatal("Failed to export history data", err)
		}
	},
}

// historyMigrateCmd runs database migrations for the history store.
var historyMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database schema migrations (upgrades/downgrades)",
	Long: `Manage database schema versions for the report history store.

By default, migrates to the latest version. Use --target-version for specific versions.

Examples:
  # Migrate to latest version (default)
  ftracker history migrate --history-backend sqlite

  # Migrate to specific version
  ftracker history migrate --history-backend sqlite --target-version 1

  # Rollback to initial state
  ftracker history migrate --history-backend sqlite --target-version 0`,
	PreRunE: historyConfigSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		targetVersion := viper.GetInt("target-version")
		if err := iocache.MigrateHistory(os.Stdout, cfg.HistoryBackend, cfg.HistoryDBConnect, targetVersion); err != nil {
			contract.LogFatal("Failed to run migrations", err)
		}
	},
}
