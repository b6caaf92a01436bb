package contract

import (
	"fmt"
	"slices"
	"strings"

	"github.com/huangsam/ftracker/core/training"
	"github.com/huangsam/ftracker/schema"
)

// Default values for configuration.
const (
	DefaultPrecision = 3
	MinPrecision     = 1
	MaxPrecision     = 6
)

// Config holds the runtime configuration for a report.
// This struct is the "final, validated" config.
type Config struct {
	Packages   []schema.Package
	Output     schema.OutputMode
	OutputFile string
	Precision  int // Decimal precision for table and csv columns
	Width      int // Terminal width override (0 = auto-detect)

	HistoryBackend   schema.DatabaseBackend
	HistoryDBConnect string // Please use env var as this is plaintext

	UseEmojis bool // Enable emojis in status lines
	UseColors bool // Enable colored labels in table output
}

// PackageRawInput is one package as written in the config file.
type PackageRawInput struct {
	Code string    `mapstructure:"code"`
	Data []float64 `mapstructure:"data"`
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// --- Fields from rootCmd.PersistentFlags() ---
	Output           string `mapstructure:"output"`
	OutputFile       string `mapstructure:"output-file"`
	Precision        int    `mapstructure:"precision"`
	Width            int    `mapstructure:"width"`
	HistoryBackend   string `mapstructure:"history-backend"`
	HistoryDBConnect string `mapstructure:"history-db-connect"`
	Emoji            string `mapstructure:"emoji"`
	Color            string `mapstructure:"color"`

	// --- Packages from config file ---
	Packages []PackageRawInput `mapstructure:"packages"`
}

// Clone returns a deep copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	if c.Packages != nil {
		clone.Packages = make([]schema.Package, len(c.Packages))
		for i, p := range c.Packages {
			clone.Packages[i] = schema.Package{Code: p.Code, Data: slices.Clone(p.Data)}
		}
	}
	return &clone
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := validateBackendConfigs(cfg, input); err != nil {
		return err
	}
	if err := processPackages(cfg, input); err != nil {
		return err
	}
	return nil
}

// ValidateDatabaseConnectionString validates the format of database connection strings
// for MySQL and PostgreSQL backends.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend, schema.NoneBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("history-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("history-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "host=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'host=' parameter")
		}
		if !strings.Contains(connStr, "dbname=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'dbname=' parameter")
		}
	}
	return nil
}

// validateSimpleInputs processes and validates output and display fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	cfg.OutputFile = input.OutputFile
	cfg.Width = input.Width

	emojis, err := ParseBoolString(input.Emoji)
	if err != nil {
		return fmt.Errorf("invalid --emoji value: %w", err)
	}
	cfg.UseEmojis = emojis

	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	if input.Precision < MinPrecision || input.Precision > MaxPrecision {
		return fmt.Errorf("precision must be between %d and %d (received %d)", MinPrecision, MaxPrecision, input.Precision)
	}
	cfg.Precision = input.Precision

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, table, csv, json, parquet", input.Output)
	}
	if cfg.Output == schema.ParquetOut && cfg.OutputFile == "" {
		return fmt.Errorf("parquet output requires --output-file")
	}

	return nil
}

// ParseDatabaseBackend normalizes a backend name. Case and surrounding
// spaces are ignored and an empty name means NoneBackend.
func ParseDatabaseBackend(s string) (schema.DatabaseBackend, error) {
	backend := schema.DatabaseBackend(strings.ToLower(strings.TrimSpace(s)))
	if backend == "" {
		return schema.NoneBackend, nil
	}
	if _, ok := schema.ValidDatabaseBackends[backend]; !ok {
		return "", fmt.Errorf("invalid history backend '%s'. must be sqlite, mysql, postgresql, none", s)
	}
	return backend, nil
}

// validateBackendConfigs validates the history backend configuration.
func validateBackendConfigs(cfg *Config, input *ConfigRawInput) error {
	backend, err := ParseDatabaseBackend(input.HistoryBackend)
	if err != nil {
		return err
	}
	cfg.HistoryBackend = backend
	cfg.HistoryDBConnect = input.HistoryDBConnect
	return ValidateDatabaseConnectionString(cfg.HistoryBackend, cfg.HistoryDBConnect)
}

// processPackages converts configured packages, falling back to the sample packages.
// Only the activity code is checked here; arity is the package reader's concern.
func processPackages(cfg *Config, input *ConfigRawInput) error {
	if len(input.Packages) == 0 {
		cfg.Packages = schema.DefaultPackages()
		return nil
	}

	pkgs := make([]schema.Package, 0, len(input.Packages))
	for i, p := range input.Packages {
		code := strings.TrimSpace(p.Code)
		if !training.IsValidCode(code) {
			return fmt.Errorf("%w %q in packages[%d]. must be RUN, SWM, WLK", training.ErrInvalidCode, p.Code, i)
		}
		pkgs = append(pkgs, schema.Package{Code: schema.WorkoutCode(code), Data: slices.Clone(p.Data)})
	}
	cfg.Packages = pkgs
	return nil
}
