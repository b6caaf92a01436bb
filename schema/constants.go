package schema

// Custom string types for type safety.
type (
	// WorkoutCode represents the short activity code of a data package.
	WorkoutCode string

	// OutputMode represents the format of the output.
	OutputMode string

	// DatabaseBackend represents the database backend for report history.
	DatabaseBackend string

	// EffortLabel represents the effort bucket of a workout by calories burned.
	EffortLabel string
)

// All workout codes recognized by the package reader.
const (
	RunningCode  WorkoutCode = "RUN"
	SwimmingCode WorkoutCode = "SWM"
	WalkingCode  WorkoutCode = "WLK"
)

// Training type labels rendered in the summary message.
const (
	RunningLabel  = "Running"
	WalkingLabel  = "SportsWalking"
	SwimmingLabel = "Swimming"
)

// All output modes supported.
const (
	TextOut    OutputMode = "text" // default
	TableOut   OutputMode = "table"
	CSVOut     OutputMode = "csv"
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All history backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite"
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none" // default
)

// Effort labels, from lowest to highest.
const (
	LightEffort    EffortLabel = "Light"
	ModerateEffort EffortLabel = "Moderate"
	VigorousEffort EffortLabel = "Vigorous"
	IntenseEffort  EffortLabel = "Intense"
)

// AllWorkoutCodes returns the workout codes in display order.
var AllWorkoutCodes = []WorkoutCode{RunningCode, WalkingCode, SwimmingCode}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut:    {},
	TableOut:   {},
	CSVOut:     {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidDatabaseBackends lists all valid history backends.
var ValidDatabaseBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}
