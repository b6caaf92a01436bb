package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/huangsam/ftracker/schema"
)

// Color variables for console output.
var (
	IntenseColor  = color.New(color.FgRed, color.Bold)     // IntenseColor represents maximal exertion.
	VigorousColor = color.New(color.FgMagenta, color.Bold) // VigorousColor represents a strong session.
	ModerateColor = color.New(color.FgYellow)              // ModerateColor represents a regular session, not bold.
	LightColor    = color.New(color.FgCyan)                // LightColor represents a light session.
)

// GetColorEffort returns a colored effort label for console output (table).
// It uses schema.GetEffortLabel to determine the string, and then applies the appropriate color.
func GetColorEffort(calories float64) string {
	label := schema.GetEffortLabel(calories)
	text := string(label)

	switch label {
	case schema.IntenseEffort:
		return IntenseColor.Sprint(text)
	case schema.VigorousEffort:
		return VigorousColor.Sprint(text)
	case schema.ModerateEffort:
		return ModerateColor.Sprint(text)
	default:
		return LightColor.Sprint(text)
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on the provided
// file path. An empty path selects os.Stdout.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// GetHistoryDBFilePath returns the path to the SQLite DB file for report history.
func GetHistoryDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".ftracker_history.db"
	}
	return filepath.Join(homeDir, ".ftracker_history.db")
}

// TruncateLabel truncates a label to a maximum width with an ellipsis suffix.
// Requires maxWidth > 3 so there is room for the ellipsis and at least one character.
func TruncateLabel(label string, maxWidth int) string {
	runes := []rune(label)
	if len(runes) > maxWidth && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	return label
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}
