package core

import (
	"fmt"
	"os"

	"github.com/huangsam/ftracker/internal/contract"
)

// logReportHeader prints a one-line header to stderr so stdout stays the report.
func logReportHeader(cfg *contract.Config, count int) {
	prefix := ""
	if cfg.UseEmojis {
		prefix = "🏋️  "
	}
	_, _ = fmt.Fprintf(os.Stderr, "%sWorkouts: %d (Output: %s, History: %s)\n", prefix, count, cfg.Output, cfg.HistoryBackend)
}
