package outwriter

import (
	"os"

	"github.com/huangsam/ftracker/internal/contract"
	"golang.org/x/term"
)

// GetMaxTableLabelWidth calculates the maximum width for the workout label column
// in table output based on terminal width.
func GetMaxTableLabelWidth(cfg *contract.Config) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Fallback to conservative default if terminal size can't be detected
			termWidth = 80
		} else {
			termWidth = detectedWidth
		}
	}

	// Seq + Duration + Distance + Speed + Calories + Effort with borders/padding
	baseWidth := 6 + 4*(cfg.Precision+8) + 12

	available := termWidth - baseWidth
	if available < 8 {
		return 8
	}
	if available > 24 {
		return 24
	}
	return available
}
