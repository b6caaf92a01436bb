package core

import (
	"context"
	"fmt"
	"time"

	"github.com/huangsam/ftracker/internal/contract"
	"github.com/huangsam/ftracker/schema"
)

// recordHistory stores the reports of one run when a history store is configured.
// Tracking failures are logged and never fail the report itself.
func recordHistory(ctx context.Context, cfg *contract.Config, mgr contract.HistoryManager, reports []schema.Report) {
	if mgr == nil {
		return
	}
	store := mgr.GetHistoryStore()
	if store == nil {
		return
	}

	configParams := map[string]any{
		"output":    string(cfg.Output),
		"precision": cfg.Precision,
		"packages":  len(reports),
	}
	runID, err := store.BeginRun(time.Now(), configParams)
	if err != nil {
		contract.LogWarn("History tracking initialization failed", err)
		return
	}
	if runID <= 0 {
		return // tracking disabled
	}
	ctx = withRunID(ctx, runID)

	recorded := 0
	for _, r := range reports {
		if err := store.RecordReport(runIDFromContext(ctx), r); err != nil {
			logTrackingError("RecordReport", r, err)
			continue
		}
		recorded++
	}

	if err := store.EndRun(runID, time.Now(), recorded); err != nil {
		contract.LogWarn("Failed to finalize history tracking", err)
	}
}

// logTrackingError logs database tracking errors to stderr without disrupting the report.
func logTrackingError(operation string, r schema.Report, err error) {
	contract.LogWarn(fmt.Sprintf("History tracking failed for %s on package %d (%s)", operation, r.Seq, r.Code), err)
}
