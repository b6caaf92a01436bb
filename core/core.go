// Package core has core logic for turning sensor packages into workout reports.
package core

import (
	"context"
	"fmt"
	"io"

	"github.com/huangsam/ftracker/core/training"
	"github.com/huangsam/ftracker/internal/contract"
	"github.com/huangsam/ftracker/internal/outwriter"
	"github.com/huangsam/ftracker/schema"
)

// ExecutorFunc defines the function signature for executing report commands.
type ExecutorFunc func(ctx context.Context, cfg *contract.Config, mgr contract.HistoryManager) error

// RunReport writes the summary line of one workout to w.
func RunReport(w io.Writer, t training.Training) error {
	info, err := training.Summary(t)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, info.Message())
	return err
}

// BuildReports reads and summarizes every package in order.
// The first failing package stops the run; no partial result is returned.
func BuildReports(ctx context.Context, pkgs []schema.Package) ([]schema.Report, error) {
	_, reports, err := buildWorkouts(ctx, pkgs)
	return reports, err
}

// buildWorkouts reads every package, then summarizes each workout.
// It returns the workouts alongside their reports, index for index.
func buildWorkouts(ctx context.Context, pkgs []schema.Package) ([]training.Training, []schema.Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	trainings, err := training.ReadPackages(pkgs)
	if err != nil {
		return nil, nil, err
	}

	reports := make([]schema.Report, 0, len(trainings))
	for i, t := range trainings {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}
		info, err := training.Summary(t)
		if err != nil {
			return nil, nil, fmt.Errorf("package %d (%s): %w", i, pkgs[i].Code, err)
		}
		reports = append(reports, schema.Report{Seq: i, Code: pkgs[i].Code, InfoMessage: info})
	}
	return trainings, reports, nil
}

// writeTextReport runs the report driver over every workout.
func writeTextReport(w io.Writer, trainings []training.Training) error {
	for _, t := range trainings {
		if err := RunReport(w, t); err != nil {
			return err
		}
	}
	return nil
}

// ExecuteReport summarizes every configured package and prints the results.
// It serves as the main entry point for the 'report' command.
func ExecuteReport(ctx context.Context, cfg *contract.Config, mgr contract.HistoryManager) error {
	return runReportCore(ctx, cfg, mgr, cfg.Packages)
}

// ExecuteSummarize summarizes the single package given on the command line.
// It serves as the main entry point for the 'summarize' command.
func ExecuteSummarize(ctx context.Context, cfg *contract.Config, mgr contract.HistoryManager, pkg schema.Package) error {
	return runReportCore(withSuppressHeader(ctx), cfg, mgr, []schema.Package{pkg})
}

// ExecuteFormulas prints the formulas and constants of every workout variant.
// This is a static display that does not compute any package.
func ExecuteFormulas(_ context.Context, cfg *contract.Config, _ contract.HistoryManager) error {
	return outwriter.NewOutWriter().WriteFormulas(training.Formulas(), cfg)
}

// runReportCore performs the common read, summarize, record and write steps.
func runReportCore(ctx context.Context, cfg *contract.Config, mgr contract.HistoryManager, pkgs []schema.Package) error {
	if !shouldSuppressHeader(ctx) {
		logReportHeader(cfg, len(pkgs))
	}

	trainings, reports, err := buildWorkouts(ctx, pkgs)
	if err != nil {
		return err
	}

	recordHistory(ctx, cfg, mgr, reports)

	ow := outwriter.NewOutWriter()
	if cfg.Output == schema.TextOut {
		return ow.WriteText(cfg, func(w io.Writer) error {
			return writeTextReport(w, trainings)
		})
	}
	return ow.WriteReports(reports, cfg)
}
