// Package outwriter has output and writer logic.
package outwriter

import (
	"errors"
	"fmt"
	"io"

	"github.com/huangsam/ftracker/internal/contract"
	"github.com/huangsam/ftracker/schema"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the core logic.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteReports prints workout summaries using the configured output format and destination.
func (ow *OutWriter) WriteReports(reports []schema.Report, cfg *contract.Config) error {
	return PrintReports(reports, cfg)
}

// WriteText opens the configured destination and hands it to a text writer.
// Text reports are rendered line by line by the report driver, not by this package.
func (ow *OutWriter) WriteText(cfg *contract.Config, write func(io.Writer) error) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		if err := write(w); err != nil {
			return fmt.Errorf("error writing %s output: %w", outputName(schema.TextOut), err)
		}
		return nil
	}, successMessage(schema.TextOut))
}

// WriteFormulas prints the workout formulas using the configured output format and destination.
func (ow *OutWriter) WriteFormulas(model *schema.FormulasRenderModel, cfg *contract.Config) error {
	return PrintFormulas(model, cfg)
}

// PrintReports opens the configured destination and writes the reports into it.
func PrintReports(reports []schema.Report, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return WriteReports(w, reports, cfg)
	}, successMessage(cfg.Output))
}

// PrintFormulas opens the configured destination and writes the formulas into it.
// Unsupported formats are rejected before the destination is created.
func PrintFormulas(model *schema.FormulasRenderModel, cfg *contract.Config) error {
	if cfg.Output == schema.ParquetOut {
		return ErrFormulasParquet
	}
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return WriteFormulas(w, model, cfg)
	}, successMessage(cfg.Output))
}

// Output formats a writer cannot render.
var (
	ErrTextReports     = errors.New("text reports are written by the report driver")
	ErrFormulasParquet = errors.New("formulas have no Parquet rendering; use text, table, csv or json")
)

// WriteReports dispatches the reports to the writer for the configured output format.
// Text output is rejected with ErrTextReports.
func WriteReports(w io.Writer, reports []schema.Report, cfg *contract.Config) error {
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	var err error
	switch cfg.Output {
	case schema.JSONOut:
		err = writeJSONReports(w, reports)
	case schema.CSVOut:
		err = writeCSVReports(w, reports, fmtFloat, intFmt)
	case schema.TableOut:
		err = writeTableReports(w, reports, cfg, fmtFloat, intFmt)
	case schema.ParquetOut:
		err = writeParquetReports(w, reports)
	default:
		err = ErrTextReports
	}
	if err != nil {
		return fmt.Errorf("error writing %s output: %w", outputName(cfg.Output), err)
	}
	return nil
}

// WriteFormulas dispatches the formulas to the writer for the configured output format.
// Parquet is rejected with ErrFormulasParquet; other unknown formats fall back to text.
func WriteFormulas(w io.Writer, model *schema.FormulasRenderModel, cfg *contract.Config) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	var err error
	switch cfg.Output {
	case schema.ParquetOut:
		err = ErrFormulasParquet
	case schema.JSONOut:
		err = writeJSON(w, model)
	case schema.CSVOut:
		err = writeCSVFormulas(w, model, fmtFloat)
	case schema.TableOut:
		err = writeTableFormulas(w, model, fmtFloat)
	default:
		err = writeTextFormulas(w, model)
	}
	if err != nil {
		return fmt.Errorf("error writing %s output: %w", outputName(cfg.Output), err)
	}
	return nil
}

// outputName returns the display name of an output mode.
func outputName(mode schema.OutputMode) string {
	switch mode {
	case schema.JSONOut:
		return "JSON"
	case schema.CSVOut:
		return "CSV"
	case schema.ParquetOut:
		return "Parquet"
	case schema.TableOut:
		return "table"
	default:
		return "text"
	}
}

// successMessage is shown on stderr after writing to a file.
func successMessage(mode schema.OutputMode) string {
	return "Wrote " + outputName(mode)
}
